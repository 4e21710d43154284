package game

import (
	"fmt"
	"strconv"
	"strings"

	"sudokuworkbench/internal/board"
	"sudokuworkbench/internal/gameerr"
	"sudokuworkbench/internal/generator"
	"sudokuworkbench/internal/guess"
	"sudokuworkbench/internal/history"
	"sudokuworkbench/internal/puzzlefile"
	"sudokuworkbench/internal/render"
	"sudokuworkbench/internal/solver"
)

type handlerFunc func(*State, []string) (string, error)

// modeAllowed encodes the table in spec.md §4.7, indexed [Init, Solve, Edit].
var modeAllowed = map[string][3]bool{
	"solve":         {true, true, true},
	"edit":          {true, true, true},
	"exit":          {true, true, true},
	"print_board":   {false, true, true},
	"validate":      {false, true, true},
	"undo":          {false, true, true},
	"redo":          {false, true, true},
	"num_solutions": {false, true, true},
	"reset":         {false, true, true},
	"save":          {false, true, true},
	"set":           {false, true, true},
	"mark_errors":   {false, true, false},
	"hint":          {false, true, false},
	"guess":         {false, true, false},
	"guess_hint":    {false, true, false},
	"autofill":      {false, true, false},
	"generate":      {false, false, true},
}

var handlers = map[string]handlerFunc{
	"solve":         cmdSolve,
	"edit":          cmdEdit,
	"exit":          cmdExit,
	"print_board":   cmdPrintBoard,
	"validate":      cmdValidate,
	"undo":          cmdUndo,
	"redo":          cmdRedo,
	"num_solutions": cmdNumSolutions,
	"reset":         cmdReset,
	"save":          cmdSave,
	"set":           cmdSet,
	"mark_errors":   cmdMarkErrors,
	"hint":          cmdHint,
	"guess":         cmdGuess,
	"guess_hint":    cmdGuessHint,
	"autofill":      cmdAutofill,
	"generate":      cmdGenerate,
}

// Dispatch looks up name, checks the mode table, and runs its handler.
func Dispatch(s *State, name string, args []string) (string, error) {
	allowed, known := modeAllowed[name]
	if !known {
		return "", fmt.Errorf("%w", gameerr.ErrInvalidCommand)
	}
	if !allowed[s.Mode] {
		return "", fmt.Errorf("%w: %q not available in %s mode", gameerr.ErrInvalidMode, name, s.Mode)
	}
	return handlers[name](s, args)
}

func parseRangeInt(s string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", gameerr.ErrInvalidParameter, s)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: [%d, %d]", gameerr.ErrInvalidParameter, lo, hi)
	}
	return v, nil
}

func parseRangeFloat(s string, lo, hi float64) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", gameerr.ErrInvalidParameter, s)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: [%v, %v]", gameerr.ErrInvalidParameter, lo, hi)
	}
	return v, nil
}

func cmdSolve(s *State, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: solve requires a path", gameerr.ErrInvalidCommand)
	}
	blockRows, blockCols, values, clue, err := puzzlefile.Load(args[0])
	if err != nil {
		return "", err
	}
	b := board.New(blockRows, blockCols)
	for i := range values {
		for j := range values[i] {
			if values[i][j] != 0 {
				b.Set(i, j, values[i][j])
			}
			b.Fixed[i][j] = clue[i][j]
		}
	}
	s.reset(b)
	s.Mode = Solve
	return fmt.Sprintf("loaded %s", args[0]), nil
}

func cmdEdit(s *State, args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: edit takes at most one path", gameerr.ErrInvalidCommand)
	}
	var b *board.Board
	if len(args) == 1 {
		blockRows, blockCols, values, _, err := puzzlefile.Load(args[0])
		if err != nil {
			return "", err
		}
		b = board.New(blockRows, blockCols)
		for i := range values {
			for j := range values[i] {
				if values[i][j] != 0 {
					b.Set(i, j, values[i][j])
				}
			}
		}
	} else {
		b = board.New(3, 3)
	}
	s.reset(b)
	s.Mode = Edit
	return "entered edit mode", nil
}

func cmdExit(s *State, args []string) (string, error) {
	return "", nil
}

func cmdMarkErrors(s *State, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: mark_errors requires one argument", gameerr.ErrInvalidCommand)
	}
	switch args[0] {
	case "0":
		s.MarkErrors = false
	case "1":
		s.MarkErrors = true
	default:
		return "", fmt.Errorf("%w: [0, 1]", gameerr.ErrInvalidParameter)
	}
	return "", nil
}

func cmdPrintBoard(s *State, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: print_board takes no arguments", gameerr.ErrInvalidCommand)
	}
	if s.MarkErrors {
		s.Board.Refresh()
	}
	return render.Board(s.Board, s.MarkErrors), nil
}

func cmdValidate(s *State, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: validate takes no arguments", gameerr.ErrInvalidCommand)
	}
	clone := s.Board.Clone()
	status, err := solver.SolveILP(clone)
	if err != nil {
		return "", fmt.Errorf("%w: %w", gameerr.ErrSolverFail, err)
	}
	if status == solver.Solvable {
		return "Puzzle is solvable", nil
	}
	return "Puzzle is unsolvable", nil
}

func cmdSet(s *State, args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("%w: set requires 3 arguments", gameerr.ErrInvalidCommand)
	}
	x, err := parseRangeInt(args[0], 1, s.Board.N)
	if err != nil {
		return "", err
	}
	y, err := parseRangeInt(args[1], 1, s.Board.N)
	if err != nil {
		return "", err
	}
	z, err := parseRangeInt(args[2], 0, s.Board.N)
	if err != nil {
		return "", err
	}
	row, col := y-1, x-1

	if s.Mode == Solve && s.Board.Fixed[row][col] {
		return "", fmt.Errorf("%w: cell is fixed", gameerr.ErrInvalidCellState)
	}

	before := s.Board.Values[row][col]
	if before == z {
		return "", nil
	}
	s.Board.Set(row, col, z)
	s.History.Append(history.Move{{Row: row, Col: col, Before: before, After: z}})

	if s.MarkErrors {
		s.Board.Refresh()
	}
	return s.checkCompletion()
}

func cmdGenerate(s *State, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: generate requires 2 arguments", gameerr.ErrInvalidCommand)
	}
	total := s.Board.N * s.Board.N
	x, err := parseRangeInt(args[0], 0, total)
	if err != nil {
		return "", err
	}
	y, err := parseRangeInt(args[1], 0, total)
	if err != nil {
		return "", err
	}

	status, err := generator.Generate(s.Board, s.History, x, y, s.GenerateRetries, s.Rng)
	if err != nil {
		return "", fmt.Errorf("%w: %w", gameerr.ErrSolverFail, err)
	}
	switch status {
	case generator.Success:
		return fmt.Sprintf("generated puzzle with %d clues", y), nil
	case generator.Failed:
		return "", fmt.Errorf("%w", gameerr.ErrGenerateFail)
	default:
		return "", fmt.Errorf("%w", gameerr.ErrSolverFail)
	}
}

func cmdGuess(s *State, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: guess requires 1 argument", gameerr.ErrInvalidCommand)
	}
	t, err := parseRangeFloat(args[0], 0, 1)
	if err != nil {
		return "", err
	}
	if s.Board.Refresh() {
		return "", fmt.Errorf("%w: board has erroneous cells", gameerr.ErrInvalidCellState)
	}

	status, err := guess.Guess(s.Board, s.History, t, s.Rng)
	if err != nil {
		return "", fmt.Errorf("%w: %w", gameerr.ErrSolverFail, err)
	}
	if status == guess.Unsolvable {
		return "", fmt.Errorf("%w", gameerr.ErrUnsolvable)
	}

	if s.MarkErrors {
		s.Board.Refresh()
	}
	return s.checkCompletion()
}

func cmdUndo(s *State, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: undo takes no arguments", gameerr.ErrInvalidCommand)
	}
	if !s.History.CanUndo() {
		return "nothing to undo", nil
	}
	move := s.History.Undo(s.Board)
	if s.MarkErrors {
		s.Board.Refresh()
	}
	return formatMove("Undo", move, func(c history.Change) (int, int) { return c.After, c.Before }), nil
}

func cmdRedo(s *State, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: redo takes no arguments", gameerr.ErrInvalidCommand)
	}
	if !s.History.CanRedo() {
		return "nothing to redo", nil
	}
	move := s.History.Redo(s.Board)
	if s.MarkErrors {
		s.Board.Refresh()
	}
	return formatMove("Redo", move, func(c history.Change) (int, int) { return c.Before, c.After }), nil
}

func formatMove(verb string, move history.Move, vals func(history.Change) (int, int)) string {
	lines := make([]string, 0, len(move))
	for _, ch := range move {
		from, to := vals(ch)
		lines = append(lines, fmt.Sprintf("%s %d,%d: from %d to %d", verb, ch.Col+1, ch.Row+1, from, to))
	}
	return strings.Join(lines, "\n")
}

func cmdNumSolutions(s *State, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: num_solutions takes no arguments", gameerr.ErrInvalidCommand)
	}
	count := solver.CountSolutions(s.Board, 0)
	return fmt.Sprintf("%d", count), nil
}

func cmdReset(s *State, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: reset takes no arguments", gameerr.ErrInvalidCommand)
	}
	s.History.Reset(s.Board)
	if s.MarkErrors {
		s.Board.Refresh()
	}
	return "board reset", nil
}

func cmdAutofill(s *State, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: autofill takes no arguments", gameerr.ErrInvalidCommand)
	}
	snapshot := s.Board
	var plan history.Move
	for i := 0; i < snapshot.N; i++ {
		for j := 0; j < snapshot.N; j++ {
			if snapshot.Values[i][j] != 0 {
				continue
			}
			legal := -1
			count := 0
			for v := 1; v <= snapshot.N; v++ {
				if snapshot.IsLegal(i, j, v) {
					legal = v
					count++
					if count > 1 {
						break
					}
				}
			}
			if count == 1 {
				plan = append(plan, history.Change{Row: i, Col: j, Before: 0, After: legal})
			}
		}
	}
	if len(plan) == 0 {
		return "", nil
	}
	for _, ch := range plan {
		s.Board.Set(ch.Row, ch.Col, ch.After)
	}
	s.History.Append(plan)

	if s.MarkErrors {
		s.Board.Refresh()
	}
	return s.checkCompletion()
}

func cmdSave(s *State, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: save requires a path", gameerr.ErrInvalidCommand)
	}
	path := args[0]

	if s.Mode == Edit {
		if s.Board.Refresh() {
			return "", fmt.Errorf("%w: board has erroneous cells, not saved", gameerr.ErrInvalidCellState)
		}
		clone := s.Board.Clone()
		status, err := solver.SolveILP(clone)
		if err != nil {
			return "", fmt.Errorf("%w: %w", gameerr.ErrSolverFail, err)
		}
		if status != solver.Solvable {
			return "", fmt.Errorf("%w", gameerr.ErrUnsolvable)
		}
		if err := puzzlefile.Write(path, s.Board, func(i, j int) bool { return s.Board.Values[i][j] != 0 }); err != nil {
			return "", err
		}
		return fmt.Sprintf("saved %s", path), nil
	}

	if err := puzzlefile.Write(path, s.Board, func(i, j int) bool { return s.Board.Fixed[i][j] }); err != nil {
		return "", err
	}
	return fmt.Sprintf("saved %s", path), nil
}

func cmdHint(s *State, args []string) (string, error) {
	row, col, err := parseCellArgs(s, args, "hint")
	if err != nil {
		return "", err
	}
	if s.Board.Values[row][col] != 0 {
		return "", fmt.Errorf("%w: cell already filled", gameerr.ErrInvalidCellState)
	}
	clone := s.Board.Clone()
	status, err := solver.SolveILP(clone)
	if err != nil {
		return "", fmt.Errorf("%w: %w", gameerr.ErrSolverFail, err)
	}
	if status != solver.Solvable {
		return "", fmt.Errorf("%w", gameerr.ErrUnsolvable)
	}
	return fmt.Sprintf("(%d,%d)=%d", row+1, col+1, clone.Values[row][col]), nil
}

// cmdGuessHint lists every legal value for the cell together with its LP
// score, mirroring the original's "value: %d score: %f" listing rather
// than collapsing to a single pick.
func cmdGuessHint(s *State, args []string) (string, error) {
	row, col, err := parseCellArgs(s, args, "guess_hint")
	if err != nil {
		return "", err
	}
	if s.Board.Values[row][col] != 0 {
		return "", fmt.Errorf("%w: cell already filled", gameerr.ErrInvalidCellState)
	}
	status, scores, err := solver.SolveLPScores(s.Board)
	if err != nil {
		return "", fmt.Errorf("%w: %w", gameerr.ErrSolverFail, err)
	}
	if status != solver.Solvable {
		return "", fmt.Errorf("%w", gameerr.ErrUnsolvable)
	}
	lines := []string{fmt.Sprintf("legal values for (%d,%d):", col+1, row+1)}
	for k := 0; k < s.Board.N; k++ {
		if score := scores[solver.VarIndex(s.Board.N, row, col, k)]; score > 0 {
			lines = append(lines, fmt.Sprintf("value: %d score: %f", k+1, score))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func parseCellArgs(s *State, args []string, name string) (row, col int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s requires 2 arguments", gameerr.ErrInvalidCommand, name)
	}
	x, err := parseRangeInt(args[0], 1, s.Board.N)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseRangeInt(args[1], 1, s.Board.N)
	if err != nil {
		return 0, 0, err
	}
	return y - 1, x - 1, nil
}

// checkCompletion implements spec.md §4.7's completion detection: only in
// Solve mode, only when the board is full after the command.
func (s *State) checkCompletion() (string, error) {
	if s.Mode != Solve || !s.Board.Full() {
		return "", nil
	}
	clone := s.Board.Clone()
	status, err := solver.SolveILP(clone)
	if err != nil {
		return "", fmt.Errorf("%w: %w", gameerr.ErrSolverFail, err)
	}
	if status == solver.Solvable {
		s.Mode = Init
		s.Board = nil
		s.History = nil
		return "Puzzle solved successfully", nil
	}
	return "Puzzle solution erroneous", nil
}
