// Package generator implements randomized puzzle generation: plant x
// clues, complete the board with the ILP back-end, then clear back down
// to y clues, retrying on bad luck up to a bounded number of iterations
// (spec.md §4.5).
package generator

import (
	"math/rand"

	"sudokuworkbench/internal/board"
	"sudokuworkbench/internal/history"
	"sudokuworkbench/internal/solver"
)

// Status is the generator's result alphabet.
type Status int

const (
	Success Status = iota
	Failed         // retries exhausted; user-visible, no state change
	FatalError
)

// DefaultMaxIterations is the retry bound spec.md §4.5 names; callers
// that honor internal/config's -generate-retries override pass their own
// bound instead.
const DefaultMaxIterations = 1000

// Generate plants x clues and keeps y of them, mutating b in place and
// appending the net change as a single history move (skipped when nothing
// changed, as for y == 0 on an empty board). It reports Failed without
// trying when b.EmptyCells < x, and Failed when planting or solving never
// succeeds within the retry budget. Callers are responsible for
// parameter-range validation.
func Generate(b *board.Board, log *history.Log, x, y, maxIterations int, rng *rand.Rand) (Status, error) {
	if b.EmptyCells < x {
		return Failed, nil
	}
	before := b.Clone()

	for iter := 0; iter < maxIterations; iter++ {
		working := before.Clone()
		if !plantClues(working, x, rng) {
			continue
		}

		status, err := solver.SolveILP(working)
		if err != nil {
			return FatalError, err
		}
		if status != solver.Solvable {
			continue
		}

		clearToKeep(working, y, rng)

		move := diff(before, working)
		if len(move) > 0 {
			log.Append(move)
		}
		applyMove(b, move)
		return Success, nil
	}

	return Failed, nil
}

// plantClues places x values into x distinct, uniformly chosen empty
// cells of b, each time uniformly choosing among that cell's currently
// legal values. It aborts (returning false) the moment some chosen cell
// has no legal value left, leaving b partially modified — callers always
// discard b on a false return.
func plantClues(b *board.Board, x int, rng *rand.Rand) bool {
	empties := emptyCells(b)
	if len(empties) < x {
		return false
	}
	order := rng.Perm(len(empties))
	for step := 0; step < x; step++ {
		r, c := empties[order[step]][0], empties[order[step]][1]
		legal := legalValues(b, r, c)
		if len(legal) == 0 {
			return false
		}
		v := legal[rng.Intn(len(legal))]
		b.Set(r, c, v)
	}
	return true
}

// clearToKeep uniformly selects y cells of the (fully filled) board b to
// preserve and zeroes every other cell.
func clearToKeep(b *board.Board, y int, rng *rand.Rand) {
	total := b.N * b.N
	if y >= total {
		return
	}
	order := rng.Perm(total)
	keep := make(map[int]bool, y)
	for i := 0; i < y; i++ {
		keep[order[i]] = true
	}
	idx := 0
	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			if !keep[idx] {
				b.Set(i, j, 0)
			}
			idx++
		}
	}
}

func emptyCells(b *board.Board) [][2]int {
	cells := make([][2]int, 0, b.EmptyCells)
	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			if b.Values[i][j] == 0 {
				cells = append(cells, [2]int{i, j})
			}
		}
	}
	return cells
}

func legalValues(b *board.Board, r, c int) []int {
	var vals []int
	for v := 1; v <= b.N; v++ {
		if b.IsLegal(r, c, v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// diff packages every cell where before and after differ into a single move.
func diff(before, after *board.Board) history.Move {
	var m history.Move
	for i := 0; i < before.N; i++ {
		for j := 0; j < before.N; j++ {
			bv, av := before.Values[i][j], after.Values[i][j]
			if bv != av {
				m = append(m, history.Change{Row: i, Col: j, Before: bv, After: av})
			}
		}
	}
	return m
}

func applyMove(b *board.Board, m history.Move) {
	for _, ch := range m {
		b.Set(ch.Row, ch.Col, ch.After)
	}
}
