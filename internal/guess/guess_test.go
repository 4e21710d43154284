package guess

import (
	"math/rand"
	"testing"

	"sudokuworkbench/internal/board"
	"sudokuworkbench/internal/history"
	"sudokuworkbench/internal/solver"
)

func TestGuessFillsBoardWithLowThreshold(t *testing.T) {
	b := board.New(2, 2)
	b.Set(0, 0, 1)
	log := history.New()
	rng := rand.New(rand.NewSource(1))

	status, err := Guess(b, log, 0, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Success {
		t.Fatalf("want Success, got %v", status)
	}
	if !b.Full() {
		t.Fatal("a threshold of 0 should accept every legal candidate and fill the board")
	}
	if b.Refresh() {
		t.Fatal("guess must never introduce a conflict")
	}
}

func TestGuessHighThresholdMayLeaveCellsEmpty(t *testing.T) {
	b := board.New(2, 2)
	b.Set(0, 0, 1)
	log := history.New()
	rng := rand.New(rand.NewSource(2))

	status, err := Guess(b, log, 1.1, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Success {
		t.Fatalf("want Success, got %v", status)
	}
	if log.CanUndo() {
		t.Fatal("a threshold above every possible score must not register an undoable move")
	}
	if b.Values[0][0] != 1 || b.EmptyCells != b.N*b.N-1 {
		t.Fatal("a threshold above every possible score must leave the board untouched")
	}
}

func TestGuessUndoRestoresExactCells(t *testing.T) {
	b := board.New(2, 2)
	b.Set(0, 0, 1)
	log := history.New()
	rng := rand.New(rand.NewSource(3))

	if _, err := guessOrFatal(t, b, log, 0, rng); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Undo(b)
	if b.Values[0][0] != 1 {
		t.Fatal("undo must not touch the pre-existing clue")
	}
	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			if i == 0 && j == 0 {
				continue
			}
			if b.Values[i][j] != 0 {
				t.Fatalf("undo left a guessed value at (%d,%d)", i, j)
			}
		}
	}
}

func TestGuessDetectsUnsolvableBoard(t *testing.T) {
	b := board.New(2, 2)
	b.Fixed[0][0] = true
	b.Values[0][0] = 1
	b.Fixed[0][1] = true
	b.Values[0][1] = 1
	log := history.New()
	rng := rand.New(rand.NewSource(4))

	status, err := Guess(b, log, 0, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Unsolvable {
		t.Fatalf("want Unsolvable, got %v", status)
	}
}

func TestBestCandidatePicksHighestScoringLegalValue(t *testing.T) {
	b := board.New(2, 2)
	b.Set(0, 0, 1)

	status, scores, err := solver.SolveLPScores(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != solver.Solvable {
		t.Fatalf("want Solvable, got %v", status)
	}

	k, ok := BestCandidate(b, scores, 0, 1)
	if !ok {
		t.Fatal("want a legal candidate at (0,1)")
	}
	if k+1 == 1 {
		t.Fatal("value 1 already occupies the row at (0,0) and cannot be legal at (0,1)")
	}
	best := scores[solver.VarIndex(b.N, 0, 1, k)]
	for k2 := 0; k2 < b.N; k2++ {
		if b.IsLegal(0, 1, k2+1) && scores[solver.VarIndex(b.N, 0, 1, k2)] > best {
			t.Fatalf("picked value %d with score %v, but legal value %d scores higher", k+1, best, k2+1)
		}
	}
}

func guessOrFatal(t *testing.T, b *board.Board, log *history.Log, threshold float64, rng *rand.Rand) (Status, error) {
	t.Helper()
	status, err := Guess(b, log, threshold, rng)
	if status != Success {
		t.Fatalf("want Success, got %v", status)
	}
	return status, err
}
