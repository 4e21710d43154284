package solver

import (
	"testing"

	"sudokuworkbench/internal/board"
)

func TestCountSolutionsTrivialBoard(t *testing.T) {
	b := board.New(1, 1)
	if got := CountSolutions(b, 0); got != 1 {
		t.Fatalf("1x1 empty board has exactly one completion, got %d", got)
	}
}

func TestCountSolutionsRestoresBoard(t *testing.T) {
	b := board.New(2, 2)
	b.Set(0, 0, 1)
	snapshot := b.Clone()

	CountSolutions(b, 0)

	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			if b.Values[i][j] != snapshot.Values[i][j] {
				t.Fatalf("board not restored at (%d,%d): got %d want %d", i, j, b.Values[i][j], snapshot.Values[i][j])
			}
		}
	}
}

func TestCountSolutionsKnownCount(t *testing.T) {
	// The empty 2x2-block (N=4) board has 288 completions; relabeling
	// values is a bijection, so fixing (0,0)=1 leaves 288/4 = 72.
	b := board.New(2, 2)
	b.Set(0, 0, 1)
	count := CountSolutions(b, 0)
	if count != 72 {
		t.Fatalf("want 72 completions, got %d", count)
	}
}

func TestSolveILPSolvesFullyFixedBoard(t *testing.T) {
	b := board.New(1, 1)
	b.Set(0, 0, 1)
	snapshot := b.Clone()
	status, err := SolveILP(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Solvable {
		t.Fatalf("want Solvable, got %v", status)
	}
	if b.Values[0][0] != snapshot.Values[0][0] {
		t.Fatalf("solving an already-complete board must not change it")
	}
}

func TestSolveILPDetectsUnsolvable(t *testing.T) {
	b := board.New(2, 2)
	// Force a direct row contradiction: two clues in the same row sharing a value.
	b.Fixed[0][0] = true
	b.Values[0][0] = 1
	b.Fixed[0][1] = true
	b.Values[0][1] = 1
	before := b.Clone()

	status, err := SolveILP(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Unsolvable {
		t.Fatalf("want Unsolvable, got %v", status)
	}
	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			if b.Values[i][j] != before.Values[i][j] {
				t.Fatal("an unsolvable result must leave the board unchanged")
			}
		}
	}
}

func TestSolveLPScoresFeasible(t *testing.T) {
	b := board.New(2, 2)
	b.Set(0, 0, 1)
	status, scores, err := SolveLPScores(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Solvable {
		t.Fatalf("want Solvable, got %v", status)
	}
	if len(scores) != b.N*b.N*b.N {
		t.Fatalf("want %d scores, got %d", b.N*b.N*b.N, len(scores))
	}
	if k := ReadCell(scores, b.N, 0, 0); k != 0 {
		t.Fatalf("clue cell (0,0)=1 should read back as k=0, got %d", k)
	}
}
