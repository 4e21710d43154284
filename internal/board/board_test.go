package board

import "testing"

func TestIsLegal(t *testing.T) {
	b := New(2, 3) // N=6
	b.Set(0, 0, 1)
	b.Set(0, 1, 2)
	b.Set(1, 2, 3)

	if b.IsLegal(0, 2, 1) {
		t.Fatal("1 already used in row 0")
	}
	if b.IsLegal(2, 0, 1) {
		t.Fatal("1 already used in column 0")
	}
	if b.IsLegal(1, 1, 3) {
		t.Fatal("3 already used in block (0,0)")
	}
	if !b.IsLegal(5, 5, 6) {
		t.Fatal("6 should be legal in an empty cell with no conflicts")
	}
}

func TestEmptyCellsTracking(t *testing.T) {
	b := New(3, 3)
	if b.EmptyCells != 81 {
		t.Fatalf("want 81 empty cells, got %d", b.EmptyCells)
	}
	b.Set(0, 0, 5)
	if b.EmptyCells != 80 {
		t.Fatalf("want 80 empty cells, got %d", b.EmptyCells)
	}
	b.Set(0, 0, 5) // no-op
	if b.EmptyCells != 80 {
		t.Fatalf("setting the same value must not change EmptyCells, got %d", b.EmptyCells)
	}
	b.Set(0, 0, 0)
	if b.EmptyCells != 81 {
		t.Fatalf("want 81 empty cells after clearing, got %d", b.EmptyCells)
	}
}

func TestRefreshFlagsConflictsButNotFixed(t *testing.T) {
	b := New(3, 3)
	b.Set(0, 0, 5)
	b.Fixed[0][0] = true
	b.Set(0, 1, 5)

	anyErr := b.Refresh()
	if !anyErr {
		t.Fatal("expected a reported conflict")
	}
	if b.Errors[0][0] {
		t.Fatal("fixed cell must never be flagged as erroneous")
	}
	if !b.Errors[0][1] {
		t.Fatal("non-fixed conflicting cell must be flagged")
	}
}

func TestNextEmptySentinel(t *testing.T) {
	b := New(1, 1)
	r, c := b.NextEmpty(0, 0)
	if r != 0 || c != 0 {
		t.Fatalf("want (0,0), got (%d,%d)", r, c)
	}
	b.Set(0, 0, 1)
	r, c = b.NextEmpty(0, 0)
	if r != -1 || c != -1 {
		t.Fatalf("want sentinel (-1,-1), got (%d,%d)", r, c)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(2, 2)
	b.Set(0, 0, 1)
	c := b.Clone()
	c.Set(0, 0, 2)
	if b.Values[0][0] != 1 {
		t.Fatal("clone mutation leaked into original")
	}
}
