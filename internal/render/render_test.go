package render

import (
	"strings"
	"testing"

	"sudokuworkbench/internal/board"
)

func TestBoardMarksErroneousCells(t *testing.T) {
	b := board.New(2, 2)
	b.Values[0][0] = 1
	b.Values[0][1] = 1
	b.Refresh()

	out := Board(b, true)
	if !strings.Contains(out, "1!") {
		t.Fatalf("expected an erroneous-cell marker in output:\n%s", out)
	}
}

func TestBoardHidesErrorsWhenDisabled(t *testing.T) {
	b := board.New(2, 2)
	b.Values[0][0] = 1
	b.Values[0][1] = 1
	b.Refresh()

	out := Board(b, false)
	if strings.Contains(out, "!") {
		t.Fatalf("markErrors=false must not print error markers:\n%s", out)
	}
}

func TestBoardMarksFixedClues(t *testing.T) {
	b := board.New(2, 2)
	b.Values[0][0] = 2
	b.Fixed[0][0] = true

	out := Board(b, true)
	if !strings.Contains(out, "2*") {
		t.Fatalf("expected a fixed-clue marker in output:\n%s", out)
	}
}
