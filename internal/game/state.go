// Package game implements the command-dispatch state machine described
// in spec.md §4.7: a single game.State value, owned by the REPL and
// passed by pointer to every command, with no package-level singleton
// (spec.md §9 "module-level process state").
package game

import (
	"math/rand"

	"sudokuworkbench/internal/board"
	"sudokuworkbench/internal/history"
)

// Mode is the engine's coarse state: which commands are even reachable.
type Mode int

const (
	Init Mode = iota
	Solve
	Edit
)

func (m Mode) String() string {
	switch m {
	case Init:
		return "init"
	case Solve:
		return "solve"
	case Edit:
		return "edit"
	default:
		return "unknown"
	}
}

// State is the entire mutable game: the board, its history, and the two
// ambient settings (mark_errors toggle, shared RNG) that commands read.
// Coordinates x,y in command arguments are (column,row); row = y-1,
// col = x-1 (spec.md §8 scenario 3 fixes this: "set 1 1 5" then
// "set 2 1 5" land in the same row, so the first argument must vary the
// column, not the row).
type State struct {
	Board      *board.Board
	History    *history.Log
	Mode       Mode
	MarkErrors bool

	Rng             *rand.Rand
	GenerateRetries int
}

// New constructs a State in Init mode with no board loaded yet.
func New(rng *rand.Rand, generateRetries int) *State {
	return &State{
		Mode:            Init,
		Rng:             rng,
		GenerateRetries: generateRetries,
	}
}

// reset discards the current board and history, per the "discard the
// game" language used for both completion and for solve/edit re-entry.
func (s *State) reset(b *board.Board) {
	s.Board = b
	s.History = history.New()
}
