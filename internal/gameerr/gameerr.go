// Package gameerr holds the sentinel errors shared by every layer above
// the board/history/solver leaves, so puzzlefile, command and game can
// all produce errors the REPL recognizes with errors.Is without an
// import cycle back to package game (spec.md §7).
package gameerr

import "errors"

var (
	// ErrAllocFail and ErrSolverFail are fatal: the REPL exits non-zero
	// rather than attempt to keep running against distressed state.
	ErrAllocFail = errors.New("allocation failed")
	ErrSolverFail = errors.New("solver failed")

	// The remainder are user-visible and never change program state.
	ErrIOFail            = errors.New("file not accessible")
	ErrUnsolvable        = errors.New("unsolvable")
	ErrGenerateFail      = errors.New("generate: retries exhausted")
	ErrInvalidCommand    = errors.New("invalid command")
	ErrInvalidMode       = errors.New("command not available in current mode")
	ErrInvalidParameter  = errors.New("value not in range")
	ErrInvalidCellState  = errors.New("invalid cell state")
)

// Fatal reports whether err should terminate the REPL with a non-zero
// exit code rather than print a message and loop.
func Fatal(err error) bool {
	return errors.Is(err, ErrAllocFail) || errors.Is(err, ErrSolverFail)
}
