// Package command tokenizes REPL input lines (spec.md §6), grounded on
// the flat table-driven dispatch style of go_sam's command set rather
// than its Command-interface tree: every token here is a plain string
// argument, not a sub-command to recurse into.
package command

import (
	"fmt"
	"strings"

	"sudokuworkbench/internal/gameerr"
)

const maxLineLength = 256

// Parse splits a raw input line into its command name and argument
// tokens. A blank line (after trimming) yields ("", nil, nil) and the
// caller should simply ignore it. Lines over maxLineLength are rejected.
func Parse(line string) (name string, args []string, err error) {
	if len(line) > maxLineLength {
		return "", nil, fmt.Errorf("%w: line exceeds %d characters", gameerr.ErrInvalidCommand, maxLineLength)
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, nil
	}
	return fields[0], fields[1:], nil
}
