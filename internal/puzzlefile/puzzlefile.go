// Package puzzlefile reads and writes the plain-text puzzle format
// (spec.md §6): a "block_rows block_cols" header line followed by N²
// whitespace-separated cell tokens, each an integer optionally suffixed
// with a single '.' marking a clue.
package puzzlefile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sudokuworkbench/internal/board"
	"sudokuworkbench/internal/gameerr"
)

// Load parses the file at path into its block shape, a value grid and a
// clue-mark grid. It never looks at the caller's intended mode; whether
// the clue marks are honored is the caller's decision (edit ignores them,
// solve does not).
func Load(path string) (blockRows, blockCols int, values [][]int, clue [][]bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, nil, fmt.Errorf("%w: %v", gameerr.ErrIOFail, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	tok, ok := next()
	if !ok {
		return 0, 0, nil, nil, fmt.Errorf("%w: empty puzzle file", gameerr.ErrIOFail)
	}
	blockRows, err = strconv.Atoi(tok)
	if err != nil {
		return 0, 0, nil, nil, fmt.Errorf("%w: bad block_rows %q", gameerr.ErrIOFail, tok)
	}
	tok, ok = next()
	if !ok {
		return 0, 0, nil, nil, fmt.Errorf("%w: missing block_cols", gameerr.ErrIOFail)
	}
	blockCols, err = strconv.Atoi(tok)
	if err != nil {
		return 0, 0, nil, nil, fmt.Errorf("%w: bad block_cols %q", gameerr.ErrIOFail, tok)
	}

	n := blockRows * blockCols
	values = make([][]int, n)
	clue = make([][]bool, n)
	for i := range values {
		values[i] = make([]int, n)
		clue[i] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tok, ok = next()
			if !ok {
				return 0, 0, nil, nil, fmt.Errorf("%w: truncated puzzle body", gameerr.ErrIOFail)
			}
			isClue := strings.HasSuffix(tok, ".")
			numTok := strings.TrimSuffix(tok, ".")
			v, err := strconv.Atoi(strings.TrimSpace(numTok))
			if err != nil {
				return 0, 0, nil, nil, fmt.Errorf("%w: bad cell token %q", gameerr.ErrIOFail, tok)
			}
			values[i][j] = v
			clue[i][j] = isClue
		}
	}

	return blockRows, blockCols, values, clue, nil
}

// ClueFunc decides, for a given cell, whether it is written out as a
// clue. Edit-mode save passes a function answering "is this cell
// filled"; solve-mode save passes the board's own Fixed table.
type ClueFunc func(row, col int) bool

// Write serializes b to path using Fixed-width "%2d" cell tokens,
// matching the header format "%2d %2d\n" (spec.md §6 and §8 scenario 3:
// a 3x3-block board's header line is " 3  3").
func Write(path string, b *board.Board, isClue ClueFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", gameerr.ErrIOFail, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%2d %2d\n", b.BlockRows, b.BlockCols)
	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			suffix := byte(' ')
			if isClue(i, j) {
				suffix = '.'
			}
			fmt.Fprintf(w, "%2d%c ", b.Values[i][j], suffix)
		}
		fmt.Fprint(w, "\n")
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", gameerr.ErrIOFail, err)
	}
	return nil
}
