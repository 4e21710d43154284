// Package solver implements the two constraint back-ends used across the
// workbench: an iterative backtracking enumerator (CountSolutions) and an
// LP/ILP formulation (Model, Simplex, SolveILP) used for existence checks,
// hints and scored guessing.
package solver

import "sudokuworkbench/internal/board"

// frame is one level of the explicit recursion stack: the cell being
// tried and the next candidate value to attempt there. row == -1 marks
// the sentinel frame reached when every cell is filled.
type frame struct {
	row, col int
	next     int // next value to try, 1..N+1
}

// CountSolutions runs the iterative, stack-driven exhaustive backtracking
// enumerator from spec.md §4.3 and returns the number of distinct
// completions of b. b is restored to its input state before returning on
// every path — every value this function writes is zeroed again before
// the frame that wrote it is ever popped. maxCount, if > 0, stops the
// search early once that many solutions have been found (the count
// returned is then a lower bound); pass 0 for an unbounded count.
func CountSolutions(b *board.Board, maxCount int) int {
	count := 0

	r, c := b.NextEmpty(0, 0)
	stack := []frame{{row: r, col: c, next: 1}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.row == -1 {
			count++
			stack = stack[:len(stack)-1]
			if maxCount > 0 && count >= maxCount {
				for _, f := range stack {
					b.Values[f.row][f.col] = 0
				}
				return count
			}
			continue
		}

		b.Values[top.row][top.col] = 0

		if top.next > b.N {
			stack = stack[:len(stack)-1]
			continue
		}

		v := top.next
		if b.IsLegal(top.row, top.col, v) {
			b.Values[top.row][top.col] = v
			top.next = v + 1

			nr, nc := b.NextEmpty(top.row, top.col+1)
			stack = append(stack, frame{row: nr, col: nc, next: 1})
		} else {
			top.next = v + 1
		}
	}

	return count
}
