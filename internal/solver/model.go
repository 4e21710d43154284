package solver

import "sudokuworkbench/internal/board"

// Model is the {0,1}-variable LP/ILP formulation from spec.md §4.4.
// Variable X[i,j,k] (k in 0..N-1, meaning value k+1) is linearized as
// index i*N*N + j*N + k. Every constraint in this formulation is an
// equality with right-hand side 1 and unit coefficients, so a row is
// represented simply as the list of variable indices it sums.
type Model struct {
	N         int
	BlockRows int
	BlockCols int
	NumVars   int
	Rows      [][]int // each row: variable indices that must sum to 1
}

// VarIndex linearizes (row, col, k) with k in 0..N-1.
func VarIndex(n, row, col, k int) int {
	return row*n*n + col*n + k
}

// Build constructs the constraint rows for b: sanity, row, column, block
// and clue constraints, in that order (matching spec.md §4.4 enumeration
// order 1..5).
func Build(b *board.Board) *Model {
	n := b.N
	m := &Model{N: n, BlockRows: b.BlockRows, BlockCols: b.BlockCols, NumVars: n * n * n}

	// 1. Sanity: for every (i,j), sum_k X[i,j,k] = 1.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row := make([]int, n)
			for k := 0; k < n; k++ {
				row[k] = VarIndex(n, i, j, k)
			}
			m.Rows = append(m.Rows, row)
		}
	}

	// 2. Rows: for every i,k, sum_j X[i,j,k] = 1.
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			row := make([]int, n)
			for j := 0; j < n; j++ {
				row[j] = VarIndex(n, i, j, k)
			}
			m.Rows = append(m.Rows, row)
		}
	}

	// 3. Columns: for every j,k, sum_i X[i,j,k] = 1.
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			row := make([]int, n)
			for i := 0; i < n; i++ {
				row[i] = VarIndex(n, i, j, k)
			}
			m.Rows = append(m.Rows, row)
		}
	}

	// 4. Blocks: for every block, every k, sum over the block's cells = 1.
	for blockRow := 0; blockRow < n/b.BlockRows; blockRow++ {
		for blockCol := 0; blockCol < n/b.BlockCols; blockCol++ {
			for k := 0; k < n; k++ {
				row := make([]int, 0, n)
				for a := 0; a < b.BlockRows; a++ {
					for c := 0; c < b.BlockCols; c++ {
						i := blockRow*b.BlockRows + a
						j := blockCol*b.BlockCols + c
						row = append(row, VarIndex(n, i, j, k))
					}
				}
				m.Rows = append(m.Rows, row)
			}
		}
	}

	// 5. Clues: for every currently filled cell (i,j) with value v,
	// X[i,j,v-1] = 1.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if b.Values[i][j] != 0 {
				m.Rows = append(m.Rows, []int{VarIndex(n, i, j, b.Values[i][j]-1)})
			}
		}
	}

	return m
}

// ReadCell returns the unique k (0-based) such that x[VarIndex(n,i,j,k)]
// rounds to 1, or -1 if no such k exists (x is not a valid 0/1 assignment
// at that cell).
func ReadCell(x []float64, n, i, j int) int {
	const tol = 1e-6
	for k := 0; k < n; k++ {
		if x[VarIndex(n, i, j, k)] > 1-tol {
			return k
		}
	}
	return -1
}
