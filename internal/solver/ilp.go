package solver

import (
	"math"

	"sudokuworkbench/internal/board"
)

// Status is the shared result alphabet of the ILP and LP back-ends
// (spec.md §4.4), using one Go type with a documented substitution: ILP
// callers read Status, LP callers read Status but must treat Status as
// "LP_FAIL" wherever it says SolverFail — both are fatal for the same
// reason (the optimizer's own allocations are not safely reclaimable).
type Status int

const (
	Solvable Status = iota
	Unsolvable
	AllocFail
	SolverFail
)

// SolveILP implements the ILP back-end contract: on Solvable it writes
// the unique completion into b; on Unsolvable, AllocFail or SolverFail,
// b is left unchanged.
func SolveILP(b *board.Board) (Status, error) {
	m := Build(b)
	x, ok, err := branchAndBound(m, defaultBounds(m.NumVars), 0)
	if err != nil {
		return SolverFail, err
	}
	if !ok {
		return Unsolvable, nil
	}
	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			if ReadCell(x, b.N, i, j) == -1 {
				return SolverFail, ErrSolverFail
			}
		}
	}
	for i := 0; i < b.N; i++ {
		for j := 0; j < b.N; j++ {
			b.Values[i][j] = ReadCell(x, b.N, i, j) + 1
		}
	}
	return Solvable, nil
}

// SolveLPScores implements the LP back-end contract: returns the
// N^3-length continuous-relaxation score array, without touching b.
func SolveLPScores(b *board.Board) (Status, []float64, error) {
	m := Build(b)
	res, err := SolveLP(m, defaultBounds(m.NumVars))
	if err != nil {
		return SolverFail, nil, err
	}
	if !res.Feasible {
		return Unsolvable, nil, nil
	}
	return Solvable, res.X, nil
}

const branchDepthGuard = 100000 // generous backstop against pathological recursion depth bookkeeping, never expected to bind on any real board

// branchAndBound performs LP-relaxation-guided branch and bound to find
// an integral point of m's feasible region, or report infeasibility.
// Each recursive call tightens bounds on one variable (fixing it to 0 or
// 1) and re-solves the relaxation; a relaxation that is already integral
// is accepted outright.
func branchAndBound(m *Model, bounds Bounds, depth int) ([]float64, bool, error) {
	if depth > branchDepthGuard {
		return nil, false, ErrSolverFail
	}
	res, err := SolveLP(m, bounds)
	if err != nil {
		return nil, false, err
	}
	if !res.Feasible {
		return nil, false, nil
	}

	j, val := mostFractional(res.X, bounds)
	if j == -1 {
		return res.X, true, nil
	}

	// Try the branch closest to the relaxation's own value first.
	order := [2]float64{0, 1}
	if val > 0.5 {
		order = [2]float64{1, 0}
	}
	for _, branchTo := range order {
		b2 := Bounds{Lo: append([]float64(nil), bounds.Lo...), Hi: append([]float64(nil), bounds.Hi...)}
		b2.Lo[j], b2.Hi[j] = branchTo, branchTo
		if x, ok, err := branchAndBound(m, b2, depth+1); err != nil {
			return nil, false, err
		} else if ok {
			return x, true, nil
		}
	}
	return nil, false, nil
}

// mostFractional returns the index of the free (non-fixed) variable
// closest to 0.5, preferring the earliest such index on ties, or -1 if
// every free variable already sits within tol of 0 or 1.
func mostFractional(x []float64, bounds Bounds) (int, float64) {
	const tol = 1e-6
	best, bestDist := -1, math.Inf(1)
	for j, v := range x {
		if bounds.Hi[j]-bounds.Lo[j] <= 0 {
			continue // fixed by an earlier branch
		}
		dist := math.Abs(v - 0.5)
		if v < tol || v > 1-tol {
			continue // already integral
		}
		if dist < bestDist {
			best, bestDist = j, dist
		}
	}
	if best == -1 {
		return -1, 0
	}
	return best, x[best]
}
