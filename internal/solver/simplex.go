package solver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSolverFail reports that the simplex iteration could not make
// progress (cycling guard tripped, or a numerical degeneracy it could
// not resolve). Per spec.md §4.4/§7 this is treated as fatal by callers:
// the solver's own internal state is not something higher layers can
// safely pick apart and recover from.
var ErrSolverFail = errors.New("solver: LP iteration failed")

const noUpperBound = math.MaxFloat64 / 4 // sentinel: artificial variables are unbounded above

// Bounds lets callers (branch-and-bound) override the default [0,1] box
// on model variables. A nil Bounds is equivalent to [0,1] on every
// variable. Fixing a variable is expressed as Lo[j] == Hi[j].
type Bounds struct {
	Lo, Hi []float64
}

func defaultBounds(numVars int) Bounds {
	lo := make([]float64, numVars)
	hi := make([]float64, numVars)
	for j := range hi {
		hi[j] = 1
	}
	return Bounds{Lo: lo, Hi: hi}
}

// LPResult is the outcome of a single Phase-1 feasibility solve.
type LPResult struct {
	Feasible bool
	X        []float64 // length NumVars, the feasibility solution's variable values
}

// SolveLP runs the continuous relaxation of m's equality system over the
// given bounds (or the default [0,1] box if bounds.Lo/Hi are nil) using a
// bounded-variable primal simplex in Phase-1 form: minimize the sum of
// artificial variables subject to the model's equalities. Because every
// constraint's objective contribution is zero (spec.md §4.4 — "the
// objective is the constant zero"), reaching a Phase-1 optimum of 0 *is*
// the answer: any such basic feasible solution is a valid witness.
func SolveLP(m *Model, bounds Bounds) (LPResult, error) {
	if bounds.Lo == nil {
		bounds = defaultBounds(m.NumVars)
	}
	numRows := len(m.Rows)
	numVars := m.NumVars
	total := numVars + numRows // model vars + one artificial per row

	lo := make([]float64, total)
	hi := make([]float64, total)
	copy(lo, bounds.Lo)
	copy(hi, bounds.Hi)
	for i := 0; i < numRows; i++ {
		lo[numVars+i] = 0
		hi[numVars+i] = noUpperBound
	}

	// Build the shifted tableau: y_j = x_j - lo_j, so every nonbasic
	// variable starts at y_j = 0 regardless of where its real lower bound
	// sits. rhsShift[i] = 1 - sum_{j in row i} lo[j].
	tab := mat.NewDense(numRows, total, nil)
	rhs := make([]float64, numRows)
	for i, row := range m.Rows {
		shift := 1.0
		for _, j := range row {
			tab.Set(i, j, 1)
			shift -= lo[j]
		}
		sign := 1.0
		if shift < 0 {
			sign = -1
			shift = -shift
			for _, j := range row {
				tab.Set(i, j, -1)
			}
		}
		tab.Set(i, numVars+i, sign) // artificial column, signed so its value starts nonnegative
		rhs[i] = shift
	}

	basis := make([]int, numRows)
	for i := range basis {
		basis[i] = numVars + i
	}
	atUpper := make([]bool, total) // nonbasic variables start at their lower (shifted-zero) bound

	// Objective row: minimize sum of artificials. cost[j] = 1 for
	// artificials, 0 otherwise.
	cost := make([]float64, total)
	for i := 0; i < numRows; i++ {
		cost[numVars+i] = 1
	}

	const maxIter = 20000
	for iter := 0; iter < maxIter; iter++ {
		// Reduced costs: z_j = cost[j] - sum_i cost[basis[i]] * tab[i][j].
		reduced := make([]float64, total)
		copy(reduced, cost)
		for i := 0; i < numRows; i++ {
			cb := cost[basis[i]]
			if cb == 0 {
				continue
			}
			for j := 0; j < total; j++ {
				reduced[j] -= cb * tab.At(i, j)
			}
		}

		enter, entering := -1, 1.0 // entering == +1 (rises from lower) or -1 (falls from upper)
		best := -1e-9
		for j := 0; j < total; j++ {
			if hi[j]-lo[j] <= 0 {
				continue // fixed variable, never a candidate
			}
			if !atUpper[j] {
				if reduced[j] < best {
					best, enter, entering = reduced[j], j, 1
				}
			} else {
				if -reduced[j] < best {
					best, enter, entering = -reduced[j], j, -1
				}
			}
		}
		if enter == -1 {
			break // optimal
		}

		// Ratio test: entering variable moves by theta in direction
		// `entering`, bounded by its own range and by keeping every
		// basic variable within its bounds.
		ownRange := hi[enter] - lo[enter]
		theta := ownRange
		leaveRow := -1
		leaveToUpper := false
		for i := 0; i < numRows; i++ {
			coef := tab.At(i, enter) * float64(entering)
			bv := basis[i]
			xb := rhs[i]
			if coef > 1e-9 {
				// xb decreases as theta grows: floor at lo[bv].
				room := xb - lo[bv]
				if bv >= numVars {
					// artificial: effective lower bound is 0, already lo[bv]==0
				}
				t := room / coef
				if t < theta-1e-12 {
					theta, leaveRow, leaveToUpper = t, i, false
				}
			} else if coef < -1e-9 {
				// xb increases as theta grows: ceiling at hi[bv].
				upper := hi[bv]
				if upper >= noUpperBound {
					continue
				}
				room := upper - xb
				t := room / (-coef)
				if t < theta-1e-12 {
					theta, leaveRow, leaveToUpper = t, i, true
				}
			}
		}
		if theta < 0 {
			theta = 0
		}

		// Apply the move to every basic variable and to rhs bookkeeping.
		for i := 0; i < numRows; i++ {
			coef := tab.At(i, enter) * float64(entering)
			rhs[i] -= coef * theta
		}

		if leaveRow == -1 {
			// Bound flip: entering variable swings to its other bound,
			// no basis change.
			atUpper[enter] = !atUpper[enter]
			continue
		}

		// Pivot: entering replaces basis[leaveRow].
		pivot := tab.At(leaveRow, enter)
		if math.Abs(pivot) < 1e-10 {
			return LPResult{}, ErrSolverFail
		}
		for j := 0; j < total; j++ {
			tab.Set(leaveRow, j, tab.At(leaveRow, j)/pivot)
		}
		// The leaving variable's new nonbasic value is its own bound
		// (lo or hi); rhs for that row, expressed in shifted space, is
		// recomputed for the *new* basic variable (enter) below.
		for i := 0; i < numRows; i++ {
			if i == leaveRow {
				continue
			}
			factor := tab.At(i, enter)
			if factor == 0 {
				continue
			}
			for j := 0; j < total; j++ {
				tab.Set(i, j, tab.At(i, j)-factor*tab.At(leaveRow, j))
			}
		}
		leavingVar := basis[leaveRow]
		atUpper[leavingVar] = leaveToUpper
		basis[leaveRow] = enter
		atUpper[enter] = false // now basic; flag unused until it leaves again

		// rhs for the pivoted row is the entering variable's new basic
		// value: theta above its lower bound if it rose from there, or
		// theta below its upper bound if it fell from there.
		rhs[leaveRow] = theta
		if entering == -1 {
			rhs[leaveRow] = hi[enter] - lo[enter] - theta
		}
	}

	// Recover x in original (unshifted) units.
	y := make([]float64, total)
	for j := 0; j < total; j++ {
		if atUpper[j] {
			y[j] = hi[j] - lo[j]
		}
	}
	for i, bv := range basis {
		y[bv] = rhs[i]
	}

	obj := 0.0
	x := make([]float64, numVars)
	for j := 0; j < numVars; j++ {
		x[j] = lo[j] + y[j]
	}
	for i := 0; i < numRows; i++ {
		obj += cost[basis[i]] * rhs[i]
	}
	for j := 0; j < total; j++ {
		if atUpper[j] {
			obj += cost[j] * (hi[j] - lo[j])
		}
	}

	return LPResult{Feasible: obj < 1e-6, X: x}, nil
}
