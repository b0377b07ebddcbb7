// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/gridmat/matrix"
)

// Align computes the DTW distance between vectors a and b.
// Algorithm:
//  1. D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  2. D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1]),
//     with cells outside the window set to +∞.
//  3. distance = D[n][m]; with WithPath, backtrack from (n, m) preferring
//     the diagonal on ties.
//
// Returns the distance and, if requested, the path as 0-based (i, j) pairs.
// Complexity: O(n·m) time; O(n·m) or O(m) memory by MemoryMode.
func Align(a, b *matrix.Matrix[float64], opts ...Option) (distance float64, path [][2]int, err error) {
	o := gatherOptions(opts...)
	if o.wantPath && o.mode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}
	xs, ys, err := sequences(a, b, o)
	if err != nil {
		return 0, nil, err
	}

	if o.mode == TwoRows {
		return rolling(xs, ys, o), nil, nil
	}
	t := fill(xs, ys, o)
	distance = t.at(len(xs), len(ys))
	if o.wantPath {
		path = t.backtrack(o.penalty)
	}

	return distance, path, nil
}

// CostMatrix returns the accumulated (n+1)×(m+1) DTW table. Row 0 and
// column 0 hold the +∞ border, except (0, 0) which is 0.
func CostMatrix(a, b *matrix.Matrix[float64], opts ...Option) (*matrix.Matrix[float64], error) {
	o := gatherOptions(opts...)
	xs, ys, err := sequences(a, b, o)
	if err != nil {
		return nil, err
	}
	t := fill(xs, ys, o)

	return matrix.New(len(xs)+1, len(ys)+1, t.d)
}

// sequences validates both operands and the window, returning flat copies.
func sequences(a, b *matrix.Matrix[float64], o options) ([]float64, []float64, error) {
	if err := matrix.ValidateVector(a); err != nil {
		return nil, nil, fmt.Errorf("dtw: %w", err)
	}
	if err := matrix.ValidateVector(b); err != nil {
		return nil, nil, fmt.Errorf("dtw: %w", err)
	}
	if o.window < 0 {
		return nil, nil, ErrBadWindow
	}
	xs, ys := a.Elements(), b.Elements()
	if o.window > 0 && abs(len(xs)-len(ys)) > o.window {
		return nil, nil, ErrWindowTooNarrow
	}

	return xs, ys, nil
}

// table is the full DP table in row-major order.
type table struct {
	d    []float64
	cols int
	xs   []float64
	ys   []float64
}

func (t *table) at(i, j int) float64 { return t.d[i*t.cols+j] }

func fill(xs, ys []float64, o options) *table {
	n, m := len(xs), len(ys)
	t := &table{d: make([]float64, (n+1)*(m+1)), cols: m + 1, xs: xs, ys: ys}
	inf := math.Inf(1)
	for i := 1; i <= n; i++ {
		t.d[i*t.cols] = inf
	}
	for j := 1; j <= m; j++ {
		t.d[j] = inf
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if o.window > 0 && abs(i-j) > o.window {
				t.d[i*t.cols+j] = inf
				continue
			}
			t.d[i*t.cols+j] = math.Abs(xs[i-1]-ys[j-1]) +
				min(t.at(i-1, j)+o.penalty, t.at(i, j-1)+o.penalty, t.at(i-1, j-1))
		}
	}

	return t
}

// backtrack walks from (n, m) to (1, 1) along minimal predecessors.
func (t *table) backtrack(penalty float64) [][2]int {
	i, j := len(t.xs), len(t.ys)
	path := [][2]int{{i - 1, j - 1}}
	for i > 1 || j > 1 {
		diag := t.at(i-1, j-1)
		up := t.at(i-1, j) + penalty
		left := t.at(i, j-1) + penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
		path = append(path, [2]int{i - 1, j - 1})
	}
	slices.Reverse(path)

	return path
}

// rolling computes the distance keeping two rows.
func rolling(xs, ys []float64, o options) float64 {
	m := len(ys)
	inf := math.Inf(1)
	prev, curr := make([]float64, m+1), make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= len(xs); i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.window > 0 && abs(i-j) > o.window {
				curr[j] = inf
				continue
			}
			curr[j] = math.Abs(xs[i-1]-ys[j-1]) + min(prev[j]+o.penalty, curr[j-1]+o.penalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
