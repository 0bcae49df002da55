// Package matutil implements the row- and column-wise dense kernels shared
// by the learning packages.
//
// All functions operate on gonum mat values. Shape validation here follows
// gonum's own convention: mismatched dimensions are programmer errors and
// panic. Input validation for user-supplied data happens at the exported
// API boundary of the packages that call into matutil.
package matutil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// AddRowVec adds v to every row of dst in place.
//
// dst has shape (N, C), v has length C. This is the broadcast used for
// bias terms: scores = X·W + b.
func AddRowVec(dst *mat.Dense, v *mat.VecDense) {
	r, c := dst.Dims()
	if v.Len() != c {
		panic(fmt.Sprintf("addrowvec: vector length %d does not match %d columns", v.Len(), c))
	}
	for i := 0; i < r; i++ {
		row := dst.RawRowView(i)
		for j := 0; j < c; j++ {
			row[j] += v.AtVec(j)
		}
	}
}

// ReLU applies max(0, x) element-wise in place.
func ReLU(dst *mat.Dense) {
	r, _ := dst.Dims()
	for i := 0; i < r; i++ {
		row := dst.RawRowView(i)
		for j, x := range row {
			if x < 0 {
				row[j] = 0
			}
		}
	}
}

// ZeroWhereNonPositive zeroes entries of dst wherever the matching entry of
// ref is <= 0. This is the ReLU gradient gate: d(max(0,x))/dx is 0 for
// x <= 0, and gating on the post-activation value is equivalent because
// max(0, x) <= 0 exactly when x <= 0.
func ZeroWhereNonPositive(dst, ref *mat.Dense) {
	dr, dc := dst.Dims()
	rr, rc := ref.Dims()
	if dr != rr || dc != rc {
		panic(fmt.Sprintf("zerowherenonpositive: shape (%d,%d) vs (%d,%d)", dr, dc, rr, rc))
	}
	for i := 0; i < dr; i++ {
		drow := dst.RawRowView(i)
		rrow := ref.RawRowView(i)
		for j, x := range rrow {
			if x <= 0 {
				drow[j] = 0
			}
		}
	}
}

// SoftmaxRows converts each row of dst into a probability distribution in
// place: exponentiate and normalize by the row sum.
//
// The per-row maximum is subtracted before exponentiating so large scores
// cannot overflow; softmax is invariant under this shift.
func SoftmaxRows(dst *mat.Dense) {
	r, _ := dst.Dims()
	for i := 0; i < r; i++ {
		row := dst.RawRowView(i)
		maxVal := math.Inf(-1)
		for _, x := range row {
			if x > maxVal {
				maxVal = x
			}
		}
		sum := 0.0
		for j, x := range row {
			e := math.Exp(x - maxVal)
			row[j] = e
			sum += e
		}
		for j := range row {
			row[j] /= sum
		}
	}
}

// ColSums returns the per-column sums of m as a vector of length C.
func ColSums(m mat.Matrix) *mat.VecDense {
	r, c := m.Dims()
	sums := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		s := 0.0
		for i := 0; i < r; i++ {
			s += m.At(i, j)
		}
		sums.SetVec(j, s)
	}
	return sums
}

// ArgmaxRows returns, for each row of m, the index of its maximum entry.
// Ties resolve to the lowest index.
func ArgmaxRows(m mat.Matrix) []int {
	r, c := m.Dims()
	idx := make([]int, r)
	for i := 0; i < r; i++ {
		best := 0
		bestVal := m.At(i, 0)
		for j := 1; j < c; j++ {
			if v := m.At(i, j); v > bestVal {
				best = j
				bestVal = v
			}
		}
		idx[i] = best
	}
	return idx
}

// SumSquares returns the sum of the squared entries of m.
func SumSquares(m mat.Matrix) float64 {
	r, c := m.Dims()
	s := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			s += v * v
		}
	}
	return s
}
