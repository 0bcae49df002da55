// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset generates small synthetic datasets for demos and
// experiments.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/slate-ml/slate/internal/dataset"
)

// Blobs samples n points from `classes` Gaussian clusters arranged on
// a circle and returns them as an (n, dim) matrix with round-robin
// class labels. The same seed always produces the same dataset.
//
// Example:
//
//	x, y := dataset.Blobs(500, 2, 3, 0.6, 42)
func Blobs(n, dim, classes int, spread float64, seed uint64) (*mat.Dense, []int) {
	return dataset.Blobs(n, dim, classes, spread, seed)
}

// Split divides (x, y) in order into a training portion holding the
// first trainFrac of the rows and a test portion holding the rest. The
// returned matrices are views into x.
func Split(x *mat.Dense, y []int, trainFrac float64) (xTrain *mat.Dense, yTrain []int, xTest *mat.Dense, yTest []int) {
	return dataset.Split(x, y, trainFrac)
}
