// Package dataset generates small synthetic datasets for demos and
// tests.
package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// blobRadius is the distance of every cluster center from the origin.
const blobRadius = 3.0

// stream selector for the blob sampler PCG.
const blobStream = 0xa0761d6478bd642f

// Blobs samples n points from `classes` isotropic Gaussian clusters
// and returns the points as an (n, dim) matrix together with their
// class labels.
//
// Cluster centers are spaced evenly on a circle of radius 3 in the
// first two dimensions (use dim >= 2 for more than two classes, or the
// centers collapse onto a line). spread is the standard deviation of
// each cluster; values <= 0 default to 1. Labels are assigned
// round-robin, so every prefix of the dataset is approximately class
// balanced. The same seed always produces the same dataset.
func Blobs(n, dim, classes int, spread float64, seed uint64) (*mat.Dense, []int) {
	if n <= 0 || dim <= 0 || classes <= 0 {
		panic("dataset: blobs arguments must be positive")
	}
	if spread <= 0 {
		spread = 1.0
	}

	centers := make([][]float64, classes)
	for c := range centers {
		center := make([]float64, dim)
		angle := 2 * math.Pi * float64(c) / float64(classes)
		center[0] = blobRadius * math.Cos(angle)
		if dim > 1 {
			center[1] = blobRadius * math.Sin(angle)
		}
		centers[c] = center
	}

	noise := distuv.Normal{Mu: 0, Sigma: spread, Src: rand.NewPCG(seed, blobStream)}

	x := mat.NewDense(n, dim, nil)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		c := i % classes
		y[i] = c
		row := x.RawRowView(i)
		for j := 0; j < dim; j++ {
			row[j] = centers[c][j] + noise.Rand()
		}
	}
	return x, y
}

// Split divides (x, y) into a training and a test portion, in order,
// with the first trainFrac of the rows going to the training side.
// The returned matrices are views sharing x's backing data.
//
// Split panics when the label count does not match the rows of x or
// when trainFrac leaves either side empty.
func Split(x *mat.Dense, y []int, trainFrac float64) (xTrain *mat.Dense, yTrain []int, xTest *mat.Dense, yTest []int) {
	n, d := x.Dims()
	if len(y) != n {
		panic("dataset: split: matrix rows and label count do not match")
	}
	nTrain := int(float64(n) * trainFrac)
	if nTrain < 1 || nTrain >= n {
		panic("dataset: split fraction leaves an empty side")
	}

	xTrain = x.Slice(0, nTrain, 0, d).(*mat.Dense)
	xTest = x.Slice(nTrain, n, 0, d).(*mat.Dense)
	return xTrain, y[:nTrain], xTest, y[nTrain:]
}
