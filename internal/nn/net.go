// Package nn implements a small fully-connected neural network for
// multi-class classification.
//
// The network has the architecture
//
//	input -> linear -> ReLU -> linear -> softmax
//
// and is trained with a softmax cross-entropy loss and L2
// regularization on the weight matrices. Gradients are computed
// analytically by backpropagation; no autodiff machinery is involved.
//
// All numeric state lives in gonum dense matrices. Operations are
// single-threaded and deterministic for a fixed parameter state and
// input.
package nn

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/slate-ml/slate/internal/matutil"
)

// DefaultInitScale is the standard deviation used for weight
// initialization when NewTwoLayerNet is called with initScale <= 0.
const DefaultInitScale = 1e-4

// TwoLayerNet is a two-layer fully-connected network.
//
// Shapes, for input dimension D, hidden dimension H and C classes:
//
//	W1: (D, H)   first layer weights
//	B1: (H)      first layer biases
//	W2: (H, C)   second layer weights
//	B2: (C)      second layer biases
//
// The parameter fields are exported so that optimizers and tests can
// read and update them in place. Replacing a field with a matrix of a
// different shape breaks the network.
type TwoLayerNet struct {
	W1 *mat.Dense
	B1 *mat.VecDense
	W2 *mat.Dense
	B2 *mat.VecDense

	inputDim   int
	hiddenDim  int
	numClasses int
}

// Gradients holds the loss gradients with respect to each parameter of
// a TwoLayerNet. Every field has the same shape as the parameter it
// corresponds to.
type Gradients struct {
	W1 *mat.Dense
	B1 *mat.VecDense
	W2 *mat.Dense
	B2 *mat.VecDense
}

// NewTwoLayerNet creates a network with the given dimensions.
//
// Weights are drawn from a zero-mean normal distribution with standard
// deviation initScale (DefaultInitScale if initScale <= 0) using the
// shared global random source; biases start at zero. Panics if any
// dimension is not positive.
func NewTwoLayerNet(inputDim, hiddenDim, numClasses int, initScale float64) *TwoLayerNet {
	if inputDim <= 0 || hiddenDim <= 0 || numClasses <= 0 {
		panic("nn: network dimensions must be positive")
	}
	if initScale <= 0 {
		initScale = DefaultInitScale
	}
	dist := distuv.Normal{Mu: 0, Sigma: initScale}
	return &TwoLayerNet{
		W1:         randomDense(inputDim, hiddenDim, dist),
		B1:         mat.NewVecDense(hiddenDim, nil),
		W2:         randomDense(hiddenDim, numClasses, dist),
		B2:         mat.NewVecDense(numClasses, nil),
		inputDim:   inputDim,
		hiddenDim:  hiddenDim,
		numClasses: numClasses,
	}
}

// NewTwoLayerNetFrom creates a network with the given dimensions whose
// weights are drawn from src instead of the global random source. It
// is used when a reproducible initialization is required.
func NewTwoLayerNetFrom(inputDim, hiddenDim, numClasses int, initScale float64, src rand.Source) *TwoLayerNet {
	if inputDim <= 0 || hiddenDim <= 0 || numClasses <= 0 {
		panic("nn: network dimensions must be positive")
	}
	if initScale <= 0 {
		initScale = DefaultInitScale
	}
	dist := distuv.Normal{Mu: 0, Sigma: initScale, Src: src}
	return &TwoLayerNet{
		W1:         randomDense(inputDim, hiddenDim, dist),
		B1:         mat.NewVecDense(hiddenDim, nil),
		W2:         randomDense(hiddenDim, numClasses, dist),
		B2:         mat.NewVecDense(numClasses, nil),
		inputDim:   inputDim,
		hiddenDim:  hiddenDim,
		numClasses: numClasses,
	}
}

func randomDense(r, c int, dist distuv.Normal) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(r, c, data)
}

// InputDim returns the number of input features D.
func (net *TwoLayerNet) InputDim() int { return net.inputDim }

// HiddenDim returns the hidden layer size H.
func (net *TwoLayerNet) HiddenDim() int { return net.hiddenDim }

// NumClasses returns the number of output classes C.
func (net *TwoLayerNet) NumClasses() int { return net.numClasses }

// NumParams returns the total number of scalar parameters.
func (net *TwoLayerNet) NumParams() int {
	return net.inputDim*net.hiddenDim + net.hiddenDim +
		net.hiddenDim*net.numClasses + net.numClasses
}

// Forward computes the class scores for a batch of inputs.
//
// x has shape (N, D); the result has shape (N, C) and contains raw,
// unnormalized scores. Returns ErrEmptyInput for a nil input and a
// ShapeError when the input width does not match the network.
func (net *TwoLayerNet) Forward(x *mat.Dense) (*mat.Dense, error) {
	if err := net.checkInput("forward", x); err != nil {
		return nil, err
	}
	_, scores := net.forward(x)
	return scores, nil
}

// forward runs the network and returns both the post-ReLU hidden
// activations (N, H) and the raw class scores (N, C). The hidden
// activations are needed again during backpropagation.
func (net *TwoLayerNet) forward(x *mat.Dense) (hidden, scores *mat.Dense) {
	var h mat.Dense
	h.Mul(x, net.W1)
	matutil.AddRowVec(&h, net.B1)
	matutil.ReLU(&h)

	var s mat.Dense
	s.Mul(&h, net.W2)
	matutil.AddRowVec(&s, net.B2)
	return &h, &s
}

// Loss computes the softmax cross-entropy loss and its gradients for a
// labelled batch.
//
// x has shape (N, D) and y holds N class labels in [0, NumClasses).
// reg is the L2 regularization strength; the regularization term
// 0.5*reg*(sum(W1^2)+sum(W2^2)) penalizes the weight matrices only,
// never the biases. The returned gradients include the regularization
// contribution.
func (net *TwoLayerNet) Loss(x *mat.Dense, y []int, reg float64) (float64, *Gradients, error) {
	if err := net.checkInput("loss", x); err != nil {
		return 0, nil, err
	}
	n, _ := x.Dims()
	if len(y) != n {
		return 0, nil, ErrLengthMismatch
	}
	for i, label := range y {
		if label < 0 || label >= net.numClasses {
			return 0, nil, &LabelError{Index: i, Label: label, NumClasses: net.numClasses}
		}
	}
	if reg < 0 {
		return 0, nil, ErrBadConfig
	}

	hidden, scores := net.forward(x)

	// Softmax probabilities, then the mean negative log-likelihood of
	// the true classes.
	probs := mat.DenseCopyOf(scores)
	matutil.SoftmaxRows(probs)

	dataLoss := 0.0
	for i, label := range y {
		dataLoss -= math.Log(probs.At(i, label))
	}
	dataLoss /= float64(n)
	regLoss := 0.5 * reg * (matutil.SumSquares(net.W1) + matutil.SumSquares(net.W2))
	loss := dataLoss + regLoss

	// Backward pass. The gradient on the scores is (probs - onehot)/N;
	// probs is not needed afterwards, so it is updated in place.
	dScores := probs
	inv := 1 / float64(n)
	for i, label := range y {
		row := dScores.RawRowView(i)
		row[label] -= 1
		for j := range row {
			row[j] *= inv
		}
	}

	grads := &Gradients{}

	var gw2 mat.Dense
	gw2.Mul(hidden.T(), dScores)
	grads.W2 = &gw2
	grads.B2 = matutil.ColSums(dScores)

	var dHidden mat.Dense
	dHidden.Mul(dScores, net.W2.T())
	matutil.ZeroWhereNonPositive(&dHidden, hidden)

	var gw1 mat.Dense
	gw1.Mul(x.T(), &dHidden)
	grads.W1 = &gw1
	grads.B1 = matutil.ColSums(&dHidden)

	if reg != 0 {
		addScaled(grads.W1, net.W1, reg)
		addScaled(grads.W2, net.W2, reg)
	}
	return loss, grads, nil
}

// Predict returns the most likely class for each input row. Ties are
// broken toward the lowest class index.
func (net *TwoLayerNet) Predict(x *mat.Dense) ([]int, error) {
	if err := net.checkInput("predict", x); err != nil {
		return nil, err
	}
	_, scores := net.forward(x)
	return matutil.ArgmaxRows(scores), nil
}

// Clone returns a deep copy of the network. The copy shares no state
// with the original, so training one leaves the other untouched.
func (net *TwoLayerNet) Clone() *TwoLayerNet {
	return &TwoLayerNet{
		W1:         mat.DenseCopyOf(net.W1),
		B1:         mat.VecDenseCopyOf(net.B1),
		W2:         mat.DenseCopyOf(net.W2),
		B2:         mat.VecDenseCopyOf(net.B2),
		inputDim:   net.inputDim,
		hiddenDim:  net.hiddenDim,
		numClasses: net.numClasses,
	}
}

func (net *TwoLayerNet) checkInput(op string, x *mat.Dense) error {
	if x == nil {
		return ErrEmptyInput
	}
	n, d := x.Dims()
	if n == 0 {
		return ErrEmptyInput
	}
	if d != net.inputDim {
		return &ShapeError{Op: op, Want: net.inputDim, Got: d}
	}
	return nil
}

// addScaled sets dst += f*src. Both matrices must have the same shape.
func addScaled(dst, src *mat.Dense, f float64) {
	r, _ := dst.Dims()
	for i := 0; i < r; i++ {
		drow := dst.RawRowView(i)
		srow := src.RawRowView(i)
		for j := range drow {
			drow[j] += f * srow[j]
		}
	}
}

// Accuracy returns the fraction of predictions that match the labels.
// It returns 0 for empty input and panics when the slices differ in
// length.
func Accuracy(pred, labels []int) float64 {
	if len(pred) != len(labels) {
		panic("nn: accuracy: prediction and label lengths do not match")
	}
	if len(pred) == 0 {
		return 0
	}
	correct := 0
	for i, p := range pred {
		if p == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(pred))
}
