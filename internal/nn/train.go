package nn

import (
	"log"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/slate-ml/slate/internal/optim"
)

// TrainConfig configures a training run.
//
// Zero values select the documented defaults, so the zero TrainConfig
// is usable as-is except that NumIters must be set explicitly: zero
// iterations is a meaningful request and performs no updates.
type TrainConfig struct {
	// LearningRate is the initial SGD step size. Default: 1e-3.
	LearningRate float64

	// LearningRateDecay multiplies the learning rate after each epoch.
	// Default: 0.95.
	LearningRateDecay float64

	// Reg is the L2 regularization strength. Zero disables
	// regularization.
	Reg float64

	// NumIters is the number of mini-batch updates to perform. Zero
	// performs none and leaves the network unchanged.
	NumIters int

	// BatchSize is the number of examples sampled (with replacement)
	// for each update. Default: 200.
	BatchSize int

	// Verbose enables a progress line every 100 iterations.
	Verbose bool

	// Seed seeds the batch sampler. Runs with equal seeds and inputs
	// are identical; zero is an ordinary fixed seed.
	Seed uint64
}

// History records per-iteration and per-epoch statistics of a training
// run. LossHistory has one entry per iteration; the accuracy histories
// have one entry per completed epoch, where an epoch is
// max(numTrain/BatchSize, 1) iterations.
type History struct {
	LossHistory     []float64
	TrainAccHistory []float64
	ValAccHistory   []float64
}

// stream selector for the batch sampler PCG; the seed picks the
// sequence within the stream.
const samplerStream = 0x9e3779b97f4a7c15

// Train optimizes the network on the labelled set (x, y) with
// stochastic gradient descent, evaluating on (xVal, yVal) after each
// epoch.
//
// Each iteration samples BatchSize rows of x with replacement, applies
// one SGD step, and appends the batch loss to the history. At every
// epoch boundary the learning rate is decayed and the accuracy on the
// current batch and on the full validation set are recorded.
//
// Train mutates the network parameters in place and returns the run
// history. With NumIters == 0 the histories are empty and the
// parameters are untouched.
func (net *TwoLayerNet) Train(x *mat.Dense, y []int, xVal *mat.Dense, yVal []int, cfg TrainConfig) (*History, error) {
	if err := net.checkInput("train", x); err != nil {
		return nil, err
	}
	if err := net.checkInput("train", xVal); err != nil {
		return nil, err
	}
	numTrain, _ := x.Dims()
	numVal, _ := xVal.Dims()
	if len(y) != numTrain || len(yVal) != numVal {
		return nil, ErrLengthMismatch
	}
	for i, label := range y {
		if label < 0 || label >= net.numClasses {
			return nil, &LabelError{Index: i, Label: label, NumClasses: net.numClasses}
		}
	}
	for i, label := range yVal {
		if label < 0 || label >= net.numClasses {
			return nil, &LabelError{Index: i, Label: label, NumClasses: net.numClasses}
		}
	}
	if cfg.NumIters < 0 || cfg.BatchSize < 0 || cfg.Reg < 0 ||
		cfg.LearningRate < 0 || cfg.LearningRateDecay < 0 {
		return nil, ErrBadConfig
	}

	lr := cfg.LearningRate
	if lr == 0 {
		lr = 1e-3
	}
	decay := cfg.LearningRateDecay
	if decay == 0 {
		decay = 0.95
	}
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = 200
	}

	history := &History{}
	if cfg.NumIters == 0 {
		return history, nil
	}

	sgd := optim.NewSGD(optim.Config{LR: lr, Decay: decay})
	rng := rand.New(rand.NewPCG(cfg.Seed, samplerStream))
	iterationsPerEpoch := numTrain / batchSize
	if iterationsPerEpoch < 1 {
		iterationsPerEpoch = 1
	}

	xBatch := mat.NewDense(batchSize, net.inputDim, nil)
	yBatch := make([]int, batchSize)

	for it := 0; it < cfg.NumIters; it++ {
		for bi := 0; bi < batchSize; bi++ {
			idx := rng.IntN(numTrain)
			copy(xBatch.RawRowView(bi), x.RawRowView(idx))
			yBatch[bi] = y[idx]
		}

		loss, grads, err := net.Loss(xBatch, yBatch, cfg.Reg)
		if err != nil {
			return nil, err
		}
		history.LossHistory = append(history.LossHistory, loss)

		sgd.Step(net.W1, grads.W1)
		sgd.StepVec(net.B1, grads.B1)
		sgd.Step(net.W2, grads.W2)
		sgd.StepVec(net.B2, grads.B2)

		if cfg.Verbose && it%100 == 0 {
			log.Printf("iteration %d / %d: loss %f", it, cfg.NumIters, loss)
		}

		if (it+1)%iterationsPerEpoch == 0 {
			trainPred, err := net.Predict(xBatch)
			if err != nil {
				return nil, err
			}
			valPred, err := net.Predict(xVal)
			if err != nil {
				return nil, err
			}
			history.TrainAccHistory = append(history.TrainAccHistory, Accuracy(trainPred, yBatch))
			history.ValAccHistory = append(history.ValAccHistory, Accuracy(valPred, yVal))
			sgd.DecayLR()
		}
	}
	return history, nil
}
