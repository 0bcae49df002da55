// Package optim implements the parameter-update rule used to train models.
//
// Only vanilla stochastic gradient descent is provided; the two-layer
// network trains with plain `param -= lr * gradient` steps and a
// multiplicative learning-rate decay applied once per epoch.
package optim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Config holds configuration for the SGD optimizer.
type Config struct {
	LR    float64 // Learning rate (default: 0.01)
	Decay float64 // Multiplicative decay applied by DecayLR (default: 1.0, no decay)
}

// SGD implements stochastic gradient descent without momentum.
//
// Update rule:
//
//	param = param - lr * gradient
//
// DecayLR scales the learning rate by the configured decay factor; the
// training loop calls it after each full epoch.
type SGD struct {
	lr    float64
	decay float64
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config Config) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Decay == 0 {
		config.Decay = 1.0
	}

	return &SGD{
		lr:    config.LR,
		decay: config.Decay,
	}
}

// Step applies one gradient-descent update to a matrix parameter in place.
func (s *SGD) Step(param, grad *mat.Dense) {
	pr, pc := param.Dims()
	gr, gc := grad.Dims()
	if pr != gr || pc != gc {
		panic(fmt.Sprintf("sgd: parameter shape (%d,%d) does not match gradient shape (%d,%d)", pr, pc, gr, gc))
	}
	for i := 0; i < pr; i++ {
		prow := param.RawRowView(i)
		grow := grad.RawRowView(i)
		for j := range prow {
			prow[j] -= s.lr * grow[j]
		}
	}
}

// StepVec applies one gradient-descent update to a vector parameter in place.
func (s *SGD) StepVec(param, grad *mat.VecDense) {
	if param.Len() != grad.Len() {
		panic(fmt.Sprintf("sgd: parameter length %d does not match gradient length %d", param.Len(), grad.Len()))
	}
	for i := 0; i < param.Len(); i++ {
		param.SetVec(i, param.AtVec(i)-s.lr*grad.AtVec(i))
	}
}

// DecayLR multiplies the learning rate by the configured decay factor.
func (s *SGD) DecayLR() {
	s.lr *= s.decay
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
