// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small two-layer neural network classifier.
//
// # Overview
//
// TwoLayerNet implements the architecture
//
//	input -> linear -> ReLU -> linear -> softmax
//
// trained by mini-batch stochastic gradient descent on a softmax
// cross-entropy loss with L2 regularization. Gradients come from an
// analytic backward pass, making the package a compact, readable
// reference for how backpropagation works on a real (if small) model.
//
// # Basic Usage
//
//	import (
//	    "github.com/slate-ml/slate/dataset"
//	    "github.com/slate-ml/slate/nn"
//	)
//
//	func main() {
//	    x, y := dataset.Blobs(500, 2, 3, 0.6, 42)
//	    xTrain, yTrain, xVal, yVal := dataset.Split(x, y, 0.8)
//
//	    net := nn.NewTwoLayerNet(2, 16, 3, 1e-2)
//	    history, err := net.Train(xTrain, yTrain, xVal, yVal, nn.TrainConfig{
//	        LearningRate: 0.1,
//	        Reg:          1e-5,
//	        NumIters:     1000,
//	        BatchSize:    50,
//	        Verbose:      true,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, _ := net.Predict(xVal)
//	    fmt.Printf("validation accuracy: %.3f\n", nn.Accuracy(pred, yVal))
//	    _ = history
//	}
//
// # Numeric Conventions
//
// All data is float64 in gonum dense matrices, rows are samples and
// columns are features. The softmax subtracts each row's maximum
// before exponentiation, so large scores cannot overflow. Operations
// are single-threaded; a network must not be shared between goroutines
// without external locking.
package nn
