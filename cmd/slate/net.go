package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/slate-ml/slate/dataset"
	"github.com/slate-ml/slate/nn"
)

// runNet trains a two-layer network on synthetic Gaussian blobs and
// reports how the loss and validation accuracy evolved.
func runNet(args []string) {
	fs := flag.NewFlagSet("net", flag.ExitOnError)
	samples := fs.Int("samples", 600, "number of samples to generate")
	classes := fs.Int("classes", 3, "number of blob classes")
	spread := fs.Float64("spread", 0.6, "blob standard deviation")
	hidden := fs.Int("hidden", 16, "hidden layer size")
	iters := fs.Int("iters", 1000, "training iterations")
	batch := fs.Int("batch", 50, "mini-batch size")
	lr := fs.Float64("lr", 0.1, "initial learning rate")
	decay := fs.Float64("decay", 0.95, "per-epoch learning rate decay")
	reg := fs.Float64("reg", 1e-5, "L2 regularization strength")
	seed := fs.Uint64("seed", 42, "seed for data generation and batch sampling")
	verbose := fs.Bool("v", false, "log progress every 100 iterations")
	fs.Parse(args)

	x, y := dataset.Blobs(*samples, 2, *classes, *spread, *seed)
	xTrain, yTrain, xVal, yVal := dataset.Split(x, y, 0.8)

	net := nn.NewTwoLayerNet(2, *hidden, *classes, 0.1)
	fmt.Printf("training a 2-%d-%d network on %d samples (%d held out)\n",
		*hidden, *classes, len(yTrain), len(yVal))

	history, err := net.Train(xTrain, yTrain, xVal, yVal, nn.TrainConfig{
		LearningRate:      *lr,
		LearningRateDecay: *decay,
		Reg:               *reg,
		NumIters:          *iters,
		BatchSize:         *batch,
		Verbose:           *verbose,
		Seed:              *seed,
	})
	if err != nil {
		log.Fatalf("slate net: %v", err)
	}
	if len(history.LossHistory) == 0 {
		fmt.Println("no iterations performed")
		return
	}

	fmt.Printf("loss: %.4f -> %.4f over %d iterations\n",
		history.LossHistory[0],
		history.LossHistory[len(history.LossHistory)-1],
		len(history.LossHistory))
	if n := len(history.ValAccHistory); n > 0 {
		fmt.Printf("validation accuracy after %d epochs: %.3f\n",
			n, history.ValAccHistory[n-1])
	}

	pred, err := net.Predict(xVal)
	if err != nil {
		log.Fatalf("slate net: %v", err)
	}
	fmt.Printf("held-out accuracy: %.3f\n", nn.Accuracy(pred, yVal))
}
