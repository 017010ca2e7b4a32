// Command handnet trains a two-layer feedforward network with
// hand-written backpropagation on the binary Iris subset and plots the
// loss curve to the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/handnet-ml/handnet/internal/dataset"
	"github.com/handnet-ml/handnet/internal/nn"
	"github.com/handnet-ml/handnet/internal/optim"
	"github.com/handnet-ml/handnet/internal/train"
)

func main() {
	epochs := flag.Int("epochs", 101, "Number of full-batch training epochs")
	lr := flag.Float64("lr", 0.001, "Learning rate for the SGD update")
	hidden := flag.Int("hidden", 32, "Hidden layer width")
	seed := flag.Int64("seed", 42, "Seed for weight initialization")
	plot := flag.Bool("plot", true, "Render the loss curve after training")
	flag.Parse()

	data := dataset.Iris()
	fmt.Printf("Dataset: %d samples, %d features (Iris setosa vs. versicolor, L2-row-normalized)\n",
		data.NumSamples(), dataset.NumFeatures)

	rng := rand.New(rand.NewSource(*seed))
	model := nn.NewFNN(nn.Config{
		HiddenDim: *hidden,
		LR:        *lr,
	}, rng)
	fmt.Printf("Model: %d -> %d -> %d, sigmoid activations, no biases (seed=%d)\n",
		model.InputDim(), model.HiddenDim(), model.OutputDim(), *seed)
	fmt.Printf("Optimizer: SGD (lr=%g), full batch, %d epochs\n\n", *lr, *epochs)

	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: model.LR()})
	trainer := train.New(model, optimizer, train.Config{Epochs: *epochs})

	history, err := trainer.Run(data.Features, data.Labels)
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	if *plot {
		fmt.Println()
		train.PlotLoss(history, os.Stdout)
	}
}
