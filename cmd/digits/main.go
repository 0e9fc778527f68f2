package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/go-mlp/gomlp/gomlp"
	"github.com/go-mlp/gomlp/internal/dataset"
)

// Digits-style classifier: 64 features, 10 classes, one hidden layer of 128
// units. Pass a CSV path (last column = integer label) to train on real
// data; without arguments a synthetic clustered dataset is used.
func main() {
	var data *dataset.Dataset

	if len(os.Args) > 1 {
		var err error
		data, err = gomlp.LoadCSV(os.Args[1], 64, true)
		if err != nil {
			log.Fatalf("load dataset: %v", err)
		}
		data.Normalize()
	} else {
		data = syntheticDigits()
	}

	data.Shuffle(rand.New(rand.NewSource(1)))
	train, test := data.Split(0.8)

	network, err := gomlp.New(gomlp.Config{
		InputSize:    64,
		OutputSize:   10,
		HiddenSizes:  []int{128},
		Activation:   gomlp.Sigmoid,
		Output:       gomlp.Softmax,
		Loss:         gomlp.CrossEntropy,
		LearningRate: 0.001,
		RegLambda:    0.0001,
		Momentum:     0.9,
		BatchSize:    200,
		Verbose:      10,
		Seed:         1,
	})
	if err != nil {
		log.Fatalf("build network: %v", err)
	}
	network.EpochEnd = gomlp.ConsoleLogger()

	fmt.Printf("Training digits classifier on %d samples...\n", train.Len())
	if err := network.Fit(train.X, train.Labels, 100, true); err != nil {
		log.Fatalf("train: %v", err)
	}

	fmt.Printf("Test accuracy: %.4f\n", network.Score(test.X, test.Labels))
}

// syntheticDigits builds a 10-class, 64-feature clustered dataset standing
// in for the handwritten digits data.
func syntheticDigits() *dataset.Dataset {
	rng := rand.New(rand.NewSource(7))

	centers := make([][]float64, 10)
	for c := range centers {
		center := make([]float64, 64)
		for j := range center {
			center[j] = rng.Float64()
		}
		centers[c] = center
	}

	return dataset.Blobs(150, centers, 0.15, rng)
}
