package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/go-mlp/gomlp/gomlp"
	"github.com/go-mlp/gomlp/internal/dataset"
)

// Iris-style classifier: 3 classes (Setosa, Versicolor, Virginica), 4
// features per sample (sepal length/width, petal length/width). Samples are
// generated around the per-class feature means.
func main() {
	fmt.Println("Training iris classifier (4-[8]-3 network)...")

	rng := rand.New(rand.NewSource(42))
	centers := [][]float64{
		{5.0, 3.4, 1.5, 0.2}, // Setosa
		{5.9, 2.8, 4.3, 1.3}, // Versicolor
		{6.6, 3.0, 5.6, 2.0}, // Virginica
	}
	data := dataset.Blobs(30, centers, 0.25, rng)
	data.Normalize()
	data.Shuffle(rng)
	train, test := data.Split(0.8)

	network, err := gomlp.New(gomlp.Config{
		InputSize:    4,
		OutputSize:   3,
		HiddenSizes:  []int{8},
		Activation:   gomlp.Tanh,
		Output:       gomlp.Softmax,
		Loss:         gomlp.CrossEntropy,
		LearningRate: 0.01,
		RegLambda:    0.0001,
		BatchSize:    16,
		Verbose:      50,
		Seed:         42,
	})
	if err != nil {
		log.Fatalf("build network: %v", err)
	}
	network.EpochEnd = gomlp.ConsoleLogger()

	if err := network.Fit(train.X, train.Labels, 500, true); err != nil {
		log.Fatalf("train: %v", err)
	}

	fmt.Printf("\nTest accuracy: %.4f\n", network.Score(test.X, test.Labels))

	fmt.Println("\nSample predictions:")
	probs, err := network.Predict(test.X)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}
	for i := 0; i < test.Len() && i < 10; i++ {
		pred, best := 0, probs.At(i, 0)
		for j := 1; j < 3; j++ {
			if p := probs.At(i, j); p > best {
				pred, best = j, p
			}
		}
		fmt.Printf("Sample %d: predicted=%d (p=%.3f), actual=%d\n", i, pred, best, test.Labels[i])
	}
}
