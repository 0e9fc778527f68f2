// Package loss provides the regularized cross-entropy loss, classification
// accuracy, and one-hot label encoding.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// eps floors predicted probabilities before the logarithm so a confidently
// wrong prediction yields a large finite loss instead of +Inf.
const eps = 1e-10

// OneHot converts integer class labels into an indicator matrix of shape
// (len(y), nClasses) with a single 1 per row at the label's column.
func OneHot(y []int, nClasses int) *mat.Dense {
	m := mat.NewDense(len(y), nClasses, nil)
	for i, label := range y {
		m.Set(i, label, 1)
	}
	return m
}

// CrossEntropy computes the mean negative log-likelihood of the true labels
// under the predicted distributions: -1/n * sum(onehot(y) * log(probs)).
// Probabilities below eps are clamped before the logarithm.
func CrossEntropy(probs *mat.Dense, y []int, nClasses int) float64 {
	n, _ := probs.Dims()
	oh := OneHot(y, nClasses)

	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < nClasses; j++ {
			p := probs.At(i, j)
			if p < eps {
				p = eps
			}
			sum += oh.At(i, j) * math.Log(p)
		}
	}
	return -sum / float64(n)
}

// L2Penalty returns lambda/2 times the sum of squared weight entries over
// all weight matrices.
func L2Penalty(lambda float64, weights []*mat.Dense) float64 {
	var sum float64
	for _, w := range weights {
		for _, v := range w.RawMatrix().Data {
			sum += v * v
		}
	}
	return lambda / 2 * sum
}

// Accuracy returns the fraction of rows whose argmax matches the label.
func Accuracy(probs *mat.Dense, y []int) float64 {
	n, _ := probs.Dims()
	correct := 0
	for i := 0; i < n; i++ {
		if floats.MaxIdx(probs.RawRowView(i)) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(n)
}
