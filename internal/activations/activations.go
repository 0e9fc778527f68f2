// Package activations provides the hidden-layer activation functions and the
// row-wise softmax output transform.
package activations

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Activation is a hidden-layer activation function.
//
// The derivative is expressed in terms of the activation's own output rather
// than its raw input: after a forward pass only the output activations are
// cached, and for sigmoid and tanh the derivative is recoverable from them.
type Activation interface {
	// Activate computes f(x).
	Activate(x float64) float64

	// DerivativeFromOutput computes f'(x) given y = f(x).
	DerivativeFromOutput(y float64) float64

	// WeightBound returns the half-width of the symmetric uniform interval
	// used to initialize a layer with the given fan-in and fan-out.
	WeightBound(fanIn, fanOut int) float64
}

// Parse resolves an activation kind name to its implementation.
// The supported kinds are "sigmoid" and "tanh".
func Parse(kind string) (Activation, error) {
	switch kind {
	case "sigmoid":
		return Sigmoid{}, nil
	case "tanh":
		return Tanh{}, nil
	}
	return nil, fmt.Errorf("unsupported activation %q (want sigmoid or tanh)", kind)
}

// Sigmoid activation function.
type Sigmoid struct{}

// Activate computes 1 / (1 + exp(-x)).
func (Sigmoid) Activate(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// DerivativeFromOutput computes s * (1 - s) for s = sigmoid(x).
func (Sigmoid) DerivativeFromOutput(y float64) float64 {
	return y * (1 - y)
}

// WeightBound returns sqrt(2 / (fanIn + fanOut)).
func (Sigmoid) WeightBound(fanIn, fanOut int) float64 {
	return math.Sqrt(2 / float64(fanIn+fanOut))
}

// Tanh activation function.
type Tanh struct{}

// Activate computes tanh(x).
func (Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// DerivativeFromOutput computes 1 - t*t for t = tanh(x).
func (Tanh) DerivativeFromOutput(y float64) float64 {
	return 1 - y*y
}

// WeightBound returns sqrt(6 / (fanIn + fanOut)).
func (Tanh) WeightBound(fanIn, fanOut int) float64 {
	return math.Sqrt(6 / float64(fanIn+fanOut))
}

// Softmax applies a row-wise softmax to z in place, mapping each row of raw
// scores to a probability distribution. Each row is shifted by its maximum
// before exponentiation so that large scores do not overflow; the shift
// cancels in the normalization and leaves the output unchanged.
func Softmax(z *mat.Dense) {
	rows, cols := z.Dims()
	for i := 0; i < rows; i++ {
		row := z.RawRowView(i)
		max := floats.Max(row)
		var sum float64
		for j := 0; j < cols; j++ {
			row[j] = math.Exp(row[j] - max)
			sum += row[j]
		}
		floats.Scale(1/sum, row)
	}
}
