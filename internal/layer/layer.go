// Package layer provides the per-transition parameters of a dense network
// and their random initialization.
package layer

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/go-mlp/gomlp/internal/activations"
)

// Dense holds the parameters of one layer transition. W has shape
// (fanIn, fanOut) and B one entry per output unit. Parameters are owned by a
// single network and updated in place during training.
type Dense struct {
	W *mat.Dense
	B []float64
}

// NewDense draws every weight and bias entry independently and uniformly
// from [-bound, bound], where bound comes from the activation's fan-based
// rule. All entropy is taken from rng.
func NewDense(fanIn, fanOut int, act activations.Activation, rng *rand.Rand) *Dense {
	bound := act.WeightBound(fanIn, fanOut)

	w := make([]float64, fanIn*fanOut)
	for i := range w {
		w[i] = uniform(rng, bound)
	}
	b := make([]float64, fanOut)
	for i := range b {
		b[i] = uniform(rng, bound)
	}

	return &Dense{
		W: mat.NewDense(fanIn, fanOut, w),
		B: b,
	}
}

// InSize returns the fan-in of the transition.
func (d *Dense) InSize() int {
	r, _ := d.W.Dims()
	return r
}

// OutSize returns the fan-out of the transition.
func (d *Dense) OutSize() int {
	_, c := d.W.Dims()
	return c
}

// Init builds the full parameter stack for the given layer widths:
// input->hidden[0], hidden[i]->hidden[i+1], hidden[last]->output.
// The stack always has len(hidden)+1 transitions.
func Init(inputSize int, hidden []int, outputSize int, act activations.Activation, rng *rand.Rand) []*Dense {
	widths := make([]int, 0, len(hidden)+2)
	widths = append(widths, inputSize)
	widths = append(widths, hidden...)
	widths = append(widths, outputSize)

	stack := make([]*Dense, len(widths)-1)
	for i := range stack {
		stack[i] = NewDense(widths[i], widths[i+1], act, rng)
	}
	return stack
}

func uniform(rng *rand.Rand, bound float64) float64 {
	return rng.Float64()*2*bound - bound
}
