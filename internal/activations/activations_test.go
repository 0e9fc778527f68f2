package activations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestParse tests activation kind resolution.
func TestParse(t *testing.T) {
	act, err := Parse("sigmoid")
	require.NoError(t, err)
	assert.IsType(t, Sigmoid{}, act)

	act, err = Parse("tanh")
	require.NoError(t, err)
	assert.IsType(t, Tanh{}, act)

	_, err = Parse("relu")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

// TestSigmoidDerivativeIdentity tests that the derivative computed from the
// sigmoid's output equals s * (1 - s).
func TestSigmoidDerivativeIdentity(t *testing.T) {
	s := Sigmoid{}
	for x := -6.0; x <= 6.0; x += 0.25 {
		y := s.Activate(x)
		assert.Greater(t, y, 0.0)
		assert.Less(t, y, 1.0)
		assert.InDelta(t, y*(1-y), s.DerivativeFromOutput(y), 1e-12)
	}
}

// TestTanhDerivativeIdentity tests that the derivative computed from the
// tanh's output equals 1 - t*t.
func TestTanhDerivativeIdentity(t *testing.T) {
	a := Tanh{}
	for x := -4.0; x <= 4.0; x += 0.25 {
		y := a.Activate(x)
		assert.InDelta(t, 1-y*y, a.DerivativeFromOutput(y), 1e-12)
	}
}

// TestWeightBound tests the fan-based initialization bounds.
func TestWeightBound(t *testing.T) {
	assert.InDelta(t, math.Sqrt(2.0/12), Sigmoid{}.WeightBound(4, 8), 1e-12)
	assert.InDelta(t, math.Sqrt(6.0/12), Tanh{}.WeightBound(4, 8), 1e-12)
}

// TestSoftmaxRows tests that every softmax row is a probability distribution.
func TestSoftmaxRows(t *testing.T) {
	z := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		-1, 0, 1, 2,
		0.5, 0.5, 0.5, 0.5,
	})
	Softmax(z)

	rows, cols := z.Dims()
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			v := z.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}

	// Uniform scores map to a uniform distribution.
	for j := 0; j < cols; j++ {
		assert.InDelta(t, 0.25, z.At(2, j), 1e-12)
	}
}

// TestSoftmaxStability tests that scores large enough to overflow exp are
// still normalized to finite probabilities.
func TestSoftmaxStability(t *testing.T) {
	z := mat.NewDense(1, 3, []float64{1000, 1001, 1002})
	Softmax(z)

	var sum float64
	for j := 0; j < 3; j++ {
		v := z.At(0, j)
		require.False(t, math.IsNaN(v))
		require.False(t, math.IsInf(v, 0))
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, z.At(0, 2), z.At(0, 1))
}

// TestSoftmaxShiftInvariance tests that the max shift leaves the normalized
// output identical to the unshifted computation.
func TestSoftmaxShiftInvariance(t *testing.T) {
	z := mat.NewDense(1, 3, []float64{0.1, 0.7, 0.2})
	Softmax(z)

	var raw [3]float64
	var sum float64
	for j, v := range []float64{0.1, 0.7, 0.2} {
		raw[j] = math.Exp(v)
		sum += raw[j]
	}
	for j := 0; j < 3; j++ {
		assert.InDelta(t, raw[j]/sum, z.At(0, j), 1e-12)
	}
}
