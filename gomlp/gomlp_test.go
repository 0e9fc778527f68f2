package gomlp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mlp/gomlp/internal/dataset"
)

// TestEndToEnd trains a small classifier through the public surface and
// checks it separates two well-spaced clusters.
func TestEndToEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	data := dataset.Blobs(25, [][]float64{
		{0.1, 0.2},
		{0.9, 0.8},
	}, 0.1, rng)
	data.Shuffle(rng)
	train, test := data.Split(0.8)

	network, err := New(Config{
		InputSize:    2,
		OutputSize:   2,
		HiddenSizes:  []int{6},
		Activation:   Tanh,
		Output:       Softmax,
		Loss:         CrossEntropy,
		LearningRate: 0.05,
		RegLambda:    0.0001,
		BatchSize:    10,
		Verbose:      100,
		Seed:         9,
	})
	require.NoError(t, err)

	require.NoError(t, network.Fit(train.X, train.Labels, 200, true))

	assert.Greater(t, network.Score(test.X, test.Labels), 0.5)

	probs, err := network.Predict(test.X)
	require.NoError(t, err)
	rows, cols := probs.Dims()
	assert.Equal(t, test.Len(), rows)
	assert.Equal(t, 2, cols)
}

// TestConfigRejected tests that the facade surfaces configuration errors.
func TestConfigRejected(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrConfig)
}
