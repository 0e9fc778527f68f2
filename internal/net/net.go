// Package net implements a dense feed-forward classifier with a softmax
// output, trained by mini-batch gradient descent with L2 regularization.
package net

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/go-mlp/gomlp/internal/activations"
	"github.com/go-mlp/gomlp/internal/layer"
	"github.com/go-mlp/gomlp/internal/loss"
	"github.com/go-mlp/gomlp/internal/opt"
)

// Network is a multilayer perceptron. Parameters are created by Fit and
// mutated in place once per mini-batch; a Network is not safe for concurrent
// use and must be owned by one training loop at a time.
type Network struct {
	cfg Config
	act activations.Activation
	opt opt.Optimizer
	rng *rand.Rand

	layers []*layer.Dense // one per transition; nil until Fit
	acts   []*mat.Dense   // activation cache, one per layer incl. input
	deltas []*mat.Dense   // error cache, one per non-input layer

	// EpochEnd, if set, observes loss and accuracy over the full dataset at
	// the Verbose cadence during Fit.
	EpochEnd EpochFunc
}

// New validates cfg and builds an untrained network. Parameters are not
// sampled until Fit runs.
func New(cfg Config) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate already vetted the kind.
	act, _ := activations.Parse(cfg.Activation)

	return &Network{
		cfg: cfg,
		act: act,
		opt: opt.SGD{LearningRate: cfg.LearningRate, Momentum: cfg.Momentum},
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Config returns the network's configuration.
func (n *Network) Config() Config {
	return n.cfg
}

// Layers returns the network's parameter stack. It is nil before Fit.
func (n *Network) Layers() []*layer.Dense {
	return n.layers
}

// Fit trains the network on X (one sample per row) and integer class labels
// y for maxEpochs epochs. With shuffle set, one random permutation is
// applied jointly to X and y before each epoch. Parameters are initialized
// once at the start of the call; any previous training state is discarded.
func (n *Network) Fit(X *mat.Dense, y []int, maxEpochs int, shuffle bool) error {
	rows, cols := X.Dims()
	if cols != n.cfg.InputSize {
		return fmt.Errorf("%w: X has %d features, network expects %d", ErrShape, cols, n.cfg.InputSize)
	}
	if len(y) != rows {
		return fmt.Errorf("%w: X has %d samples but y has %d labels", ErrShape, rows, len(y))
	}
	for i, label := range y {
		if label < 0 || label >= n.cfg.OutputSize {
			return fmt.Errorf("%w: label %d at sample %d outside [0, %d)", ErrShape, label, i, n.cfg.OutputSize)
		}
	}

	n.layers = layer.Init(n.cfg.InputSize, n.cfg.HiddenSizes, n.cfg.OutputSize, n.act, n.rng)

	for epoch := 0; epoch < maxEpochs; epoch++ {
		if shuffle {
			X, y = shuffled(X, y, n.rng)
		}

		// Contiguous mini-batches; the final batch may be shorter.
		for start := 0; start < rows; start += n.cfg.BatchSize {
			end := start + n.cfg.BatchSize
			if end > rows {
				end = rows
			}
			batch := X.Slice(start, end, 0, cols).(*mat.Dense)
			n.forward(batch)
			n.backward(y[start:end])
		}

		if epoch%n.cfg.Verbose == 0 && n.EpochEnd != nil {
			n.EpochEnd(epoch, n.Loss(X, y), n.Score(X, y))
		}
	}
	return nil
}

// Predict returns per-class probabilities for X, one row per sample, each
// row summing to 1. It is a pure function of the current parameters.
func (n *Network) Predict(X *mat.Dense) (*mat.Dense, error) {
	if n.layers == nil {
		return nil, fmt.Errorf("%w: network has not been fitted", ErrConfig)
	}
	_, cols := X.Dims()
	if cols != n.cfg.InputSize {
		return nil, fmt.Errorf("%w: X has %d features, network expects %d", ErrShape, cols, n.cfg.InputSize)
	}
	return n.forward(X), nil
}

// Loss returns the regularized cross-entropy of the network over (X, y).
func (n *Network) Loss(X *mat.Dense, y []int) float64 {
	probs := n.forward(X)

	weights := make([]*mat.Dense, len(n.layers))
	for i, l := range n.layers {
		weights[i] = l.W
	}
	return loss.CrossEntropy(probs, y, n.cfg.OutputSize) + loss.L2Penalty(n.cfg.RegLambda, weights)
}

// Score returns classification accuracy over (X, y) in [0, 1].
func (n *Network) Score(X *mat.Dense, y []int) float64 {
	return loss.Accuracy(n.forward(X), y)
}

// forward runs the batch through every layer, caching each layer's
// activation for the backward pass, and returns the softmax output. The
// cache is rebuilt on every call so a short final batch gets correctly
// sized buffers.
func (n *Network) forward(x *mat.Dense) *mat.Dense {
	n.acts = n.acts[:0]
	n.acts = append(n.acts, x)

	cur := x
	last := len(n.layers) - 1
	for i, l := range n.layers {
		rows, _ := cur.Dims()
		z := mat.NewDense(rows, l.OutSize(), nil)
		z.Mul(cur, l.W)
		for r := 0; r < rows; r++ {
			floats.Add(z.RawRowView(r), l.B)
		}

		if i == last {
			activations.Softmax(z)
		} else {
			z.Apply(func(_, _ int, v float64) float64 {
				return n.act.Activate(v)
			}, z)
		}

		n.acts = append(n.acts, z)
		cur = z
	}
	return cur
}

// backward computes the error signal for every non-input layer from the
// cached activations and applies one gradient-descent update in place.
// Gradients are summed, not averaged, over the batch.
func (n *Network) backward(y []int) {
	last := len(n.layers) - 1
	out := n.acts[len(n.acts)-1]
	rows, cols := out.Dims()

	deltas := make([]*mat.Dense, len(n.layers))

	// With a softmax output and cross-entropy loss the output delta is the
	// predicted distribution with 1 subtracted at each sample's true class.
	// This shortcut holds only for that pairing.
	d := mat.NewDense(rows, cols, nil)
	d.Copy(out)
	for i, label := range y {
		d.Set(i, label, d.At(i, label)-1)
	}
	deltas[last] = d

	// Hidden deltas, output toward input. The derivative is evaluated on
	// each layer's cached output activation.
	for i := last - 1; i >= 0; i-- {
		a := n.acts[i+1]
		r, c := a.Dims()
		e := mat.NewDense(r, c, nil)
		e.Mul(deltas[i+1], n.layers[i+1].W.T())
		e.Apply(func(ri, ci int, v float64) float64 {
			return v * n.act.DerivativeFromOutput(a.At(ri, ci))
		}, e)
		deltas[i] = e
	}
	n.deltas = deltas

	for l, den := range n.layers {
		fanIn, fanOut := den.W.Dims()

		gradW := mat.NewDense(fanIn, fanOut, nil)
		gradW.Mul(n.acts[l].T(), deltas[l])

		// L2 term: the column sums of W, scaled by lambda and added to every
		// row of the weight gradient (not lambda*W).
		reg := colSums(den.W)
		floats.Scale(n.cfg.RegLambda, reg)
		for r := 0; r < fanIn; r++ {
			floats.Add(gradW.RawRowView(r), reg)
		}

		n.opt.StepInPlace(den.W.RawMatrix().Data, gradW.RawMatrix().Data)
		n.opt.StepInPlace(den.B, colSums(deltas[l]))
	}
}

// shuffled applies one random permutation jointly to the rows of X and y.
func shuffled(X *mat.Dense, y []int, rng *rand.Rand) (*mat.Dense, []int) {
	rows, cols := X.Dims()
	perm := rng.Perm(rows)

	xs := mat.NewDense(rows, cols, nil)
	ys := make([]int, rows)
	for i, j := range perm {
		xs.SetRow(i, X.RawRowView(j))
		ys[i] = y[j]
	}
	return xs, ys
}

// colSums returns the per-column sums of m.
func colSums(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	sums := make([]float64, cols)
	for i := 0; i < rows; i++ {
		floats.Add(sums, m.RawRowView(i))
	}
	return sums
}
