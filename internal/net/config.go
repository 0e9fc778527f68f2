package net

import (
	"errors"
	"fmt"

	"github.com/go-mlp/gomlp/internal/activations"
)

var (
	// ErrConfig reports an unsupported or out-of-range construction
	// parameter. No network state is created when it is returned.
	ErrConfig = errors.New("gomlp: invalid configuration")

	// ErrShape reports mismatched matrix or label dimensions. It is returned
	// before any parameter is mutated for the failing call.
	ErrShape = errors.New("gomlp: shape mismatch")
)

// Supported kind names for the enumerated configuration fields.
const (
	ActivationSigmoid = "sigmoid"
	ActivationTanh    = "tanh"
	OutputSoftmax     = "softmax"
	LossCrossEntropy  = "cross_entropy"
)

// Config describes a network. All fields are fixed once the network is
// built.
//
// Momentum is accepted for interface compatibility but is not used by the
// update rule; training applies plain gradient descent regardless of its
// value.
type Config struct {
	InputSize   int   // number of features
	OutputSize  int   // number of classes
	HiddenSizes []int // width of each hidden layer, in order

	Activation string // hidden activation kind: "sigmoid" or "tanh"
	Output     string // output transform kind; only "softmax"
	Loss       string // loss kind; only "cross_entropy"

	LearningRate float64
	RegLambda    float64 // L2 coefficient
	Momentum     float64 // accepted, unused by the update rule

	BatchSize int
	Verbose   int // epochs between metric reports

	// Seed deterministically controls all sampling: weight and bias
	// initialization and per-epoch shuffling draw from one generator seeded
	// with it.
	Seed int64
}

// Validate checks every construction parameter and reports the first
// violation wrapped in ErrConfig.
func (c Config) Validate() error {
	if c.InputSize <= 0 {
		return fmt.Errorf("%w: input size must be positive, got %d", ErrConfig, c.InputSize)
	}
	if c.OutputSize <= 0 {
		return fmt.Errorf("%w: output size must be positive, got %d", ErrConfig, c.OutputSize)
	}
	if len(c.HiddenSizes) == 0 {
		return fmt.Errorf("%w: at least one hidden layer is required", ErrConfig)
	}
	for i, h := range c.HiddenSizes {
		if h <= 0 {
			return fmt.Errorf("%w: hidden layer %d has width %d, must be positive", ErrConfig, i, h)
		}
	}
	if _, err := activations.Parse(c.Activation); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if c.Output != OutputSoftmax {
		return fmt.Errorf("%w: unsupported output layer %q (want %q)", ErrConfig, c.Output, OutputSoftmax)
	}
	if c.Loss != LossCrossEntropy {
		return fmt.Errorf("%w: unsupported loss %q (want %q)", ErrConfig, c.Loss, LossCrossEntropy)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate must be positive, got %v", ErrConfig, c.LearningRate)
	}
	if c.RegLambda < 0 {
		return fmt.Errorf("%w: regularization lambda must be non-negative, got %v", ErrConfig, c.RegLambda)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrConfig, c.BatchSize)
	}
	if c.Verbose <= 0 {
		return fmt.Errorf("%w: verbose interval must be positive, got %d", ErrConfig, c.Verbose)
	}
	return nil
}
