// Package gomlp exposes the multilayer perceptron trainer: a validated
// configuration, mini-batch gradient-descent training, and probability
// prediction and scoring.
package gomlp

import (
	"github.com/go-mlp/gomlp/internal/dataset"
	"github.com/go-mlp/gomlp/internal/net"
)

// Re-export common types for easier access
type (
	Config    = net.Config
	Network   = net.Network
	EpochFunc = net.EpochFunc
	Dataset   = dataset.Dataset
)

// Error sentinels
var (
	ErrConfig = net.ErrConfig
	ErrShape  = net.ErrShape
)

// Supported kind names for the enumerated configuration fields.
const (
	Sigmoid      = net.ActivationSigmoid
	Tanh         = net.ActivationTanh
	Softmax      = net.OutputSoftmax
	CrossEntropy = net.LossCrossEntropy
)

// New validates cfg and builds an untrained network.
func New(cfg Config) (*Network, error) {
	return net.New(cfg)
}

// ConsoleLogger returns an EpochFunc that prints per-epoch metrics to
// standard output.
func ConsoleLogger() EpochFunc {
	return net.ConsoleLogger()
}

// LoadCSV loads a dataset from a CSV file; labelCol is the integer class
// column and hasHeader skips the first line.
func LoadCSV(filename string, labelCol int, hasHeader bool) (*Dataset, error) {
	return dataset.LoadCSV(filename, labelCol, hasHeader)
}
