package net

import "fmt"

// EpochFunc observes full-dataset metrics after an epoch. Fit invokes it at
// the configured Verbose cadence; it is diagnostic output and does not take
// part in the optimization.
type EpochFunc func(epoch int, loss, accuracy float64)

// ConsoleLogger returns an EpochFunc that prints metrics to standard output.
func ConsoleLogger() EpochFunc {
	return func(epoch int, loss, accuracy float64) {
		fmt.Printf("Epoch %d: loss = %.6f, accuracy = %.4f\n", epoch, loss, accuracy)
	}
}
