// Package opt provides the gradient-descent parameter update.
package opt

// Optimizer updates parameters in place from their gradients.
type Optimizer interface {
	// StepInPlace updates params in place: params = params - lr * gradients.
	StepInPlace(params, gradients []float64)
}

// SGD (Stochastic Gradient Descent) optimizer.
//
// Momentum is accepted for interface compatibility but the update rule does
// not use it: setting it has no effect on training.
type SGD struct {
	LearningRate float64
	Momentum     float64
}

// StepInPlace updates params in place: params[i] -= lr * gradients[i].
func (s SGD) StepInPlace(params, gradients []float64) {
	for i := range params {
		params[i] -= s.LearningRate * gradients[i]
	}
}
