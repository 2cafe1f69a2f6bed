// Package oracle loads and evaluates the pretrained URL classifier.
package oracle

// Model is a pretrained classifier over fixed-length numeric feature
// vectors. Predict yields the winning class, Proba the probability per
// class in the model's class order. Implementations must be safe for
// concurrent use.
type Model interface {
	Predict(x []float64) (int, error)
	Proba(x []float64) ([]float64, error)
}
