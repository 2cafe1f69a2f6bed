package detect

const phishingLabel = "Unsafe (Phishing)"

// Verdict is the response body for one classified URL.
type Verdict struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	URL        string  `json:"url"`
}

// classLabel maps a classifier class to its display label. Classes
// outside the trained set surface as "Unknown" rather than being
// shoehorned into a real verdict.
func classLabel(class int) string {
	switch class {
	case 1:
		return "Safe"
	case 0:
		return "Neutral"
	case -1:
		return phishingLabel
	default:
		return "Unknown"
	}
}

// maxProb is the confidence of a verdict: the largest probability in the
// distribution, zero when the distribution is empty.
func maxProb(dist []float64) float64 {
	max := 0.0
	for _, p := range dist {
		if p > max {
			max = p
		}
	}
	return max
}
