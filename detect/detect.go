// Package detect wires feature extraction and the classifier into the
// URL verdict pipeline and its HTTP surface.
package detect

import (
	"context"
	"fmt"

	"phishscan/features"
	"phishscan/oracle"
	"phishscan/urlnorm"
)

// Detector runs the full pipeline for one URL at a time. It holds no
// per-request state, so a single Detector serves concurrent requests.
type Detector struct {
	signals *features.Extractor
	model   oracle.Model
}

func New(signals *features.Extractor, model oracle.Model) *Detector {
	return &Detector{signals: signals, model: model}
}

// Classify normalizes the raw URL and produces a verdict. A host that
// does not resolve short-circuits to the fixed maximal-confidence
// phishing verdict without touching WHOIS, the page, or the model.
// Classifier failures come back as errors, never as fabricated labels.
func (d *Detector) Classify(ctx context.Context, rawURL string) (Verdict, error) {
	t := urlnorm.Parse(rawURL)

	if d.signals.DNSRecord(ctx, t) == features.Suspicious {
		return Verdict{Prediction: phishingLabel, Confidence: 1.0, URL: t.Input}, nil
	}

	vec := d.signals.Vector(ctx, t, features.Legitimate)
	x := vec.Floats()

	class, err := d.model.Predict(x)
	if err != nil {
		return Verdict{}, fmt.Errorf("classify %s: %w", t.Input, err)
	}
	proba, err := d.model.Proba(x)
	if err != nil {
		return Verdict{}, fmt.Errorf("classify %s: %w", t.Input, err)
	}

	return Verdict{
		Prediction: classLabel(class),
		Confidence: maxProb(proba),
		URL:        t.Input,
	}, nil
}
