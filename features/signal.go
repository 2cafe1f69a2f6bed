package features

// Signal is one ordinal heuristic verdict about a URL.
type Signal int

const (
	Suspicious Signal = -1
	Borderline Signal = 0
	Legitimate Signal = 1
)

// VectorLen is the width of the classifier's input. The model was trained
// on exactly this many features in exactly the slot order below; the
// vector is never reordered or resized.
const VectorLen = 30

// Vector is the position-significant feature vector fed to the classifier.
type Vector [VectorLen]Signal

// Slot order of the training data. The DNS slot repeats the gate lookup
// that already ran before vector assembly.
const (
	slotHavingIPAddress = iota
	slotURLLength
	slotShorteningService
	slotHavingAtSymbol
	slotDoubleSlashRedirecting
	slotPrefixSuffix
	slotHavingSubDomain
	slotSSLFinalState
	slotDomainRegistrationLength
	slotFavicon
	slotPort
	slotHTTPSToken
	slotRequestURL
	slotURLOfAnchor
	slotLinksInTags
	slotServerFormHandler
	slotSubmittingToEmail
	slotAbnormalURL
	slotRedirect
	slotOnMouseover
	slotRightClick
	slotPopupWindow
	slotIFrame
	slotAgeOfDomain
	slotDNSRecord
	slotWebTraffic
	slotPageRank
	slotGoogleIndex
	slotLinksPointingToPage
	slotStatisticalReport
)

// Floats returns the vector in the numeric form the classifier consumes.
func (v Vector) Floats() []float64 {
	out := make([]float64, VectorLen)
	for i, s := range v {
		out[i] = float64(s)
	}
	return out
}

// guard is the shared best-effort wrapper for fallible signal
// computations: any error degrades to Suspicious instead of reaching the
// caller. Signal code never raises.
func guard(op func() (Signal, error)) Signal {
	s, err := op()
	if err != nil {
		return Suspicious
	}
	return s
}
