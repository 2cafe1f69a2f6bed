package features

import "phishscan/urlnorm"

// SignalFunc produces one signal for a target.
type SignalFunc func(urlnorm.Target) Signal

// Constant returns a SignalFunc that always reports s.
func Constant(s Signal) SignalFunc {
	return func(urlnorm.Target) Signal { return s }
}

// StaticSignals holds the vector slots whose upstream sources (traffic
// rank feeds, search indexing, inbound-link counts, page-behavior
// probes) are not modeled here. The training data still expects a value
// in every slot, so each one reports a fixed signal by default and can
// be swapped for a live source without touching the vector layout.
type StaticSignals struct {
	Port                SignalFunc
	HTTPSToken          SignalFunc
	LinksInTags         SignalFunc
	ServerFormHandler   SignalFunc
	SubmittingToEmail   SignalFunc
	Redirect            SignalFunc
	OnMouseover         SignalFunc
	RightClick          SignalFunc
	PopupWindow         SignalFunc
	IFrame              SignalFunc
	WebTraffic          SignalFunc
	PageRank            SignalFunc
	GoogleIndex         SignalFunc
	LinksPointingToPage SignalFunc
	StatisticalReport   SignalFunc
}

// DefaultStaticSignals mirrors the values the deployed model was
// calibrated against: unknown-rank slots sit at Borderline, the rest
// assume the benign answer.
func DefaultStaticSignals() StaticSignals {
	return StaticSignals{
		Port:                Constant(Legitimate),
		HTTPSToken:          Constant(Legitimate),
		LinksInTags:         Constant(Legitimate),
		ServerFormHandler:   Constant(Legitimate),
		SubmittingToEmail:   Constant(Legitimate),
		Redirect:            Constant(Legitimate),
		OnMouseover:         Constant(Legitimate),
		RightClick:          Constant(Legitimate),
		PopupWindow:         Constant(Legitimate),
		IFrame:              Constant(Legitimate),
		WebTraffic:          Constant(Borderline),
		PageRank:            Constant(Borderline),
		GoogleIndex:         Constant(Legitimate),
		LinksPointingToPage: Constant(Borderline),
		StatisticalReport:   Constant(Legitimate),
	}
}
