package features

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	whois "github.com/likexian/whois"
	parser "github.com/likexian/whois-parser"
	"golang.org/x/net/publicsuffix"
)

const (
	shortRegistrationDays = 365 // at or below: registration span is suspicious
	youngDomainDays       = 180 // strictly below: domain age is suspicious
)

var errNoRegistration = errors.New("no registration record")

// Registration is the slice of a WHOIS record the signals need. Raw date
// strings are kept alongside the parsed values so "present but
// unparseable" stays distinguishable from "absent".
type Registration struct {
	CreatedRaw string
	ExpiresRaw string
	Created    time.Time // zero when absent or unparseable
	Expires    time.Time
	Raw        string // full record text
}

// RegistryClient fetches the registration record for a domain.
type RegistryClient interface {
	Lookup(ctx context.Context, domain string) (*Registration, error)
}

// WhoisClient queries live WHOIS servers.
type WhoisClient struct{}

func (WhoisClient) Lookup(ctx context.Context, domain string) (*Registration, error) {
	raw, err := whois.Whois(domain)
	if err != nil {
		return nil, fmt.Errorf("whois %s: %w", domain, err)
	}

	rec := &Registration{Raw: raw}
	p, err := parser.Parse(raw)
	if err != nil || p.Domain == nil {
		// Record text is still usable for the host-mention check even
		// when the registrar's format defeats the parser.
		return rec, nil
	}

	rec.CreatedRaw = strings.TrimSpace(p.Domain.CreatedDate)
	rec.ExpiresRaw = strings.TrimSpace(p.Domain.ExpirationDate)
	rec.Created = parseWhoisTime(rec.CreatedRaw)
	rec.Expires = parseWhoisTime(rec.ExpiresRaw)
	return rec, nil
}

// registrableDomain reduces a hostname to its registrable (eTLD+1) form
// for WHOIS, since registries hold records per registered domain, not
// per subdomain. Hosts that have no registrable form (IP literals,
// bare TLDs) pass through unchanged.
func registrableDomain(host string) string {
	if host == "" || net.ParseIP(host) != nil {
		return host
	}
	if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return d
	}
	return host
}

// Registrar date formats seen in the wild.
var whoisTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

func parseWhoisTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range whoisTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// registrationSpan buckets the created-to-expiry window. Registrations
// of a year or less are the throwaway pattern; records missing either
// date give the benefit of the doubt.
func registrationSpan(rec *Registration) (Signal, error) {
	if rec == nil {
		return 0, errNoRegistration
	}
	if rec.CreatedRaw != "" && rec.Created.IsZero() {
		return 0, fmt.Errorf("unparseable created date %q", rec.CreatedRaw)
	}
	if rec.ExpiresRaw != "" && rec.Expires.IsZero() {
		return 0, fmt.Errorf("unparseable expiration date %q", rec.ExpiresRaw)
	}
	if rec.Created.IsZero() || rec.Expires.IsZero() {
		return Legitimate, nil
	}
	if int(rec.Expires.Sub(rec.Created).Hours()/24) <= shortRegistrationDays {
		return Suspicious, nil
	}
	return Legitimate, nil
}

// domainAge flags domains younger than six months.
func domainAge(rec *Registration, now time.Time) (Signal, error) {
	if rec == nil {
		return 0, errNoRegistration
	}
	if rec.CreatedRaw != "" && rec.Created.IsZero() {
		return 0, fmt.Errorf("unparseable created date %q", rec.CreatedRaw)
	}
	if rec.Created.IsZero() {
		return Legitimate, nil
	}
	if int(now.Sub(rec.Created).Hours()/24) < youngDomainDays {
		return Suspicious, nil
	}
	return Legitimate, nil
}

// whoisAnomaly flags URLs whose host never appears in its own
// registration record, a mismatch typical of cloaked hosting.
func whoisAnomaly(rec *Registration, host string) (Signal, error) {
	if rec == nil {
		return 0, errNoRegistration
	}
	if !strings.Contains(strings.ToLower(rec.Raw), strings.ToLower(host)) {
		return Suspicious, nil
	}
	return Legitimate, nil
}
