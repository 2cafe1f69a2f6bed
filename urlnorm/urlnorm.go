package urlnorm

import (
	"net/url"
	"strings"
)

// Target is a parsed classification input. Host is the network-location
// part of the URL, lowercased, port retained. It stays empty when the
// input cannot be parsed; signal code treats an empty host as suspicious
// wherever a host is required.
type Target struct {
	Input string
	Host  string
	Path  string

	parsed *url.URL
}

// Normalize trims the input and ensures a scheme prefix. Bare hostnames
// are treated as HTTPS candidates.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "https://" + raw
	}
	return raw
}

// Parse normalizes raw and splits it into host and path components.
// Malformed input yields an empty Host rather than an error.
func Parse(raw string) Target {
	input := Normalize(raw)
	t := Target{Input: input}

	u, err := url.Parse(input)
	if err != nil {
		return t
	}
	t.parsed = u
	t.Host = strings.ToLower(u.Host)
	t.Path = u.Path
	return t
}

// Hostname returns the host without any port.
func (t Target) Hostname() string {
	if t.parsed == nil {
		return ""
	}
	return strings.ToLower(t.parsed.Hostname())
}

// ResolveHost resolves ref against the target URL the way a browser would
// and returns the lowercased host of the result, or "" when ref cannot be
// parsed.
func (t Target) ResolveHost(ref string) string {
	if t.parsed == nil {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return strings.ToLower(t.parsed.ResolveReference(r).Host)
}
