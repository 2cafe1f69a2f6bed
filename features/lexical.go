package features

import (
	"regexp"
	"strings"

	"phishscan/urlnorm"
)

const (
	shortURLLen  = 54 // strictly below: legitimate
	mediumURLLen = 75 // up to and including: borderline
)

var ipLiteralRe = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

// Known URL shortening hosts. Matched exactly against the host, never as
// a substring, so "notbit.ly.evil.com" does not trip it.
var shortenerHosts = []string{
	"bit.ly",
	"goo.gl",
	"t.co",
	"tinyurl.com",
	"is.gd",
	"cli.gs",
	"tr.im",
	"ow.ly",
	"tiny.cc",
}

// ipLiteral flags hosts written as a dotted-quad address instead of a
// name.
func ipLiteral(t urlnorm.Target) Signal {
	if ipLiteralRe.MatchString(t.Host) {
		return Suspicious
	}
	return Legitimate
}

// urlLength buckets the full normalized URL by character count.
func urlLength(t urlnorm.Target) Signal {
	switch n := len(t.Input); {
	case n < shortURLLen:
		return Legitimate
	case n <= mediumURLLen:
		return Borderline
	default:
		return Suspicious
	}
}

// shorteningService flags URLs hosted on a known shortener.
func shorteningService(t urlnorm.Target) Signal {
	for _, h := range shortenerHosts {
		if t.Host == h {
			return Suspicious
		}
	}
	return Legitimate
}

// atSymbol flags URLs containing "@", which makes browsers discard
// everything before it when picking the real host.
func atSymbol(t urlnorm.Target) Signal {
	if strings.Contains(t.Input, "@") {
		return Suspicious
	}
	return Legitimate
}

// doubleSlashPath flags "//" occurring inside the path, a redirect trick
// that smuggles a second URL after the apparent one.
func doubleSlashPath(t urlnorm.Target) Signal {
	p := t.Path
	if strings.HasPrefix(p, "//") {
		return Suspicious
	}
	if len(p) > 1 && strings.Contains(p[1:], "//") {
		return Suspicious
	}
	return Legitimate
}

// hyphenHost flags hyphenated hosts, commonly used to imitate brands
// ("paypal-secure-login.com"). A URL with no parseable host is flagged
// too.
func hyphenHost(t urlnorm.Target) Signal {
	if t.Host == "" || strings.Contains(t.Host, "-") {
		return Suspicious
	}
	return Legitimate
}

// subdomainDepth buckets by the number of dots in the host: a bare
// registrable domain is fine, one extra label is borderline, more is
// suspicious.
func subdomainDepth(t urlnorm.Target) Signal {
	switch dots := strings.Count(t.Host, "."); {
	case dots == 2:
		return Borderline
	case dots > 2:
		return Suspicious
	default:
		return Legitimate
	}
}

// httpsScheme checks whether the normalized URL claims the https scheme.
// No certificate probing happens here, only the textual claim counts.
func httpsScheme(t urlnorm.Target) Signal {
	if strings.HasPrefix(strings.ToLower(t.Input), "https") {
		return Legitimate
	}
	return Suspicious
}
