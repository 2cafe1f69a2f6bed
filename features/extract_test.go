package features

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"phishscan/urlnorm"
)

type fakeResolver struct {
	calls int
	found bool
	err   error
}

func (f *fakeResolver) HasAddress(ctx context.Context, host string) (bool, error) {
	f.calls++
	return f.found, f.err
}

type fakeRegistry struct {
	calls      int
	lastDomain string
	rec        *Registration
	err        error
}

func (f *fakeRegistry) Lookup(ctx context.Context, domain string) (*Registration, error) {
	f.calls++
	f.lastDomain = domain
	if f.err != nil {
		return nil, f.err
	}
	return f.rec, nil
}

type fakeFetcher struct {
	calls int
	html  string
	err   error
}

func (f *fakeFetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(f.html))
}

func goodRegistration(raw string) *Registration {
	return &Registration{
		CreatedRaw: "2015-01-01",
		ExpiresRaw: "2030-01-01",
		Created:    time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		Expires:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Raw:        raw,
	}
}

const cleanPage = `<html><head><link rel="icon" href="/favicon.ico"></head>` +
	`<body><img src="/logo.png"><a href="/about">About</a></body></html>`

func TestDNSRecord(t *testing.T) {
	tests := []struct {
		name  string
		found bool
		err   error
		want  Signal
	}{
		{"resolves", true, nil, Legitimate},
		{"nxdomain", false, nil, Suspicious},
		{"query failure", false, errors.New("timeout"), Suspicious},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeResolver{found: tt.found, err: tt.err}
			e := NewExtractor(WithResolver(r))
			got := e.DNSRecord(context.Background(), urlnorm.Parse("https://example.com"))
			if got != tt.want {
				t.Errorf("DNSRecord = %d, want %d", got, tt.want)
			}
			if r.calls != 1 {
				t.Errorf("resolver called %d times, want 1", r.calls)
			}
		})
	}
}

func TestVectorAllClean(t *testing.T) {
	reg := &fakeRegistry{rec: goodRegistration("Domain Name: example.com\nRegistrar: Test")}
	fetch := &fakeFetcher{html: cleanPage}
	e := NewExtractor(WithRegistry(reg), WithFetcher(fetch))

	got := e.Vector(context.Background(), urlnorm.Parse("https://example.com/home"), Legitimate)

	want := Vector{
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 0, 0, 1, 0, 1,
	}
	if got != want {
		t.Errorf("vector mismatch\n got: %v\nwant: %v", got, want)
	}
	if reg.calls != 1 {
		t.Errorf("registry called %d times, want 1", reg.calls)
	}
	if fetch.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetch.calls)
	}
}

func TestVectorCollectionFailuresDegrade(t *testing.T) {
	reg := &fakeRegistry{err: errors.New("whois unreachable")}
	fetch := &fakeFetcher{err: errors.New("connection refused")}
	e := NewExtractor(WithRegistry(reg), WithFetcher(fetch))

	got := e.Vector(context.Background(), urlnorm.Parse("https://example.com/home"), Legitimate)

	for _, slot := range []int{
		slotDomainRegistrationLength,
		slotFavicon,
		slotRequestURL,
		slotURLOfAnchor,
		slotAbnormalURL,
		slotAgeOfDomain,
	} {
		if got[slot] != Suspicious {
			t.Errorf("slot %d = %d, want %d after collection failure", slot, got[slot], Suspicious)
		}
	}
	// Lexical and static slots are untouched by network failures.
	if got[slotURLLength] != Legitimate {
		t.Errorf("url length slot = %d, want %d", got[slotURLLength], Legitimate)
	}
	if got[slotWebTraffic] != Borderline {
		t.Errorf("web traffic slot = %d, want %d", got[slotWebTraffic], Borderline)
	}
	if got[slotDNSRecord] != Legitimate {
		t.Errorf("dns slot = %d, want %d", got[slotDNSRecord], Legitimate)
	}
}

func TestVectorQueriesRegistrableDomain(t *testing.T) {
	reg := &fakeRegistry{rec: goodRegistration("example.com")}
	fetch := &fakeFetcher{html: cleanPage}
	e := NewExtractor(WithRegistry(reg), WithFetcher(fetch))

	e.Vector(context.Background(), urlnorm.Parse("https://a.b.example.com/x"), Legitimate)

	if reg.lastDomain != "example.com" {
		t.Errorf("registry queried %q, want %q", reg.lastDomain, "example.com")
	}
}

func TestVectorCarriesGateResult(t *testing.T) {
	reg := &fakeRegistry{rec: goodRegistration("example.com")}
	fetch := &fakeFetcher{html: cleanPage}
	r := &fakeResolver{found: true}
	e := NewExtractor(WithResolver(r), WithRegistry(reg), WithFetcher(fetch))

	e.Vector(context.Background(), urlnorm.Parse("https://example.com"), Legitimate)

	// The DNS slot reuses the gate's answer instead of querying again.
	if r.calls != 0 {
		t.Errorf("resolver called %d times during vector assembly, want 0", r.calls)
	}
}

func TestVectorIPLiteralPlainHTTP(t *testing.T) {
	reg := &fakeRegistry{rec: goodRegistration("whatever")}
	fetch := &fakeFetcher{html: cleanPage}
	e := NewExtractor(WithRegistry(reg), WithFetcher(fetch))

	got := e.Vector(context.Background(), urlnorm.Parse("http://123.45.67.89/login"), Legitimate)

	if got[slotHavingIPAddress] != Suspicious {
		t.Errorf("ip slot = %d, want %d", got[slotHavingIPAddress], Suspicious)
	}
	if got[slotSSLFinalState] != Suspicious {
		t.Errorf("scheme slot = %d, want %d", got[slotSSLFinalState], Suspicious)
	}
}

func TestVectorStaticOverride(t *testing.T) {
	static := DefaultStaticSignals()
	static.GoogleIndex = Constant(Suspicious)

	reg := &fakeRegistry{rec: goodRegistration("example.com")}
	fetch := &fakeFetcher{html: cleanPage}
	e := NewExtractor(WithRegistry(reg), WithFetcher(fetch), WithStaticSignals(static))

	got := e.Vector(context.Background(), urlnorm.Parse("https://example.com"), Legitimate)

	if got[slotGoogleIndex] != Suspicious {
		t.Errorf("google index slot = %d, want %d", got[slotGoogleIndex], Suspicious)
	}
	if got[slotStatisticalReport] != Legitimate {
		t.Errorf("statistical report slot = %d, want %d", got[slotStatisticalReport], Legitimate)
	}
}
