package features

import (
	"context"
	"fmt"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

const defaultDNSServer = "8.8.8.8:53"

// Resolver answers whether a host currently resolves to an address.
type Resolver interface {
	HasAddress(ctx context.Context, host string) (bool, error)
}

// DNSResolver asks a fixed upstream directly instead of going through
// the platform stub resolver, so answers do not depend on local
// nsswitch or cache state.
type DNSResolver struct {
	Server string
	client *dns.Client
}

// NewDNSResolver returns a resolver against the given "host:port"
// upstream, defaulting to Google public DNS.
func NewDNSResolver(server string) *DNSResolver {
	if server == "" {
		server = defaultDNSServer
	}
	return &DNSResolver{
		Server: server,
		client: &dns.Client{Timeout: 3 * time.Second},
	}
}

// HasAddress reports whether host has at least one A record. A clean
// negative answer (NXDOMAIN, empty answer section) is (false, nil);
// transport trouble is an error.
func (r *DNSResolver) HasAddress(ctx context.Context, host string) (bool, error) {
	if host == "" {
		return false, fmt.Errorf("empty host")
	}
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(host), dns.TypeA)

	resp, _, err := r.client.ExchangeContext(ctx, m, r.Server)
	if err != nil {
		return false, fmt.Errorf("query %s: %w", host, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return false, nil
	}
	for _, rr := range resp.Answer {
		if _, ok := rr.(*dns.A); ok {
			return true, nil
		}
	}
	return false, nil
}
