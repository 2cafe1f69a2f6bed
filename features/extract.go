package features

import (
	"context"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"phishscan/urlnorm"
)

// Extractor turns a target URL into the classifier's feature vector. The
// zero set of options gives live DNS, WHOIS and page collectors; tests
// swap them out.
type Extractor struct {
	resolver  Resolver
	registry  RegistryClient
	pages     PageFetcher
	static    StaticSignals
	ioTimeout time.Duration
}

type Option func(*Extractor)

func WithResolver(r Resolver) Option {
	return func(e *Extractor) { e.resolver = r }
}

func WithRegistry(c RegistryClient) Option {
	return func(e *Extractor) { e.registry = c }
}

func WithFetcher(f PageFetcher) Option {
	return func(e *Extractor) { e.pages = f }
}

func WithStaticSignals(s StaticSignals) Option {
	return func(e *Extractor) { e.static = s }
}

// WithCollectTimeout bounds the parallel WHOIS and page collection phase.
func WithCollectTimeout(d time.Duration) Option {
	return func(e *Extractor) { e.ioTimeout = d }
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		resolver:  NewDNSResolver(""),
		registry:  WhoisClient{},
		pages:     NewHTTPFetcher(),
		static:    DefaultStaticSignals(),
		ioTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DNSRecord reports whether the target's host resolves. It doubles as
// the fast-path gate: callers stop all further signal work when it comes
// back Suspicious, and hand the result to Vector so the slot is not
// re-queried.
func (e *Extractor) DNSRecord(ctx context.Context, t urlnorm.Target) Signal {
	return guard(func() (Signal, error) {
		ok, err := e.resolver.HasAddress(ctx, t.Hostname())
		if err != nil {
			log.Printf("[dns] %s: %v", t.Hostname(), err)
			return 0, err
		}
		if !ok {
			return Suspicious, nil
		}
		return Legitimate, nil
	})
}

// Vector computes all thirty slots for the target. Lexical signals run
// inline; the WHOIS record and the page document are collected once each,
// in parallel, and every signal derived from a failed collection degrades
// to Suspicious on its own.
func (e *Extractor) Vector(ctx context.Context, t urlnorm.Target, dnsRecord Signal) Vector {
	var v Vector

	v[slotHavingIPAddress] = ipLiteral(t)
	v[slotURLLength] = urlLength(t)
	v[slotShorteningService] = shorteningService(t)
	v[slotHavingAtSymbol] = atSymbol(t)
	v[slotDoubleSlashRedirecting] = doubleSlashPath(t)
	v[slotPrefixSuffix] = hyphenHost(t)
	v[slotHavingSubDomain] = subdomainDepth(t)
	v[slotSSLFinalState] = httpsScheme(t)
	v[slotDNSRecord] = dnsRecord

	gctx, cancel := context.WithTimeout(ctx, e.ioTimeout)
	defer cancel()

	var (
		rec *Registration
		doc *goquery.Document
	)
	domain := registrableDomain(t.Hostname())
	g, _ := errgroup.WithContext(gctx)
	g.Go(func() error {
		var err error
		rec, err = e.registry.Lookup(gctx, domain)
		if err != nil {
			log.Printf("[whois] %s: %v", domain, err)
			rec = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		doc, err = e.pages.Fetch(gctx, t.Input)
		if err != nil {
			log.Printf("[fetch] %s: %v", t.Input, err)
			doc = nil
		}
		return nil
	})
	g.Wait()

	now := time.Now()
	v[slotDomainRegistrationLength] = guard(func() (Signal, error) { return registrationSpan(rec) })
	v[slotAgeOfDomain] = guard(func() (Signal, error) { return domainAge(rec, now) })
	v[slotAbnormalURL] = guard(func() (Signal, error) { return whoisAnomaly(rec, t.Host) })

	v[slotFavicon] = guard(func() (Signal, error) { return faviconOrigin(doc, t) })
	v[slotRequestURL] = guard(func() (Signal, error) { return externalImageRatio(doc, t) })
	v[slotURLOfAnchor] = guard(func() (Signal, error) { return externalAnchorRatio(doc, t) })

	v[slotPort] = e.static.Port(t)
	v[slotHTTPSToken] = e.static.HTTPSToken(t)
	v[slotLinksInTags] = e.static.LinksInTags(t)
	v[slotServerFormHandler] = e.static.ServerFormHandler(t)
	v[slotSubmittingToEmail] = e.static.SubmittingToEmail(t)
	v[slotRedirect] = e.static.Redirect(t)
	v[slotOnMouseover] = e.static.OnMouseover(t)
	v[slotRightClick] = e.static.RightClick(t)
	v[slotPopupWindow] = e.static.PopupWindow(t)
	v[slotIFrame] = e.static.IFrame(t)
	v[slotWebTraffic] = e.static.WebTraffic(t)
	v[slotPageRank] = e.static.PageRank(t)
	v[slotGoogleIndex] = e.static.GoogleIndex(t)
	v[slotLinksPointingToPage] = e.static.LinksPointingToPage(t)
	v[slotStatisticalReport] = e.static.StatisticalReport(t)

	return v
}
