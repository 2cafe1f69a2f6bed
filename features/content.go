package features

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"phishscan/urlnorm"
)

// Bucket boundaries for external-resource ratios, in percent.
const (
	imageExternalWarn  = 22.0
	imageExternalBad   = 61.0
	anchorExternalWarn = 31.0
	anchorExternalBad  = 67.0
)

var errNoDocument = errors.New("no page document")

// faviconOrigin checks where the page's declared icon is served from.
// The first <link> whose rel mentions "icon" decides; an icon hosted off
// the page's own host is the classic clone-kit tell.
func faviconOrigin(doc *goquery.Document, t urlnorm.Target) (Signal, error) {
	if doc == nil {
		return 0, errNoDocument
	}
	sig := Legitimate
	doc.Find("link").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel, ok := sel.Attr("rel")
		if !ok || !strings.Contains(strings.ToLower(rel), "icon") {
			return true
		}
		if href, ok := sel.Attr("href"); ok {
			if t.ResolveHost(href) != t.Host {
				sig = Suspicious
			}
		}
		return false
	})
	return sig, nil
}

// externalImageRatio buckets the share of <img> tags loaded from other
// hosts. Pages with no images at all read as legitimate.
func externalImageRatio(doc *goquery.Document, t urlnorm.Target) (Signal, error) {
	if doc == nil {
		return 0, errNoDocument
	}
	total, external := 0, 0
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok {
			return
		}
		total++
		if t.ResolveHost(src) != t.Host {
			external++
		}
	})
	if total == 0 {
		return Legitimate, nil
	}
	switch pct := float64(external) / float64(total) * 100; {
	case pct < imageExternalWarn:
		return Legitimate, nil
	case pct < imageExternalBad:
		return Borderline, nil
	default:
		return Suspicious, nil
	}
}

// externalAnchorRatio buckets the share of <a> tags pointing off-host.
// Fragment, mailto and javascript:void(0) anchors navigate nowhere and
// are left out of the count.
func externalAnchorRatio(doc *goquery.Document, t urlnorm.Target) (Signal, error) {
	if doc == nil {
		return 0, errNoDocument
	}
	counted, external := 0, 0
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		if strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") ||
			strings.Contains(href, "javascript:void(0)") {
			return
		}
		counted++
		if t.ResolveHost(href) != t.Host {
			external++
		}
	})
	if counted == 0 {
		return Legitimate, nil
	}
	switch pct := float64(external) / float64(counted) * 100; {
	case pct < anchorExternalWarn:
		return Legitimate, nil
	case pct < anchorExternalBad:
		return Borderline, nil
	default:
		return Suspicious, nil
	}
}
