package features

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	maxPageBytes     = 1024 * 1024
)

// PageFetcher retrieves the parsed markup of a page.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// HTTPFetcher fetches pages with a plain GET and a browser User-Agent.
// When AllowRendered is set and the static markup carries neither images
// nor anchors, it retries through headless Chrome so script-built pages
// still expose their resources.
type HTTPFetcher struct {
	Client        *http.Client
	AllowRendered bool
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	doc, err := f.fetchStatic(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if f.AllowRendered && doc.Find("img[src], a[href]").Length() == 0 {
		if rendered, rerr := fetchRendered(ctx, pageURL); rerr == nil {
			return rendered, nil
		}
	}
	return doc, nil
}

func (f *HTTPFetcher) fetchStatic(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: status %s", pageURL, resp.Status)
	}
	return goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
}

// fetchRendered loads the page in headless Chrome and snapshots the DOM
// after scripts have had a moment to run.
func fetchRendered(ctx context.Context, pageURL string) (*goquery.Document, error) {
	rctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.UserAgent(browserUserAgent),
	)
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(rctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", pageURL, err)
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
