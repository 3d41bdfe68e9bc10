// Package crawler downloads restaurant pages into a bbolt page store.
package crawler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	defaultConcurrency = 4
	defaultTimeout     = 30 * time.Second
)

type Fetcher struct {
	store       *PageStore
	client      *http.Client
	limiter     *rate.Limiter
	concurrency int
	userAgent   string
	logger      *zap.Logger
}

type FetcherOption func(*Fetcher)

func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithRateLimit caps outgoing requests per second. rps <= 0 disables the limit.
func WithRateLimit(rps float64) FetcherOption {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func WithConcurrency(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

func WithLogger(logger *zap.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

func NewFetcher(store *PageStore, options ...FetcherOption) *Fetcher {
	f := &Fetcher{
		store:       store,
		client:      &http.Client{Timeout: defaultTimeout},
		limiter:     rate.NewLimiter(rate.Inf, 1),
		concurrency: defaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

// StatusError is returned by Get for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

// Get downloads rawURL once the rate limiter allows it.
func (f *Fetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

type Failure struct {
	Target Target
	Err    error
}

// Report lists the keys stored by FetchAll and the targets that failed.
type Report struct {
	Fetched []string
	Failed  []Failure
}

// FetchAll downloads every target into the page store. A failed download is
// logged and recorded in the report without stopping the batch; only context
// cancellation and page store errors abort it.
func (f *Fetcher) FetchAll(ctx context.Context, targets []Target) (Report, error) {
	var (
		mu     sync.Mutex
		report Report
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)
	for _, t := range targets {
		t := t
		g.Go(func() error {
			body, err := f.Get(ctx, t.URL)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				f.logger.Warn("fetch failed", zap.String("url", t.URL), zap.Error(err))
				mu.Lock()
				report.Failed = append(report.Failed, Failure{Target: t, Err: err})
				mu.Unlock()
				return nil
			}
			key := t.Key()
			if err := f.store.Put(key, body); err != nil {
				return fmt.Errorf("store %s: %w", key, err)
			}
			f.logger.Debug("page downloaded", zap.String("url", t.URL), zap.String("key", key))
			mu.Lock()
			report.Fetched = append(report.Fetched, key)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	sort.Strings(report.Fetched)
	sort.Slice(report.Failed, func(i, j int) bool {
		return report.Failed[i].Target.Key() < report.Failed[j].Target.Key()
	})
	f.logger.Info("fetch finished",
		zap.Int("fetched", len(report.Fetched)),
		zap.Int("failed", len(report.Failed)))
	return report, err
}

// CollectTargets downloads each listing page and returns the restaurant pages
// it links to. Targets found on listingURLs[i] get page number i+1; relative
// links are resolved against the listing URL. Listing pages that cannot be
// fetched or parsed are logged and skipped.
func (f *Fetcher) CollectTargets(ctx context.Context, listingURLs []string) ([]Target, error) {
	var targets []Target
	for i, listingURL := range listingURLs {
		base, err := url.Parse(listingURL)
		if err != nil {
			return nil, fmt.Errorf("listing url %q: %w", listingURL, err)
		}
		body, err := f.Get(ctx, listingURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			f.logger.Warn("listing fetch failed", zap.String("url", listingURL), zap.Error(err))
			continue
		}
		hrefs, err := CollectRestaurantURLs(bytes.NewReader(body))
		if err != nil {
			f.logger.Warn("listing parse failed", zap.String("url", listingURL), zap.Error(err))
			continue
		}
		page := strconv.Itoa(i + 1)
		for _, href := range hrefs {
			ref, err := url.Parse(href)
			if err != nil {
				continue
			}
			targets = append(targets, Target{Page: page, URL: base.ResolveReference(ref).String()})
		}
	}
	return targets, nil
}
