package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kotaroooo0/ristorante/crawler"
	"github.com/kotaroooo0/ristorante/extractor"
)

func newFetcher(env *environment, store *crawler.PageStore) *crawler.Fetcher {
	c := env.cfg.Crawler
	return crawler.NewFetcher(store,
		crawler.WithConcurrency(c.Concurrency),
		crawler.WithRateLimit(c.RequestsPerSecond),
		crawler.WithUserAgent(c.UserAgent),
		crawler.WithLogger(env.logger),
	)
}

// listingURLs returns base followed by base/page/2 .. base/page/pages.
func listingURLs(base string, pages int) []string {
	urls := []string{base}
	for i := 2; i <= pages; i++ {
		urls = append(urls, fmt.Sprintf("%s/page/%d", base, i))
	}
	return urls
}

func runURLs(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("urls", flag.ContinueOnError)
	pages := fs.Int("pages", 1, "number of listing pages to visit")
	out := fs.String("out", "urls.txt", "output file of page,url lines")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: urls [-pages n] [-out file] <listing url>")
	}

	targets, err := newFetcher(env, nil).CollectTargets(ctx, listingURLs(fs.Arg(0), *pages))
	if err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := crawler.WriteTargets(f, targets); err != nil {
		return err
	}
	env.logger.Info("urls collected", zap.Int("urls", len(targets)), zap.String("out", *out))
	return nil
}

func runFetch(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	in := fs.String("in", "urls.txt", "file of page,url lines")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	targets, err := crawler.ParseTargets(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}

	store, err := crawler.OpenPageStore(env.cfg.Crawler.PagesPath)
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := newFetcher(env, store).FetchAll(ctx, targets)
	for _, failure := range report.Failed {
		fmt.Fprintf(os.Stderr, "failed %s: %v\n", failure.Target.URL, failure.Err)
	}
	fmt.Printf("fetched %d of %d pages\n", len(report.Fetched), len(targets))
	return err
}

func runExtract(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	out := fs.String("out", "documents.json", "output file of extracted documents")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := crawler.OpenPageStore(env.cfg.Crawler.PagesPath)
	if err != nil {
		return err
	}
	defer store.Close()

	docs, err := extractor.NewExtractor(env.logger).ExtractStore(store)
	if err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(docs)
}
