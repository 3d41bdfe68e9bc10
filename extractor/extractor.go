// Package extractor turns downloaded Michelin Guide restaurant pages into
// documents.
package extractor

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/kotaroooo0/ristorante"
	"github.com/kotaroooo0/ristorante/crawler"
)

var (
	titleMatcher       = element("h1", "data-sheet__title")
	infoBlockMatcher   = element("div", "data-sheet__block--text")
	descriptionMatcher = element("div", "data-sheet__description")
	phoneMatcher       = element("a").withAttr("href", func(v string) bool { return strings.HasPrefix(v, "tel:") })
	websiteMatcher     = element("a", "link", "js-dtm-link").withAttr("data-event", func(v string) bool { return v == "CTA_website" })
	servicesMatcher    = element("div", "restaurant-details__services")
	cardsMatcher       = element("div", "list--card")
	listItemMatcher    = element("li")
	imageMatcher       = element("img")
)

type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract parses one restaurant page. Missing sections leave their fields
// empty and are logged under name; only unreadable input is an error.
func (e *Extractor) Extract(name string, r io.Reader) (ristorante.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return ristorante.Document{}, fmt.Errorf("parse %s: %w", name, err)
	}
	logger := e.logger.With(zap.String("page", name))

	var doc ristorante.Document
	if n := find(root, titleMatcher); n != nil {
		doc.Name = strings.TrimSpace(text(n))
	} else {
		logger.Warn("restaurant name not found")
	}

	infos := findAll(root, infoBlockMatcher, 2)
	if len(infos) > 0 {
		parseLocation(&doc, text(infos[0]))
	} else {
		logger.Warn("location block not found")
	}
	if len(infos) > 1 {
		parsePriceAndCuisine(&doc, text(infos[1]))
	} else {
		logger.Warn("price and cuisine block not found")
	}

	if n := find(root, descriptionMatcher); n != nil {
		doc.Description = strings.TrimSpace(text(n))
	} else {
		logger.Warn("description not found")
	}
	if n := find(root, phoneMatcher); n != nil {
		href, _ := attr(n, "href")
		doc.PhoneNumber = strings.TrimSpace(strings.TrimPrefix(href, "tel:"))
	}
	if n := find(root, websiteMatcher); n != nil {
		doc.Website, _ = attr(n, "href")
	}

	var facilities []string
	if n := find(root, servicesMatcher); n != nil {
		for _, li := range findAll(n, listItemMatcher, 0) {
			if s := strings.TrimSpace(text(li)); s != "" {
				facilities = append(facilities, s)
			}
		}
	}
	doc.FacilitiesServices = ristorante.NewStringSet(facilities...)

	var cards []string
	if n := find(root, cardsMatcher); n != nil {
		for _, img := range findAll(n, imageMatcher, 0) {
			if card := cardName(img); card != "" {
				cards = append(cards, card)
			}
		}
	}
	doc.CreditCards = ristorante.NewStringSet(cards...)
	return doc, nil
}

// ExtractStore extracts every page of the store in key order. Pages that
// cannot be parsed are logged and skipped.
func (e *Extractor) ExtractStore(store *crawler.PageStore) ([]ristorante.Document, error) {
	var docs []ristorante.Document
	err := store.ForEach(func(key string, body []byte) error {
		doc, err := e.Extract(key, bytes.NewReader(body))
		if err != nil {
			e.logger.Warn("skip page", zap.String("page", key), zap.Error(err))
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.logger.Info("pages extracted", zap.Int("documents", len(docs)))
	return docs, nil
}

// parseLocation reads "address, city, postal code, country". The address may
// itself contain commas, so the line is consumed from the right.
func parseLocation(doc *ristorante.Document, line string) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	field := func(i int) string {
		if i < 0 || i >= len(parts) {
			return ""
		}
		return strings.TrimSpace(parts[i])
	}
	n := len(parts)
	doc.Country = field(n - 1)
	doc.PostalCode = field(n - 2)
	doc.City = field(n - 3)
	if n > 3 {
		doc.Address = strings.TrimSpace(strings.Join(parts[:n-3], ","))
	}
}

// parsePriceAndCuisine reads the "€€€ · Cuisine" block, one item per line.
func parsePriceAndCuisine(doc *ristorante.Document, block string) {
	var items []string
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "·" {
			continue
		}
		items = append(items, line)
	}
	if len(items) > 0 {
		doc.PriceRange = items[0]
	}
	if len(items) > 1 {
		doc.CuisineType = items[1]
	}
}

// cardName maps ".../visa-card.svg" to "visa".
func cardName(img *html.Node) string {
	src, ok := attr(img, "data-src")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(path.Base(src), "-")
	return name
}
