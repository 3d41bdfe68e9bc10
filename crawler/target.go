package crawler

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
)

// Target is one restaurant page to download, found on listing page Page.
type Target struct {
	Page string
	URL  string
}

// Key is the page store key of the target: "<page>/<last url segment>.html".
func (t Target) Key() string {
	name := t.URL
	if u, err := url.Parse(t.URL); err == nil {
		name = u.Path
	}
	return t.Page + "/" + path.Base(strings.TrimSuffix(name, "/")) + ".html"
}

// ParseTargets reads "pageNum,url" lines. Blank lines are skipped.
func ParseTargets(r io.Reader) ([]Target, error) {
	var targets []Target
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		page, rawURL, ok := strings.Cut(text, ",")
		page, rawURL = strings.TrimSpace(page), strings.TrimSpace(rawURL)
		if !ok || page == "" || rawURL == "" {
			return nil, fmt.Errorf("line %d: want \"page,url\", got %q", line, text)
		}
		targets = append(targets, Target{Page: page, URL: rawURL})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}

// WriteTargets writes targets in the format read by ParseTargets.
func WriteTargets(w io.Writer, targets []Target) error {
	for _, t := range targets {
		if _, err := fmt.Fprintf(w, "%s,%s\n", t.Page, t.URL); err != nil {
			return err
		}
	}
	return nil
}
