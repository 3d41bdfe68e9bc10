package extractor

import (
	"strings"

	"golang.org/x/net/html"
)

type matcher func(n *html.Node) bool

func element(tag string, classes ...string) matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		for _, c := range classes {
			if !hasClass(n, c) {
				return false
			}
		}
		return true
	}
}

func (m matcher) withAttr(key string, match func(string) bool) matcher {
	return func(n *html.Node) bool {
		if !m(n) {
			return false
		}
		v, ok := attr(n, key)
		return ok && match(v)
	}
}

// findAll returns up to limit matching descendants of n in document order.
// limit <= 0 means no limit.
func findAll(n *html.Node, m matcher, limit int) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if m(n) {
			found = append(found, n)
			if limit > 0 && len(found) == limit {
				return false
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c) {
			break
		}
	}
	return found
}

func find(n *html.Node, m matcher) *html.Node {
	if found := findAll(n, m, 1); len(found) > 0 {
		return found[0]
	}
	return nil
}

// text concatenates every text node under n.
func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}
