package crawler

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// CollectRestaurantURLs returns the href of every <a class="link"> on a
// listing page that points at a single restaurant, in document order.
func CollectRestaurantURLs(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var urls []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "link") {
			if href := attr(n, "href"); isRestaurantURL(href) {
				urls = append(urls, href)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return urls, nil
}

// isRestaurantURL matches "/<lang>/<region>/<city>/restaurant/<name>".
func isRestaurantURL(href string) bool {
	return strings.Contains(href, "/restaurant/") && strings.Count(href, "/") == 5
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
