// Package markup extracts product listings from a rendered listing page.
//
// The page contract: each product is an element carrying the "product-card"
// class, its name is the text of the first h3 inside it, its category the
// data-category attribute, its display price the text of the first "price"
// classed element, and its image the src of the first img.
package markup

import (
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/elventhreads/storefront/internal/catalog/domain"
)

// Reader is a catalog source backed by a rendered HTML listing page on disk.
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

func (r *Reader) Listings(ctx context.Context) ([]domain.Listing, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Extract(f)
}

// Extract parses the markup and returns one listing per product card, in
// document order. Cards with missing pieces produce listings with empty
// fields; derivation downstream substitutes defaults.
func Extract(r io.Reader) ([]domain.Listing, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var listings []domain.Listing
	for _, card := range findAll(root, hasClass("product-card")) {
		l := domain.Listing{
			Category: attr(card, "data-category"),
		}
		if n := findFirst(card, isElement("h3")); n != nil {
			l.Name = text(n)
		}
		if n := findFirst(card, hasClass("price")); n != nil {
			l.PriceText = text(n)
		}
		if n := findFirst(card, isElement("img")); n != nil {
			l.Image = attr(n, "src")
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isElement(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// findAll collects matching nodes in document order without descending into
// a match, so nested matches collapse to their outermost element.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
