// Package extractor provides functions for extracting links from HTML content.
package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link represents an extracted hyperlink.
type Link struct {
	URL  string
	Text string
}

// Result holds the extracted links plus a human-readable status line.
type Result struct {
	Links   []Link
	Message string
}

// DocParser turns raw HTML into a traversable document. Extraction only
// depends on this interface so it can be exercised without a real parser.
type DocParser interface {
	Parse(html string) (*goquery.Document, error)
}

type goqueryParser struct{}

func (goqueryParser) Parse(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// NewParser returns the default goquery-backed parser.
func NewParser() DocParser {
	return goqueryParser{}
}

// DefaultSkipSchemes are href prefixes that never produce a link entry.
var DefaultSkipSchemes = []string{"#", "javascript:", "mailto:", "tel:"}

// Options configures extraction.
type Options struct {
	// BaseURL resolves relative hrefs. Empty means relative hrefs pass
	// through unresolved.
	BaseURL string
	// Dedupe drops repeated URLs, keeping the first occurrence.
	Dedupe bool
	// SkipSchemes overrides DefaultSkipSchemes when non-nil.
	SkipSchemes []string
	// Parser overrides the default document parser when non-nil.
	Parser DocParser
}

// Extract parses html, collects anchors in document order and resolves
// each href. Malformed input never produces an error: parse and
// resolution failures degrade to best-effort strings.
func Extract(html string, opts Options) Result {
	links := ExtractLinks(html, opts)
	return Result{Links: links, Message: StatusMessage(len(links))}
}

// ExtractLinks extracts all anchor targets from html. Anchors without an
// href are skipped, as are hrefs matching the skip schemes. Relative
// hrefs are resolved against opts.BaseURL when one is given.
func ExtractLinks(html string, opts Options) []Link {
	if strings.TrimSpace(html) == "" {
		return []Link{}
	}

	parser := opts.Parser
	if parser == nil {
		parser = goqueryParser{}
	}
	doc, err := parser.Parse(html)
	if err != nil {
		return []Link{}
	}

	skip := opts.SkipSchemes
	if skip == nil {
		skip = DefaultSkipSchemes
	}

	seen := make(map[string]bool)
	links := []Link{}

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || skipped(href, skip) {
			return
		}

		resolved := Resolve(href, opts.BaseURL)

		if opts.Dedupe {
			if seen[resolved] {
				return
			}
			seen[resolved] = true
		}

		links = append(links, Link{
			URL:  resolved,
			Text: strings.TrimSpace(s.Text()),
		})
	})

	return links
}

// Resolve resolves href against base following RFC 3986. An href that
// already carries a scheme is returned unchanged. When base or href
// cannot be parsed, the raw href is returned unchanged.
func Resolve(href, base string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if ref.IsAbs() {
		return href
	}
	if base == "" {
		return href
	}
	b, err := url.Parse(base)
	if err != nil || b.Scheme == "" {
		return href
	}
	return b.ResolveReference(ref).String()
}

// URLs returns just the URL strings of links, in order.
func URLs(links []Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.URL)
	}
	return out
}

func skipped(href string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(href, p) {
			return true
		}
	}
	return false
}

// StatusMessage renders the human-readable count line for a link list.
func StatusMessage(n int) string {
	if n == 0 {
		return "no links found"
	}
	if n == 1 {
		return "1 link found"
	}
	return fmt.Sprintf("%d links found", n)
}
