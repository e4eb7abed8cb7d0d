// Package basedetect guesses the base URL of a pasted HTML document by
// frequency analysis of the absolute URLs it contains.
package basedetect

import (
	"net"
	"net/url"
	"sort"
	"strings"

	"github.com/mingrammer/commonregex"
	"golang.org/x/net/publicsuffix"

	"github.com/zromick/linkscrape/pkg/extractor"
)

// Candidate is a scheme://host base with its observed frequency.
type Candidate struct {
	Base  string
	Count int
}

// DefaultTopN is how many ranked candidates Top returns by default.
const DefaultTopN = 10

// Options configures detection.
type Options struct {
	// ByDomain groups candidates by registered domain (eTLD+1) instead
	// of the full hostname. localhost and IP addresses keep their host
	// as-is.
	ByDomain bool
	// Parser overrides the extractor's document parser when non-nil.
	Parser extractor.DocParser
}

// Detect returns the single most frequent base URL in html, or "" when
// the document contains no absolute URLs. Ties break in first-seen order.
func Detect(html string, opts Options) string {
	ranked := Top(html, 1, opts)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Base
}

// Top returns the n most frequent base URLs, ranked by count descending
// with ties in first-seen order. n <= 0 means DefaultTopN.
func Top(html string, n int, opts Options) []Candidate {
	if n <= 0 {
		n = DefaultTopN
	}

	counts := make(map[string]int)
	order := make(map[string]int)

	record := func(raw string) {
		base, ok := reduce(raw, opts.ByDomain)
		if !ok {
			return
		}
		if _, exists := counts[base]; !exists {
			order[base] = len(order)
		}
		counts[base]++
	}

	// Anchor hrefs first, in document order. When no anchor carries an
	// absolute URL, fall back to a regex sweep of the raw text so bare
	// URLs outside anchors still count.
	for _, link := range extractor.ExtractLinks(html, extractor.Options{Parser: opts.Parser}) {
		record(link.URL)
	}
	if len(counts) == 0 {
		for _, raw := range commonregex.Links(html) {
			record(raw)
		}
	}

	ranked := make([]Candidate, 0, len(counts))
	for base, count := range counts {
		ranked = append(ranked, Candidate{Base: base, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return order[ranked[i].Base] < order[ranked[j].Base]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// reduce shrinks an absolute URL down to scheme://host. Anything without
// an http(s) scheme and a hostname is not a usable base.
func reduce(raw string, byDomain bool) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	host := u.Hostname()
	if host == "" {
		return "", false
	}
	if byDomain {
		host = registeredDomain(host)
	}
	return u.Scheme + "://" + host, true
}

// registeredDomain maps a hostname to its eTLD+1. Hosts publicsuffix
// cannot place (localhost, IP addresses) are returned unchanged.
func registeredDomain(host string) string {
	if host == "localhost" || net.ParseIP(host) != nil {
		return host
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
