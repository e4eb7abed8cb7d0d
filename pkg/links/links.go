// Package links provides list operations on extracted URLs: dedupe,
// locale-aware sorting and joining for export.
package links

import (
	"strings"

	mapset "github.com/deckarep/golang-set"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Dedupe removes repeated URLs by exact string equality, keeping the
// first occurrence of each.
func Dedupe(urls []string) []string {
	seen := mapset.NewSet()
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.Add(u) {
			out = append(out, u)
		}
	}
	return out
}

// Sort returns a lexicographically sorted copy of urls using the
// collation rules of the given locale. An empty or unknown locale falls
// back to the root collation. Sorting is idempotent.
func Sort(urls []string, locale string) []string {
	tag := language.Und
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	out := make([]string, len(urls))
	copy(out, urls)
	collate.New(tag).SortStrings(out)
	return out
}

// Join renders urls one per line for display or clipboard export.
func Join(urls []string) string {
	return strings.Join(urls, "\n")
}
