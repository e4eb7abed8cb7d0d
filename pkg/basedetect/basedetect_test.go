package basedetect

import (
	"testing"
)

func TestDetect_MostCommonWins(t *testing.T) {
	html := `
		<a href="http://a.com/x">1</a>
		<a href="http://a.com/y">2</a>
		<a href="http://a.com/z">3</a>
		<a href="http://b.com/y">4</a>
		<a href="http://b.com/z">5</a>
	`

	base := Detect(html, Options{})

	if base != "http://a.com" {
		t.Errorf("Expected http://a.com, got %s", base)
	}
}

func TestDetect_TieBreaksFirstSeen(t *testing.T) {
	html := `
		<a href="http://b.com/1">1</a>
		<a href="http://a.com/1">2</a>
		<a href="http://b.com/2">3</a>
		<a href="http://a.com/2">4</a>
	`

	base := Detect(html, Options{})

	if base != "http://b.com" {
		t.Errorf("Expected first-seen http://b.com on tie, got %s", base)
	}
}

func TestDetect_NoAbsoluteURLs(t *testing.T) {
	html := `<a href="/relative">rel</a><p>plain text</p>`

	base := Detect(html, Options{})

	if base != "" {
		t.Errorf("Expected empty base, got %s", base)
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	if base := Detect("", Options{}); base != "" {
		t.Errorf("Expected empty base for empty input, got %s", base)
	}
}

func TestDetect_FallsBackToRawTextScan(t *testing.T) {
	html := `<p>See https://example.com/docs and https://example.com/blog for details.</p>`

	base := Detect(html, Options{})

	if base != "https://example.com" {
		t.Errorf("Expected https://example.com from raw text, got %s", base)
	}
}

func TestDetect_SchemeDistinguishesBases(t *testing.T) {
	html := `
		<a href="https://a.com/1">1</a>
		<a href="https://a.com/2">2</a>
		<a href="http://a.com/3">3</a>
	`

	base := Detect(html, Options{})

	if base != "https://a.com" {
		t.Errorf("Expected https://a.com, got %s", base)
	}
}

func TestTop_RanksByCountDescending(t *testing.T) {
	html := `
		<a href="http://a.com/1">1</a>
		<a href="http://b.com/1">2</a>
		<a href="http://a.com/2">3</a>
		<a href="http://c.com/1">4</a>
		<a href="http://a.com/3">5</a>
		<a href="http://b.com/2">6</a>
	`

	ranked := Top(html, 10, Options{})

	if len(ranked) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(ranked))
	}
	want := []Candidate{
		{Base: "http://a.com", Count: 3},
		{Base: "http://b.com", Count: 2},
		{Base: "http://c.com", Count: 1},
	}
	for i, w := range want {
		if ranked[i] != w {
			t.Errorf("Position %d: expected %+v, got %+v", i, w, ranked[i])
		}
	}
}

func TestTop_LimitsResults(t *testing.T) {
	html := `
		<a href="http://a.com/1">1</a>
		<a href="http://b.com/1">2</a>
		<a href="http://c.com/1">3</a>
	`

	ranked := Top(html, 2, Options{})

	if len(ranked) != 2 {
		t.Errorf("Expected 2 candidates with n=2, got %d", len(ranked))
	}
}

func TestTop_DefaultLimit(t *testing.T) {
	html := `<a href="http://a.com/1">1</a>`

	ranked := Top(html, 0, Options{})

	if len(ranked) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(ranked))
	}
	if ranked[0].Base != "http://a.com" || ranked[0].Count != 1 {
		t.Errorf("Unexpected candidate %+v", ranked[0])
	}
}

func TestTop_EmptyList(t *testing.T) {
	ranked := Top("<p>no links</p>", 10, Options{})

	if len(ranked) != 0 {
		t.Errorf("Expected empty list, got %d candidates", len(ranked))
	}
}

func TestTop_ByDomainGroupsSubdomains(t *testing.T) {
	html := `
		<a href="https://blog.example.com/post">1</a>
		<a href="https://www.example.com/home">2</a>
		<a href="https://docs.example.com/guide">3</a>
	`

	ranked := Top(html, 10, Options{ByDomain: true})

	if len(ranked) != 1 {
		t.Fatalf("Expected 1 grouped candidate, got %d", len(ranked))
	}
	if ranked[0].Base != "https://example.com" || ranked[0].Count != 3 {
		t.Errorf("Expected https://example.com x3, got %+v", ranked[0])
	}
}

func TestTop_ByDomainKeepsLocalhost(t *testing.T) {
	html := `<a href="http://localhost:8080/app">local</a>`

	ranked := Top(html, 10, Options{ByDomain: true})

	if len(ranked) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(ranked))
	}
	if ranked[0].Base != "http://localhost" {
		t.Errorf("Expected http://localhost, got %s", ranked[0].Base)
	}
}

func TestTop_IgnoresNonHTTPSchemes(t *testing.T) {
	html := `<a href="ftp://files.example.com/f">ftp</a><a href="http://a.com/1">web</a>`

	ranked := Top(html, 10, Options{})

	if len(ranked) != 1 || ranked[0].Base != "http://a.com" {
		t.Errorf("Expected only http://a.com, got %+v", ranked)
	}
}
