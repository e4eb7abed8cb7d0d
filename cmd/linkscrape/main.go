package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zromick/linkscrape/pkg/basedetect"
	"github.com/zromick/linkscrape/pkg/clipboard"
	"github.com/zromick/linkscrape/pkg/config"
	"github.com/zromick/linkscrape/pkg/extractor"
	"github.com/zromick/linkscrape/pkg/links"
)

var Version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	cmd := args[0]

	// Handle version and help before touching config
	switch cmd {
	case "version", "-version", "--version":
		fmt.Println(Version)
		return nil
	case "help", "-h", "--help":
		printUsage()
		return nil
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}

	switch cmd {
	case "extract":
		return cmdExtract(args[1:], cfg)
	case "bases":
		return cmdBases(args[1:], cfg)
	case "copy":
		return cmdCopy(args[1:], cfg)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printUsage() {
	fmt.Println(`linkscrape - Extract hyperlinks from pasted HTML

Commands:
  extract [file]  Extract anchor hrefs, resolved to absolute URLs
                    -base <url>   Base URL for resolving relative hrefs
                    -auto-base    Detect the base URL from the document
                    -dedupe       Drop duplicate URLs (first seen wins)
                    -sort         Sort URLs lexicographically
                    -locale <tag> Collation locale for -sort (e.g. en, da)
                    -text         Show anchor text next to each URL
                    -copy         Also copy the list to the clipboard
  bases [file]    Rank candidate base URLs by frequency
                    -n <count>    Number of candidates to show (default 10)
                    -by-domain    Group by registered domain (eTLD+1)
  copy [file]     Extract and copy straight to the clipboard
                    (accepts -base, -auto-base, -dedupe, -sort, -locale)
  version         Show version
  help            Show this help

Reads HTML from the file argument, or from stdin when no file is given.

Environment:
  LINKSCRAPE_CONFIG  Config file path (default ~/.linkscrape/config.yaml)`)
}

func configPath() string {
	if p := os.Getenv("LINKSCRAPE_CONFIG"); p != "" {
		return p
	}
	return config.DefaultPath()
}

// readInput returns the HTML document: the first positional argument as a
// file, or stdin when none is given.
func readInput(fs *flag.FlagSet) (string, error) {
	if fs.NArg() > 0 {
		data, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", fs.Arg(0), err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// extractFlags are the extraction options shared by extract and copy.
type extractFlags struct {
	base     *string
	autoBase *bool
	dedupe   *bool
	sortList *bool
	locale   *string
}

func addExtractFlags(fs *flag.FlagSet, cfg *config.Config) *extractFlags {
	return &extractFlags{
		base:     fs.String("base", cfg.BaseURL, "Base URL for resolving relative hrefs"),
		autoBase: fs.Bool("auto-base", false, "Detect the base URL from the document"),
		dedupe:   fs.Bool("dedupe", cfg.Dedupe, "Drop duplicate URLs, keeping the first occurrence"),
		sortList: fs.Bool("sort", false, "Sort URLs lexicographically"),
		locale:   fs.String("locale", cfg.Locale, "Collation locale for -sort"),
	}
}

// resolveBase picks the base URL for a run: the -base flag when given,
// otherwise auto-detection when -auto-base is set.
func resolveBase(html string, f *extractFlags) string {
	if *f.base != "" || !*f.autoBase {
		return *f.base
	}
	return basedetect.Detect(html, basedetect.Options{})
}

// extractURLs runs the shared extract pipeline and returns the final URL
// list plus the status message.
func extractURLs(html string, f *extractFlags, cfg *config.Config) ([]string, string) {
	result := extractor.Extract(html, extractor.Options{
		BaseURL:     resolveBase(html, f),
		SkipSchemes: cfg.SkipSchemes,
	})

	urls := extractor.URLs(result.Links)
	if *f.dedupe {
		urls = links.Dedupe(urls)
	}
	if *f.sortList {
		urls = links.Sort(urls, *f.locale)
	}
	return urls, extractor.StatusMessage(len(urls))
}

func cmdExtract(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	ef := addExtractFlags(fs, cfg)
	showText := fs.Bool("text", false, "Show anchor text next to each URL")
	copyList := fs.Bool("copy", false, "Also copy the list to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	html, err := readInput(fs)
	if err != nil {
		return err
	}

	if *showText {
		return extractWithText(html, ef, cfg)
	}

	urls, message := extractURLs(html, ef, cfg)
	for _, u := range urls {
		fmt.Println(u)
	}
	fmt.Fprintln(os.Stderr, message)

	if *copyList && len(urls) > 0 {
		if err := clipboard.CopyLinks(clipboard.NewSystemWriter(), urls); err != nil {
			// The extraction itself succeeded; report and move on.
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Copied %d links to clipboard\n", len(urls))
		}
	}
	return nil
}

// extractWithText prints "url<TAB>text" lines in document order. Dedupe
// applies; -sort does not, since the pairing is positional.
func extractWithText(html string, f *extractFlags, cfg *config.Config) error {
	result := extractor.Extract(html, extractor.Options{
		BaseURL:     resolveBase(html, f),
		Dedupe:      *f.dedupe,
		SkipSchemes: cfg.SkipSchemes,
	})
	for _, l := range result.Links {
		fmt.Printf("%s\t%s\n", l.URL, l.Text)
	}
	fmt.Fprintln(os.Stderr, result.Message)
	return nil
}

func cmdBases(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("bases", flag.ContinueOnError)
	limit := fs.Int("n", cfg.TopBases, "Number of candidates to show")
	byDomain := fs.Bool("by-domain", false, "Group by registered domain (eTLD+1)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	html, err := readInput(fs)
	if err != nil {
		return err
	}

	ranked := basedetect.Top(html, *limit, basedetect.Options{ByDomain: *byDomain})
	if len(ranked) == 0 {
		fmt.Fprintln(os.Stderr, "no absolute urls found")
		return nil
	}
	for _, c := range ranked {
		fmt.Printf("%4d  %s\n", c.Count, c.Base)
	}
	return nil
}

func cmdCopy(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("copy", flag.ContinueOnError)
	ef := addExtractFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	html, err := readInput(fs)
	if err != nil {
		return err
	}

	urls, _ := extractURLs(html, ef, cfg)
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "no links found")
		return nil
	}

	if err := clipboard.CopyLinks(clipboard.NewSystemWriter(), urls); err != nil {
		return err
	}
	fmt.Printf("Copied %d links to clipboard\n", len(urls))
	return nil
}
