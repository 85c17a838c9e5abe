// Package goquery provides a goquery-based implementation of
// bookseek.Parser for extracting result records from scraped search pages.
package goquery

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookseek"
	"golang.org/x/net/html"
)

// DefaultLimit is the maximum number of accepted records per parse pass.
const DefaultLimit = 25

// titleSnippetLen bounds the context-text fallback title.
const titleSnippetLen = 200

// containerTags are the ancestor elements considered structurally relevant
// when selecting a candidate's context. Deliberately loose: result pages
// have no stable schema, and a stricter selection would reduce recall.
var containerTags = map[string]bool{"article": true, "li": true, "div": true}

// headingTags are the descendants tried for a title when the anchor itself
// has no visible text.
var headingTags = map[string]bool{"h1": true, "h2": true, "h3": true, "strong": true}

// Ensure Parser implements bookseek.Parser at compile time.
var _ bookseek.Parser = (*Parser)(nil)

// Parser locates result candidates by their detail-link pattern and
// recovers one raw record per candidate using best-effort heuristics. A
// candidate's surrounding container supplies the context text for field
// extraction and the title fallbacks.
//
// Parser holds no per-parse state and is safe for concurrent use.
type Parser struct {
	baseURL string
	pattern *regexp.Regexp
	limit   int
	logger  *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLimit caps the number of accepted records per parse pass.
// Defaults to DefaultLimit (25) if not specified.
func WithLimit(n int) Option {
	return func(p *Parser) {
		p.limit = n
	}
}

// WithLogger sets the logger used when discarding candidates.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser. pattern must capture the per-item identifier
// in its first group; baseURL is prefixed onto root-relative hrefs.
func NewParser(baseURL string, pattern *regexp.Regexp, opts ...Option) *Parser {
	p := &Parser{
		baseURL: baseURL,
		pattern: pattern,
		limit:   DefaultLimit,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse scans every anchor in document order, accepting candidates until
// the limit is reached. It fails only when the HTML cannot be parsed at
// all; a candidate that fails validation is logged and skipped without
// counting toward the limit.
func (p *Parser) Parse(rawHTML string) ([]bookseek.Book, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, bookseek.Errorf(bookseek.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var books []bookseek.Book

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		book, ok := p.candidate(sel, seen)
		if !ok {
			return true
		}
		if err := book.Validate(); err != nil {
			p.logger.Debug("discarding candidate", "id", book.ID, "err", err)
			return true
		}
		books = append(books, book)
		return len(books) < p.limit
	})

	return books, nil
}

// candidate extracts one raw record from an anchor. ok is false when the
// anchor is not a usable candidate: no href, no identifier in the href, or
// an identifier already seen earlier in the document.
func (p *Parser) candidate(sel *goquery.Selection, seen map[string]bool) (bookseek.Book, bool) {
	href, exists := sel.Attr("href")
	if !exists || href == "" {
		return bookseek.Book{}, false
	}

	m := p.pattern.FindStringSubmatch(href)
	if m == nil || len(m) < 2 {
		return bookseek.Book{}, false
	}
	id := m[1]

	// First occurrence wins, even when that occurrence is later discarded
	// for a bad title.
	if seen[id] {
		return bookseek.Book{}, false
	}
	seen[id] = true

	container := nearestContainer(sel.Nodes[0])
	context := nodeText(container)
	if container == nil {
		context = collapseSpace(sel.Text())
	}

	// Title fallback chain: anchor text, then the container's first
	// heading-like descendant, then a snippet of the context itself.
	title := collapseSpace(sel.Text())
	if title == "" && container != nil {
		if heading := findHeading(container); heading != nil {
			title = nodeText(heading)
		}
	}
	if title == "" {
		title = snippet(context, titleSnippetLen)
	}

	link := href
	if strings.HasPrefix(href, "/") {
		link = p.baseURL + href
	}

	fields := bookseek.ExtractFields(context)

	return bookseek.Book{
		ID:       id,
		Link:     link,
		Title:    title,
		Author:   fields.Author,
		Format:   fields.Format,
		Size:     fields.Size,
		Language: fields.Language,
	}, true
}

// nearestContainer walks up from the anchor to the closest article, li, or
// div ancestor. When none exists, the anchor's immediate parent element is
// used so a candidate always has some surrounding context. Returns nil only
// for a detached node.
func nearestContainer(n *html.Node) *html.Node {
	var parent *html.Node
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		if parent == nil {
			parent = cur
		}
		if containerTags[cur.Data] {
			return cur
		}
	}
	return parent
}

// findHeading returns the first h1/h2/h3/strong descendant of n in document
// order, or nil.
func findHeading(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && headingTags[c.Data] {
			return c
		}
		if found := findHeading(c); found != nil {
			return found
		}
	}
	return nil
}

// nodeText flattens the text content of a node, joining fragments with
// single spaces the way a rendered page visually separates them.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			if t := strings.TrimSpace(cur.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(parts, " ")
}

// collapseSpace trims s and collapses whitespace runs to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// snippet returns the first n runes of s.
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
