// Package scrape turns raw tibia.com community pages into domain records.
// It owns the page classifier (maintenance / not-found detection), the
// shared field parsers and one extractor per resource type. Everything in
// this package is pure: no I/O, no clocks other than the instants passed in.
package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"tibia-api/internal/tibia"
)

// MaintenanceTitle is the exact <title> the upstream site serves site-wide
// while it is down. The check is a verbatim string compare.
const MaintenanceTitle = "Tibia - Free Multiplayer Online Role Playing Game - Maintenance"

// Page wraps a parsed community page. Obtaining one via Parse already
// guarantees the page is not the maintenance sentinel.
type Page struct {
	doc *goquery.Document
}

// Parse parses a raw page body. It returns tibia.ErrMaintenance when the
// page title equals MaintenanceTitle; this check precedes every structural
// check in every extractor.
func Parse(body string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, unexpectedf("parse document: %v", err)
	}
	if doc.Find("title").First().Text() == MaintenanceTitle {
		return nil, tibia.ErrMaintenance
	}
	return &Page{doc: doc}, nil
}

// mainContent returns the page's .main-content container.
func (p *Page) mainContent() (*goquery.Selection, error) {
	main := p.doc.Find(".main-content").First()
	if main.Length() == 0 {
		return nil, unexpectedf("main content not found")
	}
	return main, nil
}

// contentTables returns the anchor tables most listing pages are built of.
func (p *Page) contentTables() (*goquery.Selection, error) {
	main, err := p.mainContent()
	if err != nil {
		return nil, err
	}
	return main.Find(".TableContainer table.TableContent"), nil
}

// sanitizer undoes the escape sequences and entities the upstream site
// leaves in text fragments, and folds non-breaking spaces into plain ones.
var sanitizer = strings.NewReplacer(
	`\n`, "",
	`\"`, "'",
	"&nbsp;", " ",
	"&amp;", "&",
	"&#39;", "'",
	"\u00a0", " ",
)

// Sanitize normalizes whitespace and decodes the fixed set of HTML
// entities and escape sequences found in extracted text.
func Sanitize(s string) string {
	return sanitizer.Replace(strings.TrimSpace(s))
}

// unexpectedf builds an error wrapping tibia.ErrUnexpectedContent so that
// callers can classify it with errors.Is.
func unexpectedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", tibia.ErrUnexpectedContent, fmt.Sprintf(format, args...))
}

// firstText returns the first text node under the selection's first node,
// mirroring how the upstream pages put the interesting value in front of
// any markup that follows.
func firstText(s *goquery.Selection) string {
	if len(s.Nodes) == 0 {
		return ""
	}
	var walk func(n *html.Node) (string, bool)
	walk = func(n *html.Node) (string, bool) {
		if n.Type == html.TextNode {
			return n.Data, true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if t, ok := walk(c); ok {
				return t, true
			}
		}
		return "", false
	}
	t, _ := walk(s.Nodes[0])
	return t
}

// textNodes collects every non-blank text node under the selection's first
// node, in document order. Table rows carry their columns as exactly these
// nodes.
func textNodes(s *goquery.Selection) []string {
	if len(s.Nodes) == 0 {
		return nil
	}
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if strings.TrimSpace(n.Data) != "" {
				out = append(out, n.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(s.Nodes[0])
	return out
}
