package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nonContentSelectors lists elements stripped before extracting body text.
const nonContentSelectors = "script, style, nav, header, footer"

// page is a parsed HTML document with the content heuristics shared by the
// blog and generic extractors.
type page struct {
	doc *goquery.Document
}

func parsePage(body []byte) (*page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &page{doc: doc}, nil
}

// headingTitle prefers the first <h1>, falling back to <title>.
func (p *page) headingTitle() string {
	if h1 := strings.TrimSpace(p.doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return p.docTitle()
}

// docTitle returns the trimmed <title> text.
func (p *page) docTitle() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// primaryContent extracts the main text region: <article> first, then
// <main>, then a content-id/class div, then the whole <body>. The result is
// truncated to at most cap runes to bound memory and storage.
func (p *page) primaryContent(capRunes int) string {
	for _, sel := range []string{"article", "main", "div#content", "div.content", "body"} {
		region := p.doc.Find(sel).First()
		if region.Length() == 0 {
			continue
		}
		region.Find(nonContentSelectors).Remove()
		if text := strings.TrimSpace(region.Text()); text != "" {
			return truncate(text, capRunes)
		}
	}
	return ""
}

// truncate cuts s to at most n runes without splitting a rune.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
