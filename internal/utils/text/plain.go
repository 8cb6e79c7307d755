// Package text provides utilities for text processing of feed content.
package text

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Plain strips HTML markup from a feed entry description and returns the
// collapsed text content. Feeds frequently wrap descriptions in <p> tags or
// embed links and images; only the readable text is indexed.
//
// Input without any markup is returned trimmed but otherwise unchanged.
// If the markup cannot be parsed, the raw input is returned rather than
// losing the description.
func Plain(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return strings.TrimSpace(html)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	return collapseWhitespace(doc.Text())
}

// collapseWhitespace trims the text and folds internal runs of whitespace
// (including newlines left behind by block elements) into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
