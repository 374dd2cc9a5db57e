// ABOUTME: HTML utilities for turning upstream error pages into plain text
// ABOUTME: Parses fragments with goquery so entities are decoded and tags dropped

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes HTML tags, decodes entities and collapses whitespace.
// Plain text without markup is returned with whitespace collapsed only.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapseSpaces(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpaces(s)
	}

	doc.Find("script, style").Remove()
	return collapseSpaces(doc.Text())
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
