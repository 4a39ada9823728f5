package seo

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown  = goldmark.New()
	stripTags = bluemonday.StrictPolicy()
)

// DescriptionFromMarkdown derives a plain-text meta description from a
// markdown article body: render, strip every tag, collapse whitespace and
// truncate. Returns "" when the body renders to nothing.
func DescriptionFromMarkdown(body string, max int) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return ""
	}
	text := html.UnescapeString(stripTags.Sanitize(buf.String()))
	return truncatePlain(text, max)
}

// truncatePlain collapses whitespace runs and cuts at a rune boundary,
// appending an ellipsis when anything was dropped.
func truncatePlain(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 2 {
		return ""
	}
	cut := string(r[:max-1])
	if i := strings.LastIndexByte(cut, ' '); i > max/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " .,;:") + "…"
}
