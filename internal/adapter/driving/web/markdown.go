package web

import (
	"bytes"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// noteMarkdown renders GFM with heading anchors so the about page can link
// to its own sections.
var noteMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// notePolicy is bluemonday's UGC policy; external links open in a new tab.
var notePolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

// renderMarkdown converts markdown to sanitized HTML.
func renderMarkdown(src string) (string, error) {
	if src == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := noteMarkdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return notePolicy.Sanitize(buf.String()), nil
}

// aboutPageHTML renders the embedded about note. A conversion failure falls
// back to the escaped source inside a <pre> block.
func aboutPageHTML() (string, error) {
	out, err := renderMarkdown(aboutMarkdown)
	if err != nil {
		return "<pre>" + html.EscapeString(aboutMarkdown) + "</pre>", err
	}
	return out, nil
}
