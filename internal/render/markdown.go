package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Catalog descriptions are written by the organisers and may carry inline
// markup, so raw HTML passes through.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,
		extension.Strikethrough,
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
		html.WithHardWraps(),
	),
)

// Markdown converts a description to HTML. Conversion errors fall back to
// the escaped source text.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}
