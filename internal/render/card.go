// Package render turns catalog records into HTML fragments. Every renderer
// is a pure function of its input and re-renders the whole fragment.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/peapod-fundraiser/site/internal/catalog"
)

var funcs = template.FuncMap{
	"markdown": Markdown,
	"price":    FormatPrice,
	"category": catalog.FormatCategory,
}

// part is one line of a card. It is written only when present reports true,
// so absent optional data leaves no markup behind.
type part[T any] struct {
	name    string
	present func(T) bool
	tmpl    *template.Template
}

func newPart[T any](name string, present func(T) bool, text string) part[T] {
	return part[T]{
		name:    name,
		present: present,
		tmpl:    template.Must(template.New(name).Funcs(funcs).Parse(text)),
	}
}

func always[T any](T) bool { return true }

// card renders one record: the opening tag, then each present part in
// order, then the closing tag.
type card[T any] struct {
	open  *template.Template
	parts []part[T]
}

func newCard[T any](open string, parts ...part[T]) card[T] {
	return card[T]{
		open:  template.Must(template.New("open").Funcs(funcs).Parse(open)),
		parts: parts,
	}
}

func (c card[T]) render(buf *bytes.Buffer, v T) error {
	if err := c.open.Execute(buf, v); err != nil {
		return fmt.Errorf("rendering card: %w", err)
	}
	buf.WriteByte('\n')
	for _, p := range c.parts {
		if !p.present(v) {
			continue
		}
		buf.WriteString("  ")
		if err := p.tmpl.Execute(buf, v); err != nil {
			return fmt.Errorf("rendering %s: %w", p.name, err)
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("</div>\n")
	return nil
}

// renderAll renders every record with c.
func renderAll[T any](c card[T], records []T) (template.HTML, error) {
	var buf bytes.Buffer
	for _, r := range records {
		if err := c.render(&buf, r); err != nil {
			return "", err
		}
	}
	return template.HTML(buf.String()), nil
}

// presentParts returns the names of the parts c would render for v.
func presentParts[T any](c card[T], v T) []string {
	var names []string
	for _, p := range c.parts {
		if p.present(v) {
			names = append(names, p.name)
		}
	}
	return names
}

// FormatPrice renders a price with exactly two fractional digits.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
