package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decode parses a catalog document and validates it.
func Decode(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ValidationError lists every problem found in a decoded catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid catalog: " + strings.Join(e.Problems, "; ")
}

// Validate checks the fields every record must carry. Optional fields are
// never checked.
func (c *Catalog) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for i, e := range c.Events {
		if e.Title == "" {
			add("events[%d]: title is required", i)
		}
		if e.Date.IsZero() {
			add("events[%d]: date is required", i)
		}
	}
	for i, p := range c.Products {
		if p.Title == "" {
			add("products[%d]: title is required", i)
		}
		if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			add("products[%d]: price must be a non-negative number", i)
		}
	}
	for i, a := range c.AuctionItems {
		if a.Title == "" {
			add("auctionItems[%d]: title is required", i)
		}
		if a.Category == "" {
			add("auctionItems[%d]: category is required", i)
		}
	}
	for i, s := range c.Suggestions {
		if s.Title == "" {
			add("suggestions[%d]: title is required", i)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Categories returns the distinct auction item categories in the order they
// first appear. CategoryAll is left out: it always selects every item.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range c.AuctionItems {
		if item.Category == "" || item.Category == CategoryAll || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}

// FormatCategory upper-cases the first character and leaves the rest alone.
func FormatCategory(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError {
		return category
	}
	return string(unicode.ToUpper(r)) + category[size:]
}

// Excerpt returns at most n bytes of data for diagnostics, trimmed back to a
// rune boundary.
func Excerpt(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	cut := data[:n]
	for i := 0; i < utf8.UTFMax-1 && len(cut) > 0; i++ {
		r, size := utf8.DecodeLastRune(cut)
		if r != utf8.RuneError || size != 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return string(cut)
}
