package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
)

// knownSections are the top-level keys the site renders.
var knownSections = map[string]bool{
	"events":       true,
	"products":     true,
	"auctionItems": true,
	"suggestions":  true,
}

// Summary describes the shape of a catalog document.
type Summary struct {
	Events       int
	Products     int
	AuctionItems int
	Suggestions  int
	// Extra holds top-level keys the site does not render, such as
	// donationInfo or committee, sorted by name.
	Extra []string
}

// Summarize decodes a raw catalog document and counts each section.
func Summarize(data []byte) (*Summary, error) {
	c, err := Decode(data)
	if err != nil {
		return nil, err
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("reading top-level keys: %w", err)
	}

	s := &Summary{
		Events:       len(c.Events),
		Products:     len(c.Products),
		AuctionItems: len(c.AuctionItems),
		Suggestions:  len(c.Suggestions),
	}
	for key := range top {
		if !knownSections[key] {
			s.Extra = append(s.Extra, key)
		}
	}
	sort.Strings(s.Extra)
	return s, nil
}
