// Package upload explains how to publish the local catalog to the BDO
// service. It performs no network calls: it checks the local document and
// prints what would be published and how.
package upload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/peapod-fundraiser/site/internal/catalog"
)

// Inspect reads and summarizes the catalog file at path.
func Inspect(path string) (*catalog.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := catalog.Summarize(data)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	return s, nil
}

// Report writes the counts, the publishing instructions and the structure
// summary for s. emojiURL is the address the site will read the published
// catalog from.
func Report(w io.Writer, s *catalog.Summary, emojiURL string) error {
	var b bytes.Buffer

	fmt.Fprintln(&b, "Fundraising data loaded successfully")
	fmt.Fprintln(&b, "Events:", s.Events)
	fmt.Fprintln(&b, "Products:", s.Products)
	fmt.Fprintln(&b, "Auction Items:", s.AuctionItems)
	fmt.Fprintln(&b, "Suggestions:", s.Suggestions)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "=== NEXT STEPS ===")
	fmt.Fprintln(&b, "To upload this data to the BDO service:")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "1. Create a user with fount-js or sessionless-node")
	fmt.Fprintln(&b, "2. Use the PUT /user/:uuid/bdo endpoint with a pubKey")
	fmt.Fprintln(&b, "3. This will generate an emojicode for easy access")
	fmt.Fprintln(&b, "4. Set catalog.remote.emojicode to that emojicode")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Emojicode URL the site reads from:")
	fmt.Fprintln(&b, emojiURL)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Until then, the website will use the local JSON file.")

	structure, err := structureJSON(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "=== DATA STRUCTURE ===")
	b.Write(structure)
	b.WriteByte('\n')

	_, err = b.WriteTo(w)
	return err
}

type field struct {
	key   string
	value string
}

// structureJSON renders the summary as an indented JSON object. Sections
// come first in document order, then every extra key marked "included".
func structureJSON(s *catalog.Summary) ([]byte, error) {
	fields := []field{
		{"events", fmt.Sprintf("%d events", s.Events)},
		{"products", fmt.Sprintf("%d products", s.Products)},
		{"auctionItems", fmt.Sprintf("%d auction items", s.AuctionItems)},
		{"suggestions", fmt.Sprintf("%d suggestions", s.Suggestions)},
	}
	for _, key := range s.Extra {
		fields = append(fields, field{key, "included"})
	}

	var b bytes.Buffer
	b.WriteString("{\n")
	for i, f := range fields {
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "  %s: %s", k, v)
		if i < len(fields)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}")
	return b.Bytes(), nil
}
