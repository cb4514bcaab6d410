package catalog

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `{
  "events": [
    {"date": "2025-03-01", "title": "Plant Sale", "location": "Barn", "description": "Seedlings", "featured": true, "orderDeadline": "2025-02-20"},
    {"date": "2025-02-15", "title": "Pancakes", "location": "Hall", "description": "Breakfast", "time": "8am"}
  ],
  "products": [
    {"title": "Tote", "price": 12.5, "description": "Canvas", "features": ["Sturdy", "Green"]}
  ],
  "auctionItems": [
    {"title": "Kayak Trip", "donor": "A", "description": "Paddle", "category": "experiences", "duration": "2h", "nights": 0},
    {"title": "Gift Basket", "donor": "B", "description": "Treats", "category": "goods", "value": 150},
    {"title": "Cabin", "donor": "C", "description": "Lake", "category": "experiences", "nights": 3}
  ],
  "suggestions": [
    {"title": "Car wash", "description": "Soap", "volunteer": "Dana"}
  ],
  "donationInfo": {"venmo": "@peapod"},
  "committee": []
}`

func TestDecode(t *testing.T) {
	c, err := Decode([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(c.Events) != 2 || len(c.Products) != 1 || len(c.AuctionItems) != 3 || len(c.Suggestions) != 1 {
		t.Fatalf("unexpected section sizes: %d/%d/%d/%d",
			len(c.Events), len(c.Products), len(c.AuctionItems), len(c.Suggestions))
	}

	want := Date{Year: 2025, Month: time.March, Day: 1}
	if c.Events[0].Date != want {
		t.Errorf("date = %+v, want %+v", c.Events[0].Date, want)
	}
	if c.Events[0].OrderDeadline == nil || c.Events[0].OrderDeadline.String() != "2025-02-20" {
		t.Errorf("orderDeadline = %v", c.Events[0].OrderDeadline)
	}
	if c.Events[1].OrderDeadline != nil {
		t.Errorf("missing orderDeadline should stay nil")
	}

	if got := c.AuctionItems[1].Value; got != "150" {
		t.Errorf("numeric value decoded as %q, want %q", got, "150")
	}
	if c.AuctionItems[0].Nights.Present() {
		t.Errorf("zero nights should be absent, got %q", c.AuctionItems[0].Nights)
	}
	if c.AuctionItems[2].Nights != "3" {
		t.Errorf("nights = %q, want 3", c.AuctionItems[2].Nights)
	}
	if c.Products[0].Features == nil {
		t.Error("features should be decoded")
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode([]byte(`<html>not json</html>`))
	if err == nil {
		t.Fatal("expected error")
	}
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		t.Errorf("expected *json.SyntaxError, got %T", err)
	}
	if IsValidationError(err) {
		t.Error("syntax error must not be reported as a validation error")
	}
}

func TestValidate(t *testing.T) {
	doc := `{
	  "events": [{"title": "", "location": "x", "description": "y"}],
	  "products": [{"title": "Mug", "price": -1, "description": "z"}],
	  "auctionItems": [{"title": "Thing", "donor": "d", "description": "e"}]
	}`
	_, err := Decode([]byte(doc))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	for _, want := range []string{"events[0]: title", "events[0]: date", "products[0]: price", "auctionItems[0]: category"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestDateCompare(t *testing.T) {
	a, _ := ParseDate("2025-02-15")
	b, _ := ParseDate("2025-03-01")
	c, _ := ParseDate("2024-12-31")

	if !a.Before(b) {
		t.Error("2025-02-15 should precede 2025-03-01")
	}
	if !c.Before(a) {
		t.Error("2024-12-31 should precede 2025-02-15")
	}
	if a.Compare(a) != 0 {
		t.Error("date should equal itself")
	}
}

func TestDateFormattingIgnoresLocalZone(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })

	d, err := ParseDate("2025-03-01")
	if err != nil {
		t.Fatal(err)
	}
	for _, offset := range []int{-12, -5, 0, 9, 14} {
		time.Local = time.FixedZone("test", offset*3600)
		if got := d.Long(); got != "Saturday, March 1, 2025" {
			t.Errorf("offset %d: Long() = %q", offset, got)
		}
		if got := d.Short(); got != "3/1/2025" {
			t.Errorf("offset %d: Short() = %q", offset, got)
		}
	}
}

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{`"2025-12-24"`, Date{2025, time.December, 24}, false},
		{`""`, Date{}, false},
		{`null`, Date{}, false},
		{`"12/24/2025"`, Date{}, true},
		{`20251224`, Date{}, true},
	}
	for _, tt := range tests {
		var d Date
		err := json.Unmarshal([]byte(tt.in), &d)
		if (err != nil) != tt.wantErr {
			t.Errorf("Unmarshal(%s) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if d != tt.want {
			t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, d, tt.want)
		}
	}
}

func TestTextUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Text
	}{
		{`"2 hours"`, "2 hours"},
		{`250`, "250"},
		{`12.5`, "12.5"},
		{`1.50`, "1.5"},
		{`2e2`, "200"},
		{`0`, ""},
		{`""`, ""},
		{`null`, ""},
		{`false`, ""},
		{`true`, "true"},
	}
	for _, tt := range tests {
		var got Text
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}

	var bad Text
	if err := json.Unmarshal([]byte(`{"a":1}`), &bad); err == nil {
		t.Error("expected error for object")
	}
}

func TestCategories(t *testing.T) {
	c, err := Decode([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"experiences", "goods"}
	if diff := cmp.Diff(want, c.Categories()); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoriesSkipsAll(t *testing.T) {
	c := &Catalog{AuctionItems: []AuctionItem{
		{Title: "Raffle", Category: "all"},
		{Title: "Quilt", Category: "goods"},
	}}
	if diff := cmp.Diff([]string{"goods"}, c.Categories()); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatCategory(t *testing.T) {
	tests := map[string]string{
		"experiences":   "Experiences",
		"goods":         "Goods",
		"eatsAndDrinks": "EatsAndDrinks",
		"":              "",
		"élan":          "Élan",
		"Already":       "Already",
	}
	for in, want := range tests {
		if got := FormatCategory(in); got != want {
			t.Errorf("FormatCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt([]byte("short"), 200); got != "short" {
		t.Errorf("Excerpt = %q", got)
	}
	long := strings.Repeat("a", 250)
	if got := Excerpt([]byte(long), 200); len(got) != 200 {
		t.Errorf("Excerpt len = %d, want 200", len(got))
	}
	// "🌱" is four bytes; cutting inside it must back off to a rune boundary.
	if got := Excerpt([]byte("ab🌱"), 4); got != "ab" {
		t.Errorf("Excerpt = %q, want %q", got, "ab")
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	want := &Summary{
		Events:       2,
		Products:     1,
		AuctionItems: 3,
		Suggestions:  1,
		Extra:        []string{"committee", "donationInfo"},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}
