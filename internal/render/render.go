package render

import (
	"html/template"
	"slices"

	"github.com/peapod-fundraiser/site/internal/catalog"
)

// EmptyCategory is written in place of the auction list when a filter
// matches nothing.
const EmptyCategory = template.HTML(`<p class="text-center">No items in this category yet.</p>`)

var eventCard = newCard(
	`<div class="event-card{{if .Featured}} featured{{end}}">`,
	newPart("featured", func(e catalog.Event) bool { return e.Featured },
		`<div class="featured-badge">★ Featured Event ★</div>`),
	newPart("date", always[catalog.Event],
		`<div class="event-date">{{.Date.Long}}</div>`),
	newPart("title", always[catalog.Event],
		`<h3 class="event-title">{{.Title}}</h3>`),
	newPart("location", always[catalog.Event],
		`<div class="event-location">{{.Location}}</div>`),
	newPart("description", always[catalog.Event],
		`<div class="event-description">{{markdown .Description}}</div>`),
	newPart("time", func(e catalog.Event) bool { return e.Time.Present() },
		`<div class="event-badge">🕐 {{.Time}}</div>`),
	newPart("benefit", func(e catalog.Event) bool { return e.Benefit.Present() },
		`<div class="event-badge">💰 {{.Benefit}}</div>`),
	newPart("orderDeadline", func(e catalog.Event) bool { return e.OrderDeadline != nil && !e.OrderDeadline.IsZero() },
		`<div class="event-badge">📅 Order by {{.OrderDeadline.Short}}</div>`),
	newPart("websiteUrl", func(e catalog.Event) bool { return e.WebsiteURL.Present() },
		`<div class="mt-1"><a href="{{.WebsiteURL}}" target="_blank" rel="noopener" class="btn btn-secondary">Learn More</a></div>`),
)

var productCard = newCard(
	`<div class="product-card">`,
	newPart("imageUrl", func(p catalog.Product) bool { return p.ImageURL.Present() },
		`<img src="{{.ImageURL}}" alt="{{.Title}}" class="product-image">`),
	newPart("title", always[catalog.Product],
		`<h3 class="product-title">{{.Title}}</h3>`),
	newPart("price", always[catalog.Product],
		`<div class="product-price">{{price .Price}}</div>`),
	newPart("description", always[catalog.Product],
		`<div class="product-description">{{markdown .Description}}</div>`),
	newPart("features", func(p catalog.Product) bool { return p.Features != nil },
		`<ul class="product-features">{{range .Features}}<li>✓ {{.}}</li>{{end}}</ul>`),
	newPart("contact", func(p catalog.Product) bool { return p.Contact.Present() },
		`<div class="product-contact"><strong>To order:</strong> {{.Contact}}</div>`),
)

var auctionCard = newCard(
	`<div class="auction-item-card {{.Category}}" data-category="{{.Category}}">`,
	newPart("title", always[catalog.AuctionItem],
		`<h3 class="auction-item-title">{{.Title}}</h3>`),
	newPart("donor", always[catalog.AuctionItem],
		`<div class="auction-item-donor">Donated by: {{.Donor}}</div>`),
	newPart("value", func(a catalog.AuctionItem) bool { return a.Value.Present() },
		`<div class="auction-item-value">Value: ${{.Value}}</div>`),
	newPart("description", always[catalog.AuctionItem],
		`<div class="auction-item-description">{{markdown .Description}}</div>`),
	newPart("duration", func(a catalog.AuctionItem) bool { return a.Duration.Present() },
		`<div class="auction-item-details">⏱️ Duration: {{.Duration}}</div>`),
	newPart("capacity", func(a catalog.AuctionItem) bool { return a.Capacity.Present() },
		`<div class="auction-item-details">👥 Capacity: {{.Capacity}}</div>`),
	newPart("location", func(a catalog.AuctionItem) bool { return a.Location.Present() },
		`<div class="auction-item-details">📍 Location: {{.Location}}</div>`),
	newPart("nights", func(a catalog.AuctionItem) bool { return a.Nights.Present() },
		`<div class="auction-item-details">🌙 {{.Nights}} nights</div>`),
	newPart("quantity", func(a catalog.AuctionItem) bool { return a.Quantity.Present() },
		`<div class="auction-item-details">🔢 Quantity: {{.Quantity}}</div>`),
	newPart("experience", func(a catalog.AuctionItem) bool { return a.Experience.Present() },
		`<div class="auction-item-details">⭐ {{.Experience}}</div>`),
	newPart("cleaningFee", func(a catalog.AuctionItem) bool { return a.CleaningFee.Present() },
		`<div class="auction-item-details">💵 Cleaning fee: ${{.CleaningFee}}</div>`),
	newPart("websiteUrl", func(a catalog.AuctionItem) bool { return a.WebsiteURL.Present() },
		`<div class="mt-1"><a href="{{.WebsiteURL}}" target="_blank" rel="noopener" class="btn btn-secondary">Learn More</a></div>`),
	newPart("status", func(a catalog.AuctionItem) bool { return a.Status.Present() },
		`<div class="event-badge">{{.Status}}</div>`),
	newPart("note", func(a catalog.AuctionItem) bool { return a.Note.Present() },
		`<div class="auction-item-details">ℹ️ {{.Note}}</div>`),
	newPart("category", always[catalog.AuctionItem],
		`<span class="category-tag">{{category .Category}}</span>`),
)

var suggestionCard = newCard(
	`<div class="suggestion-card">`,
	newPart("title", always[catalog.Suggestion],
		`<h3 class="suggestion-title">{{.Title}}</h3>`),
	newPart("description", always[catalog.Suggestion],
		`<div class="suggestion-description">{{markdown .Description}}</div>`),
	newPart("source", func(s catalog.Suggestion) bool { return s.Source.Present() },
		`<div class="suggestion-source">Idea from: {{.Source}}</div>`),
	newPart("volunteer", func(s catalog.Suggestion) bool { return s.Volunteer.Present() },
		`<div class="suggestion-volunteer">Volunteer: {{.Volunteer}}</div>`),
	newPart("note", func(s catalog.Suggestion) bool { return s.Note.Present() },
		`<div class="suggestion-source">Note: {{.Note}}</div>`),
)

// SortEvents returns a copy of events ordered by calendar date. Events on the
// same day keep their document order.
func SortEvents(events []catalog.Event) []catalog.Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b catalog.Event) int {
		return a.Date.Compare(b.Date)
	})
	return sorted
}

// FilterAuctionItems keeps the items whose category equals category exactly.
// catalog.CategoryAll keeps everything.
func FilterAuctionItems(items []catalog.AuctionItem, category string) []catalog.AuctionItem {
	if category == catalog.CategoryAll {
		return items
	}
	var out []catalog.AuctionItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Events renders the events sorted by date.
func Events(events []catalog.Event) (template.HTML, error) {
	return renderAll(eventCard, SortEvents(events))
}

// Products renders the products in document order.
func Products(products []catalog.Product) (template.HTML, error) {
	return renderAll(productCard, products)
}

// AuctionItems renders the items in category. An empty result renders the
// single EmptyCategory placeholder.
func AuctionItems(items []catalog.AuctionItem, category string) (template.HTML, error) {
	filtered := FilterAuctionItems(items, category)
	if len(filtered) == 0 {
		return EmptyCategory, nil
	}
	return renderAll(auctionCard, filtered)
}

// Suggestions renders the suggestions in document order.
func Suggestions(suggestions []catalog.Suggestion) (template.HTML, error) {
	return renderAll(suggestionCard, suggestions)
}
