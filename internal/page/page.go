// Package page holds the per-view state of the two site pages. A controller
// is built once per page view from an already resolved catalog and renders
// from that catalog only; changing its view state never fetches again.
package page

import (
	"html/template"

	"github.com/peapod-fundraiser/site/internal/catalog"
	"github.com/peapod-fundraiser/site/internal/render"
)

// Home is the landing page: events and products.
type Home struct {
	catalog *catalog.Catalog
}

// NewHome creates the home page controller.
func NewHome(c *catalog.Catalog) *Home {
	return &Home{catalog: c}
}

// Events renders the events section.
func (h *Home) Events() (template.HTML, error) {
	return render.Events(h.catalog.Events)
}

// Products renders the products section.
func (h *Home) Products() (template.HTML, error) {
	return render.Products(h.catalog.Products)
}

// Filter is one category control on the auction page.
type Filter struct {
	Category string
	Label    string
	Active   bool
}

// Auction is the auction page: filterable items plus suggestions.
type Auction struct {
	catalog  *catalog.Catalog
	category string
}

// NewAuction creates the auction page controller with every category shown.
func NewAuction(c *catalog.Catalog) *Auction {
	return &Auction{catalog: c, category: catalog.CategoryAll}
}

// Category returns the current selection.
func (a *Auction) Category() string { return a.category }

// SelectCategory replaces the current selection. An empty category selects
// all items.
func (a *Auction) SelectCategory(category string) {
	if category == "" {
		category = catalog.CategoryAll
	}
	a.category = category
}

// Filters returns the category controls in display order with exactly one of
// them active. A selection that matches no catalog category still gets a
// control so the page shows what is selected.
func (a *Auction) Filters() []Filter {
	categories := append([]string{catalog.CategoryAll}, a.catalog.Categories()...)

	known := false
	for _, c := range categories {
		if c == a.category {
			known = true
			break
		}
	}
	if !known {
		categories = append(categories, a.category)
	}

	filters := make([]Filter, 0, len(categories))
	for _, c := range categories {
		label := catalog.FormatCategory(c)
		filters = append(filters, Filter{Category: c, Label: label, Active: c == a.category})
	}
	return filters
}

// Items renders the auction items for the current selection.
func (a *Auction) Items() (template.HTML, error) {
	return render.AuctionItems(a.catalog.AuctionItems, a.category)
}

// Suggestions renders the suggestions section.
func (a *Auction) Suggestions() (template.HTML, error) {
	return render.Suggestions(a.catalog.Suggestions)
}
