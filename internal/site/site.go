// Package site lays out the full HTML pages around the rendered fragments.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/peapod-fundraiser/site/internal/page"
)

// DefaultName is shown in the header and title when none is configured.
const DefaultName = "Peapod Fundraiser"

// HomeView is the data for the landing page.
type HomeView struct {
	Events   template.HTML
	Products template.HTML
	Err      string
}

// AuctionView is the data for the auction page.
type AuctionView struct {
	Filters     []page.Filter
	Items       template.HTML
	Suggestions template.HTML
	Err         string
}

type layoutData struct {
	SiteName string
	Nav      string
	What     string
	Err      string
	HomeView
	AuctionView
}

// Pages executes the page templates.
type Pages struct {
	name    string
	home    *template.Template
	auction *template.Template
}

// New parses the page templates. An empty name falls back to DefaultName.
func New(name string) (*Pages, error) {
	if name == "" {
		name = DefaultName
	}
	home, err := parse("home", homeTemplate)
	if err != nil {
		return nil, err
	}
	auction, err := parse("auction", auctionTemplate)
	if err != nil {
		return nil, err
	}
	return &Pages{name: name, home: home, auction: auction}, nil
}

func parse(name, body string) (*template.Template, error) {
	t, err := template.New(name).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	if _, err := t.Parse(errorPanelTemplate); err != nil {
		return nil, fmt.Errorf("parsing error panel: %w", err)
	}
	if _, err := t.Parse(body); err != nil {
		return nil, fmt.Errorf("parsing %s page: %w", name, err)
	}
	return t, nil
}

// Name returns the site name shown on every page.
func (p *Pages) Name() string { return p.name }

// Home writes the landing page to w.
func (p *Pages) Home(w io.Writer, v HomeView) error {
	return p.execute(w, p.home, layoutData{
		SiteName: p.name,
		Nav:      "home",
		What:     "events",
		Err:      v.Err,
		HomeView: v,
	})
}

// Auction writes the auction page to w.
func (p *Pages) Auction(w io.Writer, v AuctionView) error {
	return p.execute(w, p.auction, layoutData{
		SiteName:    p.name,
		Nav:         "auction",
		What:        "auction items",
		Err:         v.Err,
		AuctionView: v,
	})
}

// execute renders into a buffer first so a failing template never leaves a
// half-written page behind.
func (p *Pages) execute(w io.Writer, t *template.Template, data layoutData) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
