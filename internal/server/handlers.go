package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/peapod-fundraiser/site/internal/calendar"
	"github.com/peapod-fundraiser/site/internal/catalog"
	"github.com/peapod-fundraiser/site/internal/page"
	"github.com/peapod-fundraiser/site/internal/site"
	"github.com/peapod-fundraiser/site/internal/source"
)

// timestampLayout matches the millisecond UTC form browsers emit.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderHome(w, r, http.StatusOK)
}

// renderHome writes the landing page. A catalog that cannot be loaded
// replaces the page content with an error panel and a 503.
func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, status int) {
	var view site.HomeView

	res, err := s.load(r)
	if err != nil {
		view.Err = err.Error()
		if status == http.StatusOK {
			status = http.StatusServiceUnavailable
		}
	} else {
		home := page.NewHome(res.Catalog)
		if view.Events, err = home.Events(); err != nil {
			s.internalError(w, "rendering events", err)
			return
		}
		if view.Products, err = home.Products(); err != nil {
			s.internalError(w, "rendering products", err)
			return
		}
	}

	var buf bytes.Buffer
	if err := s.pages.Home(&buf, view); err != nil {
		s.internalError(w, "rendering home page", err)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func (s *Server) handleAuction(w http.ResponseWriter, r *http.Request) {
	var view site.AuctionView
	status := http.StatusOK

	res, err := s.load(r)
	if err != nil {
		view.Err = err.Error()
		view.Filters = []page.Filter{{Category: catalog.CategoryAll, Label: "All", Active: true}}
		status = http.StatusServiceUnavailable
	} else {
		auction := page.NewAuction(res.Catalog)
		auction.SelectCategory(r.URL.Query().Get("category"))
		view.Filters = auction.Filters()
		if view.Items, err = auction.Items(); err != nil {
			s.internalError(w, "rendering auction items", err)
			return
		}
		if view.Suggestions, err = auction.Suggestions(); err != nil {
			s.internalError(w, "rendering suggestions", err)
			return
		}
	}

	var buf bytes.Buffer
	if err := s.pages.Auction(&buf, view); err != nil {
		s.internalError(w, "rendering auction page", err)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

// handleNamedPage serves <name>.html from the static directory.
func (s *Server) handleNamedPage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.serveFile(w, r, name+".html") {
			s.renderHome(w, r, http.StatusNotFound)
		}
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Instance  string `json:"instance"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC().Format(timestampLayout),
		Instance:  s.instance,
	})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	res, err := s.load(r)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := calendar.Write(&buf, res.Catalog.Events, s.pages.Name(), s.now()); err != nil {
		s.internalError(w, "encoding calendar", err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

type catalogResponse struct {
	Source  source.Origin    `json:"source"`
	Catalog *catalog.Catalog `json:"catalog"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	res, err := s.load(r)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, catalogResponse{Source: res.Origin, Catalog: res.Catalog})
}

// load resolves the catalog for this request.
func (s *Server) load(r *http.Request) (*source.Result, error) {
	start := time.Now()
	res, err := s.loader.Load(r.Context())
	if err != nil {
		s.logger.Error("loading catalog", zap.Error(err))
		return nil, err
	}
	s.logger.Debug("catalog loaded",
		zap.String("source", string(res.Origin)),
		zap.Duration("duration", time.Since(start)),
	)
	return res, nil
}

func (s *Server) internalError(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
