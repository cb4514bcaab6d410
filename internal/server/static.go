package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// handleStatic serves files from the static directory. Anything that is not
// a servable file gets the home page with a 404.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		s.renderHome(w, r, http.StatusNotFound)
		return
	}

	rel := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if rel == "" || !s.serveFile(w, r, rel) {
		s.renderHome(w, r, http.StatusNotFound)
	}
}

// serveFile writes the file at rel (slash-separated, relative to the static
// directory) and reports whether it did. Hidden paths are never served.
// A directory is served through its index.html.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, rel string) bool {
	if isHidden(rel, s.cfg.Hidden) {
		s.logger.Debug("refusing hidden path", zap.String("path", rel))
		return false
	}

	full := filepath.Join(s.cfg.StaticDir, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil {
		return false
	}
	if info.IsDir() {
		full = filepath.Join(full, "index.html")
		if info, err = os.Stat(full); err != nil || info.IsDir() {
			return false
		}
	}

	f, err := os.Open(full)
	if err != nil {
		s.logger.Warn("opening static file", zap.String("path", full), zap.Error(err))
		return false
	}
	defer f.Close()

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

// isHidden reports whether rel matches any of the hidden glob patterns.
// Patterns are tried against the whole path and against the base name.
func isHidden(rel string, patterns []string) bool {
	normalized := filepath.ToSlash(rel)
	base := path.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
