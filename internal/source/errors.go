package source

import (
	"fmt"
	"net/http"

	"github.com/peapod-fundraiser/site/internal/catalog"
)

// excerptLen bounds how much of a bad document is kept for diagnostics.
const excerptLen = 200

// HTTPError is returned when a source answers with a non-2xx status.
type HTTPError struct {
	Source     string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return "failed to load fundraising data: " + status
}

// ParseError is returned when a source answers successfully but the body is
// not a usable catalog document.
type ParseError struct {
	Source  string
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	if catalog.IsValidationError(e.Err) {
		return fmt.Sprintf("invalid fundraising data in %s: %v", e.Source, e.Err)
	}
	return "invalid JSON in " + e.Source
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnavailableError is returned when a source could not be reached at all:
// a transport failure or a missing file.
type UnavailableError struct {
	Source string
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("fundraising data unavailable from %s: %v", e.Source, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
