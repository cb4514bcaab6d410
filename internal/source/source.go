package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/peapod-fundraiser/site/internal/catalog"
)

// Source produces a catalog from one place.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*catalog.Catalog, error)
}

// BDOSource reads the catalog from the remote key-value service. The
// service wraps the document in an envelope object; the catalog sits under
// Field.
type BDOSource struct {
	URL    string
	Field  string
	client *http.Client
}

// NewBDOSource builds the emojicode URL under baseURL. A nil client uses
// http.DefaultClient, so only transport defaults bound the request.
func NewBDOSource(baseURL, emojicode, field string, client *http.Client) *BDOSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &BDOSource{
		URL:    BDOURL(baseURL, emojicode),
		Field:  field,
		client: client,
	}
}

// BDOURL joins the service base URL and the path-escaped emojicode.
func BDOURL(baseURL, emojicode string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(emojicode)
}

func (s *BDOSource) Name() string { return s.URL }

func (s *BDOSource) Fetch(ctx context.Context) (*catalog.Catalog, error) {
	body, err := get(ctx, s.client, s.URL)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ParseError{Source: s.URL, Excerpt: catalog.Excerpt(body, excerptLen), Err: err}
	}
	raw, ok := envelope[s.Field]
	if !ok || string(raw) == "null" {
		return nil, &ParseError{
			Source:  s.URL,
			Excerpt: catalog.Excerpt(body, excerptLen),
			Err:     fmt.Errorf("envelope has no %q field", s.Field),
		}
	}
	return decode(s.URL, raw)
}

// HTTPSource reads the catalog document directly from a URL.
type HTTPSource struct {
	URL    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource. A nil client uses http.DefaultClient.
func NewHTTPSource(rawURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{URL: rawURL, client: client}
}

func (s *HTTPSource) Name() string { return s.URL }

func (s *HTTPSource) Fetch(ctx context.Context) (*catalog.Catalog, error) {
	body, err := get(ctx, s.client, s.URL)
	if err != nil {
		return nil, err
	}
	return decode(s.URL, body)
}

// FileSource reads the catalog document from disk. The server uses it for
// the catalog file it also publishes as a static asset.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return s.Path }

func (s *FileSource) Fetch(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &UnavailableError{Source: s.Path, Err: err}
	}
	return decode(s.Path, body)
}

// NewLocal returns an HTTPSource for http(s) references and a FileSource for
// everything else.
func NewLocal(ref string, client *http.Client) Source {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return NewHTTPSource(ref, client)
	}
	return &FileSource{Path: ref}
}

func decode(name string, body []byte) (*catalog.Catalog, error) {
	c, err := catalog.Decode(body)
	if err != nil {
		return nil, &ParseError{Source: name, Excerpt: catalog.Excerpt(body, excerptLen), Err: err}
	}
	return c, nil
}

func get(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &UnavailableError{Source: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{Source: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Source: rawURL, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}
