package rules

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/valyala/fasthttp"
)

const defaultFetchTimeout = 2 * time.Second

// Source says where the active table comes from. A file wins over a URL;
// with neither the built-in table is used.
type Source struct {
	File    string
	URL     string
	Timeout time.Duration
}

// Load resolves src to a table. A bad rule file is an error, since the
// operator asked for it explicitly. A remote document that cannot be fetched
// or parsed is logged and replaced by the built-in table.
func Load(src Source, logger *slog.Logger) (*Table, error) {
	if src.File != "" {
		t, err := LoadFile(src.File)
		if err != nil {
			return nil, err
		}
		logger.Info("rule table loaded", "source", "file", "path", src.File, "jurisdictions", t.Len())
		return t, nil
	}

	if src.URL != "" {
		f := NewFetcher(src.Timeout)
		t, err := f.Fetch(src.URL)
		if err != nil {
			logger.Warn("remote rule table unavailable, using built-in rules", "url", src.URL, "error", err)
			return Default(), nil
		}
		logger.Info("rule table loaded", "source", "url", "url", src.URL, "jurisdictions", t.Len())
		return t, nil
	}

	logger.Info("rule table loaded", "source", "builtin", "jurisdictions", Default().Len())
	return Default(), nil
}

// Fetcher downloads JSON rule documents.
type Fetcher struct {
	Client  *fasthttp.Client
	Timeout time.Duration
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Fetcher{
		Client: &fasthttp.Client{
			MaxConnsPerHost:     4,
			MaxIdleConnDuration: 90 * time.Second,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		},
		Timeout: timeout,
	}
}

func (f *Fetcher) Fetch(url string) (*Table, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := f.Client.DoTimeout(req, resp, f.Timeout); err != nil {
		return nil, fmt.Errorf("fetching rules: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("fetching rules: unexpected status %d", resp.StatusCode())
	}
	return ParseJSON(resp.Body())
}
