// Package ioeutils implements eutils.Searcher, eutils.Fetcher and
// eutils.Linker over NCBI E-utilities HTTP endpoints. Calls are
// synchronous, there are no retries.
package ioeutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gnames/ncbitax/internal/iometrics"
	"github.com/gnames/ncbitax/pkg/config"
	"github.com/gnames/ncbitax/pkg/eutils"
)

// Endpoint names, they are also used as metric labels.
const (
	ESearch = "esearch"
	EFetch  = "efetch"
	ELink   = "elink"
)

type client struct {
	base     string
	database string
	tool     string
	email    string
	apiKey   string

	httpClient *http.Client
	metrics    *iometrics.Metrics
}

// Client combines all E-utilities used by ncbitax.
type Client interface {
	eutils.SearchFetcher
	eutils.Linker
}

// New creates an E-utilities client from configuration. Metrics can be
// nil.
func New(cfg *config.Config, m *iometrics.Metrics) Client {
	ecfg := cfg.Eutils
	timeout := time.Duration(ecfg.TimeoutSec) * time.Second
	return &client{
		base:       ecfg.URL,
		database:   ecfg.Database,
		tool:       ecfg.Tool,
		email:      ecfg.Email,
		apiKey:     ecfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

// values returns parameters shared by all requests.
func (c *client) values() url.Values {
	res := url.Values{}
	if c.tool != "" {
		res.Set("tool", c.tool)
	}
	if c.email != "" {
		res.Set("email", c.email)
	}
	if c.apiKey != "" {
		res.Set("api_key", c.apiKey)
	}
	return res
}

// call sends a request to an endpoint and returns the response body.
// Parameters go to the query string of GET requests and to the form body
// of POST requests.
func (c *client) call(
	ctx context.Context,
	method, endpoint string,
	vals url.Values,
) ([]byte, error) {
	u := c.base + endpoint + ".fcgi"

	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader(vals.Encode())
	} else {
		u += "?" + vals.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, RequestError(endpoint, err)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Request(endpoint, 0, time.Since(start))
		return nil, RequestError(endpoint, err)
	}
	defer resp.Body.Close()

	res, err := io.ReadAll(resp.Body)
	dur := time.Since(start)
	c.metrics.Request(endpoint, resp.StatusCode, dur)
	slog.Debug("E-utilities request",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", dur,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, StatusError(endpoint, resp.StatusCode)
	}
	if err != nil {
		return nil, RequestError(endpoint, err)
	}
	return res, nil
}
