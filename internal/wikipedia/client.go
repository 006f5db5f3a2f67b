package wikipedia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"wikisuggest/internal/domain"
)

// maxBodyBytes caps how much of a response is read
const maxBodyBytes = 1 << 20

// Client fetches OpenSearch suggestions from a MediaWiki API endpoint
type Client struct {
	httpClient *http.Client
	endpoint   *url.URL
	userAgent  string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for the given api.php endpoint
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q is not an absolute URL", endpoint)
	}

	c := &Client{
		httpClient: http.DefaultClient,
		endpoint:   u,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SearchURL returns the OpenSearch request URL for query
func (c *Client) SearchURL(query string) string {
	u := *c.endpoint
	params := "action=opensearch&origin=*&search=" + url.QueryEscape(query)
	if u.RawQuery != "" {
		u.RawQuery += "&" + params
	} else {
		u.RawQuery = params
	}
	return u.String()
}

// Suggest runs one OpenSearch request and maps the result to suggestions.
// Transport errors, non-2xx responses and malformed bodies are all returned
// as errors; the caller decides what to do with them.
func (c *Client) Suggest(ctx context.Context, query string) (domain.SuggestionList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opensearch %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read opensearch response: %w", err)
	}

	parsed, err := ParseOpenSearch(body)
	if err != nil {
		return nil, err
	}
	return parsed.Suggestions(), nil
}
