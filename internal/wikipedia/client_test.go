package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikisuggest/internal/domain"
)

func TestSearchURL(t *testing.T) {
	c, err := NewClient("https://en.wikipedia.org/w/api.php")
	require.NoError(t, err)

	assert.Equal(t,
		"https://en.wikipedia.org/w/api.php?action=opensearch&origin=*&search=Catholic+Church%26more",
		c.SearchURL("Catholic Church&more"))
}

func TestSearchURLKeepsEndpointParams(t *testing.T) {
	c, err := NewClient("http://mirror.local/api.php?format=json")
	require.NoError(t, err)

	assert.Equal(t, "http://mirror.local/api.php?format=json&action=opensearch&origin=*&search=Cat", c.SearchURL("Cat"))
}

func TestNewClientRejectsRelativeEndpoint(t *testing.T) {
	_, err := NewClient("/w/api.php")
	assert.Error(t, err)
}

func TestSuggestSendsQueryAndParsesResponse(t *testing.T) {
	var gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		gotAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "opensearch", r.URL.Query().Get("action"))
		assert.Equal(t, "*", r.URL.Query().Get("origin"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catBody))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, WithUserAgent("wikisuggest-test"))
	require.NoError(t, err)

	got, err := c.Suggest(context.Background(), "Cat")
	require.NoError(t, err)
	assert.Equal(t, "Cat", gotQuery)
	assert.Equal(t, "wikisuggest-test", gotAgent)
	assert.Equal(t, domain.SuggestionList{
		{Title: "Cat", Link: "https://en.wikipedia.org/wiki/Cat"},
		{Title: "Catholic Church", Link: "https://en.wikipedia.org/wiki/Catholic_Church"},
	}, got)
}

func TestSuggestNon2xxIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Suggest(context.Background(), "Cat")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
}

func TestSuggestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["Cat"]`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Suggest(context.Background(), "Cat")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestSuggestHonoursContextCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = c.Suggest(ctx, "Cat")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewHTTPClientProxySchemes(t *testing.T) {
	for _, p := range []string{"", "http://127.0.0.1:3128", "socks5://127.0.0.1:1080"} {
		hc, err := NewHTTPClient(p, time.Second)
		require.NoError(t, err, p)
		assert.Equal(t, time.Second, hc.Timeout)
	}

	_, err := NewHTTPClient("ftp://127.0.0.1:21", 0)
	assert.Error(t, err)
}
