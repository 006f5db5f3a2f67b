//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeWiki is a canned OpenSearch endpoint that records the queries it sees
type fakeWiki struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
}

var articles = []string{
	"Cat", "Catholic Church", "Catalonia", "Caterpillar",
	"Dog", "Dolphin", "Go (programming language)",
}

func newFakeWiki(t *testing.T) *fakeWiki {
	t.Helper()
	fw := &fakeWiki{}
	fw.Server = httptest.NewServer(http.HandlerFunc(fw.serve))
	t.Cleanup(fw.Close)
	return fw
}

func (fw *fakeWiki) serve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("action") != "opensearch" {
		http.Error(w, "unsupported action", http.StatusBadRequest)
		return
	}
	search := q.Get("search")

	fw.mu.Lock()
	fw.queries = append(fw.queries, search)
	fw.mu.Unlock()

	titles, descs, links := []string{}, []string{}, []string{}
	for _, a := range articles {
		if strings.HasPrefix(strings.ToLower(a), strings.ToLower(search)) {
			titles = append(titles, a)
			descs = append(descs, "")
			links = append(links, "https://en.wikipedia.org/wiki/"+strings.ReplaceAll(a, " ", "_"))
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode([]any{search, titles, descs, links})
}

// Endpoint returns the API URL to pass with --endpoint
func (fw *fakeWiki) Endpoint() string {
	return fw.URL + "/w/api.php"
}

// Queries returns the searches received so far
func (fw *fakeWiki) Queries() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return append([]string(nil), fw.queries...)
}
