package wikipedia

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"

	"wikisuggest/internal/domain"
)

var api = sonic.ConfigStd

// Response is a decoded OpenSearch reply:
// [queryEcho, titles[], descriptions[], links[]]
type Response struct {
	Query        string
	Titles       []string
	Descriptions []string
	Links        []string
}

// Suggestions pairs titles with links by index, truncating to the shorter
// of the two arrays
func (r Response) Suggestions() domain.SuggestionList {
	n := min(len(r.Titles), len(r.Links))
	out := make(domain.SuggestionList, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Suggestion{Title: r.Titles[i], Link: r.Links[i]})
	}
	return out
}

// ParseOpenSearch decodes an OpenSearch body. Anything that is not a four
// element array of the expected types is reported as ErrMalformedResponse;
// a MediaWiki error object is returned as *APIError.
func ParseOpenSearch(data []byte) (Response, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Error *APIError `json:"error"`
		}
		if err := api.Unmarshal(trimmed, &envelope); err == nil && envelope.Error != nil {
			return Response{}, envelope.Error
		}
		return Response{}, fmt.Errorf("%w: expected array, got object", ErrMalformedResponse)
	}

	var raw []any
	if err := api.Unmarshal(trimmed, &raw); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(raw) < 4 {
		return Response{}, fmt.Errorf("%w: expected 4 elements, got %d", ErrMalformedResponse, len(raw))
	}

	query, ok := raw[0].(string)
	if !ok {
		return Response{}, fmt.Errorf("%w: query echo is %T, not a string", ErrMalformedResponse, raw[0])
	}

	var resp Response
	resp.Query = query

	var err error
	if resp.Titles, err = stringSlice(raw[1], "titles"); err != nil {
		return Response{}, err
	}
	if resp.Descriptions, err = stringSlice(raw[2], "descriptions"); err != nil {
		return Response{}, err
	}
	if resp.Links, err = stringSlice(raw[3], "links"); err != nil {
		return Response{}, err
	}
	return resp, nil
}

func stringSlice(v any, field string) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T, not an array", ErrMalformedResponse, field, v)
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T, not a string", ErrMalformedResponse, field, i, item)
		}
		out[i] = s
	}
	return out, nil
}
