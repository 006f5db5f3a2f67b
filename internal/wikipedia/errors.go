package wikipedia

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when the body is not an OpenSearch array
var ErrMalformedResponse = errors.New("malformed opensearch response")

// StatusError is returned for non-2xx responses
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("opensearch request failed: %s", e.Status)
}

// APIError is an error object reported by the MediaWiki API itself
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mediawiki api error %s: %s", e.Code, e.Info)
}
