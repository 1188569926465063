package sheetson

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx API response. Body holds the parsed
// JSON error payload when the response body is valid JSON, otherwise a map
// with the raw text under "error".
type APIError struct {
	StatusCode int
	Status     string
	Body       any
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Body = parsed
	} else {
		apiErr.Body = map[string]any{"error": string(body)}
	}

	return apiErr
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sheetson: %s: %v", e.Status, e.Body)
}
