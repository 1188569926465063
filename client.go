// Package sheetson is a client for the Sheetson API, a REST facade that
// exposes a Google Spreadsheet as row-oriented CRUD storage.
package sheetson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production Sheetson API endpoint.
const DefaultBaseURL = "https://api.sheetson.com/v2"

// DefaultTimeout bounds every request unless overridden with WithTimeout
// or WithHTTPClient.
const DefaultTimeout = 30 * time.Second

// Row is a single spreadsheet row as the API sees it: field name to JSON
// value. Rows have no fixed schema; the backing sheet's header row defines
// the fields. Rows are identified by a 1-based row number assigned by the
// backing store.
type Row map[string]any

// Client issues row operations against a single spreadsheet. Credentials
// are fixed at construction; a Client is safe for concurrent use.
type Client struct {
	apiKey        string
	spreadsheetID string
	baseURL       string
	client        *http.Client

	apiCallCount int64
	apiCallMutex sync.Mutex
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint. A trailing
// slash is trimmed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.client = httpClient
	}
}

// NewClient creates a client for the given API key and spreadsheet ID.
func NewClient(apiKey, spreadsheetID string, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		spreadsheetID: spreadsheetID,
		baseURL:       DefaultBaseURL,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IncrementAPICall safely increments the API call counter
func (c *Client) IncrementAPICall() {
	c.apiCallMutex.Lock()
	c.apiCallCount++
	c.apiCallMutex.Unlock()
}

// GetAPICallCount returns the current API call count
func (c *Client) GetAPICallCount() int64 {
	c.apiCallMutex.Lock()
	defer c.apiCallMutex.Unlock()
	return c.apiCallCount
}

// ResetAPICallCount resets the API call counter to zero
func (c *Client) ResetAPICallCount() {
	c.apiCallMutex.Lock()
	c.apiCallCount = 0
	c.apiCallMutex.Unlock()
}

func (c *Client) sheetURL(sheet string) string {
	return fmt.Sprintf("%s/sheets/%s", c.baseURL, url.PathEscape(sheet))
}

func (c *Client) rowURL(sheet string, rowNumber int) string {
	return fmt.Sprintf("%s/sheets/%s/%d", c.baseURL, url.PathEscape(sheet), rowNumber)
}

// makeAPIRequest creates and executes one HTTP request against the API.
// A non-nil body is JSON-encoded and sent with a JSON content type.
func (c *Client) makeAPIRequest(ctx context.Context, method, rawURL string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Spreadsheet-Id", c.spreadsheetID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug().
			Err(err).
			Str("method", method).
			Str("url", rawURL).
			Msg("API request failed")
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	c.IncrementAPICall()

	log.Debug().
		Str("method", method).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Msg("API request completed")

	return resp, nil
}

// handleAPIResponse reads the body and translates non-2xx statuses into
// an *APIError. 2xx bodies are returned raw for the caller to decode.
func (c *Client) handleAPIResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp, body)
	}

	return body, nil
}

// doRow runs a request expected to return a single row representation.
func (c *Client) doRow(ctx context.Context, method, rawURL string, body any) (Row, error) {
	resp, err := c.makeAPIRequest(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}

	respBody, err := c.handleAPIResponse(resp)
	if err != nil {
		return nil, err
	}

	// Some gateways strip DELETE response bodies; treat empty as no content.
	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}

	var row Row
	if err := json.Unmarshal(respBody, &row); err != nil {
		return nil, fmt.Errorf("failed to decode row response: %w", err)
	}

	return row, nil
}

// CreateRow appends a new row to the given sheet and returns the created
// row representation, including its assigned row number.
func (c *Client) CreateRow(ctx context.Context, sheet string, data Row) (Row, error) {
	if data == nil {
		data = Row{}
	}
	return c.doRow(ctx, http.MethodPost, c.sheetURL(sheet), data)
}

// GetRow retrieves a specific row by its 1-based row number. Extra query
// parameters, if any, are passed through to the API unmodified.
func (c *Client) GetRow(ctx context.Context, sheet string, rowNumber int, extraParams url.Values) (Row, error) {
	rawURL := c.rowURL(sheet, rowNumber)
	if len(extraParams) > 0 {
		rawURL += "?" + extraParams.Encode()
	}
	return c.doRow(ctx, http.MethodGet, rawURL, nil)
}

// UpdateRow updates the row at rowNumber with the given fields and returns
// the updated row representation.
func (c *Client) UpdateRow(ctx context.Context, sheet string, rowNumber int, data Row) (Row, error) {
	if data == nil {
		data = Row{}
	}
	return c.doRow(ctx, http.MethodPut, c.rowURL(sheet, rowNumber), data)
}

// DeleteRow deletes the row at rowNumber. When the API returns the deleted
// row's last known representation it is decoded and returned; an empty
// response body yields a nil Row.
func (c *Client) DeleteRow(ctx context.Context, sheet string, rowNumber int) (Row, error) {
	return c.doRow(ctx, http.MethodDelete, c.rowURL(sheet, rowNumber), nil)
}

// ListResult is a decoded collection response. Results and HasNextPage are
// filled when the payload carries them; Raw always holds the full payload
// since the remote schema is not this library's to validate.
type ListResult struct {
	Results     []Row `json:"results"`
	HasNextPage bool  `json:"hasNextPage"`

	raw Row
}

// Raw returns the complete response payload as received.
func (r *ListResult) Raw() Row {
	return r.raw
}

func (c *Client) doList(ctx context.Context, sheet string, params url.Values) (*ListResult, error) {
	rawURL := c.sheetURL(sheet)
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}

	resp, err := c.makeAPIRequest(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.handleAPIResponse(resp)
	if err != nil {
		return nil, err
	}

	var result ListResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	if err := json.Unmarshal(body, &result.raw); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}

	return &result, nil
}

// ListRows retrieves rows from a sheet with optional pagination, ordering
// and field selection.
func (c *Client) ListRows(ctx context.Context, sheet string, opts ListOptions) (*ListResult, error) {
	return c.doList(ctx, sheet, opts.query())
}

// SearchRows retrieves rows matching a filter expression, with the same
// pagination, ordering and field selection knobs as ListRows.
func (c *Client) SearchRows(ctx context.Context, sheet string, opts SearchOptions) (*ListResult, error) {
	params := opts.ListOptions.query()

	whereStr, err := serializeWhere(opts.Where)
	if err != nil {
		return nil, err
	}
	if whereStr != "" {
		params.Set("where", whereStr)
	}

	return c.doList(ctx, sheet, params)
}
