package sheetson

import (
	"context"
	"net/url"
)

// Package-level equivalents of the Client methods for one-off calls. Each
// constructs a throwaway client against the default endpoint; hold a
// Client instead when making more than a handful of requests.

// CreateRow appends a row to a sheet using explicit credentials.
func CreateRow(ctx context.Context, apiKey, spreadsheetID, sheet string, data Row) (Row, error) {
	return NewClient(apiKey, spreadsheetID).CreateRow(ctx, sheet, data)
}

// GetRow retrieves a row by number using explicit credentials.
func GetRow(ctx context.Context, apiKey, spreadsheetID, sheet string, rowNumber int) (Row, error) {
	return NewClient(apiKey, spreadsheetID).GetRow(ctx, sheet, rowNumber, url.Values{})
}

// UpdateRow updates a row using explicit credentials.
func UpdateRow(ctx context.Context, apiKey, spreadsheetID, sheet string, rowNumber int, data Row) (Row, error) {
	return NewClient(apiKey, spreadsheetID).UpdateRow(ctx, sheet, rowNumber, data)
}

// DeleteRow deletes a row using explicit credentials.
func DeleteRow(ctx context.Context, apiKey, spreadsheetID, sheet string, rowNumber int) (Row, error) {
	return NewClient(apiKey, spreadsheetID).DeleteRow(ctx, sheet, rowNumber)
}

// ListRows lists rows using explicit credentials.
func ListRows(ctx context.Context, apiKey, spreadsheetID, sheet string, opts ListOptions) (*ListResult, error) {
	return NewClient(apiKey, spreadsheetID).ListRows(ctx, sheet, opts)
}

// SearchRows filters rows using explicit credentials.
func SearchRows(ctx context.Context, apiKey, spreadsheetID, sheet string, opts SearchOptions) (*ListResult, error) {
	return NewClient(apiKey, spreadsheetID).SearchRows(ctx, sheet, opts)
}

// BatchOperations applies a batch using explicit credentials.
func BatchOperations(ctx context.Context, apiKey, spreadsheetID, sheet string, ops []Operation) BatchSummary {
	return NewClient(apiKey, spreadsheetID).BatchOperations(ctx, sheet, ops)
}

// CreateRows bulk-loads rows using explicit credentials.
func CreateRows(ctx context.Context, apiKey, spreadsheetID, sheet string, rows []Row, opts ...BulkOption) ([]BatchSummary, error) {
	return NewClient(apiKey, spreadsheetID).CreateRows(ctx, sheet, rows, opts...)
}
