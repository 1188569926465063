package sheetson

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// DefaultChunkSize is the number of rows sent per batch by CreateRows.
const DefaultChunkSize = 100

type bulkConfig struct {
	chunkSize int
}

// BulkOption configures a CreateRows call.
type BulkOption func(*bulkConfig)

// WithChunkSize overrides the number of rows per batch.
func WithChunkSize(n int) BulkOption {
	return func(cfg *bulkConfig) {
		cfg.chunkSize = n
	}
}

// CreateRows bulk-loads an ordered collection of rows into a sheet. The
// rows are partitioned into fixed-size chunks and each chunk goes through
// BatchOperations as a sequence of creates, yielding one summary per chunk
// in chunk order. There is no cross-chunk atomicity: row failures are
// recorded in the summaries, and only a misconfiguration (chunk size < 1)
// returns an error, before any network activity.
func (c *Client) CreateRows(ctx context.Context, sheet string, rows []Row, opts ...BulkOption) ([]BatchSummary, error) {
	cfg := bulkConfig{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.chunkSize < 1 {
		return nil, fmt.Errorf("chunk size must be at least 1, got %d", cfg.chunkSize)
	}

	log.Debug().
		Str("sheet", sheet).
		Int("rows", len(rows)).
		Int("chunk_size", cfg.chunkSize).
		Msg("Starting bulk row creation")

	var summaries []BatchSummary
	for start := 0; start < len(rows); start += cfg.chunkSize {
		end := start + cfg.chunkSize
		if end > len(rows) {
			end = len(rows)
		}

		ops := make([]Operation, 0, end-start)
		for _, row := range rows[start:end] {
			ops = append(ops, Operation{Kind: OpCreate, Data: row})
		}

		summaries = append(summaries, c.BatchOperations(ctx, sheet, ops))
	}

	return summaries, nil
}
