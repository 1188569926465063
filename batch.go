package sheetson

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// OperationKind identifies the row operation a batch item performs.
type OperationKind string

const (
	OpCreate OperationKind = "create"
	OpUpdate OperationKind = "update"
	OpDelete OperationKind = "delete"
)

// Operation describes one row operation within a batch. Data is required
// for create and update; RowNumber is required for update and delete
// (zero means absent, row numbers are 1-based).
type Operation struct {
	Kind      OperationKind `json:"operation"`
	Data      Row           `json:"data,omitempty"`
	RowNumber int           `json:"rowNumber,omitempty"`
}

// OperationResult records the outcome of a single batch item. Exactly one
// of Result and Err is meaningful, selected by Success.
type OperationResult struct {
	Kind      OperationKind `json:"operation"`
	RowNumber int           `json:"rowNumber,omitempty"`
	Success   bool          `json:"success"`
	Result    Row           `json:"result,omitempty"`
	Err       string        `json:"error,omitempty"`
}

// BatchSummary aggregates the outcomes of one batch. Results preserves the
// input order: Results[i] is the outcome of the i-th operation.
type BatchSummary struct {
	Results    []OperationResult `json:"batchResults"`
	Total      int               `json:"totalOperations"`
	Successful int               `json:"successfulOperations"`
	Failed     int               `json:"failedOperations"`
}

// BatchOperations applies the operations against one sheet sequentially,
// in the order given, continuing past per-item failures. Item failures,
// including API errors, are recorded in the summary and never propagated;
// the Sheetson API has no transactional batch endpoint, so partial
// application is the accepted outcome.
func (c *Client) BatchOperations(ctx context.Context, sheet string, ops []Operation) BatchSummary {
	results := make([]OperationResult, 0, len(ops))
	for _, op := range ops {
		results = append(results, c.applyOperation(ctx, sheet, op))
	}

	summary := BatchSummary{
		Results: results,
		Total:   len(ops),
	}
	for _, result := range results {
		if result.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	log.Debug().
		Str("sheet", sheet).
		Int("total", summary.Total).
		Int("successful", summary.Successful).
		Int("failed", summary.Failed).
		Msg("Completed batch operations")

	return summary
}

func (c *Client) applyOperation(ctx context.Context, sheet string, op Operation) OperationResult {
	result := OperationResult{
		Kind:      op.Kind,
		RowNumber: op.RowNumber,
	}

	switch op.Kind {
	case OpCreate:
		row, err := c.CreateRow(ctx, sheet, op.Data)
		if err != nil {
			result.Err = err.Error()
			return result
		}
		result.Success = true
		result.Result = row

	case OpUpdate:
		if op.RowNumber == 0 {
			result.Err = "row number is required for update operations"
			return result
		}
		row, err := c.UpdateRow(ctx, sheet, op.RowNumber, op.Data)
		if err != nil {
			result.Err = err.Error()
			return result
		}
		result.Success = true
		result.Result = row

	case OpDelete:
		if op.RowNumber == 0 {
			result.Err = "row number is required for delete operations"
			return result
		}
		row, err := c.DeleteRow(ctx, sheet, op.RowNumber)
		if err != nil {
			result.Err = err.Error()
			return result
		}
		result.Success = true
		result.Result = row

	default:
		result.Err = fmt.Sprintf("unknown operation kind: %q", op.Kind)
	}

	return result
}
