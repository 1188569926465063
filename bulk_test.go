package sheetson

import (
	"context"
	"fmt"
	"testing"
)

func makeRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{"name": fmt.Sprintf("city-%d", i)}
	}
	return rows
}

func TestCreateRowsChunking(t *testing.T) {
	testCases := []struct {
		name              string
		rows              int
		chunkSize         int
		expectedSummaries int
	}{
		{name: "ExactMultiple", rows: 10, chunkSize: 5, expectedSummaries: 2},
		{name: "Remainder", rows: 7, chunkSize: 3, expectedSummaries: 3},
		{name: "SingleChunk", rows: 3, chunkSize: 100, expectedSummaries: 1},
		{name: "Empty", rows: 0, chunkSize: 10, expectedSummaries: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, calls := newFakeSheetServer(t)

			summaries, err := client.CreateRows(context.Background(), "Cities", makeRows(tc.rows),
				WithChunkSize(tc.chunkSize))
			if err != nil {
				t.Fatalf("CreateRows failed: %v", err)
			}

			if len(summaries) != tc.expectedSummaries {
				t.Errorf("Expected %d summaries, got %d", tc.expectedSummaries, len(summaries))
			}

			var total int
			for _, summary := range summaries {
				total += summary.Total
			}
			if total != tc.rows {
				t.Errorf("Expected totals to sum to %d, got %d", tc.rows, total)
			}

			if *calls != tc.rows {
				t.Errorf("Expected one request per row (%d), got %d", tc.rows, *calls)
			}
		})
	}
}

func TestCreateRowsDefaultChunkSize(t *testing.T) {
	client, _ := newFakeSheetServer(t)

	summaries, err := client.CreateRows(context.Background(), "Cities", makeRows(150))
	if err != nil {
		t.Fatalf("CreateRows failed: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("Expected 2 summaries for 150 rows at default chunk size, got %d", len(summaries))
	}
	if summaries[0].Total != 100 || summaries[1].Total != 50 {
		t.Errorf("Expected chunk totals 100 and 50, got %d and %d",
			summaries[0].Total, summaries[1].Total)
	}
}

func TestCreateRowsRecordsFailures(t *testing.T) {
	client, _ := newFakeSheetServer(t)

	rows := makeRows(4)
	rows[2] = Row{"fail": true}

	summaries, err := client.CreateRows(context.Background(), "Cities", rows, WithChunkSize(2))
	if err != nil {
		t.Fatalf("CreateRows failed: %v", err)
	}

	if summaries[0].Failed != 0 {
		t.Errorf("Expected first chunk to succeed, got %d failures", summaries[0].Failed)
	}
	if summaries[1].Failed != 1 || summaries[1].Successful != 1 {
		t.Errorf("Expected second chunk to record the failure, got %+v", summaries[1])
	}
}

func TestCreateRowsInvalidChunkSize(t *testing.T) {
	client, calls := newFakeSheetServer(t)

	_, err := client.CreateRows(context.Background(), "Cities", makeRows(5), WithChunkSize(0))
	if err == nil {
		t.Fatal("Expected error for chunk size 0")
	}
	if *calls != 0 {
		t.Errorf("Expected no network activity for invalid chunk size, got %d calls", *calls)
	}
}
