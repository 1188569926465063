package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sheetson"
	"sheetson/tabular"
)

var (
	flagChunkSize int
	flagXLSXSheet string
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Bulk-load rows from a CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := readTabularFile(args[0])
		if err != nil {
			return err
		}

		log.Info().
			Str("file", args[0]).
			Int("rows", len(rows)).
			Int("chunk_size", flagChunkSize).
			Msg("Importing rows")

		summaries, err := client.CreateRows(cmd.Context(), flagSheet, rows,
			sheetson.WithChunkSize(flagChunkSize))
		if err != nil {
			return err
		}

		var failed int
		for _, summary := range summaries {
			failed += summary.Failed
		}
		if failed > 0 {
			log.Warn().Int("failed", failed).Msg("Some rows failed to import")
		}

		return printJSON(summaries)
	},
}

func readTabularFile(path string) ([]sheetson.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return tabular.ReadCSV(f)
	case ".xlsx":
		return tabular.ReadXLSX(path, flagXLSXSheet)
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .csv or .xlsx", filepath.Ext(path))
	}
}

func init() {
	importCmd.Flags().IntVar(&flagChunkSize, "chunk-size", sheetson.DefaultChunkSize, "rows per batch")
	importCmd.Flags().StringVar(&flagXLSXSheet, "xlsx-sheet", "", "worksheet name for XLSX files (default: first sheet)")
}
