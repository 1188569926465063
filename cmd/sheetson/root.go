package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sheetson"
)

var (
	flagSheet   string
	flagBaseURL string

	client *sheetson.Client
)

var rootCmd = &cobra.Command{
	Use:           "sheetson",
	Short:         "Row CRUD against a Sheetson-backed spreadsheet",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config, err := LoadConfig()
		if err != nil {
			return err
		}

		var opts []sheetson.Option
		switch {
		case flagBaseURL != "":
			opts = append(opts, sheetson.WithBaseURL(flagBaseURL))
		case config.BaseURL != "":
			opts = append(opts, sheetson.WithBaseURL(config.BaseURL))
		}

		client = sheetson.NewClient(config.APIKey, config.SpreadsheetID, opts...)
		return nil
	},
}

// Execute runs the CLI and exits non-zero on error
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagSheet, "sheet", "", "sheet (tab) name to operate on")
	flags.StringVar(&flagBaseURL, "base-url", "", "override the API base URL")

	if err := rootCmd.MarkPersistentFlagRequired("sheet"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.AddCommand(createCmd, getCmd, updateCmd, deleteCmd, listCmd, searchCmd, importCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printJSON writes the command result to stdout
func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func parseRowData(raw string) (sheetson.Row, error) {
	var data sheetson.Row
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("invalid --data JSON: %w", err)
	}
	return data, nil
}
