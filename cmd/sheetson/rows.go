package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"sheetson"
)

var (
	flagData    string
	flagSkip    int
	flagLimit   int
	flagOrderBy string
	flagDesc    bool
	flagKeys    []string
	flagWhere   string
)

func parseRowNumber(arg string) (int, error) {
	rowNumber, err := strconv.Atoi(arg)
	if err != nil || rowNumber < 1 {
		return 0, fmt.Errorf("row number must be a positive integer, got %q", arg)
	}
	return rowNumber, nil
}

// listOptionsFromFlags builds ListOptions shared by list and search.
// Cobra tells us which flags were set so unset skip/limit stay omitted.
func listOptionsFromFlags(cmd *cobra.Command) sheetson.ListOptions {
	opts := sheetson.ListOptions{
		OrderBy: flagOrderBy,
		Desc:    flagDesc,
		Keys:    flagKeys,
	}
	if cmd.Flags().Changed("skip") {
		opts.Skip = sheetson.Int(flagSkip)
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit = sheetson.Int(flagLimit)
	}
	return opts
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagSkip, "skip", 0, "number of rows to skip")
	cmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum number of rows to return")
	cmd.Flags().StringVar(&flagOrderBy, "order-by", "", "field to order by")
	cmd.Flags().BoolVar(&flagDesc, "desc", false, "order descending")
	cmd.Flags().StringSliceVar(&flagKeys, "keys", nil, "fields to return")
}

var createCmd = &cobra.Command{
	Use:   "create --data JSON",
	Short: "Create a new row",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := parseRowData(flagData)
		if err != nil {
			return err
		}
		row, err := client.CreateRow(cmd.Context(), flagSheet, data)
		if err != nil {
			return err
		}
		return printJSON(row)
	},
}

var getCmd = &cobra.Command{
	Use:   "get ROW",
	Short: "Retrieve a row by number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowNumber, err := parseRowNumber(args[0])
		if err != nil {
			return err
		}
		row, err := client.GetRow(cmd.Context(), flagSheet, rowNumber, url.Values{})
		if err != nil {
			return err
		}
		return printJSON(row)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update ROW --data JSON",
	Short: "Update a row by number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowNumber, err := parseRowNumber(args[0])
		if err != nil {
			return err
		}
		data, err := parseRowData(flagData)
		if err != nil {
			return err
		}
		row, err := client.UpdateRow(cmd.Context(), flagSheet, rowNumber, data)
		if err != nil {
			return err
		}
		return printJSON(row)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete ROW",
	Short: "Delete a row by number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowNumber, err := parseRowNumber(args[0])
		if err != nil {
			return err
		}
		row, err := client.DeleteRow(cmd.Context(), flagSheet, rowNumber)
		if err != nil {
			return err
		}
		return printJSON(row)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rows with pagination and ordering",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.ListRows(cmd.Context(), flagSheet, listOptionsFromFlags(cmd))
		if err != nil {
			return err
		}
		return printJSON(result.Raw())
	},
}

var searchCmd = &cobra.Command{
	Use:   "search --where JSON",
	Short: "Filter rows with a where expression",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := sheetson.SearchOptions{ListOptions: listOptionsFromFlags(cmd)}
		if flagWhere != "" {
			opts.Where = sheetson.RawWhere(flagWhere)
		}
		result, err := client.SearchRows(cmd.Context(), flagSheet, opts)
		if err != nil {
			return err
		}
		return printJSON(result.Raw())
	},
}

func init() {
	createCmd.Flags().StringVar(&flagData, "data", "", "row data as a JSON object")
	createCmd.MarkFlagRequired("data")

	updateCmd.Flags().StringVar(&flagData, "data", "", "row data as a JSON object")
	updateCmd.MarkFlagRequired("data")

	addListFlags(listCmd)
	addListFlags(searchCmd)
	searchCmd.Flags().StringVar(&flagWhere, "where", "", "filter expression as JSON or a raw where string")
}
