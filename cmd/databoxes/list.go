package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivoronin/databoxes/internal/client"
	"github.com/ivoronin/databoxes/internal/filter"
	"github.com/ivoronin/databoxes/internal/output"
	"github.com/ivoronin/databoxes/internal/store"
)

var (
	listJSON   bool
	listWhere  string
	listSelect string
	listTake   int
	listSkip   int
)

// Connection flags shared by commands that talk to a server.
var (
	serverURL     string
	serverTimeout time.Duration
	serverRetries int
	verbose       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List databoxes from a server",
	Long: `Query GET /databoxes on a databoxes server.

The filter is validated locally before the request is sent.`,
	Args: cobra.NoArgs,
	Example: `  databoxes list
  databoxes list -w "name startswith 'cold' or description eq 'tools'"
  databoxes list -s id,name --take 10 --skip 20 -j`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listWhere, "where", "w", "", "Filter expression (e.g., \"id eq 'a1'\")")
	listCmd.Flags().StringVarP(&listSelect, "select", "s", "", "Comma-separated fields to return")
	listCmd.Flags().IntVar(&listTake, "take", 0, "Maximum number of databoxes (server default 100)")
	listCmd.Flags().IntVar(&listSkip, "skip", 0, "Number of databoxes to skip")
	addClientFlags(listCmd)
}

// addClientFlags registers server connection flags.
func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&serverURL, "server", "S", envOr("DATABOXES_SERVER", "http://localhost:8080"), "Server base URL")
	cmd.Flags().DurationVar(&serverTimeout, "timeout", 10*time.Second, "Per-request timeout")
	cmd.Flags().IntVar(&serverRetries, "retries", 2, "Retries on connection errors and 5xx responses")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newClient() (*client.Client, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return client.New(serverURL, client.Options{
		Timeout: serverTimeout,
		Retries: serverRetries,
		Version: Version,
		Logger:  log,
	})
}

// requestFailed marks err as a failure talking to the server.
func requestFailed(err error) error {
	return fmt.Errorf("%w: %w", errRequest, err)
}

func runList(cmd *cobra.Command, args []string) error {
	if _, err := filter.Parse(listWhere, store.Schema); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	fields, err := filter.ParseSelect(listSelect, store.Schema)
	if err != nil {
		return fmt.Errorf("invalid select: %w", err)
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	params := client.ListParams{Where: listWhere, Select: listSelect}
	if cmd.Flags().Changed("take") {
		params.Take = &listTake
	}
	if cmd.Flags().Changed("skip") {
		params.Skip = &listSkip
	}

	records, err := c.List(cmd.Context(), params)
	if err != nil {
		return requestFailed(err)
	}

	return printFormatted(cmd, output.NewRecordList(fields, records), listJSON)
}

// printFormatted writes f to stdout as text or JSON. Empty text output
// prints nothing.
func printFormatted(cmd *cobra.Command, f output.Formatter, asJSON bool) error {
	format := output.FormatText
	if asJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(f, format)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return nil
}
