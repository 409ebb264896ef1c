package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivoronin/databoxes/internal/filter"
	"github.com/ivoronin/databoxes/internal/output"
	"github.com/ivoronin/databoxes/internal/sqlquery"
	"github.com/ivoronin/databoxes/internal/store"
)

var (
	parseJSON    bool
	parseDialect string
)

var parseCmd = &cobra.Command{
	Use:   "parse <filter>",
	Short: "Show how a filter expression compiles",
	Long: `Tokenize and parse a filter expression against the databox fields
and print the predicate tree together with the SQL condition it becomes.`,
	Args: cobra.ExactArgs(1),
	Example: `  databoxes parse "id eq 'a1' and name contains 'box'"
  databoxes parse "(id eq 'a' or id eq 'b') and name ni 'x,y'" --dialect postgres -j`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseJSON, "json", "j", false, "Output in JSON format")
	parseCmd.Flags().StringVar(&parseDialect, "dialect", "sqlite", "SQL dialect (sqlite, postgres)")
}

func runParse(cmd *cobra.Command, args []string) error {
	var dialect sqlquery.Dialect
	switch parseDialect {
	case "sqlite":
		dialect = sqlquery.SQLite
	case "postgres", "pgx":
		dialect = sqlquery.Postgres
	default:
		return fmt.Errorf("unsupported dialect %q (use sqlite or postgres)", parseDialect)
	}

	expr := args[0]
	tokens, err := filter.Tokenize(expr)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	pred, err := filter.Parse(expr, store.Schema)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	where, whereArgs, err := sqlquery.Where(pred, dialect)
	if err != nil {
		return err
	}

	return printFormatted(cmd, &output.Explanation{
		Filter:    expr,
		Tokens:    tokens,
		Predicate: pred,
		SQL:       where,
		Args:      whereArgs,
	}, parseJSON)
}
