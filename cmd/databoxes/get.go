package main

import (
	"github.com/spf13/cobra"

	"github.com/ivoronin/databoxes/internal/output"
	"github.com/ivoronin/databoxes/internal/store"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:     "get <id>",
	Short:   "Show a single databox",
	Args:    cobra.ExactArgs(1),
	Example: `  databoxes get 0b6f3c52-3f5e-4bd4-9a4e-0f1c2d3e4f50 -j`,
	RunE:    runGet,
}

func init() {
	getCmd.Flags().BoolVarP(&getJSON, "json", "j", false, "Output in JSON format")
	addClientFlags(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	record, err := c.Get(cmd.Context(), args[0])
	if err != nil {
		return requestFailed(err)
	}
	return printFormatted(cmd, output.NewRecordList(nil, []store.Record{record}), getJSON)
}
