package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivoronin/databoxes/internal/config"
	"github.com/ivoronin/databoxes/internal/store"
)

var (
	addName        string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Insert a databox directly into the database",
	Args:  cobra.NoArgs,
	Example: `  databoxes add --name 'cold box'
  databoxes add --name crate --description tools --db.dsn boxes.db`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Databox name")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Databox description")
	_ = addCmd.MarkFlagRequired("name")
	addDBFlags(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("", cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.DB.Driver == store.DriverMemory {
		return fmt.Errorf("the memory driver cannot persist databoxes")
	}

	s, err := store.New(cmd.Context(), cfg.DB.Driver, cfg.DB.DSN, cfg.DB.Migrate)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = s.Close() }()

	box := store.NewDatabox(addName, addDescription)
	if err := s.Insert(cmd.Context(), box); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), box.ID)
	return nil
}
