package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sandeshlim1992/dictionary-api/internal/database"
	"github.com/sandeshlim1992/dictionary-api/internal/dictionary"
)

// newCheckCommand runs the same diagnostic as the /test-db route from the
// terminal, so a broken database file can be spotted before serving.
func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the dictionary database and report each diagnostic step",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			store := dictionary.NewDBStore(database.NewOpener(cfg.Database), cfg.Database.Table)
			diagnosis := store.Diagnose(cmd.Context())

			if diagnosis.Status != dictionary.StatusSuccess {
				color.Red("%s: %s", diagnosis.Status, diagnosis.Detail)
				return fmt.Errorf("store diagnostic failed: %s", diagnosis.Detail)
			}

			color.Green("%s: %s", diagnosis.Status, diagnosis.Detail)
			if len(diagnosis.Columns) > 0 {
				fmt.Printf("columns: %s\n", strings.Join(diagnosis.Columns, ", "))
			}
			if len(diagnosis.FirstRow) > 0 {
				fmt.Printf("first row: %v\n", diagnosis.FirstRow)
			}
			return nil
		},
	}
}
