package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"collection-generator/internal/driver"
	"collection-generator/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [patterns...]",
	Short: "Apply the suggested edits from verification diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args)
		if err != nil {
			return err
		}

		log := newLogger()
		defer func() { _ = log.Sync() }()

		result, err := driver.Run(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}

		var edits []fix.Edit

		for _, d := range result.Diagnostics() {
			if !d.Suggestion.Edit.IsZero() {
				edits = append(edits, d.Suggestion.Edit)
			}
		}

		if len(edits) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to fix")
			return nil
		}

		changed, err := fix.ApplyToFiles(edits)
		if err != nil {
			return err
		}

		for _, path := range changed {
			fmt.Fprintf(cmd.OutOrStdout(), "fixed %s\n", path)
		}

		return nil
	},
}
