package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"collection-generator/internal/driver"
	"collection-generator/internal/gen"
)

var genCmd = &cobra.Command{
	Use:   "gen [patterns...]",
	Short: "Verify collections and write generated constructors",
	Long: `Verify collections and write generated constructors.

Construction is all-or-nothing per collection: a collection with any
unsatisfied field produces diagnostics instead of code. Collections that
verify cleanly are still generated when others fail; the command exits
non-zero if any collection failed.`,
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

		files := result.Files()
		if err := gen.WriteFiles(files); err != nil {
			return err
		}

		for _, file := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", file.Filename)
		}

		return reportResult(cmd, result, false)
	},
}
