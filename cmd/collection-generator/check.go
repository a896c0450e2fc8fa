package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"collection-generator/internal/driver"
)

var flagDump bool

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Verify collections without generating code",
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

		if flagDump {
			spew.Fdump(os.Stderr, result.Graph.Shapes)
		}

		return reportResult(cmd, result, true)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&flagDump, "dump", false, "dump resolved collection shapes to stderr")
}

// reportResult renders diagnostics and shape errors, and returns a non-nil
// error when verification failed. When announce is true, clean shapes are
// listed on stdout.
func reportResult(cmd *cobra.Command, result *driver.Result, announce bool) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	failures := 0

	for _, s := range result.Shapes {
		switch {
		case s.Err != nil:
			failures++

			renderShapeError(errOut, s)
		case len(s.Diags) > 0:
			failures++

			renderDiagnostics(errOut, s.Diags)
		case announce:
			fmt.Fprintf(out, "%s: ok\n", s.Shape.ID)
		}
	}

	if failures > 0 {
		return fmt.Errorf("verification failed for %d of %d collections", failures, len(result.Shapes))
	}

	return nil
}
