package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seisgo/tracekit"
)

var checkRequire []string

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate a set of trace files",
	Long: `check reads the headers of the given trace files and validates them as
one record set. The first violated invariant is reported with its stable
identifier and the command exits non-zero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := tracekit.ReadRecords(args...)
		if err != nil {
			return err
		}
		if len(checkRequire) > 0 {
			if rep := tracekit.Check(set, checkRequire...); rep != nil {
				return rep
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d records\n", len(set))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkRequire, "require", nil,
		"extra required attributes (requiring dep demands loaded data)")
	rootCmd.AddCommand(checkCmd)
}
