package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seisgo/tracekit"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve FILE...",
	Short: "Report the header version and byte order of trace files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache := tracekit.NewResolutionCache()
		unresolved := 0
		for _, path := range args {
			res := cache.Resolve(path)
			if !res.Resolved() {
				unresolved++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: unresolved (%v)\n", path, res.Diagnostic)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: version %d, %s\n", path, res.Version, res.ByteOrder)
		}
		if unresolved > 0 {
			return fmt.Errorf("%d of %d files unresolved", unresolved, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
