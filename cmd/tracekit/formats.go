package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seisgo/tracekit"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the registered format definitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, def := range tracekit.Formats() {
			versions := make([]string, len(def.Versions))
			for i, v := range def.Versions {
				versions[i] = fmt.Sprintf("%d", v)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s versions %s", def.Type, strings.Join(versions, ", "))
			if def.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  (%s)", def.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
