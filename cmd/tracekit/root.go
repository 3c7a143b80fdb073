package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seisgo/tracekit"
	_ "github.com/seisgo/tracekit/source/local"
	_ "github.com/seisgo/tracekit/source/memory"
)

var (
	flagVerbose    bool
	flagFormats    string
	flagNoValidate bool
)

var rootCmd = &cobra.Command{
	Use:   "tracekit",
	Short: "Inspect and validate binary seismic trace files",
	Long: `tracekit resolves the header version and byte order of binary seismic
trace files, validates sets of them against the structural invariants
processing pipelines rely on, and stamps event catalog entries into
their headers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		tracekit.SetVerbose(flagVerbose)
		if flagNoValidate {
			tracekit.SetValidation(false)
		}
		if flagFormats != "" {
			return tracekit.LoadFormats(flagFormats)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable progress and diagnostic logging")
	rootCmd.PersistentFlags().StringVar(&flagFormats, "formats", "", "YAML file of extra format definitions")
	rootCmd.PersistentFlags().BoolVar(&flagNoValidate, "no-validate", false, "disable record set checking")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
