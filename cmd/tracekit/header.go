package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seisgo/tracekit"
)

var headerSelect []string

var headerCmd = &cobra.Command{
	Use:   "header FILE",
	Short: "Print header fields of a trace file",
	Long: `header resolves a trace file, parses its header block and prints the
requested fields. Without --fields every defined field is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := tracekit.ReadRecord(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: format %s, version %d, %s\n",
			args[0], rec.FormatType, rec.Version, rec.ByteOrder)

		if len(headerSelect) > 0 {
			for _, name := range headerSelect {
				f, ok := tracekit.LookupField(name)
				if !ok {
					return fmt.Errorf("unknown header field %q", name)
				}
				if err := printField(cmd, rec, f); err != nil {
					return err
				}
			}
			return nil
		}
		for _, f := range tracekit.Fields() {
			if rec.Header.IsUndefined(f.Name) {
				continue
			}
			if err := printField(cmd, rec, f); err != nil {
				return err
			}
		}
		return nil
	},
}

func printField(cmd *cobra.Command, rec *tracekit.Record, f tracekit.Field) error {
	if f.Kind == tracekit.FieldChar {
		v, err := rec.Header.GetString(f.Name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %-8s = %q\n", f.Name, v)
		return nil
	}
	v, err := rec.Header.Get(f.Name)
	if err != nil {
		return err
	}
	if v == tracekit.Undefined {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-8s = undefined\n", f.Name)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-8s = %g\n", f.Name, v)
	return nil
}

func init() {
	headerCmd.Flags().StringSliceVar(&headerSelect, "fields", nil, "header fields to print")
	rootCmd.AddCommand(headerCmd)
}
