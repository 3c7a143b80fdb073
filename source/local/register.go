package local

import "github.com/seisgo/tracekit"

func init() {
	tracekit.RegisterSource("local", func(cfg *tracekit.Config) (tracekit.Source, error) {
		return New(cfg.LocalBasePath)
	})
}
