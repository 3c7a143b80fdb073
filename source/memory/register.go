package memory

import "github.com/seisgo/tracekit"

func init() {
	tracekit.RegisterSource("memory", func(*tracekit.Config) (tracekit.Source, error) {
		return New(), nil
	})
}
