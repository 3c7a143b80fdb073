package tracekit

import "go.uber.org/zap"

// ToolkitOptions configures a Toolkit. Use the With functions rather
// than filling this struct directly.
type ToolkitOptions struct {
	// Source supplies the trace files. Required.
	Source Source

	// Cache memoizes resolutions for sources backed by local files.
	Cache *ResolutionCache

	// NoCheck disables record checking on this toolkit's operations.
	NoCheck bool

	// ExtraRequired lists attributes every check demands on top of the
	// mandatory set.
	ExtraRequired []string

	// Logger replaces the package logger when non-nil.
	Logger *zap.Logger
}

// ToolkitOption mutates ToolkitOptions.
type ToolkitOption func(*ToolkitOptions)

// WithSource sets the source the toolkit reads traces from.
func WithSource(src Source) ToolkitOption {
	return func(o *ToolkitOptions) {
		o.Source = src
	}
}

// WithResolutionCache attaches a resolution cache.
func WithResolutionCache(cache *ResolutionCache) ToolkitOption {
	return func(o *ToolkitOptions) {
		o.Cache = cache
	}
}

// WithValidationDisabled turns off record checking for the toolkit's
// operations. The process-wide switch is not touched.
func WithValidationDisabled() ToolkitOption {
	return func(o *ToolkitOptions) {
		o.NoCheck = true
	}
}

// WithExtraRequired adds attribute names every check must see on top of
// the mandatory set.
func WithExtraRequired(names ...string) ToolkitOption {
	return func(o *ToolkitOptions) {
		o.ExtraRequired = append(o.ExtraRequired, names...)
	}
}

// WithLogger installs a logger for the toolkit's diagnostics.
func WithLogger(l *zap.Logger) ToolkitOption {
	return func(o *ToolkitOptions) {
		o.Logger = l
	}
}
