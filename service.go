package tracekit

import (
	"fmt"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global default toolkit, assembled lazily from the environment. Source
// implementations register themselves in their init functions, so the
// program must import the ones it wants:
//
//	import (
//		"github.com/seisgo/tracekit"
//		_ "github.com/seisgo/tracekit/source/local"
//	)
//
//	kit, err := tracekit.Default()
var (
	defaultMu   sync.Mutex
	defaultOnce sync.Once
	defaultKit  *Toolkit
	defaultErr  error
)

// Init builds the default toolkit from an explicit configuration. It
// wins over the lazy environment load only when called first.
func Init(cfg *Config) error {
	defaultOnce.Do(func() {
		defaultKit, defaultErr = New(cfg)
	})
	return defaultErr
}

// Default returns the default toolkit, building it from TRACEKIT_*
// environment variables on first use.
func Default() (*Toolkit, error) {
	defaultOnce.Do(func() {
		var cfg *Config
		cfg, defaultErr = GetConfig()
		if defaultErr != nil {
			return
		}
		defaultKit, defaultErr = New(cfg)
	})
	return defaultKit, defaultErr
}

// Reset discards the default toolkit so the next Default or Init builds
// a fresh one. Intended for tests.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultOnce = sync.Once{}
	defaultKit = nil
	defaultErr = nil
}

// New assembles a toolkit from a configuration: format definitions are
// loaded, the logging and validation switches set, the source opened and
// the options derived.
func New(cfg *Config) (*Toolkit, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.FormatsFile != "" {
		if err := LoadFormats(cfg.FormatsFile); err != nil {
			return nil, err
		}
	}
	SetVerbose(cfg.Verbose)
	SetValidation(cfg.Validation)

	src, err := OpenSource(cfg.Source, cfg)
	if err != nil {
		return nil, err
	}

	opts := []ToolkitOption{WithSource(src)}
	if cfg.CacheResolutions {
		opts = append(opts, WithResolutionCache(NewResolutionCache()))
	}
	if !cfg.Validation {
		opts = append(opts, WithValidationDisabled())
	}
	if extra := cfg.extraRequired(); len(extra) > 0 {
		opts = append(opts, WithExtraRequired(extra...))
	}
	return NewToolkit(opts...), nil
}

// NewFromEnv builds an independent toolkit from TRACEKIT_* environment
// variables without touching the default.
func NewFromEnv() (*Toolkit, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Source == "" {
		return fmt.Errorf("source type is required")
	}
	if cfg.Source == "local" && cfg.LocalBasePath == "" {
		return fmt.Errorf("local source requires a base path")
	}
	return nil
}

// Builder constructs a toolkit from environment variables under a custom
// prefix, for programs embedding more than one toolkit.
//
// Example:
//
//	kit, err := tracekit.NewBuilder().WithPrefix("ARCHIVE_").Build()
type Builder struct {
	prefix string
}

// NewBuilder returns a builder using the standard prefix.
func NewBuilder() *Builder {
	return &Builder{prefix: EnvPrefix}
}

// WithPrefix changes the environment variable prefix.
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// Build loads configuration under the builder's prefix and assembles the
// toolkit.
func (b *Builder) Build() (*Toolkit, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, fmt.Errorf("failed to load tracekit config: %w", err)
	}
	return New(cfg)
}
