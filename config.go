package tracekit

import (
	"fmt"
	"strings"

	"github.com/gobeaver/beaver-kit/config"
)

// EnvPrefix is prepended to every configuration variable name.
const EnvPrefix = "TRACEKIT_"

// Config holds the toolkit configuration, loaded from TRACEKIT_*
// environment variables.
type Config struct {
	// Source selects the source type, e.g. "local" or "memory".
	Source string `env:"SOURCE,default:local"`

	// LocalBasePath is the base directory of the local source.
	LocalBasePath string `env:"LOCAL_BASE_PATH,default:."`

	// Verbose turns on progress and diagnostic logging.
	Verbose bool `env:"VERBOSE,default:false"`

	// Validation controls the process-wide record checking switch.
	Validation bool `env:"VALIDATION,default:true"`

	// FormatsFile optionally names a YAML file of extra format
	// definitions to register at startup.
	FormatsFile string `env:"FORMATS_FILE"`

	// CacheResolutions enables the stat-keyed resolution cache.
	CacheResolutions bool `env:"CACHE_RESOLUTIONS,default:true"`

	// ExtraRequired lists extra record attributes, comma separated,
	// that every check demands on top of the mandatory set.
	ExtraRequired string `env:"EXTRA_REQUIRED"`
}

// GetConfig loads the configuration from the environment.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to load tracekit config: %w", err)
	}
	return cfg, nil
}

// extraRequired splits the configured extra attribute list.
func (c *Config) extraRequired() []string {
	if c.ExtraRequired == "" {
		return nil
	}
	var out []string
	for _, name := range strings.Split(c.ExtraRequired, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
