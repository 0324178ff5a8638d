package whosetit

import (
	"github.com/mstoykov/envconfig"
	"gopkg.in/guregu/null.v3"
)

// DefaultEvalFilename is reported for call sites in code that was evaluated
// without a file name.
const DefaultEvalFilename = "<eval>"

// Config controls how locations are resolved and reported.
type Config struct {
	// Go has no column in its stack frames; resolving one means parsing the
	// calling source file.
	ResolveColumns null.Bool `json:"resolveColumns" envconfig:"WHOSETIT_RESOLVE_COLUMNS"`

	EvalFilename null.String `json:"evalFilename" envconfig:"WHOSETIT_EVAL_FILENAME"`

	// Whether each new record is logged at debug level.
	LogLocations null.Bool `json:"logLocations" envconfig:"WHOSETIT_LOG_LOCATIONS"`
}

// NewConfig creates a new Config instance with default values for all fields.
func NewConfig() Config {
	return Config{
		ResolveColumns: null.NewBool(true, false),
		EvalFilename:   null.NewString(DefaultEvalFilename, false),
		LogLocations:   null.NewBool(true, false),
	}
}

// Apply saves the valid values of cfg in the receiver.
func (c Config) Apply(cfg Config) Config {
	if cfg.ResolveColumns.Valid {
		c.ResolveColumns = cfg.ResolveColumns
	}
	if cfg.EvalFilename.Valid && cfg.EvalFilename.String != "" {
		c.EvalFilename = cfg.EvalFilename
	}
	if cfg.LogLocations.Valid {
		c.LogLocations = cfg.LogLocations
	}
	return c
}

// GetConsolidatedConfig combines the defaults with the values in env, which
// are the WHOSETIT_* environment variables.
func GetConsolidatedConfig(env map[string]string) (Config, error) {
	result := NewConfig()

	envConfig := Config{}
	if err := envconfig.Process("", &envConfig, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}); err != nil {
		return result, err
	}

	return result.Apply(envConfig), nil
}
