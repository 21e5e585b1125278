// Package config provides application-level settings for nmtkit.
//
// These settings control the tool itself (logging, file locations), not the
// model: model parameters live in pkg/params and are persisted next to the
// model file. Precedence (highest to lowest): CLI flags > env vars >
// nmtkit.yaml > defaults.
//
// All mutations go through Option functions; invalid values are rejected
// with a warning and the config stays valid.
package config

// Config represents the complete nmtkit application configuration.
type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig provides settings for application logs.
type LogConfig struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is the log encoding: json or text.
	Format string `mapstructure:"format" yaml:"format"`

	// Destination is where logs go: stderr, stdout or file.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New returns a Config with default values. The default config is always
// valid.
func New() *Config {
	return &Config{
		Log: LogConfig{
			Level:       "info",
			Format:      "text",
			Destination: "stderr",
		},
	}
}
