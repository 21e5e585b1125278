// Package ioconfig loads nmtkit's application settings from the file system
// and the environment.
package ioconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/nmtkit/nmtkit/pkg/config"
)

// LoadResult contains the loaded configuration and metadata about its source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // path to the config file used, empty if defaults only
	Source     string // "file", "defaults" or "defaults+env"
}

// Load reads application settings from a YAML file with environment-variable
// overrides. If configPath is empty, default locations are searched:
//   - ./nmtkit.yaml
//   - ~/.config/nmtkit/nmtkit.yaml
//
// Precedence: env vars > config file > defaults.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("NMTKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults are set before reading so viper knows which keys to check
	// for env vars even when no file exists.
	defaults := config.New()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.destination", defaults.Log.Destination)

	usedPath := ""
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file %s: %w",
				configPath, err)
		}
		usedPath = configPath
	} else {
		for _, path := range defaultConfigPaths() {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("cannot read config file %s: %w",
					path, err)
			}
			usedPath = path
			break
		}
	}

	var fileCfg config.Config
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, fmt.Errorf("cannot parse configuration: %w", err)
	}

	// Funnel everything through options so invalid values are rejected
	// and the result stays valid.
	cfg := config.New()
	cfg.Update(fileCfg.ToOptions())

	res := &LoadResult{Config: cfg, SourcePath: usedPath}
	switch {
	case usedPath != "":
		res.Source = "file"
	case hasEnvOverrides():
		res.Source = "defaults+env"
	default:
		res.Source = "defaults"
	}
	return res, nil
}

func defaultConfigPaths() []string {
	paths := []string{"nmtkit.yaml"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, config.ConfigFilePath(homeDir))
	}
	return paths
}

func hasEnvOverrides() bool {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "NMTKIT_") {
			return true
		}
	}
	return false
}

// ConfigFileExists checks whether a config file exists at the default
// location.
func ConfigFileExists() (bool, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return false, fmt.Errorf("cannot get user home directory: %w", err)
	}
	_, err = os.Stat(config.ConfigFilePath(homeDir))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// GenerateDefaultConfig writes the documented default nmtkit.yaml to the
// default location. Existing files are never overwritten.
func GenerateDefaultConfig() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get user home directory: %w", err)
	}
	path := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := writeTemplate(path); err != nil {
		return "", err
	}
	return path, nil
}
