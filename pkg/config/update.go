package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Update applies a slice of Option functions to the Config. This is the only
// way to modify a Config after creation. Invalid options are rejected with
// warnings and the config remains in a valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions, used for
// round-tripping nmtkit.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	if s := c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s := c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s := c.Log.Destination; s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidEnum(name, val string) bool {
	valid := map[string]map[string]struct{}{
		"Log.Level": {
			"debug": {}, "info": {}, "warn": {}, "error": {},
		},
		"Log.Format": {
			"json": {}, "text": {},
		},
		"Log.Destination": {
			"stderr": {}, "stdout": {}, "file": {},
		},
	}
	if _, ok := valid[name][val]; ok {
		return true
	}
	vals := maps.Keys(valid[name])
	slices.Sort(vals)
	slog.Warn(fmt.Sprintf("%s does not support %q as a value, ignoring "+
		"(valid values: %s)", name, val, strings.Join(vals, ", ")))
	return false
}
