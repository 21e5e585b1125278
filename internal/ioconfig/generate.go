package ioconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nmtkit/nmtkit/pkg/config"
	"github.com/nmtkit/nmtkit/pkg/templates"
)

// writeTemplate writes the embedded default config after checking that the
// template still parses into a valid Config.
func writeTemplate(path string) error {
	var check config.Config
	if err := yaml.Unmarshal([]byte(templates.ConfigYAML), &check); err != nil {
		return fmt.Errorf("embedded config template is malformed: %w", err)
	}
	if err := os.WriteFile(path, []byte(templates.ConfigYAML), 0644); err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	return nil
}
