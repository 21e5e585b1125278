// Package templates provides embedded configuration templates.
package templates

import _ "embed"

// ConfigYAML contains the default nmtkit.yaml template for application
// configuration.
//
//go:embed nmtkit.yaml
var ConfigYAML string
