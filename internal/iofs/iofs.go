// Package iofs prepares the directories nmtkit needs on the file system.
package iofs

import (
	"os"

	"github.com/nmtkit/nmtkit/pkg/config"
)

// EnsureDirs creates the configuration and log directories if they do not
// exist yet.
func EnsureDirs(homeDir string) error {
	for _, dir := range []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return CreateDirError(dir, err)
		}
	}
	return nil
}
