// Package iologger initializes the global slog logger.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nmtkit/nmtkit/pkg/config"
	"github.com/nmtkit/nmtkit/pkg/logger"
)

// Init sets up the default slog logger according to the configuration.
// When the destination is "file", the log file is created in logDir.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer
	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, config.AppName+".log")
		file, err := os.OpenFile(logPath,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}
	slog.SetDefault(logger.New(writer, &cfg))
	return nil
}
