package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmtkit/nmtkit/internal/ioconfig"
	"github.com/nmtkit/nmtkit/internal/iofs"
	"github.com/nmtkit/nmtkit/internal/iologger"
	"github.com/nmtkit/nmtkit/pkg/config"
)

var cfgFile string

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nmtkit",
		Short: "nmtkit manages neural machine translation configurations",
		Long: `nmtkit is a toolkit for attention-based encoder-decoder translation
models. This build covers the configuration subsystem: declaring every
tunable parameter, reading parameters from the command line or from a
persisted model configuration, reconciling legacy parameter names and
computing derived parameters.

Application settings (logging) are read with the following precedence:
  1. Environment variables (NMTKIT_*)
  2. Config file (nmtkit.yaml)
  3. Built-in defaults

Model parameters are given to the train command directly and are persisted
as <model>.json next to the model file.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: bootstrap,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./nmtkit.yaml or ~/.config/nmtkit/nmtkit.yaml)")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for nmtkit")

	rootCmd.AddCommand(getTrainCmd())
	rootCmd.AddCommand(getTranslateCmd())
	rootCmd.AddCommand(getConfigCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get user home directory: %w", err)
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		return err
	}

	// Generate a documented config file on first run.
	if cfgFile == "" {
		exists, err := ioconfig.ConfigFileExists()
		if err != nil {
			return fmt.Errorf("cannot check config file: %w", err)
		}
		if !exists {
			path, err := ioconfig.GenerateDefaultConfig()
			if err != nil {
				// Defaults still work without a file.
				fmt.Fprintf(cmd.ErrOrStderr(),
					"Warning: could not generate config file: %v\n", err)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(),
					"Generated default config at: %s\n", path)
			}
		}
	}

	result, err := ioconfig.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load configuration: %w", err)
	}

	if err = iologger.Init(config.LogDir(homeDir), result.Config.Log); err != nil {
		return err
	}
	if result.Source == "file" {
		slog.Debug("application settings loaded",
			"config_file", result.SourcePath)
	}

	return nil
}
