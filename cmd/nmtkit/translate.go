package main

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nmtkit/nmtkit/internal/ioparams"
)

var translateModel string

func getTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Load a trained model's configuration for translation",
		Long: `Load the configuration persisted next to a trained model, updating
legacy parameter names and filling derived values. The translation engine
runs with the resolved configuration.

Examples:
  nmtkit translate --model models/ende`,
		RunE: runTranslate,
	}
	cmd.Flags().StringVar(&translateModel, "model", "",
		"path of the trained model")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	v, err := ioparams.Load(translateModel)
	if err != nil {
		return err
	}

	slog.Info("model configuration loaded",
		"model", translateModel,
		"model_version", v.Float("model_version"),
		"beam_size", v.Int("beam_size"),
		"target_vocab_size", humanize.Comma(int64(v.Int("target_vocab_size"))),
		"translation_maxlen", v.Int("translation_maxlen"))
	return nil
}
