package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nmtkit/nmtkit/internal/ioparams"
	"github.com/nmtkit/nmtkit/pkg/params"
)

func getTrainCmd() *cobra.Command {
	spec := params.New()
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Prepare and persist a training configuration",
		Long: `Read training parameters from the command line, validate them,
compute derived parameters and persist the resulting configuration as
<model>.json next to the model file. The training engine picks the
configuration up from there.

Examples:
  nmtkit train --source_dataset corpus.en --target_dataset corpus.de \
      --dictionaries vocab.en.json --dictionaries vocab.de.json \
      --model models/ende`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(cmd, spec)
		},
	}
	ioparams.AttachFlags(cmd, spec)
	cmd.SetUsageFunc(ioparams.GroupedUsage(spec))
	return cmd
}

func runTrain(cmd *cobra.Command, spec *params.Spec) error {
	v, err := ioparams.FromFlags(cmd, spec)
	if err != nil {
		var cerr *params.ConsistencyError
		if errors.As(err, &cerr) {
			for _, msg := range cerr.Messages {
				slog.Error(msg)
			}
			return fmt.Errorf("configuration is not consistent")
		}
		return err
	}

	basename := v.String("saveto")
	if err := ioparams.Save(v, basename); err != nil {
		return err
	}

	slog.Info("training configuration saved",
		"path", basename+ioparams.ConfigExt,
		"model_version", v.Float("model_version"),
		"factors", v.Int("factors"),
		"source_vocab_sizes", humanizeInts(v.Ints("source_vocab_sizes")),
		"target_vocab_size", humanize.Comma(int64(v.Int("target_vocab_size"))))
	return nil
}

func humanizeInts(ii []int) string {
	ss := make([]string, len(ii))
	for i, n := range ii {
		ss[i] = humanize.Comma(int64(n))
	}
	return strings.Join(ss, ", ")
}
