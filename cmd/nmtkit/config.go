package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmtkit/nmtkit/internal/ioparams"
)

var (
	showModel string
	showText  bool
)

func getConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect model configurations",
	}
	cmd.AddCommand(getConfigShowCmd())
	return cmd
}

func getConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a model's fully resolved configuration",
		Long: `Load the configuration persisted next to a model, migrate legacy
parameter names, fill defaults, run derivations and print the result.

Examples:
  nmtkit config show --model models/ende
  nmtkit config show --model models/ende --text`,
		RunE: runConfigShow,
	}
	cmd.Flags().StringVar(&showModel, "model", "",
		"path of the trained model")
	cmd.Flags().BoolVar(&showText, "text", false,
		"print name=value lines instead of JSON")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	v, err := ioparams.Load(showModel)
	if err != nil {
		return err
	}
	if showText {
		ioparams.WriteResolved(cmd.OutOrStdout(), v)
		return nil
	}
	data, err := json.MarshalIndent(v.Map(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
