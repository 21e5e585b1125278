package ioparams

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmtkit/nmtkit/pkg/params"
)

// GroupedUsage returns a usage function that renders the command's flags
// under their parameter group descriptions instead of one flat list.
func GroupedUsage(spec *params.Spec) func(*cobra.Command) error {
	return func(cmd *cobra.Command) error {
		w := cmd.OutOrStderr()
		fmt.Fprintf(w, "Usage:\n  %s\n", cmd.UseLine())

		for _, group := range spec.GroupNames() {
			desc := spec.GroupDescription(group)
			if desc == "" {
				continue
			}
			lines := groupUsageLines(spec, group)
			if len(lines) == 0 {
				continue
			}
			fmt.Fprintf(w, "\n%s:\n", desc)
			for _, line := range lines {
				fmt.Fprintln(w, line)
			}
		}

		if cmd.HasAvailableInheritedFlags() {
			fmt.Fprintf(w, "\nGlobal Flags:\n%s",
				cmd.InheritedFlags().FlagUsages())
		}
		return nil
	}
}

func groupUsageLines(spec *params.Spec, group string) []string {
	var lines []string
	for _, p := range spec.ParamsByGroup(group) {
		if len(p.VisibleFlags) == 0 {
			continue
		}
		lines = append(lines, paramUsage(p))
	}
	return lines
}

func paramUsage(p *params.ParamSpec) string {
	var b strings.Builder
	b.WriteString("      ")
	for i, name := range p.VisibleFlags {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("--")
		b.WriteString(name)
	}
	if p.Metavar != "" {
		b.WriteString(" ")
		b.WriteString(p.Metavar)
	}
	b.WriteString("\n          ")
	b.WriteString(p.Help)
	if p.Default != nil && p.Kind != params.KindBool {
		fmt.Fprintf(&b, " (default: %v)", p.Default)
	}
	return b.String()
}

// WriteResolved prints every parameter of a resolved configuration as
// name=value lines, used by `nmtkit config show --text`.
func WriteResolved(w io.Writer, v *params.Values) {
	for _, name := range v.Names() {
		fmt.Fprintf(w, "%s=%v\n", name, v.Get(name))
	}
}
