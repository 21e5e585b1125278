// Package ioparams reads model configurations, either from command-line
// flags or from a previously persisted configuration file, and normalizes
// them into a complete params.Values.
package ioparams

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nmtkit/nmtkit/internal/iodict"
	"github.com/nmtkit/nmtkit/pkg/errcode"
	"github.com/nmtkit/nmtkit/pkg/params"
)

// AttachFlags registers one flag per command-line alias of every parameter
// on cmd. Aliases of the same parameter form a mutually exclusive flag
// group, so a parameter's primary and legacy flags cannot both be supplied.
// Hidden aliases are accepted but left out of the help output.
func AttachFlags(cmd *cobra.Command, spec *params.Spec) {
	fs := cmd.Flags()
	for _, group := range spec.GroupNames() {
		for _, p := range spec.ParamsByGroup(group) {
			if !p.HasFlags() {
				continue
			}
			for _, name := range p.Flags() {
				registerFlag(fs, p, name)
			}
			for _, name := range p.HiddenFlags {
				_ = fs.MarkHidden(name)
			}
			flags := p.Flags()
			if len(flags) > 1 {
				cmd.MarkFlagsMutuallyExclusive(flags...)
			}
			if p.Required {
				cmd.MarkFlagsOneRequired(flags...)
			}
		}
	}
}

// FromFlags builds a configuration from parsed flags: every parameter takes
// the value of whichever of its aliases was supplied, or its default. The
// result is consistency-checked and completed by the derivation pass.
func FromFlags(cmd *cobra.Command, spec *params.Spec) (*params.Values, error) {
	fs := cmd.Flags()
	v := params.NewValues()

	for _, group := range spec.GroupNames() {
		for _, p := range spec.ParamsByGroup(group) {
			v.Set(p.Name, p.Default)
			for _, name := range p.Flags() {
				flag := fs.Lookup(name)
				if flag == nil || !flag.Changed {
					continue
				}
				val, err := flagValue(fs, p, name)
				if err != nil {
					return nil, err
				}
				v.Set(p.Name, val)
				break
			}
		}
	}

	if msgs := spec.CheckConsistency(v); len(msgs) > 0 {
		return nil, &params.ConsistencyError{Messages: msgs}
	}

	meta := &params.Meta{FromCmdline: true, VocabSize: iodict.VocabSize}
	if err := spec.Derive(v, meta); err != nil {
		return nil, err
	}
	return v, nil
}

func registerFlag(fs *pflag.FlagSet, p *params.ParamSpec, name string) {
	switch p.Kind {
	case params.KindBool:
		fs.Bool(name, false, p.Help)
	case params.KindInt:
		def, _ := p.Default.(int)
		fs.Int(name, def, p.Help)
	case params.KindFloat:
		def, _ := p.Default.(float64)
		fs.Float64(name, def, p.Help)
	case params.KindString:
		def, _ := p.Default.(string)
		fs.String(name, def, p.Help)
	case params.KindInts:
		def, _ := p.Default.([]int)
		fs.IntSlice(name, def, p.Help)
	case params.KindStrings, params.KindStringPair:
		def, _ := p.Default.([]string)
		fs.StringSlice(name, def, p.Help)
	}
}

func flagValue(fs *pflag.FlagSet, p *params.ParamSpec, name string) (any, error) {
	switch p.Kind {
	case params.KindBool:
		b, err := fs.GetBool(name)
		if err != nil {
			return nil, err
		}
		if p.Inverted {
			return !b, nil
		}
		return b, nil
	case params.KindInt:
		return fs.GetInt(name)
	case params.KindFloat:
		return fs.GetFloat64(name)
	case params.KindString:
		return fs.GetString(name)
	case params.KindInts:
		return fs.GetIntSlice(name)
	case params.KindStrings:
		return fs.GetStringSlice(name)
	case params.KindStringPair:
		pair, err := fs.GetStringSlice(name)
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, errcode.New(errcode.ConfigFlagError,
				"--%s requires exactly two values (source and target)", name)
		}
		return pair, nil
	}
	return nil, errcode.New(errcode.ConfigFlagError,
		"unsupported kind for flag --%s", name)
}
