// Package params defines the declarative specification of every nmtkit model
// parameter and the logic that turns raw command-line or file input into a
// complete, internally consistent configuration.
//
// The package has no I/O dependencies. Reading dictionary files during
// vocabulary-size derivation is delegated to a callback supplied through Meta
// by the I/O layer.
//
// # Parameter lifecycle
//
// A Spec is built once per process and is read-only afterwards. A Values
// instance is created per run, populated from command-line flags or from a
// persisted model configuration, normalized (legacy-name migration, defaults,
// derivations) and then treated as immutable.
package params

import "fmt"

// Kind describes the concrete type of a parameter value.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindInts       // list of ints, one or more entries
	KindStrings    // list of strings, one or more entries
	KindStringPair // exactly two strings
)

// Meta carries transient load-context consulted by derivation functions.
// It is never persisted.
type Meta struct {
	// FromCmdline is true when the configuration originates from
	// command-line flags rather than from a persisted file.
	FromCmdline bool

	// FromLegacy is true when a loaded file predates the current
	// versioning scheme (detected by the absence of embedding_size).
	FromLegacy bool

	// VocabSize reads a dictionary file and reports its vocabulary size.
	// Injected by the I/O layer; derivations that back-fill vocabulary
	// sizes fail if it is needed but unset.
	VocabSize func(path string) (int, error)
}

// DeriveFunc computes a parameter's final value from the current
// configuration state and the load context.
type DeriveFunc func(v *Values, meta *Meta) (any, error)

// ParamSpec describes one nmtkit configuration parameter.
//
// Most parameters map directly onto a command-line flag. Parameters can carry
// several flag synonyms; hidden ones are accepted but left out of the help
// output for backward compatibility. LegacyNames lists old parameter names
// recognised when loading older persisted configurations.
//
// Parameters without flags (internal parameters such as model_version) are
// seeded with their default and filled in by their derivation function.
type ParamSpec struct {
	Name        string
	Kind        Kind
	Default     any // nil means unset
	LegacyNames []string

	VisibleFlags []string
	HiddenFlags  []string
	Required     bool

	// Inverted marks boolean flags that clear their parameter when given
	// (e.g. --no_shuffle clears shuffle_each_epoch).
	Inverted bool

	// Choices restricts string parameters to an enumerated set.
	Choices []string

	Metavar string
	Help    string
	Derive  DeriveFunc
}

// HasFlags reports whether the parameter has a command-line surface.
func (p *ParamSpec) HasFlags() bool {
	return len(p.VisibleFlags) > 0 || len(p.HiddenFlags) > 0
}

// Flags returns all flag names, visible first.
func (p *ParamSpec) Flags() []string {
	res := make([]string, 0, len(p.VisibleFlags)+len(p.HiddenFlags))
	res = append(res, p.VisibleFlags...)
	res = append(res, p.HiddenFlags...)
	return res
}

// Spec is the registry of all ParamSpecs, organised into ordered, named
// groups. Groups only matter for presentation (help output) and for the
// order in which derivation functions run.
//
// The nameless "" group holds internal parameters without a command-line
// surface.
type Spec struct {
	groupNames   []string
	groupDescs   map[string]string
	paramsByGrp  map[string][]*ParamSpec
	paramsByName map[string]*ParamSpec
}

// New builds the complete parameter specification. It panics if any
// parameter name, legacy name or flag name is declared twice; such a
// collision is a programming error, not user input.
func New() *Spec {
	s := &Spec{
		groupDescs:   map[string]string{},
		paramsByGrp:  map[string][]*ParamSpec{},
		paramsByName: map[string]*ParamSpec{},
	}

	s.addGroup("", "")
	s.addGroup("data", "data sets; model loading and saving")
	s.addGroup("network", "network parameters")
	s.addGroup("training", "training parameters")
	s.addGroup("validation", "validation parameters")
	s.addGroup("display", "display parameters")
	s.addGroup("translate", "translate parameters")

	defineParams(s)
	s.checkSelf()
	return s
}

// GroupNames returns the group names in declaration order.
func (s *Spec) GroupNames() []string {
	return s.groupNames
}

// GroupDescription returns the description for the given group name.
func (s *Spec) GroupDescription(name string) string {
	return s.groupDescs[name]
}

// ParamsByGroup returns the parameters of a group in declaration order.
func (s *Spec) ParamsByGroup(name string) []*ParamSpec {
	return s.paramsByGrp[name]
}

// Lookup finds a parameter by its current name.
func (s *Spec) Lookup(name string) (*ParamSpec, bool) {
	p, ok := s.paramsByName[name]
	return p, ok
}

// LookupKey finds the parameter owning the given key, which may be either
// the current name or one of its legacy names.
func (s *Spec) LookupKey(key string) (*ParamSpec, bool) {
	if p, ok := s.paramsByName[key]; ok {
		return p, true
	}
	for _, g := range s.groupNames {
		for _, p := range s.paramsByGrp[g] {
			for _, legacy := range p.LegacyNames {
				if legacy == key {
					return p, true
				}
			}
		}
	}
	return nil, false
}

// Derive runs every derivation function in group order, then declaration
// order within each group. Each result is written back before the next
// derivation runs, so later derivations see earlier results.
func (s *Spec) Derive(v *Values, meta *Meta) error {
	for _, g := range s.groupNames {
		for _, p := range s.paramsByGrp[g] {
			if p.Derive == nil {
				continue
			}
			val, err := p.Derive(v, meta)
			if err != nil {
				return err
			}
			v.Set(p.Name, val)
		}
	}
	return nil
}

func (s *Spec) addGroup(name, description string) {
	s.groupNames = append(s.groupNames, name)
	s.groupDescs[name] = description
	s.paramsByGrp[name] = nil
}

func (s *Spec) add(group string, p *ParamSpec) {
	if _, ok := s.paramsByGrp[group]; !ok {
		panic(fmt.Sprintf("params: unknown group %q", group))
	}
	s.paramsByGrp[group] = append(s.paramsByGrp[group], p)
}

// checkSelf verifies that parameter names (current and legacy) and flag
// names are each globally unique.
func (s *Spec) checkSelf() {
	names := map[string]bool{}
	flags := map[string]bool{}
	for _, g := range s.groupNames {
		for _, p := range s.paramsByGrp[g] {
			if names[p.Name] {
				panic(fmt.Sprintf("params: duplicate parameter name %q", p.Name))
			}
			names[p.Name] = true
			s.paramsByName[p.Name] = p
			for _, legacy := range p.LegacyNames {
				if names[legacy] {
					panic(fmt.Sprintf("params: duplicate parameter name %q", legacy))
				}
				names[legacy] = true
			}
			for _, flag := range p.Flags() {
				if flags[flag] {
					panic(fmt.Sprintf("params: duplicate flag name %q", flag))
				}
				flags[flag] = true
			}
		}
	}
}
