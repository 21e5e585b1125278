package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// White-box tests for the registry's self check: declaring a duplicate
// parameter name, legacy name or flag name is a programming error and must
// fail loudly at construction time.

func newEmptySpec() *Spec {
	s := &Spec{
		groupDescs:   map[string]string{},
		paramsByGrp:  map[string][]*ParamSpec{},
		paramsByName: map[string]*ParamSpec{},
	}
	s.addGroup("", "")
	s.addGroup("network", "network parameters")
	return s
}

func TestCheckSelf_DuplicateName(t *testing.T) {
	s := newEmptySpec()
	s.add("", &ParamSpec{Name: "embedding_size", Kind: KindInt, Default: 512})
	s.add("network", &ParamSpec{Name: "embedding_size", Kind: KindInt, Default: 512})

	require.Panics(t, func() { s.checkSelf() })
}

func TestCheckSelf_LegacyNameCollision(t *testing.T) {
	s := newEmptySpec()
	s.add("", &ParamSpec{Name: "dim_word", Kind: KindInt, Default: 512})
	s.add("network", &ParamSpec{
		Name: "embedding_size", Kind: KindInt, Default: 512,
		LegacyNames: []string{"dim_word"},
	})

	require.Panics(t, func() { s.checkSelf() })
}

func TestCheckSelf_DuplicateFlag(t *testing.T) {
	s := newEmptySpec()
	s.add("network", &ParamSpec{
		Name: "state_size", Kind: KindInt, Default: 1000,
		VisibleFlags: []string{"dim"},
	})
	s.add("network", &ParamSpec{
		Name: "embedding_size", Kind: KindInt, Default: 512,
		HiddenFlags: []string{"dim"},
	})

	require.Panics(t, func() { s.checkSelf() })
}

func TestCheckSelf_Valid(t *testing.T) {
	s := newEmptySpec()
	s.add("network", &ParamSpec{
		Name: "embedding_size", Kind: KindInt, Default: 512,
		LegacyNames:  []string{"dim_word"},
		VisibleFlags: []string{"embedding_size", "dim_word"},
	})

	require.NotPanics(t, func() { s.checkSelf() })
}
