package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmtkit/nmtkit/pkg/params"
)

func TestNew_Groups(t *testing.T) {
	spec := params.New()

	assert.Equal(t,
		[]string{"", "data", "network", "training", "validation", "display",
			"translate"},
		spec.GroupNames())
	assert.Equal(t, "network parameters", spec.GroupDescription("network"))
	assert.Equal(t, "data sets; model loading and saving",
		spec.GroupDescription("data"))
}

func TestNew_UniqueNamesAndFlags(t *testing.T) {
	spec := params.New()

	names := map[string]bool{}
	flags := map[string]bool{}
	for _, group := range spec.GroupNames() {
		for _, p := range spec.ParamsByGroup(group) {
			assert.False(t, names[p.Name], "duplicate name %q", p.Name)
			names[p.Name] = true
			for _, legacy := range p.LegacyNames {
				assert.False(t, names[legacy], "duplicate name %q", legacy)
				names[legacy] = true
			}
			for _, flag := range p.Flags() {
				assert.False(t, flags[flag], "duplicate flag %q", flag)
				flags[flag] = true
			}
		}
	}
}

func TestLookup(t *testing.T) {
	spec := params.New()

	p, ok := spec.Lookup("embedding_size")
	require.True(t, ok)
	assert.Equal(t, 512, p.Default)
	assert.Equal(t, []string{"dim_word"}, p.LegacyNames)

	_, ok = spec.Lookup("dim_word")
	assert.False(t, ok, "legacy names are not current names")

	p, ok = spec.LookupKey("dim_word")
	require.True(t, ok)
	assert.Equal(t, "embedding_size", p.Name)
}

func TestInternalParamsHaveNoFlags(t *testing.T) {
	spec := params.New()

	for _, p := range spec.ParamsByGroup("") {
		assert.False(t, p.HasFlags(), "%s is an internal parameter", p.Name)
	}
}

func TestRequiredParams(t *testing.T) {
	spec := params.New()

	var required []string
	for _, group := range spec.GroupNames() {
		for _, p := range spec.ParamsByGroup(group) {
			if p.Required {
				required = append(required, p.Name)
			}
		}
	}
	assert.Equal(t, []string{"dictionaries"}, required)
}
