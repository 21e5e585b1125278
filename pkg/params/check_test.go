package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmtkit/nmtkit/pkg/params"
)

// seededValues returns a configuration seeded with every declared default,
// with the given overrides applied on top.
func seededValues(spec *params.Spec, overrides map[string]any) *params.Values {
	v := params.NewValues()
	for _, group := range spec.GroupNames() {
		for _, p := range spec.ParamsByGroup(group) {
			v.Set(p.Name, p.Default)
		}
	}
	for key, val := range overrides {
		v.Set(key, val)
	}
	return v
}

func TestCheckConsistency(t *testing.T) {
	spec := params.New()

	valid := map[string]any{
		"source_dataset": "corpus.en",
		"target_dataset": "corpus.de",
		"dictionaries":   []string{"vocab.en.json", "vocab.de.json"},
	}

	tests := []struct {
		name      string
		overrides map[string]any
		want      []string
	}{
		{
			name:      "valid single-factor config",
			overrides: valid,
			want:      nil,
		},
		{
			name: "datasets clashes with source_dataset",
			overrides: map[string]any{
				"datasets":       []string{"corpus.en", "corpus.de"},
				"source_dataset": "corpus.en",
				"dictionaries":   []string{"vocab.en.json", "vocab.de.json"},
			},
			want: []string{"argument clash: --datasets is mutually " +
				"exclusive with --source_dataset and --target_dataset"},
		},
		{
			name: "source_dataset missing",
			overrides: map[string]any{
				"target_dataset": "corpus.de",
				"dictionaries":   []string{"vocab.en.json", "vocab.de.json"},
			},
			want: []string{"--source_dataset is required"},
		},
		{
			name: "target_dataset missing",
			overrides: map[string]any{
				"source_dataset": "corpus.en",
				"dictionaries":   []string{"vocab.en.json", "vocab.de.json"},
			},
			want: []string{"--target_dataset is required"},
		},
		{
			name: "valid_datasets clash",
			overrides: merge(valid, map[string]any{
				"valid_datasets":       []string{"dev.en", "dev.de"},
				"valid_source_dataset": "dev.en",
			}),
			want: []string{"argument clash: --valid_datasets is mutually " +
				"exclusive with --valid_source_dataset and " +
				"--valid_target_dataset"},
		},
		{
			name: "too many source vocab sizes",
			overrides: merge(valid, map[string]any{
				"source_vocab_sizes": []int{100, 200},
			}),
			want: []string{"too many values supplied to " +
				"'--source_vocab_sizes' option (expected one per factor = 1)"},
		},
		{
			name: "factored input requires dim_per_factor",
			overrides: merge(valid, map[string]any{
				"factors":      2,
				"dictionaries": []string{"a.json", "b.json", "c.json"},
			}),
			want: []string{
				"if using factored input, you must specify 'dim_per_factor'",
			},
		},
		{
			name: "dim_per_factor count mismatch",
			overrides: merge(valid, map[string]any{
				"factors":        2,
				"dim_per_factor": []int{512},
				"dictionaries":   []string{"a.json", "b.json", "c.json"},
			}),
			want: []string{
				"mismatch between '--factors' (2) and '--dim_per_factor' " +
					"(1 entries)",
			},
		},
		{
			name: "dim_per_factor sum mismatch",
			overrides: merge(valid, map[string]any{
				"factors":        2,
				"dim_per_factor": []int{300, 200},
				"dictionaries":   []string{"a.json", "b.json", "c.json"},
			}),
			want: []string{
				"mismatch between '--embedding_size' (512) and " +
					"'--dim_per_factor' (sums to 500)",
			},
		},
		{
			name: "dictionary count mismatch",
			overrides: merge(valid, map[string]any{
				"dictionaries": []string{"vocab.en.json"},
			}),
			want: []string{"'--dictionaries' must specify one dictionary " +
				"per source factor and one target dictionary"},
		},
		{
			name: "invalid choice",
			overrides: merge(valid, map[string]any{
				"output_hidden_activation": "sigmoid",
			}),
			want: []string{"invalid value 'sigmoid' for " +
				"'--output_hidden_activation' (choose from tanh, relu, " +
				"prelu, linear)"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := seededValues(spec, tc.overrides)
			assert.Equal(t, tc.want, spec.CheckConsistency(v))
		})
	}
}

// TestCheckConsistency_AccumulatesMessages verifies that all failed checks
// are reported together rather than stopping at the first one.
func TestCheckConsistency_AccumulatesMessages(t *testing.T) {
	spec := params.New()
	v := seededValues(spec, map[string]any{
		"factors":      2,
		"dictionaries": []string{"vocab.en.json", "vocab.de.json"},
	})

	msgs := spec.CheckConsistency(v)
	assert.Len(t, msgs, 3)
	assert.Contains(t, msgs, "--source_dataset is required")
	assert.Contains(t, msgs,
		"if using factored input, you must specify 'dim_per_factor'")
	assert.Contains(t, msgs, "'--dictionaries' must specify one dictionary "+
		"per source factor and one target dictionary")
}

func merge(base, overrides map[string]any) map[string]any {
	res := map[string]any{}
	for k, v := range base {
		res[k] = v
	}
	for k, v := range overrides {
		res[k] = v
	}
	return res
}
