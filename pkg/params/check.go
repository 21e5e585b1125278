package params

import (
	"fmt"
	"slices"
	"strings"
)

// ConsistencyError reports every cross-parameter check that failed for one
// invocation, so the user sees all problems in a single pass.
type ConsistencyError struct {
	Messages []string
}

func (e *ConsistencyError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// CheckConsistency performs cross-parameter validation on a configuration
// read from the command line. It returns one message per failed check; an
// empty slice means the configuration is consistent.
func (s *Spec) CheckConsistency(v *Values) []string {
	var msgs []string

	if v.IsSet("datasets") {
		if v.IsSet("source_dataset") || v.IsSet("target_dataset") {
			msgs = append(msgs, "argument clash: --datasets is mutually "+
				"exclusive with --source_dataset and --target_dataset")
		}
	} else if !v.IsSet("source_dataset") {
		msgs = append(msgs, "--source_dataset is required")
	} else if !v.IsSet("target_dataset") {
		msgs = append(msgs, "--target_dataset is required")
	}

	if v.IsSet("valid_datasets") {
		if v.IsSet("valid_source_dataset") || v.IsSet("valid_target_dataset") {
			msgs = append(msgs, "argument clash: --valid_datasets is "+
				"mutually exclusive with --valid_source_dataset and "+
				"--valid_target_dataset")
		}
	}

	factors := v.Int("factors")

	if sizes := v.Ints("source_vocab_sizes"); len(sizes) > factors {
		msgs = append(msgs, fmt.Sprintf("too many values supplied to "+
			"'--source_vocab_sizes' option (expected one per factor = %d)",
			factors))
	}

	dims := v.Ints("dim_per_factor")
	if dims == nil && factors != 1 {
		msgs = append(msgs,
			"if using factored input, you must specify 'dim_per_factor'")
	}
	if dims != nil {
		if len(dims) != factors {
			msgs = append(msgs, fmt.Sprintf("mismatch between '--factors' "+
				"(%d) and '--dim_per_factor' (%d entries)",
				factors, len(dims)))
		} else if sum(dims) != v.Int("embedding_size") {
			msgs = append(msgs, fmt.Sprintf("mismatch between "+
				"'--embedding_size' (%d) and '--dim_per_factor' (sums to %d)",
				v.Int("embedding_size"), sum(dims)))
		}
	}

	if dicts := v.Strings("dictionaries"); dicts != nil &&
		len(dicts) != factors+1 {
		msgs = append(msgs, "'--dictionaries' must specify one dictionary "+
			"per source factor and one target dictionary")
	}

	msgs = append(msgs, s.checkChoices(v)...)

	return msgs
}

// checkChoices validates enumerated string parameters.
func (s *Spec) checkChoices(v *Values) []string {
	var msgs []string
	for _, g := range s.groupNames {
		for _, p := range s.paramsByGrp[g] {
			if len(p.Choices) == 0 {
				continue
			}
			val, ok := v.LookupString(p.Name)
			if !ok {
				continue
			}
			if !slices.Contains(p.Choices, val) {
				msgs = append(msgs, fmt.Sprintf(
					"invalid value '%s' for '--%s' (choose from %s)",
					val, p.Name, strings.Join(p.Choices, ", ")))
			}
		}
	}
	return msgs
}

func sum(ii []int) int {
	var res int
	for _, i := range ii {
		res += i
	}
	return res
}
