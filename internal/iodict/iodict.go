// Package iodict reads vocabulary dictionary files.
//
// A dictionary file is a JSON document mapping tokens to integer indices,
// produced by the external vocabulary-building tooling. nmtkit only consumes
// the index range to infer vocabulary sizes.
package iodict

import (
	"encoding/json"
	"os"

	"github.com/nmtkit/nmtkit/pkg/errcode"
)

// Load reads a dictionary file into a token-to-index mapping.
func Load(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errcode.Wrap(errcode.DictReadError, err,
			"cannot read dictionary file %s", path)
	}
	var dict map[string]int
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, errcode.Wrap(errcode.DictReadError, err,
			"cannot parse dictionary file %s", path)
	}
	return dict, nil
}

// VocabSize infers the vocabulary size of a dictionary file as one more than
// its maximum token index.
func VocabSize(path string) (int, error) {
	dict, err := Load(path)
	if err != nil {
		return 0, errcode.Wrap(errcode.DictReadError, err,
			"failed to determine vocabulary size from file: %s", path)
	}
	if len(dict) == 0 {
		return 0, errcode.New(errcode.DictEmptyError,
			"failed to determine vocabulary size from file: %s: "+
				"dictionary is empty", path)
	}
	maxIndex := 0
	for _, index := range dict {
		if index > maxIndex {
			maxIndex = index
		}
	}
	return maxIndex + 1, nil
}
