package params

import (
	"github.com/nmtkit/nmtkit/pkg/errcode"
)

// Model configuration versions. CurrentVersion is stamped on every
// configuration created from the command line. Files with no stored version
// default to LegacyVersion unless other markers upgrade them.
const (
	CurrentVersion = 0.2
	LegacyVersion  = 0.1
)

func deriveModelVersion(v *Values, meta *Meta) (any, error) {
	if meta.FromCmdline {
		// A new model is being created.
		return CurrentVersion, nil
	}
	if ver, ok := v.LookupFloat("model_version"); ok {
		return ver, nil
	}
	if meta.FromLegacy && v.Bool("use_dropout") {
		return nil, errcode.New(errcode.ConfigVersionError,
			"version 0 dropout is not supported by this release")
	}
	return LegacyVersion, nil
}

func deriveSourceDicts(v *Values, meta *Meta) (any, error) {
	dicts := v.Strings("dictionaries")
	if len(dicts) == 0 {
		return nil, errcode.New(errcode.ConfigConsistencyError,
			"no dictionaries in configuration")
	}
	return dicts[:len(dicts)-1], nil
}

func deriveTargetDict(v *Values, meta *Meta) (any, error) {
	dicts := v.Strings("dictionaries")
	if len(dicts) == 0 {
		return nil, errcode.New(errcode.ConfigConsistencyError,
			"no dictionaries in configuration")
	}
	return dicts[len(dicts)-1], nil
}

// deriveTargetEmbeddingSize implements the embedding-size tying rule: when
// encoder and decoder embeddings are tied, only the first factor's embedding
// is shared, so the target side uses that factor's dimensionality.
func deriveTargetEmbeddingSize(v *Values, meta *Meta) (any, error) {
	embeddingSize := v.Int("embedding_size")
	if !v.Bool("tie_encoder_decoder_embeddings") {
		return embeddingSize, nil
	}
	if v.Int("factors") > 1 {
		dims := v.Ints("dim_per_factor")
		if len(dims) == 0 {
			return nil, errcode.New(errcode.ConfigConsistencyError,
				"dim_per_factor is required with factored input")
		}
		return dims[0], nil
	}
	return embeddingSize, nil
}

func deriveSourceDataset(v *Values, meta *Meta) (any, error) {
	if s, ok := v.LookupString("source_dataset"); ok {
		return s, nil
	}
	pair := v.Strings("datasets")
	if len(pair) != 2 {
		return nil, errcode.New(errcode.ConfigConsistencyError,
			"no source dataset in configuration")
	}
	return pair[0], nil
}

func deriveTargetDataset(v *Values, meta *Meta) (any, error) {
	if s, ok := v.LookupString("target_dataset"); ok {
		return s, nil
	}
	pair := v.Strings("datasets")
	if len(pair) != 2 {
		return nil, errcode.New(errcode.ConfigConsistencyError,
			"no target dataset in configuration")
	}
	return pair[1], nil
}

// deriveSourceVocabSizes resolves one vocabulary size per input factor.
// Resolution order: a fully specified list is taken as-is; a partial list is
// accepted from the command line only and back-filled; configurations written
// before factored input carry a single legacy value that is broadcast; any
// size still unknown is read from the corresponding dictionary file.
func deriveSourceVocabSizes(v *Values, meta *Meta) (any, error) {
	factors := v.Int("factors")
	var vocabSizes []int

	switch {
	case v.IsSet("source_vocab_sizes"):
		sizes := v.Ints("source_vocab_sizes")
		if len(sizes) == factors {
			return sizes, nil
		}
		// A partial list is only allowed from the command line; the
		// consistency checker has already rejected over-long lists.
		if !meta.FromCmdline || len(sizes) > factors {
			return nil, errcode.New(errcode.ConfigConsistencyError,
				"source_vocab_sizes must specify one size per factor (%d)",
				factors)
		}
		vocabSizes = append(append([]int{}, sizes...),
			make([]int, factors-len(sizes))...)
		for i := len(sizes); i < factors; i++ {
			vocabSizes[i] = -1
		}

	case v.Has("n_words_src"):
		// Configuration written before factored input: a single source
		// vocabulary size regardless of the number of factors.
		size, ok := v.LookupInt("n_words_src")
		if !ok || meta.FromCmdline || !meta.FromLegacy {
			return nil, errcode.New(errcode.ConfigNameClashError,
				"unexpected n_words_src in configuration")
		}
		sizes := make([]int, factors)
		for i := range sizes {
			sizes[i] = size
		}
		return sizes, nil

	case v.Has("source_vocab_size"):
		// Single-factor configuration from before source_vocab_sizes
		// became a list.
		size, ok := v.LookupInt("source_vocab_size")
		if !ok || meta.FromCmdline || meta.FromLegacy || factors != 1 {
			return nil, errcode.New(errcode.ConfigNameClashError,
				"unexpected source_vocab_size in configuration")
		}
		return []int{size}, nil

	default:
		if !meta.FromCmdline {
			return nil, errcode.New(errcode.ConfigConsistencyError,
				"no source vocabulary sizes in configuration")
		}
		vocabSizes = make([]int, factors)
		for i := range vocabSizes {
			vocabSizes[i] = -1
		}
	}

	// Determine any unspecified sizes from the vocabulary dictionaries.
	dicts := v.Strings("dictionaries")
	for i, size := range vocabSizes {
		if size >= 0 {
			continue
		}
		n, err := vocabSizeFromFile(meta, dicts[i])
		if err != nil {
			return nil, err
		}
		vocabSizes[i] = n
	}
	return vocabSizes, nil
}

func deriveTargetVocabSize(v *Values, meta *Meta) (any, error) {
	if size := v.Int("target_vocab_size"); size != -1 {
		return size, nil
	}
	dicts := v.Strings("dictionaries")
	if len(dicts) == 0 {
		return nil, errcode.New(errcode.ConfigConsistencyError,
			"no dictionaries in configuration")
	}
	return vocabSizeFromFile(meta, dicts[len(dicts)-1])
}

func deriveDimPerFactor(v *Values, meta *Meta) (any, error) {
	if v.IsSet("dim_per_factor") {
		return v.Ints("dim_per_factor"), nil
	}
	if v.Int("factors") != 1 {
		return nil, errcode.New(errcode.ConfigConsistencyError,
			"dim_per_factor is required with factored input")
	}
	return []int{v.Int("embedding_size")}, nil
}

// Dropout defaults differ by origin: new command-line configurations get a
// nonzero default, file-loaded ones keep the old behaviour of no dropout.
func deriveDropoutEmbedding(v *Values, meta *Meta) (any, error) {
	if f, ok := v.LookupFloat("dropout_embedding"); ok {
		return f, nil
	}
	if meta.FromCmdline {
		return 0.2, nil
	}
	return 0.0, nil
}

func deriveDropoutHidden(v *Values, meta *Meta) (any, error) {
	if f, ok := v.LookupFloat("dropout_hidden"); ok {
		return f, nil
	}
	if meta.FromCmdline {
		return 0.2, nil
	}
	return 0.0, nil
}

func deriveValidSourceDataset(v *Values, meta *Meta) (any, error) {
	if s, ok := v.LookupString("valid_source_dataset"); ok {
		return s, nil
	}
	if pair := v.Strings("valid_datasets"); len(pair) == 2 {
		return pair[0], nil
	}
	return nil, nil
}

func deriveValidTargetDataset(v *Values, meta *Meta) (any, error) {
	if s, ok := v.LookupString("valid_target_dataset"); ok {
		return s, nil
	}
	if pair := v.Strings("valid_datasets"); len(pair) == 2 {
		return pair[1], nil
	}
	return nil, nil
}

func vocabSizeFromFile(meta *Meta, path string) (int, error) {
	if meta.VocabSize == nil {
		return 0, errcode.New(errcode.DictReadError,
			"no vocabulary size reader configured")
	}
	return meta.VocabSize(path)
}
