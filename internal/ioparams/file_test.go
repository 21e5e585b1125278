package ioparams_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/nmtkit/nmtkit/internal/ioparams"
	"github.com/nmtkit/nmtkit/pkg/errcode"
	"github.com/nmtkit/nmtkit/pkg/params"
)

func writeModelConfig(t *testing.T, basename, content string) {
	t.Helper()
	path := basename + ioparams.ConfigExt
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_CurrentFormat(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "model")
	writeModelConfig(t, basename, `{
		"model_version": 0.2,
		"embedding_size": 256,
		"state_size": 1000,
		"source_dataset": "corpus.en",
		"target_dataset": "corpus.de",
		"dictionaries": ["vocab.en.json", "vocab.de.json"],
		"source_vocab_sizes": [30000],
		"target_vocab_size": 20000
	}`)

	v, err := ioparams.Load(basename)
	require.NoError(t, err)

	assert.Equal(t, 0.2, v.Float("model_version"))
	assert.Equal(t, 256, v.Int("embedding_size"))
	assert.Equal(t, []int{30000}, v.Ints("source_vocab_sizes"))
	assert.Equal(t, false, v.Bool("legacy_compat"))

	// Missing parameters are filled with their defaults.
	assert.Equal(t, 80, v.Int("batch_size"))
	assert.Equal(t, 0.0, v.Float("dropout_embedding"))
}

func TestLoad_LegacyNamesMigrate(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "model")
	writeModelConfig(t, basename, `{
		"dim_word": 256,
		"dim": 1000,
		"lrate": 0.001,
		"layer_normalisation": true,
		"tie_encoder_decoder_embeddings": true,
		"source_dataset": "corpus.en",
		"target_dataset": "corpus.de",
		"dictionaries": ["vocab.en.json", "vocab.de.json"],
		"n_words_src": 30000,
		"n_words": 20000
	}`)

	v, err := ioparams.Load(basename)
	require.NoError(t, err)

	assert.Equal(t, 256, v.Int("embedding_size"))
	assert.False(t, v.Has("dim_word"))
	assert.Equal(t, 1000, v.Int("state_size"))
	assert.Equal(t, 0.001, v.Float("learning_rate"))
	assert.Equal(t, true, v.Bool("use_layer_norm"))

	// A file without embedding_size predates the versioning scheme.
	assert.Equal(t, true, v.Bool("legacy_compat"))
	assert.Equal(t, params.LegacyVersion, v.Float("model_version"))

	assert.Equal(t, []int{30000}, v.Ints("source_vocab_sizes"))
	assert.Equal(t, 20000, v.Int("target_vocab_size"))
	assert.Equal(t, v.Int("embedding_size"), v.Int("target_embedding_size"))
}

func TestLoad_LegacyDropoutIsFatal(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "model")
	writeModelConfig(t, basename, `{
		"dim_word": 256,
		"use_dropout": true,
		"source_dataset": "corpus.en",
		"target_dataset": "corpus.de",
		"dictionaries": ["vocab.en.json", "vocab.de.json"],
		"n_words_src": 30000,
		"n_words": 20000
	}`)

	_, err := ioparams.Load(basename)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version 0 dropout")
}

func TestLoad_NameClash(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "model")
	writeModelConfig(t, basename, `{
		"embedding_size": 256,
		"dim_word": 256,
		"source_dataset": "corpus.en",
		"target_dataset": "corpus.de",
		"dictionaries": ["vocab.en.json", "vocab.de.json"],
		"source_vocab_sizes": [30000],
		"target_vocab_size": 20000
	}`)

	_, err := ioparams.Load(basename)
	require.Error(t, err)

	var e *errcode.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errcode.ConfigNameClashError, e.Code)
}

func TestLoad_LegacyBinaryFormat(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "model")
	data, err := msgpack.Marshal(map[string]any{
		"dim_word":       256,
		"dim":            1000,
		"source_dataset": "corpus.en",
		"target_dataset": "corpus.de",
		"dictionaries":   []string{"vocab.en.json", "vocab.de.json"},
		"n_words_src":    30000,
		"n_words":        20000,
	})
	require.NoError(t, err)
	require.NoError(t,
		os.WriteFile(basename+ioparams.LegacyConfigExt, data, 0o644))

	v, err := ioparams.Load(basename)
	require.NoError(t, err)

	assert.Equal(t, 256, v.Int("embedding_size"))
	assert.Equal(t, params.LegacyVersion, v.Float("model_version"))
	assert.Equal(t, []int{30000}, v.Ints("source_vocab_sizes"))
}

func TestLoad_MissingFile(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "model")

	_, err := ioparams.Load(basename)
	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"config file "+basename+".json is missing")

	var e *errcode.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errcode.ConfigFileMissingError, e.Code)
}

// TestSaveLoadRoundTrip resolves a configuration from flags, persists it and
// loads it back; every declared parameter must survive unchanged, with its
// type intact.
func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	srcDict := writeVocab(t, dir, "vocab.en.json", 10)
	tgtDict := writeVocab(t, dir, "vocab.de.json", 20)
	basename := filepath.Join(dir, "model")

	orig, err := runTrainFlags(t,
		"--source_dataset", "corpus.en",
		"--target_dataset", "corpus.de",
		"--dictionaries", srcDict+","+tgtDict,
		"--embedding_size", "256",
		"--maxlen", "50",
		"--learning_rate", "0.0005",
		"--no_shuffle",
	)
	require.NoError(t, err)
	require.NoError(t, ioparams.Save(orig, basename))

	loaded, err := ioparams.Load(basename)
	require.NoError(t, err)

	spec := params.New()
	for _, group := range spec.GroupNames() {
		for _, p := range spec.ParamsByGroup(group) {
			assert.Equal(t, orig.Get(p.Name), loaded.Get(p.Name),
				"parameter %q", p.Name)
		}
	}
}
