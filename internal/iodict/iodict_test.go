package iodict_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmtkit/nmtkit/internal/iodict"
	"github.com/nmtkit/nmtkit/pkg/errcode"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDict(t, `{"<eos>": 0, "<unk>": 1, "the": 2}`)

	dict, err := iodict.Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"<eos>": 0, "<unk>": 1, "the": 2}, dict)
}

func TestVocabSize(t *testing.T) {
	t.Run("size is the maximum index plus one", func(t *testing.T) {
		path := writeDict(t, `{"<eos>": 0, "<unk>": 1, "the": 2, "a": 7}`)

		size, err := iodict.VocabSize(path)
		require.NoError(t, err)
		assert.Equal(t, 8, size)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := iodict.VocabSize(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(),
			"failed to determine vocabulary size from file:")

		var e *errcode.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, errcode.DictReadError, e.Code)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeDict(t, `{"<eos>": "zero"}`)

		_, err := iodict.VocabSize(path)
		require.Error(t, err)

		var e *errcode.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, errcode.DictReadError, e.Code)
	})

	t.Run("empty dictionary", func(t *testing.T) {
		path := writeDict(t, `{}`)

		_, err := iodict.VocabSize(path)
		require.Error(t, err)

		var e *errcode.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, errcode.DictEmptyError, e.Code)
	})
}
