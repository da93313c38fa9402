package lexicon

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	l := New()
	assert.Equal(t, Abort, l.Policy())
	assert.NotNil(t, l.Trie())
	assert.Equal(t, 0, l.Trie().Len())
}

func TestLoadAndQuery(t *testing.T) {
	l := New()
	result, err := l.Load([]string{"note", "ucf", "no"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Inserted)
	assert.Equal(t, 0, result.Skipped)

	results := l.Query("notaword", "ucf", "no", "note", "corg")
	assert.Equal(t, []QueryResult{
		{"notaword", 0},
		{"ucf", 1},
		{"no", 1},
		{"note", 1},
		{"corg", 0},
	}, results)
	assert.Equal(t, "\tucf : 1", results[1].String())
}

func TestLoadAbortPolicy(t *testing.T) {
	l := New(WithPolicy(Abort))
	result, err := l.Load([]string{"alpha", "Beta", "gamma"})

	require.Error(t, err)
	assert.ErrorIs(t, err, trie.ErrInvalidCharacter)
	assert.Contains(t, err.Error(), "word #1")
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, l.Occurrences("alpha"))
	assert.Equal(t, 0, l.Occurrences("gamma"), "load stops at the rejected word")
}

func TestLoadSkipPolicy(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	l := New(WithPolicy(Skip), WithLogger(logger))
	result, err := l.Load([]string{"alpha", "Beta", "gamma", "", "alpha"})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Inserted)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Rejected, 2)
	assert.Equal(t, 1, result.Rejected[0].Index)
	assert.Equal(t, "Beta", result.Rejected[0].Word)
	assert.ErrorIs(t, result.Rejected[0].Err, trie.ErrInvalidCharacter)
	assert.ErrorIs(t, result.Rejected[1].Err, trie.ErrEmptyWord)

	assert.Equal(t, 2, l.Occurrences("alpha"))
	assert.Equal(t, 1, l.Occurrences("gamma"))
	assert.Contains(t, logs.String(), "skipping dictionary word")
	assert.Contains(t, result.String(), "Skipped: 2")
	assert.Contains(t, result.String(), `#1 "Beta"`)
}

func TestWithNilLoggerKeepsDefault(t *testing.T) {
	l := New(WithLogger(nil))
	assert.NotNil(t, l.logger)
}

func TestClose(t *testing.T) {
	l := New()
	_, err := l.Load([]string{"note"})
	require.NoError(t, err)

	l.Close()
	assert.True(t, l.Trie().IsDestroyed())
	assert.NotPanics(t, l.Close)
	assert.Equal(t, 0, l.Occurrences("note"))

	_, err = l.Load([]string{"note"})
	assert.ErrorIs(t, err, trie.ErrDestroyed)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "abort", Abort.String())
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "unknown", Policy(9).String())
}
