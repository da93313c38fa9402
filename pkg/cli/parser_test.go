package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTxt(t *testing.T) {
	words, err := parseTxt(strings.NewReader("  note\tucf\r\n\nno \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"note", "ucf", "no"}, words)

	words, err = parseTxt(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestParseTxtHasNoFixedWordLimit(t *testing.T) {
	long := strings.Repeat("a", 300)
	input := strings.Repeat("ab ", 1000) + long

	words, err := parseTxt(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, words, 1001)
	assert.Equal(t, long, words[1000])
}

func TestParseJson(t *testing.T) {
	words, err := parseJson(strings.NewReader(`["a", "b"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, words)

	_, err = parseJson(strings.NewReader(`["a", 1]`))
	assert.Error(t, err)
}

func TestParseCsv(t *testing.T) {
	words, err := parseCsv(strings.NewReader("note,1\nucf\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"note", "ucf"}, words, "no header, variable field count")

	words, err = parseCsv(strings.NewReader("Word\nno\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"no"}, words)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, "json", detectFormat("a/b.JSON", "auto"))
	assert.Equal(t, "csv", detectFormat("b.csv", ""))
	assert.Equal(t, "txt", detectFormat("dictionary.txt", "auto"))
	assert.Equal(t, "txt", detectFormat("dictionary", "auto"))
	assert.Equal(t, "csv", detectFormat("dictionary.txt", "csv"))
}

func TestDecodeReader(t *testing.T) {
	r, err := decodeReader(strings.NewReader("na\xefve"), "latin1")
	require.NoError(t, err)
	words, err := parseTxt(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"naïve"}, words)

	_, err = decodeReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(&strings.Builder{}, "debug", "json")
	assert.NoError(t, err)
	_, err = NewLogger(&strings.Builder{}, "loud", "text")
	assert.Error(t, err)
	_, err = NewLogger(&strings.Builder{}, "info", "xml")
	assert.Error(t, err)
}
