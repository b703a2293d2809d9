package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/explainmyconfig/internal/config"
)

func TestBlock_Format(t *testing.T) {
	t.Parallel()

	got := Block("PORT", "8080", "The network port the application listens on.")
	assert.Equal(t, "PORT = 8080\n-> The network port the application listens on.\n", got)
}

func TestBlock_TruncatesLongValues(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 200)

	got := Block("KEY", long, "explanation")
	firstLine := strings.SplitN(got, "\n", 2)[0]
	assert.Equal(t, "KEY = "+strings.Repeat("x", 77)+"...", firstLine)
}

func TestDocument_BlocksSeparatedByBlankLine(t *testing.T) {
	t.Parallel()

	doc := &config.Document{
		Path:   "app.env",
		Format: config.FormatEnv,
		Entries: []config.Entry{
			{Key: "PORT", Value: "8080"},
			{Key: "DEBUG", Value: "false"},
		},
	}
	var buf bytes.Buffer

	require.NoError(t, Document(&buf, doc))

	want := "PORT = 8080\n" +
		"-> The network port the application listens on.\n" +
		"\n" +
		"DEBUG = false\n" +
		"-> Enables or disables debug mode for development.\n"
	assert.Equal(t, want, buf.String())
}

func TestDocument_EveryEntryGetsABlock(t *testing.T) {
	t.Parallel()

	doc := &config.Document{
		Entries: []config.Entry{
			{Key: "A", Value: "1"},
			{Key: "B", Value: "2"},
			{Key: "C", Value: "3"},
		},
	}
	var buf bytes.Buffer

	require.NoError(t, Document(&buf, doc))
	assert.Equal(t, 3, strings.Count(buf.String(), "-> "))
}

func TestDocument_EmptyDocument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Document(&buf, &config.Document{Path: "empty.yaml"}))
	assert.Equal(t, "No configuration entries found in the file.\n", buf.String())
}
