package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/explainmyconfig/internal/config"
)

func TestParseJSON_FlattensNestedObjects(t *testing.T) {
	t.Parallel()

	src := `{"database": {"host": "localhost"}}`

	entries, err := parseJSON("app.json", []byte(src))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "database.host", entries[0].Key)
	assert.Equal(t, "localhost", entries[0].Value)
}

func TestParseJSON_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	// Deliberately not alphabetical; a map-based decode would scramble this.
	src := `{"zeta": 1, "beta": {"y": 2, "x": 3}, "alpha": 4}`

	entries, err := parseJSON("app.json", []byte(src))
	require.NoError(t, err)

	keys := make([]string, len(entries))
	for i, entry := range entries {
		keys[i] = entry.Key
	}
	assert.Equal(t, []string{"zeta", "beta.y", "beta.x", "alpha"}, keys)
}

func TestParseJSON_DepthMatchesDotCount(t *testing.T) {
	t.Parallel()

	src := `{"a": {"b": {"c": {"d": "leaf"}}}}`

	entries, err := parseJSON("app.json", []byte(src))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.b.c.d", entries[0].Key)
	assert.Equal(t, 3, strings.Count(entries[0].Key, "."))
	assert.Equal(t, "leaf", entries[0].Value)
}

func TestParseJSON_ArraysUseIndexSegments(t *testing.T) {
	t.Parallel()

	src := `{"servers": ["alpha", "beta"], "weights": [1.5, 2]}`

	entries, err := parseJSON("app.json", []byte(src))
	require.NoError(t, err)

	want := []config.Entry{
		{Key: "servers.0", Value: "alpha"},
		{Key: "servers.1", Value: "beta"},
		{Key: "weights.0", Value: "1.5"},
		{Key: "weights.1", Value: "2"},
	}
	assert.Equal(t, want, entries)
}

func TestParseJSON_ScalarRendering(t *testing.T) {
	t.Parallel()

	src := `{"flag": true, "off": false, "nothing": null, "big": 10}`

	entries, err := parseJSON("app.json", []byte(src))
	require.NoError(t, err)

	want := []config.Entry{
		{Key: "flag", Value: "true"},
		{Key: "off", Value: "false"},
		{Key: "nothing", Value: ""},
		{Key: "big", Value: "10"},
	}
	assert.Equal(t, want, entries)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"invalid syntax", `{"unterminated": `},
		{"root array", `[1, 2, 3]`},
		{"root scalar", `42`},
		{"trailing garbage", `{"a": 1} {"b": 2}`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseJSON("app.json", []byte(tc.src))
			require.Error(t, err)

			var parseErr *config.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "app.json", parseErr.Path)
		})
	}
}
