package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/explainmyconfig/internal/config"
)

func TestParseHCL_AttributesAndBlocks(t *testing.T) {
	t.Parallel()

	src := `
app_name = "demo"

pool {
  size = 10
}

server "web" {
  port = 8080
}
`

	entries, err := parseHCL("app.hcl", []byte(src))
	require.NoError(t, err)

	want := []config.Entry{
		{Key: "app_name", Value: "demo"},
		{Key: "pool.size", Value: "10"},
		{Key: "server.web.port", Value: "8080"},
	}
	assert.Equal(t, want, entries)
}

func TestParseHCL_SourceOrderSurvivesAttributeMap(t *testing.T) {
	t.Parallel()

	src := "zeta = 1\nbeta = 2\nalpha = 3\n"

	entries, err := parseHCL("app.hcl", []byte(src))
	require.NoError(t, err)

	keys := make([]string, len(entries))
	for i, entry := range entries {
		keys[i] = entry.Key
	}
	assert.Equal(t, []string{"zeta", "beta", "alpha"}, keys)
}

func TestParseHCL_CollectionValues(t *testing.T) {
	t.Parallel()

	src := "ports = [80, 443]\ndebug = true\nnothing = null\n"

	entries, err := parseHCL("app.hcl", []byte(src))
	require.NoError(t, err)

	want := []config.Entry{
		{Key: "ports.0", Value: "80"},
		{Key: "ports.1", Value: "443"},
		{Key: "debug", Value: "true"},
		{Key: "nothing", Value: ""},
	}
	assert.Equal(t, want, entries)
}

func TestParseHCL_Errors(t *testing.T) {
	t.Parallel()

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := parseHCL("app.hcl", []byte("pool {\n  size = 10\n"))
		var parseErr *config.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "app.hcl", parseErr.Path)
	})

	t.Run("variable reference", func(t *testing.T) {
		t.Parallel()

		// Only literal values are accepted: there is no EvalContext.
		_, err := parseHCL("app.hcl", []byte("size = var.pool_size\n"))
		var parseErr *config.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "size")
	})
}
