package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeProjectConfig(t, root, `{"scopes": [
		{"name": "backend", "dirs": ["src", "api"], "files": ["Makefile"]},
		{"name": "docs", "dirs": ["docs"]}
	]}`)

	t.Run("names flag prints sorted names only", func(t *testing.T) {
		out := resetCLI(t)

		require.NoError(t, execute(t, "list", "--names"))
		assert.Equal(t, []string{"backend", "docs"}, strings.Fields(out.String()))
	})

	t.Run("table shows origin and counts", func(t *testing.T) {
		out := resetCLI(t)

		require.NoError(t, execute(t, "list"))

		rendered := out.String()
		assert.Contains(t, rendered, "backend")
		assert.Contains(t, rendered, "NAME")
		assert.Contains(t, rendered, "Total 2")
	})
}

func TestListCmd_Empty(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	out := resetCLI(t)

	require.NoError(t, execute(t, "list"))
	assert.Contains(t, out.String(), "No scopes registered")
}
