package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scopes/internal/model"
)

func TestPathsCmd(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeProjectConfig(t, root, `{"scopes": [
		{"name": "p1", "dirs": ["d1", "d2"], "files": ["f1"]}
	]}`)

	t.Run("prints dirs then files", func(t *testing.T) {
		out := resetCLI(t)

		require.NoError(t, execute(t, "paths", "p1"))
		assert.Equal(t, "d1\nd2\nf1\n", out.String())
	})

	t.Run("fails before any selection", func(t *testing.T) {
		resetCLI(t)

		err := execute(t, "paths")

		var stateErr *m.StateError
		require.ErrorAs(t, err, &stateErr)
	})
}

func TestDirsCmd(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeProjectConfig(t, root, `{"scopes": [
		{"name": "p1", "dirs": ["d1", "d2"], "files": ["f1"]}
	]}`)

	t.Run("prints dirs only", func(t *testing.T) {
		out := resetCLI(t)

		require.NoError(t, execute(t, "dirs", "p1"))
		assert.Equal(t, "d1\nd2\n", out.String())
	})
}
