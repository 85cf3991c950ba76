package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scopes/internal/model"
)

func TestStartupScope(t *testing.T) {
	t.Run("classifies arguments into dirs and files", func(t *testing.T) {
		fs := newFakeFS("/w")
		fs.dirs["src"] = true
		fs.files["main.go"] = []byte("package main")

		wf, _ := newTestWorkflow(fs, newFakeGit(), &fakeLoader{})

		scope, err := wf.StartupScope([]string{"src", "main.go", "no-such-path"})
		require.NoError(t, err)

		assert.Equal(t, StartupScopeName, scope.Name)
		assert.Equal(t, m.OriginStartup, scope.Origin)
		assert.Equal(t, []string{"src"}, scope.Dirs)
		assert.Equal(t, []string{"main.go"}, scope.Files)
	})

	t.Run("skips flags and their consumed values", func(t *testing.T) {
		fs := newFakeFS("/w")
		fs.dirs["src"] = true
		// The value consumed by --cmd names a real directory, but it must
		// not be treated as a path argument.
		fs.dirs["also-a-dir"] = true

		wf, _ := newTestWorkflow(fs, newFakeGit(), &fakeLoader{})

		scope, err := wf.StartupScope([]string{"--cmd", "also-a-dir", "--verbose", "src"})
		require.NoError(t, err)

		assert.Equal(t, []string{"src"}, scope.Dirs)
		assert.Empty(t, scope.Files)
	})

	t.Run("falls back to the working directory", func(t *testing.T) {
		wf, _ := newTestWorkflow(newFakeFS("/w"), newFakeGit(), &fakeLoader{})

		scope, err := wf.StartupScope([]string{"--verbose"})
		require.NoError(t, err)

		assert.Equal(t, []string{"/w"}, scope.Dirs)
		assert.Equal(t, []string{}, scope.Files)
	})
}

func TestAddStartupScope(t *testing.T) {
	t.Run("registers the derived scope with cross-scope dirs applied", func(t *testing.T) {
		fs := newFakeFS("/w")
		fs.dirs["src"] = true

		wf, reg := newTestWorkflow(fs, newFakeGit(), &fakeLoader{})
		require.NoError(t, reg.AddDirsToAllScopes([]string{"~/dots"}))

		scope, err := wf.AddStartupScope([]string{"src"})
		require.NoError(t, err)

		assert.Equal(t, []string{"src", "~/dots"}, scope.Dirs)
		assert.Contains(t, reg.AllScopes(), StartupScopeName)
	})
}
