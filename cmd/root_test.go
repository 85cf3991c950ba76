package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scopes/internal/domain"
	"github.com/mouse-blink/scopes/internal/registry"
)

// resetCLI gives each test a fresh registry, workflow and flag state, and
// captures the command output.
func resetCLI(t *testing.T) *bytes.Buffer {
	t.Helper()

	reg = registry.New()
	workflow = domain.NewWorkflow(fsAdapter, gitRunner, configLoader, reg)

	configFlag = ""
	listNamesFlag = false

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	return out
}

func execute(t *testing.T, args ...string) error {
	t.Helper()

	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scopes.json"), []byte(content), 0o600))
}

func TestRootCmd_LoadsProjectConfig(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeProjectConfig(t, root, `{"scopes": [{"name": "p1", "dirs": ["/a"]}]}`)

	resetCLI(t)

	require.NoError(t, execute(t, "list", "--names"))
	require.Contains(t, reg.AllScopes(), "p1")
}

func TestRootCmd_ConfigFlagOverridesFilename(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	require.NoError(t, os.WriteFile(filepath.Join(root, "team.json"),
		[]byte(`{"scopes": [{"name": "team", "dirs": ["/t"]}]}`), 0o600))

	resetCLI(t)

	require.NoError(t, execute(t, "--config", "team.json", "list", "--names"))
	require.Contains(t, reg.AllScopes(), "team")
}

func TestRootCmd_MalformedConfigFails(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	writeProjectConfig(t, root, "{broken")

	resetCLI(t)

	require.Error(t, execute(t, "list"))
}
