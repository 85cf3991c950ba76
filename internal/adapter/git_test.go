package adapter

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGitRunner_Output(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	runner := NewLocalGitRunner()

	t.Run("captures stdout", func(t *testing.T) {
		out, err := runner.Output(t.TempDir(), "version")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "git version"))
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		// TempDir is not a repository, so rev-parse fails.
		_, err := runner.Output(t.TempDir(), "rev-parse", "--show-toplevel")
		require.Error(t, err)
	})
}
