package adapter

import (
	"fmt"
	"os/exec"
	"strings"
)

// GitRunner abstracts invocation of the git binary so diff derivation can be
// tested without a repository. Output blocks until the command completes.
type GitRunner interface {
	// Output runs git with args in dir and returns captured stdout. A
	// missing binary or non-zero exit reports an error.
	Output(dir string, args ...string) (string, error)
}

// LocalGitRunner runs the real git binary.
type LocalGitRunner struct{}

// NewLocalGitRunner creates a GitRunner backed by the git binary on PATH.
func NewLocalGitRunner() *LocalGitRunner {
	return &LocalGitRunner{}
}

// Output runs git with the given arguments and working directory.
func (g *LocalGitRunner) Output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return string(out), nil
}
