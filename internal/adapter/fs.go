// Package adapter contains UI and infrastructure adapters for the scopes CLI.
package adapter

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// PathKind classifies what a path names on disk.
type PathKind int

// Available PathKind values.
const (
	PathNone PathKind = iota
	PathDir
	PathFile
)

// WorkspaceFS abstracts the filesystem queries the derivation and startup
// logic rely on. It intentionally hides direct `os` access so that logic can
// be tested without touching the disk.
type WorkspaceFS interface {
	// Cwd returns the working directory all relative paths resolve against.
	Cwd() (string, error)

	// Classify reports whether path names an existing directory, an
	// existing file, or neither.
	Classify(path string) PathKind

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path string) ([]byte, error)

	// Glob expands pattern relative to baseDir and returns the matching
	// paths, also relative to baseDir.
	Glob(baseDir, pattern string) ([]string, error)
}

// LocalWorkspaceFS is the concrete implementation backed by the local
// filesystem.
type LocalWorkspaceFS struct{}

// NewLocalWorkspaceFS creates a WorkspaceFS over the local filesystem.
func NewLocalWorkspaceFS() *LocalWorkspaceFS {
	return &LocalWorkspaceFS{}
}

// Cwd returns the process working directory.
func (a *LocalWorkspaceFS) Cwd() (string, error) {
	return os.Getwd()
}

// Classify stats the path and reports its kind. Stat errors (including
// non-existence) report PathNone.
func (a *LocalWorkspaceFS) Classify(path string) PathKind {
	info, err := os.Stat(path)
	if err != nil {
		return PathNone
	}

	if info.IsDir() {
		return PathDir
	}

	return PathFile
}

// ReadFile loads the file at path.
func (a *LocalWorkspaceFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Glob expands pattern under baseDir using doublestar, so `**` patterns
// common in package-manifest workspace declarations are supported.
func (a *LocalWorkspaceFS) Glob(baseDir, pattern string) ([]string, error) {
	return doublestar.Glob(os.DirFS(baseDir), pattern)
}
