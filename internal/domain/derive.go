// Package domain wires configuration ingestion, scope derivation and the
// registry together.
package domain

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/scopes/internal/adapter"
	m "github.com/mouse-blink/scopes/internal/model"
	"github.com/mouse-blink/scopes/internal/registry"
)

const manifestName = "package.json"

// Deriver synthesizes candidate scope records from external state: npm
// workspace manifests and git diffs. Derived scopes are not registered;
// callers pass them to the registry.
type Deriver struct {
	fs  adapter.WorkspaceFS
	git adapter.GitRunner
	reg *registry.Registry

	// RefreshAncestorWithAncestorDiff makes the on-select refresh of an
	// ancestor-diff scope re-run the three-dot derivation under its own
	// name. Off by default: refresh goes through the plain two-dot branch
	// diff and registers under the "git:" name.
	RefreshAncestorWithAncestorDiff bool
}

// NewDeriver constructs a Deriver. The registry is needed so on-select
// refresh hooks can re-register their scope.
func NewDeriver(fs adapter.WorkspaceFS, git adapter.GitRunner, reg *registry.Registry) *Deriver {
	return &Deriver{
		fs:  fs,
		git: git,
		reg: reg,
	}
}

// npmManifest covers the two shapes of the workspaces declaration: a plain
// glob array, or an object with a "packages" array.
type npmManifest struct {
	Workspaces json.RawMessage `json:"workspaces"`
}

// NpmScopes derives one scope per workspace package declared by the
// package.json in the working directory. An absent manifest or absent
// workspace declaration yields an empty result; a manifest that exists but
// is not valid JSON is an error.
func (d *Deriver) NpmScopes() ([]*m.Scope, error) {
	cwd, err := d.fs.Cwd()
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(cwd, manifestName)
	if d.fs.Classify(manifestPath) != adapter.PathFile {
		return nil, nil
	}

	raw, err := d.fs.ReadFile(manifestPath)
	if err != nil {
		return nil, nil //nolint:nilerr // An unreadable manifest is "no data"
	}

	var manifest npmManifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parse %s: %w", manifestName, err)
	}

	var scopes []*m.Scope

	for _, pattern := range workspacePatterns(manifest.Workspaces) {
		matches, err := d.fs.Glob(cwd, pattern)
		if err != nil {
			continue
		}

		for _, match := range matches {
			if d.fs.Classify(filepath.Join(cwd, match)) != adapter.PathDir {
				continue
			}

			scopes = append(scopes, &m.Scope{
				Name:   m.OriginNPM + ":" + match,
				Dirs:   []string{match},
				Files:  []string{},
				Origin: m.OriginNPM,
			})
		}
	}

	return scopes, nil
}

// workspacePatterns extracts glob patterns from a raw workspaces value,
// accepting both the array and the {"packages": []} form.
func workspacePatterns(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var patterns []string
	if err := json.Unmarshal(raw, &patterns); err == nil {
		return patterns
	}

	var wrapped struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped.Packages
	}

	return nil
}

// BranchScopes derives one scope per branch from `git diff --name-only`
// against that branch, restricted to the working directory. A branch whose
// diff command fails is silently omitted; a branch with no differing files
// still yields a scope with empty Files.
func (d *Deriver) BranchScopes(branches []string) []*m.Scope {
	cwd, err := d.fs.Cwd()
	if err != nil {
		return nil
	}

	var scopes []*m.Scope

	for _, branch := range branches {
		scope, ok := d.branchScope(cwd, branch)
		if !ok {
			continue
		}

		scopes = append(scopes, scope)
	}

	return scopes
}

func (d *Deriver) branchScope(cwd, branch string) (*m.Scope, bool) {
	out, err := d.git.Output(cwd, "diff", "--name-only", branch, "--", ".")
	if err != nil {
		return nil, false
	}

	return &m.Scope{
		Name:     m.OriginGit + ":" + branch,
		Dirs:     []string{},
		Files:    splitLines(out),
		Origin:   m.OriginGit,
		OnSelect: d.refreshBranch(branch),
	}, true
}

// refreshBranch re-derives the branch scope and re-registers it, so the
// file list reflects the diff at selection time rather than definition time.
func (d *Deriver) refreshBranch(branch string) m.SelectHook {
	return func() error {
		cwd, err := d.fs.Cwd()
		if err != nil {
			return err
		}

		scope, ok := d.branchScope(cwd, branch)
		if !ok {
			return nil
		}

		return d.reg.Add(scope)
	}
}

// AncestorScopes derives one scope per branch from a three-dot diff (the
// diff against the merge-base), with each reported path made absolute by
// prefixing the repository's top-level directory.
func (d *Deriver) AncestorScopes(branches []string) []*m.Scope {
	cwd, err := d.fs.Cwd()
	if err != nil {
		return nil
	}

	var scopes []*m.Scope

	for _, branch := range branches {
		scope, ok := d.ancestorScope(cwd, branch)
		if !ok {
			continue
		}

		scopes = append(scopes, scope)
	}

	return scopes
}

func (d *Deriver) ancestorScope(cwd, branch string) (*m.Scope, bool) {
	out, err := d.git.Output(cwd, "diff", "--name-only", branch+"...", "--", ".")
	if err != nil {
		return nil, false
	}

	top, err := d.git.Output(cwd, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, false
	}

	top = strings.TrimSpace(top)

	relative := splitLines(out)

	files := make([]string, 0, len(relative))
	for _, rel := range relative {
		files = append(files, filepath.Join(top, rel))
	}

	scope := &m.Scope{
		Name:   m.OriginGitAncestor + ":" + branch,
		Dirs:   []string{},
		Files:  files,
		Origin: m.OriginGitAncestor,
	}

	// By default the refresh goes through the plain branch diff, which
	// registers a separate "git:" scope instead of updating this one.
	// RefreshAncestorWithAncestorDiff opts into the three-dot refresh.
	if d.RefreshAncestorWithAncestorDiff {
		scope.OnSelect = d.refreshAncestor(branch)
	} else {
		scope.OnSelect = d.refreshBranch(branch)
	}

	return scope, true
}

// refreshAncestor re-derives the ancestor scope under its own name.
func (d *Deriver) refreshAncestor(branch string) m.SelectHook {
	return func() error {
		cwd, err := d.fs.Cwd()
		if err != nil {
			return err
		}

		scope, ok := d.ancestorScope(cwd, branch)
		if !ok {
			return nil
		}

		return d.reg.Add(scope)
	}
}

// splitLines turns newline-separated command output into a path list,
// dropping empty lines.
func splitLines(out string) []string {
	lines := []string{}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}
