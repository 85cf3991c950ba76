package domain

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/scopes/internal/adapter"
	m "github.com/mouse-blink/scopes/internal/model"
)

// fakeFS is an in-memory WorkspaceFS for derivation tests.
type fakeFS struct {
	cwd     string
	files   map[string][]byte   // path -> content
	dirs    map[string]bool     // path -> exists
	globs   map[string][]string // pattern -> matches
	cwdErr  error
	readErr error
}

func newFakeFS(cwd string) *fakeFS {
	return &fakeFS{
		cwd:   cwd,
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
		globs: make(map[string][]string),
	}
}

func (f *fakeFS) Cwd() (string, error) {
	if f.cwdErr != nil {
		return "", f.cwdErr
	}

	return f.cwd, nil
}

func (f *fakeFS) Classify(path string) adapter.PathKind {
	if f.dirs[path] {
		return adapter.PathDir
	}

	if _, ok := f.files[path]; ok {
		return adapter.PathFile
	}

	return adapter.PathNone
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}

	content, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}

	return content, nil
}

func (f *fakeFS) Glob(_, pattern string) ([]string, error) {
	matches, ok := f.globs[pattern]
	if !ok {
		return nil, nil
	}

	return matches, nil
}

// fakeGit maps a joined argument list to canned stdout or a failure.
type fakeGit struct {
	outputs map[string]string
	failing map[string]bool
	calls   []string
}

func newFakeGit() *fakeGit {
	return &fakeGit{
		outputs: make(map[string]string),
		failing: make(map[string]bool),
	}
}

func (g *fakeGit) Output(_ string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	g.calls = append(g.calls, key)

	if g.failing[key] {
		return "", fmt.Errorf("git %s: exit status 128", key)
	}

	return g.outputs[key], nil
}

// fakePicker picks the item at pickIndex, or cancels.
type fakePicker struct {
	pickIndex int
	cancel    bool
	items     []adapter.PickItem
}

func (p *fakePicker) Pick(_ string, items []adapter.PickItem) (adapter.PickItem, bool, error) {
	p.items = items

	if p.cancel || p.pickIndex >= len(items) {
		return adapter.PickItem{}, false, nil
	}

	return items[p.pickIndex], true, nil
}

// fakeLoader returns a canned project file config.
type fakeLoader struct {
	cfg     *m.FileConfig
	present bool
	err     error
}

func (l *fakeLoader) Load(_, _ string) (*m.FileConfig, bool, error) {
	return l.cfg, l.present, l.err
}
