package domain

import (
	"strings"

	"github.com/mouse-blink/scopes/internal/adapter"
	m "github.com/mouse-blink/scopes/internal/model"
)

// StartupScopeName is the name the startup scope is registered under.
const StartupScopeName = "startup"

// flagsWithValue lists invocation flag tokens that consume the following
// argument, which therefore must be skipped when scanning for paths.
var flagsWithValue = map[string]bool{
	"--config": true,
	"--cmd":    true,
	"-c":       true,
	"-u":       true,
	"-i":       true,
	"-s":       true,
	"-w":       true,
}

// StartupScope derives a scope from the process invocation arguments.
// Arguments naming existing directories become Dirs, existing files become
// Files; flag tokens are skipped, together with their value when they take
// one. When no path-like argument is present the scope falls back to the
// working directory.
func (w *Workflow) StartupScope(args []string) (*m.Scope, error) {
	cwd, err := w.fs.Cwd()
	if err != nil {
		return nil, err
	}

	scope := &m.Scope{
		Name:   StartupScopeName,
		Dirs:   []string{},
		Files:  []string{},
		Origin: m.OriginStartup,
	}

	skipNext := false

	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}

		if flagsWithValue[arg] {
			skipNext = true
			continue
		}

		if strings.HasPrefix(arg, "-") {
			continue
		}

		switch w.fs.Classify(arg) {
		case adapter.PathDir:
			scope.Dirs = append(scope.Dirs, arg)
		case adapter.PathFile:
			scope.Files = append(scope.Files, arg)
		case adapter.PathNone:
			// Not a path, ignore.
		}
	}

	if len(scope.Dirs) == 0 && len(scope.Files) == 0 {
		scope.Dirs = append(scope.Dirs, cwd)
	}

	return scope, nil
}

// AddStartupScope derives the startup scope and registers it.
func (w *Workflow) AddStartupScope(args []string) (*m.Scope, error) {
	scope, err := w.StartupScope(args)
	if err != nil {
		return nil, err
	}

	if err := w.reg.Add(scope); err != nil {
		return nil, err
	}

	return scope, nil
}
