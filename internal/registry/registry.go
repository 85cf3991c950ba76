// Package registry implements the named-scope table and its selection state
// machine. A Registry is an explicit context object: callers own an instance
// and pass it to every operation, so independent registries can coexist and
// be tested in isolation.
package registry

import (
	"github.com/mouse-blink/scopes/internal/model"
)

// Registry maps scope names to scope records and tracks the single current
// scope. It is not safe for concurrent use; all operations are expected to
// run on one logical thread of control.
type Registry struct {
	scopes  map[string]*model.Scope
	current *model.Scope

	// globalDirs accumulates cross-scope directories. Append-only; it
	// survives Clear so later-added scopes still receive every dir.
	globalDirs []string

	onScopeSelected model.SelectedHook
}

// New creates an empty registry with a no-op selection hook.
func New() *Registry {
	return &Registry{
		scopes:          make(map[string]*model.Scope),
		onScopeSelected: func(*model.Scope) error { return nil },
	}
}

// Add validates and registers a scope, replacing any existing scope with the
// same name. The accumulated cross-scope directories are appended to the
// scope's Dirs, so the caller's record is mutated in place.
func (r *Registry) Add(scope *model.Scope) error {
	if scope == nil {
		return &model.ValidationError{Reason: "scope is nil"}
	}

	if scope.Name == "" {
		return &model.ValidationError{Reason: "scope name is required"}
	}

	if scope.Dirs == nil {
		return &model.ValidationError{Reason: "scope " + scope.Name + " has no dirs list"}
	}

	if scope.Files == nil {
		scope.Files = []string{}
	}

	scope.Dirs = append(scope.Dirs, r.globalDirs...)
	r.scopes[scope.Name] = scope

	return nil
}

// AddAll registers scopes in order. The first failure aborts the remaining
// scopes; already-registered scopes are not rolled back.
func (r *Registry) AddAll(scopes []*model.Scope) error {
	for _, scope := range scopes {
		if err := r.Add(scope); err != nil {
			return err
		}
	}

	return nil
}

// AddDirsToAllScopes appends each dir, in order, to the cross-scope list and
// to every currently registered scope. Scopes registered afterwards receive
// the accumulated dirs through Add.
func (r *Registry) AddDirsToAllScopes(dirs []string) error {
	if dirs == nil {
		return &model.ValidationError{Reason: "dirs list is required"}
	}

	for _, dir := range dirs {
		r.globalDirs = append(r.globalDirs, dir)

		for _, scope := range r.scopes {
			scope.Dirs = append(scope.Dirs, dir)
		}
	}

	return nil
}

// Clear drops every scope and unsets the current scope. The cross-scope
// directory list is left intact.
func (r *Registry) Clear() {
	r.scopes = make(map[string]*model.Scope)
	r.current = nil
}

// AllScopes returns the scope table keyed by name.
func (r *Registry) AllScopes() map[string]*model.Scope {
	return r.scopes
}

// SetOnScopeSelected replaces the registry-wide selection hook. A nil hook
// is ignored.
func (r *Registry) SetOnScopeSelected(hook model.SelectedHook) {
	if hook != nil {
		r.onScopeSelected = hook
	}
}

// SetCurrent makes the named scope current and runs the selection hooks:
// first the scope's own OnSelect, then the registry-wide hook. Both run on
// every successful selection, even when the scope was already current. A
// hook error propagates to the caller, but the transition itself is not
// rolled back.
//
// OnSelect may call back into Add to re-register a refreshed record for the
// same name; the current pointer is re-read from the table afterwards so the
// refreshed record is what selection-time queries observe.
func (r *Registry) SetCurrent(name string) error {
	scope, ok := r.scopes[name]
	if !ok {
		return &model.NotFoundError{Name: name}
	}

	r.current = scope

	if scope.OnSelect != nil {
		err := scope.OnSelect()

		if refreshed, still := r.scopes[name]; still {
			r.current = refreshed
		}

		if err != nil {
			return err
		}
	}

	return r.onScopeSelected(r.current)
}

// Current returns the current scope, or nil when no selection has occurred.
// Unlike CurrentDirs and CurrentPaths it never fails.
func (r *Registry) Current() *model.Scope {
	return r.current
}

// CurrentDirs returns the current scope's directories.
func (r *Registry) CurrentDirs() ([]string, error) {
	if r.current == nil {
		return nil, &model.StateError{Op: "get current dirs"}
	}

	return r.current.Dirs, nil
}

// CurrentPaths returns the current scope's directories followed by its
// files, each preserving internal order.
func (r *Registry) CurrentPaths() ([]string, error) {
	if r.current == nil {
		return nil, &model.StateError{Op: "get current paths"}
	}

	return r.current.Paths(), nil
}
