// Package model contains the core data types shared by the scopes CLI.
package model

// Origin tags identifying how a scope was derived. User-defined scopes
// carry an empty origin.
const (
	OriginNPM         = "npm"
	OriginGit         = "git"
	OriginGitAncestor = "git_ancestor"
	OriginStartup     = "startup"
)

// SelectHook runs when its scope becomes the current scope.
type SelectHook func() error

// SelectedHook runs after every successful selection, regardless of which
// scope was selected.
type SelectedHook func(*Scope) error

// Scope is a named, mutable collection of filesystem locations. Dirs and
// Files preserve insertion order and are never deduplicated.
type Scope struct {
	// Name is the unique key within the registry.
	Name string `json:"name" mapstructure:"name"`
	// Dirs holds directory paths, absolute or relative to the working
	// directory. Required; may be empty.
	Dirs []string `json:"dirs" mapstructure:"dirs"`
	// Files holds individual file paths, kept separate from Dirs.
	Files []string `json:"files" mapstructure:"files"`
	// Origin identifies the derivation source, empty for user scopes.
	Origin string `json:"-" mapstructure:"-"`
	// OnSelect, when set, is invoked each time this scope becomes current.
	OnSelect SelectHook `json:"-" mapstructure:"-"`
}

// Paths returns Dirs followed by Files, each preserving internal order.
func (s *Scope) Paths() []string {
	paths := make([]string, 0, len(s.Dirs)+len(s.Files))
	paths = append(paths, s.Dirs...)
	paths = append(paths, s.Files...)

	return paths
}
