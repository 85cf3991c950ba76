package model

// DefaultConfigFilename is the conventional project config file name,
// resolved relative to the working directory.
const DefaultConfigFilename = "scopes.json"

// Config drives configuration ingestion. Every field is optional; the zero
// value is a valid no-op configuration.
type Config struct {
	// Scopes are registered literally, before any derived scopes.
	Scopes []*Scope
	// AddDirsToAllScopes is appended to the cross-scope directory list.
	AddDirsToAllScopes []string
	// CurrentScope, when non-empty, is selected after registration.
	CurrentScope string
	// EnableScopesFromNpm turns on workspace-manifest derivation.
	EnableScopesFromNpm bool
	// DiffBranchesForScopes lists branches for diff-against-branch scopes.
	DiffBranchesForScopes []string
	// DiffAncestorsForScopes lists branches for diff-against-ancestor scopes.
	DiffAncestorsForScopes []string
	// OnScopeSelected replaces the registry-wide selection hook.
	OnScopeSelected SelectedHook
	// ConfigFilename overrides DefaultConfigFilename for the project file.
	ConfigFilename string
}

// FileConfig mirrors the top-level keys of the project-level JSON config
// file. Hooks and the current-scope selection are caller-only concerns and
// have no file counterpart. The add_dirs_to_all_scopes key is part of the
// file layout but ingestion applies the caller's list only.
type FileConfig struct {
	Scopes                 []*Scope `mapstructure:"scopes"`
	EnableScopesFromNpm    bool     `mapstructure:"enable_scopes_from_npm"`
	DiffBranchesForScopes  []string `mapstructure:"diff_branches_for_scopes"`
	DiffAncestorsForScopes []string `mapstructure:"diff_ancestors_for_scopes"`
	AddDirsToAllScopes     []string `mapstructure:"add_dirs_to_all_scopes"`
}
