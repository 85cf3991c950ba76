package domain

import (
	"sort"
	"strconv"

	"github.com/mouse-blink/scopes/internal/adapter"
	m "github.com/mouse-blink/scopes/internal/model"
	"github.com/mouse-blink/scopes/internal/registry"
)

// Workflow is the public contract of the scopes core: it drives
// configuration ingestion and exposes the registry operations consumers
// rely on.
type Workflow struct {
	fs      adapter.WorkspaceFS
	loader  adapter.ConfigLoader
	reg     *registry.Registry
	deriver *Deriver
}

// NewWorkflow creates a Workflow over the provided adapters and registry.
func NewWorkflow(fs adapter.WorkspaceFS, git adapter.GitRunner, loader adapter.ConfigLoader, reg *registry.Registry) *Workflow {
	return &Workflow{
		fs:      fs,
		loader:  loader,
		reg:     reg,
		deriver: NewDeriver(fs, git, reg),
	}
}

// Registry returns the registry the workflow operates on.
func (w *Workflow) Registry() *registry.Registry {
	return w.reg
}

// Deriver returns the workflow's derivation strategies.
func (w *Workflow) Deriver() *Deriver {
	return w.deriver
}

// Setup applies cfg and the optional project config file to the registry.
// For the scope sources (literal, npm, branch diff, ancestor diff) the
// caller config is processed first and the file config second, both
// applied; a scope declared in both sources is registered twice, the file
// record replacing the caller one. Cross-scope dirs, the current-scope
// selection and the selection hook come from the caller config only. A nil
// cfg is a no-op.
func (w *Workflow) Setup(cfg *m.Config) error {
	if cfg == nil {
		return nil
	}

	fileCfg, err := w.loadFileConfig(cfg)
	if err != nil {
		return err
	}

	if err := w.reg.AddAll(cfg.Scopes); err != nil {
		return err
	}

	if err := w.reg.AddAll(fileCfg.Scopes); err != nil {
		return err
	}

	if cfg.EnableScopesFromNpm || fileCfg.EnableScopesFromNpm {
		npmScopes, err := w.deriver.NpmScopes()
		if err != nil {
			return err
		}

		if err := w.reg.AddAll(npmScopes); err != nil {
			return err
		}
	}

	if err := w.reg.AddAll(w.deriver.BranchScopes(cfg.DiffBranchesForScopes)); err != nil {
		return err
	}

	if err := w.reg.AddAll(w.deriver.BranchScopes(fileCfg.DiffBranchesForScopes)); err != nil {
		return err
	}

	if err := w.reg.AddAll(w.deriver.AncestorScopes(cfg.DiffAncestorsForScopes)); err != nil {
		return err
	}

	if err := w.reg.AddAll(w.deriver.AncestorScopes(fileCfg.DiffAncestorsForScopes)); err != nil {
		return err
	}

	if cfg.AddDirsToAllScopes != nil {
		if err := w.reg.AddDirsToAllScopes(cfg.AddDirsToAllScopes); err != nil {
			return err
		}
	}

	if cfg.CurrentScope != "" {
		if err := w.reg.SetCurrent(cfg.CurrentScope); err != nil {
			return err
		}
	}

	w.reg.SetOnScopeSelected(cfg.OnScopeSelected)

	return nil
}

// loadFileConfig reads the project config file named by cfg, falling back
// to the conventional filename. An absent file yields an empty FileConfig.
func (w *Workflow) loadFileConfig(cfg *m.Config) (*m.FileConfig, error) {
	filename := cfg.ConfigFilename
	if filename == "" {
		filename = m.DefaultConfigFilename
	}

	cwd, err := w.fs.Cwd()
	if err != nil {
		return nil, err
	}

	fileCfg, present, err := w.loader.Load(cwd, filename)
	if err != nil {
		return nil, err
	}

	if !present {
		return &m.FileConfig{}, nil
	}

	return fileCfg, nil
}

// SelectInteractive presents the registered scopes through the picker and
// makes the choice current. It returns nil without error when the user
// cancels or no scopes are registered.
func (w *Workflow) SelectInteractive(picker adapter.Picker) (*m.Scope, error) {
	scopes := w.reg.AllScopes()

	names := make([]string, 0, len(scopes))
	for name := range scopes {
		names = append(names, name)
	}

	// Sort for a stable presentation; map iteration order is random.
	sort.Strings(names)

	items := make([]adapter.PickItem, 0, len(names))
	for _, name := range names {
		items = append(items, adapter.PickItem{
			Label:  name,
			Detail: scopeDetail(scopes[name]),
		})
	}

	choice, ok, err := picker.Pick("Select scope", items)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	if err := w.reg.SetCurrent(choice.Label); err != nil {
		return nil, err
	}

	return w.reg.Current(), nil
}

// scopeDetail summarizes a scope for display next to its name.
func scopeDetail(scope *m.Scope) string {
	detail := pluralize(len(scope.Dirs), "dir") + ", " + pluralize(len(scope.Files), "file")
	if scope.Origin != "" {
		detail = scope.Origin + ": " + detail
	}

	return detail
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
