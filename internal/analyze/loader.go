package analyze

import (
	"cmp"
	"context"
	"fmt"
	"go/types"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"plugin-analyzer/internal/logging"
	"plugin-analyzer/internal/semantic"
)

// Loader loads Go packages and builds a semantic model.
type Loader struct {
	mode     ImplMode
	patterns []string
	logger   *log.Logger
}

var _ semantic.Provider = (*Loader)(nil)

// Option configures a Loader.
type Option func(*Loader)

// WithImplMode selects how implementation records are derived.
func WithImplMode(mode ImplMode) Option {
	return func(l *Loader) {
		l.mode = mode
	}
}

// WithPatterns overrides the package patterns loaded below the root
// (default "./...").
func WithPatterns(patterns ...string) Option {
	return func(l *Loader) {
		l.patterns = patterns
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a new Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		mode:     ImplDeclared,
		patterns: []string{"./..."},
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = logging.Discard()
	}

	return l
}

// Load loads the packages below root together with their dependencies.
// Any package or type-checking error fails the load.
func (l *Loader) Load(ctx context.Context, root string) (semantic.Model, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     root,
	}

	pkgs, err := packages.Load(cfg, l.patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", root)
	}

	all, errs := collectPackages(pkgs)
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	b := newBuilder(l.logger)
	for _, pkg := range all {
		b.addPackage(pkg)
	}

	switch l.mode {
	case ImplImplicit:
		b.addImplicitImpls()
	default:
		for _, pkg := range all {
			b.addDeclaredImpls(pkg)
		}
	}

	units, modules, decls, impls := b.arena.Len()
	l.logger.Debug("loaded workspace", "root", root, "packages", len(all),
		"units", units, "modules", modules, "declarations", decls, "impls", impls, "impl_mode", l.mode)

	if units == 0 {
		l.logger.Warn("no Go modules found; is the root inside a module?", "root", root)
	}

	return b.arena, nil
}

// collectPackages returns pkgs and their transitive imports that belong to
// a module, sorted by import path, along with the errors of every visited
// package.
func collectPackages(pkgs []*packages.Package) ([]*packages.Package, []error) {
	var (
		all  []*packages.Package
		errs []error
	)

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}

		if pkg.Module == nil || pkg.Types == nil {
			return
		}

		all = append(all, pkg)
	})

	slices.SortFunc(all, func(a, b *packages.Package) int {
		return strings.Compare(a.PkgPath, b.PkgPath)
	})

	return all, errs
}

// builder accumulates the model for one Load call.
type builder struct {
	arena  *semantic.Arena
	logger *log.Logger

	units   map[string]semantic.UnitID   // module path -> unit
	modules map[string]semantic.ModuleID // moduleKey -> module
	pkgMods map[string]semantic.ModuleID // package path -> module

	decls map[*types.TypeName]semantic.DeclID
	// named lists the non-alias, non-interface type declarations in package
	// then source order.
	named []namedDecl
	// ifaces lists interface declarations in declaration order.
	ifaces []namedDecl
}

type namedDecl struct {
	id    semantic.DeclID
	named *types.Named
}

func newBuilder(logger *log.Logger) *builder {
	return &builder{
		arena:   semantic.NewArena(),
		logger:  logger,
		units:   make(map[string]semantic.UnitID),
		modules: make(map[string]semantic.ModuleID),
		pkgMods: make(map[string]semantic.ModuleID),
		decls:   make(map[*types.TypeName]semantic.DeclID),
	}
}

// addPackage registers the package's module node and its package-scope
// declarations.
func (b *builder) addPackage(pkg *packages.Package) {
	mod := b.ensureModule(pkg.Module.Path, pkg.PkgPath)
	b.pkgMods[pkg.PkgPath] = mod

	scope := pkg.Types.Scope()

	objs := make([]types.Object, 0, scope.Len())
	for _, name := range scope.Names() {
		objs = append(objs, scope.Lookup(name))
	}

	// Source order rather than the scope's alphabetical order.
	slices.SortStableFunc(objs, func(a, b types.Object) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	for _, obj := range objs {
		b.addObject(mod, obj)
	}
}

func (b *builder) addObject(mod semantic.ModuleID, obj types.Object) {
	switch o := obj.(type) {
	case *types.TypeName:
		named, ok := o.Type().(*types.Named)
		if o.IsAlias() || !ok {
			b.arena.AddDecl(mod, semantic.DeclOther, o.Name())
			return
		}

		var id semantic.DeclID

		switch u := named.Underlying().(type) {
		case *types.Struct:
			id = b.arena.AddStruct(mod, o.Name(), structFields(u)...)
		case *types.Interface:
			id = b.arena.AddDecl(mod, semantic.DeclInterface, o.Name())
			b.ifaces = append(b.ifaces, namedDecl{id: id, named: named})
			b.decls[o] = id

			return
		case *types.Basic:
			id = b.arena.AddDecl(mod, semantic.DeclEnum, o.Name())
		default:
			id = b.arena.AddDecl(mod, semantic.DeclOther, o.Name())
		}

		b.decls[o] = id
		b.named = append(b.named, namedDecl{id: id, named: named})

	case *types.Func:
		b.arena.AddDecl(mod, semantic.DeclFunc, o.Name())

	case *types.Var, *types.Const:
		b.arena.AddDecl(mod, semantic.DeclValue, o.Name())

	default:
		b.arena.AddDecl(mod, semantic.DeclOther, o.Name())
	}
}

// structFields returns every field name, exported or not, in declaration
// order. Embedded fields are named after their type.
func structFields(st *types.Struct) []string {
	fields := make([]string, 0, st.NumFields())
	for i := range st.NumFields() {
		fields = append(fields, st.Field(i).Name())
	}

	return fields
}

// ensureModule returns the module node of the package directory, creating
// the unit, its root and any intermediate directories on first use.
func (b *builder) ensureModule(modPath, pkgPath string) semantic.ModuleID {
	rootKey := moduleKey(modPath, "")

	unit, ok := b.units[modPath]
	if !ok {
		unit = b.arena.AddUnit(modPath)
		b.units[modPath] = unit
		b.modules[rootKey] = b.arena.AddModule(unit, semantic.NoModule, "")
	}

	rel := strings.TrimPrefix(strings.TrimPrefix(pkgPath, modPath), "/")
	if rel == "" {
		return b.modules[rootKey]
	}

	parent := b.modules[rootKey]
	dir := ""

	for _, seg := range strings.Split(rel, "/") {
		dir = path.Join(dir, seg)
		key := moduleKey(modPath, dir)

		mod, ok := b.modules[key]
		if !ok {
			mod = b.arena.AddModule(unit, parent, seg)
			b.modules[key] = mod
		}

		parent = mod
	}

	return parent
}

// moduleKey qualifies a directory relative to its module root.
func moduleKey(modPath, dir string) string {
	return modPath + "\x00" + dir
}
