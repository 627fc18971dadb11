package snapshot

import (
	"fmt"
	"slices"
	"strings"

	"plugin-analyzer/internal/diagnostic"
	"plugin-analyzer/internal/semantic"
)

// Separator joins the segments of module and declaration paths.
const Separator = "::"

// Diagnostic codes reported by Build.
const (
	CodeUnsupportedVersion = "unsupported-version"
	CodeUnknownKind        = "unknown-kind"
	CodeDuplicateModule    = "duplicate-module"
	CodeInvalidPath        = "invalid-path"
	CodeMissingSelf        = "missing-self"
	CodeUnnamedUnit        = "unnamed-unit"
	CodeUnresolvedTrait    = "unresolved-trait"
	CodeNotAnInterface     = "not-an-interface"
	CodeUnresolvedSelf     = "unresolved-self"
	CodeKindMismatch       = "kind-mismatch"
	CodeImplicitModule     = "implicit-module"
)

// builder carries the state of one Build call.
type builder struct {
	arena *semantic.Arena
	diags diagnostic.Diagnostics
	// decls maps declaration paths to the first declaration with that path.
	decls map[string]semantic.DeclID
}

type pendingImpl struct {
	module semantic.ModuleID
	owner  string
	impl   Impl
}

// Build turns a decoded snapshot into a model. Units, modules, declarations
// and impls keep their file order. Missing ancestor modules are created.
func Build(f *File) (*semantic.Arena, diagnostic.Diagnostics) {
	b := &builder{
		arena: semantic.NewArena(),
		decls: make(map[string]semantic.DeclID),
	}

	if f.Version != CurrentVersion {
		b.diags.AddError(CodeUnsupportedVersion,
			fmt.Sprintf("unsupported snapshot version %q", f.Version), "",
			"expected version "+CurrentVersion)

		return b.arena, b.diags
	}

	// Impls are resolved once every declaration is known, so references may
	// point forward in the file.
	var pending []pendingImpl

	for _, unit := range f.Units {
		u := b.arena.AddUnit(unit.Name)
		if unit.Name == "" {
			b.diags.AddWarning(CodeUnnamedUnit, "unit has no name and cannot be referenced", "")
		}

		root := b.arena.AddModule(u, semantic.NoModule, "")
		seen := make(map[string]bool)

		for _, mod := range unit.Modules {
			subject := joinPath(unit.Name, mod.Path)
			if !validModulePath(mod.Path) {
				b.diags.AddError(CodeInvalidPath, fmt.Sprintf("module path %q has an empty segment", mod.Path), subject,
					`write nested modules as "a::b", the unit root as ""`)

				continue
			}

			if seen[mod.Path] {
				b.diags.AddError(CodeDuplicateModule, "module listed more than once", subject)
				continue
			}

			seen[mod.Path] = true
			m := b.ensureModule(u, root, unit.Name, mod.Path)

			for _, decl := range mod.Declarations {
				b.addDecl(m, joinPath(unit.Name, mod.Path, decl.Name), decl)
			}

			for _, impl := range mod.Impls {
				pending = append(pending, pendingImpl{module: m, owner: subject, impl: impl})
			}
		}
	}

	for _, p := range pending {
		b.addImpl(p)
	}

	return b.arena, b.diags
}

// ensureModule returns the module at path, creating it and its ancestors.
func (b *builder) ensureModule(u semantic.UnitID, root semantic.ModuleID, unitName, path string) semantic.ModuleID {
	m := root
	if path == "" {
		return m
	}

	segments := strings.Split(path, Separator)
	for i, seg := range segments {
		child, ok := b.arena.ChildModule(m, seg)
		if !ok {
			child = b.arena.AddModule(u, m, seg)
			if i < len(segments)-1 {
				b.diags.AddInfo(CodeImplicitModule, "created missing ancestor module",
					joinPath(unitName, strings.Join(segments[:i+1], Separator)))
			}
		}

		m = child
	}

	return m
}

func (b *builder) addDecl(m semantic.ModuleID, path string, decl Declaration) {
	kind, ok := semantic.ParseDeclKind(decl.Kind)
	if !ok {
		b.diags.AddError(CodeUnknownKind, fmt.Sprintf("unknown declaration kind %q", decl.Kind), path,
			"use one of interface, struct, enum, func, value, other")

		return
	}

	var d semantic.DeclID
	if kind == semantic.DeclStruct {
		d = b.arena.AddStruct(m, decl.Name, decl.Fields...)
	} else {
		d = b.arena.AddDecl(m, kind, decl.Name)
	}

	if _, exists := b.decls[path]; !exists {
		b.decls[path] = d
	}
}

func (b *builder) addImpl(p pendingImpl) {
	impl := p.impl
	if impl.Self == "" {
		b.diags.AddError(CodeMissingSelf, "impl has no self type", p.owner)
		return
	}

	trait := semantic.NoDecl
	if impl.Trait != "" {
		d, ok := b.decls[impl.Trait]

		switch {
		case !ok:
			b.diags.AddWarning(CodeUnresolvedTrait,
				fmt.Sprintf("trait %s not found, recording an inherent impl", impl.Trait), p.owner)
		case b.arena.DeclKind(d) != semantic.DeclInterface:
			b.diags.AddWarning(CodeNotAnInterface,
				fmt.Sprintf("%s is a %s, recording an inherent impl", impl.Trait, b.arena.DeclKind(d)), p.owner)
		default:
			trait = d
		}
	}

	self, ok := b.resolveSelf(p.owner, impl)
	if !ok {
		return
	}

	b.arena.AddImpl(p.module, trait, self)
}

func (b *builder) resolveSelf(owner string, impl Impl) (semantic.TypeRef, bool) {
	d, declared := b.decls[impl.Self]

	if impl.SelfKind == "" {
		if declared {
			return b.arena.RefTo(d), true
		}

		b.diags.AddWarning(CodeUnresolvedSelf, fmt.Sprintf("self type %s not found", impl.Self), owner)

		return semantic.Unresolved(impl.Self), true
	}

	kind, ok := semantic.ParseTypeKind(impl.SelfKind)
	if !ok {
		b.diags.AddError(CodeUnknownKind, fmt.Sprintf("unknown self kind %q", impl.SelfKind), owner,
			"use one of struct, enum, primitive, param, other, unknown")

		return semantic.TypeRef{}, false
	}

	if !declared {
		return semantic.TypeRef{Kind: kind, Decl: semantic.NoDecl, Name: impl.Self}, true
	}

	ref := b.arena.RefTo(d)
	if ref.Kind != kind {
		b.diags.AddWarning(CodeKindMismatch,
			fmt.Sprintf("self_kind %s ignored, %s is declared as %s", kind, impl.Self, b.arena.DeclKind(d)), owner)
	}

	return ref, true
}

// validModulePath reports whether path is empty (the unit root) or made of
// non-empty segments.
func validModulePath(path string) bool {
	return path == "" || !slices.Contains(strings.Split(path, Separator), "")
}

// joinPath joins non-empty segments with Separator.
func joinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, Separator)
}
