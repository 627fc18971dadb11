package analyze

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"plugin-analyzer/internal/semantic"
)

// addDeclaredImpls records every package-level assertion
//
//	var _ I = expr
//
// whose type I is a non-generic interface declared in the model. The self
// type is the type of expr with one level of pointer removed. Assertions
// against interfaces outside the model (e.g. fmt.Stringer) are ignored.
func (b *builder) addDeclaredImpls(pkg *packages.Package) {
	if pkg.TypesInfo == nil {
		return
	}

	mod := b.pkgMods[pkg.PkgPath]

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok || vs.Type == nil || !allBlank(vs.Names) {
					continue
				}

				trait, ok := b.interfaceDecl(pkg.TypesInfo.TypeOf(vs.Type))
				if !ok {
					continue
				}

				for _, value := range vs.Values {
					self := b.selfRef(pkg.TypesInfo.TypeOf(value))
					b.arena.AddImpl(mod, trait, self)
					b.logger.Debug("recorded assertion", "package", pkg.PkgPath, "self", self.Name, "kind", self.Kind)
				}
			}
		}
	}
}

// addImplicitImpls records, for every named non-generic type, each non-empty
// non-generic interface in the model that the type or its pointer satisfies.
// Records are placed in the module declaring the type.
func (b *builder) addImplicitImpls() {
	var ifaces []namedDecl

	for _, d := range b.ifaces {
		iface, ok := d.named.Underlying().(*types.Interface)
		if !ok || iface.Empty() || d.named.TypeParams().Len() > 0 {
			continue
		}

		ifaces = append(ifaces, d)
	}

	for _, d := range b.named {
		if d.named.TypeParams().Len() > 0 {
			continue
		}

		mod := b.arena.DeclModule(d.id)
		ptr := types.NewPointer(d.named)

		for _, iface := range ifaces {
			it := iface.named.Underlying().(*types.Interface)
			if types.Implements(d.named, it) || types.Implements(ptr, it) {
				b.arena.AddImpl(mod, iface.id, b.arena.RefTo(d.id))
			}
		}
	}
}

// interfaceDecl resolves t to an interface declaration of the model.
func (b *builder) interfaceDecl(t types.Type) (semantic.DeclID, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.TypeArgs().Len() > 0 {
		return semantic.NoDecl, false
	}

	id, ok := b.decls[named.Obj()]
	if !ok || b.arena.DeclKind(id) != semantic.DeclInterface {
		return semantic.NoDecl, false
	}

	return id, true
}

// selfRef classifies the self type of an assertion.
func (b *builder) selfRef(t types.Type) semantic.TypeRef {
	if t == nil {
		return semantic.Unresolved("")
	}

	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	switch tt := t.(type) {
	case *types.Named:
		if tt.TypeArgs().Len() > 0 {
			return semantic.TypeRef{Kind: semantic.TypeParam, Decl: semantic.NoDecl, Name: tt.String()}
		}

		if id, ok := b.decls[tt.Obj()]; ok {
			return b.arena.RefTo(id)
		}

		// Declared outside the model, e.g. in the standard library.
		return semantic.Unresolved(tt.String())

	case *types.Basic:
		if tt.Info()&types.IsUntyped != 0 {
			return semantic.Unresolved(tt.String())
		}

		return semantic.TypeRef{Kind: semantic.TypePrimitive, Decl: semantic.NoDecl, Name: tt.String()}

	case *types.TypeParam:
		return semantic.TypeRef{Kind: semantic.TypeParam, Decl: semantic.NoDecl, Name: tt.String()}

	default:
		return semantic.TypeRef{Kind: semantic.TypeOther, Decl: semantic.NoDecl, Name: t.String()}
	}
}

func allBlank(names []*ast.Ident) bool {
	for _, n := range names {
		if n.Name != "_" {
			return false
		}
	}

	return len(names) > 0
}
