package semantic

import (
	"fmt"
	"slices"
)

// Arena is an in-memory Model. Nodes live in flat slices and refer to each
// other by index, so the module tree carries parent indexes instead of
// pointers. Providers populate an Arena with the Add* methods and then hand
// it out as a read-only Model; an Arena must not be modified once shared.
//
// An empty name means "no name": root modules, and units or declarations
// the provider could not name.
type Arena struct {
	units   []unitNode
	modules []moduleNode
	decls   []declNode
	impls   []implNode

	// byName maps a unit name to the first unit registered with it.
	byName map[string]UnitID
}

type unitNode struct {
	name    string
	modules []ModuleID
}

type moduleNode struct {
	name   string
	unit   UnitID
	parent ModuleID
	decls  []DeclID
	impls  []ImplID
}

type declNode struct {
	name   string
	kind   DeclKind
	module ModuleID
	fields []string
}

type implNode struct {
	module ModuleID
	trait  DeclID
	self   TypeRef
}

var (
	_ Model     = (*Arena)(nil)
	_ UnitIndex = (*Arena)(nil)
)

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{
		byName: make(map[string]UnitID),
	}
}

// AddUnit registers a compilation unit. An empty name registers a unit
// without a display name.
func (a *Arena) AddUnit(name string) UnitID {
	id := UnitID(len(a.units))
	a.units = append(a.units, unitNode{name: name})

	if name != "" {
		if _, ok := a.byName[name]; !ok {
			a.byName[name] = id
		}
	}

	return id
}

// AddModule registers a module of unit u nested in parent. A parent of
// NoModule creates a root module. It panics if parent belongs to another unit.
func (a *Arena) AddModule(u UnitID, parent ModuleID, name string) ModuleID {
	if parent != NoModule && a.modules[parent].unit != u {
		panic(fmt.Sprintf("semantic: parent module %d does not belong to unit %d", parent, u))
	}

	id := ModuleID(len(a.modules))
	a.modules = append(a.modules, moduleNode{
		name:   name,
		unit:   u,
		parent: parent,
	})
	a.units[u].modules = append(a.units[u].modules, id)

	return id
}

// AddDecl registers a declaration of the given kind in module m.
func (a *Arena) AddDecl(m ModuleID, kind DeclKind, name string) DeclID {
	id := DeclID(len(a.decls))
	a.decls = append(a.decls, declNode{
		name:   name,
		kind:   kind,
		module: m,
	})
	a.modules[m].decls = append(a.modules[m].decls, id)

	return id
}

// AddStruct registers a structural type with its fields in declaration order.
func (a *Arena) AddStruct(m ModuleID, name string, fields ...string) DeclID {
	id := a.AddDecl(m, DeclStruct, name)
	a.decls[id].fields = slices.Clone(fields)

	if a.decls[id].fields == nil {
		a.decls[id].fields = []string{}
	}

	return id
}

// AddImpl registers an implementation record in module m. A trait of NoDecl
// records an inherent implementation.
func (a *Arena) AddImpl(m ModuleID, trait DeclID, self TypeRef) ImplID {
	id := ImplID(len(a.impls))
	a.impls = append(a.impls, implNode{
		module: m,
		trait:  trait,
		self:   self,
	})
	a.modules[m].impls = append(a.modules[m].impls, id)

	return id
}

// RefTo returns a TypeRef naming declaration d, classified by its kind.
func (a *Arena) RefTo(d DeclID) TypeRef {
	n := a.decls[d]

	kind := TypeOther
	switch n.kind {
	case DeclStruct:
		kind = TypeStruct
	case DeclEnum:
		kind = TypeEnum
	}

	return TypeRef{Kind: kind, Decl: d, Name: n.name}
}

// RootModule returns the first root module of unit u.
func (a *Arena) RootModule(u UnitID) (ModuleID, bool) {
	for _, m := range a.units[u].modules {
		if a.modules[m].parent == NoModule {
			return m, true
		}
	}

	return NoModule, false
}

// ChildModule returns the child of parent named name.
func (a *Arena) ChildModule(parent ModuleID, name string) (ModuleID, bool) {
	u := a.modules[parent].unit
	for _, m := range a.units[u].modules {
		if a.modules[m].parent == parent && a.modules[m].name == name {
			return m, true
		}
	}

	return NoModule, false
}

// Len returns the number of units, modules, declarations and impls.
func (a *Arena) Len() (units, modules, decls, impls int) {
	return len(a.units), len(a.modules), len(a.decls), len(a.impls)
}

func (a *Arena) Units() []UnitID {
	ids := make([]UnitID, len(a.units))
	for i := range a.units {
		ids[i] = UnitID(i)
	}

	return ids
}

func (a *Arena) LookupUnit(name string) (UnitID, bool) {
	id, ok := a.byName[name]
	return id, ok
}

func (a *Arena) UnitName(u UnitID) (string, bool) {
	name := a.units[u].name
	return name, name != ""
}

func (a *Arena) UnitModules(u UnitID) []ModuleID {
	return slices.Clone(a.units[u].modules)
}

func (a *Arena) ModuleName(m ModuleID) (string, bool) {
	name := a.modules[m].name
	return name, name != ""
}

func (a *Arena) ModuleParent(m ModuleID) (ModuleID, bool) {
	parent := a.modules[m].parent
	return parent, parent != NoModule
}

func (a *Arena) ModuleUnit(m ModuleID) UnitID {
	return a.modules[m].unit
}

func (a *Arena) Declarations(m ModuleID) []DeclID {
	return slices.Clone(a.modules[m].decls)
}

func (a *Arena) Impls(m ModuleID) []ImplID {
	return slices.Clone(a.modules[m].impls)
}

func (a *Arena) DeclKind(d DeclID) DeclKind {
	return a.decls[d].kind
}

func (a *Arena) DeclName(d DeclID) (string, bool) {
	name := a.decls[d].name
	return name, name != ""
}

func (a *Arena) DeclModule(d DeclID) ModuleID {
	return a.decls[d].module
}

func (a *Arena) StructFields(d DeclID) ([]string, bool) {
	n := a.decls[d]
	if n.kind != DeclStruct {
		return nil, false
	}

	return slices.Clone(n.fields), true
}

func (a *Arena) ImplTrait(i ImplID) (DeclID, bool) {
	trait := a.impls[i].trait
	return trait, trait != NoDecl
}

func (a *Arena) ImplSelf(i ImplID) TypeRef {
	return a.impls[i].self
}
