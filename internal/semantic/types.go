package semantic

import "plugin-analyzer/internal/common"

// UnitID identifies a compilation unit within a Model.
type UnitID int

// ModuleID identifies a module within a Model.
type ModuleID int

// DeclID identifies a declaration within a Model.
type DeclID int

// ImplID identifies an implementation record within a Model.
type ImplID int

const (
	// NoModule marks an absent module (e.g. the parent of a root module).
	NoModule ModuleID = -1
	// NoDecl marks an absent declaration (e.g. the trait of an inherent impl).
	NoDecl DeclID = -1
)

// DeclKind represents the kind of a module-level declaration.
type DeclKind int

const (
	DeclOther     DeclKind = iota
	DeclInterface          // trait / interface
	DeclStruct             // structural type with named fields
	DeclEnum               // enum, or a named scalar type
	DeclFunc               // function
	DeclValue              // constant or variable
)

// String returns a human-readable representation of the DeclKind.
func (k DeclKind) String() string {
	switch k {
	case DeclInterface:
		return "interface"
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	case DeclFunc:
		return "func"
	case DeclValue:
		return "value"
	case DeclOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// ParseDeclKind converts a kind name back to a DeclKind.
// "trait" is accepted as an alias of "interface".
func ParseDeclKind(s string) (DeclKind, bool) {
	switch s {
	case "interface", "trait":
		return DeclInterface, true
	case "struct":
		return DeclStruct, true
	case "enum":
		return DeclEnum, true
	case "func", "function":
		return DeclFunc, true
	case "value", "const", "var", "static":
		return DeclValue, true
	case "other":
		return DeclOther, true
	default:
		return DeclOther, false
	}
}

// TypeKind classifies the self type of an implementation record.
type TypeKind int

const (
	TypeUnknown   TypeKind = iota // unresolved
	TypeStruct                    // structural type
	TypeEnum                      // enum or named scalar
	TypePrimitive                 // builtin type
	TypeParam                     // generic parameter or generic instance
	TypeOther                     // references, tuples, slices, ...
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeStruct:
		return "struct"
	case TypeEnum:
		return "enum"
	case TypePrimitive:
		return "primitive"
	case TypeParam:
		return "param"
	case TypeOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// ParseTypeKind converts a kind name back to a TypeKind.
func ParseTypeKind(s string) (TypeKind, bool) {
	switch s {
	case "struct":
		return TypeStruct, true
	case "enum":
		return TypeEnum, true
	case "primitive", "basic":
		return TypePrimitive, true
	case "param", "generic":
		return TypeParam, true
	case "other":
		return TypeOther, true
	case "unknown", "unresolved":
		return TypeUnknown, true
	default:
		return TypeUnknown, false
	}
}

// TypeRef is the resolved self type of an implementation record.
type TypeRef struct {
	Kind TypeKind
	// Decl is the declaration the type resolves to, or NoDecl.
	Decl DeclID
	// Name is the spelling of the type as seen by the provider (informational).
	Name string
}

// Unresolved returns a TypeRef for a type the provider could not resolve.
func Unresolved(name string) TypeRef {
	return TypeRef{Kind: TypeUnknown, Decl: NoDecl, Name: name}
}

// IsStruct reports whether the reference resolves to a structural type declaration.
func (r TypeRef) IsStruct() bool {
	return r.Kind == TypeStruct && r.Decl != NoDecl
}
