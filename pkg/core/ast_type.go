package core

// ---------- Types ----------

// TypeName is one dotted component of a type identifier.
type TypeName struct {
	Name        string
	GenericArgs []Type
}

// TypeIdentifier is a named type: `Int`, `Swift.Array<Int>`.
type TypeIdentifier struct {
	NodeInfo
	Names []TypeName
}

// Name returns the last component name.
func (t *TypeIdentifier) Name() string {
	if len(t.Names) == 0 {
		return ""
	}
	return t.Names[len(t.Names)-1].Name
}

// ArrayType is `[Elem]`.
type ArrayType struct {
	NodeInfo
	Elem Type
}

// DictionaryType is `[Key: Value]`.
type DictionaryType struct {
	NodeInfo
	Key   Type
	Value Type
}

// OptionalType is `Wrapped?`.
type OptionalType struct {
	NodeInfo
	Wrapped Type
}

// ImplicitlyUnwrappedType is `Wrapped!`.
type ImplicitlyUnwrappedType struct {
	NodeInfo
	Wrapped Type
}

// TupleTypeElement is one `name: Type` element of a tuple type.
type TupleTypeElement struct {
	Name       string
	Type       Type
	InOut      bool
	Attributes Attributes
}

// TupleType is `(A, name: B)`.
type TupleType struct {
	NodeInfo
	Elements []TupleTypeElement
}

// FunctionTypeParam is one parameter of a function type.
type FunctionTypeParam struct {
	Name     string
	Type     Type
	InOut    bool
	Variadic bool
}

// FunctionType is `@escaping (A) throws -> R`.
type FunctionType struct {
	NodeInfo
	Attributes Attributes
	Params     []FunctionTypeParam
	Throws     bool
	Result     Type
}

// ProtocolCompositionType is `A & B`.
type ProtocolCompositionType struct {
	NodeInfo
	Types []Type
}

// MetatypeType is `T.Type` or `T.Protocol`.
type MetatypeType struct {
	NodeInfo
	Type     Type
	Protocol bool
}

// AnyType is `Any`.
type AnyType struct {
	NodeInfo
}

// SelfType is `Self`.
type SelfType struct {
	NodeInfo
}

// TypeAnnotation is `: @attr inout Type` on a pattern or parameter.
type TypeAnnotation struct {
	Attributes Attributes
	InOut      bool
	Type       Type
}

func (*TypeIdentifier) typeNode()          {}
func (*ArrayType) typeNode()               {}
func (*DictionaryType) typeNode()          {}
func (*OptionalType) typeNode()            {}
func (*ImplicitlyUnwrappedType) typeNode() {}
func (*TupleType) typeNode()               {}
func (*FunctionType) typeNode()            {}
func (*ProtocolCompositionType) typeNode() {}
func (*MetatypeType) typeNode()            {}
func (*AnyType) typeNode()                 {}
func (*SelfType) typeNode()                {}

// NamedType builds a single-component type identifier.
func NamedType(name string, args ...Type) *TypeIdentifier {
	return &TypeIdentifier{Names: []TypeName{{Name: name, GenericArgs: args}}}
}

// TypeNameOf returns the last component name of a named type, or "".
func TypeNameOf(t Type) string {
	if ti, ok := t.(*TypeIdentifier); ok {
		return ti.Name()
	}
	return ""
}

// IsOptional reports whether t is an optional type.
func IsOptional(t Type) bool {
	_, ok := t.(*OptionalType)
	return ok
}

// IsImplicitlyUnwrapped reports whether t is an implicitly unwrapped optional.
func IsImplicitlyUnwrapped(t Type) bool {
	_, ok := t.(*ImplicitlyUnwrappedType)
	return ok
}
