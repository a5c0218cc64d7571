package core

// ---------- Declarations ----------

// ImportDecl is `import Foundation`.
type ImportDecl struct {
	NodeInfo
	Path string
}

// TypealiasDecl is `typealias Name<T> = Type`.
type TypealiasDecl struct {
	NodeInfo
	Attributes    Attributes
	Modifiers     Modifiers
	Name          string
	GenericParams []GenericParam
	Type          Type
}

// PatternInitializer is one `pattern = expr` entry of a let/var declaration.
// Init is nil when there is no initializer.
type PatternInitializer struct {
	Pattern Pattern
	Init    Expr
}

// ConstantDecl is a `let` declaration.
type ConstantDecl struct {
	NodeInfo
	Attributes   Attributes
	Modifiers    Modifiers
	Initializers []PatternInitializer
}

// VariableDecl is a `var` declaration.
type VariableDecl struct {
	NodeInfo
	Attributes Attributes
	Modifiers  Modifiers
	Body       VarBody
}

// VarBody is the closed set of variable declaration bodies.
type VarBody interface {
	Node
	varBody()
}

// InitializerListBody is `var a = 1, b: Int`.
type InitializerListBody struct {
	NodeInfo
	Initializers []PatternInitializer
}

// ComputedBody is a read-only computed property: `var x: Int { ... }`.
type ComputedBody struct {
	NodeInfo
	Name  string
	Type  *TypeAnnotation
	Block *CodeBlock
}

// SetterClause is `set(name) { ... }`. Name is empty when unbound.
type SetterClause struct {
	Name  string
	Block *CodeBlock
}

// GetterSetterBody is `var x: Int { get { } set { } }`.
type GetterSetterBody struct {
	NodeInfo
	Name   string
	Type   *TypeAnnotation
	Getter *CodeBlock
	Setter *SetterClause
}

// ObserverClause is a willSet or didSet clause. Name is empty when unbound.
type ObserverClause struct {
	Name  string
	Block *CodeBlock
}

// ObserverBody is a stored property with willSet/didSet observers.
type ObserverBody struct {
	NodeInfo
	Name    string
	Type    *TypeAnnotation
	Init    Expr
	WillSet *ObserverClause
	DidSet  *ObserverClause
}

// Parameter is a function or initializer parameter.
type Parameter struct {
	ExternalName string // argument label, "_" when suppressed, empty when same as local
	LocalName    string
	Type         *TypeAnnotation
	Default      Expr
	Variadic     bool
}

// Signature is a function signature.
type Signature struct {
	Params []Parameter
	Throws bool
	Async  bool
	Result Type // nil when the function returns Void implicitly
}

// FunctionDecl is a `func` declaration.
type FunctionDecl struct {
	NodeInfo
	Attributes    Attributes
	Modifiers     Modifiers
	Name          string
	GenericParams []GenericParam
	Signature     Signature
	Where         *WhereClause
	Body          *CodeBlock // nil for protocol requirements
}

// InitKind distinguishes init, init? and init!.
type InitKind int

// Initializer kinds.
const (
	InitNonFailable InitKind = iota
	InitOptional
	InitImplicitlyUnwrapped
)

// InitializerDecl is an `init` declaration.
type InitializerDecl struct {
	NodeInfo
	Attributes    Attributes
	Modifiers     Modifiers
	Kind          InitKind
	GenericParams []GenericParam
	Params        []Parameter
	Throws        bool
	Body          *CodeBlock
}

// DeinitializerDecl is a `deinit` declaration.
type DeinitializerDecl struct {
	NodeInfo
	Body *CodeBlock
}

// ClassDecl is a `class` declaration. Finality is the ModFinal modifier.
type ClassDecl struct {
	NodeInfo
	Attributes    Attributes
	Modifiers     Modifiers
	Name          string
	GenericParams []GenericParam
	Inheritance   []Type
	Where         *WhereClause
	Members       []Decl
}

// StructDecl is a `struct` declaration.
type StructDecl struct {
	NodeInfo
	Attributes    Attributes
	Modifiers     Modifiers
	Name          string
	GenericParams []GenericParam
	Inheritance   []Type
	Where         *WhereClause
	Members       []Decl
}

// ProtocolDecl is a `protocol` declaration.
type ProtocolDecl struct {
	NodeInfo
	Attributes  Attributes
	Modifiers   Modifiers
	Name        string
	Inheritance []Type
	Members     []ProtocolMember
}

// ProtocolMember is the closed set of protocol requirements.
type ProtocolMember interface {
	Node
	protocolMember()
}

// ProtocolProperty is `var name: Type { get set }`.
type ProtocolProperty struct {
	NodeInfo
	Attributes Attributes
	Modifiers  Modifiers
	Name       string
	Type       *TypeAnnotation
	HasSetter  bool
}

// ProtocolMethod is `func name(...) -> T`.
type ProtocolMethod struct {
	NodeInfo
	Attributes    Attributes
	Modifiers     Modifiers
	Name          string
	GenericParams []GenericParam
	Signature     Signature
}

// ProtocolAssociatedType is `associatedtype Name: Constraint`.
type ProtocolAssociatedType struct {
	NodeInfo
	Name       string
	Constraint Type
}

// ExtensionDecl is an `extension` declaration.
type ExtensionDecl struct {
	NodeInfo
	Attributes  Attributes
	Modifiers   Modifiers
	Type        *TypeIdentifier
	Inheritance []Type
	Where       *WhereClause
	Members     []Decl
}

// EnumCase is one case name inside a `case` declaration.
// Payload is the associated-value tuple; RawValue a literal raw value.
type EnumCase struct {
	Name     string
	Payload  *TupleType
	RawValue *LiteralExpr
}

// EnumCaseDecl is `case a, b(Int)` inside an enum.
type EnumCaseDecl struct {
	NodeInfo
	Indirect bool
	Cases    []EnumCase
}

// EnumDecl is an `enum` declaration. Cases keeps case declarations in
// source order; Members holds every other member.
type EnumDecl struct {
	NodeInfo
	Attributes    Attributes
	Modifiers     Modifiers
	Indirect      bool
	Name          string
	GenericParams []GenericParam
	Inheritance   []Type
	Where         *WhereClause
	Cases         []*EnumCaseDecl
	Members       []Decl
}

// RawDecl is a declaration the front end could not model; its text passes through.
type RawDecl struct {
	NodeInfo
	Text string
}

func (*ImportDecl) stmtNode()        {}
func (*TypealiasDecl) stmtNode()     {}
func (*ConstantDecl) stmtNode()      {}
func (*VariableDecl) stmtNode()      {}
func (*FunctionDecl) stmtNode()      {}
func (*InitializerDecl) stmtNode()   {}
func (*DeinitializerDecl) stmtNode() {}
func (*ClassDecl) stmtNode()         {}
func (*StructDecl) stmtNode()        {}
func (*ProtocolDecl) stmtNode()      {}
func (*ExtensionDecl) stmtNode()     {}
func (*EnumDecl) stmtNode()          {}
func (*RawDecl) stmtNode()           {}

func (*ImportDecl) declNode()        {}
func (*TypealiasDecl) declNode()     {}
func (*ConstantDecl) declNode()      {}
func (*VariableDecl) declNode()      {}
func (*FunctionDecl) declNode()      {}
func (*InitializerDecl) declNode()   {}
func (*DeinitializerDecl) declNode() {}
func (*ClassDecl) declNode()         {}
func (*StructDecl) declNode()        {}
func (*ProtocolDecl) declNode()      {}
func (*ExtensionDecl) declNode()     {}
func (*EnumDecl) declNode()          {}
func (*RawDecl) declNode()           {}

func (*InitializerListBody) varBody() {}
func (*ComputedBody) varBody()        {}
func (*GetterSetterBody) varBody()    {}
func (*ObserverBody) varBody()        {}

func (*ProtocolProperty) protocolMember()       {}
func (*ProtocolMethod) protocolMember()         {}
func (*ProtocolAssociatedType) protocolMember() {}

// ---------- Declaration helpers ----------

// DeclModifiers returns the modifiers of a declaration, or nil.
func DeclModifiers(d Decl) Modifiers {
	switch d := d.(type) {
	case *TypealiasDecl:
		return d.Modifiers
	case *ConstantDecl:
		return d.Modifiers
	case *VariableDecl:
		return d.Modifiers
	case *FunctionDecl:
		return d.Modifiers
	case *InitializerDecl:
		return d.Modifiers
	case *ClassDecl:
		return d.Modifiers
	case *StructDecl:
		return d.Modifiers
	case *ProtocolDecl:
		return d.Modifiers
	case *ExtensionDecl:
		return d.Modifiers
	case *EnumDecl:
		return d.Modifiers
	}
	return nil
}

// IsStatic reports whether a member declaration is type-level.
func IsStatic(d Decl) bool {
	return DeclModifiers(d).IsStatic()
}

// HasInitializer reports whether a variable declaration is stored with an initializer.
func (v *VariableDecl) HasInitializer() bool {
	switch b := v.Body.(type) {
	case *InitializerListBody:
		for _, pi := range b.Initializers {
			if pi.Init != nil {
				return true
			}
		}
	case *ObserverBody:
		return b.Init != nil
	}
	return false
}

// Name returns the bound name of a variable declaration's first pattern.
func (v *VariableDecl) Name() string {
	switch b := v.Body.(type) {
	case *InitializerListBody:
		if len(b.Initializers) > 0 {
			return PatternName(b.Initializers[0].Pattern)
		}
	case *ComputedBody:
		return b.Name
	case *GetterSetterBody:
		return b.Name
	case *ObserverBody:
		return b.Name
	}
	return ""
}

// PatternName returns the identifier bound by a simple pattern, or "".
func PatternName(p Pattern) string {
	switch p := p.(type) {
	case *IdentifierPattern:
		return p.Name
	case *ValueBindingPattern:
		return PatternName(p.Pattern)
	case *OptionalPattern:
		return p.Name
	}
	return ""
}

// PatternType returns the type annotation of a simple pattern, or nil.
func PatternType(p Pattern) *TypeAnnotation {
	switch p := p.(type) {
	case *IdentifierPattern:
		return p.Type
	case *WildcardPattern:
		return p.Type
	case *ValueBindingPattern:
		return PatternType(p.Pattern)
	}
	return nil
}
