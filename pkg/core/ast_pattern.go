package core

// ---------- Patterns ----------

// IdentifierPattern binds a name: `x`, `x: Int`.
type IdentifierPattern struct {
	NodeInfo
	Name string
	Type *TypeAnnotation
}

// WildcardPattern is `_`.
type WildcardPattern struct {
	NodeInfo
	Type *TypeAnnotation
}

// TuplePatternElement is one element of a tuple pattern.
type TuplePatternElement struct {
	Label   string
	Pattern Pattern
}

// TuplePattern is `(a, b)`.
type TuplePattern struct {
	NodeInfo
	Elements []TuplePatternElement
}

// EnumCasePattern is `Type.name(payload)` or `.name(payload)`.
type EnumCasePattern struct {
	NodeInfo
	Type    *TypeIdentifier
	Name    string
	Payload *TuplePattern
}

// OptionalPattern is `name?`.
type OptionalPattern struct {
	NodeInfo
	Name string
}

// ExpressionPattern matches a value with ~=: `1...5`, `"a"`.
type ExpressionPattern struct {
	NodeInfo
	Expr Expr
}

// ValueBindingPattern is `let pattern` / `var pattern`.
type ValueBindingPattern struct {
	NodeInfo
	IsVar   bool
	Pattern Pattern
}

// TypeCastPattern is `is Type` (Pattern nil) or `pattern as Type`.
type TypeCastPattern struct {
	NodeInfo
	Pattern Pattern
	Type    Type
}

func (*IdentifierPattern) patternNode()   {}
func (*WildcardPattern) patternNode()     {}
func (*TuplePattern) patternNode()        {}
func (*EnumCasePattern) patternNode()     {}
func (*OptionalPattern) patternNode()     {}
func (*ExpressionPattern) patternNode()   {}
func (*ValueBindingPattern) patternNode() {}
func (*TypeCastPattern) patternNode()     {}
