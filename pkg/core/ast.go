package core

import "github.com/leapstack-labs/swiftkt/pkg/token"

// Node is the base interface for all Swift AST nodes.
type Node interface {
	// Info returns the node's identity and source range.
	Info() *NodeInfo
}

// NodeInfo carries the identity and source range every node embeds.
type NodeInfo struct {
	ID   token.NodeID
	Span token.Span
}

// Info implements Node.
func (n *NodeInfo) Info() *NodeInfo { return n }

// Stmt is a marker interface for statements. Declarations and expressions
// are statements too, as in Swift.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a marker interface for declarations.
type Decl interface {
	Stmt
	declNode()
}

// Expr is a marker interface for expressions.
type Expr interface {
	Stmt
	exprNode()
}

// Type is a marker interface for type syntax.
type Type interface {
	Node
	typeNode()
}

// Pattern is a marker interface for patterns.
type Pattern interface {
	Node
	patternNode()
}

// Condition is a marker interface for if/guard/while conditions.
type Condition interface {
	Node
	conditionNode()
}

// File is a translation unit: top-level statements in source order.
type File struct {
	NodeInfo
	Name       string
	Statements []Stmt
}

// CodeBlock is a braced statement list.
type CodeBlock struct {
	NodeInfo
	Statements []Stmt
}

// Attribute is a Swift attribute such as @objc or @available(iOS 13, *).
type Attribute struct {
	Name string
	Args string // raw argument text without parentheses, empty if none
}

// Attributes is an attribute list.
type Attributes []Attribute

// Has reports whether the attribute list contains name.
func (a Attributes) Has(name string) bool {
	for _, attr := range a {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// Modifier is a declaration modifier keyword.
type Modifier string

// Declaration modifiers.
const (
	ModPublic          Modifier = "public"
	ModOpen            Modifier = "open"
	ModInternal        Modifier = "internal"
	ModFileprivate     Modifier = "fileprivate"
	ModPrivate         Modifier = "private"
	ModPrivateSet      Modifier = "private(set)"
	ModFileprivateSet  Modifier = "fileprivate(set)"
	ModInternalSet     Modifier = "internal(set)"
	ModProtectedSet    Modifier = "protected(set)"
	ModStatic          Modifier = "static"
	ModClass           Modifier = "class"
	ModFinal           Modifier = "final"
	ModOverride        Modifier = "override"
	ModLazy            Modifier = "lazy"
	ModWeak            Modifier = "weak"
	ModUnowned         Modifier = "unowned"
	ModConvenience     Modifier = "convenience"
	ModDynamic         Modifier = "dynamic"
	ModMutating        Modifier = "mutating"
	ModRequired        Modifier = "required"
	ModOptional        Modifier = "optional"
	ModNonmutating     Modifier = "nonmutating"
	ModUnownedSafe     Modifier = "unowned(safe)"
	ModUnownedUnsafe   Modifier = "unowned(unsafe)"
	ModPublicSet       Modifier = "public(set)"
	ModIndirect        Modifier = "indirect"
	ModPrefixOperator  Modifier = "prefix"
	ModPostfixOperator Modifier = "postfix"
)

// IsAccessLevel reports whether m is an access-level modifier
// (including the setter-restricting forms).
func (m Modifier) IsAccessLevel() bool {
	switch m {
	case ModPublic, ModOpen, ModInternal, ModFileprivate, ModPrivate,
		ModPrivateSet, ModFileprivateSet, ModInternalSet, ModProtectedSet, ModPublicSet:
		return true
	}
	return false
}

// IsSetterAccess reports whether m only restricts the setter.
func (m Modifier) IsSetterAccess() bool {
	switch m {
	case ModPrivateSet, ModFileprivateSet, ModInternalSet, ModProtectedSet, ModPublicSet:
		return true
	}
	return false
}

// Modifiers is a modifier list.
type Modifiers []Modifier

// Has reports whether the list contains m.
func (ms Modifiers) Has(m Modifier) bool {
	for _, x := range ms {
		if x == m {
			return true
		}
	}
	return false
}

// Access returns the first non-setter access-level modifier, if any.
func (ms Modifiers) Access() (Modifier, bool) {
	for _, m := range ms {
		if m.IsAccessLevel() && !m.IsSetterAccess() {
			return m, true
		}
	}
	return "", false
}

// IsStatic reports whether the list marks a type-level member.
func (ms Modifiers) IsStatic() bool {
	return ms.Has(ModStatic) || ms.Has(ModClass)
}

// Without returns a copy of the list with the given modifiers removed.
func (ms Modifiers) Without(drop ...Modifier) Modifiers {
	out := make(Modifiers, 0, len(ms))
	for _, m := range ms {
		keep := true
		for _, d := range drop {
			if m == d {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, m)
		}
	}
	return out
}

// GenericParam is one entry of a generic parameter clause: <T: Equatable>.
type GenericParam struct {
	Name       string
	Constraint Type
}

// Requirement is one generic where-clause requirement.
type Requirement struct {
	Left     Type
	SameType bool // "==" when true, ":" otherwise
	Right    Type
}

// WhereClause is a generic where clause.
type WhereClause struct {
	Requirements []Requirement
}
