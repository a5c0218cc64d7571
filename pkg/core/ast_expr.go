package core

// ---------- Expression Types ----------

// IdentifierExpr is a name reference, optionally specialized: `foo`, `Array<Int>`.
type IdentifierExpr struct {
	NodeInfo
	Name        string
	GenericArgs []Type
}

// ImplicitParamExpr is `$0`, `$1`, ...
type ImplicitParamExpr struct {
	NodeInfo
	Index int
}

// LiteralKind classifies a literal expression.
type LiteralKind int

// LiteralKind constants.
const (
	LiteralNil LiteralKind = iota
	LiteralBool
	LiteralInteger
	LiteralFloat
	LiteralStaticString
	LiteralInterpolatedString
	LiteralArray
	LiteralDictionary
)

// DictEntry is one `key: value` pair of a dictionary literal.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// LiteralExpr is a literal. Value holds the raw source text for scalar
// literals; strings keep their quotes and escapes exactly as written.
type LiteralExpr struct {
	NodeInfo
	Kind     LiteralKind
	Value    string
	Elements []Expr
	Entries  []DictEntry
}

// SelfExpr is `self`, `self.member` or `self.init`.
type SelfExpr struct {
	NodeInfo
	Member string
	Init   bool
}

// SuperExpr is `super.member` or `super.init`.
type SuperExpr struct {
	NodeInfo
	Member string
	Init   bool
}

// ImplicitMemberExpr is the enum shorthand `.name`.
type ImplicitMemberExpr struct {
	NodeInfo
	Name string
}

// ExplicitMemberExpr is `base.member`.
type ExplicitMemberExpr struct {
	NodeInfo
	Base        Expr
	Member      string
	GenericArgs []Type
}

// Argument is a call, subscript or tuple argument with an optional label.
type Argument struct {
	Label string
	Value Expr
}

// FunctionCallExpr is `callee(args) { trailing }`.
type FunctionCallExpr struct {
	NodeInfo
	Callee   Expr
	Args     []Argument
	Trailing *ClosureExpr
}

// ClosureParam is one closure parameter.
type ClosureParam struct {
	Name string
	Type *TypeAnnotation
}

// ClosureSignature is the `params -> Result in` header of a closure.
// HasParamClause is false for signatures with only a capture list.
type ClosureSignature struct {
	CaptureList    string
	HasParamClause bool
	Params         []ClosureParam
	Throws         bool
	Result         Type
}

// ClosureExpr is `{ signature in statements }`.
type ClosureExpr struct {
	NodeInfo
	Signature  *ClosureSignature
	Statements []Stmt
}

// BinaryExpr is `left op right`.
type BinaryExpr struct {
	NodeInfo
	Op    string
	Left  Expr
	Right Expr
}

// PrefixExpr is `op operand`.
type PrefixExpr struct {
	NodeInfo
	Op      string
	Operand Expr
}

// PostfixExpr is `operand op`.
type PostfixExpr struct {
	NodeInfo
	Op      string
	Operand Expr
}

// AssignExpr is `left = right`.
type AssignExpr struct {
	NodeInfo
	Left  Expr
	Right Expr
}

// SeqElemKind classifies sequence expression elements.
type SeqElemKind int

// SeqElemKind constants.
const (
	SeqExpr SeqElemKind = iota
	SeqBinaryOp
	SeqAssign
	SeqTernary
	SeqCast
)

// SequenceElement is one element of a flat, unfolded operator sequence.
// SeqExpr uses Expr; SeqBinaryOp uses Op; SeqTernary uses Expr as the
// true branch; SeqCast uses Cast and Type.
type SequenceElement struct {
	Kind SeqElemKind
	Expr Expr
	Op   string
	Cast CastKind
	Type Type
}

// SequenceExpr is an operator sequence before folding: `a = b ? c : d`.
type SequenceExpr struct {
	NodeInfo
	Elements []SequenceElement
}

// TernaryExpr is `cond ? t : f`.
type TernaryExpr struct {
	NodeInfo
	Cond  Expr
	True  Expr
	False Expr
}

// TryKind distinguishes try, try? and try!.
type TryKind int

// TryKind constants.
const (
	TryPlain TryKind = iota
	TryOptional
	TryForced
)

// TryExpr is `try expr`.
type TryExpr struct {
	NodeInfo
	Kind TryKind
	Expr Expr
}

// ForcedValueExpr is `expr!`.
type ForcedValueExpr struct {
	NodeInfo
	Expr Expr
}

// OptionalChainingExpr is `expr?` as the base of a chain.
type OptionalChainingExpr struct {
	NodeInfo
	Expr Expr
}

// CastKind distinguishes is, as, as? and as!.
type CastKind int

// CastKind constants.
const (
	CastCheck CastKind = iota
	CastPlain
	CastConditional
	CastForced
)

// TypeCastExpr is `expr is T`, `expr as T`, `expr as? T`, `expr as! T`.
type TypeCastExpr struct {
	NodeInfo
	Kind CastKind
	Expr Expr
	Type Type
}

// ParenExpr is `(expr)`.
type ParenExpr struct {
	NodeInfo
	Expr Expr
}

// TupleExpr is `(a, label: b, ...)`.
type TupleExpr struct {
	NodeInfo
	Elements []Argument
}

// SubscriptExpr is `base[args]`.
type SubscriptExpr struct {
	NodeInfo
	Base Expr
	Args []Argument
}

// WildcardExpr is `_` on the left of an assignment.
type WildcardExpr struct {
	NodeInfo
}

// RawExpr is an expression the front end could not model; its text passes through.
type RawExpr struct {
	NodeInfo
	Text string
}

func (*IdentifierExpr) stmtNode()       {}
func (*ImplicitParamExpr) stmtNode()    {}
func (*LiteralExpr) stmtNode()          {}
func (*SelfExpr) stmtNode()             {}
func (*SuperExpr) stmtNode()            {}
func (*ImplicitMemberExpr) stmtNode()   {}
func (*ExplicitMemberExpr) stmtNode()   {}
func (*FunctionCallExpr) stmtNode()     {}
func (*ClosureExpr) stmtNode()          {}
func (*BinaryExpr) stmtNode()           {}
func (*PrefixExpr) stmtNode()           {}
func (*PostfixExpr) stmtNode()          {}
func (*AssignExpr) stmtNode()           {}
func (*SequenceExpr) stmtNode()         {}
func (*TernaryExpr) stmtNode()          {}
func (*TryExpr) stmtNode()              {}
func (*ForcedValueExpr) stmtNode()      {}
func (*OptionalChainingExpr) stmtNode() {}
func (*TypeCastExpr) stmtNode()         {}
func (*ParenExpr) stmtNode()            {}
func (*TupleExpr) stmtNode()            {}
func (*SubscriptExpr) stmtNode()        {}
func (*WildcardExpr) stmtNode()         {}
func (*RawExpr) stmtNode()              {}

func (*IdentifierExpr) exprNode()       {}
func (*ImplicitParamExpr) exprNode()    {}
func (*LiteralExpr) exprNode()          {}
func (*SelfExpr) exprNode()             {}
func (*SuperExpr) exprNode()            {}
func (*ImplicitMemberExpr) exprNode()   {}
func (*ExplicitMemberExpr) exprNode()   {}
func (*FunctionCallExpr) exprNode()     {}
func (*ClosureExpr) exprNode()          {}
func (*BinaryExpr) exprNode()           {}
func (*PrefixExpr) exprNode()           {}
func (*PostfixExpr) exprNode()          {}
func (*AssignExpr) exprNode()           {}
func (*SequenceExpr) exprNode()         {}
func (*TernaryExpr) exprNode()          {}
func (*TryExpr) exprNode()              {}
func (*ForcedValueExpr) exprNode()      {}
func (*OptionalChainingExpr) exprNode() {}
func (*TypeCastExpr) exprNode()         {}
func (*ParenExpr) exprNode()            {}
func (*TupleExpr) exprNode()            {}
func (*SubscriptExpr) exprNode()        {}
func (*WildcardExpr) exprNode()         {}
func (*RawExpr) exprNode()              {}

// IsStringLiteral reports whether e is a static or interpolated string literal.
func IsStringLiteral(e Expr) bool {
	lit, ok := e.(*LiteralExpr)
	return ok && (lit.Kind == LiteralStaticString || lit.Kind == LiteralInterpolatedString)
}
