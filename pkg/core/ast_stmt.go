package core

// ---------- Statements ----------

// IfStmt is `if conditions { } else ...`. At most one of Else and ElseIf is set.
type IfStmt struct {
	NodeInfo
	Conditions []Condition
	Body       *CodeBlock
	Else       *CodeBlock
	ElseIf     *IfStmt
}

// GuardStmt is `guard conditions else { }`.
type GuardStmt struct {
	NodeInfo
	Conditions []Condition
	Body       *CodeBlock
}

// CaseItem is one comma-separated pattern of a switch case.
type CaseItem struct {
	Pattern Pattern
	Where   Expr
}

// SwitchCase is a `case` or `default` arm.
type SwitchCase struct {
	NodeInfo
	IsDefault  bool
	Items      []CaseItem
	Statements []Stmt
}

// SwitchStmt is `switch subject { cases }`.
type SwitchStmt struct {
	NodeInfo
	Subject Expr
	Cases   []*SwitchCase
}

// ForInStmt is `for pattern in collection where cond { }`.
type ForInStmt struct {
	NodeInfo
	Pattern    Pattern
	Collection Expr
	Where      Expr
	Body       *CodeBlock
}

// WhileStmt is `while conditions { }`.
type WhileStmt struct {
	NodeInfo
	Conditions []Condition
	Body       *CodeBlock
}

// RepeatWhileStmt is `repeat { } while cond`.
type RepeatWhileStmt struct {
	NodeInfo
	Body      *CodeBlock
	Condition Expr
}

// ReturnStmt is `return [value]`.
type ReturnStmt struct {
	NodeInfo
	Value Expr
}

// ThrowStmt is `throw value`.
type ThrowStmt struct {
	NodeInfo
	Value Expr
}

// BreakStmt is `break [label]`.
type BreakStmt struct {
	NodeInfo
	Label string
}

// ContinueStmt is `continue [label]`.
type ContinueStmt struct {
	NodeInfo
	Label string
}

// FallthroughStmt is `fallthrough`.
type FallthroughStmt struct {
	NodeInfo
}

// DeferStmt is `defer { }`.
type DeferStmt struct {
	NodeInfo
	Body *CodeBlock
}

// CatchClause is `catch pattern { }`; Pattern is nil for a bare catch.
type CatchClause struct {
	Pattern Pattern
	Body    *CodeBlock
}

// DoStmt is `do { } catch { }`.
type DoStmt struct {
	NodeInfo
	Body    *CodeBlock
	Catches []CatchClause
}

// LabeledStmt is `label: loop`.
type LabeledStmt struct {
	NodeInfo
	Label string
	Stmt  Stmt
}

// RawStmt is a statement the front end could not model; its text passes through.
type RawStmt struct {
	NodeInfo
	Text string
}

func (*IfStmt) stmtNode()          {}
func (*GuardStmt) stmtNode()       {}
func (*SwitchStmt) stmtNode()      {}
func (*ForInStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()       {}
func (*RepeatWhileStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()      {}
func (*ThrowStmt) stmtNode()       {}
func (*BreakStmt) stmtNode()       {}
func (*ContinueStmt) stmtNode()    {}
func (*FallthroughStmt) stmtNode() {}
func (*DeferStmt) stmtNode()       {}
func (*DoStmt) stmtNode()          {}
func (*LabeledStmt) stmtNode()     {}
func (*RawStmt) stmtNode()         {}

// ---------- Conditions ----------

// ExprCondition is a boolean expression condition.
type ExprCondition struct {
	NodeInfo
	Expr Expr
}

// BindingCondition is an optional binding: `let x = expr` / `var x = expr`.
type BindingCondition struct {
	NodeInfo
	IsVar   bool
	Pattern Pattern
	Init    Expr
}

// CaseCondition is `case pattern = expr`.
type CaseCondition struct {
	NodeInfo
	Pattern Pattern
	Init    Expr
}

func (*ExprCondition) conditionNode()    {}
func (*BindingCondition) conditionNode() {}
func (*CaseCondition) conditionNode()    {}
