package loader

import (
	"reflect"

	"github.com/leapstack-labs/swiftkt/pkg/core"
)

// kinds maps the `node` discriminator of a document node to its Go type.
var kinds = registry(
	// declarations
	&core.ImportDecl{}, &core.TypealiasDecl{}, &core.ConstantDecl{}, &core.VariableDecl{},
	&core.FunctionDecl{}, &core.InitializerDecl{}, &core.DeinitializerDecl{},
	&core.ClassDecl{}, &core.StructDecl{}, &core.ProtocolDecl{}, &core.ExtensionDecl{},
	&core.EnumDecl{}, &core.RawDecl{},
	&core.InitializerListBody{}, &core.ComputedBody{}, &core.GetterSetterBody{}, &core.ObserverBody{},
	&core.ProtocolProperty{}, &core.ProtocolMethod{}, &core.ProtocolAssociatedType{},

	// statements
	&core.IfStmt{}, &core.GuardStmt{}, &core.SwitchStmt{}, &core.ForInStmt{}, &core.WhileStmt{},
	&core.RepeatWhileStmt{}, &core.ReturnStmt{}, &core.ThrowStmt{}, &core.BreakStmt{},
	&core.ContinueStmt{}, &core.FallthroughStmt{}, &core.DeferStmt{}, &core.DoStmt{},
	&core.LabeledStmt{}, &core.RawStmt{},
	&core.ExprCondition{}, &core.BindingCondition{}, &core.CaseCondition{},

	// expressions
	&core.IdentifierExpr{}, &core.ImplicitParamExpr{}, &core.LiteralExpr{}, &core.SelfExpr{},
	&core.SuperExpr{}, &core.ImplicitMemberExpr{}, &core.ExplicitMemberExpr{},
	&core.FunctionCallExpr{}, &core.ClosureExpr{}, &core.BinaryExpr{}, &core.PrefixExpr{},
	&core.PostfixExpr{}, &core.AssignExpr{}, &core.SequenceExpr{}, &core.TernaryExpr{},
	&core.TryExpr{}, &core.ForcedValueExpr{}, &core.OptionalChainingExpr{}, &core.TypeCastExpr{},
	&core.ParenExpr{}, &core.TupleExpr{}, &core.SubscriptExpr{}, &core.WildcardExpr{}, &core.RawExpr{},

	// types
	&core.TypeIdentifier{}, &core.ArrayType{}, &core.DictionaryType{}, &core.OptionalType{},
	&core.ImplicitlyUnwrappedType{}, &core.TupleType{}, &core.FunctionType{},
	&core.ProtocolCompositionType{}, &core.MetatypeType{}, &core.AnyType{}, &core.SelfType{},

	// patterns
	&core.IdentifierPattern{}, &core.WildcardPattern{}, &core.TuplePattern{}, &core.EnumCasePattern{},
	&core.OptionalPattern{}, &core.ExpressionPattern{}, &core.ValueBindingPattern{}, &core.TypeCastPattern{},
)

func registry(nodes ...core.Node) map[string]reflect.Type {
	m := make(map[string]reflect.Type, len(nodes))
	for _, n := range nodes {
		t := reflect.TypeOf(n).Elem()
		m[t.Name()] = t
	}
	return m
}

// enumNames spells the integer enumerations of the syntax tree. Documents
// may use either the name or the number.
var enumNames = map[reflect.Type]map[string]int64{
	reflect.TypeOf(core.LiteralKind(0)): {
		"nil":                 int64(core.LiteralNil),
		"bool":                int64(core.LiteralBool),
		"integer":             int64(core.LiteralInteger),
		"float":               int64(core.LiteralFloat),
		"string":              int64(core.LiteralStaticString),
		"interpolated_string": int64(core.LiteralInterpolatedString),
		"array":               int64(core.LiteralArray),
		"dictionary":          int64(core.LiteralDictionary),
	},
	reflect.TypeOf(core.InitKind(0)): {
		"init":  int64(core.InitNonFailable),
		"init?": int64(core.InitOptional),
		"init!": int64(core.InitImplicitlyUnwrapped),
	},
	reflect.TypeOf(core.SeqElemKind(0)): {
		"expr":    int64(core.SeqExpr),
		"binary":  int64(core.SeqBinaryOp),
		"assign":  int64(core.SeqAssign),
		"ternary": int64(core.SeqTernary),
		"cast":    int64(core.SeqCast),
	},
	reflect.TypeOf(core.TryKind(0)): {
		"try":  int64(core.TryPlain),
		"try?": int64(core.TryOptional),
		"try!": int64(core.TryForced),
	},
	reflect.TypeOf(core.CastKind(0)): {
		"is":  int64(core.CastCheck),
		"as":  int64(core.CastPlain),
		"as?": int64(core.CastConditional),
		"as!": int64(core.CastForced),
	},
}
