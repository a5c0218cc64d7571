package kotlin_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/kotlin"
)

func TestExpressions(t *testing.T) {
	tests := []struct {
		name string
		expr core.Expr
		want string
	}{
		{name: "nil coalescing", expr: bin("??", id("a"), id("b")), want: "a ?: b"},
		{name: "half-open range", expr: bin("..<", intLit("0"), id("n")), want: "0 until n"},
		{name: "closed range", expr: bin("...", intLit("1"), intLit("5")), want: "1..5"},
		{name: "forced unwrap", expr: &core.ForcedValueExpr{Expr: id("a")}, want: "a!!"},
		{
			name: "optional chain",
			expr: member(&core.OptionalChainingExpr{Expr: id("a")}, "b"),
			want: "a?.b",
		},
		{
			name: "optional chain propagates",
			expr: member(member(&core.OptionalChainingExpr{Expr: id("a")}, "b"), "c"),
			want: "a?.b?.c",
		},
		{
			name: "optional call",
			expr: call(&core.OptionalChainingExpr{Expr: id("handler")}),
			want: "handler?.invoke()",
		},
		{
			name: "ternary",
			expr: &core.TernaryExpr{Cond: id("a"), True: id("b"), False: id("c")},
			want: "if (a) b else c",
		},
		{
			name: "try optional",
			expr: &core.TryExpr{Kind: core.TryOptional, Expr: call(id("load"))},
			want: "try { load() } catch (e: Throwable) { null }",
		},
		{
			name: "try forced",
			expr: &core.TryExpr{Kind: core.TryForced, Expr: call(id("load"))},
			want: "load()",
		},
		{
			name: "conditional cast",
			expr: &core.TypeCastExpr{Kind: core.CastConditional, Expr: id("x"), Type: named("String")},
			want: "x as? String",
		},
		{
			name: "forced cast",
			expr: &core.TypeCastExpr{Kind: core.CastForced, Expr: id("x"), Type: named("String")},
			want: "x as String",
		},
		{
			name: "pair",
			expr: &core.TupleExpr{Elements: []core.Argument{arg("", id("a")), arg("", id("b"))}},
			want: "Pair(a, b)",
		},
		{name: "empty tuple", expr: &core.TupleExpr{}, want: "Unit"},
		{
			name: "subscript",
			expr: &core.SubscriptExpr{Base: id("xs"), Args: []core.Argument{arg("", intLit("0"))}},
			want: "xs[0]",
		},
		{name: "self member", expr: &core.SelfExpr{Member: "x"}, want: "this.x"},
		{name: "super call", expr: call(&core.SuperExpr{Member: "viewDidLoad"}), want: "super.viewDidLoad()"},
		{name: "implicit member", expr: &core.ImplicitMemberExpr{Name: "red"}, want: "Red"},
		{name: "nil", expr: &core.LiteralExpr{Kind: core.LiteralNil}, want: "null"},
		{
			name: "discarded result",
			expr: &core.AssignExpr{Left: &core.WildcardExpr{}, Right: call(id("f"))},
			want: "f()",
		},
		{
			name: "dropped labels",
			expr: call(id("f"), arg("value", intLit("1")), arg("forKey", strLit("k")), arg("count", intLit("2"))),
			want: `f(1, "k", count = 2)`,
		},
		{
			name: "array type constructor",
			expr: call(arrayLit(id("String"))),
			want: "mutableListOf<String>()",
		},
		{
			name: "dictionary type constructor",
			expr: call(&core.LiteralExpr{Kind: core.LiteralDictionary, Entries: []core.DictEntry{
				{Key: id("String"), Value: id("Int")},
			}}),
			want: "mutableMapOf<String, Int>()",
		},
		{
			name: "argumentless call",
			expr: call(id("blockingWaitForExpectations"), arg("timeout", intLit("5"))),
			want: "blockingWaitForExpectations()",
		},
		{
			name: "elided member",
			expr: call(member(member(id("x"), "helper"), "run")),
			want: "x.run()",
		},
		{name: "reserved member", expr: member(id("s"), "isNilOrEmpty"), want: "s.isNullOrEmpty()"},
		{
			name: "renamed call",
			expr: call(id("XCTAssertEqual"), arg("", id("a")), arg("", id("b"))),
			want: "assertEquals(a, b)",
		},
		{
			name: "renamed method",
			expr: call(member(id("name"), "hasPrefix"), arg("", strLit("a"))),
			want: `name.startsWith("a")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.expr))
		})
	}
}

func TestSequences(t *testing.T) {
	tests := []struct {
		name  string
		elems []core.SequenceElement
		want  string
	}{
		{
			name: "operators",
			elems: []core.SequenceElement{
				{Kind: core.SeqExpr, Expr: id("a")},
				{Kind: core.SeqBinaryOp, Op: "+"},
				{Kind: core.SeqExpr, Expr: id("b")},
				{Kind: core.SeqBinaryOp, Op: "??"},
				{Kind: core.SeqExpr, Expr: id("c")},
			},
			want: "a + b ?: c",
		},
		{
			name: "assigned ternary",
			elems: []core.SequenceElement{
				{Kind: core.SeqExpr, Expr: id("x")},
				{Kind: core.SeqAssign},
				{Kind: core.SeqExpr, Expr: id("a")},
				{Kind: core.SeqTernary, Expr: id("b")},
				{Kind: core.SeqExpr, Expr: id("c")},
			},
			want: "x = if (a) b else c",
		},
		{
			name: "cast",
			elems: []core.SequenceElement{
				{Kind: core.SeqExpr, Expr: id("x")},
				{Kind: core.SeqCast, Cast: core.CastConditional, Type: named("Int")},
			},
			want: "x as? Int",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, &core.SequenceExpr{Elements: tt.elems}))
		})
	}
}

func TestClosures(t *testing.T) {
	tests := []struct {
		name string
		expr core.Expr
		want string
	}{
		{
			name: "implicit parameter",
			expr: &core.FunctionCallExpr{
				Callee:   member(id("xs"), "map"),
				Trailing: &core.ClosureExpr{Statements: []core.Stmt{bin("*", &core.ImplicitParamExpr{}, intLit("2"))}},
			},
			want: "xs.map { it * 2 }",
		},
		{
			name: "named parameters after arguments",
			expr: &core.FunctionCallExpr{
				Callee: member(id("xs"), "reduce"),
				Args:   []core.Argument{arg("", intLit("0"))},
				Trailing: &core.ClosureExpr{
					Signature:  &core.ClosureSignature{HasParamClause: true, Params: []core.ClosureParam{{Name: "a"}, {Name: "b"}}},
					Statements: []core.Stmt{&core.ReturnStmt{Value: bin("+", id("a"), id("b"))}},
				},
			},
			want: "xs.reduce(0) { a, b -> a + b }",
		},
		{
			name: "empty",
			expr: &core.ClosureExpr{},
			want: "{}",
		},
		{
			name: "second implicit parameter",
			expr: &core.ImplicitParamExpr{Index: 1},
			want: "//FIXME: @swiftkt - implicit closure parameters beyond $0 are not supported\n$1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.expr))
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "member access is braced", raw: `"\(a.b)"`, want: `"${a.b}"`},
		{name: "simple name", raw: `"\(x)"`, want: `"$x"`},
		{name: "identifier follows", raw: `"\(x)y"`, want: `"${x}y"`},
		{name: "separator follows", raw: `"\(x) items"`, want: `"$x items"`},
		{name: "call", raw: `"\(f(x))"`, want: `"${f(x)}"`},
		{name: "self", raw: `"\(self.count)"`, want: `"${this.count}"`},
		{name: "nested string", raw: `"\(name ?? "none")"`, want: `"${name ?: "none"}"`},
		{name: "unparseable fragment is kept", raw: `"\(#line)"`, want: `"${#line}"`},
		{name: "dollar is escaped", raw: `"cost $5"`, want: `"cost \$5"`},
		{name: "unicode escape", raw: `"\u{E9}"`, want: `"\u00E9"`},
		{name: "astral unicode escape", raw: `"\u{1F600}"`, want: `"\uD83D\uDE00"`},
		{
			name: "escape beyond the unicode range is flagged",
			raw:  `"\u{110000}"`,
			want: `//FIXME: @swiftkt - invalid unicode escape: \u{110000}` + "\n" + `"\u{110000}"`,
		},
		{
			name: "surrogate escape is flagged",
			raw:  `"a\u{D800}b"`,
			want: `//FIXME: @swiftkt - invalid unicode escape: \u{D800}` + "\n" + `"a\u{D800}b"`,
		},
		{name: "other escapes pass through", raw: `"a\tb\n"`, want: `"a\tb\n"`},
		{name: "multiline", raw: `"""` + "\n" + `\(x)` + "\n" + `"""`, want: `"""` + "\n" + `$x` + "\n" + `"""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, interp(tt.raw)))
		})
	}
}

type failingFragments struct{}

func (failingFragments) ParseExpr(string) (core.Expr, error) {
	return nil, errors.New("no parser")
}

func TestStringLiterals_CustomFragmentParser(t *testing.T) {
	tr := newTranslator(t, kotlin.Config{Fragments: failingFragments{}})
	assert.Equal(t, `"${x}"`, renderWith(t, tr, interp(`"\(x)"`)))
}

func TestTypes(t *testing.T) {
	tests := []struct {
		name string
		typ  core.Type
		want string
	}{
		{name: "bool", typ: named("Bool"), want: "Boolean"},
		{name: "pair", typ: &core.TupleType{Elements: []core.TupleTypeElement{{Type: named("Int")}, {Type: named("String")}}}, want: "Pair<Int, String>"},
		{name: "array", typ: &core.ArrayType{Elem: named("String")}, want: "List<String>"},
		{
			name: "optional dictionary",
			typ:  &core.OptionalType{Wrapped: &core.DictionaryType{Key: named("String"), Value: named("Int")}},
			want: "Map<String, Int>?",
		},
		{
			name: "function",
			typ:  &core.FunctionType{Params: []core.FunctionTypeParam{{Type: named("Int")}}, Result: named("Void")},
			want: "(Int) -> Unit",
		},
		{
			name: "optional function",
			typ:  &core.OptionalType{Wrapped: &core.FunctionType{}},
			want: "(() -> Unit)?",
		},
		{name: "implicitly unwrapped", typ: &core.ImplicitlyUnwrappedType{Wrapped: named("View")}, want: "View"},
		{name: "metatype", typ: &core.MetatypeType{Type: named("Foo")}, want: "KClass<Foo>"},
		{name: "any object", typ: named("AnyObject"), want: "Any"},
		{name: "empty tuple", typ: &core.TupleType{}, want: "Unit"},
		{
			name: "qualified generic",
			typ: &core.TypeIdentifier{Names: []core.TypeName{
				{Name: "Swift"}, {Name: "Array", GenericArgs: []core.Type{named("Int")}},
			}},
			want: "Swift.Array<Int>",
		},
		{
			name: "triple",
			typ: &core.TupleType{Elements: []core.TupleTypeElement{
				{Name: "x", Type: named("Int")}, {Type: named("Int")}, {Type: named("Int")},
			}},
			want: "(x: Int, v2: Int, v3: Int)",
		},
		{
			name: "protocol composition",
			typ:  &core.ProtocolCompositionType{Types: []core.Type{named("A"), named("B")}},
			want: "//FIXME: @swiftkt - protocol composition types are not supported\nA & B",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderType(t, tt.typ))
		})
	}
}
