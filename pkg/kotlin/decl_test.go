package kotlin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/kotlin"
)

func TestStoredProperties(t *testing.T) {
	tests := []struct {
		name string
		decl core.Decl
		want string
	}{
		{
			name: "constant",
			decl: let(pat("x"), intLit("1")),
			want: "val x = 1",
		},
		{
			name: "variable",
			decl: varDecl(pat("count"), intLit("0")),
			want: "var count = 0",
		},
		{
			name: "collection literal variable becomes val",
			decl: varDecl(pat("xs"), arrayLit(intLit("1"), intLit("2"))),
			want: "val xs = mutableListOf(1, 2)",
		},
		{
			name: "dictionary literal",
			decl: let(pat("m"), &core.LiteralExpr{Kind: core.LiteralDictionary, Entries: []core.DictEntry{
				{Key: strLit("a"), Value: intLit("1")},
			}}),
			want: `val m = mutableMapOf("a" to 1)`,
		},
		{
			name: "optional variable defaults to null",
			decl: varDecl(typedPat("name", &core.OptionalType{Wrapped: named("String")}), nil),
			want: "var name: String? = null",
		},
		{
			name: "optional constant has no default",
			decl: let(typedPat("name", &core.OptionalType{Wrapped: named("String")}), nil),
			want: "val name: String?",
		},
		{
			name: "narrowed setter",
			decl: varDecl(pat("count"), intLit("0"), core.ModPrivateSet),
			want: "var count = 0\n    private set",
		},
		{
			name: "fileprivate maps to private",
			decl: let(pat("k"), intLit("1"), core.ModFileprivate),
			want: "private val k = 1",
		},
		{
			name: "lazy",
			decl: varDecl(pat("x"), call(id("compute")), core.ModLazy),
			want: "val x by lazy { compute() }",
		},
		{
			name: "implicitly unwrapped becomes lateinit",
			decl: &core.VariableDecl{
				Attributes: core.Attributes{{Name: "IBOutlet"}},
				Modifiers:  core.Modifiers{core.ModWeak},
				Body: &core.InitializerListBody{Initializers: []core.PatternInitializer{{
					Pattern: typedPat("label", &core.ImplicitlyUnwrappedType{Wrapped: named("UILabel")}),
				}}},
			},
			want: "@IBOutlet lateinit var label: UILabel",
		},
		{
			name: "enum shorthand is qualified by the declared type",
			decl: let(typedPat("d", named("Direction")), &core.ImplicitMemberExpr{Name: "north"}),
			want: "val d: Direction = Direction.North",
		},
		{
			name: "octal literal",
			decl: let(pat("mode"), intLit("0o755")),
			want: "val mode = 493",
		},
		{
			name: "query builder",
			decl: varDecl(pat("whereClause"), strLit("a = 1")),
			want: `val whereClause = StringBuilder("a = 1")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.decl))
		})
	}
}

func TestComputedProperties(t *testing.T) {
	tests := []struct {
		name string
		body core.VarBody
		want string
	}{
		{
			name: "single expression getter",
			body: &core.ComputedBody{
				Name:  "area",
				Type:  ann(named("Int")),
				Block: block(&core.ReturnStmt{Value: bin("*", id("w"), id("h"))}),
			},
			want: "val area: Int\n    get() = w * h",
		},
		{
			name: "getter and setter",
			body: &core.GetterSetterBody{
				Name:   "v",
				Type:   ann(named("Int")),
				Getter: block(&core.ReturnStmt{Value: id("_v")}),
				Setter: &core.SetterClause{Block: block(&core.AssignExpr{Left: id("_v"), Right: id("newValue")})},
			},
			want: "var v: Int\n    get() = _v\n    set(newValue) {\n        _v = newValue\n    }",
		},
		{
			name: "observers write the backing field between their bodies",
			body: &core.ObserverBody{
				Name:   "score",
				Type:   ann(named("Int")),
				Init:   intLit("0"),
				DidSet: &core.ObserverClause{Block: block(call(id("update")))},
			},
			want: "var score: Int = 0\n" +
				"    set(newValue) {\n" +
				"        val oldValue = field\n" +
				"        field = newValue\n" +
				"        update()\n" +
				"    }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, &core.VariableDecl{Body: tt.body}))
		})
	}
}

func TestFunctions(t *testing.T) {
	withDefault := core.Parameter{LocalName: "x", Type: ann(named("Int")), Default: intLit("1")}

	tests := []struct {
		name string
		decl *core.FunctionDecl
		want string
	}{
		{
			name: "defaults are kept",
			decl: fn("f", block(), withDefault),
			want: "fun f(x: Int = 1) {}",
		},
		{
			name: "defaults are stripped on override",
			decl: &core.FunctionDecl{
				Modifiers: core.Modifiers{core.ModOverride},
				Name:      "f",
				Signature: core.Signature{Params: []core.Parameter{
					withDefault,
					{LocalName: "y", Type: ann(named("String")), Default: strLit("a, b")},
				}},
				Body: block(),
			},
			want: "override fun f(x: Int, y: String) {}",
		},
		{
			name: "single return becomes expression body",
			decl: &core.FunctionDecl{
				Name:      "area",
				Signature: core.Signature{Result: named("Int")},
				Body:      block(&core.ReturnStmt{Value: bin("*", id("w"), id("h"))}),
			},
			want: "fun area(): Int = w * h",
		},
		{
			name: "block body",
			decl: &core.FunctionDecl{
				Name:      "load",
				Signature: core.Signature{Throws: true, Result: named("Data")},
				Body: block(
					let(pat("d"), call(id("read"))),
					&core.ReturnStmt{Value: id("d")},
				),
			},
			want: "fun load(): Data {\n    val d = read()\n    return d\n}",
		},
		{
			name: "generic",
			decl: &core.FunctionDecl{
				Name:          "identity",
				GenericParams: []core.GenericParam{{Name: "T"}},
				Signature: core.Signature{
					Params: []core.Parameter{{LocalName: "v", Type: ann(named("T"))}},
					Result: named("T"),
				},
				Body: block(&core.ReturnStmt{Value: id("v")}),
			},
			want: "fun <T> identity(v: T): T = v",
		},
		{
			name: "variadic",
			decl: fn("sum", block(), core.Parameter{LocalName: "xs", Type: ann(named("Int")), Variadic: true}),
			want: "fun sum(vararg xs: Int) {}",
		},
		{
			name: "test naming convention",
			decl: fn("testLogin", block()),
			want: "@Test\nfun testLogin() {}",
		},
		{
			name: "dropped attribute",
			decl: &core.FunctionDecl{Attributes: core.Attributes{{Name: "discardableResult"}, {Name: "objc"}}, Name: "f", Body: block()},
			want: "@objc fun f() {}",
		},
		{
			name: "void result",
			decl: &core.FunctionDecl{Name: "f", Signature: core.Signature{Result: named("Void")}, Body: block()},
			want: "fun f() {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.decl))
		})
	}
}

func TestInitializers(t *testing.T) {
	tests := []struct {
		name string
		decl *core.InitializerDecl
		want string
	}{
		{
			name: "super delegation is hoisted",
			decl: &core.InitializerDecl{
				Modifiers: core.Modifiers{core.ModOverride},
				Params:    []core.Parameter{{LocalName: "x", Type: ann(named("Int"))}},
				Body: block(
					&core.FunctionCallExpr{Callee: &core.SuperExpr{Init: true}, Args: []core.Argument{arg("x", id("x"))}},
					&core.AssignExpr{Left: &core.SelfExpr{Member: "y"}, Right: id("x")},
				),
			},
			want: "constructor(x: Int) : super(x = x) {\n    this.y = x\n}",
		},
		{
			name: "delegation only",
			decl: &core.InitializerDecl{
				Modifiers: core.Modifiers{core.ModConvenience},
				Body:      block(&core.FunctionCallExpr{Callee: &core.SelfExpr{Init: true}, Args: []core.Argument{arg("", intLit("0"))}}),
			},
			want: "constructor() : this(0)",
		},
		{
			name: "failable",
			decl: &core.InitializerDecl{Kind: core.InitOptional, Body: block()},
			want: "//FIXME: @swiftkt - failable initializers are not supported\nconstructor() {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.decl))
		})
	}
}

func TestStructs(t *testing.T) {
	tests := []struct {
		name string
		decl *core.StructDecl
		want string
	}{
		{
			name: "primary constructor holds stored properties only",
			decl: &core.StructDecl{Name: "Point", Members: []core.Decl{
				let(typedPat("x", named("Int")), nil),
				fn("describe", block()),
			}},
			want: "data class Point(val x: Int) {\n    fun describe() {}\n}",
		},
		{
			name: "several fields",
			decl: &core.StructDecl{Name: "P", Members: []core.Decl{
				let(typedPat("x", named("Int")), nil),
				varDecl(typedPat("y", named("Int")), intLit("0")),
			}},
			want: "data class P(\n    val x: Int,\n    var y: Int = 0\n)",
		},
		{
			name: "one declaration binding several fields",
			decl: &core.StructDecl{Name: "P", Members: []core.Decl{
				&core.VariableDecl{Body: &core.InitializerListBody{Initializers: []core.PatternInitializer{
					{Pattern: typedPat("x", named("Int"))},
					{Pattern: typedPat("y", named("Int"))},
				}}},
			}},
			want: "data class P(\n    var x: Int,\n    var y: Int\n)",
		},
		{
			name: "computed statics stay plain values",
			decl: &core.StructDecl{Name: "S", Members: []core.Decl{
				let(typedPat("a", named("Int")), nil),
				let(pat("shared"), call(id("make")), core.ModStatic),
			}},
			want: "data class S(val a: Int) {\n    companion object {\n        val shared = make()\n    }\n}",
		},
		{
			name: "literal statics become constants",
			decl: &core.StructDecl{Name: "S", Members: []core.Decl{
				let(typedPat("a", named("Int")), nil),
				let(pat("max"), intLit("10"), core.ModStatic),
			}},
			want: "data class S(val a: Int) {\n    companion object {\n        const val max = 10\n    }\n}",
		},
		{
			name: "serializable marker",
			decl: &core.StructDecl{
				Name:        "User",
				Inheritance: []core.Type{named("Codable")},
				Members:     []core.Decl{let(typedPat("id", named("Int")), nil)},
			},
			want: "@JsonClass(generateAdapter = true)\ndata class User(val id: Int)",
		},
		{
			name: "excluded supertypes",
			decl: &core.StructDecl{
				Name:        "P",
				Inheritance: []core.Type{named("Equatable"), named("Named")},
				Members:     []core.Decl{let(typedPat("x", named("Int")), nil)},
			},
			want: "data class P(val x: Int) : Named",
		},
		{
			name: "empty",
			decl: &core.StructDecl{Name: "Empty"},
			want: "class Empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.decl))
		})
	}
}

func TestClasses(t *testing.T) {
	t.Run("members are spaced", func(t *testing.T) {
		n := &core.ClassDecl{
			Modifiers:   core.Modifiers{core.ModFinal},
			Name:        "Foo",
			Inheritance: []core.Type{named("Bar")},
			Members:     []core.Decl{varDecl(pat("x"), intLit("0")), fn("f", block())},
		}
		assert.Equal(t, "class Foo : Bar {\n    var x = 0\n\n    fun f() {}\n}", render(t, n))
	})

	t.Run("statics move to a companion object", func(t *testing.T) {
		n := &core.ClassDecl{Name: "A", Members: []core.Decl{
			let(pat("shared"), call(id("A")), core.ModStatic),
			fn("f", block()),
		}}
		want := "class A {\n" +
			"    fun f() {}\n" +
			"\n" +
			"    companion object {\n" +
			"        val shared = A()\n" +
			"    }\n" +
			"}"
		assert.Equal(t, want, render(t, n))
	})

	t.Run("companion in an otherwise empty class", func(t *testing.T) {
		n := &core.ClassDecl{Name: "A", Members: []core.Decl{let(pat("n"), intLit("1"), core.ModStatic)}}
		assert.Equal(t, "class A {\n    companion object {\n        val n = 1\n    }\n}", render(t, n))
	})

	t.Run("test base", func(t *testing.T) {
		n := &core.ClassDecl{
			Name:        "LoginTests",
			Inheritance: []core.Type{named("BaseTest")},
			Members:     []core.Decl{fn("testLogin", block())},
		}
		want := "@RunWith(UnitTestRunner::class)\n" +
			"@Config(sdk = [24], application = UnitTestController::class)\n" +
			"class LoginTests : BaseTest() {\n" +
			"    @Test\n" +
			"    fun testLogin() {}\n" +
			"}"
		assert.Equal(t, want, render(t, n))
	})

	t.Run("bridge template", func(t *testing.T) {
		policy := kotlin.DefaultPolicy()
		policy.BridgeTemplate = "fun make(): {{.Name}} = {{.Name}}()"
		tr := newTranslator(t, kotlin.Config{Policy: policy})

		n := &core.ClassDecl{Name: "Item", Inheritance: []core.Type{named("DataObject")}}
		assert.Equal(t, "class Item : DataObject {\n    fun make(): Item = Item()\n}", renderWith(t, tr, n))
	})
}

func TestProtocols(t *testing.T) {
	n := &core.ProtocolDecl{
		Name:        "Named",
		Inheritance: []core.Type{named("AnyObject")},
		Members: []core.ProtocolMember{
			&core.ProtocolProperty{Name: "name", Type: ann(named("String"))},
			&core.ProtocolProperty{Name: "count", Type: ann(named("Int")), HasSetter: true},
			&core.ProtocolMethod{Name: "greet", Signature: core.Signature{Result: named("String")}},
		},
	}
	want := "interface Named {\n" +
		"    val name: String\n" +
		"    var count: Int\n" +
		"\n" +
		"    fun greet(): String\n" +
		"}"
	assert.Equal(t, want, render(t, n))

	assoc := &core.ProtocolDecl{Name: "Box", Members: []core.ProtocolMember{
		&core.ProtocolAssociatedType{Name: "Item"},
	}}
	assert.Equal(t,
		"interface Box {\n    //FIXME: @swiftkt - associated types are not supported\n    associatedtype Item\n}",
		render(t, assoc))
}

func TestExtensions(t *testing.T) {
	t.Run("members become receiver-qualified declarations", func(t *testing.T) {
		n := &core.ExtensionDecl{
			Type: named("String"),
			Members: []core.Decl{
				&core.FunctionDecl{
					Name:      "shout",
					Signature: core.Signature{Result: named("String")},
					Body:      block(&core.ReturnStmt{Value: call(id("uppercased"))}),
				},
				&core.VariableDecl{Body: &core.ComputedBody{
					Name:  "isBlank",
					Type:  ann(named("Bool")),
					Block: block(&core.ReturnStmt{Value: member(id("this"), "isEmpty")}),
				}},
			},
		}
		want := "fun String.shout(): String = uppercase()\n" +
			"\n" +
			"val String.isBlank: Boolean\n" +
			"    get() = this.isEmpty"
		assert.Equal(t, want, render(t, n))
	})

	t.Run("static members go through the companion and inherit access", func(t *testing.T) {
		n := &core.ExtensionDecl{
			Modifiers: core.Modifiers{core.ModPublic},
			Type:      named("Config"),
			Members: []core.Decl{&core.FunctionDecl{
				Modifiers: core.Modifiers{core.ModStatic},
				Name:      "make",
				Signature: core.Signature{Result: named("Config")},
				Body:      block(&core.ReturnStmt{Value: call(id("Config"))}),
			}},
		}
		assert.Equal(t, "public fun Config.Companion.make(): Config = Config()", render(t, n))
	})

	t.Run("every bound name is qualified", func(t *testing.T) {
		n := &core.ExtensionDecl{
			Type: named("Foo"),
			Members: []core.Decl{
				&core.ConstantDecl{
					Modifiers: core.Modifiers{core.ModStatic},
					Initializers: []core.PatternInitializer{
						{Pattern: pat("a"), Init: intLit("1")},
						{Pattern: pat("b"), Init: intLit("2")},
					},
				},
				&core.ConstantDecl{Initializers: []core.PatternInitializer{
					{Pattern: pat("c"), Init: intLit("1")},
					{Pattern: pat("e"), Init: intLit("2")},
				}},
			},
		}
		want := "val Foo.Companion.a = 1\n" +
			"\n" +
			"val Foo.Companion.b = 2\n" +
			"\n" +
			"val Foo.c = 1\n" +
			"\n" +
			"val Foo.e = 2"
		assert.Equal(t, want, render(t, n))
	})

	t.Run("inheritance is flagged", func(t *testing.T) {
		n := &core.ExtensionDecl{Type: named("Foo"), Inheritance: []core.Type{named("Named")}}
		assert.Equal(t, "//FIXME: @swiftkt - extension inheritance is not supported: Named", render(t, n))
	})
}

func TestOtherDeclarations(t *testing.T) {
	tests := []struct {
		name string
		decl core.Decl
		want string
	}{
		{
			name: "import is dropped",
			decl: &core.ImportDecl{Path: "Foundation"},
			want: "",
		},
		{
			name: "typealias",
			decl: &core.TypealiasDecl{Name: "Handler", Type: &core.FunctionType{
				Params: []core.FunctionTypeParam{{Type: named("Int")}},
				Result: named("Void"),
			}},
			want: "typealias Handler = (Int) -> Unit",
		},
		{
			name: "deinit",
			decl: &core.DeinitializerDecl{},
			want: "//FIXME: @swiftkt - deinitializers are not supported\ndeinit {}",
		},
		{
			name: "raw declaration passes through",
			decl: &core.RawDecl{Text: "precedencegroup X {}"},
			want: "precedencegroup X {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.decl))
		})
	}
}
