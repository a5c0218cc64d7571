package kotlin

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/leapstack-labs/swiftkt/pkg/core"
)

// Policy collects the naming-convention heuristics of the translator.
// They match on identifier text, not semantics, and can be overridden
// through configuration.
type Policy struct {
	// Functions whose name starts with TestPrefix get TestAnnotation above them.
	TestPrefix     string `koanf:"test_prefix"`
	TestAnnotation string `koanf:"test_annotation"`

	// A class inheriting from TestBase calls its no-arg constructor and
	// receives TestAnnotations.
	TestBase        string   `koanf:"test_base"`
	TestAnnotations []string `koanf:"test_annotations"`

	// A class inheriting from BridgeBase receives BridgeTemplate in its body.
	// The template is executed with .Name set to the class name.
	BridgeBase     string `koanf:"bridge_base"`
	BridgeTemplate string `koanf:"bridge_template"`

	// Structs conforming to any SerializableMarkers get SerializableAnnotation
	// and lose their inheritance clause.
	SerializableMarkers    []string `koanf:"serializable_markers"`
	SerializableAnnotation string   `koanf:"serializable_annotation"`

	// Supertypes never re-emitted on structs.
	ExcludedSupertypes []string `koanf:"excluded_supertypes"`

	// Variables whose name contains QueryBuilderSubstring and that are
	// initialized with a static string become QueryBuilderType instances.
	QueryBuilderSubstring string `koanf:"query_builder_substring"`
	QueryBuilderType      string `koanf:"query_builder_type"`

	DroppedLabelPrefixes []string `koanf:"dropped_label_prefixes"`
	DroppedLabels        []string `koanf:"dropped_labels"`
	ElidedMembers        []string `koanf:"elided_members"`
	ArgumentlessCalls    []string `koanf:"argumentless_calls"`
	DroppedAttributes    []string `koanf:"dropped_attributes"`
}

const defaultBridgeTemplate = `constructor(modelContext: ModelContext?, uid: String, source:DataObjectSource?) : super(modelContext, uid, source)
constructor(contextBearer: DataObject? = null) : super(contextBearer)

override fun init(modelContext: ModelContext?, uid: String, source: DataObjectSource?): {{.Name}} {
    return {{.Name}}(modelContext, uid, source)
}`

// DefaultPolicy returns the built-in heuristics.
func DefaultPolicy() *Policy {
	return &Policy{
		TestPrefix:     "test",
		TestAnnotation: "@Test",
		TestBase:       "BaseTest",
		TestAnnotations: []string{
			"@RunWith(UnitTestRunner::class)",
			"@Config(sdk = [24], application = UnitTestController::class)",
		},
		BridgeBase:             "DataObject",
		BridgeTemplate:         defaultBridgeTemplate,
		SerializableMarkers:    []string{"Codable", "Decodable"},
		SerializableAnnotation: "@JsonClass(generateAdapter = true)",
		ExcludedSupertypes:     []string{"Equatable"},
		QueryBuilderSubstring:  "clause",
		QueryBuilderType:       "StringBuilder",
		DroppedLabelPrefixes:   []string{"for", "by", "with"},
		DroppedLabels:          []string{"value", "params", "object"},
		ElidedMembers:          []string{"helper"},
		ArgumentlessCalls:      []string{"blockingWaitForExpectations"},
		DroppedAttributes:      []string{"escaping", "autoclosure", "discardableResult"},
	}
}

// Validate checks that the policy templates parse.
func (p *Policy) Validate() error {
	if p.BridgeTemplate == "" {
		return nil
	}
	if _, err := template.New("bridge").Parse(p.BridgeTemplate); err != nil {
		return fmt.Errorf("bridge_template: %w", err)
	}
	return nil
}

// IsTestFunction reports whether name follows the test naming convention.
func (p *Policy) IsTestFunction(name string) bool {
	return p.TestPrefix != "" && strings.HasPrefix(name, p.TestPrefix)
}

// IsQueryBuilder reports whether a variable initialized with init should
// become a builder instance.
func (p *Policy) IsQueryBuilder(name string, init core.Expr) bool {
	if p.QueryBuilderSubstring == "" || init == nil {
		return false
	}
	lit, ok := init.(*core.LiteralExpr)
	return ok && lit.Kind == core.LiteralStaticString &&
		strings.Contains(strings.ToLower(name), p.QueryBuilderSubstring)
}

// DropsLabel reports whether an argument label should be omitted at call sites.
func (p *Policy) DropsLabel(label string) bool {
	if slices.Contains(p.DroppedLabels, label) {
		return true
	}
	for _, prefix := range p.DroppedLabelPrefixes {
		if strings.HasPrefix(label, prefix) {
			return true
		}
	}
	return false
}

// ElidesMember reports whether a member access should collapse to its base.
func (p *Policy) ElidesMember(name string) bool {
	return slices.Contains(p.ElidedMembers, name)
}

// DropsArguments reports whether calls to name lose their arguments.
func (p *Policy) DropsArguments(name string) bool {
	return slices.Contains(p.ArgumentlessCalls, name)
}

// DropsAttribute reports whether an attribute is omitted from output.
func (p *Policy) DropsAttribute(name string) bool {
	return slices.Contains(p.DroppedAttributes, name)
}

// IsSerializable reports whether any supertype is a serialization marker.
func (p *Policy) IsSerializable(inheritance []core.Type) bool {
	return hasSupertype(inheritance, p.SerializableMarkers...)
}

// IsExcludedSupertype reports whether name is never re-emitted as a supertype.
func (p *Policy) IsExcludedSupertype(name string) bool {
	return slices.Contains(p.ExcludedSupertypes, name)
}

// Bridge renders the bridge members for a class named name.
func (p *Policy) Bridge(name string) ([]string, error) {
	tmpl, err := template.New("bridge").Parse(p.BridgeTemplate)
	if err != nil {
		return nil, fmt.Errorf("bridge_template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Name string }{name}); err != nil {
		return nil, fmt.Errorf("bridge_template: %w", err)
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), nil
}

func hasSupertype(inheritance []core.Type, names ...string) bool {
	for _, t := range inheritance {
		if slices.Contains(names, core.TypeNameOf(t)) {
			return true
		}
	}
	return false
}
