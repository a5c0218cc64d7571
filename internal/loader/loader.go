// Package loader reads Swift syntax trees from YAML or JSON documents.
//
// Every node of an interface-typed field is a mapping with a `node` key
// naming its Go type (FunctionDecl, IdentifierExpr, ...). Other keys match
// struct fields case-insensitively, with underscores ignored, so both
// `generic_params` and `genericParams` fill GenericParams. Unknown keys are
// rejected. Nodes without an `id` receive a fresh UUID.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/leapstack-labs/swiftkt/pkg/core"
	"github.com/leapstack-labs/swiftkt/pkg/token"
	"gopkg.in/yaml.v3"
)

// Extensions lists the document file extensions the loader accepts.
var Extensions = []string{".yaml", ".yml", ".json"}

// DecodeError reports a malformed document.
type DecodeError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *DecodeError) Error() string {
	if e.File != "" {
		if e.Line > 0 {
			return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// LoadFile decodes the document at path. The file name defaults to the
// path's base name without extension.
func LoadFile(path string) (*core.File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.File = path
			return nil, de
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// Decode reads a single document describing a core.File.
func Decode(r io.Reader) (*core.File, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DecodeError{Message: "empty document"}
		}
		return nil, &DecodeError{Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	f := &core.File{}
	d := newDecoder()
	if err := d.decode(&doc, reflect.ValueOf(f).Elem()); err != nil {
		return nil, err
	}
	return f, nil
}

var (
	nodeInfoType       = reflect.TypeOf(core.NodeInfo{})
	typeIdentifierType = reflect.TypeOf(core.TypeIdentifier{})
	attributeType      = reflect.TypeOf(core.Attribute{})
	typeInterface      = reflect.TypeOf((*core.Type)(nil)).Elem()
)

type decoder struct {
	fields map[reflect.Type]map[string][]int
}

func newDecoder() *decoder {
	return &decoder{fields: make(map[reflect.Type]map[string][]int)}
}

func (d *decoder) decode(n *yaml.Node, v reflect.Value) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return d.decode(n.Content[0], v)
	case yaml.AliasNode:
		return d.decode(n.Alias, v)
	}
	if n.Tag == "!!null" {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface:
		return d.decodeNode(n, v)
	case reflect.Ptr:
		p := reflect.New(v.Type().Elem())
		if err := d.decode(n, p.Elem()); err != nil {
			return err
		}
		v.Set(p)
		return nil
	case reflect.Struct:
		return d.decodeStruct(n, v)
	case reflect.Slice:
		if n.Kind != yaml.SequenceNode {
			return errorf(n, "expected a list for %s", v.Type())
		}
		s := reflect.MakeSlice(v.Type(), len(n.Content), len(n.Content))
		for i, item := range n.Content {
			if err := d.decode(item, s.Index(i)); err != nil {
				return err
			}
		}
		v.Set(s)
		return nil
	}
	return d.decodeScalar(n, v)
}

// discriminator is the mapping key naming a node's concrete type.
const discriminator = "node"

// decodeNode fills an interface-typed field from a kind-tagged mapping.
// Plain strings are accepted where a type is expected.
func (d *decoder) decodeNode(n *yaml.Node, v reflect.Value) error {
	if n.Kind == yaml.ScalarNode && v.Type() == typeInterface {
		v.Set(reflect.ValueOf(d.namedType(n.Value)))
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return errorf(n, "expected a %s node", v.Type().Name())
	}
	kind := ""
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == discriminator {
			kind = n.Content[i+1].Value
			break
		}
	}
	if kind == "" {
		return errorf(n, "missing %s key for %s", discriminator, v.Type().Name())
	}
	typ, ok := kinds[kind]
	if !ok {
		return errorf(n, "unknown node kind %q", kind)
	}
	ptr := reflect.New(typ)
	if !ptr.Type().Implements(v.Type()) {
		return errorf(n, "kind %s is not a %s", kind, v.Type().Name())
	}
	if err := d.decodeStruct(n, ptr.Elem()); err != nil {
		return err
	}
	v.Set(ptr)
	return nil
}

func (d *decoder) decodeStruct(n *yaml.Node, v reflect.Value) error {
	if n.Kind == yaml.ScalarNode {
		switch v.Type() {
		case typeIdentifierType:
			v.Set(reflect.ValueOf(d.namedType(n.Value)).Elem())
			return nil
		case attributeType:
			v.Set(reflect.ValueOf(core.Attribute{Name: strings.TrimPrefix(n.Value, "@")}))
			return nil
		}
	}
	if n.Kind != yaml.MappingNode {
		return errorf(n, "expected a mapping for %s", v.Type().Name())
	}
	fields := d.fieldsOf(v.Type())
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Value == discriminator {
			continue
		}
		index, ok := fields[normalize(key.Value)]
		if !ok {
			return errorf(key, "unknown field %q in %s", key.Value, v.Type().Name())
		}
		if err := d.decode(val, v.FieldByIndex(index)); err != nil {
			return err
		}
	}
	if info := v.FieldByName("NodeInfo"); info.IsValid() && info.Type() == nodeInfoType {
		assignID(info.Addr().Interface().(*core.NodeInfo))
	}
	return nil
}

func (d *decoder) decodeScalar(n *yaml.Node, v reflect.Value) error {
	if n.Kind != yaml.ScalarNode {
		return errorf(n, "expected a scalar for %s", v.Type())
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(n.Value)
	case reflect.Bool:
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return errorf(n, "invalid boolean %q", n.Value)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := enumValue(v.Type(), n.Value)
		if err != nil {
			return errorf(n, "%v", err)
		}
		if v.CanInt() {
			v.SetInt(i)
		} else {
			v.SetUint(uint64(i)) //nolint:gosec // enum values are small
		}
	default:
		return errorf(n, "cannot decode into %s", v.Type())
	}
	return nil
}

func enumValue(t reflect.Type, s string) (int64, error) {
	if names, ok := enumNames[t]; ok {
		if i, ok := names[strings.ToLower(s)]; ok {
			return i, nil
		}
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", t.Name(), s)
	}
	return i, nil
}

// namedType builds a type identifier from dotted text such as Swift.Int.
func (d *decoder) namedType(text string) *core.TypeIdentifier {
	parts := strings.Split(text, ".")
	ti := &core.TypeIdentifier{Names: make([]core.TypeName, len(parts))}
	for i, p := range parts {
		ti.Names[i] = core.TypeName{Name: p}
	}
	assignID(&ti.NodeInfo)
	return ti
}

// fieldsOf indexes the fields of t by normalized name, promoting the
// fields of embedded structs.
func (d *decoder) fieldsOf(t reflect.Type) map[string][]int {
	if m, ok := d.fields[t]; ok {
		return m
	}
	m := make(map[string][]int)
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		key := normalize(f.Name)
		if _, taken := m[key]; !taken || len(f.Index) < len(m[key]) {
			m[key] = f.Index
		}
	}
	d.fields[t] = m
	return m
}

func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

func assignID(info *core.NodeInfo) {
	if info.ID == "" {
		info.ID = token.NodeID(uuid.NewString())
	}
}

func errorf(n *yaml.Node, format string, args ...any) error {
	return &DecodeError{Line: n.Line, Column: n.Column, Message: fmt.Sprintf(format, args...)}
}
