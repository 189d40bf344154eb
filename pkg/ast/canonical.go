package ast

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// MarshalNode renders the canonical structural form of node: a JSON object holding "kind", "loc"
// and then every declared field of the node in declaration order. Absent optional children and
// absent locations are rendered as null, child lists as arrays.
//
//	{"kind":"Name","loc":{"start":2,"end":3},"value":"a"}
func MarshalNode(node Node) ([]byte, error) {
	e := &canonicalEncoder{}
	out := e.encode(node)
	if e.err != nil {
		return nil, e.err
	}
	return out, nil
}

// Fingerprint hashes the canonical form of node.
func Fingerprint(node Node) (uint64, error) {
	data, err := MarshalNode(node)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

// Equal reports whether a and b have the same canonical form, locations included.
func Equal(a, b Node) bool {
	left, err := Fingerprint(a)
	if err != nil {
		return false
	}
	right, err := Fingerprint(b)
	if err != nil {
		return false
	}
	return left == right
}

var null = []byte("null")

type canonicalEncoder struct {
	err error
}

// object writes the fields of one node in the order they are added
type object struct {
	e   *canonicalEncoder
	buf []byte
}

func (e *canonicalEncoder) open(node Node) *object {
	o := &object{e: e, buf: append(make([]byte, 0, 64), '{')}
	o.set("kind", node.Kind().String())
	loc := node.Location()
	if loc == nil {
		o.raw("loc", null)
	} else {
		o.raw("loc", fmt.Appendf(nil, `{"start":%d,"end":%d}`, loc.Start, loc.End))
	}
	return o
}

func (o *object) key(key string) {
	if len(o.buf) > 1 {
		o.buf = append(o.buf, ',')
	}
	o.buf = append(o.buf, '"')
	o.buf = append(o.buf, key...)
	o.buf = append(o.buf, '"', ':')
}

func (o *object) set(key string, value interface{}) *object {
	if o.e.err != nil {
		return o
	}
	o.key(key)
	switch v := value.(type) {
	case bool:
		o.buf = strconv.AppendBool(o.buf, v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			o.e.err = err
			return o
		}
		o.buf = append(o.buf, data...)
	}
	return o
}

func (o *object) raw(key string, value []byte) *object {
	if o.e.err != nil {
		return o
	}
	o.key(key)
	o.buf = append(o.buf, value...)
	return o
}

func (o *object) node(key string, child Node) *object {
	return o.raw(key, o.e.encode(child))
}

func (o *object) close() []byte {
	return append(o.buf, '}')
}

func list[T Node](o *object, key string, children []T) *object {
	items := []byte{'['}
	for i := range children {
		if i > 0 {
			items = append(items, ',')
		}
		items = append(items, o.e.encode(children[i])...)
	}
	return o.raw(key, append(items, ']'))
}

func (e *canonicalEncoder) encode(node Node) []byte {
	if e.err != nil {
		return null
	}
	if IsNil(node) {
		return null
	}
	o := e.open(node)
	switch n := node.(type) {
	case *Document:
		list(o, "definitions", n.Definitions)
	case *OperationDefinition:
		o.set("operation", n.Operation.Name()).node("name", n.Name)
		list(o, "variableDefinitions", n.VariableDefinitions)
		list(o, "directives", n.Directives)
		o.node("selectionSet", n.SelectionSet)
	case *FragmentDefinition:
		o.node("name", n.Name)
		list(o, "variableDefinitions", n.VariableDefinitions)
		o.node("typeCondition", n.TypeCondition)
		list(o, "directives", n.Directives)
		o.node("selectionSet", n.SelectionSet)
	case *VariableDefinition:
		o.node("variable", n.Variable).node("type", n.Type).node("defaultValue", n.DefaultValue)
		list(o, "directives", n.Directives)
	case *SelectionSet:
		list(o, "selections", n.Selections)
	case *Field:
		o.node("alias", n.Alias).node("name", n.Name)
		list(o, "arguments", n.Arguments)
		list(o, "directives", n.Directives)
		o.node("selectionSet", n.SelectionSet)
	case *FragmentSpread:
		o.node("name", n.Name)
		list(o, "directives", n.Directives)
	case *InlineFragment:
		o.node("typeCondition", n.TypeCondition)
		list(o, "directives", n.Directives)
		o.node("selectionSet", n.SelectionSet)
	case *Argument:
		o.node("name", n.Name).node("value", n.Value)
	case *Directive:
		o.node("name", n.Name)
		list(o, "arguments", n.Arguments)
	case *Name:
		o.set("value", n.Value)
	case *Variable:
		o.node("name", n.Name)
	case *IntValue:
		o.set("raw", n.Raw)
	case *FloatValue:
		o.set("raw", n.Raw)
	case *StringValue:
		o.set("value", n.Value).set("block", n.Block)
	case *BooleanValue:
		o.set("value", n.Value)
	case *NullValue:
	case *EnumValue:
		o.set("name", n.Name)
	case *ListValue:
		list(o, "values", n.Values)
	case *ObjectValue:
		list(o, "fields", n.Fields)
	case *ObjectField:
		o.node("name", n.Name).node("value", n.Value)
	case *NamedType:
		o.node("name", n.Name)
	case *ListType:
		o.node("type", n.Type)
	case *NonNullType:
		o.node("type", n.Type)
	case *SchemaDefinition:
		o.node("description", n.Description)
		list(o, "directives", n.Directives)
		list(o, "operationTypes", n.OperationTypes)
	case *OperationTypeDefinition:
		o.set("operation", n.Operation.Name()).node("type", n.Type)
	case *ScalarTypeDefinition:
		o.node("description", n.Description).node("name", n.Name)
		list(o, "directives", n.Directives)
	case *ObjectTypeDefinition:
		o.node("description", n.Description).node("name", n.Name)
		list(o, "interfaces", n.Interfaces)
		list(o, "directives", n.Directives)
		list(o, "fields", n.Fields)
	case *FieldDefinition:
		o.node("description", n.Description).node("name", n.Name)
		list(o, "arguments", n.Arguments)
		o.node("type", n.Type)
		list(o, "directives", n.Directives)
	case *InputValueDefinition:
		o.node("description", n.Description).node("name", n.Name).node("type", n.Type).node("defaultValue", n.DefaultValue)
		list(o, "directives", n.Directives)
	case *InterfaceTypeDefinition:
		o.node("description", n.Description).node("name", n.Name)
		list(o, "interfaces", n.Interfaces)
		list(o, "directives", n.Directives)
		list(o, "fields", n.Fields)
	case *UnionTypeDefinition:
		o.node("description", n.Description).node("name", n.Name)
		list(o, "directives", n.Directives)
		list(o, "types", n.Types)
	case *EnumTypeDefinition:
		o.node("description", n.Description).node("name", n.Name)
		list(o, "directives", n.Directives)
		list(o, "values", n.Values)
	case *EnumValueDefinition:
		o.node("description", n.Description).node("name", n.Name)
		list(o, "directives", n.Directives)
	case *InputObjectTypeDefinition:
		o.node("description", n.Description).node("name", n.Name)
		list(o, "directives", n.Directives)
		list(o, "fields", n.Fields)
	case *DirectiveDefinition:
		o.node("description", n.Description).node("name", n.Name)
		list(o, "arguments", n.Arguments)
		o.set("repeatable", n.Repeatable)
		list(o, "locations", n.Locations)
	case *SchemaExtension:
		list(o, "directives", n.Directives)
		list(o, "operationTypes", n.OperationTypes)
	case *ScalarTypeExtension:
		o.node("name", n.Name)
		list(o, "directives", n.Directives)
	case *ObjectTypeExtension:
		o.node("name", n.Name)
		list(o, "interfaces", n.Interfaces)
		list(o, "directives", n.Directives)
		list(o, "fields", n.Fields)
	case *InterfaceTypeExtension:
		o.node("name", n.Name)
		list(o, "interfaces", n.Interfaces)
		list(o, "directives", n.Directives)
		list(o, "fields", n.Fields)
	case *UnionTypeExtension:
		o.node("name", n.Name)
		list(o, "directives", n.Directives)
		list(o, "types", n.Types)
	case *EnumTypeExtension:
		o.node("name", n.Name)
		list(o, "directives", n.Directives)
		list(o, "values", n.Values)
	case *InputObjectTypeExtension:
		o.node("name", n.Name)
		list(o, "directives", n.Directives)
		list(o, "fields", n.Fields)
	default:
		e.err = fmt.Errorf("ast: cannot marshal node of type %T", node)
		return null
	}
	if e.err != nil {
		return null
	}
	return o.close()
}
