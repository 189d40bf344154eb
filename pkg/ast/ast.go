// Package ast defines the GraphQL abstract syntax tree produced by astparser and walked by astvisitor.
//
// Every node is a pointer to one of the structs of this package. The set of node types is closed:
// Node carries an unexported marker method so that no other package can add variants. Nodes are
// never mutated after construction, a rewrite produces fresh copies (see ShallowCopy).
package ast

import (
	"reflect"
)

// Location is the byte span of a node within the parsed source. End is exclusive.
type Location struct {
	Start int
	End   int
}

type Node interface {
	Kind() NodeKind
	// Location is nil when the document was parsed without locations.
	Location() *Location
	node()
}

// Definition is a top-level entry of a Document.
type Definition interface {
	Node
	definitionNode()
}

type ExecutableDefinition interface {
	Definition
	executableDefinitionNode()
}

type TypeSystemDefinition interface {
	Definition
	typeSystemDefinitionNode()
}

type TypeSystemExtension interface {
	Definition
	typeSystemExtensionNode()
}

// Selection is one of Field, FragmentSpread or InlineFragment.
type Selection interface {
	Node
	selectionNode()
}

// Value is an input value literal.
type Value interface {
	Node
	valueNode()
}

// Type is a type reference: NamedType, ListType or NonNullType.
type Type interface {
	Node
	typeNode()
}

// NullableType is every Type except NonNullType.
type NullableType interface {
	Type
	nullableTypeNode()
}

type Document struct {
	Loc         *Location
	Definitions []Definition
}

func (n *Document) Kind() NodeKind      { return NodeKindDocument }
func (n *Document) Location() *Location { return n.Loc }
func (*Document) node()                 {}

// Name is a GraphQL identifier.
type Name struct {
	Loc   *Location
	Value string
}

func (n *Name) Kind() NodeKind      { return NodeKindName }
func (n *Name) Location() *Location { return n.Loc }
func (*Name) node()                 {}

// NameValue returns the identifier or an empty string for a nil name.
func (n *Name) NameValue() string {
	if n == nil {
		return ""
	}
	return n.Value
}

// IsNil reports whether node is nil or a typed nil pointer, e.g. an absent Field.Alias passed as Node.
func IsNil(node Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
