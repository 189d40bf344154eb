package ast

// SchemaDefinition
// example:
//
//	schema @link(url: "x") { query: Query mutation: Mutation }
type SchemaDefinition struct {
	Loc            *Location
	Description    *StringValue // optional
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

func (n *SchemaDefinition) Kind() NodeKind          { return NodeKindSchemaDefinition }
func (n *SchemaDefinition) Location() *Location     { return n.Loc }
func (*SchemaDefinition) node()                     {}
func (*SchemaDefinition) definitionNode()           {}
func (*SchemaDefinition) typeSystemDefinitionNode() {}

// OperationTypeDefinition
// example:
//
//	query: Query
type OperationTypeDefinition struct {
	Loc       *Location
	Operation OperationType
	Type      *NamedType
}

func (n *OperationTypeDefinition) Kind() NodeKind      { return NodeKindOperationTypeDefinition }
func (n *OperationTypeDefinition) Location() *Location { return n.Loc }
func (*OperationTypeDefinition) node()                 {}

// ScalarTypeDefinition
// example:
//
//	scalar JSON @specifiedBy(url: "https://tools.ietf.org/html/rfc8259")
type ScalarTypeDefinition struct {
	Loc         *Location
	Description *StringValue // optional
	Name        *Name
	Directives  []*Directive
}

func (n *ScalarTypeDefinition) Kind() NodeKind          { return NodeKindScalarTypeDefinition }
func (n *ScalarTypeDefinition) Location() *Location     { return n.Loc }
func (*ScalarTypeDefinition) node()                     {}
func (*ScalarTypeDefinition) definitionNode()           {}
func (*ScalarTypeDefinition) typeSystemDefinitionNode() {}

// ObjectTypeDefinition
// example:
//
//	type Person implements Node & Named {
//		name: String
//	}
type ObjectTypeDefinition struct {
	Loc         *Location
	Description *StringValue // optional
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (n *ObjectTypeDefinition) Kind() NodeKind          { return NodeKindObjectTypeDefinition }
func (n *ObjectTypeDefinition) Location() *Location     { return n.Loc }
func (*ObjectTypeDefinition) node()                     {}
func (*ObjectTypeDefinition) definitionNode()           {}
func (*ObjectTypeDefinition) typeSystemDefinitionNode() {}

// FieldDefinition
// example:
//
//	"the user's friends"
//	friends(first: Int = 10): [User!]! @deprecated
type FieldDefinition struct {
	Loc         *Location
	Description *StringValue // optional
	Name        *Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
}

func (n *FieldDefinition) Kind() NodeKind      { return NodeKindFieldDefinition }
func (n *FieldDefinition) Location() *Location { return n.Loc }
func (*FieldDefinition) node()                 {}

// InputValueDefinition is an argument definition or an input object field.
// example:
//
//	first: Int = 10 @deprecated
type InputValueDefinition struct {
	Loc          *Location
	Description  *StringValue // optional
	Name         *Name
	Type         Type
	DefaultValue Value // optional, const
	Directives   []*Directive
}

func (n *InputValueDefinition) Kind() NodeKind      { return NodeKindInputValueDefinition }
func (n *InputValueDefinition) Location() *Location { return n.Loc }
func (*InputValueDefinition) node()                 {}

// InterfaceTypeDefinition
// example:
//
//	interface NamedEntity implements Node {
//		name: String
//	}
type InterfaceTypeDefinition struct {
	Loc         *Location
	Description *StringValue // optional
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (n *InterfaceTypeDefinition) Kind() NodeKind          { return NodeKindInterfaceTypeDefinition }
func (n *InterfaceTypeDefinition) Location() *Location     { return n.Loc }
func (*InterfaceTypeDefinition) node()                     {}
func (*InterfaceTypeDefinition) definitionNode()           {}
func (*InterfaceTypeDefinition) typeSystemDefinitionNode() {}

// UnionTypeDefinition
// example:
//
//	union SearchResult = Photo | Person
type UnionTypeDefinition struct {
	Loc         *Location
	Description *StringValue // optional
	Name        *Name
	Directives  []*Directive
	Types       []*NamedType
}

func (n *UnionTypeDefinition) Kind() NodeKind          { return NodeKindUnionTypeDefinition }
func (n *UnionTypeDefinition) Location() *Location     { return n.Loc }
func (*UnionTypeDefinition) node()                     {}
func (*UnionTypeDefinition) definitionNode()           {}
func (*UnionTypeDefinition) typeSystemDefinitionNode() {}

// EnumTypeDefinition
// example:
//
//	enum Direction { NORTH EAST SOUTH WEST }
type EnumTypeDefinition struct {
	Loc         *Location
	Description *StringValue // optional
	Name        *Name
	Directives  []*Directive
	Values      []*EnumValueDefinition
}

func (n *EnumTypeDefinition) Kind() NodeKind          { return NodeKindEnumTypeDefinition }
func (n *EnumTypeDefinition) Location() *Location     { return n.Loc }
func (*EnumTypeDefinition) node()                     {}
func (*EnumTypeDefinition) definitionNode()           {}
func (*EnumTypeDefinition) typeSystemDefinitionNode() {}

type EnumValueDefinition struct {
	Loc         *Location
	Description *StringValue // optional
	Name        *Name
	Directives  []*Directive
}

func (n *EnumValueDefinition) Kind() NodeKind      { return NodeKindEnumValueDefinition }
func (n *EnumValueDefinition) Location() *Location { return n.Loc }
func (*EnumValueDefinition) node()                 {}

// InputObjectTypeDefinition
// example:
//
//	input Point2D { x: Float y: Float }
type InputObjectTypeDefinition struct {
	Loc         *Location
	Description *StringValue // optional
	Name        *Name
	Directives  []*Directive
	Fields      []*InputValueDefinition
}

func (n *InputObjectTypeDefinition) Kind() NodeKind          { return NodeKindInputObjectTypeDefinition }
func (n *InputObjectTypeDefinition) Location() *Location     { return n.Loc }
func (*InputObjectTypeDefinition) node()                     {}
func (*InputObjectTypeDefinition) definitionNode()           {}
func (*InputObjectTypeDefinition) typeSystemDefinitionNode() {}

// DirectiveDefinition
// example:
//
//	directive @example(isExample: Boolean = true) repeatable on FIELD | FRAGMENT_SPREAD
type DirectiveDefinition struct {
	Loc         *Location
	Description *StringValue // optional
	Name        *Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []*Name
}

func (n *DirectiveDefinition) Kind() NodeKind          { return NodeKindDirectiveDefinition }
func (n *DirectiveDefinition) Location() *Location     { return n.Loc }
func (*DirectiveDefinition) node()                     {}
func (*DirectiveDefinition) definitionNode()           {}
func (*DirectiveDefinition) typeSystemDefinitionNode() {}
