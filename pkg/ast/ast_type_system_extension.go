package ast

// The extension nodes below are only produced with at least one non-empty component,
// `extend type Foo` on its own is a syntax error.

// SchemaExtension
// example:
//
//	extend schema @link(url: "x") { subscription: Subscription }
type SchemaExtension struct {
	Loc            *Location
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

func (n *SchemaExtension) Kind() NodeKind         { return NodeKindSchemaExtension }
func (n *SchemaExtension) Location() *Location    { return n.Loc }
func (*SchemaExtension) node()                    {}
func (*SchemaExtension) definitionNode()          {}
func (*SchemaExtension) typeSystemExtensionNode() {}

type ScalarTypeExtension struct {
	Loc        *Location
	Name       *Name
	Directives []*Directive
}

func (n *ScalarTypeExtension) Kind() NodeKind         { return NodeKindScalarTypeExtension }
func (n *ScalarTypeExtension) Location() *Location    { return n.Loc }
func (*ScalarTypeExtension) node()                    {}
func (*ScalarTypeExtension) definitionNode()          {}
func (*ScalarTypeExtension) typeSystemExtensionNode() {}

type ObjectTypeExtension struct {
	Loc        *Location
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

func (n *ObjectTypeExtension) Kind() NodeKind         { return NodeKindObjectTypeExtension }
func (n *ObjectTypeExtension) Location() *Location    { return n.Loc }
func (*ObjectTypeExtension) node()                    {}
func (*ObjectTypeExtension) definitionNode()          {}
func (*ObjectTypeExtension) typeSystemExtensionNode() {}

type InterfaceTypeExtension struct {
	Loc        *Location
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

func (n *InterfaceTypeExtension) Kind() NodeKind         { return NodeKindInterfaceTypeExtension }
func (n *InterfaceTypeExtension) Location() *Location    { return n.Loc }
func (*InterfaceTypeExtension) node()                    {}
func (*InterfaceTypeExtension) definitionNode()          {}
func (*InterfaceTypeExtension) typeSystemExtensionNode() {}

type UnionTypeExtension struct {
	Loc        *Location
	Name       *Name
	Directives []*Directive
	Types      []*NamedType
}

func (n *UnionTypeExtension) Kind() NodeKind         { return NodeKindUnionTypeExtension }
func (n *UnionTypeExtension) Location() *Location    { return n.Loc }
func (*UnionTypeExtension) node()                    {}
func (*UnionTypeExtension) definitionNode()          {}
func (*UnionTypeExtension) typeSystemExtensionNode() {}

type EnumTypeExtension struct {
	Loc        *Location
	Name       *Name
	Directives []*Directive
	Values     []*EnumValueDefinition
}

func (n *EnumTypeExtension) Kind() NodeKind         { return NodeKindEnumTypeExtension }
func (n *EnumTypeExtension) Location() *Location    { return n.Loc }
func (*EnumTypeExtension) node()                    {}
func (*EnumTypeExtension) definitionNode()          {}
func (*EnumTypeExtension) typeSystemExtensionNode() {}

type InputObjectTypeExtension struct {
	Loc        *Location
	Name       *Name
	Directives []*Directive
	Fields     []*InputValueDefinition
}

func (n *InputObjectTypeExtension) Kind() NodeKind         { return NodeKindInputObjectTypeExtension }
func (n *InputObjectTypeExtension) Location() *Location    { return n.Loc }
func (*InputObjectTypeExtension) node()                    {}
func (*InputObjectTypeExtension) definitionNode()          {}
func (*InputObjectTypeExtension) typeSystemExtensionNode() {}
