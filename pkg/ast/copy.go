package ast

import "fmt"

// ShallowCopy returns a new node of the same kind whose fields equal node's. Child nodes and the
// backing arrays of child lists are shared with node. A nil node yields nil.
func ShallowCopy(node Node) Node {
	if IsNil(node) {
		return nil
	}
	switch n := node.(type) {
	case *Document:
		c := *n
		return &c
	case *OperationDefinition:
		c := *n
		return &c
	case *FragmentDefinition:
		c := *n
		return &c
	case *VariableDefinition:
		c := *n
		return &c
	case *SelectionSet:
		c := *n
		return &c
	case *Field:
		c := *n
		return &c
	case *FragmentSpread:
		c := *n
		return &c
	case *InlineFragment:
		c := *n
		return &c
	case *Argument:
		c := *n
		return &c
	case *Directive:
		c := *n
		return &c
	case *Name:
		c := *n
		return &c
	case *Variable:
		c := *n
		return &c
	case *IntValue:
		c := *n
		return &c
	case *FloatValue:
		c := *n
		return &c
	case *StringValue:
		c := *n
		return &c
	case *BooleanValue:
		c := *n
		return &c
	case *NullValue:
		c := *n
		return &c
	case *EnumValue:
		c := *n
		return &c
	case *ListValue:
		c := *n
		return &c
	case *ObjectValue:
		c := *n
		return &c
	case *ObjectField:
		c := *n
		return &c
	case *NamedType:
		c := *n
		return &c
	case *ListType:
		c := *n
		return &c
	case *NonNullType:
		c := *n
		return &c
	case *SchemaDefinition:
		c := *n
		return &c
	case *OperationTypeDefinition:
		c := *n
		return &c
	case *ScalarTypeDefinition:
		c := *n
		return &c
	case *ObjectTypeDefinition:
		c := *n
		return &c
	case *FieldDefinition:
		c := *n
		return &c
	case *InputValueDefinition:
		c := *n
		return &c
	case *InterfaceTypeDefinition:
		c := *n
		return &c
	case *UnionTypeDefinition:
		c := *n
		return &c
	case *EnumTypeDefinition:
		c := *n
		return &c
	case *EnumValueDefinition:
		c := *n
		return &c
	case *InputObjectTypeDefinition:
		c := *n
		return &c
	case *DirectiveDefinition:
		c := *n
		return &c
	case *SchemaExtension:
		c := *n
		return &c
	case *ScalarTypeExtension:
		c := *n
		return &c
	case *ObjectTypeExtension:
		c := *n
		return &c
	case *InterfaceTypeExtension:
		c := *n
		return &c
	case *UnionTypeExtension:
		c := *n
		return &c
	case *EnumTypeExtension:
		c := *n
		return &c
	case *InputObjectTypeExtension:
		c := *n
		return &c
	default:
		panic(fmt.Errorf("ast: ShallowCopy of unknown node type %T", node))
	}
}
