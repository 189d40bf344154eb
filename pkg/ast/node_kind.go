package ast

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

type NodeKind int

const (
	NodeKindUnknown NodeKind = iota
	NodeKindDocument
	NodeKindOperationDefinition
	NodeKindFragmentDefinition
	NodeKindVariableDefinition
	NodeKindSelectionSet
	NodeKindField
	NodeKindFragmentSpread
	NodeKindInlineFragment
	NodeKindArgument
	NodeKindDirective
	NodeKindName
	NodeKindVariable
	NodeKindIntValue
	NodeKindFloatValue
	NodeKindStringValue
	NodeKindBooleanValue
	NodeKindNullValue
	NodeKindEnumValue
	NodeKindListValue
	NodeKindObjectValue
	NodeKindObjectField
	NodeKindNamedType
	NodeKindListType
	NodeKindNonNullType
	NodeKindSchemaDefinition
	NodeKindOperationTypeDefinition
	NodeKindScalarTypeDefinition
	NodeKindObjectTypeDefinition
	NodeKindFieldDefinition
	NodeKindInputValueDefinition
	NodeKindInterfaceTypeDefinition
	NodeKindUnionTypeDefinition
	NodeKindEnumTypeDefinition
	NodeKindEnumValueDefinition
	NodeKindInputObjectTypeDefinition
	NodeKindDirectiveDefinition
	NodeKindSchemaExtension
	NodeKindScalarTypeExtension
	NodeKindObjectTypeExtension
	NodeKindInterfaceTypeExtension
	NodeKindUnionTypeExtension
	NodeKindEnumTypeExtension
	NodeKindInputObjectTypeExtension

	nodeKindCount
)

var nodeKindNames = [nodeKindCount]string{
	NodeKindUnknown:                   "Unknown",
	NodeKindDocument:                  "Document",
	NodeKindOperationDefinition:       "OperationDefinition",
	NodeKindFragmentDefinition:        "FragmentDefinition",
	NodeKindVariableDefinition:        "VariableDefinition",
	NodeKindSelectionSet:              "SelectionSet",
	NodeKindField:                     "Field",
	NodeKindFragmentSpread:            "FragmentSpread",
	NodeKindInlineFragment:            "InlineFragment",
	NodeKindArgument:                  "Argument",
	NodeKindDirective:                 "Directive",
	NodeKindName:                      "Name",
	NodeKindVariable:                  "Variable",
	NodeKindIntValue:                  "IntValue",
	NodeKindFloatValue:                "FloatValue",
	NodeKindStringValue:               "StringValue",
	NodeKindBooleanValue:              "BooleanValue",
	NodeKindNullValue:                 "NullValue",
	NodeKindEnumValue:                 "EnumValue",
	NodeKindListValue:                 "ListValue",
	NodeKindObjectValue:               "ObjectValue",
	NodeKindObjectField:               "ObjectField",
	NodeKindNamedType:                 "NamedType",
	NodeKindListType:                  "ListType",
	NodeKindNonNullType:               "NonNullType",
	NodeKindSchemaDefinition:          "SchemaDefinition",
	NodeKindOperationTypeDefinition:   "OperationTypeDefinition",
	NodeKindScalarTypeDefinition:      "ScalarTypeDefinition",
	NodeKindObjectTypeDefinition:      "ObjectTypeDefinition",
	NodeKindFieldDefinition:           "FieldDefinition",
	NodeKindInputValueDefinition:      "InputValueDefinition",
	NodeKindInterfaceTypeDefinition:   "InterfaceTypeDefinition",
	NodeKindUnionTypeDefinition:       "UnionTypeDefinition",
	NodeKindEnumTypeDefinition:        "EnumTypeDefinition",
	NodeKindEnumValueDefinition:       "EnumValueDefinition",
	NodeKindInputObjectTypeDefinition: "InputObjectTypeDefinition",
	NodeKindDirectiveDefinition:       "DirectiveDefinition",
	NodeKindSchemaExtension:           "SchemaExtension",
	NodeKindScalarTypeExtension:       "ScalarTypeExtension",
	NodeKindObjectTypeExtension:       "ObjectTypeExtension",
	NodeKindInterfaceTypeExtension:    "InterfaceTypeExtension",
	NodeKindUnionTypeExtension:        "UnionTypeExtension",
	NodeKindEnumTypeExtension:         "EnumTypeExtension",
	NodeKindInputObjectTypeExtension:  "InputObjectTypeExtension",
}

var nodeKindsByName = func() map[string]NodeKind {
	out := make(map[string]NodeKind, nodeKindCount)
	for i := NodeKindDocument; i < nodeKindCount; i++ {
		out[nodeKindNames[i]] = i
	}
	return out
}()

func (k NodeKind) String() string {
	if k < 0 || k >= nodeKindCount {
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
	return nodeKindNames[k]
}

// ParseNodeKind accepts the canonical kind name as well as its snake, kebab or lower camel case
// spelling, e.g. "field_definition" or "fieldDefinition".
func ParseNodeKind(name string) (NodeKind, error) {
	if kind, ok := nodeKindsByName[strcase.ToCamel(name)]; ok {
		return kind, nil
	}
	return NodeKindUnknown, fmt.Errorf("unknown node kind: %q", name)
}

// NodeKinds returns every known kind in declaration order.
func NodeKinds() []NodeKind {
	out := make([]NodeKind, 0, nodeKindCount-1)
	for i := NodeKindDocument; i < nodeKindCount; i++ {
		out = append(out, i)
	}
	return out
}

func (k NodeKind) IsTypeSystemDefinition() bool {
	return k >= NodeKindSchemaDefinition && k <= NodeKindDirectiveDefinition && k != NodeKindOperationTypeDefinition &&
		k != NodeKindFieldDefinition && k != NodeKindInputValueDefinition && k != NodeKindEnumValueDefinition
}

func (k NodeKind) IsTypeSystemExtension() bool {
	return k >= NodeKindSchemaExtension && k <= NodeKindInputObjectTypeExtension
}

func (k NodeKind) IsAbstractType() bool {
	switch k {
	case NodeKindInterfaceTypeDefinition, NodeKindUnionTypeDefinition:
		return true
	default:
		return false
	}
}
