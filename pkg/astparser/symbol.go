package astparser

import "fmt"

// Symbol names a grammar production. Symbols are not node kinds: Selection, Fragment and Value
// each produce one of several node kinds, Description produces a StringValue and
// DirectiveLocation a Name.
type Symbol int

const (
	SymbolUnknown Symbol = iota
	SymbolDocument
	SymbolDefinition
	SymbolOperationDefinition
	SymbolFragmentDefinition
	SymbolFragmentName
	SymbolVariableDefinition
	SymbolVariable
	SymbolSelectionSet
	SymbolSelection
	SymbolField
	SymbolFragment
	SymbolArgument
	SymbolDirective
	SymbolName
	SymbolNamedType
	SymbolType
	SymbolValue
	SymbolObjectField
	SymbolDescription
	SymbolTypeSystemDefinition
	SymbolSchemaDefinition
	SymbolOperationTypeDefinition
	SymbolScalarTypeDefinition
	SymbolObjectTypeDefinition
	SymbolFieldDefinition
	SymbolInputValueDefinition
	SymbolInterfaceTypeDefinition
	SymbolUnionTypeDefinition
	SymbolEnumTypeDefinition
	SymbolEnumValueDefinition
	SymbolInputObjectTypeDefinition
	SymbolDirectiveDefinition
	SymbolDirectiveLocation
	SymbolTypeSystemExtension
	SymbolSchemaExtension
	SymbolScalarTypeExtension
	SymbolObjectTypeExtension
	SymbolInterfaceTypeExtension
	SymbolUnionTypeExtension
	SymbolEnumTypeExtension
	SymbolInputObjectTypeExtension

	symbolCount
)

var symbolNames = [symbolCount]string{
	SymbolUnknown:                   "Unknown",
	SymbolDocument:                  "Document",
	SymbolDefinition:                "Definition",
	SymbolOperationDefinition:       "OperationDefinition",
	SymbolFragmentDefinition:        "FragmentDefinition",
	SymbolFragmentName:              "FragmentName",
	SymbolVariableDefinition:        "VariableDefinition",
	SymbolVariable:                  "Variable",
	SymbolSelectionSet:              "SelectionSet",
	SymbolSelection:                 "Selection",
	SymbolField:                     "Field",
	SymbolFragment:                  "Fragment",
	SymbolArgument:                  "Argument",
	SymbolDirective:                 "Directive",
	SymbolName:                      "Name",
	SymbolNamedType:                 "NamedType",
	SymbolType:                      "Type",
	SymbolValue:                     "Value",
	SymbolObjectField:               "ObjectField",
	SymbolDescription:               "Description",
	SymbolTypeSystemDefinition:      "TypeSystemDefinition",
	SymbolSchemaDefinition:          "SchemaDefinition",
	SymbolOperationTypeDefinition:   "OperationTypeDefinition",
	SymbolScalarTypeDefinition:      "ScalarTypeDefinition",
	SymbolObjectTypeDefinition:      "ObjectTypeDefinition",
	SymbolFieldDefinition:           "FieldDefinition",
	SymbolInputValueDefinition:      "InputValueDefinition",
	SymbolInterfaceTypeDefinition:   "InterfaceTypeDefinition",
	SymbolUnionTypeDefinition:       "UnionTypeDefinition",
	SymbolEnumTypeDefinition:        "EnumTypeDefinition",
	SymbolEnumValueDefinition:       "EnumValueDefinition",
	SymbolInputObjectTypeDefinition: "InputObjectTypeDefinition",
	SymbolDirectiveDefinition:       "DirectiveDefinition",
	SymbolDirectiveLocation:         "DirectiveLocation",
	SymbolTypeSystemExtension:       "TypeSystemExtension",
	SymbolSchemaExtension:           "SchemaExtension",
	SymbolScalarTypeExtension:       "ScalarTypeExtension",
	SymbolObjectTypeExtension:       "ObjectTypeExtension",
	SymbolInterfaceTypeExtension:    "InterfaceTypeExtension",
	SymbolUnionTypeExtension:        "UnionTypeExtension",
	SymbolEnumTypeExtension:         "EnumTypeExtension",
	SymbolInputObjectTypeExtension:  "InputObjectTypeExtension",
}

func (s Symbol) String() string {
	if s < 0 || s >= symbolCount {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return symbolNames[s]
}
