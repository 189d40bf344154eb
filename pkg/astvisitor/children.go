package astvisitor

import (
	"github.com/wundergraph/gqlast/pkg/ast"
)

// walkChildren visits the children of node in declaration order and attaches the results to node.
func (w *Walker) walkChildren(node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		n.Definitions = list(w, n, "definitions", n.Definitions)
	case *ast.OperationDefinition:
		n.Name = single(w, n, "name", n.Name, false)
		n.VariableDefinitions = list(w, n, "variableDefinitions", n.VariableDefinitions)
		n.Directives = list(w, n, "directives", n.Directives)
		n.SelectionSet = single(w, n, "selectionSet", n.SelectionSet, true)
	case *ast.FragmentDefinition:
		n.Name = single(w, n, "name", n.Name, true)
		n.VariableDefinitions = list(w, n, "variableDefinitions", n.VariableDefinitions)
		n.TypeCondition = single(w, n, "typeCondition", n.TypeCondition, true)
		n.Directives = list(w, n, "directives", n.Directives)
		n.SelectionSet = single(w, n, "selectionSet", n.SelectionSet, true)
	case *ast.VariableDefinition:
		n.Variable = single(w, n, "variable", n.Variable, true)
		n.Type = single(w, n, "type", n.Type, true)
		n.DefaultValue = single(w, n, "defaultValue", n.DefaultValue, false)
		n.Directives = list(w, n, "directives", n.Directives)
	case *ast.SelectionSet:
		n.Selections = list(w, n, "selections", n.Selections)
	case *ast.Field:
		n.Alias = single(w, n, "alias", n.Alias, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Arguments = list(w, n, "arguments", n.Arguments)
		n.Directives = list(w, n, "directives", n.Directives)
		n.SelectionSet = single(w, n, "selectionSet", n.SelectionSet, false)
	case *ast.FragmentSpread:
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
	case *ast.InlineFragment:
		n.TypeCondition = single(w, n, "typeCondition", n.TypeCondition, false)
		n.Directives = list(w, n, "directives", n.Directives)
		n.SelectionSet = single(w, n, "selectionSet", n.SelectionSet, true)
	case *ast.Argument:
		n.Name = single(w, n, "name", n.Name, true)
		n.Value = single(w, n, "value", n.Value, true)
	case *ast.Directive:
		n.Name = single(w, n, "name", n.Name, true)
		n.Arguments = list(w, n, "arguments", n.Arguments)
	case *ast.Variable:
		n.Name = single(w, n, "name", n.Name, true)
	case *ast.ListValue:
		n.Values = list(w, n, "values", n.Values)
	case *ast.ObjectValue:
		n.Fields = list(w, n, "fields", n.Fields)
	case *ast.ObjectField:
		n.Name = single(w, n, "name", n.Name, true)
		n.Value = single(w, n, "value", n.Value, true)
	case *ast.NamedType:
		n.Name = single(w, n, "name", n.Name, true)
	case *ast.ListType:
		n.Type = single(w, n, "type", n.Type, true)
	case *ast.NonNullType:
		n.Type = single(w, n, "type", n.Type, true)

	case *ast.SchemaDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Directives = list(w, n, "directives", n.Directives)
		n.OperationTypes = list(w, n, "operationTypes", n.OperationTypes)
	case *ast.OperationTypeDefinition:
		n.Type = single(w, n, "type", n.Type, true)
	case *ast.ScalarTypeDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
	case *ast.ObjectTypeDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Interfaces = list(w, n, "interfaces", n.Interfaces)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Fields = list(w, n, "fields", n.Fields)
	case *ast.FieldDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Arguments = list(w, n, "arguments", n.Arguments)
		n.Type = single(w, n, "type", n.Type, true)
		n.Directives = list(w, n, "directives", n.Directives)
	case *ast.InputValueDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Type = single(w, n, "type", n.Type, true)
		n.DefaultValue = single(w, n, "defaultValue", n.DefaultValue, false)
		n.Directives = list(w, n, "directives", n.Directives)
	case *ast.InterfaceTypeDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Interfaces = list(w, n, "interfaces", n.Interfaces)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Fields = list(w, n, "fields", n.Fields)
	case *ast.UnionTypeDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Types = list(w, n, "types", n.Types)
	case *ast.EnumTypeDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Values = list(w, n, "values", n.Values)
	case *ast.EnumValueDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
	case *ast.InputObjectTypeDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Fields = list(w, n, "fields", n.Fields)
	case *ast.DirectiveDefinition:
		n.Description = single(w, n, "description", n.Description, false)
		n.Name = single(w, n, "name", n.Name, true)
		n.Arguments = list(w, n, "arguments", n.Arguments)
		n.Locations = list(w, n, "locations", n.Locations)

	case *ast.SchemaExtension:
		n.Directives = list(w, n, "directives", n.Directives)
		n.OperationTypes = list(w, n, "operationTypes", n.OperationTypes)
	case *ast.ScalarTypeExtension:
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
	case *ast.ObjectTypeExtension:
		n.Name = single(w, n, "name", n.Name, true)
		n.Interfaces = list(w, n, "interfaces", n.Interfaces)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Fields = list(w, n, "fields", n.Fields)
	case *ast.InterfaceTypeExtension:
		n.Name = single(w, n, "name", n.Name, true)
		n.Interfaces = list(w, n, "interfaces", n.Interfaces)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Fields = list(w, n, "fields", n.Fields)
	case *ast.UnionTypeExtension:
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Types = list(w, n, "types", n.Types)
	case *ast.EnumTypeExtension:
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Values = list(w, n, "values", n.Values)
	case *ast.InputObjectTypeExtension:
		n.Name = single(w, n, "name", n.Name, true)
		n.Directives = list(w, n, "directives", n.Directives)
		n.Fields = list(w, n, "fields", n.Fields)

	case *ast.Name, *ast.IntValue, *ast.FloatValue, *ast.StringValue, *ast.BooleanValue, *ast.NullValue, *ast.EnumValue:
	}
}
