package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
)

func buildOperationDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()

	if c.Peek(keyword.LBRACE) {
		selectionSet, err := buildAs[*ast.SelectionSet](d, SymbolSelectionSet)
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			Loc:          c.Location(start),
			Operation:    ast.OperationTypeQuery,
			SelectionSet: selectionSet,
		}, nil
	}

	operation, err := parseOperationType(c)
	if err != nil {
		return nil, err
	}

	var name *ast.Name
	if c.Peek(keyword.IDENT) {
		if name, err = buildAs[*ast.Name](d, SymbolName); err != nil {
			return nil, err
		}
	}

	variableDefinitions, err := OptionalMany(c, keyword.LPAREN, builds[*ast.VariableDefinition](d, SymbolVariableDefinition), keyword.RPAREN)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, false)
	if err != nil {
		return nil, err
	}
	selectionSet, err := buildAs[*ast.SelectionSet](d, SymbolSelectionSet)
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		Loc:                 c.Location(start),
		Operation:           operation,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          directives,
		SelectionSet:        selectionSet,
	}, nil
}

// parseOperationType consumes one of query, mutation or subscription.
func parseOperationType(c *Cursor) (ast.OperationType, error) {
	tok, err := c.Expect(keyword.IDENT)
	if err != nil {
		return ast.OperationTypeUnknown, err
	}
	operation, ok := ast.ParseOperationType(tok.Value)
	if !ok {
		return ast.OperationTypeUnknown, c.Unexpected(&tok)
	}
	return operation, nil
}

// buildVariableDefinition
//
//	$size: Int = 64 @deprecated
func buildVariableDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()

	variable, err := buildAs[*ast.Variable](d, SymbolVariable)
	if err != nil {
		return nil, err
	}
	if _, err = c.Expect(keyword.COLON); err != nil {
		return nil, err
	}
	typ, err := buildAs[ast.Type](d, SymbolType)
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	hasDefault, err := c.Skip(keyword.EQUALS)
	if err != nil {
		return nil, err
	}
	if hasDefault {
		if defaultValue, err = buildConstAs[ast.Value](d, SymbolValue); err != nil {
			return nil, err
		}
	}

	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}

	return &ast.VariableDefinition{
		Loc:          c.Location(start),
		Variable:     variable,
		Type:         typ,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

func buildVariable(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start, err := c.Expect(keyword.DOLLAR)
	if err != nil {
		return nil, err
	}
	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}
	return &ast.Variable{
		Loc:  c.Location(start),
		Name: name,
	}, nil
}
