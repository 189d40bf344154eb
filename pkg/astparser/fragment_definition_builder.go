package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
	"github.com/wundergraph/gqlast/pkg/lexer/literal"
)

// buildFragmentDefinition
//
//	fragment UserFields($size: Int) on User @foo { avatar(size: $size) }
func buildFragmentDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start, err := c.ExpectKeyword(literal.FRAGMENT)
	if err != nil {
		return nil, err
	}
	name, err := buildAs[*ast.Name](d, SymbolFragmentName)
	if err != nil {
		return nil, err
	}
	variableDefinitions, err := OptionalMany(c, keyword.LPAREN, builds[*ast.VariableDefinition](d, SymbolVariableDefinition), keyword.RPAREN)
	if err != nil {
		return nil, err
	}
	if _, err = c.ExpectKeyword(literal.ON); err != nil {
		return nil, err
	}
	typeCondition, err := buildAs[*ast.NamedType](d, SymbolNamedType)
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

	return &ast.FragmentDefinition{
		Loc:                 c.Location(start),
		Name:                name,
		VariableDefinitions: variableDefinitions,
		TypeCondition:       typeCondition,
		Directives:          directives,
		SelectionSet:        selectionSet,
	}, nil
}

// buildFragmentName is a name other than "on".
func buildFragmentName(d *Director) (ast.Node, error) {
	c := d.Cursor()
	if c.PeekKeyword(literal.ON) {
		return nil, c.Unexpected(nil)
	}
	return d.Build(SymbolName)
}
