package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
	"github.com/wundergraph/gqlast/pkg/lexer/literal"
)

// buildFragment parses everything starting with "...":
//
//	...UserFields            FragmentSpread
//	... on User { name }     InlineFragment
//	... @include(if: $x) { name }  InlineFragment without type condition
func buildFragment(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start, err := c.Expect(keyword.SPREAD)
	if err != nil {
		return nil, err
	}

	hasTypeCondition, err := c.SkipKeyword(literal.ON)
	if err != nil {
		return nil, err
	}

	if !hasTypeCondition && c.Peek(keyword.IDENT) {
		name, err := buildAs[*ast.Name](d, SymbolName)
		if err != nil {
			return nil, err
		}
		directives, err := buildDirectives(d, false)
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{
			Loc:        c.Location(start),
			Name:       name,
			Directives: directives,
		}, nil
	}

	var typeCondition *ast.NamedType
	if hasTypeCondition {
		if typeCondition, err = buildAs[*ast.NamedType](d, SymbolNamedType); err != nil {
			return nil, err
		}
	}
	directives, err := buildDirectives(d, false)
	if err != nil {
		return nil, err
	}
	selectionSet, err := buildAs[*ast.SelectionSet](d, SymbolSelectionSet)
	if err != nil {
		return nil, err
	}

	return &ast.InlineFragment{
		Loc:           c.Location(start),
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
	}, nil
}
