package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
)

// buildField
//
//	smallPic: profilePic(size: 64) @include(if: $pics) { url }
func buildField(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()

	nameOrAlias, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}

	var alias, name *ast.Name
	hasAlias, err := c.Skip(keyword.COLON)
	if err != nil {
		return nil, err
	}
	if hasAlias {
		alias = nameOrAlias
		if name, err = buildAs[*ast.Name](d, SymbolName); err != nil {
			return nil, err
		}
	} else {
		name = nameOrAlias
	}

	arguments, err := buildArguments(d)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, false)
	if err != nil {
		return nil, err
	}

	var selectionSet *ast.SelectionSet
	if c.Peek(keyword.LBRACE) {
		if selectionSet, err = buildAs[*ast.SelectionSet](d, SymbolSelectionSet); err != nil {
			return nil, err
		}
	}

	return &ast.Field{
		Loc:          c.Location(start),
		Alias:        alias,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selectionSet,
	}, nil
}
