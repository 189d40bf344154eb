package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
)

// buildArgument
//
//	size: 64
func buildArgument(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()

	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}
	if _, err = c.Expect(keyword.COLON); err != nil {
		return nil, err
	}
	value, err := buildAs[ast.Value](d, SymbolValue)
	if err != nil {
		return nil, err
	}
	return &ast.Argument{
		Loc:   c.Location(start),
		Name:  name,
		Value: value,
	}, nil
}

// buildArguments parses an optional parenthesized argument list. The values inherit the const
// context of the director.
func buildArguments(d *Director) ([]*ast.Argument, error) {
	return OptionalMany(d.Cursor(), keyword.LPAREN, builds[*ast.Argument](d, SymbolArgument), keyword.RPAREN)
}
