package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
)

func buildName(d *Director) (ast.Node, error) {
	c := d.Cursor()
	tok, err := c.Expect(keyword.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.Name{
		Loc:   c.Location(tok),
		Value: tok.Value,
	}, nil
}

func buildNamedType(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{
		Loc:  c.Location(start),
		Name: name,
	}, nil
}
