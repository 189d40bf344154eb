package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
)

// buildType parses a type reference:
//
//	String
//	[String!]!
func buildType(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()

	var typ ast.NullableType
	if c.Peek(keyword.LBRACK) {
		if err := c.open(keyword.LBRACK); err != nil {
			return nil, err
		}
		inner, err := buildAs[ast.Type](d, SymbolType)
		if err != nil {
			return nil, err
		}
		if _, err = c.Expect(keyword.RBRACK); err != nil {
			return nil, err
		}
		c.Leave()
		typ = &ast.ListType{
			Loc:  c.Location(start),
			Type: inner,
		}
	} else {
		named, err := buildAs[*ast.NamedType](d, SymbolNamedType)
		if err != nil {
			return nil, err
		}
		typ = named
	}

	nonNull, err := c.Skip(keyword.BANG)
	if err != nil {
		return nil, err
	}
	if nonNull {
		return &ast.NonNullType{
			Loc:  c.Location(start),
			Type: typ,
		}, nil
	}
	return typ, nil
}
