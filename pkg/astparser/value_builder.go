package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
	"github.com/wundergraph/gqlast/pkg/lexer/literal"
)

// buildValue dispatches on the kind of the current token. Variables are rejected in a const context.
func buildValue(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()

	switch start.Keyword {
	case keyword.LBRACK:
		values, err := Any(c, keyword.LBRACK, builds[ast.Value](d, SymbolValue), keyword.RBRACK)
		if err != nil {
			return nil, err
		}
		return &ast.ListValue{
			Loc:    c.Location(start),
			Values: values,
		}, nil
	case keyword.LBRACE:
		fields, err := Any(c, keyword.LBRACE, builds[*ast.ObjectField](d, SymbolObjectField), keyword.RBRACE)
		if err != nil {
			return nil, err
		}
		return &ast.ObjectValue{
			Loc:    c.Location(start),
			Fields: fields,
		}, nil
	case keyword.INTEGER:
		if err := c.Advance(); err != nil {
			return nil, err
		}
		return &ast.IntValue{Loc: c.Location(start), Raw: start.Value}, nil
	case keyword.FLOAT:
		if err := c.Advance(); err != nil {
			return nil, err
		}
		return &ast.FloatValue{Loc: c.Location(start), Raw: start.Value}, nil
	case keyword.STRING, keyword.BLOCKSTRING:
		return buildStringValue(c)
	case keyword.IDENT:
		if err := c.Advance(); err != nil {
			return nil, err
		}
		switch start.Value {
		case literal.TRUE, literal.FALSE:
			return &ast.BooleanValue{Loc: c.Location(start), Value: start.Value == literal.TRUE}, nil
		case literal.NULL:
			return &ast.NullValue{Loc: c.Location(start)}, nil
		default:
			return &ast.EnumValue{Loc: c.Location(start), Name: start.Value}, nil
		}
	case keyword.DOLLAR:
		if !d.Const() {
			return d.Build(SymbolVariable)
		}
		next, err := c.Lookahead()
		if err != nil {
			return nil, err
		}
		if next.Keyword == keyword.IDENT {
			return nil, c.Errorf(start, "Unexpected variable \"$%s\" in constant value.", next.Value)
		}
		return nil, c.Unexpected(&start)
	}

	return nil, c.Unexpected(nil)
}

func buildStringValue(c *Cursor) (*ast.StringValue, error) {
	tok := c.Token()
	if err := c.Advance(); err != nil {
		return nil, err
	}
	return &ast.StringValue{
		Loc:   c.Location(tok),
		Value: tok.Value,
		Block: tok.Keyword == keyword.BLOCKSTRING,
	}, nil
}

func buildObjectField(d *Director) (ast.Node, error) {
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
	return &ast.ObjectField{
		Loc:   c.Location(start),
		Name:  name,
		Value: value,
	}, nil
}
