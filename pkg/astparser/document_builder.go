package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
	"github.com/wundergraph/gqlast/pkg/lexer/literal"
)

// buildDocument parses one or more definitions from the start to the end of the input.
func buildDocument(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	definitions, err := Many(c, keyword.UNDEFINED, builds[ast.Definition](d, SymbolDefinition), keyword.EOF)
	if err != nil {
		return nil, err
	}
	return &ast.Document{
		Loc:         c.Location(start),
		Definitions: definitions,
	}, nil
}

// buildDefinition selects the definition by its first token: a description always introduces a
// type system definition, "{" an anonymous query, otherwise the keyword decides.
func buildDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	if c.Peek(keyword.LBRACE) {
		return d.Build(SymbolOperationDefinition)
	}
	if peekDescription(c) {
		return d.Build(SymbolTypeSystemDefinition)
	}

	tok := c.Token()
	if tok.Keyword == keyword.IDENT {
		switch tok.Value {
		case literal.QUERY, literal.MUTATION, literal.SUBSCRIPTION:
			return d.Build(SymbolOperationDefinition)
		case literal.FRAGMENT:
			return d.Build(SymbolFragmentDefinition)
		case literal.SCHEMA, literal.SCALAR, literal.TYPE, literal.INTERFACE, literal.UNION, literal.ENUM,
			literal.INPUT, literal.DIRECTIVE:
			return d.Build(SymbolTypeSystemDefinition)
		case literal.EXTEND:
			return d.Build(SymbolTypeSystemExtension)
		}
	}

	return nil, c.Unexpected(&tok)
}

func peekDescription(c *Cursor) bool {
	return c.Peek(keyword.STRING) || c.Peek(keyword.BLOCKSTRING)
}
