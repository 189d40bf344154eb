package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
)

func buildSelectionSet(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	selections, err := Many(c, keyword.LBRACE, builds[ast.Selection](d, SymbolSelection), keyword.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.SelectionSet{
		Loc:        c.Location(start),
		Selections: selections,
	}, nil
}

// buildSelection is a fragment when the selection starts with "...", a field otherwise.
func buildSelection(d *Director) (ast.Node, error) {
	if d.Cursor().Peek(keyword.SPREAD) {
		return d.Build(SymbolFragment)
	}
	return d.Build(SymbolField)
}
