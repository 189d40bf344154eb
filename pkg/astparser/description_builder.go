package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
)

func buildDescription(d *Director) (ast.Node, error) {
	c := d.Cursor()
	if !peekDescription(c) {
		return nil, c.Unexpected(nil)
	}
	return buildStringValue(c)
}

// optionalDescription returns nil when the current token is not a string.
func optionalDescription(d *Director) (*ast.StringValue, error) {
	if !peekDescription(d.Cursor()) {
		return nil, nil
	}
	return buildAs[*ast.StringValue](d, SymbolDescription)
}
