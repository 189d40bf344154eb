package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
)

// buildDirective
//
//	@include(if: $withFriends)
func buildDirective(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start, err := c.Expect(keyword.AT)
	if err != nil {
		return nil, err
	}
	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}
	arguments, err := buildArguments(d)
	if err != nil {
		return nil, err
	}
	return &ast.Directive{
		Loc:       c.Location(start),
		Name:      name,
		Arguments: arguments,
	}, nil
}

// buildDirectives parses zero or more directives. Directives of type system definitions and
// variable definitions are constant.
func buildDirectives(d *Director, constant bool) ([]*ast.Directive, error) {
	c := d.Cursor()
	var directives []*ast.Directive
	for c.Peek(keyword.AT) {
		var (
			directive *ast.Directive
			err       error
		)
		if constant {
			directive, err = buildConstAs[*ast.Directive](d, SymbolDirective)
		} else {
			directive, err = buildAs[*ast.Directive](d, SymbolDirective)
		}
		if err != nil {
			return nil, err
		}
		directives = append(directives, directive)
	}
	return directives, nil
}
