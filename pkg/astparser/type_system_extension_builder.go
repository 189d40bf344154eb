package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
	"github.com/wundergraph/gqlast/pkg/lexer/literal"
)

// buildTypeSystemExtension selects the extension by the keyword following "extend".
func buildTypeSystemExtension(d *Director) (ast.Node, error) {
	c := d.Cursor()
	keywordToken, err := c.Lookahead()
	if err != nil {
		return nil, err
	}

	if keywordToken.Keyword == keyword.IDENT {
		switch keywordToken.Value {
		case literal.SCHEMA:
			return d.Build(SymbolSchemaExtension)
		case literal.SCALAR:
			return d.Build(SymbolScalarTypeExtension)
		case literal.TYPE:
			return d.Build(SymbolObjectTypeExtension)
		case literal.INTERFACE:
			return d.Build(SymbolInterfaceTypeExtension)
		case literal.UNION:
			return d.Build(SymbolUnionTypeExtension)
		case literal.ENUM:
			return d.Build(SymbolEnumTypeExtension)
		case literal.INPUT:
			return d.Build(SymbolInputObjectTypeExtension)
		}
	}

	return nil, c.Unexpected(&keywordToken)
}

// buildSchemaExtension
//
//	extend schema @foo { subscription: Subscription }
func buildSchemaExtension(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	if err := extensionHead(c, literal.SCHEMA); err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	operationTypes, err := OptionalMany(c, keyword.LBRACE, builds[*ast.OperationTypeDefinition](d, SymbolOperationTypeDefinition), keyword.RBRACE)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 && len(operationTypes) == 0 {
		return nil, c.Unexpected(nil)
	}
	return &ast.SchemaExtension{
		Loc:            c.Location(start),
		Directives:     directives,
		OperationTypes: operationTypes,
	}, nil
}

func buildScalarTypeExtension(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	name, err := extensionNameHead(d, literal.SCALAR)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 {
		return nil, c.Unexpected(nil)
	}
	return &ast.ScalarTypeExtension{
		Loc:        c.Location(start),
		Name:       name,
		Directives: directives,
	}, nil
}

// buildObjectTypeExtension
//
//	extend type User implements Node @key(fields: "id") { reviews: [Review] }
func buildObjectTypeExtension(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	name, err := extensionNameHead(d, literal.TYPE)
	if err != nil {
		return nil, err
	}
	interfaces, err := buildImplementsInterfaces(d)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	fields, err := buildFieldsDefinition(d)
	if err != nil {
		return nil, err
	}
	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, c.Unexpected(nil)
	}
	return &ast.ObjectTypeExtension{
		Loc:        c.Location(start),
		Name:       name,
		Interfaces: interfaces,
		Directives: directives,
		Fields:     fields,
	}, nil
}

func buildInterfaceTypeExtension(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	name, err := extensionNameHead(d, literal.INTERFACE)
	if err != nil {
		return nil, err
	}
	interfaces, err := buildImplementsInterfaces(d)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	fields, err := buildFieldsDefinition(d)
	if err != nil {
		return nil, err
	}
	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, c.Unexpected(nil)
	}
	return &ast.InterfaceTypeExtension{
		Loc:        c.Location(start),
		Name:       name,
		Interfaces: interfaces,
		Directives: directives,
		Fields:     fields,
	}, nil
}

func buildUnionTypeExtension(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	name, err := extensionNameHead(d, literal.UNION)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	types, err := buildUnionMemberTypes(d)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 && len(types) == 0 {
		return nil, c.Unexpected(nil)
	}
	return &ast.UnionTypeExtension{
		Loc:        c.Location(start),
		Name:       name,
		Directives: directives,
		Types:      types,
	}, nil
}

func buildEnumTypeExtension(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	name, err := extensionNameHead(d, literal.ENUM)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	values, err := buildEnumValuesDefinition(d)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 && len(values) == 0 {
		return nil, c.Unexpected(nil)
	}
	return &ast.EnumTypeExtension{
		Loc:        c.Location(start),
		Name:       name,
		Directives: directives,
		Values:     values,
	}, nil
}

func buildInputObjectTypeExtension(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	name, err := extensionNameHead(d, literal.INPUT)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	fields, err := buildInputFieldsDefinition(d)
	if err != nil {
		return nil, err
	}
	if len(directives) == 0 && len(fields) == 0 {
		return nil, c.Unexpected(nil)
	}
	return &ast.InputObjectTypeExtension{
		Loc:        c.Location(start),
		Name:       name,
		Directives: directives,
		Fields:     fields,
	}, nil
}

func extensionHead(c *Cursor, word string) error {
	if _, err := c.ExpectKeyword(literal.EXTEND); err != nil {
		return err
	}
	_, err := c.ExpectKeyword(word)
	return err
}

func extensionNameHead(d *Director, word string) (*ast.Name, error) {
	if err := extensionHead(d.Cursor(), word); err != nil {
		return nil, err
	}
	return buildAs[*ast.Name](d, SymbolName)
}
