package astparser

import (
	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/lexer/keyword"
	"github.com/wundergraph/gqlast/pkg/lexer/literal"
)

// buildTypeSystemDefinition looks past an optional description to the keyword selecting the definition.
func buildTypeSystemDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	keywordToken := c.Token()
	if peekDescription(c) {
		var err error
		if keywordToken, err = c.Lookahead(); err != nil {
			return nil, err
		}
	}

	if keywordToken.Keyword == keyword.IDENT {
		switch keywordToken.Value {
		case literal.SCHEMA:
			return d.Build(SymbolSchemaDefinition)
		case literal.SCALAR:
			return d.Build(SymbolScalarTypeDefinition)
		case literal.TYPE:
			return d.Build(SymbolObjectTypeDefinition)
		case literal.INTERFACE:
			return d.Build(SymbolInterfaceTypeDefinition)
		case literal.UNION:
			return d.Build(SymbolUnionTypeDefinition)
		case literal.ENUM:
			return d.Build(SymbolEnumTypeDefinition)
		case literal.INPUT:
			return d.Build(SymbolInputObjectTypeDefinition)
		case literal.DIRECTIVE:
			return d.Build(SymbolDirectiveDefinition)
		}
	}

	return nil, c.Unexpected(&keywordToken)
}

// buildSchemaDefinition
//
//	schema @foo { query: Query mutation: Mutation }
func buildSchemaDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, err := optionalDescription(d)
	if err != nil {
		return nil, err
	}
	if _, err = c.ExpectKeyword(literal.SCHEMA); err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	operationTypes, err := Many(c, keyword.LBRACE, builds[*ast.OperationTypeDefinition](d, SymbolOperationTypeDefinition), keyword.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.SchemaDefinition{
		Loc:            c.Location(start),
		Description:    description,
		Directives:     directives,
		OperationTypes: operationTypes,
	}, nil
}

func buildOperationTypeDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	operation, err := parseOperationType(c)
	if err != nil {
		return nil, err
	}
	if _, err = c.Expect(keyword.COLON); err != nil {
		return nil, err
	}
	typ, err := buildAs[*ast.NamedType](d, SymbolNamedType)
	if err != nil {
		return nil, err
	}
	return &ast.OperationTypeDefinition{
		Loc:       c.Location(start),
		Operation: operation,
		Type:      typ,
	}, nil
}

func buildScalarTypeDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, name, err := definitionHead(d, literal.SCALAR)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	return &ast.ScalarTypeDefinition{
		Loc:         c.Location(start),
		Description: description,
		Name:        name,
		Directives:  directives,
	}, nil
}

// buildObjectTypeDefinition
//
//	"a user" type User implements Node & Entity @key(fields: "id") { id: ID! }
func buildObjectTypeDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, name, err := definitionHead(d, literal.TYPE)
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
	return &ast.ObjectTypeDefinition{
		Loc:         c.Location(start),
		Description: description,
		Name:        name,
		Interfaces:  interfaces,
		Directives:  directives,
		Fields:      fields,
	}, nil
}

// buildFieldDefinition
//
//	"the picture" profilePic(size: Int = 64): Url @deprecated
func buildFieldDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, err := optionalDescription(d)
	if err != nil {
		return nil, err
	}
	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}
	arguments, err := buildArgumentsDefinition(d)
	if err != nil {
		return nil, err
	}
	if _, err = c.Expect(keyword.COLON); err != nil {
		return nil, err
	}
	typ, err := buildAs[ast.Type](d, SymbolType)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	return &ast.FieldDefinition{
		Loc:         c.Location(start),
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        typ,
		Directives:  directives,
	}, nil
}

func buildInputValueDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, err := optionalDescription(d)
	if err != nil {
		return nil, err
	}
	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}
	if _, err = c.Expect(keyword.COLON); err != nil {
		return nil, err
	}
	typ, err := buildAs[ast.Type](d, SymbolType)
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	hasDefault, err := c.Skip(keyword.EQUALS)
	if err != nil {
		return nil, err
	}
	if hasDefault {
		if defaultValue, err = buildConstAs[ast.Value](d, SymbolValue); err != nil {
			return nil, err
		}
	}

	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	return &ast.InputValueDefinition{
		Loc:          c.Location(start),
		Description:  description,
		Name:         name,
		Type:         typ,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

func buildInterfaceTypeDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, name, err := definitionHead(d, literal.INTERFACE)
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
	return &ast.InterfaceTypeDefinition{
		Loc:         c.Location(start),
		Description: description,
		Name:        name,
		Interfaces:  interfaces,
		Directives:  directives,
		Fields:      fields,
	}, nil
}

// buildUnionTypeDefinition
//
//	union SearchResult = | Photo | Person
func buildUnionTypeDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, name, err := definitionHead(d, literal.UNION)
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
	return &ast.UnionTypeDefinition{
		Loc:         c.Location(start),
		Description: description,
		Name:        name,
		Directives:  directives,
		Types:       types,
	}, nil
}

func buildEnumTypeDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, name, err := definitionHead(d, literal.ENUM)
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
	return &ast.EnumTypeDefinition{
		Loc:         c.Location(start),
		Description: description,
		Name:        name,
		Directives:  directives,
		Values:      values,
	}, nil
}

func buildEnumValueDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, err := optionalDescription(d)
	if err != nil {
		return nil, err
	}
	tok := c.Token()
	switch {
	case tok.IsIdent(literal.TRUE), tok.IsIdent(literal.FALSE), tok.IsIdent(literal.NULL):
		return nil, c.Errorf(tok, "%s is reserved and cannot be used for an enum value.", tok.Value)
	}
	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}
	directives, err := buildDirectives(d, true)
	if err != nil {
		return nil, err
	}
	return &ast.EnumValueDefinition{
		Loc:         c.Location(start),
		Description: description,
		Name:        name,
		Directives:  directives,
	}, nil
}

func buildInputObjectTypeDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, name, err := definitionHead(d, literal.INPUT)
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
	return &ast.InputObjectTypeDefinition{
		Loc:         c.Location(start),
		Description: description,
		Name:        name,
		Directives:  directives,
		Fields:      fields,
	}, nil
}

// buildDirectiveDefinition
//
//	directive @delegate(field: String) repeatable on FIELD_DEFINITION | OBJECT
func buildDirectiveDefinition(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	description, err := optionalDescription(d)
	if err != nil {
		return nil, err
	}
	if _, err = c.ExpectKeyword(literal.DIRECTIVE); err != nil {
		return nil, err
	}
	if _, err = c.Expect(keyword.AT); err != nil {
		return nil, err
	}
	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}
	arguments, err := buildArgumentsDefinition(d)
	if err != nil {
		return nil, err
	}
	repeatable, err := c.SkipKeyword(literal.REPEATABLE)
	if err != nil {
		return nil, err
	}
	if _, err = c.ExpectKeyword(literal.ON); err != nil {
		return nil, err
	}
	locations, err := DelimitedMany(c, keyword.PIPE, builds[*ast.Name](d, SymbolDirectiveLocation))
	if err != nil {
		return nil, err
	}
	return &ast.DirectiveDefinition{
		Loc:         c.Location(start),
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   locations,
	}, nil
}

// buildDirectiveLocation is a name out of the fixed set of directive locations.
func buildDirectiveLocation(d *Director) (ast.Node, error) {
	c := d.Cursor()
	start := c.Token()
	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, err
	}
	if _, ok := ast.ParseDirectiveLocation(name.Value); !ok {
		return nil, c.Unexpected(&start)
	}
	return name, nil
}

// definitionHead parses the optional description, the definition keyword and the name shared by
// most type definitions.
func definitionHead(d *Director, word string) (*ast.StringValue, *ast.Name, error) {
	description, err := optionalDescription(d)
	if err != nil {
		return nil, nil, err
	}
	if _, err = d.Cursor().ExpectKeyword(word); err != nil {
		return nil, nil, err
	}
	name, err := buildAs[*ast.Name](d, SymbolName)
	if err != nil {
		return nil, nil, err
	}
	return description, name, nil
}

// buildImplementsInterfaces
//
//	implements & Node & Entity
func buildImplementsInterfaces(d *Director) ([]*ast.NamedType, error) {
	c := d.Cursor()
	implements, err := c.SkipKeyword(literal.IMPLEMENTS)
	if err != nil || !implements {
		return nil, err
	}
	return DelimitedMany(c, keyword.AND, builds[*ast.NamedType](d, SymbolNamedType))
}

func buildFieldsDefinition(d *Director) ([]*ast.FieldDefinition, error) {
	return OptionalMany(d.Cursor(), keyword.LBRACE, builds[*ast.FieldDefinition](d, SymbolFieldDefinition), keyword.RBRACE)
}

func buildArgumentsDefinition(d *Director) ([]*ast.InputValueDefinition, error) {
	return OptionalMany(d.Cursor(), keyword.LPAREN, builds[*ast.InputValueDefinition](d, SymbolInputValueDefinition), keyword.RPAREN)
}

func buildInputFieldsDefinition(d *Director) ([]*ast.InputValueDefinition, error) {
	return OptionalMany(d.Cursor(), keyword.LBRACE, builds[*ast.InputValueDefinition](d, SymbolInputValueDefinition), keyword.RBRACE)
}

func buildEnumValuesDefinition(d *Director) ([]*ast.EnumValueDefinition, error) {
	return OptionalMany(d.Cursor(), keyword.LBRACE, builds[*ast.EnumValueDefinition](d, SymbolEnumValueDefinition), keyword.RBRACE)
}

func buildUnionMemberTypes(d *Director) ([]*ast.NamedType, error) {
	c := d.Cursor()
	hasMembers, err := c.Skip(keyword.EQUALS)
	if err != nil || !hasMembers {
		return nil, err
	}
	return DelimitedMany(c, keyword.PIPE, builds[*ast.NamedType](d, SymbolNamedType))
}

