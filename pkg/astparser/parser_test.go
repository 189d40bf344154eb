package astparser

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jensneuse/diffview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	gqlast "github.com/vektah/gqlparser/v2/ast"
	gqlparser "github.com/vektah/gqlparser/v2/parser"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/graphqlerrors"
	"github.com/wundergraph/gqlast/pkg/testing/goldie"
)

func TestParser_Parse(t *testing.T) {

	type checkFunc func(t *testing.T, doc *ast.Document, canonical []byte)

	run := func(source string, checks ...checkFunc) func(t *testing.T) {
		return func(t *testing.T) {
			doc, err := Parse(source, Options{})
			require.NoError(t, err)
			require.NotEmpty(t, doc.Definitions)

			canonical, err := ast.MarshalNode(doc)
			require.NoError(t, err)
			for i := range checks {
				checks[i](t, doc, canonical)
			}
		}
	}

	runErr := func(source, message string) func(t *testing.T) {
		return func(t *testing.T) {
			doc, err := Parse(source, Options{})
			require.Error(t, err)
			assert.Nil(t, doc)

			var syntaxErr *graphqlerrors.SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "got: %v", err)
			assert.Equal(t, message, syntaxErr.Message)
		}
	}

	hasValue := func(path, want string) checkFunc {
		return func(t *testing.T, doc *ast.Document, canonical []byte) {
			result := gjson.GetBytes(canonical, path)
			require.True(t, result.Exists(), "path: %s", path)
			assert.Equal(t, want, result.String(), "path: %s", path)
		}
	}

	hasNull := func(path string) checkFunc {
		return func(t *testing.T, doc *ast.Document, canonical []byte) {
			assert.Equal(t, "null", gjson.GetBytes(canonical, path).Raw, "path: %s", path)
		}
	}

	matchesFixture := func(name string) checkFunc {
		return func(t *testing.T, doc *ast.Document, canonical []byte) {
			goldie.Assert(t, name, canonical)
			if t.Failed() {
				fixture, err := os.ReadFile("./fixtures/" + name + ".golden")
				if err != nil {
					t.Fatal(err)
				}

				diffview.NewGoland().DiffViewBytes(name, fixture, canonical)
			}
		}
	}

	t.Run("anonymous query", run("{ a }",
		matchesFixture("query_a"),
		func(t *testing.T, doc *ast.Document, canonical []byte) {
			operation, ok := doc.Definitions[0].(*ast.OperationDefinition)
			require.True(t, ok)
			assert.Equal(t, ast.OperationTypeQuery, operation.Operation)
			assert.Nil(t, operation.Name)
			require.Len(t, operation.SelectionSet.Selections, 1)
			field := operation.SelectionSet.Selections[0].(*ast.Field)
			assert.Equal(t, "a", field.Name.Value)
			assert.Nil(t, field.Alias)
			assert.Nil(t, field.SelectionSet)
		},
	))
	t.Run("object type definition", run("type Hello { world: String }",
		matchesFixture("object_type_hello"),
	))
	t.Run("named operations", run("query Q { a } mutation M { b } subscription S { c }",
		hasValue("definitions.0.operation", "query"),
		hasValue("definitions.0.name.value", "Q"),
		hasValue("definitions.1.operation", "mutation"),
		hasValue("definitions.1.name.value", "M"),
		hasValue("definitions.2.operation", "subscription"),
		hasValue("definitions.2.name.value", "S"),
	))
	t.Run("operation without name", run("query { a }",
		hasValue("definitions.0.operation", "query"),
		hasNull("definitions.0.name"),
	))
	t.Run("executable document", run(`query Q($id: ID! = 1 @v, $list: [Int!]) @op {
			u: user(id: $id, filter: {a: [1, 2.5, "s", true, null, ENUM]}) @include(if: true) {
				...F
				... on User { name }
				... @skip(if: false) { id }
			}
		}`,
		hasValue("definitions.0.variableDefinitions.0.variable.name.value", "id"),
		hasValue("definitions.0.variableDefinitions.0.type.kind", "NonNullType"),
		hasValue("definitions.0.variableDefinitions.0.type.type.name.value", "ID"),
		hasValue("definitions.0.variableDefinitions.0.defaultValue.raw", "1"),
		hasValue("definitions.0.variableDefinitions.0.directives.0.name.value", "v"),
		hasValue("definitions.0.variableDefinitions.1.type.kind", "ListType"),
		hasValue("definitions.0.variableDefinitions.1.type.type.kind", "NonNullType"),
		hasNull("definitions.0.variableDefinitions.1.defaultValue"),
		hasValue("definitions.0.directives.0.name.value", "op"),
		hasValue("definitions.0.selectionSet.selections.0.alias.value", "u"),
		hasValue("definitions.0.selectionSet.selections.0.name.value", "user"),
		hasValue("definitions.0.selectionSet.selections.0.arguments.0.value.kind", "Variable"),
		hasValue("definitions.0.selectionSet.selections.0.arguments.1.value.fields.0.value.values.#", "6"),
		hasValue("definitions.0.selectionSet.selections.0.arguments.1.value.fields.0.value.values.1.kind", "FloatValue"),
		hasValue("definitions.0.selectionSet.selections.0.arguments.1.value.fields.0.value.values.2.value", "s"),
		hasValue("definitions.0.selectionSet.selections.0.arguments.1.value.fields.0.value.values.3.value", "true"),
		hasValue("definitions.0.selectionSet.selections.0.arguments.1.value.fields.0.value.values.4.kind", "NullValue"),
		hasValue("definitions.0.selectionSet.selections.0.arguments.1.value.fields.0.value.values.5.name", "ENUM"),
		hasValue("definitions.0.selectionSet.selections.0.directives.0.arguments.0.value.value", "true"),
		hasValue("definitions.0.selectionSet.selections.0.selectionSet.selections.0.kind", "FragmentSpread"),
		hasValue("definitions.0.selectionSet.selections.0.selectionSet.selections.0.name.value", "F"),
		hasValue("definitions.0.selectionSet.selections.0.selectionSet.selections.1.kind", "InlineFragment"),
		hasValue("definitions.0.selectionSet.selections.0.selectionSet.selections.1.typeCondition.name.value", "User"),
		hasValue("definitions.0.selectionSet.selections.0.selectionSet.selections.2.kind", "InlineFragment"),
		hasNull("definitions.0.selectionSet.selections.0.selectionSet.selections.2.typeCondition"),
		hasValue("definitions.0.selectionSet.selections.0.selectionSet.selections.2.directives.0.name.value", "skip"),
	))
	t.Run("empty list and object values", run("{ a(b: [], c: {}) }",
		hasValue("definitions.0.selectionSet.selections.0.arguments.0.value.values.#", "0"),
		hasValue("definitions.0.selectionSet.selections.0.arguments.1.value.fields.#", "0"),
	))
	t.Run("block string value", run(`{ a(b: """  x""") }`,
		hasValue("definitions.0.selectionSet.selections.0.arguments.0.value.value", "  x"),
		hasValue("definitions.0.selectionSet.selections.0.arguments.0.value.block", "true"),
	))
	t.Run("fragment definition with variables", run("fragment F($a: Int = 2) on User @d { id }",
		hasValue("definitions.0.kind", "FragmentDefinition"),
		hasValue("definitions.0.name.value", "F"),
		hasValue("definitions.0.variableDefinitions.0.defaultValue.raw", "2"),
		hasValue("definitions.0.typeCondition.name.value", "User"),
		hasValue("definitions.0.directives.0.name.value", "d"),
	))
	t.Run("union with leading pipe", run("union Hello = | Wo | Rld",
		func(t *testing.T, doc *ast.Document, canonical []byte) {
			union, ok := doc.Definitions[0].(*ast.UnionTypeDefinition)
			require.True(t, ok)
			assert.Equal(t, "Hello", union.Name.Value)
			require.Len(t, union.Types, 2)
			assert.Equal(t, "Wo", union.Types[0].Name.Value)
			assert.Equal(t, "Rld", union.Types[1].Name.Value)
		},
	))
	t.Run("descriptions", run(`"""the schema""" schema { query: Query }
		"a scalar" scalar Date @specifiedBy(url: "x")
		"""
		An object
		"""
		type A {
			"a field"
			f("an argument" a: Int = 1 @d): [A]!
		}
		"an enum" enum E { "a value" V }
		"a directive" directive @d on FIELD`,
		hasValue("definitions.0.kind", "SchemaDefinition"),
		hasValue("definitions.0.description.value", "the schema"),
		hasValue("definitions.0.description.block", "true"),
		hasValue("definitions.0.operationTypes.0.operation", "query"),
		hasValue("definitions.0.operationTypes.0.type.name.value", "Query"),
		hasValue("definitions.1.description.value", "a scalar"),
		hasValue("definitions.1.directives.0.name.value", "specifiedBy"),
		hasValue("definitions.2.description.value", "An object"),
		hasValue("definitions.2.fields.0.description.value", "a field"),
		hasValue("definitions.2.fields.0.arguments.0.description.value", "an argument"),
		hasValue("definitions.2.fields.0.arguments.0.defaultValue.raw", "1"),
		hasValue("definitions.2.fields.0.arguments.0.directives.0.name.value", "d"),
		hasValue("definitions.2.fields.0.type.kind", "NonNullType"),
		hasValue("definitions.2.fields.0.type.type.kind", "ListType"),
		hasValue("definitions.3.values.0.description.value", "a value"),
		hasValue("definitions.4.description.value", "a directive"),
	))
	t.Run("implements interfaces", run("type A implements & B & C { a: Int } interface I implements J { a: Int }",
		hasValue("definitions.0.interfaces.#", "2"),
		hasValue("definitions.0.interfaces.0.name.value", "B"),
		hasValue("definitions.0.interfaces.1.name.value", "C"),
		hasValue("definitions.1.kind", "InterfaceTypeDefinition"),
		hasValue("definitions.1.interfaces.0.name.value", "J"),
	))
	t.Run("type without fields", run("type Query",
		hasValue("definitions.0.fields.#", "0"),
	))
	t.Run("input object", run("input I { a: Int = 1, b: [String!]! }",
		hasValue("definitions.0.kind", "InputObjectTypeDefinition"),
		hasValue("definitions.0.fields.#", "2"),
		hasValue("definitions.0.fields.1.type.type.type.type.name.value", "String"),
	))
	t.Run("directive definition", run(`directive @delegate(field: String = "id") repeatable on | FIELD_DEFINITION | OBJECT`,
		hasValue("definitions.0.name.value", "delegate"),
		hasValue("definitions.0.arguments.0.defaultValue.value", "id"),
		hasValue("definitions.0.repeatable", "true"),
		hasValue("definitions.0.locations.#", "2"),
		hasValue("definitions.0.locations.0.value", "FIELD_DEFINITION"),
		hasValue("definitions.0.locations.1.value", "OBJECT"),
	))
	t.Run("type system extensions", run(`extend schema @d { query: Q }
		extend scalar S @d
		extend type T implements I
		extend interface I { a: Int }
		extend union U = A | B
		extend enum E { A }
		extend input In { a: Int }`,
		hasValue("definitions.0.kind", "SchemaExtension"),
		hasValue("definitions.0.operationTypes.0.type.name.value", "Q"),
		hasValue("definitions.1.kind", "ScalarTypeExtension"),
		hasValue("definitions.2.kind", "ObjectTypeExtension"),
		hasValue("definitions.2.interfaces.0.name.value", "I"),
		hasValue("definitions.3.kind", "InterfaceTypeExtension"),
		hasValue("definitions.4.kind", "UnionTypeExtension"),
		hasValue("definitions.4.types.#", "2"),
		hasValue("definitions.5.kind", "EnumTypeExtension"),
		hasValue("definitions.6.kind", "InputObjectTypeExtension"),
	))
	t.Run("mixed document", run("type Query { a: Int } { a }",
		hasValue("definitions.0.kind", "ObjectTypeDefinition"),
		hasValue("definitions.1.kind", "OperationDefinition"),
	))

	t.Run("empty document", runErr("", "Unexpected <EOF>"))
	t.Run("extension without components", runErr("extend type Hello", "Unexpected <EOF>"))
	t.Run("empty scalar extension", runErr("extend scalar S type A", `Unexpected Name "type"`))
	t.Run("unknown directive location", runErr("directive @foo on FIELD | INCORRECT_LOCATION", `Unexpected Name "INCORRECT_LOCATION"`))
	t.Run("empty selection set", runErr("{}", `Expected Name, found "}"`))
	t.Run("unclosed selection set", runErr("query { a", "Expected Name, found <EOF>"))
	t.Run("missing value", runErr("{ a(b: ) }", `Unexpected ")"`))
	t.Run("fragment without type condition", runErr("fragment F User { a }", `Expected "on", found Name "User"`))
	t.Run("fragment named on", runErr("fragment on on User { id }", `Unexpected Name "on"`))
	t.Run("unknown definition", runErr("foo { a }", `Unexpected Name "foo"`))
	t.Run("described operation", runErr(`"desc" query { a }`, `Unexpected Name "query"`))
	t.Run("unknown extension", runErr("extend foo", `Unexpected Name "foo"`))
	t.Run("nested non null", runErr("query Q($a: Int!!) { a }", `Expected "$", found "!"`))
	t.Run("reserved enum value", runErr("enum E { true }", "true is reserved and cannot be used for an enum value."))
	t.Run("variable in default value", runErr("type A { f(a: Int = $x): Int }", `Unexpected variable "$x" in constant value.`))
	t.Run("variable in schema directive", runErr("type A @d(a: $x) { f: Int }", `Unexpected variable "$x" in constant value.`))
	t.Run("variable in variable default", runErr("query Q($a: Int = $b) { a }", `Unexpected variable "$b" in constant value.`))
	t.Run("lexer error", runErr("{ a ? }", `Cannot parse the unexpected character "?".`))
}

func TestParser_ErrorPosition(t *testing.T) {
	_, err := Parse("{\n  a(b: )\n}", Options{})
	require.Error(t, err)
	assert.Equal(t, `Syntax Error: Unexpected ")" (2:8)`, err.Error())

	var syntaxErr *graphqlerrors.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, ast.Location{Start: 9, End: 10}, syntaxErr.Location)
}

func TestParser_NoLocation(t *testing.T) {
	doc, err := Parse(`query Q($a: [Int!] = [1]) { a(b: {c: "d"}) ... on T { e } } type T implements I { f: Int }`, Options{NoLocation: true})
	require.NoError(t, err)
	assert.Nil(t, doc.Location())

	canonical, err := ast.MarshalNode(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(canonical), `"start"`)
}

func TestParser_LocationBounds(t *testing.T) {
	source := `
		# a comment
		query Q($id: ID! = 1, $list: [Int!]) @op {
			u: user(id: $id, filter: {a: [1, 2.5, "s", """block""", true, null, ENUM]}) {
				...F
				... on User { name }
			}
		}
		fragment F on User { id }
		"""described""" type User implements Node @key(fields: "id") { id: ID! friends(first: Int = 10): [User!] }
		union U = | A | B
		directive @d(a: String) repeatable on FIELD | OBJECT
		extend enum E @d
	`
	doc, err := Parse(source, Options{})
	require.NoError(t, err)

	canonical, err := ast.MarshalNode(doc)
	require.NoError(t, err)

	var locations []gjson.Result
	var collect func(value gjson.Result)
	collect = func(value gjson.Result) {
		if value.IsObject() {
			if loc := value.Get("loc"); loc.IsObject() {
				locations = append(locations, loc)
			}
		}
		if value.IsObject() || value.IsArray() {
			value.ForEach(func(_, child gjson.Result) bool {
				collect(child)
				return true
			})
		}
	}
	collect(gjson.ParseBytes(canonical))

	require.NotEmpty(t, locations)
	for _, loc := range locations {
		start, end := loc.Get("start").Int(), loc.Get("end").Int()
		assert.True(t, 0 <= start && start <= end && end <= int64(len(source)), "loc: %s", loc.Raw)
	}
	assert.Equal(t, &ast.Location{Start: 0, End: len(source)}, doc.Location())
}

func TestParser_Limits(t *testing.T) {
	t.Run("depth within limit", func(t *testing.T) {
		_, err := Parse("{ a { b { c } } }", Options{MaxDepth: 3})
		assert.NoError(t, err)
	})
	t.Run("depth exceeded", func(t *testing.T) {
		_, err := Parse("{ a { b { c } } }", Options{MaxDepth: 2})
		require.Error(t, err)
		var syntaxErr *graphqlerrors.SyntaxError
		require.True(t, errors.As(err, &syntaxErr))
		assert.Equal(t, "allowed parsing depth per GraphQL document of '2' exceeded", syntaxErr.Message)
	})
	t.Run("list types count as depth", func(t *testing.T) {
		_, err := Parse("query ($a: [[[Int]]]) { a }", Options{MaxDepth: 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "allowed parsing depth per GraphQL document of '3' exceeded")
	})
	t.Run("tokens within limit", func(t *testing.T) {
		_, err := Parse("{ a b c }", Options{MaxTokens: 5})
		assert.NoError(t, err)
	})
	t.Run("tokens exceeded", func(t *testing.T) {
		_, err := Parse("{ a b c }", Options{MaxTokens: 4})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "allowed number of tokens per GraphQL document of '4' exceeded")
	})
}

func TestParser_ParseValue(t *testing.T) {
	value, err := ParseValue(`[1, $a, {b: "c"}]`, Options{})
	require.NoError(t, err)
	list, ok := value.(*ast.ListValue)
	require.True(t, ok)
	require.Len(t, list.Values, 3)
	assert.IsType(t, &ast.IntValue{}, list.Values[0])
	assert.IsType(t, &ast.Variable{}, list.Values[1])
	assert.IsType(t, &ast.ObjectValue{}, list.Values[2])

	_, err = NewParser(Options{}).ParseConstValue(`[1, $a]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Unexpected variable "$a" in constant value.`)

	_, err = ParseValue(`1 2`, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Expected <EOF>, found Int "2"`)
}

func TestParser_ParseType(t *testing.T) {
	typ, err := ParseType("[String!]!", Options{})
	require.NoError(t, err)
	assert.Equal(t, "[String!]!", ast.TypeString(typ))

	nonNull, ok := typ.(*ast.NonNullType)
	require.True(t, ok)
	list, ok := nonNull.Type.(*ast.ListType)
	require.True(t, ok)
	assert.IsType(t, &ast.NonNullType{}, list.Type)

	_, err = ParseType("String extra", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Expected <EOF>, found Name "extra"`)
}

func TestParseGraphqlDocumentString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		doc, report := ParseGraphqlDocumentString("{ a }")
		assert.False(t, report.HasErrors())
		assert.Len(t, doc.Definitions, 1)
	})
	t.Run("syntax error", func(t *testing.T) {
		doc, report := ParseGraphqlDocumentBytes([]byte("{\n  a(b: )\n}"))
		assert.Nil(t, doc)
		require.True(t, report.HasErrors())
		require.Len(t, report.ExternalErrors, 1)
		assert.Empty(t, report.InternalErrors)
		assert.Equal(t, `Unexpected ")"`, report.ExternalErrors[0].Message)
		assert.Equal(t, uint32(2), report.ExternalErrors[0].Locations[0].Line)
		assert.Equal(t, uint32(8), report.ExternalErrors[0].Locations[0].Column)
	})
}

func TestRegistry(t *testing.T) {
	t.Run("custom builder", func(t *testing.T) {
		errNoDescriptions := errors.New("descriptions are not allowed")
		parser := NewParser(Options{}, WithBuilder(SymbolDescription, BuilderFunc(func(d *Director) (ast.Node, error) {
			return nil, errNoDescriptions
		})))

		_, err := parser.Parse(`"desc" scalar S`)
		assert.ErrorIs(t, err, errNoDescriptions)

		_, err = parser.Parse(`scalar S`)
		assert.NoError(t, err)
	})
	t.Run("missing builder", func(t *testing.T) {
		parser := NewParser(Options{}, WithBuilder(SymbolName, nil))
		_, err := parser.Parse("{ a }")
		require.Error(t, err)
		assert.Equal(t, "astparser: no builder registered for symbol Name", err.Error())
	})
	t.Run("builder returning the wrong node", func(t *testing.T) {
		parser := NewParser(Options{}, WithBuilder(SymbolSelectionSet, BuilderFunc(func(d *Director) (ast.Node, error) {
			return &ast.Name{Value: "selections"}, nil
		})))
		_, err := parser.Parse("query { a }")
		require.Error(t, err)
		assert.Equal(t, "astparser: builder for SelectionSet returned *ast.Name", err.Error())
	})
	t.Run("unknown symbol", func(t *testing.T) {
		_, ok := NewRegistry().Builder(SymbolUnknown)
		assert.False(t, ok)
		_, ok = NewRegistry().Builder(Symbol(1000))
		assert.False(t, ok)
		assert.Equal(t, "Symbol(1000)", Symbol(1000).String())
	})
}

func TestParser_Concurrent(t *testing.T) {
	parser := NewParser(Options{})
	sources := []string{
		"{ a }",
		"type Hello { world: String }",
		"query Q($a: Int) { b(c: $a) { d } }",
		"union U = A | B",
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(sources)*10)
	for i := 0; i < len(sources)*10; i++ {
		wg.Add(1)
		go func(source string) {
			defer wg.Done()
			if _, err := parser.Parse(source); err != nil {
				errs <- err
			}
		}(sources[i%len(sources)])
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

// TestParser_SchemaMatchesGqlparser parses the same schema with github.com/vektah/gqlparser and
// compares the shape of every type and directive definition.
func TestParser_SchemaMatchesGqlparser(t *testing.T) {
	schema := `
		scalar Date
		"an entity"
		interface Node { id: ID! }
		type User implements Node & Entity @key(fields: "id") {
			id: ID!
			name(upper: Boolean = false): String
			friends: [User!]!
		}
		type Query { user(id: ID!): User search(term: String): [SearchResult] }
		union SearchResult = | User | Photo
		enum Color { RED GREEN BLUE }
		input Filter { color: Color = RED, from: Date }
		directive @key(fields: String!) repeatable on OBJECT | INTERFACE
	`

	doc, err := Parse(schema, Options{})
	require.NoError(t, err)

	var got []string
	for _, definition := range doc.Definitions {
		switch n := definition.(type) {
		case *ast.ScalarTypeDefinition:
			got = append(got, fmt.Sprintf("SCALAR %s", n.Name.Value))
		case *ast.ObjectTypeDefinition:
			got = append(got, fmt.Sprintf("OBJECT %s fields=%d interfaces=%d", n.Name.Value, len(n.Fields), len(n.Interfaces)))
		case *ast.InterfaceTypeDefinition:
			got = append(got, fmt.Sprintf("INTERFACE %s fields=%d interfaces=%d", n.Name.Value, len(n.Fields), len(n.Interfaces)))
		case *ast.UnionTypeDefinition:
			got = append(got, fmt.Sprintf("UNION %s types=%d", n.Name.Value, len(n.Types)))
		case *ast.EnumTypeDefinition:
			got = append(got, fmt.Sprintf("ENUM %s values=%d", n.Name.Value, len(n.Values)))
		case *ast.InputObjectTypeDefinition:
			got = append(got, fmt.Sprintf("INPUT_OBJECT %s fields=%d", n.Name.Value, len(n.Fields)))
		case *ast.DirectiveDefinition:
			got = append(got, fmt.Sprintf("DIRECTIVE %s locations=%d repeatable=%t", n.Name.Value, len(n.Locations), n.Repeatable))
		}
	}

	oracle, gqlErr := gqlparser.ParseSchema(&gqlast.Source{Name: "schema.graphql", Input: schema})
	require.Nil(t, gqlErr)

	var want []string
	for _, definition := range oracle.Definitions {
		switch definition.Kind {
		case gqlast.Scalar:
			want = append(want, fmt.Sprintf("SCALAR %s", definition.Name))
		case gqlast.Object, gqlast.Interface:
			want = append(want, fmt.Sprintf("%s %s fields=%d interfaces=%d", definition.Kind, definition.Name, len(definition.Fields), len(definition.Interfaces)))
		case gqlast.Union:
			want = append(want, fmt.Sprintf("UNION %s types=%d", definition.Name, len(definition.Types)))
		case gqlast.Enum:
			want = append(want, fmt.Sprintf("ENUM %s values=%d", definition.Name, len(definition.EnumValues)))
		case gqlast.InputObject:
			want = append(want, fmt.Sprintf("INPUT_OBJECT %s fields=%d", definition.Name, len(definition.Fields)))
		}
	}
	for _, directive := range oracle.Directives {
		want = append(want, fmt.Sprintf("DIRECTIVE %s locations=%d repeatable=%t", directive.Name, len(directive.Locations), directive.IsRepeatable))
	}

	sort.Strings(got)
	sort.Strings(want)
	if !assert.Equal(t, want, got) {
		t.Log(spew.Sdump(oracle.Definitions))
	}
}
