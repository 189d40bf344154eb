package astvisitor

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/astparser"
	"github.com/wundergraph/gqlast/pkg/operationreport"
)

func mustParse(t *testing.T, source string) *ast.Document {
	t.Helper()
	doc, err := astparser.Parse(source, astparser.Options{})
	require.NoError(t, err)
	return doc
}

// printSelections renders the field names of the first operation: a, c{a, c}
func printSelections(t *testing.T, node ast.Node) string {
	t.Helper()
	doc, ok := node.(*ast.Document)
	require.True(t, ok, "got: %T", node)
	operation, ok := doc.Definitions[0].(*ast.OperationDefinition)
	require.True(t, ok)
	return printSelectionSet(operation.SelectionSet)
}

func printSelectionSet(set *ast.SelectionSet) string {
	parts := make([]string, 0, len(set.Selections))
	for _, selection := range set.Selections {
		field := selection.(*ast.Field)
		part := field.Name.Value
		if field.SelectionSet != nil {
			part += "{" + printSelectionSet(field.SelectionSet) + "}"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

// fieldRecorder records the names of entered and left fields
type fieldRecorder struct {
	entered []string
	left    []string
	onEnter func(field *ast.Field, w *Walker) ast.Node
	onLeave func(field *ast.Field, w *Walker) ast.Node
}

func (r *fieldRecorder) EnterNode(node ast.Node, w *Walker) ast.Node {
	field, ok := node.(*ast.Field)
	if !ok {
		return node
	}
	r.entered = append(r.entered, field.Name.Value)
	if r.onEnter != nil {
		return r.onEnter(field, w)
	}
	return node
}

func (r *fieldRecorder) LeaveNode(node ast.Node, w *Walker) ast.Node {
	field, ok := node.(*ast.Field)
	if !ok {
		return node
	}
	r.left = append(r.left, field.Name.Value)
	if r.onLeave != nil {
		return r.onLeave(field, w)
	}
	return node
}

func deleteFieldsNamed(name string) func(field *ast.Field, w *Walker) ast.Node {
	return func(field *ast.Field, w *Walker) ast.Node {
		if field.Name.Value == name {
			return nil
		}
		return field
	}
}

func TestWalk_Identity(t *testing.T) {
	doc := mustParse(t, `
		query Q($id: ID! = 1) @op { u: user(id: $id, f: {a: [1, "s", null]}) { ...F ... on User { name } } }
		fragment F on User { id }
		"desc" type User implements Node @key(fields: "id") { id: ID! friends(first: Int = 10): [User!] }
		union U = A | B
		directive @d(a: String) repeatable on FIELD | OBJECT
		extend enum E @d
	`)

	result, err := Walk(doc, VisitorFuncs{})
	require.NoError(t, err)

	assert.True(t, ast.Equal(doc, result))
	assert.NotSame(t, doc, result)
	assert.Empty(t, deep.Equal(doc, result))
	assert.Empty(t, cmp.Diff(doc, result))
}

func TestWalk_DeleteField(t *testing.T) {
	doc := mustParse(t, "{ a, b, c { a, b, c } }")

	var paths []string
	recorder := &fieldRecorder{
		onEnter: func(field *ast.Field, w *Walker) ast.Node {
			paths = append(paths, w.Path.String())
			return deleteFieldsNamed("b")(field, w)
		},
	}

	result, err := Walk(doc, recorder)
	require.NoError(t, err)

	assert.Equal(t, "a, c{a, c}", printSelections(t, result))
	assert.Equal(t, "a, b, c{a, b, c}", printSelections(t, doc), "the input must not change")
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, recorder.entered)
	assert.Equal(t, []string{"a", "a", "c", "c"}, recorder.left)
	assert.Equal(t, []string{
		"[definitions,0,selectionSet,selections,0]",
		"[definitions,0,selectionSet,selections,1]",
		"[definitions,0,selectionSet,selections,1]",
		"[definitions,0,selectionSet,selections,1,selectionSet,selections,0]",
		"[definitions,0,selectionSet,selections,1,selectionSet,selections,1]",
		"[definitions,0,selectionSet,selections,1,selectionSet,selections,1]",
	}, paths)
}

func TestWalk_Ancestors(t *testing.T) {
	doc := mustParse(t, "{ c { a } }")

	visited := false
	visitor := OnKind(ast.NodeKindField, func(node ast.Node, w *Walker) ast.Node {
		field := node.(*ast.Field)
		if field.Name.Value != "a" {
			return node
		}
		visited = true

		assert.Equal(t, 5, w.Depth)
		assert.Len(t, w.Ancestors, 5)
		assert.Equal(t, ast.NodeKindSelectionSet, w.Parent().Kind())
		assert.Equal(t, ast.NodeKindField, w.Ancestor(2).Kind())
		assert.Equal(t, ast.NodeKindDocument, w.Ancestor(5).Kind())
		assert.Nil(t, w.Ancestor(6))
		assert.Nil(t, w.Ancestor(0))
		assert.Equal(t, ast.PathItem{Kind: ast.ArrayIndex, ArrayIndex: 0}, w.Key())
		return node
	}, nil)

	_, err := Walk(doc, visitor)
	require.NoError(t, err)
	assert.True(t, visited)
}

func TestWalk_LeaveReplacementIsNotWalked(t *testing.T) {
	doc := mustParse(t, "{ a b }")

	recorder := &fieldRecorder{
		onLeave: func(field *ast.Field, w *Walker) ast.Node {
			if field.Name.Value != "a" {
				return field
			}
			return &ast.Field{
				Name: &ast.Name{Value: "x"},
				SelectionSet: &ast.SelectionSet{
					Selections: []ast.Selection{
						&ast.Field{Name: &ast.Name{Value: "y"}},
					},
				},
			}
		},
	}

	result, err := Walk(doc, recorder)
	require.NoError(t, err)

	assert.Equal(t, "x{y}, b", printSelections(t, result))
	assert.Equal(t, []string{"a", "b"}, recorder.entered)
	assert.Equal(t, []string{"a", "b"}, recorder.left)
}

func TestWalk_EnterReplacementIsRevisitedOnce(t *testing.T) {
	t.Run("replacement is entered once more", func(t *testing.T) {
		doc := mustParse(t, "{ a }")

		recorder := &fieldRecorder{
			onEnter: func(field *ast.Field, w *Walker) ast.Node {
				if field.Name.Value != "a" {
					return field
				}
				return &ast.Field{Name: &ast.Name{Value: "b"}}
			},
		}

		result, err := Walk(doc, recorder)
		require.NoError(t, err)

		assert.Equal(t, "b", printSelections(t, result))
		assert.Equal(t, []string{"a", "b"}, recorder.entered)
		assert.Equal(t, []string{"b"}, recorder.left)
	})
	t.Run("a visitor that never settles is revisited only once", func(t *testing.T) {
		doc := mustParse(t, "{ a { b } }")

		recorder := &fieldRecorder{
			onEnter: func(field *ast.Field, w *Walker) ast.Node {
				if field.Name.Value != "a" {
					return field
				}
				return ast.ShallowCopy(field)
			},
		}

		result, err := Walk(doc, recorder)
		require.NoError(t, err)

		assert.Equal(t, "a{b}", printSelections(t, result))
		assert.Equal(t, []string{"a", "a"}, recorder.entered)
		assert.Empty(t, recorder.left)
	})
}

func TestWalk_SkipNode(t *testing.T) {
	doc := mustParse(t, "{ a b c { d } e }")

	recorder := &fieldRecorder{
		onEnter: func(field *ast.Field, w *Walker) ast.Node {
			if field.Name.Value == "c" {
				w.SkipNode()
			}
			return field
		},
	}

	result, err := Walk(doc, recorder)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "e"}, recorder.entered)
	assert.Equal(t, []string{"a", "b", "e"}, recorder.left)
	assert.True(t, ast.Equal(doc, result))
}

func TestWalk_Stop(t *testing.T) {
	doc := mustParse(t, "{ a b c { d } }")

	recorder := &fieldRecorder{
		onEnter: func(field *ast.Field, w *Walker) ast.Node {
			if field.Name.Value == "b" {
				w.Stop()
			}
			return field
		},
	}

	result, err := Walk(doc, recorder)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, recorder.entered)
	assert.Equal(t, []string{"a"}, recorder.left)
	assert.Equal(t, "a, b, c{d}", printSelections(t, result))
}

func TestWalk_IncompatibleChild(t *testing.T) {
	doc := mustParse(t, "{ a b }")

	visitor := OnKind(ast.NodeKindField, func(node ast.Node, w *Walker) ast.Node {
		if node.(*ast.Field).Name.Value == "a" {
			return &ast.Name{Value: "oops"}
		}
		return node
	}, nil)

	result, err := Walk(doc, visitor)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleChild))
	assert.Contains(t, err.Error(), "incompatible child: Name cannot be attached to SelectionSet.selections")
	assert.Equal(t, "a, b", printSelections(t, result))
}

func TestWalk_DeletedSlots(t *testing.T) {
	doc := mustParse(t, "{ x: a }")

	visitor := OnKind(ast.NodeKindName, func(node ast.Node, w *Walker) ast.Node {
		return nil
	}, nil)

	result, err := Walk(doc, visitor)
	require.NoError(t, err)

	operation := result.(*ast.Document).Definitions[0].(*ast.OperationDefinition)
	field := operation.SelectionSet.Selections[0].(*ast.Field)
	assert.Nil(t, field.Alias, "optional slots are cleared")
	require.NotNil(t, field.Name, "required slots keep their child")
	assert.Equal(t, "a", field.Name.Value)
}

func TestWalk_StructuralEditDetection(t *testing.T) {
	doc := mustParse(t, "{ a }")

	copying := func(entered *int) Visitor {
		return VisitorFuncs{
			Enter: func(node ast.Node, w *Walker) ast.Node {
				*entered++
				return ast.ShallowCopy(node)
			},
		}
	}

	t.Run("by reference", func(t *testing.T) {
		entered := 0
		result, err := Walk(doc, copying(&entered))
		require.NoError(t, err)
		assert.Equal(t, 2, entered)
		assert.True(t, ast.Equal(doc, result))
	})
	t.Run("structural", func(t *testing.T) {
		entered := 0
		result, err := Walk(doc, copying(&entered), WithStructuralEditDetection())
		require.NoError(t, err)
		assert.Equal(t, 5, entered)
		assert.True(t, ast.Equal(doc, result))
	})
	t.Run("structural detects in place edits", func(t *testing.T) {
		visitor := OnKind(ast.NodeKindName, func(node ast.Node, w *Walker) ast.Node {
			node.(*ast.Name).Value = "z"
			return node
		}, nil)
		result, err := Walk(doc, visitor, WithStructuralEditDetection())
		require.NoError(t, err)
		assert.Equal(t, "z", printSelections(t, result))
		assert.Equal(t, "a", printSelections(t, doc))
	})
}

func TestWalk_Errors(t *testing.T) {
	var doc *ast.Document
	_, err := Walk(doc, VisitorFuncs{})
	assert.ErrorIs(t, err, ErrNodeMustNotBeNil)

	w := NewWalker(OnKind(ast.NodeKindField, func(node ast.Node, w *Walker) ast.Node {
		w.HandleInternalErr(errors.New("boom"))
		return node
	}, nil))
	result, err := w.Walk(mustParse(t, "{ a b }"))
	require.Error(t, err)
	assert.Equal(t, "internal: boom", err.Error())
	assert.NotNil(t, result)
	require.Len(t, w.Report.InternalErrors, 1)

	_, err = w.Walk(mustParse(t, "{ a }"))
	require.Error(t, err)
	assert.Equal(t, "internal: boom", err.Error())
	assert.Len(t, w.Report.InternalErrors, 1)
}

func TestWalker_Reuse(t *testing.T) {
	failing := true
	visitor := OnKind(ast.NodeKindField, func(node ast.Node, w *Walker) ast.Node {
		if failing {
			return &ast.Name{Value: "oops"}
		}
		return node
	}, nil)

	t.Run("errors of an earlier walk are not returned again", func(t *testing.T) {
		failing = true
		w := NewWalker(visitor)

		_, err := w.Walk(mustParse(t, "{ a }"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIncompatibleChild))

		failing = false
		result, err := w.Walk(mustParse(t, "{ b }"))
		require.NoError(t, err)
		assert.Equal(t, "b", printSelections(t, result))
		assert.Empty(t, w.Report.InternalErrors)
	})
	t.Run("shared report collects every walk", func(t *testing.T) {
		failing = true
		report := &operationreport.Report{}
		w := NewWalker(visitor, WithReport(report))

		_, err := w.Walk(mustParse(t, "{ a }"))
		require.Error(t, err)

		failing = false
		_, err = w.Walk(mustParse(t, "{ b }"))
		require.NoError(t, err)

		failing = true
		_, err = w.Walk(mustParse(t, "{ c }"))
		require.Error(t, err)
		assert.Equal(t, "internal: incompatible child: Name cannot be attached to SelectionSet.selections", err.Error())
		assert.Len(t, report.InternalErrors, 2)
		assert.Same(t, report, w.Report)
	})
}

func TestOnKind(t *testing.T) {
	doc := mustParse(t, "{ a { b c } d }")

	entered, left := 0, 0
	_, err := Walk(doc, OnKind(ast.NodeKindField,
		func(node ast.Node, w *Walker) ast.Node {
			entered++
			return node
		},
		func(node ast.Node, w *Walker) ast.Node {
			left++
			return node
		},
	))
	require.NoError(t, err)
	assert.Equal(t, 4, entered)
	assert.Equal(t, 4, left)
}
