//go:generate mockgen -source=visitor.go -destination=../mocks/visitor/mock_visitor.go

// Package astvisitor walks and rewrites trees of package ast.
//
// The Walker never mutates the tree it was given. Every visited node is shallow copied before the
// visitor sees it and rewritten children are attached to that copy, so the result of a walk shares
// no mutable state with its input.
package astvisitor

import (
	"errors"
	"fmt"

	"github.com/jensneuse/abstractlogger"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/operationreport"
)

var (
	ErrNodeMustNotBeNil = errors.New("node must not be nil")
	// ErrIncompatibleChild is reported when a visitor returns a node that the parent slot cannot hold,
	// e.g. a Name in place of a Selection.
	ErrIncompatibleChild = errors.New("incompatible child")
)

// Visitor is called on entering and leaving every node of a walk.
//
// EnterNode returning the node it was given continues the walk into its children. Returning nil
// deletes the node from its parent. Returning any other node replaces it: the replacement is not
// walked, its parent enters it once more instead before attaching it. A visitor must settle on a
// result after that second call, the Walker does not revisit again.
//
// LeaveNode is called after the children. Its result replaces the node in its parent and is never
// walked by the same pass.
type Visitor interface {
	EnterNode(node ast.Node, w *Walker) ast.Node
	LeaveNode(node ast.Node, w *Walker) ast.Node
}

// VisitorFuncs implements Visitor with optional funcs, a nil func keeps the node.
type VisitorFuncs struct {
	Enter func(node ast.Node, w *Walker) ast.Node
	Leave func(node ast.Node, w *Walker) ast.Node
}

func (v VisitorFuncs) EnterNode(node ast.Node, w *Walker) ast.Node {
	if v.Enter == nil {
		return node
	}
	return v.Enter(node, w)
}

func (v VisitorFuncs) LeaveNode(node ast.Node, w *Walker) ast.Node {
	if v.Leave == nil {
		return node
	}
	return v.Leave(node, w)
}

// OnKind returns a Visitor calling enter and leave for nodes of kind only. Either func may be nil.
func OnKind(kind ast.NodeKind, enter, leave func(node ast.Node, w *Walker) ast.Node) Visitor {
	filter := func(fn func(node ast.Node, w *Walker) ast.Node) func(node ast.Node, w *Walker) ast.Node {
		if fn == nil {
			return nil
		}
		return func(node ast.Node, w *Walker) ast.Node {
			if node.Kind() != kind {
				return node
			}
			return fn(node, w)
		}
	}
	return VisitorFuncs{
		Enter: filter(enter),
		Leave: filter(leave),
	}
}

type Option func(w *Walker)

// WithStructuralEditDetection compares the canonical form of a node before and after EnterNode
// instead of its identity. A visitor returning a fresh but equal node is then not considered to
// have edited it.
func WithStructuralEditDetection() Option {
	return func(w *Walker) {
		w.structural = true
	}
}

// WithReport collects the errors of every walk in report. Without it each walk starts with an
// empty report.
func WithReport(report *operationreport.Report) Option {
	return func(w *Walker) {
		w.Report = report
		w.sharedReport = report != nil
	}
}

func WithLogger(logger abstractlogger.Logger) Option {
	return func(w *Walker) {
		w.log = logger
	}
}

// Walker holds the state of one walk. It is handed to every callback and must not be shared
// between concurrent walks.
type Walker struct {
	// Ancestors is the slice of Nodes from the root to the parent of the current Node
	// don't keep a reference to this slice, always copy it if you want to work with it after the callback returned
	Ancestors []ast.Node
	// Path is the slice of PathItems leading from the root to the current Node
	// don't keep a reference to this slice, always copy it if you want to work with it after the callback returned
	Path ast.Path
	// Report is the object to collect errors when walking the AST
	Report *operationreport.Report
	Depth  int

	visitor    Visitor
	log        abstractlogger.Logger
	structural bool
	stop       bool
	skip       bool
	visited    int

	// sharedReport is set when Report was passed in with WithReport
	sharedReport bool
}

// NewWalker returns a Walker calling visitor.
func NewWalker(visitor Visitor, options ...Option) *Walker {
	w := &Walker{
		Ancestors: make([]ast.Node, 0, 8),
		Path:      make(ast.Path, 0, 16),
		visitor:   visitor,
		log:       abstractlogger.NoopLogger,
	}
	for _, option := range options {
		option(w)
	}
	return w
}

// Walk walks node with visitor and returns the rewritten tree.
func Walk(node ast.Node, visitor Visitor, options ...Option) (ast.Node, error) {
	return NewWalker(visitor, options...).Walk(node)
}

// Walk returns the rewritten tree, nil when the visitor deleted the root. If the walk was stopped
// by an internal error, the errors of this walk are returned together with the tree built so far.
func (w *Walker) Walk(node ast.Node) (ast.Node, error) {
	if !w.sharedReport {
		w.Report = &operationreport.Report{}
	}
	reported := len(w.Report.InternalErrors)
	w.Ancestors = w.Ancestors[:0]
	w.Path = w.Path[:0]
	w.Depth = 0
	w.stop = false
	w.skip = false
	w.visited = 0

	if ast.IsNil(node) {
		return nil, ErrNodeMustNotBeNil
	}

	result := w.visitChild(node)

	w.log.Debug("astvisitor.Walker.Walk",
		abstractlogger.String("root", node.Kind().String()),
		abstractlogger.Int("visited", w.visited),
	)

	if len(w.Report.InternalErrors) > reported {
		return result, operationreport.Report{InternalErrors: w.Report.InternalErrors[reported:]}
	}
	return result, nil
}

// Ancestor returns the ancestor depth levels above the current node, 1 being the parent.
func (w *Walker) Ancestor(depth int) ast.Node {
	if depth < 1 || depth > len(w.Ancestors) {
		return nil
	}
	return w.Ancestors[len(w.Ancestors)-depth]
}

func (w *Walker) Parent() ast.Node {
	return w.Ancestor(1)
}

// Key returns the slot of the current node in its parent: the field name, or the index for a
// member of a list.
func (w *Walker) Key() ast.PathItem {
	if len(w.Path) == 0 {
		return ast.PathItem{}
	}
	return w.Path[len(w.Path)-1]
}

// SkipNode prevents the walker from descending into the children of the current node. LeaveNode
// is not called for it.
func (w *Walker) SkipNode() {
	w.skip = true
}

// Stop ends the walk. Nodes not visited yet are kept unchanged.
func (w *Walker) Stop() {
	w.stop = true
}

func (w *Walker) StopWithInternalErr(err error) {
	w.stop = true
	w.Report.AddInternalError(err)
}

func (w *Walker) HandleInternalErr(err error) bool {
	if err != nil {
		w.StopWithInternalErr(err)
		return true
	}
	return false
}

// visitChild visits node and enters a replacement returned by EnterNode exactly once more.
func (w *Walker) visitChild(node ast.Node) ast.Node {
	result, edited := w.visit(node)
	if edited && !w.stop && !ast.IsNil(result) {
		result, _ = w.visit(result)
	}
	return result
}

// visit returns the rewritten node and whether EnterNode deleted or replaced it.
func (w *Walker) visit(node ast.Node) (ast.Node, bool) {
	w.visited++
	working := ast.ShallowCopy(node)

	w.skip = false
	entered := w.visitor.EnterNode(working, w)
	if ast.IsNil(entered) {
		w.skip = false
		return nil, true
	}
	if w.edited(node, working, entered) {
		w.skip = false
		return entered, true
	}
	working = entered

	if w.stop {
		return working, false
	}
	if w.skip {
		w.skip = false
		return working, false
	}

	w.walkChildren(working)
	if w.stop {
		return working, false
	}

	return w.visitor.LeaveNode(working, w), false
}

func (w *Walker) edited(original, working, entered ast.Node) bool {
	if w.structural {
		return !ast.Equal(original, entered)
	}
	return entered != working
}

func (w *Walker) enter(parent ast.Node, items ...ast.PathItem) {
	w.Ancestors = append(w.Ancestors, parent)
	w.Path = append(w.Path, items...)
	w.Depth++
}

func (w *Walker) leave(items int) {
	w.Ancestors = w.Ancestors[:len(w.Ancestors)-1]
	w.Path = w.Path[:len(w.Path)-items]
	w.Depth--
}

func (w *Walker) incompatible(parent ast.Node, name string, child ast.Node) {
	w.StopWithInternalErr(fmt.Errorf("%w: %s cannot be attached to %s.%s", ErrIncompatibleChild, child.Kind(), parent.Kind(), name))
}

// single walks the child in slot name of parent. A deleted required child keeps its original.
func single[T ast.Node](w *Walker, parent ast.Node, name string, child T, required bool) T {
	if w.stop || ast.IsNil(child) {
		return child
	}

	w.enter(parent, ast.PathItem{Kind: ast.FieldName, FieldName: name})
	result := w.visitChild(child)
	w.leave(1)

	if ast.IsNil(result) {
		if required {
			return child
		}
		var zero T
		return zero
	}
	out, ok := result.(T)
	if !ok {
		w.incompatible(parent, name, result)
		return child
	}
	return out
}

// list walks the children in slot name of parent. Deleted children are dropped, the path of every
// child carries its index in the rewritten list.
func list[T ast.Node](w *Walker, parent ast.Node, name string, children []T) []T {
	if w.stop || len(children) == 0 {
		return children
	}

	out := make([]T, 0, len(children))
	for i, child := range children {
		if w.stop {
			return append(out, children[i:]...)
		}

		w.enter(parent,
			ast.PathItem{Kind: ast.FieldName, FieldName: name},
			ast.PathItem{Kind: ast.ArrayIndex, ArrayIndex: len(out)},
		)
		result := w.visitChild(child)
		w.leave(2)

		if ast.IsNil(result) {
			continue
		}
		c, ok := result.(T)
		if !ok {
			w.incompatible(parent, name, result)
			out = append(out, child)
			continue
		}
		out = append(out, c)
	}
	return out
}
