package astvisitor

import (
	"github.com/wundergraph/gqlast/pkg/ast"
)

// Parallel runs visitors side by side in a single walk. Every visitor keeps its own state:
// SkipNode called by one of them skips the subtree of the current node for that visitor only, and
// Stop removes that visitor from the rest of the walk. The walk stops once all visitors stopped.
//
// A deletion or replacement returned by a visitor is returned right away, the visitors after it do
// not see the node.
//
// The returned Visitor keeps per-walk state, use a new one for every walk.
func Parallel(visitors ...Visitor) Visitor {
	return &parallel{
		visitors: visitors,
		skipping: make([]ast.Node, len(visitors)),
		stopped:  make([]bool, len(visitors)),
	}
}

type parallel struct {
	visitors []Visitor
	// skipping holds per visitor the node whose subtree it skips
	skipping []ast.Node
	stopped  []bool
}

func (p *parallel) EnterNode(node ast.Node, w *Walker) ast.Node {
	for i, visitor := range p.visitors {
		if p.stopped[i] || p.skipping[i] != nil {
			continue
		}

		w.stop, w.skip = false, false
		result := visitor.EnterNode(node, w)
		if w.stop {
			p.stopped[i] = true
		}
		if w.skip {
			p.skipping[i] = node
		}
		w.stop, w.skip = false, false

		if result != node {
			p.release(node)
			p.stopIfDone(w)
			return result
		}
	}

	if p.stopIfDone(w) {
		return node
	}
	if p.idle() {
		// nobody wants to see the subtree, LeaveNode will not be called for node
		p.release(node)
		w.SkipNode()
	}
	return node
}

func (p *parallel) LeaveNode(node ast.Node, w *Walker) ast.Node {
	for i, visitor := range p.visitors {
		if p.stopped[i] {
			continue
		}
		if p.skipping[i] != nil {
			if p.skipping[i] == node {
				p.skipping[i] = nil
			}
			continue
		}

		w.stop = false
		result := visitor.LeaveNode(node, w)
		if w.stop {
			p.stopped[i] = true
			w.stop = false
		}

		if result != node {
			p.release(node)
			p.stopIfDone(w)
			return result
		}
	}

	p.stopIfDone(w)
	return node
}

// release ends the skip of every visitor that started skipping at node.
func (p *parallel) release(node ast.Node) {
	for i := range p.skipping {
		if p.skipping[i] == node {
			p.skipping[i] = nil
		}
	}
}

func (p *parallel) idle() bool {
	for i := range p.visitors {
		if !p.stopped[i] && p.skipping[i] == nil {
			return false
		}
	}
	return true
}

func (p *parallel) stopIfDone(w *Walker) bool {
	for i := range p.stopped {
		if !p.stopped[i] {
			return false
		}
	}
	w.Stop()
	return true
}
