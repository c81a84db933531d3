// Package red implements the lazily-materialized, position-aware overlay
// on top of the green syntax tree: each node knows its offset within its
// parent and, transitively, its absolute position in the source, while
// the green tree underneath stays purely length-based and shareable.
package red

import (
	"sync/atomic"

	"github.com/aledsdavies/jsontree/pkgs/green"
)

// Node is one red-tree wrapper around a green value. Children are
// materialized lazily and cached: the first caller to successfully CAS a
// freshly built child into its slot wins, and every other caller (racing
// or not) observes that same instance from then on.
type Node struct {
	green  green.Lengthed
	parent *Node
	index  int
	start  int

	specs []childSpec
	slots []atomic.Pointer[Node]
}

func newNode(g green.Lengthed, parent *Node, index, start int) *Node {
	specs := childrenOf(g)
	return &Node{
		green:  g,
		parent: parent,
		index:  index,
		start:  start,
		specs:  specs,
		slots:  make([]atomic.Pointer[Node], len(specs)),
	}
}

// Len is the node's length, delegated to its green counterpart.
func (n *Node) Len() int { return n.green.Len() }

// Start is this node's offset relative to its parent; 0 for the root.
func (n *Node) Start() int { return n.start }

// AbsoluteStart is this node's offset from the beginning of the source,
// computed by walking up to the root. It is a pure function of position
// in the tree and is intentionally not cached: red nodes above the root
// never move once constructed, so the walk is cheap and always correct.
func (n *Node) AbsoluteStart() int {
	if n.parent == nil {
		return 0
	}
	return n.start + n.parent.AbsoluteStart()
}

// ParentSyntax is nil only at the root.
func (n *Node) ParentSyntax() *Node { return n.parent }

// IndexInParent is this node's position among its parent's children.
func (n *Node) IndexInParent() int { return n.index }

// Green exposes the underlying green value this node wraps.
func (n *Node) Green() green.Lengthed { return n.green }

// ChildCount is the number of children, independent of whether any have
// been materialized yet.
func (n *Node) ChildCount() int { return len(n.specs) }

// ChildStart returns child i's offset relative to this node, without
// materializing it.
func (n *Node) ChildStart(i int) int { return n.specs[i].offset }

// ChildAt materializes (or returns the already-materialized) child i.
func (n *Node) ChildAt(i int) *Node {
	if existing := n.slots[i].Load(); existing != nil {
		return existing
	}
	candidate := newNode(n.specs[i].green, n, i, n.specs[i].offset)
	if n.slots[i].CompareAndSwap(nil, candidate) {
		return candidate
	}
	return n.slots[i].Load()
}

// Symbol returns the underlying green terminal symbol, if this node wraps
// one.
func (n *Node) Symbol() (green.Symbol, bool) {
	sym, ok := n.green.(green.Symbol)
	return sym, ok
}

// IsTerminal reports whether this node is a leaf that participates in
// symbol enumeration: a green.Symbol with no children of its own.
func (n *Node) IsTerminal() bool {
	_, isSymbol := n.green.(green.Symbol)
	return isSymbol && len(n.specs) == 0
}

// TerminalsInRange returns every terminal descendant (in source order)
// whose span overlaps [start, start+length), expressed in this node's own
// coordinate system (0 at this node's first byte).
func (n *Node) TerminalsInRange(start, length int) []*Node {
	var out []*Node
	n.collectTerminals(start, length, &out)
	return out
}

func (n *Node) collectTerminals(start, length int, out *[]*Node) {
	if start+length <= 0 || start >= n.Len() {
		return
	}
	if n.IsTerminal() {
		*out = append(*out, n)
		return
	}
	for i := range n.specs {
		childStart := n.specs[i].offset
		childLen := n.specs[i].green.Len()
		windowStart := start - childStart
		if windowStart+length <= 0 || windowStart >= childLen {
			continue
		}
		n.ChildAt(i).collectTerminals(windowStart, length, out)
	}
}
