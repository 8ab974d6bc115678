package btree

import "slices"

// Node is a single B-tree node. Keys are kept in non-decreasing order and an
// internal node always has one more child than it has keys.
//
// A node is owned by exactly one parent (or by the Tree when it is the root).
// Callers outside the package only ever see it through the read-only methods.
type Node[K any] struct {
	keys     []K
	children []*Node[K]
	leaf     bool
	degree   int // minimum degree of the owning tree
}

func newNode[K any](t int, leaf bool) *Node[K] {
	return &Node[K]{
		leaf:   leaf,
		degree: t,
	}
}

// IsLeaf reports whether the node has no children.
func (n *Node[K]) IsLeaf() bool {
	return n.leaf
}

// Len returns the number of keys held by the node.
func (n *Node[K]) Len() int {
	return len(n.keys)
}

// Keys returns a copy of the node's keys in order.
func (n *Node[K]) Keys() []K {
	return slices.Clone(n.keys)
}

// Children returns a copy of the node's child list. It is empty for leaves.
func (n *Node[K]) Children() []*Node[K] {
	if n.leaf {
		return nil
	}
	return slices.Clone(n.children)
}

func (n *Node[K]) full() bool {
	return len(n.keys) == 2*n.degree-1
}

// helper method to insert a key at an arbitrary position of the node
func (n *Node[K]) insertKeyAt(pos int, key K) {
	n.keys = slices.Insert(n.keys, pos, key)
}

// helper method to insert a child pointer at an arbitrary position of the node
func (n *Node[K]) insertChildAt(pos int, child *Node[K]) {
	n.children = slices.Insert(n.children, pos, child)
}

/*
split divides a full node around its median key at index t-1.
The receiver keeps the lower t-1 keys (and t children), the returned sibling gets
the upper t-1 keys (and t children). The median is returned so the caller can
promote it into the parent.
*/
func (n *Node[K]) split() (K, *Node[K]) {
	t := n.degree
	mid := n.keys[t-1]

	sibling := newNode[K](t, n.leaf)
	sibling.keys = slices.Clone(n.keys[t : 2*t-1])

	if !n.leaf {
		sibling.children = slices.Clone(n.children[t : 2*t])
		clear(n.children[t:])
		n.children = n.children[:t]
	}

	clear(n.keys[t-1:])
	n.keys = n.keys[:t-1]

	return mid, sibling
}
