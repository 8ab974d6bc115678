package btree

// Ascend calls fn for every key in non-decreasing order until fn returns false.
func (t *Tree[K]) Ascend(fn func(key K) bool) {
	ascend(t.root, fn)
}

func ascend[K any](n *Node[K], fn func(key K) bool) bool {
	for i, k := range n.keys {
		if !n.leaf && !ascend(n.children[i], fn) {
			return false
		}
		if !fn(k) {
			return false
		}
	}
	if !n.leaf {
		return ascend(n.children[len(n.keys)], fn)
	}
	return true
}

// Keys returns every key of the tree in non-decreasing order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.Ascend(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Walk visits nodes in pre-order, passing each node's depth (0 for the root).
// Returning false from fn skips that node's children.
func (t *Tree[K]) Walk(fn func(n *Node[K], depth int) bool) {
	walk(t.root, 0, fn)
}

func walk[K any](n *Node[K], depth int, fn func(n *Node[K], depth int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		walk(c, depth+1, fn)
	}
}
