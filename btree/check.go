package btree

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

/*
Check verifies the structural invariants of the tree:
  - every node holds at most 2t-1 keys, non-root nodes at least t-1
  - keys inside a node are non-decreasing
  - internal nodes have exactly one more child than keys
  - keys of children[i] are <= keys[i] and keys of children[i+1] are >= keys[i]
  - all leaves sit at the same depth, which matches Height
  - the number of keys matches Len

The first violation found is returned wrapped in ErrCorrupted.
*/
func (t *Tree[K]) Check() error {
	c := checker[K]{t: t.degree, leafDepth: -1}
	if err := c.check(t.root, 0, nil, nil); err != nil {
		return err
	}
	if c.leafDepth+1 != t.height {
		return errors.Wrapf(ErrCorrupted, "leaves at depth %d but height is %d", c.leafDepth, t.height)
	}
	if c.keys != t.size {
		return errors.Wrapf(ErrCorrupted, "found %d keys but %d were inserted", c.keys, t.size)
	}
	return nil
}

type checker[K cmp.Ordered] struct {
	t         int
	leafDepth int
	keys      int
}

// check validates n, whose keys must all lie within [lo, hi] when those bounds
// are set.
func (c *checker[K]) check(n *Node[K], depth int, lo, hi *K) error {
	if len(n.keys) > 2*c.t-1 {
		return errors.Wrapf(ErrCorrupted, "node at depth %d holds %d keys, max %d", depth, len(n.keys), 2*c.t-1)
	}
	if depth > 0 && len(n.keys) < c.t-1 {
		return errors.Wrapf(ErrCorrupted, "node at depth %d holds %d keys, min %d", depth, len(n.keys), c.t-1)
	}
	for i, k := range n.keys {
		if i > 0 && k < n.keys[i-1] {
			return errors.Wrapf(ErrCorrupted, "keys out of order at depth %d: %v before %v", depth, n.keys[i-1], k)
		}
		if (lo != nil && k < *lo) || (hi != nil && k > *hi) {
			return errors.Wrapf(ErrCorrupted, "key %v at depth %d outside separator range", k, depth)
		}
	}
	c.keys += len(n.keys)

	if n.leaf {
		if len(n.children) != 0 {
			return errors.Wrapf(ErrCorrupted, "leaf at depth %d has %d children", depth, len(n.children))
		}
		if c.leafDepth == -1 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return errors.Wrapf(ErrCorrupted, "leaf at depth %d, expected %d", depth, c.leafDepth)
		}
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return errors.Wrapf(ErrCorrupted, "internal node at depth %d has %d keys and %d children",
			depth, len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		if err := c.check(child, depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}
