package btree

import (
	"cmp"
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

/*
Tree only keeps a pointer to the root node of the tree and the minimum degree t.
Every node holds at most 2t-1 keys, and every non-root node holds at least t-1
once an insert has returned.

Tree is not safe for concurrent use; callers must serialize Insert.
*/
type Tree[K cmp.Ordered] struct {
	root   *Node[K]
	degree int
	opts   Options

	size       int
	height     int
	splits     int
	rootSplits int
}

// MaxDegree is the largest minimum degree New accepts; above it 2t children
// no longer fit in an int.
const MaxDegree = math.MaxInt / 2

// New returns an empty tree with minimum degree t. A nil opts uses the
// default options.
func New[K cmp.Ordered](t int, opts *Options) (*Tree[K], error) {
	if t < 2 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "minimum degree must be at least 2, got %d", t)
	}
	if t > MaxDegree {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "minimum degree must be at most %d, got %d", MaxDegree, t)
	}

	tree := &Tree[K]{
		degree: t,
		opts:   opts.withDefaults(),
	}
	tree.Reset()
	return tree, nil
}

// WithDegree returns a new empty tree with minimum degree d and the same
// options as t.
func (t *Tree[K]) WithDegree(d int) (*Tree[K], error) {
	opts := t.opts
	return New[K](d, &opts)
}

// Reset discards every key and starts again from an empty leaf root.
func (t *Tree[K]) Reset() {
	t.root = newNode[K](t.degree, true)
	t.size = 0
	t.height = 1
	t.splits = 0
	t.rootSplits = 0
}

// Root returns the root node. It is never nil.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Degree returns the minimum degree the tree was created with.
func (t *Tree[K]) Degree() int {
	return t.degree
}

// Len returns the number of keys inserted since the tree was created or reset.
func (t *Tree[K]) Len() int {
	return t.size
}

// Height returns the number of levels. A tree whose root is a leaf has height 1.
func (t *Tree[K]) Height() int {
	return t.height
}

func (t *Tree[K]) String() string {
	return fmt.Sprintf("btree(t=%d height=%d keys=%d)", t.degree, t.height, t.size)
}

/*
Insert adds key to the tree in a single top-down pass.
If the root is full it is split first: a new internal root is created with the
old root as its only child, and the old root is split beneath it. This is the
only place the tree grows in height.
Equal keys are kept side by side.
*/
func (t *Tree[K]) Insert(key K) error {
	// NaN is the only ordered value that does not compare equal to itself.
	if key != key {
		return errors.Wrapf(ErrInvalidKey, "key %v cannot be ordered", key)
	}

	r := t.root
	if r.full() {
		s := newNode[K](t.degree, false)
		s.insertChildAt(0, r)
		t.splitChild(s, 0)
		t.root = s
		t.height++
		t.rootSplits++
		t.opts.Log("btree: root split, height now %d", t.height)
	}

	t.insertNonFull(t.root, key)
	t.size++
	return nil
}

// insertNonFull places key in the subtree rooted at x, which must not be full.
func (t *Tree[K]) insertNonFull(x *Node[K], key K) {
	i := len(x.keys) - 1

	// If we reach a leaf node, it has room for the new key: shift the larger
	// keys one slot right and drop the key in the gap.
	if x.leaf {
		var zero K
		x.keys = append(x.keys, zero)
		for i >= 0 && key < x.keys[i] {
			x.keys[i+1] = x.keys[i]
			i--
		}
		x.keys[i+1] = key
		return
	}

	for i >= 0 && key < x.keys[i] {
		i--
	}
	i++

	// If the next node on the descent path is already full, split it.
	if x.children[i].full() {
		t.splitChild(x, i)

		// The promoted median may now sit between us and the key, in which
		// case the key belongs to the new right sibling.
		if key > x.keys[i] {
			i++
		}
	}

	t.insertNonFull(x.children[i], key)
}

// splitChild splits the full child x.children[i] and links the median and the
// new sibling into x, which must have room for one more key.
func (t *Tree[K]) splitChild(x *Node[K], i int) {
	mid, sibling := x.children[i].split()
	x.insertKeyAt(i, mid)
	x.insertChildAt(i+1, sibling)
	t.splits++
	t.opts.Log("btree: split child %d, promoted %v", i, mid)
}
