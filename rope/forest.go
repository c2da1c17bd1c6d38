package rope

// forestSlot is one bucket of a rebalancing forest: slot i holds at most
// one tree whose size falls in the half-open window [fibMin[i],
// fibMin[i+1]), or is empty (tree == nil).
type forestSlot[R Run[R]] struct {
	tree node[R]
	size int
}

// forest is spec.md §3's scratch structure: fixed-size, allocated, used
// and discarded within a single rebalance call. It is never retained
// across calls and holds no allocator of its own: its methods allocate
// and release concat nodes through the allocator passed to them.
type forest[R Run[R]] [DepthMax]forestSlot[R]

// insert places tree (of the given size) into the appropriate slot,
// absorbing every smaller occupied slot into its left spine first and
// then cascading right while the accumulated size still qualifies for a
// higher bucket — Fibonacci-base carry propagation, per spec.md §4.4.
func (f *forest[R]) insert(tree node[R], treeSize int, alloc Allocator[R]) {
	var acc node[R]
	accSize := 0
	i := 0
	// i+1 must stay within fibMin's bounds. A tree large enough to run
	// past fibMin's last entry would already violate depth <= DepthMax,
	// so this never trips in practice — guarded defensively anyway since
	// fibMin and f are both sized exactly to the stated ceiling.
	for i+1 < len(fibMin) && treeSize > fibMin[i+1] {
		if f[i].tree != nil {
			acc = concat[R](f[i].tree, acc, alloc)
			accSize += f[i].size
			f[i] = forestSlot[R]{}
		}
		i++
	}

	acc = concat[R](acc, tree, alloc)
	accSize += treeSize

	for i < len(fibMin) && accSize >= fibMin[i] {
		if f[i].tree != nil {
			acc = concat[R](f[i].tree, acc, alloc)
			accSize += f[i].size
			f[i] = forestSlot[R]{}
		}
		i++
	}
	if i > len(f) {
		i = len(f)
	}

	f[i-1] = forestSlot[R]{tree: acc, size: accSize}
}

// build flattens tree (size treeSize) into f. Every maximal already-
// balanced subtree (a leaf is always balanced) is inserted into f whole,
// preserving its internal shape; every unbalanced concat is discarded
// after its children are recursively flattened — its element runs
// survive via the leaves that end up in f, only the concat scaffolding
// is released.
func (f *forest[R]) build(tree node[R], treeSize int, alloc Allocator[R]) {
	// A leaf is trivially balanced regardless of what the predicate says
	// about its size — in particular a size-0 leaf fails balanced(0,0)
	// (fibMin[0] == 1) but must still be inserted whole, never downcast
	// to *concatNode.
	if _, ok := tree.(*leaf[R]); ok {
		f.insert(tree, treeSize, alloc)
		return
	}
	if balanced(treeSize, depthOf[R](tree)) {
		f.insert(tree, treeSize, alloc)
		return
	}

	c := tree.(*concatNode[R])
	left, right := c.left, c.right
	if left != nil {
		f.build(left, c.weight, alloc)
	}
	if right != nil {
		f.build(right, treeSize-c.weight, alloc)
	}
	c.left, c.right = nil, nil
	alloc.Release(c)
}

// concatAll folds f's occupied slots, in increasing index order, into a
// single left-associated tree, stopping once the accumulated size
// reaches expectedSize. The result becomes the rebalanced rope's root.
func (f *forest[R]) concatAll(expectedSize int, alloc Allocator[R]) node[R] {
	var acc node[R]
	accSize := 0
	for i := 0; accSize < expectedSize; i++ {
		if f[i].tree != nil {
			acc = concat[R](f[i].tree, acc, alloc)
			accSize += f[i].size
		}
	}
	return acc
}
