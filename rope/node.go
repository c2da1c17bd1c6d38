package rope

// node is the tagged-variant rope node of spec.md §3: a Leaf or a Concat.
// Rather than a single struct with an unchecked type tag (the source's
// enum rope_node_type plus a downcast), it is rendered as the teacher's
// own node interface is rendered — two concrete pointer types matched by
// type assertion at call sites, so a missing case is a compile error at
// the switch, not a silent downcast bug.
type node[R Run[R]] interface {
	// depth is 0 for a leaf, 1+max(depth(left),depth(right)) for a
	// concat. Constant time: depth is cached on concat nodes.
	depth() uint8
}

// depthOf returns the depth of node n, treating a nil node (possible only
// transiently, e.g. mid-split) as depth 0.
func depthOf[R Run[R]](n node[R]) uint8 {
	if n == nil {
		return 0
	}
	return n.depth()
}

// sizeOf walks the rightmost spine of n, summing each concat's weight
// (its left subtree's size) plus the final leaf's size. Concat
// deliberately does not cache a total-size field, only weight, so this
// is O(depth) worst case rather than O(1) — see concatNode's doc comment.
func sizeOf[R Run[R]](n node[R]) int {
	size := 0
	for n != nil {
		c, ok := n.(*concatNode[R])
		if !ok {
			return size + n.(*leaf[R]).size
		}
		size += c.weight
		n = c.right
	}
	return size
}

// concat returns a node representing left followed by right, allocating a
// new concatNode via alloc unless one side is nil or a size-0 leaf, in
// which case the other side is returned verbatim (no allocation) and the
// discarded side, if it was a real node, is released. This mirrors the
// teacher's own conc, which treats its canonical emptyNode as concat's
// identity element; a size-0 leaf here plays the same role, since this
// package allocates a fresh leaf per empty rope rather than sharing one
// singleton. Collapsing it here, rather than downstream, keeps every
// other node-walking function (sizeOf, forest.build, …) from ever having
// to special-case a size-0 leaf. Callers must not assume a fresh,
// exclusively-owned node comes back: per spec.md §9's "open question", a
// concat result may alias one of its own arguments.
func concat[R Run[R], M Allocator[R]](left, right node[R], alloc M) node[R] {
	if left == nil || isEmptyLeaf[R](left) {
		if left != nil {
			alloc.Release(left)
		}
		return right
	}
	if right == nil || isEmptyLeaf[R](right) {
		if right != nil {
			alloc.Release(right)
		}
		return left
	}
	depth := depthOf[R](left)
	if rd := depthOf[R](right); rd > depth {
		depth = rd
	}
	return alloc.NewConcat(left, right, sizeOf[R](left), depth+1)
}

// isEmptyLeaf reports whether n is a Leaf holding zero elements.
func isEmptyLeaf[R Run[R]](n node[R]) bool {
	l, ok := n.(*leaf[R])
	return ok && l.size == 0
}
