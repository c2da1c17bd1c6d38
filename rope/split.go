package rope

// split partitions tree (of the given total size) into a head, retained
// in tree by mutating it in place, covering elements [0,k), and a
// returned tail covering [k,treeSize). If k >= treeSize the head is the
// whole tree and the tail is nil.
//
// This follows crope.h's node_*_split fix-up order exactly (spec.md §4.2
// and SPEC_FULL.md §E.1): when a concat's entire right child is absorbed
// into the tail, the right pointer is nilled and the concat's depth is
// recomputed from the left child *before* the concat's weight is reduced
// by the remaining trim and the descent continues left. Reordering those
// two steps would read back a stale depth/weight pair from a later
// concat call on this same node.
func split[R Run[R], M Allocator[R]](tree node[R], treeSize, k int, alloc M) node[R] {
	if k >= treeSize {
		return nil
	}

	curr := tree
	currSize := treeSize
	trim := treeSize - k
	var tail node[R]

	for trim > 0 {
		c, ok := curr.(*concatNode[R])
		if !ok {
			break
		}
		rightSize := c.rightSize(currSize)
		if rightSize <= trim {
			// The whole right child moves into the tail.
			tail = concat[R](c.right, tail, alloc)
			c.right = nil
			c.treedepth = depthOf[R](c.left) + 1
			trim -= rightSize
			currSize = c.weight
			c.weight -= trim
			curr = c.left
		} else {
			// The cut point is inside the right subtree.
			currSize -= c.weight
			curr = c.right
		}
	}

	if trim > 0 {
		l := curr.(*leaf[R])
		l.size -= trim
		tailRun := l.run.OffsetInto(l.size)
		tail = concat[R](newLeaf[R](tailRun, trim, alloc), tail, alloc)
	}

	return tail
}
