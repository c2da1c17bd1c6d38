package rope

// Iterator walks a Rope's leaves left to right using a depth-bounded
// explicit stack rather than recursion, per spec.md §4.5 — the same
// push/pop/gotoRight/downToLeaf shape as the source's rope_iter_*
// functions, generalized from the teacher's Reader.pushSubtree/nextNode.
//
// An Iterator must not outlive a mutation of the Rope it was created
// from; see spec.md §5 and DebugIterators.
type Iterator[R Run[R]] struct {
	ptr   node[R]
	stack [DepthMax]node[R]
	depth int
	done  bool

	genPtr  *uint64
	wantGen uint64
}

// NewIterator returns an Iterator positioned at r's first element, or an
// already-Done Iterator if r is empty.
func (r *Rope[R, M]) NewIterator() *Iterator[R] {
	it := &Iterator[R]{ptr: r.root, genPtr: &r.gen, wantGen: r.gen}
	if r.size == 0 {
		it.done = true
		return it
	}
	it.downToLeaf()
	return it
}

func (it *Iterator[R]) push(n node[R]) {
	it.stack[it.depth] = it.ptr
	it.depth++
	it.ptr = n
}

func (it *Iterator[R]) pop() bool {
	if it.depth == 0 {
		return false
	}
	it.depth--
	it.ptr = it.stack[it.depth]
	return true
}

// downToLeaf descends from it.ptr, always preferring the left child,
// pushing each concat node it passes through, until it.ptr is a leaf.
func (it *Iterator[R]) downToLeaf() {
	for {
		c, ok := it.ptr.(*concatNode[R])
		if !ok {
			return
		}
		if c.left != nil {
			it.push(c.left)
		} else {
			it.push(c.right)
		}
	}
}

// gotoRight walks back up the stack until it finds an ancestor it.ptr
// was reached from via the left child and which has a right sibling,
// then descends into that sibling. If the stack empties first, the
// traversal is over.
func (it *Iterator[R]) gotoRight() {
	for {
		child := it.ptr
		if !it.pop() {
			it.done = true
			return
		}
		c := it.ptr.(*concatNode[R])
		if child == c.left && c.right != nil {
			it.push(c.right)
			return
		}
	}
}

// Next advances the iterator to the following leaf. Calling Next once
// Done returns true is a no-op.
func (it *Iterator[R]) Next() {
	it.checkMisuse()
	if it.done {
		return
	}
	it.gotoRight()
	if !it.done {
		it.downToLeaf()
	}
}

// Done reports whether the iterator has walked past the last leaf.
func (it *Iterator[R]) Done() bool { return it.done }

// Value returns the leaf currently under the iterator. It must not be
// called once Done returns true.
func (it *Iterator[R]) Value() Leaf[R] {
	it.checkMisuse()
	l := it.ptr.(*leaf[R])
	return Leaf[R]{Run: l.run, Size: l.size}
}

// Close drops the iterator's references to the rope's nodes. It has no
// effect beyond that — an Iterator owns nothing an allocator would need
// released — and exists for symmetry with the source's
// rope_iter_delete, for callers that want a deterministic point to stop
// holding a rope's nodes alive.
func (it *Iterator[R]) Close() {
	it.ptr = nil
	for i := range it.stack {
		it.stack[i] = nil
	}
	it.depth = 0
	it.done = true
}

func (it *Iterator[R]) checkMisuse() {
	if DebugIterators && it.genPtr != nil && *it.genPtr != it.wantGen {
		panic(ErrIterMisuse)
	}
}
