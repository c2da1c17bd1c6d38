package rope

// rebalance flattens r's current tree into a forest of balanced subtrees
// and folds the forest back into a single balanced tree, replacing
// r.root. It never allocates a new leaf — every element run pointer
// passes through unchanged — it only creates and releases concatNode
// values. The forest itself is stack-allocated (a fixed-size array, not
// a heap scratch buffer, unlike the C original's malloc'd forest, which
// spec.md's Forest section describes as "strictly transient": Go's
// escape analysis can keep a fixed-size array off the heap since it
// never outlives this call).
func (r *Rope[R, M]) rebalance() {
	// An empty rope has nothing to rebalance; its size-0 leaf qualifies
	// for no forest slot.
	if r.size == 0 {
		return
	}
	if r.tracer != nil {
		r.tracer.Debugf("rope: rebalancing, size=%d depth=%d", r.size, depthOf[R](r.root))
	}
	var f forest[R]
	f.build(r.root, r.size, r.alloc)
	r.root = f.concatAll(r.size, r.alloc)
}

// IsBalanced reports whether r currently satisfies spec.md §3's balance
// predicate: size >= fibMin[depth]. Every mutating method already
// consults this and rebalances when it fails; it is exported for
// callers that want to observe the invariant directly, e.g. to report
// rope health.
//
// An empty rope is trivially balanced: its root is a real size-0 leaf
// (not nil), and fibMin[0] == 1 would otherwise fail it, so size == 0 is
// checked explicitly rather than deferring to the predicate.
func (r *Rope[R, M]) IsBalanced() bool {
	if r.root == nil || r.size == 0 {
		return true
	}
	return balanced(r.size, depthOf[R](r.root))
}

// rebalanceIfNeeded is the hook every mutating operation consults after
// changing r's root, per spec.md §4.3: "after any mutation the façade
// consults the balance predicate and, if violated, invokes Rebalance."
func (r *Rope[R, M]) rebalanceIfNeeded() {
	if !r.IsBalanced() {
		r.rebalance()
	}
}
