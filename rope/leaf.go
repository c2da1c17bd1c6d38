package rope

// leaf holds a borrowed run of size elements. size == 0 is permitted
// transiently (e.g. the canonical empty rope), but should not persist in
// leaves produced by mutation, per spec.md §3.
type leaf[R Run[R]] struct {
	size int
	run  R
}

func (l *leaf[R]) depth() uint8 { return 0 }

// newLeaf allocates a leaf node via alloc. It does not copy run.
func newLeaf[R Run[R], M Allocator[R]](run R, size int, alloc M) node[R] {
	return alloc.NewLeaf(run, size)
}
