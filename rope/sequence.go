package rope

// Run is the element-run abstraction spec.md calls E: an opaque handle to
// a contiguous run of elements. A leaf never copies or owns a Run; it
// borrows one, and the Run must outlive any Rope that references it.
//
// R is a self-referencing type parameter, the same shape as the
// lessThan-style self-constraints seen elsewhere in the ecosystem
// (e.g. a Tree[T] constrained by a comparator over T): a concrete run
// type implements Run[itself], so OffsetInto can return another value of
// the same concrete type without an intermediate interface boxing step.
type Run[R any] interface {
	// OffsetInto returns the sub-run starting k elements into the
	// receiver. It must not allocate or copy the backing storage, and
	// k is always in [0, length-of-receiver).
	OffsetInto(k int) R
}
