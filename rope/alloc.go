package rope

import "sync"

// Allocator is spec.md §6's memory context M, specialized per node kind
// rather than per byte count: Go's garbage collector makes a literal
// alloc(ctx, nbytes) -> pointer contract pointless, so the two node
// constructors stand in for it directly, and Release stands in for
// free(ctx, pointer). Implementations must never return nil from
// NewLeaf/NewConcat — per spec.md §7, allocation failure is fatal and
// not part of this package's error taxonomy.
type Allocator[R Run[R]] interface {
	NewLeaf(run R, size int) node[R]
	NewConcat(left, right node[R], weight int, depth uint8) node[R]
	// Release returns n to the allocator. It must tolerate a nil n (a
	// concat may have a nil child after a split) and must never touch
	// n's leaf run, only the node structure itself.
	Release(n node[R])
}

// GC is the zero-value default Allocator: every node is a plain heap
// allocation and Release is a no-op, the same "let the collector do it"
// approach every node constructor in this retrieval pack already takes.
// A zero-value GC[R] is ready to use.
type GC[R Run[R]] struct{}

func (GC[R]) NewLeaf(run R, size int) node[R] {
	return &leaf[R]{size: size, run: run}
}

func (GC[R]) NewConcat(left, right node[R], weight int, depth uint8) node[R] {
	return &concatNode[R]{weight: weight, treedepth: depth, left: left, right: right}
}

func (GC[R]) Release(node[R]) {}

// Pool is a sync.Pool-backed Allocator that recycles leaf and concat
// nodes instead of handing them back to the collector, for callers
// embedding a rope in a hot allocation path (spec.md §9: "the rope is
// embedded in servers that use arena or per-connection allocators").
// Grounded on tigerwill90-fox's per-transaction sync.Pool of tree nodes
// and on Sumatoshi-tech-codefang/pkg/rbtree's slab-style Allocator (a
// backing store plus a free list) translated to Go's standard recycling
// primitive. The zero value is not usable; use NewPool.
type Pool[R Run[R]] struct {
	leaves  sync.Pool
	concats sync.Pool
}

// NewPool returns a ready-to-use Pool allocator.
func NewPool[R Run[R]]() *Pool[R] {
	p := &Pool[R]{}
	p.leaves.New = func() any { return new(leaf[R]) }
	p.concats.New = func() any { return new(concatNode[R]) }
	return p
}

func (p *Pool[R]) NewLeaf(run R, size int) node[R] {
	l := p.leaves.Get().(*leaf[R])
	l.size, l.run = size, run
	return l
}

func (p *Pool[R]) NewConcat(left, right node[R], weight int, depth uint8) node[R] {
	c := p.concats.Get().(*concatNode[R])
	c.weight, c.treedepth, c.left, c.right = weight, depth, left, right
	return c
}

func (p *Pool[R]) Release(n node[R]) {
	if n == nil {
		return
	}
	switch v := n.(type) {
	case *leaf[R]:
		var zero R
		v.run, v.size = zero, 0
		p.leaves.Put(v)
	case *concatNode[R]:
		v.left, v.right = nil, nil
		p.concats.Put(v)
	}
}
