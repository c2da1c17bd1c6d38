// Package seqrun provides the two concrete rope.Run implementations
// every example and test in this repository builds ropes over: a byte
// run backed by a []byte, and a generic slice run backed by a []T. Both
// are non-owning views, per SPEC_FULL.md §G — OffsetInto re-slices the
// same backing array rather than copying it, exactly the way the
// teacher's own rope built runs of type string, itself a non-owning
// view over a byte array.
package seqrun

// ByteRun is a rope.Run view over a []byte.
type ByteRun []byte

// OffsetInto returns the suffix of r starting at element k.
func (r ByteRun) OffsetInto(k int) ByteRun { return r[k:] }

// SliceRun is a rope.Run view over a []T, for ropes of any element type
// — not just bytes.
type SliceRun[T any] []T

// OffsetInto returns the suffix of r starting at element k.
func (r SliceRun[T]) OffsetInto(k int) SliceRun[T] { return r[k:] }
