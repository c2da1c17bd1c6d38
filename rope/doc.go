// Package rope implements a generic rope: a balanced binary tree whose
// leaves hold contiguous runs of elements, used to represent and mutate a
// long logical sequence without the O(n) cost of a flat slice.
//
// A Rope is generic over two things: the run type R, which supplies an
// OffsetInto operation so a leaf can be split in two, and the allocator M,
// which is threaded through every node allocation and release. Unlike the
// teacher's own rope (github.com/fvbommel/util/src/rope), which is an
// immutable, persistent string rope, this Rope is mutated in place:
// Append, Prepend, Insert, Remove and Extract all replace the receiver's
// root rather than returning a new value, and displaced nodes are handed
// back to the allocator immediately.
//
// Balance is maintained by the classic Boehm/Atkinson/Plass Fibonacci
// criterion: a (sub)tree of depth d is balanced iff its size is at least
// fibMin[d]. Rebalancing flattens the unbalanced tree into a forest of
// already-balanced subtrees (bucketed by depth class) and folds the
// forest back into one tree, the same two-pass shape as the teacher's
// own Rebalance, generalized from a single leaves-only walk to the
// split-aware forest described in the Tarantool crope.h this package is
// modeled on.
//
// A Rope is not safe for concurrent use, and an Iterator must not outlive
// the Rope it was created from, nor remain in use across a mutation of
// that Rope.
package rope
