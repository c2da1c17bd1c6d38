package rope

// DepthMax is spec.md's ROPE_DEPTH_MAX: the hard ceiling on rope depth. A
// Fibonacci-balanced tree of this depth already holds at least
// fibMin[45] ≈ 2.97e9 elements, so the ceiling is never a practical
// constraint on a balanced tree — only a pathologically unbalanced one
// (built entirely from single-element Inserts/Removes without ever
// triggering a rebalance) could approach it.
const DepthMax = 45

// fibMin[d] is the minimum size a balanced (sub)tree of depth d may have.
// fibMin[0], fibMin[1] = 1, 2 (not the textbook 0, 1) because a rope leaf
// of size 0 is a degenerate edge case, not the typical base case; indices
// 2 onward are the ordinary Fibonacci recurrence. Precomputed rather than
// grown lazily (contrast the teacher's own fibCache, which grows via
// extendFibs under a RWMutex) because ROPE_DEPTH_MAX bounds the table
// size up front and a rope never needs an entry beyond it.
var fibMin = [DepthMax + 1]int{
	1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144,
	233, 377, 610, 987, 1597, 2584, 4181, 6765,
	10946, 17711, 28657, 46368, 75025, 121393,
	196418, 317811, 514229, 832040, 1346269,
	2178309, 3524578, 5702887, 9227465, 14930352,
	24157817, 39088169, 63245986, 102334155,
	165580141, 267914296, 433494437, 701408733,
	1134903170, 1836311903, 2971215073,
}

// balanced reports whether a (sub)tree of the given size and depth
// satisfies spec.md §3's balance predicate: size >= fibMin[depth].
func balanced(size int, depth uint8) bool {
	return size >= fibMin[depth]
}
