package rope

// concatNode joins two smaller nodes. weight is the size of the left
// subtree only, not the total: the total is recovered by walking the
// right spine (sizeOf), exactly as spec.md §4.1 requires, so a split can
// shrink a subtree's size by mutating weight without having to also walk
// back up and fix a cached total on every ancestor.
type concatNode[R Run[R]] struct {
	weight      int
	treedepth   uint8
	left, right node[R]
}

func (c *concatNode[R]) depth() uint8 { return c.treedepth }

// rightSize returns the size of c's right subtree, given the already-
// known total size of c (weight + rightSize == total).
func (c *concatNode[R]) rightSize(total int) int {
	return total - c.weight
}
