package seqrun

import (
	"testing"

	"github.com/bruth/assert"
)

func TestByteRunOffsetInto(t *testing.T) {
	r := ByteRun("hello world")
	assert.Equal(t, ByteRun("world"), r.OffsetInto(6))
	assert.Equal(t, ByteRun(""), r.OffsetInto(11))
}

func TestSliceRunOffsetInto(t *testing.T) {
	r := SliceRun[int]{1, 2, 3, 4, 5}
	assert.Equal(t, SliceRun[int]{4, 5}, r.OffsetInto(3))
}
