package rope

import (
	"testing"

	"github.com/bruth/assert"

	"github.com/fvbommel/rope/rope/seqrun"
)

func TestIteratorOrderAfterManyAppends(t *testing.T) {
	r := newByteRope("")
	var want []byte
	for i := byte(0); i < 40; i++ {
		chunk := []byte{'a' + i%26}
		r.Append(seqrun.ByteRun(chunk), 1)
		want = append(want, chunk...)
	}
	assert.Equal(t, string(want), collect(r))
}

func TestIteratorDoneOnEmptyRope(t *testing.T) {
	r := newByteRope("")
	it := r.NewIterator()
	assert.True(t, it.Done())
}

func TestIteratorCloseStopsMisuse(t *testing.T) {
	r := newByteRope("abc")
	it := r.NewIterator()
	it.Close()
	assert.True(t, it.Done())
}

func TestIteratorMisuseDetection(t *testing.T) {
	old := DebugIterators
	DebugIterators = true
	defer func() { DebugIterators = old }()

	r := newByteRope("abc")
	r.Append(seqrun.ByteRun("def"), 3)
	it := r.NewIterator()

	r.Append(seqrun.ByteRun("ghi"), 3)

	defer func() {
		got := recover()
		assert.Equal(t, ErrIterMisuse, got)
	}()
	it.Next()
	t.Fatal("expected panic from using an iterator after a mutation")
}
