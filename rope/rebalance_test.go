package rope

import (
	"fmt"
	"testing"

	"github.com/bruth/assert"
	"github.com/kr/pretty"
	"golang.org/x/exp/rand"

	"github.com/fvbommel/rope/rope/seqrun"
)

func TestRebalancePreservesContent(t *testing.T) {
	ropes := []*Rope[seqrun.ByteRun, GC[seqrun.ByteRun]]{
		newByteRope("a"),
		newByteRope(""),
	}

	deep := newByteRope("a")
	for _, s := range []string{"bc", "d", "ef", "g"} {
		deep.Append(seqrun.ByteRun(s), len(s))
	}
	ropes = append(ropes, deep)

	many := newByteRope("")
	for i := 0; i < 100; i++ {
		many.Append(seqrun.ByteRun{' ' + byte(i%64)}, 1)
	}
	ropes = append(ropes, many)

	for _, r := range ropes {
		before := collect(r)
		r.rebalance()
		after := collect(r)

		pretty.Println(before, "balanced:", r.IsBalanced())
		assert.Equal(t, before, after)
		assert.True(t, r.IsBalanced())
	}
}

func TestRebalanceTriggersAutomatically(t *testing.T) {
	// Build a tree that is deliberately right-heavy and deep relative to
	// its size by repeatedly appending one element at a time without
	// ever calling rebalance directly — rebalanceIfNeeded must catch the
	// imbalance on its own once depthOf outruns fibMin.
	r := newByteRope("")
	for i := 0; i < 50; i++ {
		r.Append(seqrun.ByteRun{'x'}, 1)
		assert.True(t, r.IsBalanced())
	}
}

func TestRandomizedMutationsMatchReferenceModel(t *testing.T) {
	src := rand.New(rand.NewSource(12345))
	alpha := "abcdefghijklmnopqrstuvwxyz"

	r := newByteRope("")
	var model []byte

	for step := 0; step < 500; step++ {
		switch src.Intn(4) {
		case 0: // Append
			c := alpha[src.Intn(len(alpha))]
			r.Append(seqrun.ByteRun{c}, 1)
			model = append(model, c)
		case 1: // Prepend
			c := alpha[src.Intn(len(alpha))]
			r.Prepend(seqrun.ByteRun{c}, 1)
			model = append([]byte{c}, model...)
		case 2: // Insert
			if len(model) == 0 {
				continue
			}
			pos := src.Intn(len(model) + 1)
			c := alpha[src.Intn(len(alpha))]
			r.Insert(pos, seqrun.ByteRun{c}, 1)
			model = append(model[:pos:pos], append([]byte{c}, model[pos:]...)...)
		case 3: // Remove
			if len(model) == 0 {
				continue
			}
			pos := src.Intn(len(model))
			n := src.Intn(len(model)-pos) + 1
			r.Remove(pos, n)
			model = append(model[:pos:pos], model[pos+n:]...)
		}

		if got, want := collect(r), string(model); got != want {
			t.Fatalf("step %s: got %s, want %s", fmt.Sprint(step), got, want)
		}
		if !r.IsBalanced() {
			t.Fatalf("step %d: rope not balanced", step)
		}
	}
}
