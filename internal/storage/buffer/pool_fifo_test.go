package buffer

import (
	"testing"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFIFOReplacer(t *testing.T, size int) (*FIFOReplacer, *ReplacerShared) {
	t.Helper()
	shared, err := NewReplacerShared(size)
	require.NoError(t, err, "create shared state")
	replacer := &FIFOReplacer{}
	replacer.Init(shared)
	return replacer, shared
}

func TestFIFOAccess(t *testing.T) {
	t.Run("ArrivalOrder", func(t *testing.T) {
		replacer, shared := newFIFOReplacer(t, 3)
		replacer.Reset(seqOf())

		for i, id := range util.PageIDs(1, 2, 3) {
			assert.Equal(t, Outcome{}, replacer.Access(i, id), "cold fault %d", id)
		}
		assert.Equal(t, util.PageIDs(1, 2, 3), replacer.Resident())

		// A hit does not refresh arrival order.
		assert.True(t, replacer.Access(3, 1).Hit)
		assert.Equal(t, Outcome{Evicted: true, Victim: 1}, replacer.Access(4, 4))
		assert.Equal(t, util.PageIDs(2, 3, 4), replacer.Resident())
		assert.Equal(t, Outcome{Evicted: true, Victim: 2}, replacer.Access(5, 1))
		assert.Equal(t, util.PageIDs(3, 4, 1), replacer.Resident())

		for slot, id := range replacer.queue {
			assert.Equal(t, slot, shared.pageToIdx[id], "page %d mapped to its ring slot", id)
		}
	})

	t.Run("BeladySequence", func(t *testing.T) {
		replacer, _ := newFIFOReplacer(t, 3)
		seq := seqOf(1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5)
		replacer.Reset(seq)

		var victims []util.PageID
		faults := 0
		for pos := 0; pos < seq.Len(); pos++ {
			out := replacer.Access(pos, seq.At(pos))
			if !out.Hit {
				faults++
			}
			if out.Evicted {
				victims = append(victims, out.Victim)
			}
		}
		assert.Equal(t, 9, faults)
		assert.Equal(t, util.PageIDs(1, 2, 3, 4, 1, 2), victims)
		assert.Equal(t, util.PageIDs(5, 3, 4), replacer.Resident())
	})

	t.Run("ZeroFrames", func(t *testing.T) {
		replacer, _ := newFIFOReplacer(t, 0)
		replacer.Reset(seqOf())
		for i := 0; i < 4; i++ {
			assert.Equal(t, Outcome{}, replacer.Access(i, 1))
		}
		assert.Empty(t, replacer.Resident())
		assert.Equal(t, 0, replacer.Size())
	})

	t.Run("ResetBuffer", func(t *testing.T) {
		replacer, _ := newFIFOReplacer(t, 2)
		replacer.Reset(seqOf())
		replacer.Access(0, 1)
		replacer.Access(1, 2)
		replacer.Access(2, 3)

		replacer.Reset(seqOf())
		assert.Equal(t, 0, replacer.head)
		assert.Empty(t, replacer.Resident())
		assert.False(t, replacer.Access(0, 2).Hit, "nothing survives a reset")
	})
}
