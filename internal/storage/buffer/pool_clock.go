package buffer

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

type ClockDesc struct {
	pageID   util.PageID
	occupied bool
	refBit   bool
}

// ClockReplacer is the second-chance policy: a circular array of frames and
// a hand. A set reference bit buys a page one more pass of the hand.
type ClockReplacer struct {
	frames []ClockDesc
	*ReplacerShared
	hand int // next slot to examine, always in [0, poolSize) when poolSize > 0
}

func (cr *ClockReplacer) Init(replacerShared *ReplacerShared) {
	cr.frames = make([]ClockDesc, replacerShared.poolSize)
	cr.ReplacerShared = replacerShared
	cr.hand = 0
}

func (cr *ClockReplacer) Reset(_ page.Sequence) {
	for i := range cr.frames {
		cr.frames[i] = ClockDesc{}
	}
	cr.resetShared()
	cr.hand = 0
}

func (cr *ClockReplacer) Access(_ int, pageId util.PageID) Outcome {
	if frameIdx, ok := cr.lookup(pageId); ok {
		cr.frames[frameIdx].refBit = true
		return Outcome{Hit: true}
	}
	if cr.poolSize == 0 {
		return Outcome{}
	}

	// Every pass clears a bit, so this stops within two turns of the clock.
	for {
		desc := &cr.frames[cr.hand]
		if !desc.occupied || !desc.refBit {
			break
		}
		desc.refBit = false
		cr.hand = (cr.hand + 1) % cr.poolSize
	}

	var out Outcome
	victimIdx := cr.hand
	desc := &cr.frames[victimIdx]
	if desc.occupied {
		cr.removePageMapping(desc.pageID)
		out.Evicted, out.Victim = true, desc.pageID
	}

	*desc = ClockDesc{pageID: pageId, occupied: true, refBit: true}
	cr.bind(pageId, victimIdx)
	cr.hand = (victimIdx + 1) % cr.poolSize
	return out
}

// Resident returns pages in slot order
func (cr *ClockReplacer) Resident() []util.PageID {
	out := make([]util.PageID, 0, cr.Size())
	for _, desc := range cr.frames {
		if desc.occupied {
			out = append(out, desc.pageID)
		}
	}
	return out
}

// Hand returns the slot the next fault starts scanning from
func (cr *ClockReplacer) Hand() int {
	return cr.hand
}

func (cr *ClockReplacer) Policy() Policy {
	return Clock
}
