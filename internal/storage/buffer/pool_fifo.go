package buffer

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// FIFOReplacer evicts the page that has been resident the longest. The queue
// is a ring over the frames; pageToIdx maps a page to its ring slot.
type FIFOReplacer struct {
	*ReplacerShared
	queue []util.PageID // arrival order, starting at head
	head  int
}

func (fr *FIFOReplacer) Init(replacerShared *ReplacerShared) {
	fr.ReplacerShared = replacerShared
	fr.queue = make([]util.PageID, replacerShared.poolSize)
	fr.head = 0
}

func (fr *FIFOReplacer) Reset(_ page.Sequence) {
	fr.resetShared()
	fr.head = 0
}

func (fr *FIFOReplacer) Access(_ int, pageId util.PageID) Outcome {
	if _, ok := fr.lookup(pageId); ok {
		return Outcome{Hit: true}
	}
	if fr.poolSize == 0 {
		return Outcome{}
	}

	var out Outcome
	count := fr.Size()
	if fr.isFull() {
		victim := fr.queue[fr.head]
		fr.removePageMapping(victim)
		fr.head = (fr.head + 1) % fr.poolSize
		count--
		out.Evicted, out.Victim = true, victim
	}

	slot := (fr.head + count) % fr.poolSize
	fr.queue[slot] = pageId
	fr.bind(pageId, slot)
	return out
}

// Resident returns pages from oldest to newest
func (fr *FIFOReplacer) Resident() []util.PageID {
	count := fr.Size()
	out := make([]util.PageID, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, fr.queue[(fr.head+i)%fr.poolSize])
	}
	return out
}

func (fr *FIFOReplacer) Policy() Policy {
	return FIFO
}
