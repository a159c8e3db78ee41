package buffer

import (
	"fmt"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

type LRUDesc struct {
	pageID  util.PageID
	nextIdx int
	prevIdx int
}

// LRUReplacer keeps frames on an index-linked list, least recently used at
// the head.
type LRUReplacer struct {
	frames []*LRUDesc
	*ReplacerShared
	lruHead int // Head of LRU (evict first)
	lruTail int // Tail of LRU (most recent)
}

func (lr *LRUReplacer) Init(replacerShared *ReplacerShared) {
	lr.frames = make([]*LRUDesc, replacerShared.poolSize)
	lr.ReplacerShared = replacerShared
	lr.lruHead = -1
	lr.lruTail = -1
}

func (lr *LRUReplacer) Reset(_ page.Sequence) {
	for i := range lr.frames {
		lr.frames[i] = nil
	}
	lr.resetShared()
	lr.lruHead = -1
	lr.lruTail = -1
}

func (lr *LRUReplacer) Access(_ int, pageId util.PageID) Outcome {
	if frameIdx, ok := lr.lookup(pageId); ok {
		lr.moveToTail(frameIdx)
		return Outcome{Hit: true}
	}
	if lr.poolSize == 0 {
		return Outcome{}
	}

	var out Outcome
	frameIdx := lr.allocFromFree()
	if frameIdx == -1 {
		victimIdx, victim := lr.Evict()
		lr.returnFrameToFree(victimIdx)
		frameIdx = lr.allocFromFree()
		out.Evicted, out.Victim = true, victim
	}

	lr.addToTail(frameIdx, pageId)
	lr.bind(pageId, frameIdx)
	return out
}

// Evict unlinks the least recently used frame and returns its index and page.
func (lr *LRUReplacer) Evict() (int, util.PageID) {
	current := lr.lruHead
	if current == -1 {
		panic("[Evict LRU] no evictable frame")
	}
	node := lr.frames[current]
	lr.removeLRUByIndex(current)
	lr.removePageMapping(node.pageID)
	lr.frames[current] = nil
	return current, node.pageID
}

// Resident returns pages from least to most recently used
func (lr *LRUReplacer) Resident() []util.PageID {
	out := make([]util.PageID, 0, lr.Size())
	for current := lr.lruHead; current != -1; current = lr.frames[current].nextIdx {
		out = append(out, lr.frames[current].pageID)
	}
	return out
}

func (lr *LRUReplacer) Policy() Policy {
	return LRU
}

func (lr *LRUReplacer) moveToTail(frameIdx int) {
	if frameIdx == lr.lruTail {
		return
	}
	node := lr.frames[frameIdx]
	lr.removeLRUByIndex(frameIdx)
	lr.addToTail(frameIdx, node.pageID)
}

func (lr *LRUReplacer) addToTail(frameIdx int, pageId util.PageID) {
	if frameIdx >= lr.poolSize || frameIdx < 0 {
		panic(fmt.Sprintf("[lru] [addToTail] frame index out of bound: %d", frameIdx))
	}

	tmp := lr.lruTail
	lr.lruTail = frameIdx
	lr.frames[frameIdx] = &LRUDesc{
		pageID:  pageId,
		prevIdx: tmp,
		nextIdx: -1,
	}
	if tmp != -1 {
		lr.frames[tmp].nextIdx = frameIdx
	}
	if lr.lruHead == -1 {
		lr.lruHead = frameIdx
	}
}

func (lr *LRUReplacer) removeLRUByIndex(frameIdx int) {
	if frameIdx >= lr.poolSize || frameIdx < 0 {
		panic(fmt.Sprintf("[lru] [removeLRUByIndex] frame index out of bound: %d", frameIdx))
	}
	node := lr.frames[frameIdx]
	if lr.lruHead == -1 || node == nil || (node.nextIdx == -1 && node.prevIdx == -1 && lr.lruHead != frameIdx) {
		panic(fmt.Sprintf("[lru] [removeLRUByIndex] invalid LRU state for frame %d", frameIdx))
	}
	prev := node.prevIdx
	next := node.nextIdx
	isHead := prev == -1
	isTail := next == -1

	switch {
	case isHead && isTail:
		// Only one node in the list
		lr.lruHead = -1
		lr.lruTail = -1
	case isHead && !isTail:
		// Removing head, next becomes new head
		lr.lruHead = next
		lr.frames[next].prevIdx = -1
	case !isHead && isTail:
		// Removing tail, prev becomes new tail
		lr.lruTail = prev
		lr.frames[prev].nextIdx = -1
	case !isHead && !isTail:
		// Removing middle node, connect prev and next
		lr.frames[prev].nextIdx = next
		lr.frames[next].prevIdx = prev
	}

	node.nextIdx = -1
	node.prevIdx = -1
}
