package buffer

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// ReplacerShared is the frame store common to every policy: a bounded set of
// resident pages, each bound to one frame index.
type ReplacerShared struct {
	pageToIdx map[util.PageID]int // Map PageID to frame index
	nextFree  []int               // Free list for allocation
	freeHead  int                 // Head of free list
	poolSize  int                 // Total frames
}

// NewReplacerShared initializes the shared replacer state. Zero frames is a
// valid, degenerate store that never retains a page.
func NewReplacerShared(size int) (*ReplacerShared, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", util.ErrInvalidCapacity, size)
	}
	rs := &ReplacerShared{
		pageToIdx: make(map[util.PageID]int, size),
		nextFree:  make([]int, size),
		poolSize:  size,
	}
	rs.resetShared()
	return rs, nil
}

func (rs *ReplacerShared) resetShared() {
	clear(rs.pageToIdx)
	for i := 0; i < rs.poolSize; i++ {
		rs.nextFree[i] = i + 1
	}
	if rs.poolSize > 0 {
		rs.nextFree[rs.poolSize-1] = -1
		rs.freeHead = 0
	} else {
		rs.freeHead = -1
	}
}

// allocFromFree allocates a free frame index.
func (rs *ReplacerShared) allocFromFree() int {
	if rs.freeHead == -1 {
		return -1
	}
	freeIdx := rs.freeHead
	rs.freeHead = rs.nextFree[freeIdx]
	rs.nextFree[freeIdx] = -1
	return freeIdx
}

// returnFrameToFree returns a frame to the free list.
func (rs *ReplacerShared) returnFrameToFree(frameIdx int) {
	if frameIdx >= rs.poolSize || frameIdx < 0 {
		panic(fmt.Sprintf("[replacer] [returnFrameToFree] %v: %d", util.ErrOutBoundOfFrame, frameIdx))
	}
	rs.nextFree[frameIdx] = rs.freeHead
	rs.freeHead = frameIdx
}

func (rs *ReplacerShared) lookup(pageId util.PageID) (int, bool) {
	idx, ok := rs.pageToIdx[pageId]
	return idx, ok
}

func (rs *ReplacerShared) bind(pageId util.PageID, frameIdx int) {
	rs.pageToIdx[pageId] = frameIdx
}

// removePageMapping removes a page from the pageToIdx map.
func (rs *ReplacerShared) removePageMapping(pageId util.PageID) {
	delete(rs.pageToIdx, pageId)
}

func (rs *ReplacerShared) isFull() bool {
	return len(rs.pageToIdx) >= rs.poolSize
}

// Size returns the number of resident pages
func (rs *ReplacerShared) Size() int {
	return len(rs.pageToIdx)
}

// Capacity returns the number of frames
func (rs *ReplacerShared) Capacity() int {
	return rs.poolSize
}

func (rs *ReplacerShared) getMap() map[util.PageID]int {
	return rs.pageToIdx
}
