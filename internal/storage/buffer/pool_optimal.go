package buffer

import (
	"slices"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// OptimalReplacer is Belady's offline policy. It needs the whole sequence up
// front and evicts the resident page referenced farthest in the future.
type OptimalReplacer struct {
	*ReplacerShared
	resident []util.PageID       // resident order, used for tie-breaks
	nextUse  map[util.PageID]int // next reference after the current position
	nextAt   []int               // per position, next reference of the same page
}

func (opt *OptimalReplacer) Init(replacerShared *ReplacerShared) {
	opt.ReplacerShared = replacerShared
	opt.resident = make([]util.PageID, 0, replacerShared.poolSize)
	opt.nextUse = make(map[util.PageID]int, replacerShared.poolSize)
	opt.nextAt = nil
}

func (opt *OptimalReplacer) Reset(seq page.Sequence) {
	opt.resetShared()
	opt.resident = opt.resident[:0]
	clear(opt.nextUse)
	opt.nextAt = seq.NextUses()
}

func (opt *OptimalReplacer) Access(pos int, pageId util.PageID) Outcome {
	if _, ok := opt.lookup(pageId); ok {
		opt.nextUse[pageId] = opt.nextAfter(pos)
		return Outcome{Hit: true}
	}
	if opt.poolSize == 0 {
		return Outcome{}
	}

	var out Outcome
	frameIdx := opt.allocFromFree()
	if frameIdx == -1 {
		i := opt.findVictim()
		victim := opt.resident[i]
		opt.resident = slices.Delete(opt.resident, i, i+1)

		victimIdx, _ := opt.lookup(victim)
		opt.removePageMapping(victim)
		delete(opt.nextUse, victim)
		opt.returnFrameToFree(victimIdx)
		frameIdx = opt.allocFromFree()
		out.Evicted, out.Victim = true, victim
	}

	opt.resident = append(opt.resident, pageId)
	opt.nextUse[pageId] = opt.nextAfter(pos)
	opt.bind(pageId, frameIdx)
	return out
}

// findVictim scans residents in order and keeps the first page with the
// farthest next use. A page never used again ends the scan.
func (opt *OptimalReplacer) findVictim() int {
	best, bestNext := 0, -1
	for i, id := range opt.resident {
		next := opt.nextUse[id]
		if next == util.NeverUsed {
			return i
		}
		if next > bestNext {
			best, bestNext = i, next
		}
	}
	return best
}

func (opt *OptimalReplacer) nextAfter(pos int) int {
	if pos < 0 || pos >= len(opt.nextAt) {
		return util.NeverUsed
	}
	return opt.nextAt[pos]
}

// Resident returns pages in resident order
func (opt *OptimalReplacer) Resident() []util.PageID {
	return slices.Clone(opt.resident)
}

func (opt *OptimalReplacer) Policy() Policy {
	return Optimal
}
