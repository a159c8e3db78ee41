package page

import (
	"fmt"
	"strings"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Sequence is an immutable, ordered list of page references. It is safe to
// share between concurrent simulation runs.
type Sequence struct {
	refs []util.PageID
}

// NewSequence copies ids into a new sequence
func NewSequence(ids ...util.PageID) Sequence {
	refs := make([]util.PageID, len(ids))
	copy(refs, ids)
	return Sequence{refs: refs}
}

// FromValues builds a sequence after checking that the caller's declared
// count matches the number of values. A negative declared count skips the
// check.
func FromValues(declared int, values []util.PageID) (Sequence, error) {
	if declared >= 0 && declared != len(values) {
		return Sequence{}, fmt.Errorf("%w: declared %d pages, got %d", util.ErrInvalidSequence, declared, len(values))
	}
	return NewSequence(values...), nil
}

func (s Sequence) Len() int {
	return len(s.refs)
}

// At returns the page referenced at position i
func (s Sequence) At(i int) util.PageID {
	return s.refs[i]
}

// Pages returns a copy of the references
func (s Sequence) Pages() []util.PageID {
	out := make([]util.PageID, len(s.refs))
	copy(out, s.refs)
	return out
}

// Distinct counts the different pages referenced
func (s Sequence) Distinct() int {
	seen := make(map[util.PageID]struct{}, len(s.refs))
	for _, id := range s.refs {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// NextUses returns, for every position i, the position of the next reference
// to the same page after i, or util.NeverUsed.
func (s Sequence) NextUses() []int {
	next := make([]int, len(s.refs))
	last := make(map[util.PageID]int, len(s.refs))
	for i := len(s.refs) - 1; i >= 0; i-- {
		id := s.refs[i]
		if j, ok := last[id]; ok {
			next[i] = j
		} else {
			next[i] = util.NeverUsed
		}
		last[id] = i
	}
	return next
}

func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range s.refs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", id)
	}
	b.WriteByte(']')
	return b.String()
}
