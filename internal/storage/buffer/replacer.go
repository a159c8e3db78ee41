package buffer

//go:generate mockgen -destination=mock_replacer_test.go -package=buffer -source=replacer.go Replacer

import (
	"fmt"
	"strings"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Policy selects a page replacement policy.
type Policy int

const (
	FIFO Policy = iota
	LRU
	Optimal
	Clock
)

// AllPolicies lists every policy in report order.
var AllPolicies = []Policy{FIFO, LRU, Optimal, Clock}

func (p Policy) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case Optimal:
		return "Optimal"
	case Clock:
		return "Clock"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy resolves a policy name, case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	case "optimal", "opt", "belady":
		return Optimal, nil
	case "clock", "second-chance":
		return Clock, nil
	default:
		return 0, fmt.Errorf("%w: %q", util.ErrUnknownPolicy, name)
	}
}

// ParsePolicies resolves a list of names. "all" expands to AllPolicies and
// duplicates are dropped.
func ParsePolicies(names []string) ([]Policy, error) {
	var out []Policy
	seen := make(map[Policy]bool)
	add := func(p Policy) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, p := range AllPolicies {
				add(p)
			}
			continue
		}
		p, err := ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		add(p)
	}
	return out, nil
}

// Outcome describes what a single reference did to the frame store.
type Outcome struct {
	Hit     bool
	Evicted bool
	Victim  util.PageID
}

// Replacer defines the contract for page replacement policies.
type Replacer interface {
	// Reset empties the frames and prepares a run over seq.
	Reset(seq page.Sequence)
	// Access references pageID at position pos of the sequence given to Reset.
	// Positions must be visited in increasing order.
	Access(pos int, pageID util.PageID) Outcome
	// Resident lists resident pages in the policy's own order.
	Resident() []util.PageID
	Size() int
	Capacity() int
	Policy() Policy
}

// NewReplacer builds an empty replacer for policy with capacity frames.
func NewReplacer(policy Policy, capacity int) (Replacer, error) {
	shared, err := NewReplacerShared(capacity)
	if err != nil {
		return nil, err
	}

	switch policy {
	case FIFO:
		r := &FIFOReplacer{}
		r.Init(shared)
		return r, nil
	case LRU:
		r := &LRUReplacer{}
		r.Init(shared)
		return r, nil
	case Optimal:
		r := &OptimalReplacer{}
		r.Init(shared)
		return r, nil
	case Clock:
		r := &ClockReplacer{}
		r.Init(shared)
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %v", util.ErrUnknownPolicy, policy)
	}
}
