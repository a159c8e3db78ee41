package buffer

import (
	"fmt"
	"log/slog"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/rs/xid"
)

// Step records what one reference did during a traced run.
type Step struct {
	Pos     int
	Page    util.PageID
	Hit     bool
	Evicted bool
	Victim  util.PageID
}

// Result is the outcome of replaying one sequence under one policy.
type Result struct {
	RunID      string
	Policy     Policy
	Capacity   int
	References int
	Faults     int
	Hits       int
	HitRatio   float64 // percent, 0 for an empty sequence
	Resident   []util.PageID
	Steps      []Step // only filled when tracing
}

// FramePool replays reference sequences against a replacer.
type FramePool struct {
	replacer   Replacer
	traceSteps bool
	logger     *slog.Logger
}

type PoolOption func(*FramePool)

// WithSteps records every reference in Result.Steps.
func WithSteps(enabled bool) PoolOption {
	return func(fp *FramePool) {
		fp.traceSteps = enabled
	}
}

func WithLogger(logger *slog.Logger) PoolOption {
	return func(fp *FramePool) {
		if logger != nil {
			fp.logger = logger
		}
	}
}

func NewFramePool(replacer Replacer, opts ...PoolOption) *FramePool {
	fp := &FramePool{
		replacer: replacer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(fp)
	}
	return fp
}

// Run resets the replacer and replays seq through it. The pool can be reused;
// every run starts from empty frames.
func (fp *FramePool) Run(seq page.Sequence) *Result {
	fp.replacer.Reset(seq)

	res := &Result{
		RunID:      xid.New().String(),
		Policy:     fp.replacer.Policy(),
		Capacity:   fp.replacer.Capacity(),
		References: seq.Len(),
	}
	if fp.traceSteps {
		res.Steps = make([]Step, 0, seq.Len())
	}

	for pos := 0; pos < seq.Len(); pos++ {
		pageId := seq.At(pos)
		out := fp.replacer.Access(pos, pageId)
		if out.Hit {
			res.Hits++
		} else {
			res.Faults++
		}

		if fp.traceSteps {
			res.Steps = append(res.Steps, Step{
				Pos:     pos,
				Page:    pageId,
				Hit:     out.Hit,
				Evicted: out.Evicted,
				Victim:  out.Victim,
			})
			if out.Evicted {
				fp.logger.Debug("page evicted",
					"run_id", res.RunID, "policy", res.Policy.String(),
					"pos", pos, "page", pageId, "victim", out.Victim)
			}
		}
	}

	if res.References > 0 {
		res.HitRatio = float64(res.Hits) / float64(res.References) * 100
	}
	res.Resident = fp.replacer.Resident()

	fp.logger.Debug("simulation finished",
		"run_id", res.RunID, "policy", res.Policy.String(), "capacity", res.Capacity,
		"references", res.References, "faults", res.Faults, "hits", res.Hits)
	return res
}

// Run replays seq under policy with capacity frames.
func Run(policy Policy, seq page.Sequence, capacity int, opts ...PoolOption) (*Result, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", util.ErrInvalidCapacity, capacity)
	}
	replacer, err := NewReplacer(policy, capacity)
	if err != nil {
		return nil, err
	}
	return NewFramePool(replacer, opts...).Run(seq), nil
}
