package buffer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Compare runs each policy on its own replacer, concurrently, over the shared
// sequence. Results follow the order of policies; no policies means all.
func Compare(seq page.Sequence, capacity int, policies []Policy, opts ...PoolOption) ([]*Result, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", util.ErrInvalidCapacity, capacity)
	}
	if len(policies) == 0 {
		policies = AllPolicies
	}

	results := make([]*Result, len(policies))
	errs := make([]error, len(policies))
	var wg sync.WaitGroup
	for i, policy := range policies {
		i, policy := i, policy
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Run(policy, seq, capacity, opts...)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
