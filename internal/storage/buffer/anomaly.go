package buffer

import (
	"fmt"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// AnomalyReport compares FIFO faults at two frame counts.
type AnomalyReport struct {
	Smaller       int
	Larger        int
	SmallerFaults int
	LargerFaults  int
	Observed      bool // more frames gave strictly more faults
}

// DetectAnomaly runs FIFO at both capacities and reports Belady's Anomaly.
// The capacities may be given in either order.
func DetectAnomaly(seq page.Sequence, capacityA, capacityB int) (*AnomalyReport, error) {
	if capacityA < 0 || capacityB < 0 {
		return nil, fmt.Errorf("%w: %d/%d", util.ErrInvalidCapacity, capacityA, capacityB)
	}
	if capacityA > capacityB {
		capacityA, capacityB = capacityB, capacityA
	}

	small, err := Run(FIFO, seq, capacityA)
	if err != nil {
		return nil, err
	}
	large, err := Run(FIFO, seq, capacityB)
	if err != nil {
		return nil, err
	}

	return &AnomalyReport{
		Smaller:       capacityA,
		Larger:        capacityB,
		SmallerFaults: small.Faults,
		LargerFaults:  large.Faults,
		Observed:      large.Faults > small.Faults,
	}, nil
}

// FaultCurve returns the fault count of policy for every capacity from 0 to
// maxCapacity inclusive.
func FaultCurve(policy Policy, seq page.Sequence, maxCapacity int) ([]int, error) {
	if maxCapacity < 0 {
		return nil, fmt.Errorf("%w: %d", util.ErrInvalidCapacity, maxCapacity)
	}
	faults := make([]int, maxCapacity+1)
	for c := 0; c <= maxCapacity; c++ {
		res, err := Run(policy, seq, c)
		if err != nil {
			return nil, err
		}
		faults[c] = res.Faults
	}
	return faults, nil
}

// ScanAnomalies reports every capacity c < maxCapacity where FIFO with c+1
// frames faults more than with c.
func ScanAnomalies(seq page.Sequence, maxCapacity int) ([]AnomalyReport, error) {
	curve, err := FaultCurve(FIFO, seq, maxCapacity)
	if err != nil {
		return nil, err
	}
	var out []AnomalyReport
	for c := 0; c+1 < len(curve); c++ {
		if curve[c+1] > curve[c] {
			out = append(out, AnomalyReport{
				Smaller:       c,
				Larger:        c + 1,
				SmallerFaults: curve[c],
				LargerFaults:  curve[c+1],
				Observed:      true,
			})
		}
	}
	return out, nil
}
