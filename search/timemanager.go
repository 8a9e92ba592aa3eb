package search

import "time"

// TimeManager decides how long the driver may spend on the current
// move. It is a small interface, in the style of a pluggable search
// strategy, even though today there is exactly one implementation:
// swapping the allocation policy (e.g. for a future pondering or
// tournament-increment-aware strategy) should never require touching
// the driver.
type TimeManager interface {
	// Allocate returns the time budget for the move about to be
	// searched, given the clock remaining, the increment per move (both
	// may be zero if unknown) and the number of legal root moves.
	Allocate(remaining, increment time.Duration, legalMoveCount int) time.Duration
}

// analysisFallback is the budget used when no remaining time was
// supplied at all (e.g. "go infinite"-style analysis without a clock).
const analysisFallback = time.Second

// standardTimeManager implements the per-move allocation formula: a
// tenth of the remaining clock plus the increment, scaled by how far the
// number of legal moves is from a "typical" middlegame branching factor
// of 30, then clamped to a sane range.
type standardTimeManager struct{}

// NewTimeManager returns the standard per-move time allocation strategy.
func NewTimeManager() TimeManager {
	return standardTimeManager{}
}

func (standardTimeManager) Allocate(remaining, increment time.Duration, legalMoveCount int) time.Duration {
	if remaining <= 0 {
		return analysisFallback
	}

	budget := remaining/10 + increment

	factor := float64(legalMoveCount) / 30.0
	if factor < 0.7 {
		factor = 0.7
	} else if factor > 1.3 {
		factor = 1.3
	}
	budget = time.Duration(float64(budget) * factor)

	const minBudget = 20 * time.Millisecond
	maxBudget := remaining * 2 / 3
	if budget < minBudget {
		budget = minBudget
	}
	if budget > maxBudget {
		budget = maxBudget
	}
	return budget
}
