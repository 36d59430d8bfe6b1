package match

import (
	"sort"

	"giveLocal/domain"
)

// Blend weights for the three sub-scores, plus the flat urgency bonus.
const (
	weightRule = 0.55
	weightName = 0.25
	weightKnn  = 0.20

	priorityBonus = 0.05
)

// combine blends the normalized sub-scores into the final ranking value,
// applies the priority bonus and clamps to 1.0. All inputs are
// non-negative, so no floor clamp is needed.
func combine(rule, name, knn float64, priority bool) float64 {
	score := weightRule*rule + weightName*name + weightKnn*knn
	if priority {
		score += priorityBonus
	}
	if score > 1 {
		score = 1
	}
	return score
}

// rankCandidates orders by combined score descending. Equal scores fall
// back to item ID ascending so a ranking is reproducible across calls
// instead of depending on incidental sort stability.
func rankCandidates(results []domain.ScoredCandidate) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].CombinedScore != results[j].CombinedScore {
			return results[i].CombinedScore > results[j].CombinedScore
		}
		return results[i].Donor.ID < results[j].Donor.ID
	})
}
