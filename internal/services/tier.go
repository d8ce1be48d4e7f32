package services

import "ai-quiz-backend/internal/models"

const (
	excellentPercent = 80
	passPercent      = 60
)

// Classify maps score/max to a tier. Thresholds are compared in integer
// arithmetic so 80% and 60% are inclusive and exact.
func Classify(score, max int) models.Tier {
	if max <= 0 {
		return models.TierFail
	}
	switch {
	case score*100 >= excellentPercent*max:
		return models.TierExcellent
	case score*100 >= passPercent*max:
		return models.TierPass
	}
	return models.TierFail
}

// Aggregate returns the weakest of tiers. An empty list is a Fail.
func Aggregate(tiers ...models.Tier) models.Tier {
	if len(tiers) == 0 {
		return models.TierFail
	}
	worst := tiers[0]
	for _, t := range tiers[1:] {
		if t < worst {
			worst = t
		}
	}
	return worst
}
