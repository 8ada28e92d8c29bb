package progression

import (
	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/sessions"
)

const fallbackReason = "AI analysis unavailable, holding current weights"

// FallbackRecommendations builds the "hold weight" recommendation used when
// the advisor call or its parsing fails: for every weight set type logged in
// the session, the next target equals this session's actual (or, when no
// actual was recorded, target) weight. The weights come straight from the
// session, so they skip the validator.
func FallbackRecommendations(sets []sessions.SetLog) map[string]Recommendation {
	recommendations := make(map[string]Recommendation)
	for _, set := range sets {
		if set.SetType == program.SetTypeWarmup || !set.SetType.Valid() {
			continue
		}
		weight := set.ActualWeight
		if weight <= 0 {
			weight = set.TargetWeight
		}
		if weight <= 0 {
			continue
		}

		rec := recommendations[set.Exercise]
		w := weight
		rec.SetWeight(set.SetType, &w)
		rec.Reason = fallbackReason
		recommendations[set.Exercise] = rec
	}
	return recommendations
}
