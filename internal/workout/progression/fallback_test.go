package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/progression"
	"github.com/nbilic/liftlog/internal/workout/sessions"
)

func TestFallbackRecommendations(t *testing.T) {
	sets := []sessions.SetLog{
		sessionSet("bench press", program.SetTypeWarmup, 60, 60),
		sessionSet("bench press", program.SetTypeHeavy, 100, 100),
		sessionSet("bench press", program.SetTypeBackoff, 82.5, 82.5),
		// skipped set, the target stands in for the missing actual
		sessionSet("overhead press", program.SetTypeWorking, 0, 47.5),
	}

	recommendations := progression.FallbackRecommendations(sets)
	require.Len(t, recommendations, 2)

	bench := recommendations["bench press"]
	require.NotNil(t, bench.HeavyWeight)
	require.NotNil(t, bench.BackoffWeight)
	assert.Equal(t, 100.0, *bench.HeavyWeight)
	// held verbatim, no equipment rounding on the fallback path
	assert.Equal(t, 82.5, *bench.BackoffWeight)
	assert.Nil(t, bench.WorkingWeight)
	assert.Equal(t, "AI analysis unavailable, holding current weights", bench.Reason)

	ohp := recommendations["overhead press"]
	require.NotNil(t, ohp.WorkingWeight)
	assert.Equal(t, 47.5, *ohp.WorkingWeight)
	assert.Equal(t, "AI analysis unavailable, holding current weights", ohp.Reason)
}

func TestFallbackRecommendations_lastSetWins(t *testing.T) {
	sets := []sessions.SetLog{
		sessionSet("bench press", program.SetTypeHeavy, 100, 100),
		sessionSet("bench press", program.SetTypeHeavy, 102.5, 100),
	}

	recommendations := progression.FallbackRecommendations(sets)
	rec := recommendations["bench press"]
	require.NotNil(t, rec.HeavyWeight)
	assert.Equal(t, 102.5, *rec.HeavyWeight)
}

func TestFallbackRecommendations_skipsUnusableSets(t *testing.T) {
	sets := []sessions.SetLog{
		sessionSet("bench press", program.SetTypeWarmup, 60, 60),
		sessionSet("overhead press", program.SetTypeWorking, 0, 0),
		sessionSet("squat", program.SetType("bogus"), 100, 100),
	}

	recommendations := progression.FallbackRecommendations(sets)
	assert.Empty(t, recommendations)
}

func TestFallbackRecommendations_noSets(t *testing.T) {
	assert.Empty(t, progression.FallbackRecommendations(nil))
}
