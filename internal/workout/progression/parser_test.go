package progression_test

import (
	"testing"

	"github.com/nbilic/liftlog/internal/workout/progression"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendations(t *testing.T) {
	text := `{"bench press": {"heavy_weight": 102.5, "backoff_weight": 85, "reason": "all targets hit"}}`

	recs, err := progression.ParseRecommendations(text)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs["bench press"]
	require.NotNil(t, rec.HeavyWeight)
	assert.Equal(t, 102.5, *rec.HeavyWeight)
	require.NotNil(t, rec.BackoffWeight)
	assert.Equal(t, float64(85), *rec.BackoffWeight)
	assert.Nil(t, rec.WorkingWeight)
	assert.Nil(t, rec.DropsetWeight)
	assert.Equal(t, "all targets hit", rec.Reason)
}

func TestParseRecommendations_surroundingProse(t *testing.T) {
	text := "Sure! Based on the session data, here is my suggestion:\n" +
		"```json\n" +
		`{"squat": {"heavy_weight": 145, "reason": "strong session"}}` + "\n" +
		"```\n" +
		"Keep an eye on the knee."

	recs, err := progression.ParseRecommendations(text)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotNil(t, recs["squat"].HeavyWeight)
	assert.Equal(t, float64(145), *recs["squat"].HeavyWeight)
}

func TestParseRecommendations_envelope(t *testing.T) {
	text := `{"recommendations": {"deadlift": {"heavy_weight": 180}}}`

	recs, err := progression.ParseRecommendations(text)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotNil(t, recs["deadlift"].HeavyWeight)
	assert.Equal(t, float64(180), *recs["deadlift"].HeavyWeight)
}

func TestParseRecommendations_noJson(t *testing.T) {
	testCases := []string{
		"",
		"sorry, I cannot help with that",
		"unbalanced } brace { here",
	}

	for _, text := range testCases {
		recs, err := progression.ParseRecommendations(text)
		assert.ErrorIs(t, err, progression.ErrNoValidJSON, "input: %q", text)
		assert.Nil(t, recs)
	}
}

func TestParseRecommendations_brokenJson(t *testing.T) {
	recs, err := progression.ParseRecommendations(`{"bench press": {"heavy_weight": 102.5,}`)
	assert.ErrorIs(t, err, progression.ErrNoValidJSON)
	assert.Nil(t, recs)
}

func TestParseRecommendations_nonObjectEntriesDropped(t *testing.T) {
	text := `{
		"bench press": {"heavy_weight": 100},
		"note": "general advice, not a recommendation",
		"squat": 140,
		"deadlift": null
	}`

	recs, err := progression.ParseRecommendations(text)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Contains(t, recs, "bench press")
}

func TestParseRecommendations_malformedEntryDropped(t *testing.T) {
	text := `{
		"bench press": {"heavy_weight": "a lot"},
		"squat": {"heavy_weight": 140}
	}`

	recs, err := progression.ParseRecommendations(text)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Contains(t, recs, "squat")
}
