package sessions_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nbilic/liftlog/internal/workout/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepTarget_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected sessions.RepTarget
		wantErr  bool
	}{
		{name: "plain number", raw: `8`, expected: 8},
		{name: "number as string", raw: `"10"`, expected: 10},
		{name: "range", raw: `"8-12"`, expected: 8},
		{name: "range with spaces", raw: `" 6 - 8 "`, expected: 6},
		{name: "range with en dash", raw: `"8–12"`, expected: 8},
		{name: "negative", raw: `"-5"`, wantErr: true},
		{name: "gibberish", raw: `"abc"`, wantErr: true},
		{name: "bool", raw: `true`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var rt sessions.RepTarget
			err := json.Unmarshal([]byte(tc.raw), &rt)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rt)
		})
	}
}

func TestSession_Active(t *testing.T) {
	session := sessions.Session{ID: 1, StartedAt: time.Now()}
	assert.True(t, session.Active())

	finishedAt := time.Now()
	session.FinishedAt = &finishedAt
	assert.False(t, session.Active())
}

func TestSession_MarshalJSON(t *testing.T) {
	session := sessions.Session{
		ID:        1,
		Week:      2,
		Day:       3,
		StartedAt: time.Now(),
	}

	sessionJson, err := json.Marshal(session)
	require.NoError(t, err)
	assert.NotContains(t, string(sessionJson), "finishedAt")
	assert.NotContains(t, string(sessionJson), "analysis")
}
