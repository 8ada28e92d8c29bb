package sessions

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nbilic/liftlog/internal/workout/program"
)

// Session is one workout instance: a (week, day) cell of the program with
// start/finish timestamps. A session is active while FinishedAt is nil; at
// most one active session exists at any time.
type Session struct {
	ID         int             `json:"id"`
	Week       int             `json:"week"`
	Day        int             `json:"day"`
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt *time.Time      `json:"finishedAt,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Analysis   json.RawMessage `json:"analysis,omitempty"`
}

func (s *Session) Active() bool {
	return s.FinishedAt == nil
}

// SetLog is one logged set. Immutable once its session is finished.
type SetLog struct {
	ID           int             `json:"id"`
	SessionID    int             `json:"sessionId"`
	Exercise     string          `json:"exercise"`
	SetType      program.SetType `json:"setType"`
	TargetWeight float64         `json:"targetWeight"`
	ActualWeight float64         `json:"actualWeight"`
	TargetReps   RepTarget       `json:"targetReps"`
	ActualReps   int             `json:"actualReps"`
	RPE          *int            `json:"rpe,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CompletedAt  time.Time       `json:"completedAt"`
}

// HistoryRecord is a set log joined with its session's program position.
type HistoryRecord struct {
	SetLog
	Week int `json:"week"`
	Day  int `json:"day"`
}

// RepTarget is a target rep count. Clients may send it either as a plain
// number or as a range string like "8-12"; a range collapses to its lower
// bound.
type RepTarget int

func (rt *RepTarget) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*rt = RepTarget(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid rep target: %s", data)
	}

	s = strings.TrimSpace(s)
	if dash := strings.IndexAny(s, "-–"); dash > 0 {
		s = strings.TrimSpace(s[:dash])
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid rep target %q", s)
	}
	*rt = RepTarget(n)
	return nil
}
