// Package plan assembles the next session's planned sets for one program
// week and day: the program slots give the exercises and set types, stored
// progression rows give the target weights, and the last logged actuals
// stand in where no progression exists yet.
package plan

import (
	"time"

	"github.com/nbilic/liftlog/internal/workout/program"
)

// WeightSource says where a planned target weight came from.
type WeightSource string

const (
	// SourceProgression means the weight was produced by the analysis pipeline.
	SourceProgression WeightSource = "progression"
	// SourceLastSession means the weight repeats the last logged actual.
	SourceLastSession WeightSource = "last_session"
	// SourceOpen means there is no data yet, the lifter works up to a weight.
	SourceOpen WeightSource = "open"
)

type PlannedSet struct {
	Exercise     string          `json:"exercise"`
	SetType      program.SetType `json:"setType"`
	TargetWeight float64         `json:"targetWeight"`
	Source       WeightSource    `json:"source"`
	Reason       string          `json:"reason,omitempty"`
}

type DayPlan struct {
	Week        int          `json:"week"`
	Day         int          `json:"day"`
	ProgramName string       `json:"programName"`
	Sets        []PlannedSet `json:"sets"`
	GeneratedAt time.Time    `json:"generatedAt"`
}
