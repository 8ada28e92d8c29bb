// Package progression turns the advisor's freeform answer into persisted
// next-session weights: parse the text, clamp every number against the
// program rules, then upsert the resulting rows.
package progression

import (
	"time"

	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/signals"
)

// Recommendation is the advised weight change for one exercise. A nil
// weight means "no change recommended", never zero. The validator appends
// its correction notes to Reason.
type Recommendation struct {
	HeavyWeight   *float64 `json:"heavy_weight,omitempty"`
	BackoffWeight *float64 `json:"backoff_weight,omitempty"`
	WorkingWeight *float64 `json:"working_weight,omitempty"`
	DropsetWeight *float64 `json:"dropset_weight,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

func (r *Recommendation) Weight(setType program.SetType) *float64 {
	switch setType {
	case program.SetTypeHeavy:
		return r.HeavyWeight
	case program.SetTypeBackoff:
		return r.BackoffWeight
	case program.SetTypeWorking:
		return r.WorkingWeight
	case program.SetTypeDropset:
		return r.DropsetWeight
	}
	return nil
}

func (r *Recommendation) SetWeight(setType program.SetType, weight *float64) {
	switch setType {
	case program.SetTypeHeavy:
		r.HeavyWeight = weight
	case program.SetTypeBackoff:
		r.BackoffWeight = weight
	case program.SetTypeWorking:
		r.WorkingWeight = weight
	case program.SetTypeDropset:
		r.DropsetWeight = weight
	}
}

// Empty reports whether the recommendation carries no weight at all.
func (r *Recommendation) Empty() bool {
	return r.HeavyWeight == nil && r.BackoffWeight == nil &&
		r.WorkingWeight == nil && r.DropsetWeight == nil
}

func (r *Recommendation) annotate(note string) {
	if r.Reason == "" {
		r.Reason = note
		return
	}
	r.Reason += "; " + note
}

// Progression is one persisted target weight. A later recommendation for
// the same (exercise, week, day, set type) replaces the row.
type Progression struct {
	ID        int             `json:"id"`
	Exercise  string          `json:"exercise"`
	Week      int             `json:"week"`
	Day       int             `json:"day"`
	SetType   program.SetType `json:"setType"`
	Weight    float64         `json:"weight"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Analysis is the audit blob stored on a finished session: the extracted
// signals plus the validated recommendations they led to.
type Analysis struct {
	Summary         signals.Summary           `json:"summary"`
	Recommendations map[string]Recommendation `json:"recommendations"`
	// AIUnavailable marks an analysis whose recommendations came from the
	// fallback path instead of the advisor.
	AIUnavailable bool      `json:"aiUnavailable,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
