package progression

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/sessions"

	log "github.com/sirupsen/logrus"
)

// ValidationStats counts the per-field outcomes of one validation batch.
type ValidationStats struct {
	Approved  int
	Corrected int
	Dropped   int
}

// boundSetTypes are the set types bounded by the weekly cap and the deload
// floor. Backoff is not among them, it is tied to heavy by the ratio band
// instead.
var boundSetTypes = []program.SetType{program.SetTypeHeavy, program.SetTypeWorking, program.SetTypeDropset}

// Validator clamps advisor recommendations against the program rules. It is
// a pure per-entry transform, everything it needs comes in through the
// arguments.
type Validator struct {
	program *program.Program
}

func NewValidator(trainingProgram *program.Program) *Validator {
	return &Validator{program: trainingProgram}
}

// Validate checks every recommendation entry against the program: unknown
// exercises are dropped, set types the exercise does not have on the given
// day are stripped, weights are clamped to the weekly increase cap and the
// deload floor, backoff weights to the heavy ratio band, and everything is
// rounded to the equipment increment. Corrections are annotated on the
// entry's reason. A day of zero skips the per-day set-type filtering.
func (v *Validator) Validate(recommendations map[string]Recommendation, day int, sets []sessions.SetLog) (map[string]Recommendation, ValidationStats) {
	var stats ValidationStats
	sessionBase := sessionBaselines(sets)
	validated := make(map[string]Recommendation, len(recommendations))

	// map order is random, keep logs and notes deterministic
	exercises := make([]string, 0, len(recommendations))
	for exercise := range recommendations {
		exercises = append(exercises, exercise)
	}
	sort.Strings(exercises)

	for _, exercise := range exercises {
		if _, known := v.program.ExerciseByName(exercise); !known {
			log.Warnf("validator: dropping recommendation for unknown exercise %q", exercise)
			stats.Dropped++
			continue
		}
		in := recommendations[exercise]
		validated[exercise] = v.validateEntry(exercise, in, day, sessionBase[strings.ToLower(exercise)], &stats)
	}

	return validated, stats
}

func (v *Validator) validateEntry(
	exercise string,
	in Recommendation,
	day int,
	base exerciseBaselines,
	stats *ValidationStats,
) Recommendation {
	out := Recommendation{Reason: in.Reason}

	allowed := func(program.SetType) bool { return true }
	if day > 0 {
		if setTypes, ok := v.program.AllowedSetTypes(exercise, day); ok {
			allowedSet := make(map[program.SetType]bool, len(setTypes))
			for _, st := range setTypes {
				allowedSet[st] = true
			}
			allowed = func(st program.SetType) bool { return allowedSet[st] }
		}
	}

	// step 1: drop the fields this exercise does not have on this day
	for _, st := range program.WeightSetTypes {
		if in.Weight(st) == nil || allowed(st) {
			continue
		}
		in.SetWeight(st, nil)
		out.annotate(fmt.Sprintf("%s not valid for D%d", weightField(st), day))
		log.Warnf("validator: %s %s dropped, not valid for D%d", exercise, weightField(st), day)
		stats.Dropped++
	}

	// steps 2 and 3: weekly increase cap and deload floor, relative to the
	// session baseline
	values := make(map[program.SetType]float64)
	for _, st := range boundSetTypes {
		if w := in.Weight(st); w != nil {
			values[st] = v.boundWeight(exercise, st, *w, base.forSetType(st), &out, stats)
		}
	}

	// step 4: backoff stays tied to the already-clamped heavy weight
	if w := in.Weight(program.SetTypeBackoff); w != nil {
		values[program.SetTypeBackoff] = v.boundBackoff(exercise, *w, values, base, &out, stats)
	}

	// step 5: snap everything to the equipment increment
	for _, st := range program.WeightSetTypes {
		if value, ok := values[st]; ok {
			rounded := v.program.RoundWeight(exercise, value)
			out.SetWeight(st, &rounded)
		}
	}

	return out
}

func (v *Validator) boundWeight(
	exercise string,
	st program.SetType,
	value, baseline float64,
	out *Recommendation,
	stats *ValidationStats,
) float64 {
	if baseline <= 0 {
		// nothing to bound against, just keep the value sane
		if value < 0 {
			value = 0
		}
		log.Debugf("validator: %s %s %s approved, no baseline", exercise, weightField(st), fmtWeight(value))
		stats.Approved++
		return value
	}

	maxJump := v.program.MaxWeeklyJump(exercise)
	ceiling := baseline + maxJump
	floor := baseline * v.program.Rules.DeloadFloorRatio

	switch {
	case value > ceiling:
		out.annotate(fmt.Sprintf(
			"%s %s capped to %s (max +%s per week)",
			weightField(st), fmtWeight(value), fmtWeight(ceiling), fmtWeight(maxJump),
		))
		log.Debugf("validator: %s %s %s corrected to %s", exercise, weightField(st), fmtWeight(value), fmtWeight(ceiling))
		stats.Corrected++
		return ceiling
	case value < floor:
		out.annotate(fmt.Sprintf(
			"%s %s raised to the deload floor %s",
			weightField(st), fmtWeight(value), fmtWeight(floor),
		))
		log.Debugf("validator: %s %s %s corrected to %s", exercise, weightField(st), fmtWeight(value), fmtWeight(floor))
		stats.Corrected++
		return floor
	}

	log.Debugf("validator: %s %s %s approved", exercise, weightField(st), fmtWeight(value))
	stats.Approved++
	return value
}

func (v *Validator) boundBackoff(
	exercise string,
	value float64,
	values map[program.SetType]float64,
	base exerciseBaselines,
	out *Recommendation,
	stats *ValidationStats,
) float64 {
	heavy, ok := values[program.SetTypeHeavy]
	if !ok {
		heavy = base.forSetType(program.SetTypeHeavy)
	}
	if heavy <= 0 {
		if value < 0 {
			value = 0
		}
		log.Debugf("validator: %s backoff_weight %s approved, no heavy reference", exercise, fmtWeight(value))
		stats.Approved++
		return value
	}

	rules := v.program.Rules
	low := heavy * rules.BackoffLowRatio
	high := heavy * rules.BackoffHighRatio
	if value < low || value > high {
		// out-of-band backoffs land on the band midpoint, not the nearer edge
		corrected := heavy * rules.BackoffMidpoint()
		out.annotate(fmt.Sprintf(
			"backoff_weight %s outside %s-%s%% of heavy, set to %s",
			fmtWeight(value), fmtWeight(rules.BackoffLowRatio*100), fmtWeight(rules.BackoffHighRatio*100), fmtWeight(corrected),
		))
		log.Debugf("validator: %s backoff_weight %s corrected to %s", exercise, fmtWeight(value), fmtWeight(corrected))
		stats.Corrected++
		return corrected
	}

	log.Debugf("validator: %s backoff_weight %s approved", exercise, fmtWeight(value))
	stats.Approved++
	return value
}

// exerciseBaselines are the best known prior weights per set type, taken
// from the session under analysis.
type exerciseBaselines struct {
	actual map[program.SetType]float64
	target map[program.SetType]float64
}

// forSetType resolves the baseline for one set type: the session's actual
// weight first, its target weight second, and the heavy or working weight
// the session was built around as the generic fallback. Zero means no
// baseline could be resolved at all.
func (b exerciseBaselines) forSetType(st program.SetType) float64 {
	if w := b.actual[st]; w > 0 {
		return w
	}
	if w := b.target[st]; w > 0 {
		return w
	}
	for _, ref := range []program.SetType{program.SetTypeHeavy, program.SetTypeWorking} {
		if w := b.actual[ref]; w > 0 {
			return w
		}
		if w := b.target[ref]; w > 0 {
			return w
		}
	}
	return 0
}

func sessionBaselines(sets []sessions.SetLog) map[string]exerciseBaselines {
	perExercise := make(map[string]exerciseBaselines)
	for _, set := range sets {
		key := strings.ToLower(set.Exercise)
		base, ok := perExercise[key]
		if !ok {
			base = exerciseBaselines{
				actual: make(map[program.SetType]float64),
				target: make(map[program.SetType]float64),
			}
			perExercise[key] = base
		}
		if set.ActualWeight > 0 {
			base.actual[set.SetType] = set.ActualWeight
		}
		if set.TargetWeight > 0 {
			base.target[set.SetType] = set.TargetWeight
		}
	}
	return perExercise
}

func weightField(st program.SetType) string {
	return string(st) + "_weight"
}

// fmtWeight prints a weight without float noise, 82.5 stays "82.5" and 105
// stays "105".
func fmtWeight(w float64) string {
	return strconv.FormatFloat(math.Round(w*100)/100, 'f', -1, 64)
}
