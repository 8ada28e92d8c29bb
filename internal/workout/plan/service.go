package plan

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plan_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/progression"
	"github.com/nbilic/liftlog/internal/workout/sessions"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type progressionSource interface {
	ForTarget(ctx context.Context, week, day int) ([]progression.Progression, error)
}

type lastActualsSource interface {
	LastActualWeights(ctx context.Context) ([]sessions.LastActual, error)
}

type Service struct {
	progressions progressionSource
	lastActuals  lastActualsSource
	program      *program.Program
	cache        *Cache
}

// NewService wires the plan assembler. A nil cache disables caching.
func NewService(
	progressions progressionSource,
	lastActuals lastActualsSource,
	trainingProgram *program.Program,
	cache *Cache,
) *Service {
	return &Service{
		progressions: progressions,
		lastActuals:  lastActuals,
		program:      trainingProgram,
		cache:        cache,
	}
}

// ForDay assembles the planned sets for one program week and day. Plans
// are cached until new progression rows arrive for the target or the
// entry expires.
func (s *Service) ForDay(ctx context.Context, week, day int) (_ *DayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.plan.forday")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if s.cache != nil {
		if cached := s.cache.Get(week, day); cached != nil {
			return cached, nil
		}
	}

	// range checks live in the progression service
	rows, err := s.progressions.ForTarget(ctx, week, day)
	if err != nil {
		return nil, err
	}
	targets := make(map[string]progression.Progression, len(rows))
	for _, row := range rows {
		targets[targetKey(row.Exercise, row.SetType)] = row
	}

	actuals, err := s.lastActuals.LastActualWeights(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last actual weights: %w", err)
	}
	lastWeights := make(map[string]float64, len(actuals))
	for _, actual := range actuals {
		lastWeights[targetKey(actual.Exercise, actual.SetType)] = actual.Weight
	}

	dayPlan := &DayPlan{
		Week:        week,
		Day:         day,
		ProgramName: s.program.Name,
		GeneratedAt: time.Now(),
	}
	for _, slot := range s.program.SlotsForDay(day) {
		for _, st := range slot.SetTypes {
			dayPlan.Sets = append(dayPlan.Sets, plannedSet(slot.Exercise, st, targets, lastWeights))
		}
	}

	log.Debugf("plan for week %d day %d assembled, %d sets", week, day, len(dayPlan.Sets))

	if s.cache != nil {
		s.cache.Set(dayPlan)
	}

	return dayPlan, nil
}

func plannedSet(
	exercise string,
	st program.SetType,
	targets map[string]progression.Progression,
	lastWeights map[string]float64,
) PlannedSet {
	key := targetKey(exercise, st)
	if row, ok := targets[key]; ok {
		return PlannedSet{
			Exercise:     exercise,
			SetType:      st,
			TargetWeight: row.Weight,
			Source:       SourceProgression,
			Reason:       row.Reason,
		}
	}
	if w, ok := lastWeights[key]; ok && w > 0 {
		return PlannedSet{
			Exercise:     exercise,
			SetType:      st,
			TargetWeight: w,
			Source:       SourceLastSession,
		}
	}
	return PlannedSet{
		Exercise: exercise,
		SetType:  st,
		Source:   SourceOpen,
	}
}

func targetKey(exercise string, st program.SetType) string {
	return strings.ToLower(exercise) + "::" + string(st)
}
