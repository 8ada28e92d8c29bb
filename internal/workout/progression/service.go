package progression

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progression_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/nbilic/liftlog/internal/telemetry/metrics"
	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/internal/workout/advisor"
	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/sessions"
	"github.com/nbilic/liftlog/internal/workout/signals"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DefaultAdvisorTimeout bounds the single advisor call per finished
	// session. There are no retries, a slow advisor means fallback.
	DefaultAdvisorTimeout = 60 * time.Second

	historyLimit   = 150
	painNotesLimit = 20
)

var ErrBadTarget = errors.New("target week or day out of program range")

type progressionRepo interface {
	UpsertBatch(ctx context.Context, rows []Progression) error
	ForTarget(ctx context.Context, week, day int) ([]Progression, error)
	List(ctx context.Context, params ListParams) ([]Progression, int, error)
}

type trainingHistory interface {
	History(ctx context.Context, limit int) ([]sessions.HistoryRecord, error)
	FinishedRecently(ctx context.Context, week, day int) (bool, error)
}

type painReports interface {
	RecentPainDescriptions(ctx context.Context, limit int) ([]string, error)
}

type weightAdvisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

type planInvalidator interface {
	Invalidate(week, day int)
}

type Service struct {
	repo           progressionRepo
	history        trainingHistory
	pain           painReports
	advisor        weightAdvisor
	validator      *Validator
	program        *program.Program
	metricsManager *metrics.Manager
	advisorTimeout time.Duration
	planCache      planInvalidator
}

// NewService wires the analysis pipeline. The advisor, the pain source and
// the plan cache may all be nil: a nil advisor means every analysis takes
// the fallback path.
func NewService(
	repo progressionRepo,
	history trainingHistory,
	pain painReports,
	advisorClient weightAdvisor,
	trainingProgram *program.Program,
	metricsManager *metrics.Manager,
	advisorTimeout time.Duration,
	planCache planInvalidator,
) *Service {
	if advisorTimeout <= 0 {
		advisorTimeout = DefaultAdvisorTimeout
	}
	return &Service{
		repo:           repo,
		history:        history,
		pain:           pain,
		advisor:        advisorClient,
		validator:      NewValidator(trainingProgram),
		program:        trainingProgram,
		metricsManager: metricsManager,
		advisorTimeout: advisorTimeout,
		planCache:      planCache,
	}
}

// AnalyzeSession runs the recommendation pipeline for a just-finished
// session: extract signals, ask the advisor, validate what came back,
// persist the progression rows and return the analysis blob. Advisor and
// parse failures degrade to the fallback recommendation, only storage and
// load errors propagate.
func (s *Service) AnalyzeSession(ctx context.Context, session sessions.Session, sets []sessions.SetLog) (_ json.RawMessage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.progression.analyze")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("session.id", session.ID))

	history, err := s.history.History(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	var extraNotes []string
	if session.Notes != "" {
		extraNotes = append(extraNotes, session.Notes)
	}
	if s.pain != nil {
		painNotes, painErr := s.pain.RecentPainDescriptions(ctx, painNotesLimit)
		if painErr != nil {
			// pain reports only sharpen the signals, not worth failing for
			log.Errorf("load recent pain reports: %s", painErr)
		} else {
			extraNotes = append(extraNotes, painNotes...)
		}
	}

	summary := signals.ExtractSummary(sets, history, extraNotes)

	recommendations, aiUnavailable := s.adviseRecommendations(ctx, session, sets, summary, history)

	rows := s.progressionRows(ctx, recommendations, session.Week, session.Day)
	if len(rows) > 0 {
		if err = s.repo.UpsertBatch(ctx, rows); err != nil {
			return nil, fmt.Errorf("store progression rows: %w", err)
		}
		s.invalidatePlans(rows)
	}

	analysis := Analysis{
		Summary:         summary,
		Recommendations: recommendations,
		AIUnavailable:   aiUnavailable,
		CreatedAt:       time.Now(),
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}

	log.Debugf(
		"session %d analyzed: %d recommendations, %d progression rows, ai unavailable: %t",
		session.ID, len(recommendations), len(rows), aiUnavailable,
	)

	return analysisJSON, nil
}

// adviseRecommendations asks the advisor exactly once, with a hard
// deadline. Any failure on the way, call, timeout or unparseable answer,
// degrades to the fallback "hold current weights" recommendation.
func (s *Service) adviseRecommendations(
	ctx context.Context,
	session sessions.Session,
	sets []sessions.SetLog,
	summary signals.Summary,
	history []sessions.HistoryRecord,
) (map[string]Recommendation, bool) {
	if s.advisor == nil {
		s.metricsManager.CounterAdvisorFallbacks.Inc()
		return FallbackRecommendations(sets), true
	}

	prompt := advisor.BuildPrompt(s.program, session.Week, session.Day, sets, summary, history)

	advisorCtx, cancel := context.WithTimeout(ctx, s.advisorTimeout)
	defer cancel()

	callStart := time.Now()
	responseText, err := s.advisor.Advise(advisorCtx, prompt)
	s.metricsManager.HistAdvisorCallDuration.Observe(time.Since(callStart).Seconds())
	if err != nil {
		log.Errorf("advisor call for session %d failed: %s", session.ID, err)
		s.metricsManager.CounterAdvisorFailures.Inc()
		s.metricsManager.CounterAdvisorFallbacks.Inc()
		return FallbackRecommendations(sets), true
	}

	parsed, err := ParseRecommendations(responseText)
	if err != nil {
		log.Errorf("parse advisor response for session %d: %s", session.ID, err)
		s.metricsManager.CounterAdvisorFallbacks.Inc()
		return FallbackRecommendations(sets), true
	}

	validated, stats := s.validator.Validate(parsed, session.Day, sets)
	s.metricsManager.CounterRecommendations.WithLabelValues("approved").Add(float64(stats.Approved))
	s.metricsManager.CounterRecommendations.WithLabelValues("corrected").Add(float64(stats.Corrected))
	s.metricsManager.CounterRecommendations.WithLabelValues("dropped").Add(float64(stats.Dropped))

	return validated, false
}

// progressionRows expands validated recommendations into the rows they
// produce: next week same day (the week wraps cyclically), plus the current
// week's other days of the same exercise, but only while those days have
// not been trained yet.
func (s *Service) progressionRows(ctx context.Context, recommendations map[string]Recommendation, week, day int) []Progression {
	createdAt := time.Now()
	nextWeek := s.program.NextWeek(week)

	// resolve each other day once, not per exercise
	otherDayOpen := make(map[int]bool)

	exercises := make([]string, 0, len(recommendations))
	for exercise := range recommendations {
		exercises = append(exercises, exercise)
	}
	sort.Strings(exercises)

	var rows []Progression
	for _, exercise := range exercises {
		rec := recommendations[exercise]
		for _, st := range program.WeightSetTypes {
			w := rec.Weight(st)
			if w == nil {
				continue
			}

			rows = append(rows, Progression{
				Exercise:  exercise,
				Week:      nextWeek,
				Day:       day,
				SetType:   st,
				Weight:    *w,
				Reason:    rec.Reason,
				CreatedAt: createdAt,
			})

			for _, otherDay := range s.program.OtherDays(exercise, day) {
				open, checked := otherDayOpen[otherDay]
				if !checked {
					finished, err := s.history.FinishedRecently(ctx, week, otherDay)
					if err != nil {
						log.Errorf("check finished session for week %d day %d: %s", week, otherDay, err)
						// when in doubt, do not forward-date
						finished = true
					}
					open = !finished
					otherDayOpen[otherDay] = open
				}
				if !open || !setTypeAllowed(s.program, exercise, otherDay, st) {
					continue
				}
				rows = append(rows, Progression{
					Exercise:  exercise,
					Week:      week,
					Day:       otherDay,
					SetType:   st,
					Weight:    *w,
					Reason:    rec.Reason,
					CreatedAt: createdAt,
				})
			}
		}
	}

	return rows
}

func (s *Service) invalidatePlans(rows []Progression) {
	if s.planCache == nil {
		return
	}
	seen := make(map[[2]int]bool)
	for _, row := range rows {
		key := [2]int{row.Week, row.Day}
		if seen[key] {
			continue
		}
		seen[key] = true
		s.planCache.Invalidate(row.Week, row.Day)
	}
}

// ForTarget returns the progression rows aimed at the given program week
// and day.
func (s *Service) ForTarget(ctx context.Context, week, day int) (_ []Progression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.progression.fortarget")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if week < 1 || week > s.program.Weeks {
		return nil, fmt.Errorf("%w: week %d not in [1, %d]", ErrBadTarget, week, s.program.Weeks)
	}
	if day < 1 || day > s.program.Days {
		return nil, fmt.Errorf("%w: day %d not in [1, %d]", ErrBadTarget, day, s.program.Days)
	}

	return s.repo.ForTarget(ctx, week, day)
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []Progression, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.progression.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return s.repo.List(ctx, params)
}

func setTypeAllowed(p *program.Program, exercise string, day int, st program.SetType) bool {
	allowed, ok := p.AllowedSetTypes(exercise, day)
	if !ok {
		return true
	}
	for _, a := range allowed {
		if a == st {
			return true
		}
	}
	return false
}
