package sessions

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nbilic/liftlog/internal/telemetry/metrics"
	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/internal/workout/program"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrOutOfProgramRange = errors.New("week or day out of program range")
	ErrInvalidSet        = errors.New("invalid set")
)

type sessionsRepo interface {
	Start(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	Active(ctx context.Context) (*Session, error)
	Finish(ctx context.Context, id int, finishedAt time.Time, notes string) error
	StoreAnalysis(ctx context.Context, id int, analysis []byte) error
	List(ctx context.Context, params ListParams) ([]Session, int, error)
	AddSet(ctx context.Context, set SetLog) (*SetLog, error)
	GetSet(ctx context.Context, id int) (*SetLog, error)
	UpdateSet(ctx context.Context, set SetLog) error
	DeleteSet(ctx context.Context, id int) error
	SessionSets(ctx context.Context, sessionID int) ([]SetLog, error)
	ListSets(ctx context.Context, params SetsListParams) ([]SetLog, error)
	SetsCount(ctx context.Context, params SetsListParams) (int, error)
}

// sessionAnalyzer turns a finished session into a progression analysis blob.
// Whatever happens in there must never fail the finish itself.
type sessionAnalyzer interface {
	AnalyzeSession(ctx context.Context, session Session, sets []SetLog) (json.RawMessage, error)
}

type Service struct {
	repo           sessionsRepo
	analyzer       sessionAnalyzer
	program        *program.Program
	metricsManager *metrics.Manager
}

func NewService(
	repo sessionsRepo,
	analyzer sessionAnalyzer,
	trainingProgram *program.Program,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		analyzer:       analyzer,
		program:        trainingProgram,
		metricsManager: metricsManager,
	}
}

func (s *Service) Start(ctx context.Context, week, day int, notes string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.start")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if week < 1 || week > s.program.Weeks {
		return nil, fmt.Errorf("%w: week %d not in [1, %d]", ErrOutOfProgramRange, week, s.program.Weeks)
	}
	if day < 1 || day > s.program.Days {
		return nil, fmt.Errorf("%w: day %d not in [1, %d]", ErrOutOfProgramRange, day, s.program.Days)
	}

	session, err := s.repo.Start(ctx, Session{
		Week:      week,
		Day:       day,
		StartedAt: time.Now(),
		Notes:     notes,
	})
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterSessionsStarted.Inc()
	return session, nil
}

// Finish closes the session and kicks off the progression analysis. A
// failing analysis is logged and skipped, the session stays finished.
func (s *Service) Finish(ctx context.Context, id int, notes string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.finish")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := s.repo.Finish(ctx, id, time.Now(), notes); err != nil {
		return nil, err
	}
	s.metricsManager.CounterSessionsFinished.Inc()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get finished session: %w", err)
	}

	sets, err := s.repo.SessionSets(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session sets: %w", err)
	}

	if s.analyzer == nil {
		return session, nil
	}

	analysis, analyzeErr := s.analyzer.AnalyzeSession(ctx, *session, sets)
	if analyzeErr != nil {
		log.Errorf("analyze session %d: %s", id, analyzeErr)
		span.RecordError(analyzeErr)
		return session, nil
	}

	if err := s.repo.StoreAnalysis(ctx, id, analysis); err != nil {
		log.Errorf("store analysis for session %d: %s", id, err)
		span.RecordError(err)
		return session, nil
	}

	session.Analysis = analysis
	return session, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *Session, _ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	sets, err := s.repo.SessionSets(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get session sets: %w", err)
	}
	return session, sets, nil
}

func (s *Service) Active(ctx context.Context) (_ *Session, _ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.active")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	session, err := s.repo.Active(ctx)
	if err != nil {
		return nil, nil, err
	}
	sets, err := s.repo.SessionSets(ctx, session.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("get session sets: %w", err)
	}
	return session, sets, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	sessions, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, -1, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, total, nil
}

// AddSet logs a set against a still active session.
func (s *Service) AddSet(ctx context.Context, set SetLog) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.sets.add")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := validateSet(set); err != nil {
		return nil, err
	}

	session, err := s.repo.Get(ctx, set.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Active() {
		return nil, ErrSessionFinished
	}

	if set.CompletedAt.IsZero() {
		set.CompletedAt = time.Now()
	}

	added, err := s.repo.AddSet(ctx, set)
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterSetsLogged.Inc()
	return added, nil
}

func (s *Service) UpdateSet(ctx context.Context, set SetLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.sets.update")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := validateSet(set); err != nil {
		return err
	}

	existing, err := s.repo.GetSet(ctx, set.ID)
	if err != nil {
		return err
	}
	session, err := s.repo.Get(ctx, existing.SessionID)
	if err != nil {
		return err
	}
	if !session.Active() {
		return ErrSessionFinished
	}

	return s.repo.UpdateSet(ctx, set)
}

func (s *Service) DeleteSet(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.sets.delete")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	existing, err := s.repo.GetSet(ctx, id)
	if err != nil {
		return err
	}
	session, err := s.repo.Get(ctx, existing.SessionID)
	if err != nil {
		return err
	}
	if !session.Active() {
		return ErrSessionFinished
	}

	return s.repo.DeleteSet(ctx, id)
}

func (s *Service) ListSets(ctx context.Context, params SetsListParams) (_ []SetLog, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.sets.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	sets, err := s.repo.ListSets(ctx, params)
	if err != nil {
		return nil, -1, fmt.Errorf("list sets: %w", err)
	}
	total, err = s.repo.SetsCount(ctx, params)
	if err != nil {
		return nil, -1, fmt.Errorf("count sets: %w", err)
	}
	return sets, total, nil
}

func validateSet(set SetLog) error {
	if set.Exercise == "" {
		return fmt.Errorf("%w: exercise name is empty", ErrInvalidSet)
	}
	if !set.SetType.Valid() {
		return fmt.Errorf("%w: unknown set type %q", ErrInvalidSet, set.SetType)
	}
	if set.ActualWeight < 0 || set.TargetWeight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrInvalidSet)
	}
	if set.ActualReps < 0 || set.TargetReps < 0 {
		return fmt.Errorf("%w: reps must not be negative", ErrInvalidSet)
	}
	if set.RPE != nil && (*set.RPE < 1 || *set.RPE > 10) {
		return fmt.Errorf("%w: rpe %d not in [1, 10]", ErrInvalidSet, *set.RPE)
	}
	return nil
}
