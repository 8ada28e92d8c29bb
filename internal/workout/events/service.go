package events

import (
	"context"
	"fmt"
	"time"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddBodyweightReport(ctx context.Context, br BodyweightReport) (_ *BodyweightReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.events.add.bodyweightreport")
	defer tracing.EndSpanWithErrCheck(span, err)

	if br.Timestamp.IsZero() {
		br.Timestamp = time.Now()
	}

	addedEvent, err := s.repo.Add(ctx, NewBodyweightReportEvent(br))
	if err != nil {
		return nil, fmt.Errorf("add bodyweight report event: %w", err)
	}

	br.ID = addedEvent.ID
	return &br, nil
}

func (s *Service) AddPainReport(ctx context.Context, pr PainReport) (_ *PainReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.events.add.painreport")
	defer tracing.EndSpanWithErrCheck(span, err)

	if pr.Timestamp.IsZero() {
		pr.Timestamp = time.Now()
	}

	addedEvent, err := s.repo.Add(ctx, NewPainReportEvent(pr))
	if err != nil {
		return nil, fmt.Errorf("add pain report event: %w", err)
	}

	pr.ID = addedEvent.ID
	return &pr, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.events.list")
	defer tracing.EndSpanWithErrCheck(span, err)

	events, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

func (s *Service) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.events.count")
	defer tracing.EndSpanWithErrCheck(span, err)

	count, err := s.repo.Count(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}

	return count, nil
}
