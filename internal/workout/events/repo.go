package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nbilic/liftlog/internal/telemetry/tracing"
)

var ErrEventNotFound = errors.New("event not found")

type EventParams struct {
	Type *EventType
	From *time.Time
	To   *time.Time
}

type ListParams struct {
	EventParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.events.add")
	defer tracing.EndSpanWithErrCheck(span, err)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = errors.Join(err, rollbackErr)
			}
			return
		}
		err = tx.Commit(ctx)
	}()

	rows, err := tx.Query(
		ctx,
		`INSERT INTO training_event (type, data, timestamp) VALUES ($1, $2, $3) RETURNING id;`,
		event.Type, event.Data, event.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.New("unexpected error, failed to insert event")
	}

	if err := rows.Scan(&event.ID); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &event, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.events.get")
	defer tracing.EndSpanWithErrCheck(span, err)

	var event Event
	err = r.db.QueryRow(
		ctx,
		`SELECT id, type, data, timestamp FROM training_event WHERE id = $1;`,
		id,
	).Scan(&event.ID, &event.Type, &event.Data, &event.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.events.list")
	defer tracing.EndSpanWithErrCheck(span, err)

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	rows, err := r.db.Query(
		ctx,
		`SELECT id, type, data, timestamp
			FROM training_event
			WHERE
				($1::text IS NULL OR type = $1)
				AND ($2::timestamptz IS NULL OR timestamp >= $2)
				AND ($3::timestamptz IS NULL OR timestamp <= $3)
			ORDER BY timestamp DESC
			LIMIT $4 OFFSET $5;`,
		params.Type, params.From, params.To, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.Type, &event.Data, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return events, nil
}

func (r *Repo) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.events.count")
	defer tracing.EndSpanWithErrCheck(span, err)

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM training_event
			WHERE
				($1::text IS NULL OR type = $1)
				AND ($2::timestamptz IS NULL OR timestamp >= $2)
				AND ($3::timestamptz IS NULL OR timestamp <= $3);`,
		params.Type, params.From, params.To,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// RecentPainDescriptions returns rendered descriptions of the latest pain
// reports, newest first. The progression pipeline feeds them to the signal
// extractor as session notes.
func (r *Repo) RecentPainDescriptions(ctx context.Context, limit int) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.events.recent_pain")
	defer tracing.EndSpanWithErrCheck(span, err)

	rows, err := r.db.Query(
		ctx,
		`SELECT data FROM training_event WHERE type = $1 ORDER BY timestamp DESC LIMIT $2;`,
		EventTypePainReport, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var descriptions []string
	for rows.Next() {
		var data map[string]string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		descriptions = append(descriptions, PainDescription(data))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return descriptions, nil
}
