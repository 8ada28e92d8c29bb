package progression

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ListParams struct {
	Page     int
	Size     int
	Exercise string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// UpsertBatch writes all rows in one transaction, replacing any existing
// row for the same (exercise, week, day, set type). All or nothing, a
// crash must never leave half of a recommendation applied.
func (r *Repo) UpsertBatch(ctx context.Context, rows []Progression) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.progression.upsert_batch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("rows", len(rows)))

	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, row := range rows {
		if _, err = tx.Exec(ctx, `
			INSERT INTO progression (exercise, week, day, set_type, weight, reason, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (exercise, week, day, set_type) DO UPDATE
			SET weight = EXCLUDED.weight,
				reason = EXCLUDED.reason,
				created_at = EXCLUDED.created_at;`,
			row.Exercise, row.Week, row.Day, row.SetType, row.Weight, row.Reason, row.CreatedAt,
		); err != nil {
			return err
		}
	}

	return nil
}

// ForTarget returns the progression rows aimed at the given program week
// and day.
func (r *Repo) ForTarget(ctx context.Context, week, day int) (_ []Progression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.progression.for_target")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week", week))
	span.SetAttributes(attribute.Int("day", day))

	rows, err := r.db.Query(ctx, `
		SELECT id, exercise, week, day, set_type, weight, reason, created_at
		FROM progression
		WHERE week = $1 AND day = $2
		ORDER BY exercise, set_type;`,
		week, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2progressions(rows)
}

// List returns the given page of progression rows, most recent first,
// optionally filtered by exercise, plus the total count.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Progression, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.progression.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, params.Exercise)
	if err != nil {
		return nil, -1, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	if countAll <= limit {
		limit = countAll
		offset = 0
	}
	if countAll-offset < limit {
		offset = countAll - limit
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, exercise, week, day, set_type, weight, reason, created_at
		FROM progression
		WHERE ($1 = '' OR exercise = $1)
		ORDER BY created_at DESC, exercise, set_type
		LIMIT $2
		OFFSET $3;`,
		params.Exercise, limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	progressions, err := rows2progressions(rows)
	if err != nil {
		return nil, -1, err
	}
	return progressions, countAll, nil
}

func (r *Repo) Count(ctx context.Context, exercise string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.progression.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM progression
		WHERE ($1 = '' OR exercise = $1);`, exercise,
	).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func rows2progressions(rows pgx.Rows) ([]Progression, error) {
	progressions := make([]Progression, 0)
	for rows.Next() {
		var p Progression
		if err := rows.Scan(
			&p.ID, &p.Exercise, &p.Week, &p.Day,
			&p.SetType, &p.Weight, &p.Reason, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		progressions = append(progressions, p)
	}
	return progressions, nil
}
