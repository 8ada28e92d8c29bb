package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type SetsListParams struct {
	Page     int
	Size     int
	Exercise string
	SetType  string
	From     *time.Time
	To       *time.Time
}

// LastActual is the most recent non-zero actual weight logged for one
// exercise and set type.
type LastActual struct {
	Exercise string
	SetType  program.SetType
	Weight   float64
}

// AddSet inserts a logged set for the given session. A missing session is
// surfaced as ErrSessionNotFound via the foreign key.
func (r *Repo) AddSet(ctx context.Context, set SetLog) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.sets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO set_log (
			session_id, exercise, set_type,
			target_weight, actual_weight, target_reps, actual_reps,
			rpe, notes, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;`,
		set.SessionID, set.Exercise, set.SetType,
		set.TargetWeight, set.ActualWeight, set.TargetReps, set.ActualReps,
		set.RPE, set.Notes, set.CompletedAt,
	).Scan(&set.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("set.id", set.ID))
	return &set, nil
}

func (r *Repo) GetSet(ctx context.Context, id int) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.sets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var set SetLog
	err = r.db.QueryRow(ctx, `
		SELECT id, session_id, exercise, set_type,
			target_weight, actual_weight, target_reps, actual_reps,
			rpe, notes, completed_at
		FROM set_log
		WHERE id = $1;`, id,
	).Scan(
		&set.ID, &set.SessionID, &set.Exercise, &set.SetType,
		&set.TargetWeight, &set.ActualWeight, &set.TargetReps, &set.ActualReps,
		&set.RPE, &set.Notes, &set.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	return &set, nil
}

func (r *Repo) UpdateSet(ctx context.Context, set SetLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", set.ID))

	tag, err := r.db.Exec(ctx, `
		UPDATE set_log
		SET exercise = $2, set_type = $3,
			target_weight = $4, actual_weight = $5,
			target_reps = $6, actual_reps = $7,
			rpe = $8, notes = $9
		WHERE id = $1;`,
		set.ID, set.Exercise, set.SetType,
		set.TargetWeight, set.ActualWeight, set.TargetReps, set.ActualReps,
		set.RPE, set.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) DeleteSet(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM set_log WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

// SessionSets returns all sets of one session in the order they were logged.
func (r *Repo) SessionSets(ctx context.Context, sessionID int) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.sets.of_session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, exercise, set_type,
			target_weight, actual_weight, target_reps, actual_reps,
			rpe, notes, completed_at
		FROM set_log
		WHERE session_id = $1
		ORDER BY completed_at ASC, id ASC;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2sets(rows)
}

func (r *Repo) ListSets(ctx context.Context, params SetsListParams) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.sets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, errors.New("size must be greater than 0")
	}

	countAll, err := r.SetsCount(ctx, params)
	if err != nil {
		return nil, err
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
		SELECT id, session_id, exercise, set_type,
			target_weight, actual_weight, target_reps, actual_reps,
			rpe, notes, completed_at
		FROM set_log
		WHERE
			($1 = '' OR exercise = $1)
			AND ($2 = '' OR set_type = $2)
			AND ($3::timestamptz IS NULL OR completed_at >= $3)
			AND ($4::timestamptz IS NULL OR completed_at <= $4)
		ORDER BY completed_at DESC
		LIMIT $5
		OFFSET $6;`,
		params.Exercise, params.SetType, params.From, params.To, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2sets(rows)
}

func (r *Repo) SetsCount(ctx context.Context, params SetsListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.sets.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM set_log
		WHERE
			($1 = '' OR exercise = $1)
			AND ($2 = '' OR set_type = $2)
			AND ($3::timestamptz IS NULL OR completed_at >= $3)
			AND ($4::timestamptz IS NULL OR completed_at <= $4);`,
		params.Exercise, params.SetType, params.From, params.To,
	).Scan(&count)
	if err != nil {
		return -1, err
	}
	return count, nil
}

// History returns up to limit most recent set logs together with the week
// and day of their session, ordered oldest to newest.
func (r *Repo) History(ctx context.Context, limit int) (_ []HistoryRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.sets.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT sl.id, sl.session_id, sl.exercise, sl.set_type,
			sl.target_weight, sl.actual_weight, sl.target_reps, sl.actual_reps,
			sl.rpe, sl.notes, sl.completed_at,
			ts.week, ts.day
		FROM set_log sl
		JOIN training_session ts ON ts.id = sl.session_id
		ORDER BY sl.completed_at DESC
		LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]HistoryRecord, 0)
	for rows.Next() {
		var rec HistoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.Exercise, &rec.SetType,
			&rec.TargetWeight, &rec.ActualWeight, &rec.TargetReps, &rec.ActualReps,
			&rec.RPE, &rec.Notes, &rec.CompletedAt,
			&rec.Week, &rec.Day,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	// the query walks backwards from the newest record, flip to chronological
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	return records, nil
}

// LastActualWeights returns the weight of the most recently completed set
// with a recorded actual weight, per exercise and set type.
func (r *Repo) LastActualWeights(ctx context.Context) (_ []LastActual, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.sets.last_actuals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (exercise, set_type)
			exercise, set_type, actual_weight
		FROM set_log
		WHERE actual_weight > 0
		ORDER BY exercise, set_type, completed_at DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	actuals := make([]LastActual, 0)
	for rows.Next() {
		var actual LastActual
		if err := rows.Scan(&actual.Exercise, &actual.SetType, &actual.Weight); err != nil {
			return nil, err
		}
		actuals = append(actuals, actual)
	}
	return actuals, nil
}

func rows2sets(rows pgx.Rows) ([]SetLog, error) {
	sets := make([]SetLog, 0)
	for rows.Next() {
		var set SetLog
		if err := rows.Scan(
			&set.ID, &set.SessionID, &set.Exercise, &set.SetType,
			&set.TargetWeight, &set.ActualWeight, &set.TargetReps, &set.ActualReps,
			&set.RPE, &set.Notes, &set.CompletedAt,
		); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}
