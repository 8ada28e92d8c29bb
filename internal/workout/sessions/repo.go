package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrSessionFinished     = errors.New("session already finished")
	ErrSetNotFound         = errors.New("set log not found")
)

type ListParams struct {
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Start inserts a new active session. The one-active-session invariant is
// enforced by a partial unique index on (finished_at IS NULL), surfaced
// here as ErrActiveSessionExists.
func (r *Repo) Start(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO training_session (week, day, started_at, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		session.Week, session.Day, session.StartedAt, session.Notes,
	).Scan(&session.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrActiveSessionExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return &session, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	session := &Session{}
	var analysis []byte
	err = r.db.QueryRow(ctx, `
		SELECT id, week, day, started_at, finished_at, notes, analysis
		FROM training_session
		WHERE id = $1;`, id,
	).Scan(
		&session.ID, &session.Week, &session.Day,
		&session.StartedAt, &session.FinishedAt, &session.Notes, &analysis,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session.Analysis = analysis
	return session, nil
}

// Active returns the currently unfinished session, or ErrSessionNotFound.
func (r *Repo) Active(ctx context.Context) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session := &Session{}
	var analysis []byte
	err = r.db.QueryRow(ctx, `
		SELECT id, week, day, started_at, finished_at, notes, analysis
		FROM training_session
		WHERE finished_at IS NULL;`,
	).Scan(
		&session.ID, &session.Week, &session.Day,
		&session.StartedAt, &session.FinishedAt, &session.Notes, &analysis,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session.Analysis = analysis
	return session, nil
}

func (r *Repo) Finish(ctx context.Context, id int, finishedAt time.Time, notes string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE training_session
		SET finished_at = $2,
			notes = CASE WHEN $3 = '' THEN notes ELSE $3 END
		WHERE id = $1 AND finished_at IS NULL;`,
		id, finishedAt, notes,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return getErr
		}
		return ErrSessionFinished
	}

	return nil
}

// StoreAnalysis saves the analysis blob produced for a finished session.
func (r *Repo) StoreAnalysis(ctx context.Context, id int, analysis []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.storeanalysis")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE training_session SET analysis = $2 WHERE id = $1;`,
		id, analysis,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// FinishedRecently reports whether a session for the given program week and
// day was finished within the last week. Sessions from earlier program
// cycles reuse the same week number, the time window keeps the check to the
// current cycle.
func (r *Repo) FinishedRecently(ctx context.Context, week, day int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.finished_recently")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week", week))
	span.SetAttributes(attribute.Int("day", day))

	var finished bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM training_session
			WHERE week = $1 AND day = $2
				AND finished_at > now() - interval '7 days'
		);`, week, day,
	).Scan(&finished)
	if err != nil {
		return false, err
	}
	return finished, nil
}

// List returns the given page of sessions, most recent first, plus the
// total session count.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.list")
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

	countAll, err := r.SessionsCount(ctx)
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
		SELECT id, week, day, started_at, finished_at, notes, analysis
		FROM training_session
		ORDER BY started_at DESC
		LIMIT $1
		OFFSET $2;`,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, -1, err
	}
	return sessions, countAll, nil
}

func (r *Repo) SessionsCount(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM training_session;`).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func rows2sessions(rows pgx.Rows) ([]Session, error) {
	sessions := make([]Session, 0)
	for rows.Next() {
		var session Session
		var analysis []byte
		if err := rows.Scan(
			&session.ID, &session.Week, &session.Day,
			&session.StartedAt, &session.FinishedAt, &session.Notes, &analysis,
		); err != nil {
			return nil, err
		}
		session.Analysis = analysis
		sessions = append(sessions, session)
	}
	return sessions, nil
}
