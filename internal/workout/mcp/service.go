package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/progression"
	"github.com/nbilic/liftlog/internal/workout/sessions"
	"github.com/nbilic/liftlog/internal/workout/signals"
)

const (
	summaryHistoryLimit   = 150
	summaryPainNotesLimit = 20
)

// trainingRepo provides session and set log reads (for dependency injection and testing).
type trainingRepo interface {
	List(ctx context.Context, params sessions.ListParams) ([]sessions.Session, int, error)
	SessionSets(ctx context.Context, sessionID int) ([]sessions.SetLog, error)
	ListSets(ctx context.Context, params sessions.SetsListParams) ([]sessions.SetLog, error)
	History(ctx context.Context, limit int) ([]sessions.HistoryRecord, error)
}

// progressionSource provides progression rows aimed at a program target.
type progressionSource interface {
	ForTarget(ctx context.Context, week, day int) ([]progression.Progression, error)
}

// painSource provides recent pain report descriptions.
type painSource interface {
	RecentPainDescriptions(ctx context.Context, limit int) ([]string, error)
}

// contextService provides training context data (schema, sets, program, progression, signals).
// Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListSetsForRange(ctx context.Context, params sessions.SetsListParams) ([]sessions.SetLog, error)
	GetProgram() *program.Program
	GetProgressionForTarget(ctx context.Context, week, day int) ([]progression.Progression, error)
	GetSignalSummary(ctx context.Context) (*signals.Summary, error)
}

// ContextService holds dependencies and implements the training context business logic.
type ContextService struct {
	schema       SchemaRepo
	training     trainingRepo
	progressions progressionSource
	pain         painSource
	program      *program.Program
}

// NewContextService builds a ContextService with the given dependencies.
func NewContextService(
	schemaRepo SchemaRepo,
	training trainingRepo,
	progressions progressionSource,
	pain painSource,
	trainingProgram *program.Program,
) *ContextService {
	return &ContextService{
		schema:       schemaRepo,
		training:     training,
		progressions: progressions,
		pain:         pain,
		program:      trainingProgram,
	}
}

// GetSchema returns the DB schema (table names, columns, types) for training-related
// tables: training_session, set_log, progression, training_event.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetTrainingColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatTrainingSchema(cols), nil
}

func formatTrainingSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# LiftLog DB Schema\n\nNo training tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# LiftLog DB Schema\n\n")
	b.WriteString("Tables: training_session, set_log, progression, training_event (schema: public).\n\n")

	for _, tableName := range tableOrder {
		tableCols := byTable[tableName]
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range tableCols {
			def := "—"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// ListSetsForRange returns logged sets for the given params (time range, filters).
func (s *ContextService) ListSetsForRange(ctx context.Context, params sessions.SetsListParams) ([]sessions.SetLog, error) {
	return s.training.ListSets(ctx, params)
}

// GetProgram returns the loaded training program table.
func (s *ContextService) GetProgram() *program.Program {
	return s.program
}

// GetProgressionForTarget returns the progression rows aimed at the given week and day.
func (s *ContextService) GetProgressionForTarget(ctx context.Context, week, day int) ([]progression.Progression, error) {
	return s.progressions.ForTarget(ctx, week, day)
}

// GetSignalSummary computes the training signals for the most recent session
// against the recent set log history, the same bundle the progression
// pipeline feeds to the weight advisor.
func (s *ContextService) GetSignalSummary(ctx context.Context) (*signals.Summary, error) {
	history, err := s.training.History(ctx, summaryHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	painNotes, err := s.pain.RecentPainDescriptions(ctx, summaryPainNotesLimit)
	if err != nil {
		return nil, fmt.Errorf("load pain reports: %w", err)
	}

	latest, _, err := s.training.List(ctx, sessions.ListParams{Page: 1, Size: 1})
	if err != nil {
		return nil, fmt.Errorf("load latest session: %w", err)
	}

	var sets []sessions.SetLog
	if len(latest) > 0 {
		sets, err = s.training.SessionSets(ctx, latest[0].ID)
		if err != nil {
			return nil, fmt.Errorf("load latest session sets: %w", err)
		}
	}

	summary := signals.ExtractSummary(sets, history, painNotes)
	return &summary, nil
}
