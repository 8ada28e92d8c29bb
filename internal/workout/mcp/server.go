package mcp

import (
	"github.com/nbilic/liftlog/internal/workout/events"
	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/progression"
	"github.com/nbilic/liftlog/internal/workout/sessions"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with training tools: schema, sets for a time
// range, the program table, progression for a target, signal summary.
// Used by the main backend when mounting MCP at /mcp (internal/server).
func NewServer(
	pool *pgxpool.Pool,
	trainingRepo *sessions.Repo,
	progressionService *progression.Service,
	eventsRepo *events.Repo,
	trainingProgram *program.Program,
) *mcp.Server {
	svc := NewContextService(NewPoolSchemaRepo(pool), trainingRepo, progressionService, eventsRepo, trainingProgram)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "liftlog-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_liftlog_context",
		Description: "Returns the DB schema for training-related tables (training_session, set_log, progression, training_event): table names, columns, types, nullable, default. Use when developing the workout app and you need the actual backend schema.",
	}, h.GetLiftlogContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_sets_for_time_range",
		Description: "Returns logged sets done within the given date range. Optional filters: exercise (e.g. bench press), set_type (warmup, heavy, backoff, working, dropset). Use when you need to see what was logged in a period.",
	}, h.GetSetsForTimeRangeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_program",
		Description: "Returns the training program table: exercises (muscle group, equipment, class), per-day slots with allowed set types, and progression rules (weekly caps, deload floor, backoff band). Use when you need the program structure.",
	}, h.GetProgramTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progression_for_target",
		Description: "Returns the stored progression recommendations aimed at a program week and day: exercise, set type, recommended weight and reasoning. Args: week, day (1-based). Use when you need the planned weights for a session.",
	}, h.GetProgressionForTargetTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_signal_summary",
		Description: "Returns the training signals computed from the most recent session and history: average RPE, target hit rate, weekly volume trend, recurring issues, rest times, light session suggestion. Use when analyzing current training state.",
	}, h.GetSignalSummaryTool())

	return s
}
