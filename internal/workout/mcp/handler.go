package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nbilic/liftlog/internal/workout/sessions"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// rangeSetsLimit caps how many sets a single tool call returns.
const rangeSetsLimit = 500

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

// NewHandler builds a handler with the given service.
func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// GetLiftlogContextTool returns the MCP tool handler for get_liftlog_context.
func (h *Handler) GetLiftlogContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error fetching schema: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// SetsTimeRangeInput is the input for get_sets_for_time_range.
type SetsTimeRangeInput struct {
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD)"`
	Exercise string `json:"exercise,omitempty" jsonschema:"Filter by exercise name (e.g. bench press)"`
	SetType  string `json:"set_type,omitempty" jsonschema:"Filter by set type (warmup, heavy, backoff, working, dropset)"`
}

// GetSetsForTimeRangeTool returns the MCP tool handler for get_sets_for_time_range.
func (h *Handler) GetSetsForTimeRangeTool() func(context.Context, *mcp.CallToolRequest, SetsTimeRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SetsTimeRangeInput) (*mcp.CallToolResult, any, error) {
		from, err := time.Parse("2006-01-02", in.FromDate)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Invalid from_date: use YYYY-MM-DD"}},
				IsError: true,
			}, nil, nil
		}
		to, err := time.Parse("2006-01-02", in.ToDate)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Invalid to_date: use YYYY-MM-DD"}},
				IsError: true,
			}, nil, nil
		}
		to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())

		params := sessions.SetsListParams{
			Page:     1,
			Size:     rangeSetsLimit,
			Exercise: in.Exercise,
			SetType:  in.SetType,
			From:     &from,
			To:       &to,
		}
		list, err := h.service.ListSetsForRange(ctx, params)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error listing sets: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		raw, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}

// GetProgramTool returns the MCP tool handler for get_training_program.
func (h *Handler) GetProgramTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		raw, err := json.MarshalIndent(h.service.GetProgram(), "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}

// ProgressionTargetInput is the input for get_progression_for_target.
type ProgressionTargetInput struct {
	Week int `json:"week" jsonschema:"Program week (1-based)"`
	Day  int `json:"day" jsonschema:"Program day (1-based)"`
}

// GetProgressionForTargetTool returns the MCP tool handler for get_progression_for_target.
func (h *Handler) GetProgressionForTargetTool() func(context.Context, *mcp.CallToolRequest, ProgressionTargetInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressionTargetInput) (*mcp.CallToolResult, any, error) {
		progressions, err := h.service.GetProgressionForTarget(ctx, in.Week, in.Day)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error fetching progressions: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		raw, err := json.MarshalIndent(progressions, "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}

// GetSignalSummaryTool returns the MCP tool handler for get_signal_summary.
func (h *Handler) GetSignalSummaryTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		summary, err := h.service.GetSignalSummary(ctx)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error computing signal summary: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		raw, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}
