// Package main runs the liftlog MCP server over stdio (for local Cursor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP,
// so you can use either: stdio (this cmd) or the backend URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"log"

	"github.com/nbilic/liftlog/internal/config"
	"github.com/nbilic/liftlog/internal/db"
	"github.com/nbilic/liftlog/internal/telemetry/metrics"
	"github.com/nbilic/liftlog/internal/workout/events"
	liftlogmcp "github.com/nbilic/liftlog/internal/workout/mcp"
	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/progression"
	"github.com/nbilic/liftlog/internal/workout/sessions"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	trainingProgram, err := program.Load(cfg.ProgramPath)
	if err != nil {
		log.Fatalf("load program: %v", err)
	}

	trainingRepo := sessions.NewRepo(dbPool)
	eventsRepo := events.NewRepo(dbPool)
	// reads only, so no advisor, no metrics sink, no plan cache
	progressionService := progression.NewService(
		progression.NewRepo(dbPool),
		trainingRepo,
		eventsRepo,
		nil,
		trainingProgram,
		metrics.NewManager("liftlog", "mcp", prometheus.NewRegistry()),
		0,
		nil,
	)

	server := liftlogmcp.NewServer(dbPool, trainingRepo, progressionService, eventsRepo, trainingProgram)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
