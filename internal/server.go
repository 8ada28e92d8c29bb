package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/nbilic/liftlog/internal/auth"
	"github.com/nbilic/liftlog/internal/config"
	"github.com/nbilic/liftlog/internal/db"
	"github.com/nbilic/liftlog/internal/middleware"
	"github.com/nbilic/liftlog/internal/misc"
	"github.com/nbilic/liftlog/internal/telemetry/metrics"
	metricsmiddleware "github.com/nbilic/liftlog/internal/telemetry/metrics/middleware"
	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/internal/workout/advisor"
	"github.com/nbilic/liftlog/internal/workout/events"
	liftlogmcp "github.com/nbilic/liftlog/internal/workout/mcp"
	"github.com/nbilic/liftlog/internal/workout/plan"
	"github.com/nbilic/liftlog/internal/workout/program"
	"github.com/nbilic/liftlog/internal/workout/progression"
	"github.com/nbilic/liftlog/internal/workout/sessions"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	appSecret         string // used with the workout logging ios app
	versionInfo       string

	config  *config.Config
	dbPool  *pgxpool.Pool
	program *program.Program

	trainingRepo       *sessions.Repo
	eventsRepo         *events.Repo
	progressionService *progression.Service
	planCache          *plan.Cache
	advisorClient      *advisor.Gemini // nil when the advisor is disabled

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AppSecret               string
	GeminiAPIKey            string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftlog-backend", rdb)
	if err != nil {
		return nil, err
	}

	trainingProgram, err := program.Load(params.Config.ProgramPath)
	if err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}
	log.Debugf("program loaded: %s (%d weeks, %d days)", trainingProgram.Name, trainingProgram.Weeks, trainingProgram.Days)

	var advisorClient *advisor.Gemini
	if params.Config.AdvisorEnabled {
		if params.GeminiAPIKey == "" {
			log.Warn("advisor enabled but gemini api key not set, recommendations fall back to holding weights")
		} else {
			advisorClient, err = advisor.NewGemini(ctx, params.GeminiAPIKey, params.Config.AdvisorModel)
			if err != nil {
				return nil, fmt.Errorf("new gemini advisor: %w", err)
			}
		}
	}

	trainingRepo := sessions.NewRepo(dbPool)
	eventsRepo := events.NewRepo(dbPool)
	planCache := plan.NewCache()
	advisorTimeout := time.Duration(params.Config.AdvisorTimeoutSeconds) * time.Second

	var progressionService *progression.Service
	if advisorClient != nil {
		progressionService = progression.NewService(
			progression.NewRepo(dbPool), trainingRepo, eventsRepo,
			advisorClient, trainingProgram, metricsManager, advisorTimeout, planCache,
		)
	} else {
		progressionService = progression.NewService(
			progression.NewRepo(dbPool), trainingRepo, eventsRepo,
			nil, trainingProgram, metricsManager, advisorTimeout, planCache,
		)
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		program:     trainingProgram,
		appSecret:   params.AppSecret,
		versionInfo: params.VersionInfo,

		trainingRepo:       trainingRepo,
		eventsRepo:         eventsRepo,
		progressionService: progressionService,
		planCache:          planCache,
		advisorClient:      advisorClient,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("liftlog-router"))

	trainingRouter := r.PathPrefix("/training").Subrouter()

	sessionsHandler := sessions.NewHandler(
		sessions.NewService(s.trainingRepo, s.progressionService, s.program, s.metricsManager),
	)
	trainingRouter.HandleFunc("/sessions/start", sessionsHandler.HandleStart).Methods("POST")
	trainingRouter.HandleFunc("/sessions/active", sessionsHandler.HandleActive).Methods("GET")
	trainingRouter.HandleFunc("/sessions/list/page/{page}/size/{size}", sessionsHandler.HandleList).Methods("GET")
	trainingRouter.HandleFunc("/sessions/{id}", sessionsHandler.HandleGet).Methods("GET")
	trainingRouter.HandleFunc("/sessions/{id}/finish", sessionsHandler.HandleFinish).Methods("POST")
	trainingRouter.HandleFunc("/sessions/{id}/analysis", sessionsHandler.HandleAnalysis).Methods("GET")
	trainingRouter.HandleFunc("/sets", sessionsHandler.HandleAddSet).Methods("POST")
	trainingRouter.HandleFunc("/sets", sessionsHandler.HandleUpdateSet).Methods("PUT")
	trainingRouter.HandleFunc("/sets/{id}", sessionsHandler.HandleDeleteSet).Methods("DELETE")
	trainingRouter.HandleFunc("/sets/list/page/{page}/size/{size}", sessionsHandler.HandleListSets).Methods("GET")

	progressionHandler := progression.NewHandler(s.progressionService)
	trainingRouter.HandleFunc("/progression/week/{week}/day/{day}", progressionHandler.HandleForTarget).Methods("GET")
	trainingRouter.HandleFunc("/progression/list/page/{page}/size/{size}", progressionHandler.HandleList).Methods("GET")

	planHandler := plan.NewHandler(
		plan.NewService(s.progressionService, s.trainingRepo, s.program, s.planCache),
	)
	trainingRouter.HandleFunc("/plan/week/{week}/day/{day}", planHandler.HandleForDay).Methods("GET")

	eventsHandler := events.NewHandler(
		events.NewService(s.eventsRepo),
	)
	trainingRouter.HandleFunc("/events/report/bodyweight", eventsHandler.HandleBodyweightReport).Methods("POST")
	trainingRouter.HandleFunc("/events/report/pain", eventsHandler.HandlePainReport).Methods("POST")
	trainingRouter.HandleFunc("/events/list/page/{page}/size/{size}", eventsHandler.HandleList).Methods("GET")

	programHandler := program.NewHandler(s.program)
	trainingRouter.HandleFunc("/program", programHandler.HandleGet).Methods("GET")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// the MCP server from internal/workout/mcp, mounted over streamable HTTP;
	// the same tools are available over stdio via cmd/liftlog_mcp
	mcpServer := liftlogmcp.NewServer(s.dbPool, s.trainingRepo, s.progressionService, s.eventsRepo, s.program)
	r.PathPrefix("/mcp").Handler(mcpsdk.NewStreamableHTTPHandler(
		func(*http.Request) *mcpsdk.Server { return mcpServer },
		nil,
	))

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.appSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.advisorClient != nil {
		if err := s.advisorClient.Close(); err != nil {
			log.Errorf("failed to close advisor client: %s", err)
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
