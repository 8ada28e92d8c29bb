package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/nbilic/liftlog/internal"
	"github.com/nbilic/liftlog/internal/config"
	"github.com/nbilic/liftlog/pkg"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	testAdminUsername = "testadmin"
	testAdminPassword = "test-pass-1"
	testAppSecret     = "test-app-secret"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	adminPasswordHash, err := pkg.HashPassword(testAdminPassword)
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to hash test admin password: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			AppSecret:               testAppSecret,
			GeminiAPIKey:            "",
			VersionInfo:             "test-version-info",
			AdminUsername:           testAdminUsername,
			AdminPasswordHash:       adminPasswordHash,
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:           "development",
		Host:                  serverHost,
		Port:                  serverPort,
		RedisHost:             "localhost",
		RedisPort:             redisPort,
		PostgresHost:          "localhost",
		PostgresPort:          postgresPort,
		PostgresDBName:        "liftlog_db",
		PrometheusMetricsHost: "localhost",
		PrometheusMetricsPort: "9001",

		LoginRateLimitAllowedPerMin: 10,

		// empty path falls back to the built-in default program
		ProgramPath:    "",
		AdvisorEnabled: false,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=liftlog_db",
			// the server pool connects without a password
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/liftlog_db?sslmode=disable", pgPort)

	// the container needs a moment before it accepts connections
	if err := s.dockerPool.Retry(func() error {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return err
		}
		s.DB = db
		return nil
	}); err != nil {
		return "", fmt.Errorf("connect to postgres: %s", err)
	}

	if _, err := s.DB.Exec(initSQL); err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.training_session
(
    id          SERIAL PRIMARY KEY,
    week        INTEGER NOT NULL,
    day         INTEGER NOT NULL,
    started_at  TIMESTAMPTZ NOT NULL,
    finished_at TIMESTAMPTZ,
    notes       VARCHAR NOT NULL DEFAULT '',
    analysis    JSONB
);

ALTER TABLE public.training_session OWNER TO postgres;
CREATE INDEX ix_training_session_started_at ON public.training_session (started_at);
-- at most one unfinished session at any time
CREATE UNIQUE INDEX ux_training_session_active
    ON public.training_session ((finished_at IS NULL))
    WHERE finished_at IS NULL;

CREATE TABLE public.set_log
(
    id            SERIAL PRIMARY KEY,
    session_id    INTEGER NOT NULL REFERENCES public.training_session (id) ON DELETE CASCADE,
    exercise      VARCHAR NOT NULL,
    set_type      VARCHAR NOT NULL,
    target_weight DOUBLE PRECISION NOT NULL DEFAULT 0,
    actual_weight DOUBLE PRECISION NOT NULL DEFAULT 0,
    target_reps   INTEGER NOT NULL DEFAULT 0,
    actual_reps   INTEGER NOT NULL DEFAULT 0,
    rpe           INTEGER,
    notes         VARCHAR NOT NULL DEFAULT '',
    completed_at  TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.set_log OWNER TO postgres;
CREATE INDEX ix_set_log_completed_at ON public.set_log (completed_at);
CREATE INDEX ix_set_log_session_id ON public.set_log (session_id);
CREATE INDEX ix_set_log_exercise ON public.set_log (exercise);

CREATE TABLE public.progression
(
    id         SERIAL PRIMARY KEY,
    exercise   VARCHAR NOT NULL,
    week       INTEGER NOT NULL,
    day        INTEGER NOT NULL,
    set_type   VARCHAR NOT NULL,
    weight     DOUBLE PRECISION NOT NULL,
    reason     VARCHAR NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL,
    UNIQUE (exercise, week, day, set_type)
);

ALTER TABLE public.progression OWNER TO postgres;
CREATE INDEX ix_progression_target ON public.progression (week, day);

CREATE TABLE public.training_event
(
    id        SERIAL PRIMARY KEY,
    type      VARCHAR NOT NULL,
    data      JSONB NOT NULL DEFAULT '{}',
    timestamp TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.training_event OWNER TO postgres;
CREATE INDEX ix_training_event_timestamp ON public.training_event (timestamp);
`
