package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/second-brain/internal/config"
	"github.com/sbilibin2017/second-brain/internal/health"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Version: v1.0.0, Commit: abcd1234, Build: 2025-09-26\n", buf.String())
}

func TestNewKafkaWriter(t *testing.T) {
	cfg := config.Config{Kafka: config.KafkaConfig{Brokers: []string{"k1:9092", "k2:9092"}, Topic: "link-events"}}

	w := newKafkaWriter(cfg)
	assert.Equal(t, "link-events", w.Topic)
	assert.True(t, w.Async)
	assert.NotNil(t, w.Addr)
}

func TestNewRouter(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	// nothing listens on port 1
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer rdb.Close()

	checker := health.NewChecker(time.Second).
		Register("postgres", db.PingContext).
		Register("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })

	cfg := config.Config{
		App: config.AppConfig{BaseURL: "http://localhost:3000", CORSOrigins: []string{"http://localhost:5173"}},
		JWT: config.JWTConfig{SecretKey: "testsecret", ExpSecond: 60},
	}
	router := newRouter(cfg, db, rdb, nil, checker)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "redirect with malformed hash", method: http.MethodGet, target: "/link/not-a-hash", wantStatus: http.StatusNotFound, wantBody: "Link not found"},
		{name: "links require a token", method: http.MethodGet, target: "/api/links", wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "content requires a token", method: http.MethodPost, target: "/api/content", wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "categories require a token", method: http.MethodGet, target: "/api/category", wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "health reports redis down", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusServiceUnavailable, wantBody: `"status":"down"`},
		{name: "swagger document", method: http.MethodGet, target: "/swagger/doc.json", wantStatus: http.StatusOK, wantBody: "/api/links"},
		{name: "unknown route", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.True(t, strings.Contains(rr.Body.String(), tt.wantBody), "body: %s", rr.Body.String())
			}
		})
	}
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := config.Config{
		App: config.AppConfig{
			Host:        "127.0.0.1",
			Port:        "0",
			LogLevel:    "debug",
			BaseURL:     "http://localhost:3000",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Postgres: config.PostgresConfig{
			Host: pgHost, Port: pgPort.Int(), User: "user", Password: "password", DB: "testdb",
			MaxOpenConns: 5, MaxIdleConns: 2,
		},
		Redis: config.RedisConfig{
			Host: redisHost, Port: redisPort.Int(), PoolSize: 10, MinIdleConns: 2,
		},
		JWT:    config.JWTConfig{SecretKey: "testsecret", ExpSecond: 60},
		Health: config.HealthConfig{GRPCPort: "0", IntervalSecond: 1},
	}

	testCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(20 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
