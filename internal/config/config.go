// Package config loads the immutable service configuration once at startup.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every setting the service consumes. It is built once in main
// and handed to constructors by value; nothing reads the environment later.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Health   HealthConfig
}

// AppConfig covers the HTTP surface.
type AppConfig struct {
	Host        string   `env:"APP_HOST" env-default:"localhost"`
	Port        string   `env:"APP_PORT" env-default:"8080"`
	LogLevel    string   `env:"APP_LOG_LEVEL" env-default:"info"`
	BaseURL     string   `env:"APP_BASE_URL" env-default:"http://localhost:3000"`
	CORSOrigins []string `env:"APP_CORS_ORIGINS" env-default:"http://localhost:5173" env-separator:","`
}

type PostgresConfig struct {
	Host         string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT" env-default:"5432"`
	User         string `env:"POSTGRES_USER" env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD" env-default:"password"`
	DB           string `env:"POSTGRES_DB" env-default:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

type RedisConfig struct {
	Host         string `env:"REDIS_HOST" env-default:"localhost"`
	Port         int    `env:"REDIS_PORT" env-default:"6379"`
	DB           int    `env:"REDIS_DB" env-default:"0"`
	Password     string `env:"REDIS_PASSWORD" env-default:""`
	PoolSize     int    `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

// KafkaConfig is optional: an empty broker list disables event publishing.
type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"link-events"`
}

type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY" env-default:"my_super_secret_key"`
	ExpSecond int    `env:"JWT_EXP_SECOND" env-default:"604800"`
}

type HealthConfig struct {
	GRPCPort       string `env:"GRPC_HEALTH_PORT" env-default:"50051"`
	IntervalSecond int    `env:"HEALTH_INTERVAL_SECOND" env-default:"15"`
}

// Load reads the optional env file at path into the process environment and
// then fills a Config from it. A missing file is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	cfg.App.BaseURL = strings.TrimRight(cfg.App.BaseURL, "/")
	if cfg.JWT.ExpSecond <= 0 {
		return Config{}, fmt.Errorf("JWT_EXP_SECOND must be positive, got %d", cfg.JWT.ExpSecond)
	}
	if cfg.Health.IntervalSecond <= 0 {
		return Config{}, fmt.Errorf("HEALTH_INTERVAL_SECOND must be positive, got %d", cfg.Health.IntervalSecond)
	}

	return cfg, nil
}

// HTTPAddr is the listen address of the HTTP server.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort(c.App.Host, c.App.Port)
}

// GRPCHealthAddr is the listen address of the gRPC health server.
func (c Config) GRPCHealthAddr() string {
	return net.JoinHostPort(c.App.Host, c.Health.GRPCPort)
}

// PostgresDSN builds the pgx connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Postgres.User, c.Postgres.Password, c.Postgres.Host, c.Postgres.Port, c.Postgres.DB)
}

func (c Config) RedisAddr() string {
	return net.JoinHostPort(c.Redis.Host, strconv.Itoa(c.Redis.Port))
}

func (c Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWT.ExpSecond) * time.Second
}

func (c Config) HealthInterval() time.Duration {
	return time.Duration(c.Health.IntervalSecond) * time.Second
}

// KafkaEnabled reports whether link events should be published.
func (c Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}
