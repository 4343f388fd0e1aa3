package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at process start and handed to every component that needs it.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	// GRPCHealthPort enables the gRPC health service when non-empty.
	GRPCHealthPort string
}

// AppConfig holds HTTP server settings.
type AppConfig struct {
	Name        string
	Env         string
	Host        string
	Port        string
	LogLevel    string
	BasePath    string
	CORSOrigins []string
}

// PostgresConfig holds database connection settings.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the connection URL understood by the pgx stdlib driver.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DB, c.SSLMode)
}

// RedisConfig holds the token blacklist store settings. An empty Host disables it.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool { return c.Host != "" }

// Addr returns host:port.
func (c RedisConfig) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// KafkaConfig holds activity event publishing settings. No brokers disables publishing.
type KafkaConfig struct {
	Brokers       []string
	ActivityTopic string
}

// Enabled reports whether at least one broker was configured.
func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

// JWTConfig holds token signing settings.
type JWTConfig struct {
	SecretKey string
	Exp       time.Duration
}

// Load reads the env file at path (missing file is fine) and builds a Config
// from environment variables, falling back to defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	cfg.App = AppConfig{
		Name:        getEnv("APP_NAME", "Psiarze API"),
		Env:         getEnv("APP_ENV", "dev"),
		Host:        getEnv("APP_HOST", "localhost"),
		Port:        getEnv("APP_PORT", "8080"),
		LogLevel:    getEnv("APP_LOG_LEVEL", "info"),
		BasePath:    getEnv("APP_BASE_PATH", "/api"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	cfg.Postgres = PostgresConfig{
		Host:     getEnv("POSTGRES_HOST", "localhost"),
		User:     getEnv("POSTGRES_USER", "user"),
		Password: getEnv("POSTGRES_PASSWORD", "password"),
		DB:       getEnv("POSTGRES_DB", "psiarze"),
		SSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),
	}
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
	}
	if cfg.Redis.Port, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	cfg.Kafka = KafkaConfig{
		Brokers:       splitList(getEnv("KAFKA_BROKERS", "")),
		ActivityTopic: getEnv("KAFKA_ACTIVITY_TOPIC", "psiarze.activity"),
	}

	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "")

	cfg.JWT.SecretKey = getEnv("JWT_SECRET_KEY", "CHANGE_ME_DEV_SECRET")
	expSeconds, err := getInt("JWT_EXP_SECOND", 7*24*60*60)
	if err != nil {
		return nil, err
	}
	cfg.JWT.Exp = time.Duration(expSeconds) * time.Second

	return &cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
