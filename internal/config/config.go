package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Engine   EngineConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string

	MigrationsDir string
	RunSeeders    bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type AuthConfig struct {
	AdminSecret    string
	TokenExpiresIn time.Duration
}

type EngineConfig struct {
	PeerSampleSize   int
	CourseAPIBase    string
	CourseScrapeBase string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:       req("APP_NAME"),
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		MigrationsDir: opt("MIGRATIONS_DIR"),
		RunSeeders:    boolOr(opt("RUN_SEEDERS"), false),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        secondsOr(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:          int32Or(opt("DB_POOL_MAX_CONNS"), 0),
		PoolMinConns:          int32Or(opt("DB_POOL_MIN_CONNS"), 0),
		PoolMaxConnLifetime:   secondsOr(opt("DB_POOL_MAX_CONN_LIFETIME"), 0),
		PoolMaxConnIdleTime:   secondsOr(opt("DB_POOL_MAX_CONN_IDLE_TIME"), 0),
		PoolHealthCheckPeriod: secondsOr(opt("DB_POOL_HEALTH_CHECK_PERIOD"), 0),
	}

	cfg.Auth = AuthConfig{
		AdminSecret:    opt("ADMIN_TOKEN_SECRET"),
		TokenExpiresIn: secondsOr(opt("ADMIN_TOKEN_EXPIRES_IN"), 3600*time.Second),
	}

	cfg.Engine = EngineConfig{
		PeerSampleSize:   intOr(opt("PEER_SAMPLE_SIZE"), 0),
		CourseAPIBase:    opt("COURSE_API_BASE"),
		CourseScrapeBase: opt("COURSE_SCRAPE_BASE"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func boolOr(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func intOr(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func int32Or(raw string, def int32) int32 {
	return int32(intOr(raw, int(def)))
}

func secondsOr(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
