package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	JWTSecret     string `env:"JWT_SECRET,     default=change-me"`
	SessionSecret string `env:"SESSION_SECRET, default=change-me"`

	Storage StorageConfig
	Seed    SeedConfig
	Insight InsightConfig
	Redis   RedisConfig
}

type StorageConfig struct {
	// Driver selects the storage backend: "file" (default) or "mongo".
	Driver  string `env:"STORAGE_DRIVER, default=file"`
	DataDir string `env:"DATA_DIR,       default=./data"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=leadership_assessment"`
}

// SeedConfig holds the two first-run accounts and their shared password.
type SeedConfig struct {
	MasterEmail     string `env:"SEED_MASTER_EMAIL,     default=master@example.com"`
	StandardEmail   string `env:"SEED_STANDARD_EMAIL,   default=user@example.com"`
	DefaultPassword string `env:"SEED_DEFAULT_PASSWORD, default=ChangeMe123!"`
}

// InsightConfig configures the AI insight feature. An empty API key disables
// it; the application then serves a fixed explanatory message instead.
type InsightConfig struct {
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	GeminiModel  string        `env:"GEMINI_MODEL,    default=gemini-1.5-flash"`
	Timeout      time.Duration `env:"INSIGHT_TIMEOUT, default=30s"`
}

// RedisConfig configures the optional insight cache. An empty Addr disables
// caching entirely.
type RedisConfig struct {
	Addr string        `env:"REDIS_ADDR"`
	DB   int           `env:"REDIS_DB,          default=0"`
	TTL  time.Duration `env:"INSIGHT_CACHE_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
