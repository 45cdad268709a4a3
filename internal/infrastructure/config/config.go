package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, read once at startup. The JWT
// secret and Mongo URI have no defaults: the service cannot operate without
// them, so their absence is a fatal startup error.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,  default=1h"`
	BcryptCost int           `env:"BCRYPT_COST, default=12"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Advisor AdvisorConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, required"`
	Database string `env:"MONGO_DB,  default=career_advisor"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AdvisorConfig points at the locally hosted inference endpoint.
type AdvisorConfig struct {
	BaseURL string        `env:"ADVISOR_URL,     default=http://localhost:11434"`
	Model   string        `env:"ADVISOR_MODEL,   default=llama3"`
	Timeout time.Duration `env:"ADVISOR_TIMEOUT, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
