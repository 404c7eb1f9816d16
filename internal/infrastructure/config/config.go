package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers selectable via STORE_DRIVER.
const (
	DriverFile  = "file"
	DriverMongo = "mongo"
	DriverRedis = "redis"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	BcryptCost int    `env:"BCRYPT_COST, default=10"`

	Store StoreConfig
	SMTP  SMTPConfig
	Admin AdminConfig
}

type StoreConfig struct {
	// Driver selects the persistence backend: file (default), mongo, or redis.
	// Every driver speaks the same whole-document load/save contract.
	Driver  string `env:"STORE_DRIVER, default=file"`
	DataDir string `env:"DATA_DIR,     default=./data"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=grocery_store"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SMTPConfig carries the notification channel settings. Leaving Email or
// Password empty disables outbound email entirely.
type SMTPConfig struct {
	Host     string `env:"SMTP_SERVER,   default=smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT,     default=587"`
	Email    string `env:"SMTP_EMAIL"`
	Password string `env:"SMTP_PASSWORD"`
}

// AdminConfig bootstraps an administrator account at startup when both fields
// are present.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.Store.Driver {
	case DriverFile, DriverMongo, DriverRedis:
	default:
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.Store.Driver)
	}

	return &cfg, nil
}
