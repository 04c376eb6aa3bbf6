package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// InsecureDefaultSecret is the local-development signing secret. It must be
// overridden in any real deployment.
const InsecureDefaultSecret = "dev_secret"

type Config struct {
	Port        string `env:"PORT,         default=4000"`
	Env         string `env:"ENV,          default=development"`
	JWTSecret   string `env:"JWT_SECRET,   default=dev_secret"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	HashWorkers int    `env:"HASH_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=healthcare_app"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Development reports whether the service runs in the development environment.
func (c *Config) Development() bool {
	return c.Env == "development"
}
