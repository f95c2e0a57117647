package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Secret signs the session-ID cookie; EncryptionSecret protects the
	// session payload stored server-side.
	Secret           string        `env:"SESSION_SECRET"`
	EncryptionSecret string        `env:"SESSION_ENCRYPTION_SECRET"`
	TTL              time.Duration `env:"SESSION_TTL, default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Host     string `env:"MONGODB_HOST,     default=localhost:27017"`
	User     string `env:"MONGODB_USER"`
	Password string `env:"MONGODB_PASSWORD"`
	Database string `env:"MONGODB_DATABASE, default=members_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ConnectionURI returns the explicit MONGO_URI when set; otherwise it
// composes an Atlas-style SRV URI from the individual credential parts.
func (m MongoConfig) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}
	if m.User == "" {
		return fmt.Sprintf("mongodb://%s/%s", m.Host, m.Database)
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/%s?retryWrites=true&w=majority",
		m.User, m.Password, m.Host, m.Database)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
