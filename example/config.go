package example

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultPort is used when DEBUG_PORT is unset or unusable.
const DefaultPort = 3456

// Config is read from the environment by LoadConfig.
type Config struct {
	// DebugPort stays a string so that a malformed value falls back to
	// DefaultPort instead of failing startup.
	DebugPort       string        `env:"DEBUG_PORT"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	MongoURI        string        `env:"MONGO_URI"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig parses the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Port resolves DebugPort, falling back to DefaultPort.
func (c Config) Port() int {
	port, err := strconv.Atoi(strings.TrimSpace(c.DebugPort))
	if err != nil || port < 1 || port > 65535 {
		return DefaultPort
	}
	return port
}

// Addr is the listen address for Port on all interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port())
}
