package app

import "time"

// Config holds the tunables of the built-in middleware.
type Config struct {
	// Timeout bounds the time spent below the timeout middleware. Zero disables it.
	Timeout time.Duration
	// ShutdownTimeout bounds graceful shutdown in Listen.
	ShutdownTimeout time.Duration
	// QuietdownRoutes are paths that the logging middleware does not log.
	QuietdownRoutes []string
	// HideHeaders are request headers replaced by their length in logs.
	HideHeaders []string
	CORS        CORSConfig
}

// CORSConfig enables CORS handling when Origins is not empty.
type CORSConfig struct {
	Origins          []string
	Methods          []string
	Headers          []string
	AllowCredentials bool
}

func defaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func sanitizeConfig(cfg Config) Config {
	cfg.QuietdownRoutes = cloneStrings(cfg.QuietdownRoutes)
	cfg.HideHeaders = cloneStrings(cfg.HideHeaders)
	cfg.CORS.Headers = cloneStrings(cfg.CORS.Headers)
	cfg.CORS.Methods = cloneStrings(cfg.CORS.Methods)
	cfg.CORS.Origins = cloneStrings(cfg.CORS.Origins)
	return cfg
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}
