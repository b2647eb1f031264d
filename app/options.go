package app

import (
	"log/slog"

	"github.com/drblury/decrouter/responder"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures an App.
type Option func(*options)

type options struct {
	config         Config
	logger         *slog.Logger
	responder      *responder.Responder
	swagger        *openapi3.T
	registerer     prometheus.Registerer
	metricsPrefix  string
	metrics        *requestMetrics
	enableRecovery bool
	enableOpenAPI  bool
	enableCORS     bool
	enableTimeout  bool
	enableLogging  bool
}

func defaultOptions() *options {
	return &options{
		config:         defaultConfig(),
		logger:         slog.Default(),
		metricsPrefix:  "decrouter",
		enableRecovery: true,
		enableOpenAPI:  true,
		enableCORS:     true,
		enableTimeout:  true,
		enableLogging:  true,
	}
}

func (o *options) defaultMiddlewares() []Middleware {
	chain := make([]Middleware, 0, 6)

	if o.enableRecovery {
		chain = append(chain, recoveryMiddleware(o.responder))
	}

	if o.enableLogging && o.logger != nil {
		chain = append(chain, loggingMiddleware(o.logger, o.config.QuietdownRoutes, o.config.HideHeaders))
	}

	if o.registerer != nil {
		// Collectors register once; the chain itself is rebuilt after every Use.
		if o.metrics == nil {
			o.metrics = newRequestMetrics(o.registerer, o.metricsPrefix)
		}
		chain = append(chain, metricsMiddleware(o.metrics))
	}

	if o.enableCORS && len(o.config.CORS.Origins) > 0 {
		chain = append(chain, corsMiddleware(o.config.CORS))
	}

	if o.enableTimeout && o.config.Timeout > 0 {
		chain = append(chain, timeoutMiddleware(o.config.Timeout))
	}

	if o.enableOpenAPI && o.swagger != nil {
		chain = append(chain, oapiMiddleware(o.swagger))
	}

	return chain
}

// WithConfig replaces the middleware configuration.
func WithConfig(cfg Config) Option {
	configCopy := sanitizeConfig(cfg)
	return func(o *options) {
		o.config = configCopy
	}
}

// WithConfigMutator edits the configuration after defaults are applied.
func WithConfigMutator(mutator func(*Config)) Option {
	return func(o *options) {
		if mutator != nil {
			mutator(&o.config)
		}
	}
}

// WithLogger sets the logger used by the logging middleware and Listen.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithResponder sets the responder used for the 404 fallback and recovered panics.
func WithResponder(r *responder.Responder) Option {
	return func(o *options) {
		o.responder = r
	}
}

// WithSwagger enables request validation against doc.
func WithSwagger(doc *openapi3.T) Option {
	return func(o *options) {
		o.swagger = doc
	}
}

// WithMetrics registers request counters and latency histograms on reg.
func WithMetrics(reg prometheus.Registerer, namespace string) Option {
	return func(o *options) {
		o.registerer = reg
		if namespace != "" {
			o.metricsPrefix = namespace
		}
	}
}

// WithoutRecovery lets panics escape to net/http.
func WithoutRecovery() Option {
	return func(o *options) {
		o.enableRecovery = false
	}
}

// WithoutOpenAPIValidation disables request validation even when a document is set.
func WithoutOpenAPIValidation() Option {
	return func(o *options) {
		o.enableOpenAPI = false
	}
}

// WithoutCORSMiddleware disables CORS handling regardless of configuration.
func WithoutCORSMiddleware() Option {
	return func(o *options) {
		o.enableCORS = false
	}
}

// WithoutTimeoutMiddleware disables the timeout middleware.
func WithoutTimeoutMiddleware() Option {
	return func(o *options) {
		o.enableTimeout = false
	}
}

// WithoutLoggingMiddleware disables request logging.
func WithoutLoggingMiddleware() Option {
	return func(o *options) {
		o.enableLogging = false
	}
}
