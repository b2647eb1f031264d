package info

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/drblury/decrouter/probe"
	"github.com/drblury/decrouter/responder"
)

// InfoProvider returns the payload of the version endpoint.
type InfoProvider func() any

// SwaggerProvider returns the raw OpenAPI document.
type SwaggerProvider func() ([]byte, error)

// RoutesProvider returns the payload of the routes endpoint, usually the
// router's route table.
type RoutesProvider func() any

// InfoOption configures an InfoHandler.
type InfoOption func(*InfoHandler)

// TemplateDataProvider builds the data passed to the docs template.
type TemplateDataProvider func(r *http.Request, baseURL string) any

const defaultProbeTimeout = 2 * time.Second

// ProbeFunc is executed by the liveness and readiness endpoints.
type ProbeFunc = probe.Func

// InfoHandler serves diagnostic endpoints.
type InfoHandler struct {
	*responder.Responder
	baseURL         string
	infoProvider    InfoProvider
	swaggerProvider SwaggerProvider
	routesProvider  RoutesProvider
	openapiTemplate *template.Template
	dataProvider    TemplateDataProvider
	probeTimeout    time.Duration
	livenessChecks  []ProbeFunc
	readinessChecks []ProbeFunc
}

// NewInfoHandler builds an InfoHandler. Without providers the version and
// routes endpoints return empty payloads and the OpenAPI endpoint fails.
func NewInfoHandler(opts ...InfoOption) *InfoHandler {
	ih := &InfoHandler{
		Responder: responder.NewResponder(),
		infoProvider: func() any {
			return map[string]string{}
		},
		swaggerProvider: func() ([]byte, error) {
			return nil, errors.New("openapi document provider not configured")
		},
		routesProvider: func() any {
			return []any{}
		},
		openapiTemplate: defaultOpenAPITemplate,
		dataProvider:    defaultTemplateDataProvider,
		probeTimeout:    defaultProbeTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ih)
		}
	}
	return ih
}

// WithInfoResponder replaces the responder used for JSON and problem responses.
func WithInfoResponder(r *responder.Responder) InfoOption {
	return func(ih *InfoHandler) {
		if r != nil {
			ih.Responder = r
		}
	}
}

// WithBaseURL sets the URL prefix injected into the docs template.
func WithBaseURL(baseURL string) InfoOption {
	return func(ih *InfoHandler) {
		ih.baseURL = baseURL
	}
}

// WithInfoProvider sets the version payload provider.
func WithInfoProvider(provider InfoProvider) InfoOption {
	return func(ih *InfoHandler) {
		if provider != nil {
			ih.infoProvider = provider
		}
	}
}

// WithSwaggerProvider sets the source of the OpenAPI document.
func WithSwaggerProvider(provider SwaggerProvider) InfoOption {
	return func(ih *InfoHandler) {
		if provider != nil {
			ih.swaggerProvider = provider
		}
	}
}

// WithRoutesProvider sets the source of the route listing.
func WithRoutesProvider(provider RoutesProvider) InfoOption {
	return func(ih *InfoHandler) {
		if provider != nil {
			ih.routesProvider = provider
		}
	}
}

// WithOpenAPITemplate replaces the embedded docs page.
func WithOpenAPITemplate(tmpl *template.Template) InfoOption {
	return func(ih *InfoHandler) {
		if tmpl != nil {
			ih.openapiTemplate = tmpl
		}
	}
}

// WithOpenAPITemplateData overrides the per-request template data.
func WithOpenAPITemplateData(provider TemplateDataProvider) InfoOption {
	return func(ih *InfoHandler) {
		if provider != nil {
			ih.dataProvider = provider
		}
	}
}

// WithProbeTimeout bounds the total time of one probe endpoint call.
func WithProbeTimeout(timeout time.Duration) InfoOption {
	return func(ih *InfoHandler) {
		if timeout > 0 {
			ih.probeTimeout = timeout
		}
	}
}

// WithLivenessChecks sets the checks run by GetHealthz.
func WithLivenessChecks(checks ...ProbeFunc) InfoOption {
	return func(ih *InfoHandler) {
		ih.livenessChecks = filterProbes(checks)
	}
}

// WithReadinessChecks sets the checks run by GetReadyz.
func WithReadinessChecks(checks ...ProbeFunc) InfoOption {
	return func(ih *InfoHandler) {
		ih.readinessChecks = filterProbes(checks)
	}
}

func defaultTemplateDataProvider(_ *http.Request, baseURL string) any {
	return map[string]any{
		"BaseURL": baseURL,
	}
}
