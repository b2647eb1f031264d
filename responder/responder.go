package responder

import (
	"log/slog"
	"net/http"
)

const (
	jsonContentType    = "application/json"
	problemContentType = "application/problem+json"
	statusDocBaseURL   = "https://httpstatuses.io"
)

// ErrorClassifierFunc maps an error returned by a controller action to an HTTP
// status. The boolean reports whether the error was recognised; unrecognised
// errors are reported as 500.
type ErrorClassifierFunc func(err error) (status int, handled bool)

// Option configures a Responder.
type Option func(*Responder)

type statusMeta struct {
	typeURI  string
	title    string
	logLevel slog.Level
	logMsg   string
}

// StatusMetadata customises how a status code is titled in problem documents
// and at which level it is logged.
type StatusMetadata struct {
	TypeURI  string
	Title    string
	LogLevel slog.Level
	LogMsg   string
}

// Responder renders action results and routing failures. Every error response
// is a problem document carrying a ULID trace id that is also logged.
type Responder struct {
	log             *slog.Logger
	statusMetadata  map[int]statusMeta
	errorClassifier ErrorClassifierFunc
}

// NewResponder builds a Responder backed by slog.Default.
func NewResponder(opts ...Option) *Responder {
	r := &Responder{
		log:            slog.Default(),
		statusMetadata: defaultStatusMetadata(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithLogger sets the logger used for problem reports.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithErrorClassifier installs the classifier consulted by HandleErrors for
// errors that are not an *HTTPError.
func WithErrorClassifier(classifier ErrorClassifierFunc) Option {
	return func(r *Responder) {
		r.errorClassifier = classifier
	}
}

// WithStatusMetadata overrides the metadata for one status code.
func WithStatusMetadata(status int, meta StatusMetadata) Option {
	return func(r *Responder) {
		if r.statusMetadata == nil {
			r.statusMetadata = make(map[int]statusMeta)
		}
		r.statusMetadata[status] = normalizeStatusMeta(status, statusMeta{
			typeURI:  meta.TypeURI,
			title:    meta.Title,
			logLevel: meta.LogLevel,
			logMsg:   meta.LogMsg,
		})
	}
}

// Logger returns the logger used by the responder.
func (r *Responder) Logger() *slog.Logger {
	return r.logger()
}

func (r *Responder) logger() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}
	return r.log
}

func (r *Responder) classifyError(err error) (int, bool) {
	if r.errorClassifier == nil {
		return 0, false
	}
	return r.errorClassifier(err)
}

func defaultStatusMetadata() map[int]statusMeta {
	return map[int]statusMeta{
		http.StatusInternalServerError: {logLevel: slog.LevelError, logMsg: "action failed"},
		http.StatusBadRequest:          {logLevel: slog.LevelWarn, logMsg: "bad request"},
		http.StatusNotFound:            {logLevel: slog.LevelInfo, logMsg: "no route matched"},
		http.StatusMethodNotAllowed:    {logLevel: slog.LevelInfo, logMsg: "method not allowed"},
		http.StatusNotImplemented:      {logLevel: slog.LevelWarn, logMsg: "method not implemented"},
		http.StatusServiceUnavailable:  {logLevel: slog.LevelWarn, logMsg: "service unavailable"},
	}
}
