package info

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drblury/decrouter/responder"
)

func quietHandler(opts ...InfoOption) *InfoHandler {
	resp := responder.NewResponder(responder.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return NewInfoHandler(append([]InfoOption{WithInfoResponder(resp)}, opts...)...)
}

func call(action http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	action(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v (body: %s)", err, rr.Body.String())
	}
	return out
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) responder.ProblemDetails {
	t.Helper()
	return decodeJSON[responder.ProblemDetails](t, rr)
}
