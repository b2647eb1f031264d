package responder

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/drblury/decrouter/jsonutil"
)

// HandleAPIError writes a problem document for status and logs it.
func (r *Responder) HandleAPIError(w http.ResponseWriter, req *http.Request, status int, err error, logMsg ...string) {
	if err == nil {
		return
	}

	meta := r.statusMetaFor(status)
	problem := r.buildProblem(req, status, err, meta)
	r.logProblem(req, meta, problem, logMsg)
	r.respondWithJSON(w, status, problem, problemContentType)
}

// HandleInternalServerError reports err as a 500.
func (r *Responder) HandleInternalServerError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusInternalServerError, err, logMsg...)
}

// HandleBadRequestError reports err as a 400.
func (r *Responder) HandleBadRequestError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusBadRequest, err, logMsg...)
}

// HandleNotFound reports that no route matched the request.
func (r *Responder) HandleNotFound(w http.ResponseWriter, req *http.Request) {
	r.HandleAPIError(w, req, http.StatusNotFound, fmt.Errorf("no route for %s %s", req.Method, req.URL.Path))
}

// HandleMethodNotAllowed reports a 405 and advertises allow in the Allow header.
func (r *Responder) HandleMethodNotAllowed(w http.ResponseWriter, req *http.Request, allow []string) {
	setAllow(w, allow)
	r.HandleAPIError(w, req, http.StatusMethodNotAllowed,
		fmt.Errorf("method %s not allowed on %s", req.Method, req.URL.Path))
}

// HandleNotImplemented reports a 501 for methods the router never serves.
func (r *Responder) HandleNotImplemented(w http.ResponseWriter, req *http.Request, allow []string) {
	setAllow(w, allow)
	r.HandleAPIError(w, req, http.StatusNotImplemented,
		fmt.Errorf("method %s is not implemented", req.Method))
}

// RespondWithJSON writes v as JSON with the given status.
func (r *Responder) RespondWithJSON(w http.ResponseWriter, req *http.Request, status int, v any) {
	r.respondWithJSON(w, status, v, jsonContentType)
}

// HandleErrors renders an action error. An *HTTPError decides its own status,
// then the classifier is consulted, and anything else becomes a 500.
func (r *Responder) HandleErrors(w http.ResponseWriter, req *http.Request, err error, msgs ...string) {
	if err == nil {
		return
	}

	if status, ok := statusFromError(err); ok {
		r.HandleAPIError(w, req, status, err, msgs...)
		return
	}

	if status, handled := r.classifyError(err); handled {
		r.HandleAPIError(w, req, status, err, msgs...)
		return
	}

	r.HandleInternalServerError(w, req, err, msgs...)
}

func (r *Responder) respondWithJSON(w http.ResponseWriter, status int, payload any, contentType string) {
	if w == nil {
		return
	}

	body, err := marshalPayload(payload)
	if err != nil {
		r.logger().Error("failed to encode response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		r.logger().Error("failed to write response", "error", err)
	}
}

func marshalPayload(payload any) ([]byte, error) {
	data, err := jsonutil.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

func setAllow(w http.ResponseWriter, allow []string) {
	if w == nil || len(allow) == 0 {
		return
	}
	w.Header().Set("Allow", strings.Join(allow, ", "))
}
