// Package http hosts the chi router seam, the server wrapper and JSON response helpers.
// Errors always use Envelope; successes use it unless the Response is bare
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "jejenorm/internal/platform/errors"
	"jejenorm/internal/platform/logger"
	pnet "jejenorm/internal/platform/net"
)

// Envelope is the standard wrapper for errors and enveloped data
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Debug().Err(err).Msg("write json response")
	}
}

// ErrorEnvelope builds the envelope for err
func ErrorEnvelope(r *stdhttp.Request, err error) (int, Envelope) {
	status, wr := perr.HTTP(err)
	return status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wr.Code,
		Error:      wr.Message,
		Field:      wr.Field,
		RequestID:  pnet.RequestID(r.Context()),
	}
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := ErrorEnvelope(r, err)
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	}
	JSON(w, status, env)
}

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	OK(data).write(w, r)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// Bare writes Body as-is instead of wrapping it in an Envelope
	Bare   bool
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	// an error body decides its own status
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	if resp.Bare {
		JSON(w, status, resp.Body)
		return
	}
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       resp.Body,
	})
}

// OK returns an enveloped 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Bare returns a 200 response whose body is written without the envelope
func Bare(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data, Bare: true} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// NotFound writes the JSON 404 used for unknown routes
func NotFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowed writes the JSON 405 used for known paths hit with another verb
func MethodNotAllowed(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.Newf(perr.ErrorCodeMethodNotAllowed, "method %s not allowed on %s", r.Method, r.URL.Path))
}
