// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "jejenorm/internal/platform/net/http"
	"jejenorm/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// JSONOptions tunes body binding
	JSONOptions = bind.JSONOptions
)

// OK returns an enveloped 200 response
func OK(data any) Response { return phttp.OK(data) }

// Bare returns a 200 response written without the envelope
func Bare(data any) Response { return phttp.Bare(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON binds and validates the request body into T before calling fn.
// A returned Response is written as-is, anything else is enveloped
func JSON[T any](fn func(*http.Request, T) (any, error), opts ...JSONOptions) Handler {
	return phttp.JSONHandler(fn, opts...)
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
