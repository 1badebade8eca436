package http

import (
	"net/http"

	"jejenorm/internal/platform/net/http/bind"
)

// result turns a handler's return values into a Response. A returned Response is used as-is
func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// JSONHandler binds and validates a T from the body, then calls fn
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn without parsing a request body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return result(fn(r))
	})
}
