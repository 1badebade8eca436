package http

import "net/http"

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the minimal surface modules mount against
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Options(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// NotFound and MethodNotAllowed replace the plain-text defaults
	NotFound(h Handler)
	MethodNotAllowed(h Handler)

	Mux() http.Handler
}
