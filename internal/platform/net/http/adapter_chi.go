package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiRouter adapts any chi.Router (root mux or sub router) to Router
type chiRouter struct{ r chi.Router }

// AdaptChi adapts a chi router to a Router
func AdaptChi(r chi.Router) Router { return chiRouter{r: r} }

func (c chiRouter) Get(p string, h Handler) {
	c.r.Method(http.MethodGet, p, http.HandlerFunc(h))
}

func (c chiRouter) Post(p string, h Handler) {
	c.r.Method(http.MethodPost, p, http.HandlerFunc(h))
}

func (c chiRouter) Options(p string, h Handler) {
	c.r.Method(http.MethodOptions, p, http.HandlerFunc(h))
}

func (c chiRouter) Handle(p string, h http.Handler) { c.r.Handle(p, h) }

func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) NotFound(h Handler) { c.r.NotFound(h) }

func (c chiRouter) MethodNotAllowed(h Handler) { c.r.MethodNotAllowed(h) }

// Mux returns the adapted router; chi routers are http.Handlers
func (c chiRouter) Mux() http.Handler { return c.r }
