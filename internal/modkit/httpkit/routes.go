package httpkit

import (
	"net/http"

	phttp "jejenorm/internal/platform/net/http"
)

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountRoot applies mw to r, mounts the routes and installs JSON 404 and 405 handlers
func MountRoot(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	if len(mw) > 0 {
		r.Use(mw...)
	}
	r.NotFound(phttp.NotFound)
	r.MethodNotAllowed(phttp.MethodNotAllowed)
	mount(r)
}
