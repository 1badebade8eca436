// Package swaggerkit serves Swagger UI and an OpenAPI document assembled from module mutators
package swaggerkit

import (
	"net/http"

	phttp "jejenorm/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount the Swagger UI and JSON spec under /api/docs if enabled
func Mount(r phttp.Router, title string, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(title))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("jejenorm"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
