// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"jejenorm/internal/core/version"
	"jejenorm/internal/modkit/httpkit"
)

// Checker is satisfied by module ports that can report readiness
type Checker interface {
	CheckName() string
	Check(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      []Checker
}

// now is the clock the handlers read; tests swap it
var now = time.Now

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.GetJSON(r, "/health", h.health)
	httpkit.GetJSON(r, "/ready", h.ready)
	httpkit.GetJSON(r, "/version", h.version)
	httpkit.GetJSON(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"jejenorm-api"`
	Started string `json:"started"  example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-01T13:05:00Z"`
}

// ReadyCheck describes a single readiness check
type ReadyCheck struct {
	Name   string `json:"name"   example:"rules"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"jejenorm-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     now().UTC().Format(time.RFC3339),
	}, nil
}

// ready runs every check; any failure turns the probe into a 503
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	out := ReadyResponse{
		Status: "ok",
		Checks: make([]ReadyCheck, 0, len(h.deps.Checks)),
		Now:    now().UTC().Format(time.RFC3339),
	}
	for _, c := range h.deps.Checks {
		rc := ReadyCheck{Name: c.CheckName(), Status: "ok"}
		if err := c.Check(ctx); err != nil {
			rc.Status, rc.Error = "fail", err.Error()
			out.Status = "fail"
		}
		out.Checks = append(out.Checks, rc)
	}

	if out.Status != "ok" {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
