// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "jejenorm/internal/modkit"
	"jejenorm/internal/modkit/httpkit"
	"jejenorm/internal/modkit/swaggerkit"

	metahttp "jejenorm/internal/services/api/meta/http"
)

// Ports lets other modules feed readiness checks into meta
type Ports struct {
	Checks []metahttp.Checker
}

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	service   string
	checks    []metahttp.Checker
	startedAt time.Time
}

// New constructs a meta module. Readiness checks come in through modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		b:         b,
		service:   deps.Cfg.MayString("SERVICE_NAME", "jejenorm-api"),
		startedAt: time.Now(),
	}
	if p, ok := b.Ports.(Ports); ok {
		m.checks = p.Checks
	}

	swaggerkit.Register(func(spec map[string]any) {
		s := swaggerkit.Schemas(spec)
		s["MetaEnvelope"] = map[string]any{
			"type":        "object",
			"description": "Enveloped meta payload",
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer"},
				"status":      map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
				"data":        map[string]any{"type": "object"},
			},
		}
		for _, p := range []struct{ path, summary string }{
			{"/health", "Health check"},
			{"/ready", "Readiness probe"},
			{"/version", "Build and version info"},
			{"/service", "Service info and uptime"},
		} {
			swaggerkit.AddOperation(spec, "get", b.Prefix+p.path, "Meta", p.summary, "", "MetaEnvelope")
		}
	})

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: m.service,
			StartedAt:   m.startedAt,
			Checks:      m.checks,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string {
	if m.b.Name == "" {
		return "meta"
	}
	return m.b.Name
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
