// Package module wires jejenorm into the API using modkit
package module

import (
	"jejenorm/internal/modkit"
	"jejenorm/internal/modkit/httpkit"
	"jejenorm/internal/modkit/swaggerkit"
	"jejenorm/internal/platform/config"
	"jejenorm/internal/services/api/jejenorm/domain"

	jejehttp "jejenorm/internal/services/api/jejenorm/http"
	"jejenorm/internal/services/api/jejenorm/service"
)

// Ports exposes the service for cross-module lookups. Service also satisfies the meta readiness checker
type Ports struct {
	Service *service.Service
}

// Module implements the jejenorm module
type Module struct {
	b     modkit.Built
	svc   *service.Service
	ports Ports
}

// ConfigFrom reads CASCADE, SQUASH, FOLD and WORKERS
func ConfigFrom(cfg config.Conf) service.Config {
	return service.Config{
		Cascade: cfg.MayBool("CASCADE", false),
		Squash:  cfg.MayInt("SQUASH", 0),
		Fold:    cfg.MayBool("FOLD", false),
		Workers: cfg.MayInt("WORKERS", 0),
	}
}

// New constructs the jejenorm module. Routes mount at the API root unless a prefix option says otherwise
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("jejenorm"), modkit.WithPrefix("/")}, opts...)...)

	svc := service.New(deps.Dataset(), ConfigFrom(deps.Cfg))
	st := svc.Stats()
	deps.Logger().Info().
		Int("rules", st.Rules).
		Int("max_words", st.MaxWords).
		Str("mode", st.Mode).
		Msg("jejenorm ready")

	swaggerkit.Register(docs)

	return &Module{b: b, svc: svc, ports: Ports{Service: svc}}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { jejehttp.Register(rr, m.svc) })
}

// Name is the module name
func (m *Module) Name() string { return m.b.Name }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service returns the underlying service port
func (m *Module) Service() domain.ServicePort { return m.svc }
