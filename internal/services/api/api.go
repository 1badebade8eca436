// Package api provides the HTTP API for the application
package api

import (
	"jejenorm/internal/core/ruleset"
	"jejenorm/internal/platform/config"
	"jejenorm/internal/platform/logger"
	phttp "jejenorm/internal/platform/net/http"

	"jejenorm/internal/modkit"
	"jejenorm/internal/modkit/httpkit"
	"jejenorm/internal/modkit/module"
	"jejenorm/internal/modkit/swaggerkit"

	jejemod "jejenorm/internal/services/api/jejenorm/module"
	metahttp "jejenorm/internal/services/api/meta/http"
	metamod "jejenorm/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Rules          *ruleset.Dataset
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// OptionsFrom reads SWAGGER and PROFILER toggles from cfg
func OptionsFrom(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
	}
}

// Mount mounts the API service onto the given router. Routes live at the root, not under a version prefix
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		Rules: opt.Rules,
	}

	jeje := jejemod.New(deps)

	// meta reports readiness for every module exposing a checker
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Checks: module.Collect[metahttp.Checker](jeje),
	}))

	mods := []module.Module{meta, jeje}

	httpkit.MountRoot(r, httpkit.CommonStack(httpkit.StackFromConfig(opt.Config)), func(api httpkit.Router) {
		swaggerkit.Mount(api, "jejenorm API", opt.EnableSwagger)
		phttp.MountProfiler(api, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			deps.Logger().Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})
}
