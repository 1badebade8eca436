// Command jejenorm-api serves the normalizer over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"jejenorm/internal/core/ruleset"
	"jejenorm/internal/platform/config"
	"jejenorm/internal/platform/logger"
	phttp "jejenorm/internal/platform/net/http"

	"jejenorm/internal/services/api"
)

func main() {
	// .env first so LOG_* and JEJENORM_API_* pick it up
	dotErr := config.LoadDotEnv(".env", ".env.local")

	root := config.New()
	apiCfg := root.Prefix("JEJENORM_API_")
	l := logger.Get()
	if dotErr != nil {
		l.Warn().Err(dotErr).Msg("ignoring unreadable .env")
	}

	// build the dataset before serving so a bad rules file fails fast
	rules, err := ruleset.LoadFile(apiCfg.MayString("RULES_FILE", ""))
	if err != nil {
		l.Fatal().Err(err).Msg("load rules")
	}

	// http server (reads JEJENORM_API_PORT / JEJENORM_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	opts := api.OptionsFrom(apiCfg)
	opts.Rules = rules
	opts.Logger = l
	api.Mount(srv.Router(), opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
