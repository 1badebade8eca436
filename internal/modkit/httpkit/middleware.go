package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"jejenorm/internal/platform/config"
	"jejenorm/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORS    middleware.CORSOptions
	Timeout time.Duration // 0 disables the request timeout
	Slow    time.Duration // access log warn threshold, 0 disables

	// MaxInFlight caps concurrent requests, extra ones get 429. 0 disables
	MaxInFlight int
}

// StackFromConfig reads the CORS_* lists, TIMEOUT, SLOW and MAX_INFLIGHT
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		CORS: middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
			AllowedMethods: cfg.MayCSV("CORS_METHODS", nil),
			AllowedHeaders: cfg.MayCSV("CORS_HEADERS", nil),
		},
		Timeout: cfg.MayDuration("TIMEOUT", 30*time.Second),
		Slow:    cfg.MayDuration("SLOW", 500*time.Millisecond),

		MaxInFlight: cfg.MayInt("MAX_INFLIGHT", 0),
	}
}

// CommonStack returns the baseline middleware slice, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability, outside recover so panics are logged with their 500
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/ping"),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	if o.Timeout > 0 {
		stack = append(stack, middleware.Timeout(o.Timeout))
	}
	return stack
}
