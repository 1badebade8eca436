// Package logger wraps zerolog with process-wide defaults and request-scoped fields
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"jejenorm/internal/platform/config/raw"
)

// Options configures the logger
type Options struct {
	Level        string
	Format       string // console or json
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv builds Options from LOG_* using the logger-free raw config view
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(rc.Get("LEVEL", "info")),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", "jejenorm"),
		Component:   rc.Get("COMPONENT", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Get returns the process-wide root logger, initializing it from env on first use
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init configures zerolog and builds the root logger. Only the first call has effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stdout
		if opt.Writer != nil {
			w = opt.Writer
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		zc := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			zc = zc.Str("go_version", bi.GoVersion)
		}
		if opt.Service != "" {
			zc = zc.Str("service", opt.Service)
		}
		if opt.Component != "" {
			zc = zc.Str("component", opt.Component)
		}
		for k, v := range opt.StaticFields {
			zc = zc.Str(k, v)
		}

		log := zc.Logger()
		if opt.WithCaller {
			log = log.With().Caller().Logger()
		}
		if opt.SampleEvery > 1 {
			log = log.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}

		root.Store(&log)
		inited.Store(true)
	})
}

// Set replaces the root logger and returns a func restoring the previous one. Meant for tests
func Set(l Logger) (restore func()) {
	prev := Get()
	root.Store(&l)
	return func() { root.Store(prev) }
}

// parseLevel accepts zerolog level names plus "warning"; unknown input means info
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

type ctxKey struct{}

type ctxFields struct {
	parent *ctxFields
	key    string
	val    string
}

// WithRequest annotates ctx with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	return WithField(ctx, "request_id", reqID)
}

// WithField attaches a string field that C adds to every line logged under ctx. Empty values are skipped
func WithField(ctx context.Context, key, val string) context.Context {
	if key == "" || val == "" {
		return ctx
	}
	parent, _ := ctx.Value(ctxKey{}).(*ctxFields)
	return context.WithValue(ctx, ctxKey{}, &ctxFields{parent: parent, key: key, val: val})
}

// C returns a child logger enriched with the fields stored on ctx
func C(ctx context.Context) *Logger {
	l := Get()
	f, _ := ctx.Value(ctxKey{}).(*ctxFields)
	if f == nil {
		return l
	}
	// oldest first so later fields win in console output
	var chain []*ctxFields
	for ; f != nil; f = f.parent {
		chain = append(chain, f)
	}
	b := l.With()
	for i := len(chain) - 1; i >= 0; i-- {
		b = b.Str(chain[i].key, chain[i].val)
	}
	ll := b.Logger()
	return &ll
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}
