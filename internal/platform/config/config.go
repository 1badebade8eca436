// Package config reads service configuration from prefixed environment variables,
// optionally seeded from .env files
package config

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"jejenorm/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "JEJENORM_API_")
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("CORS_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value and whether it is non-empty
func (c Conf) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	return v, v != ""
}

// LoadDotEnv seeds the process env from the given files (".env" when none given).
// Variables already set win over file values. Missing files are skipped
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// must returns the value or panics through the logger when missing
func (c Conf) must(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// mustParse panics when parse rejects the value
func mustParse[T any](c Conf, key, what string, parse func(string) (T, error)) T {
	s := c.must(key)
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid " + what)
	}
	return v
}

// mayParse falls back to def when the value is missing, and logs when it is invalid
func mayParse[T any](c Conf, key, what string, def T, parse func(string) (T, error)) T {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msg("invalid " + what + "; using default")
		return def
	}
	return v
}

// parsePort accepts "8000", ":8000" or "host:8000"; port 0 asks the kernel for a free one
func parsePort(s string) (string, error) {
	host, port := "", s
	if strings.Contains(s, ":") {
		h, p, err := net.SplitHostPort(s)
		if err != nil {
			return "", err
		}
		host, port = h, p
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return "", err
	}
	if n < 0 || n > 65535 {
		return "", strconv.ErrRange
	}
	return net.JoinHostPort(host, port), nil
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string { return c.must(key) }

// MustInt panics if the given key is missing, empty, or not an int
func (c Conf) MustInt(key string) int { return mustParse(c, key, "int value", strconv.Atoi) }

// MustBool panics if the given key is missing, empty, or not a bool
func (c Conf) MustBool(key string) bool {
	return mustParse(c, key, "bool value", strconv.ParseBool)
}

// MustDuration panics if the given key is missing, empty, or not a valid duration
func (c Conf) MustDuration(key string) time.Duration {
	return mustParse(c, key, "duration (e.g., 250ms, 2s, 1h)", time.ParseDuration)
}

// MustPort returns a net/http addr like ":8000" or "127.0.0.1:8000"
func (c Conf) MustPort(key string) string {
	return mustParse(c, key, "TCP port; expected 0..65535", parsePort)
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int { return mayParse(c, key, "int", def, strconv.Atoi) }

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	return mayParse(c, key, "bool", def, strconv.ParseBool)
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return mayParse(c, key, "duration", def, time.ParseDuration)
}

// MayPort is MustPort with a default; def is returned as given
func (c Conf) MayPort(key, def string) string { return mayParse(c, key, "port", def, parsePort) }

// MayCSV returns a slice of strings from a comma-separated env var; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum ensures value is one of allowed; returns def if empty; panics if invalid
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
