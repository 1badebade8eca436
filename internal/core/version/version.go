// Package version reports build information for the service and CLI
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about a build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Set via -ldflags "-X 'jejenorm/internal/core/version.version=v0.1.0'
// -X 'jejenorm/internal/core/version.commit=abcd' -X 'jejenorm/internal/core/version.date=2026-10-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns build information for the named service. When ldflags did not set a
// commit, the VCS stamp embedded by the go tool is used if present
func Info(service string) BuildInfo {
	bi := BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
	if bi.Commit != "none" {
		return bi
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				bi.Commit = s.Value
			case "vcs.time":
				if bi.Date == "unknown" {
					bi.Date = s.Value
				}
			}
		}
	}
	return bi
}
