package modkit

import (
	"jejenorm/internal/core/ruleset"
	"jejenorm/internal/platform/config"
	"jejenorm/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   *logger.Logger
	Cfg   config.Conf
	Rules *ruleset.Dataset
}

// Logger returns Log, falling back to the process logger
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}

// Dataset returns Rules, falling back to the embedded dataset
func (d Deps) Dataset() *ruleset.Dataset {
	if d.Rules != nil {
		return d.Rules
	}
	return ruleset.Default()
}
