// Package monitoring holds the package-level diagnostic loggers shared by the
// loaders, analysis and chart renderers.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// Verbosef logs per-file and per-chart detail. It is a no-op until SetVerbose
// enables it.
var Verbosef func(format string, v ...interface{}) = func(string, ...interface{}) {}

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetVerbose routes Verbosef through Logf when on, and mutes it otherwise.
func SetVerbose(on bool) {
	if !on {
		Verbosef = func(string, ...interface{}) {}
		return
	}
	Verbosef = func(format string, v ...interface{}) {
		Logf(format, v...)
	}
}
