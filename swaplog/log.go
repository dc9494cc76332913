// Package swaplog wires up the per-package btclog.Logger subsystems used
// across the module: a disabled-by-default logger that the embedding
// application swaps in a real backend for, one subsystem tag per package,
// each with its own log.go and UseLogger setter.
package swaplog

import "github.com/btcsuite/btclog"

// Disabled is the default logger installed in every subsystem until the
// embedding application calls SetupLoggers with a real one.
var Disabled = btclog.Disabled

// setters maps a short subsystem tag (e.g. "CRPT", "SCRP", "PROT") to the
// UseLogger func a package exposes for swapping its logger at runtime.
var setters = make(map[string]func(btclog.Logger))

// Register associates tag with a package's UseLogger setter. Each
// package's log.go calls this from an init func so SetupLoggers can reach
// every subsystem without this package importing them.
func Register(tag string, useLogger func(btclog.Logger)) {
	useLogger(Disabled)
	setters[tag] = useLogger
}

// SetupLoggers installs logger for every subsystem tag for which the
// caller provides one via loggerForTag; tags it returns nil for keep
// Disabled. The caller owns where logged output ultimately goes — stdout,
// a rotating file, etc.
func SetupLoggers(loggerForTag func(tag string) btclog.Logger) {
	for tag, useLogger := range setters {
		if l := loggerForTag(tag); l != nil {
			useLogger(l)
		}
	}
}
