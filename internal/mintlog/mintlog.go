// Package mintlog is an optional structured-logging shim built on
// go.uber.org/zap, matching the structured-logging convention the
// bnb-chain-tss-lib corpus entry pulls in. The teacher CLI (cryptotimed)
// logs ambiently via fmt.Printf; that stays the CLI's only output here.
// Logging is off, and Phase is a no-op, until Enable is called; no CLI
// command defines a verbose flag or calls Enable or Phase.
package mintlog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	logger *zap.Logger
)

// Enable switches on verbose structured logging for the remainder of the
// process. It is idempotent.
func Enable() error {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Phase logs a named phase transition with key/value fields, a no-op when
// verbose logging has not been enabled.
func Phase(name string, fields ...zap.Field) {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}
	l.Info(name, fields...)
}

// Sync flushes any buffered log entries. Safe to call even if Enable was
// never invoked.
func Sync() {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}
	_ = l.Sync()
}
