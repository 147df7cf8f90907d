package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals stop a running server.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// shutdownWatcher holds a signal registration for the lifetime of one server.
// Signals are captured from the moment it is created, so one arriving before
// Wait is still seen.
type shutdownWatcher struct {
	signals chan os.Signal
}

func watchShutdown(sigs ...os.Signal) *shutdownWatcher {
	w := &shutdownWatcher{signals: make(chan os.Signal, 1)}
	signal.Notify(w.signals, sigs...)
	return w
}

// Wait blocks until a watched signal arrives or ctx is done and returns what
// ended it.
func (w *shutdownWatcher) Wait(ctx context.Context) string {
	select {
	case sig := <-w.signals:
		return sig.String()
	case <-ctx.Done():
		return "context cancelled"
	}
}

// Stop releases the registration; default signal behavior is restored.
func (w *shutdownWatcher) Stop() {
	signal.Stop(w.signals)
}
