// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/conlog/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a new signal broker that listens for OS signals that should terminate the process.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch monitors the signal channel and cancels the context on the second
// signal of a given type. The first signal lets the demo loop clear the
// taskbar progress state and exit cleanly; a repeat forces termination.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	sigMap := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := sigMap[sig]; ok {
			ctxlog.Info(ctx, "watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
			close(sigCh)
			cancel()

			return
		}

		sigMap[sig] = struct{}{}
		ctxlog.Info(ctx, "watchdog", "detail", "received signal, repeat to force termination", "signal", sig.String())
		cancel()
	}
}
