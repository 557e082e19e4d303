// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatchCancelsOnRepeatSignal(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})

	go func() {
		Watch(ctx, sigCh, cancel)
		close(done)
	}()

	sigCh <- syscall.SIGINT
	sigCh <- syscall.SIGINT

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not terminate after repeated signal")
	}

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestNewDefaultsToTermSignals(t *testing.T) {
	ctx := context.Background()

	ch := New(ctx)
	require.NotNil(t, ch)
	assert.Equal(t, 1, cap(ch))
}
