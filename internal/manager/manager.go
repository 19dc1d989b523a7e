// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

// Package manager ties the ordering core to the remote content API. Each
// manager owns one collection's view state, its drag session, and the
// persist-or-rollback cycle that keeps local order and server order in
// agreement.
package manager

import (
	"errors"
	"sync"

	"github.com/contentforge/contentforge/internal/logging"
)

// ErrReorderInProgress rejects a mutation attempt while a persist cycle is
// still in flight. Attempts are rejected, never queued.
var ErrReorderInProgress = errors.New("reorder already in progress")

// ErrNotLoaded is returned by mutating operations before the first Load.
var ErrNotLoaded = errors.New("collection not loaded")

// busyFlag is the mutual-exclusion gate for persist cycles. tryAcquire is a
// non-blocking take: a second caller gets false and must give up rather than
// wait.
type busyFlag struct {
	mu   sync.Mutex
	busy bool
}

func (b *busyFlag) tryAcquire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.busy {
		return false
	}
	b.busy = true
	return true
}

func (b *busyFlag) release() {
	b.mu.Lock()
	b.busy = false
	b.mu.Unlock()
}

// Busy reports whether a persist cycle is in flight.
func (b *busyFlag) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.busy
}

// LogNotifier emits reorder outcome notifications through the global logger.
type LogNotifier struct {
	Collection string
}

// Success implements ordering.Notifier.
func (n LogNotifier) Success(msg string) {
	logging.Info().Str("collection", n.Collection).Msg(msg)
}

// Error implements ordering.Notifier.
func (n LogNotifier) Error(msg string) {
	logging.Error().Str("collection", n.Collection).Msg(msg)
}
