// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package ordering

import (
	"context"
	"errors"
	"fmt"
)

// ErrResyncFailed wraps the case where both the persist and the follow-up
// refetch failed. The collection keeps its optimistic state until the next
// successful fetch; callers should surface this as a retryable condition.
var ErrResyncFailed = errors.New("resync after failed persist also failed")

// Notifier receives user-facing outcome notifications. The dashboard shows
// these as toasts; server-side embedders log them.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Success implements Notifier.
func (NopNotifier) Success(string) {}

// Error implements Notifier.
func (NopNotifier) Error(string) {}

// Reconciler persists an optimistically reordered collection and rolls back
// to server truth when persistence fails. It is the only component that
// converts network failures into state transitions: a failed persist always
// triggers a full refetch-and-renormalize, never a partial patch, so local
// state cannot silently diverge from the server.
type Reconciler[T Item] struct {
	// Persist writes the collection's new order to the remote store. For
	// videos this is one batched call; for FAQs it is N sequential per-item
	// updates issued by the closure itself.
	Persist func(ctx context.Context, items []T) error

	// Fetch re-reads the entire collection from the remote store.
	Fetch func(ctx context.Context) ([]T, error)

	// Notifier receives the success or error notification for each cycle.
	// Nil means NopNotifier.
	Notifier Notifier

	// SuccessMsg and ErrorMsg are the user-facing notification texts.
	SuccessMsg string
	ErrorMsg   string
}

// Sync persists c's current order. On success the optimistic local state is
// confirmed. On failure the optimistic state is discarded: the collection is
// replaced wholesale by a fresh fetch (renormalized), and the returned error
// wraps the persist failure. If the refetch itself fails too, the error also
// matches ErrResyncFailed and the optimistic state is left in place for the
// next resync attempt.
func (r *Reconciler[T]) Sync(ctx context.Context, c *Collection[T]) error {
	notifier := r.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}

	if err := r.Persist(ctx, c.Items()); err != nil {
		notifier.Error(r.ErrorMsg)

		fresh, ferr := r.Fetch(ctx)
		if ferr != nil {
			return fmt.Errorf("%w: persist: %w, fetch: %w", ErrResyncFailed, err, ferr)
		}
		c.Replace(fresh)
		return fmt.Errorf("order persist failed, state resynced from server: %w", err)
	}

	notifier.Success(r.SuccessMsg)
	return nil
}
