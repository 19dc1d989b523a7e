// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package manager

import (
	"context"
	"fmt"

	"github.com/contentforge/contentforge/internal/metrics"
	"github.com/contentforge/contentforge/internal/models"
	"github.com/contentforge/contentforge/internal/ordering"
	"github.com/contentforge/contentforge/internal/remote"
)

// VideoManager maintains the admin-side ordered view of the video gallery.
// Video positions are zero-based and a reorder persists as one batched call
// carrying every ID in final order.
//
// All methods must be called from a single goroutine; the busy flag guards
// against overlapping persist cycles, not data races.
type VideoManager struct {
	api        remote.VideoAPI
	collection *ordering.Collection[*models.Video]
	session    ordering.Session
	busy       busyFlag
	notifier   ordering.Notifier
}

// NewVideoManager creates a video manager. notifier may be nil.
func NewVideoManager(api remote.VideoAPI, notifier ordering.Notifier) *VideoManager {
	if notifier == nil {
		notifier = LogNotifier{Collection: "videos"}
	}
	return &VideoManager{api: api, notifier: notifier}
}

// Load fetches the full video collection and normalizes it into a zero-based
// contiguous order. Raw server positions may be sparse or duplicated; after
// Load they never are.
func (m *VideoManager) Load(ctx context.Context) error {
	videos, err := m.api.GetAllVideos(ctx)
	if err != nil {
		return fmt.Errorf("load videos: %w", err)
	}
	m.collection = ordering.NewCollection(videos, 0)
	return nil
}

// Videos returns the current ordered view.
func (m *VideoManager) Videos() []*models.Video {
	if m.collection == nil {
		return nil
	}
	return m.collection.Items()
}

// Busy reports whether a persist cycle is in flight.
func (m *VideoManager) Busy() bool { return m.busy.Busy() }

// StartDrag begins a drag gesture on the given video. Rejected while a
// persist cycle is in flight.
func (m *VideoManager) StartDrag(id string) error {
	if m.collection == nil {
		return ErrNotLoaded
	}
	if m.busy.Busy() {
		return ErrReorderInProgress
	}
	if m.collection.IndexOf(id) < 0 {
		return fmt.Errorf("unknown video %q", id)
	}
	return m.session.Start(id)
}

// CancelDrag aborts the active gesture with no side effects.
func (m *VideoManager) CancelDrag() { m.session.Cancel() }

// HandleDrop completes the active gesture. A drop with no target (dst < 0)
// or onto its own slot is a cancel. Otherwise the collection is reordered
// optimistically, the full ID sequence is persisted in one call, and a
// persist failure rolls the view back to server truth via a fresh fetch.
func (m *VideoManager) HandleDrop(ctx context.Context, src, dst int) error {
	if m.collection == nil {
		return ErrNotLoaded
	}
	mutate, err := m.session.Drop(src, dst)
	if err != nil {
		return err
	}
	if !mutate {
		return nil
	}

	if !m.busy.tryAcquire() {
		return ErrReorderInProgress
	}
	defer m.busy.release()

	if err := m.collection.Move(src, dst); err != nil {
		return err
	}

	r := &ordering.Reconciler[*models.Video]{
		Persist: func(ctx context.Context, items []*models.Video) error {
			ids := make([]string, len(items))
			for i, v := range items {
				ids[i] = v.ID
			}
			return m.api.ReorderVideos(ctx, ids)
		},
		Fetch:      m.api.GetAllVideos,
		Notifier:   m.notifier,
		SuccessMsg: "Videos reordered successfully",
		ErrorMsg:   "Failed to reorder videos",
	}
	err = r.Sync(ctx, m.collection)
	metrics.RecordReorder("videos", err)
	return err
}

// Create persists a new video and appends it to the end of the local order.
func (m *VideoManager) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	if m.collection == nil {
		return nil, ErrNotLoaded
	}
	created, err := m.api.CreateVideo(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	m.collection.Push(created)
	return created, nil
}

// Delete removes a video remotely and locally; the survivors are renumbered
// so positions stay contiguous.
func (m *VideoManager) Delete(ctx context.Context, id string) error {
	if m.collection == nil {
		return ErrNotLoaded
	}
	if err := m.api.DeleteVideo(ctx, id); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	m.collection.Remove(id)
	return nil
}
