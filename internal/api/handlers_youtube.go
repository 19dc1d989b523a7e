// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/contentforge/contentforge/internal/logging"
	"github.com/contentforge/contentforge/internal/models"
	"github.com/contentforge/contentforge/internal/store"
)

// GetAllVideos returns the gallery with positions normalized to a contiguous
// zero-based sequence. The dashboard renders this array as the drag list.
func (rt *Router) GetAllVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := rt.store.ListVideos()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if videos == nil {
		videos = []*models.Video{}
	}
	respondRaw(w, http.StatusOK, videos)
}

// ReorderVideos applies a full new gallery order in one call. The body
// carries every video ID in final order; position is inferred from the array
// index. A list that does not cover the collection exactly is rejected with
// nothing applied.
func (rt *Router) ReorderVideos(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderVideosRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	if err := rt.store.ReorderVideos(req.VideoIDs); err != nil {
		if errors.Is(err, store.ErrReorderMismatch) {
			respondError(w, http.StatusBadRequest, "REORDER_MISMATCH", err.Error(), nil)
			return
		}
		respondStoreError(w, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int("count", len(req.VideoIDs)).Msg("Videos reordered")
	respondSuccess(w, http.StatusOK, nil)
}

// CreateVideo stores a new video at the end of the gallery.
func (rt *Router) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var v models.Video
	if !decodeRequest(w, r, &v) {
		return
	}
	if !validateRequest(w, &v) {
		return
	}

	if err := rt.store.CreateVideo(&v); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, &v)
}

// UpdateVideo replaces a video's fields. Its gallery position is preserved;
// order changes go through the reorder endpoint.
func (rt *Router) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	var v models.Video
	if !decodeRequest(w, r, &v) {
		return
	}
	v.ID = chi.URLParam(r, "id")
	if !validateRequest(w, &v) {
		return
	}

	if err := rt.store.UpdateVideo(&v); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, &v)
}

// DeleteVideo removes a video; surviving positions are renumbered so the
// gallery stays contiguous.
func (rt *Router) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := rt.store.DeleteVideo(id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}
