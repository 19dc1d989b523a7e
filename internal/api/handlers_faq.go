// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/contentforge/contentforge/internal/models"
	"github.com/contentforge/contentforge/internal/ordering"
)

// GetFAQs returns the full FAQ pool in the legacy {success, data} envelope
// the dashboard reads. Namespacing is the client's concern; the pool is flat.
func (rt *Router) GetFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := rt.store.ListFAQs()
	if err != nil {
		respondRaw(w, http.StatusInternalServerError, models.FAQListResponse{
			Success: false,
			Message: "failed to list faqs",
		})
		return
	}
	if faqs == nil {
		faqs = []*models.FAQ{}
	}
	respondRaw(w, http.StatusOK, models.FAQListResponse{Success: true, Data: faqs})
}

// CreateFAQ stores a new FAQ. The home cap is enforced here as well as in
// the dashboard: a write that would put a fifth FAQ on the home page is
// rejected.
func (rt *Router) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var f models.FAQ
	if !decodeRequest(w, r, &f) {
		return
	}
	if !validateRequest(w, &f) {
		return
	}
	if f.IsHomeFaq && !rt.homeCapAllows(w, "") {
		return
	}

	if err := rt.store.CreateFAQ(&f); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, &f)
}

// UpdateFAQ replaces a stored FAQ, re-validating the home cap when the
// update flags it for the home page.
func (rt *Router) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	var f models.FAQ
	if !decodeRequest(w, r, &f) {
		return
	}
	f.ID = chi.URLParam(r, "id")
	if !validateRequest(w, &f) {
		return
	}
	if f.IsHomeFaq && !rt.homeCapAllows(w, f.ID) {
		return
	}

	if err := rt.store.UpdateFAQ(&f); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, &f)
}

// DeleteFAQ removes an FAQ from the pool.
func (rt *Router) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := rt.store.DeleteFAQ(id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}

// homeCapAllows checks whether another FAQ may join the home page, writing
// the rejection response itself when the cap is hit.
func (rt *Router) homeCapAllows(w http.ResponseWriter, excludeID string) bool {
	n, err := rt.store.CountHomeFAQs(excludeID)
	if err != nil {
		respondStoreError(w, err)
		return false
	}
	if n >= ordering.HomeFAQLimit {
		respondError(w, http.StatusBadRequest, "HOME_FAQ_LIMIT", ordering.ErrHomeFAQLimit.Error(), nil)
		return false
	}
	return true
}
