// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package api

import (
	"errors"
	"net/http"

	"github.com/contentforge/contentforge/internal/auth"
	"github.com/contentforge/contentforge/internal/logging"
	"github.com/contentforge/contentforge/internal/models"
)

// GetOrganization returns the site-wide organization settings singleton.
func (rt *Router) GetOrganization(w http.ResponseWriter, r *http.Request) {
	org, err := rt.store.GetOrganization()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondRaw(w, http.StatusOK, org)
}

// SaveOrganization replaces the organization settings singleton.
func (rt *Router) SaveOrganization(w http.ResponseWriter, r *http.Request) {
	var org models.Organization
	if !decodeRequest(w, r, &org) {
		return
	}
	if !validateRequest(w, &org) {
		return
	}
	if err := rt.store.SaveOrganization(&org); err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, &org)
}

// TotalCounts returns per-collection document totals for the dashboard
// landing page.
func (rt *Router) TotalCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := rt.store.TotalCounts()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, counts)
}

// CountryAnalytics returns the per-country visit rows.
func (rt *Router) CountryAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := rt.store.ListCountryStats()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if stats == nil {
		stats = []*models.CountryStat{}
	}
	respondSuccess(w, http.StatusOK, stats)
}

// Login validates admin credentials and issues a bearer token. Failures are
// indistinguishable between unknown user and wrong password.
func (rt *Router) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	if err := rt.creds.Validate(req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logging.Ctx(r.Context()).Warn().Str("username", sanitizeLogValue(req.Username)).Msg("Login rejected")
			respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "Invalid username or password", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "AUTHENTICATION_ERROR", "Authentication failed", err)
		return
	}

	token, err := rt.jwt.GenerateToken(req.Username, "admin")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token", err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("username", sanitizeLogValue(req.Username)).Msg("Admin logged in")
	respondSuccess(w, http.StatusOK, models.LoginResponse{Token: token, Role: "admin"})
}
