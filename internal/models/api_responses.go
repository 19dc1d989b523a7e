// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package models

import "time"

// APIResponse is the standard response wrapper for mutating endpoints.
//
// Status is "success" or "error". Collection GET endpoints that predate the
// wrapper (videos, org settings) return their payload bare; the FAQ list uses
// the legacy {success, data} envelope (see FAQListResponse).
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response generation metadata.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// APIError is a structured error payload.
//
// Common codes: VALIDATION_ERROR, NOT_FOUND, AUTHENTICATION_ERROR,
// STORE_ERROR, HOME_FAQ_LIMIT.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// FAQListResponse is the envelope the dashboard expects from GET /qna/get-faqs.
type FAQListResponse struct {
	Success bool   `json:"success"`
	Data    []*FAQ `json:"data"`
	Message string `json:"message,omitempty"`
}

// ReorderVideosRequest is the body of PUT /youtube/youtube-videos/reorder.
// The server infers each video's position from its index in VideoIDs.
type ReorderVideosRequest struct {
	VideoIDs []string `json:"videoIds" validate:"required,min=1,dive,required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed token for an authenticated admin.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
