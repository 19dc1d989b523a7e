// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/contentforge/contentforge/internal/config"
	"github.com/contentforge/contentforge/internal/models"
	"github.com/contentforge/contentforge/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{InMemory: true},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret-at-least-32-characters-long",
			SessionTimeout:    time.Hour,
			AdminUsername:     "admin",
			AdminPassword:     "test-admin-password",
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
		},
	}
}

type testServer struct {
	router  *Router
	handler http.Handler
	store   *store.Store
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := testConfig()

	s, err := store.Open(&cfg.Store)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	rt, err := NewRouter(cfg, s)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	token, err := rt.jwt.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	return &testServer{router: rt, handler: rt.Setup(), store: s, token: token}
}

// do issues an authenticated request against the router.
func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return ts.request(t, method, path, body, ts.token)
}

// doAnon issues a request without credentials.
func (ts *testServer) doAnon(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return ts.request(t, method, path, body, "")
}

func (ts *testServer) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestRouter_Health(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.doAnon(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRouter_MutationsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/youtube/youtube-videos/reorder"},
		{http.MethodPost, "/youtube/create-videos"},
		{http.MethodDelete, "/youtube/delete-youtube-video/x"},
		{http.MethodPost, "/qna/create-faq"},
		{http.MethodPut, "/qna/update-faq/x"},
		{http.MethodDelete, "/qna/delete-faq/x"},
		{http.MethodPost, "/blog/create-blog"},
		{http.MethodPost, "/casestudy/create-case-study"},
		{http.MethodPut, "/career/update-career/x"},
		{http.MethodPost, "/service/create-service"},
		{http.MethodPut, "/social/update-social/x"},
		{http.MethodPost, "/contents/testimonial"},
		{http.MethodPost, "/organization/settings"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := ts.doAnon(t, tc.method, tc.path, map[string]string{})
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRouter_ReadsArePublic(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/youtube/get-all-youtube-videos",
		"/qna/get-faqs",
		"/blog/get-all-blogs",
		"/casestudy/get-all-casestudy",
		"/career/get-all-career",
		"/social/get-social",
		"/organization/settings",
		"/stats/total-counts",
		"/stats/country-analytics",
	} {
		t.Run(path, func(t *testing.T) {
			rec := ts.doAnon(t, http.MethodGet, path, nil)
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", rec.Code)
			}
		})
	}
}

func TestRouter_Login(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doAnon(t, http.MethodPost, "/auth/login", models.LoginRequest{
		Username: "admin",
		Password: "test-admin-password",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status string               `json:"status"`
		Data   models.LoginResponse `json:"data"`
	}
	decodeResponse(t, rec, &resp)
	if resp.Status != "success" || resp.Data.Token == "" || resp.Data.Role != "admin" {
		t.Errorf("response = %+v", resp)
	}

	// The issued token actually works on a protected route.
	rec = ts.request(t, http.MethodPost, "/blog/create-blog", models.Blog{
		Title: "hello", Content: "world", Author: "n",
	}, resp.Data.Token)
	if rec.Code != http.StatusCreated {
		t.Errorf("status with issued token = %d, want 201", rec.Code)
	}
}

func TestRouter_LoginRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	cases := []models.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "nobody", Password: "test-admin-password"},
	}
	for _, tc := range cases {
		rec := ts.doAnon(t, http.MethodPost, "/auth/login", tc)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("login %q: status = %d, want 401", tc.Username, rec.Code)
		}
	}
}

func TestRouter_OrganizationRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/organization/settings", models.Organization{
		Email: "hello@example.com", Location: "Oslo",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = ts.doAnon(t, http.MethodGet, "/organization/settings", nil)
	var org models.Organization
	decodeResponse(t, rec, &org)
	if org.Email != "hello@example.com" || org.Location != "Oslo" {
		t.Errorf("org = %+v", org)
	}
}

func TestRouter_ServiceByTitle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/service/create-service", models.Service{
		Title: "Branding", ShortDescription: "identity work",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = ts.doAnon(t, http.MethodGet, "/service/get-service-by-title/Branding", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var svc models.Service
	decodeResponse(t, rec, &svc)
	if svc.ShortDescription != "identity work" {
		t.Errorf("svc = %+v", svc)
	}

	rec = ts.doAnon(t, http.MethodGet, "/service/get-service-by-title/Nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing service status = %d, want 404", rec.Code)
	}
}
