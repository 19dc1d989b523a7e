// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/contentforge/contentforge/internal/config"
)

func testSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret:      "test-secret-at-least-32-characters-long",
		SessionTimeout: time.Hour,
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m, err := NewJWTManager(testSecurityConfig())
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	token, err := m.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestJWTManager_RejectsEmptySecret(t *testing.T) {
	_, err := NewJWTManager(&config.SecurityConfig{})
	if err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	m1, _ := NewJWTManager(testSecurityConfig())
	m2, _ := NewJWTManager(&config.SecurityConfig{
		JWTSecret:      "a-different-secret-also-32-chars-long!!",
		SessionTimeout: time.Hour,
	})

	token, err := m1.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := m2.ValidateToken(token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	m, _ := NewJWTManager(&config.SecurityConfig{
		JWTSecret:      "test-secret-at-least-32-characters-long",
		SessionTimeout: -time.Minute,
	})

	token, err := m.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expected validation failure for expired token")
	}
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig())
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.ValidateToken(token); err == nil {
			t.Errorf("ValidateToken(%q) succeeded", token)
		}
	}
}

func TestCredentialStore(t *testing.T) {
	s, err := NewCredentialStore("admin", "correct-horse-battery")
	if err != nil {
		t.Fatalf("NewCredentialStore: %v", err)
	}

	if err := s.Validate("admin", "correct-horse-battery"); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if err := s.Validate("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if err := s.Validate("nobody", "correct-horse-battery"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCredentialStore_RejectsWeakSetup(t *testing.T) {
	if _, err := NewCredentialStore("", "longenoughpassword"); err == nil {
		t.Error("expected error for empty username")
	}
	if _, err := NewCredentialStore("admin", "short"); err == nil {
		t.Error("expected error for short password")
	}
}

func TestRequireAuth(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig())
	token, err := m.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotClaims *Claims
	handler := RequireAuth(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotClaims = nil
			req := httptest.NewRequest(http.MethodPut, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusOK {
				if gotClaims == nil || gotClaims.Username != "admin" {
					t.Errorf("claims not attached: %+v", gotClaims)
				}
			}
		})
	}
}
