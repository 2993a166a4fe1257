// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/brucewavesmarket/saas-starter/internal/db"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go

func newTestMiddleware(verifier TokenVerifierInterface) *Middleware {
	return NewMiddleware(
		verifier,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(""),
		logging.NewNoopLogger(),
	)
}

func TestMiddleware_Authenticate(t *testing.T) {
	testCases := []struct {
		name           string
		setupRequest   func(*http.Request)
		setupMocks     func(*MockTokenVerifierInterface)
		expectedStatus int
		expectedUserID string
	}{
		{
			name:         "bearer token",
			setupRequest: func(r *http.Request) { r.Header.Set("Authorization", "Bearer token-1") },
			setupMocks: func(verifier *MockTokenVerifierInterface) {
				verifier.EXPECT().VerifyToken(gomock.Any(), "token-1").Return("identity-123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "identity-123",
		},
		{
			name:         "session token header",
			setupRequest: func(r *http.Request) { r.Header.Set("X-Session-Token", "token-2") },
			setupMocks: func(verifier *MockTokenVerifierInterface) {
				verifier.EXPECT().VerifyToken(gomock.Any(), "token-2").Return("identity-123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "identity-123",
		},
		{
			name: "session cookie",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "token-3"})
			},
			setupMocks: func(verifier *MockTokenVerifierInterface) {
				verifier.EXPECT().VerifyToken(gomock.Any(), "token-3").Return("identity-123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "identity-123",
		},
		{
			name:           "missing token",
			setupRequest:   func(r *http.Request) {},
			setupMocks:     func(verifier *MockTokenVerifierInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:         "invalid token",
			setupRequest: func(r *http.Request) { r.Header.Set("Authorization", "Bearer expired") },
			setupMocks: func(verifier *MockTokenVerifierInterface) {
				verifier.EXPECT().VerifyToken(gomock.Any(), "expired").Return("", errors.New("session expired"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			verifier := NewMockTokenVerifierInterface(ctrl)
			tc.setupMocks(verifier)

			var gotUserID, gotIdentity string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = GetUserID(r.Context())
				gotIdentity = db.IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/account", nil)
			tc.setupRequest(req)
			rec := httptest.NewRecorder()

			newTestMiddleware(verifier).Authenticate(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if gotUserID != tc.expectedUserID {
				t.Fatalf("expected user id %q, got %q", tc.expectedUserID, gotUserID)
			}
			if gotIdentity != tc.expectedUserID {
				t.Fatalf("expected database identity %q, got %q", tc.expectedUserID, gotIdentity)
			}
		})
	}
}

func TestMiddleware_MaybeAuthenticate(t *testing.T) {
	testCases := []struct {
		name           string
		setupRequest   func(*http.Request)
		setupMocks     func(*MockTokenVerifierInterface)
		expectedUserID string
	}{
		{
			name:         "anonymous request passes through",
			setupRequest: func(r *http.Request) {},
			setupMocks:   func(verifier *MockTokenVerifierInterface) {},
		},
		{
			name:         "valid token resolves the caller",
			setupRequest: func(r *http.Request) { r.Header.Set("Authorization", "Bearer token-1") },
			setupMocks: func(verifier *MockTokenVerifierInterface) {
				verifier.EXPECT().VerifyToken(gomock.Any(), "token-1").Return("identity-123", nil)
			},
			expectedUserID: "identity-123",
		},
		{
			name:         "invalid token is treated as anonymous",
			setupRequest: func(r *http.Request) { r.Header.Set("Authorization", "Bearer expired") },
			setupMocks: func(verifier *MockTokenVerifierInterface) {
				verifier.EXPECT().VerifyToken(gomock.Any(), "expired").Return("", errors.New("session expired"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			verifier := NewMockTokenVerifierInterface(ctrl)
			tc.setupMocks(verifier)

			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/signup", nil)
			tc.setupRequest(req)
			rec := httptest.NewRecorder()

			newTestMiddleware(verifier).MaybeAuthenticate(next).ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}
			if gotUserID != tc.expectedUserID {
				t.Fatalf("expected user id %q, got %q", tc.expectedUserID, gotUserID)
			}
		})
	}
}
