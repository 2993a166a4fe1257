// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/brucewavesmarket/saas-starter/internal/db"
	types "github.com/brucewavesmarket/saas-starter/internal/http/types"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
)

const sessionCookieName = "ory_kratos_session"

type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate rejects requests that do not carry a valid token. The
// resolved user ID and the raw token are stashed on the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
		defer span.End()

		rawToken := tokenFromRequest(r)
		if rawToken == "" {
			m.unauthorized(w, "missing session token")
			return
		}

		userID, err := m.verifier.VerifyToken(ctx, rawToken)
		if err != nil {
			m.logger.Debugf("Token verification failed: %v", err)
			m.logger.Security().AuthFailure("unknown", "invalid session token")
			m.unauthorized(w, "invalid or expired session")
			return
		}

		ctx = WithUserID(ctx, userID)
		ctx = WithSessionToken(ctx, rawToken)
		ctx = db.WithIdentity(ctx, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MaybeAuthenticate resolves the caller when a token is present but lets
// anonymous requests through. Endpoints like invitation sign-up accept both.
func (m *Middleware) MaybeAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.MaybeAuthenticate")
		defer span.End()

		rawToken := tokenFromRequest(r)
		if rawToken == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		userID, err := m.verifier.VerifyToken(ctx, rawToken)
		if err != nil {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		// The identity is not bound to the request transaction here: public
		// endpoints such as sign-up write profiles for identities other than
		// the stale session's.
		ctx = WithUserID(ctx, userID)
		ctx = WithSessionToken(ctx, rawToken)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(types.ActionResponse{Error: msg})
}

// tokenFromRequest extracts the session token from the Authorization header,
// the X-Session-Token header, or the Kratos session cookie, in that order.
func tokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, found := strings.CutPrefix(auth, "Bearer "); found {
			return token
		}
	}

	if token := r.Header.Get("X-Session-Token"); token != "" {
		return token
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.verifier = verifier
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
