// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brucewavesmarket/saas-starter/internal/authorization"
	types "github.com/brucewavesmarket/saas-starter/internal/http/types"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/pkg/authentication"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBody = 1 << 20

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

// RegisterEndpoints registers the webhook and the checkout return URL,
// which are called by Stripe without a user session.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/webhooks/stripe", a.handleWebhook)
	mux.Get("/api/v0/billing/checkout", a.handleCheckoutReturn)
}

// RegisterProtectedEndpoints registers session-scoped billing actions.
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Post("/api/v0/billing/checkout", a.handleCreateCheckout)
	mux.Post("/api/v0/billing/portal", a.handleCreatePortal)
}

func (a *API) handleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, "failed to read payload", nil)
		return
	}

	err = a.service.ProcessWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		a.logger.Errorf("Webhook processing failed: %v", err)
		types.WriteError(w, http.StatusBadRequest, "webhook processing failed", nil)
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (a *API) handleCheckoutReturn(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		types.WriteRedirect(w, "/pricing")
		return
	}

	if err := a.service.FinalizeCheckout(r.Context(), sessionID); err != nil {
		a.logger.Errorf("Failed to finalize checkout: %v", err)
		types.WriteRedirect(w, "/error")
		return
	}

	types.WriteRedirect(w, "/dashboard")
}

type checkoutRequest struct {
	PriceID string `json:"priceId"`
}

func (a *API) handleCreateCheckout(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	req := new(checkoutRequest)
	if err := types.DecodeJSON(r, req); err != nil || req.PriceID == "" {
		types.WriteError(w, http.StatusBadRequest, "priceId is required", nil)
		return
	}

	url, err := a.service.CreateCheckout(r.Context(), userID, req.PriceID)
	if err != nil {
		if errors.Is(err, authorization.ErrNoTeam) {
			types.WriteError(w, http.StatusNotFound, "user is not part of a team", nil)
			return
		}
		a.logger.Errorf("Failed to create checkout: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to start checkout", nil)
		return
	}

	types.WriteRedirect(w, url)
}

func (a *API) handleCreatePortal(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	url, err := a.service.CreatePortal(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, authorization.ErrNoTeam):
			types.WriteError(w, http.StatusNotFound, "user is not part of a team", nil)
		case errors.Is(err, ErrNoCustomer):
			types.WriteRedirect(w, "/pricing")
		default:
			a.logger.Errorf("Failed to create portal session: %v", err)
			types.WriteError(w, http.StatusInternalServerError, "failed to open billing portal", nil)
		}
		return
	}

	types.WriteRedirect(w, url)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
