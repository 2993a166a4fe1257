// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	types "github.com/brucewavesmarket/saas-starter/internal/http/types"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/webhooks/kratos/registration", a.handleRegistration)
}

// registrationPayload mirrors the body Kratos sends from the
// after-registration web hook, configured with the identity id and email
// traits in the hook's jsonnet mapping.
type registrationPayload struct {
	IdentityID string `json:"identity_id"`
	Email      string `json:"email"`
}

func (a *API) handleRegistration(w http.ResponseWriter, r *http.Request) {
	payload := new(registrationPayload)
	if err := types.DecodeJSON(r, payload); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid payload", nil)
		return
	}

	if payload.IdentityID == "" || payload.Email == "" {
		types.WriteError(w, http.StatusBadRequest, "identity_id and email are required", nil)
		return
	}

	if err := a.service.ProvisionIdentity(r.Context(), payload.IdentityID, payload.Email); err != nil {
		a.logger.Errorf("Failed to provision identity %s: %v", payload.IdentityID, err)
		// Non-2xx makes Kratos abort the registration flow.
		types.WriteError(w, http.StatusInternalServerError, "provisioning failed", nil)
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
