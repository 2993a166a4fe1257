// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brucewavesmarket/saas-starter/internal/authorization"
	types "github.com/brucewavesmarket/saas-starter/internal/http/types"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/pkg/authentication"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/activity", a.handleList)
	mux.Delete("/api/v0/activity", a.handleClear)
}

type entryResponse struct {
	ID         int64   `json:"id"`
	TeamID     int64   `json:"team_id"`
	ProfileID  *string `json:"profile_id"`
	Action     string  `json:"action"`
	OccurredAt string  `json:"occurred_at"`
	IPAddress  *string `json:"ip_address"`
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	entries, err := a.service.List(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authorization.ErrNoTeam) {
			types.WriteJSON(w, http.StatusOK, []entryResponse{})
			return
		}
		a.logger.Errorf("Failed to list activity: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to list activity", nil)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, entryResponse{
			ID:         e.ID,
			TeamID:     e.TeamID,
			ProfileID:  e.ProfileID,
			Action:     e.Action,
			OccurredAt: e.OccurredAt.Format(time.RFC3339),
			IPAddress:  e.IPAddress,
		})
	}

	types.WriteJSON(w, http.StatusOK, resp)
}

func (a *API) handleClear(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	err := a.service.Clear(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, authorization.ErrNoTeam):
			types.WriteError(w, http.StatusNotFound, "user is not part of a team", nil)
		case errors.Is(err, authorization.ErrForbidden):
			types.WriteError(w, http.StatusForbidden, "only the team owner can clear the activity log", nil)
		default:
			a.logger.Errorf("Failed to clear activity: %v", err)
			types.WriteError(w, http.StatusInternalServerError, "failed to clear activity", nil)
		}
		return
	}

	types.WriteSuccess(w, "Activity log cleared.", nil)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
