// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/brucewavesmarket/saas-starter/internal/authorization"
	types "github.com/brucewavesmarket/saas-starter/internal/http/types"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/storage"
	domaintypes "github.com/brucewavesmarket/saas-starter/internal/types"
	"github.com/brucewavesmarket/saas-starter/pkg/authentication"
)

type API struct {
	service ServiceInterface

	validate *validator.Validate
	logger   logging.LoggerInterface
}

// RegisterEndpoints registers routes reachable without a session.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/team/join", a.handleJoinRequest)
}

// RegisterProtectedEndpoints registers session-scoped team routes.
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Get("/api/v0/team", a.handleGetTeam)
	mux.Get("/api/v0/team/invitations", a.handleListInvitations)
	mux.Post("/api/v0/team/invitations", a.handleInvite)
	mux.Delete("/api/v0/team/invitations/{id}", a.handleCancelInvitation)
	mux.Post("/api/v0/team/invitations/{id}/accept", a.handleAcceptInvitation)
	mux.Post("/api/v0/team/invitations/{id}/approve", a.handleApproveRequest)
	mux.Delete("/api/v0/team/members/{profileID}", a.handleRemoveMember)
	mux.Post("/api/v0/team/invite-code", a.handleRotateInviteCode)
}

// RegisterAdminEndpoints registers the operator surface, guarded by JWT
// auth rather than a user session.
func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Delete("/api/v0/admin/teams/{id}", a.handleDeleteTeam)
}

type teamResponse struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	PlanName           *string          `json:"plan_name"`
	SubscriptionStatus *string          `json:"subscription_status"`
	InviteCode         *string          `json:"invite_code,omitempty"`
	Role               string           `json:"role"`
	Members            []memberResponse `json:"members"`
}

type memberResponse struct {
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	JoinedAt  string `json:"joined_at"`
}

func (a *API) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	result, err := a.service.ResolveTeam(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authorization.ErrNoTeam) {
			types.WriteJSON(w, http.StatusOK, nil)
			return
		}
		a.logger.Errorf("Failed to resolve team: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to load team", nil)
		return
	}

	resp := teamResponse{
		ID:                 result.Team.ID,
		Name:               result.Team.Name,
		PlanName:           result.Team.PlanName,
		SubscriptionStatus: result.Team.SubscriptionStatus,
		Role:               result.Role,
		Members:            make([]memberResponse, 0, len(result.Members)),
	}

	// The invite code is only shown to the owner.
	if result.Role == domaintypes.RoleOwner {
		resp.InviteCode = result.Team.InviteCode
	}

	for _, m := range result.Members {
		resp.Members = append(resp.Members, memberResponse{
			ProfileID: m.ProfileID,
			Name:      m.Name,
			Email:     m.Email,
			Role:      m.Role,
			JoinedAt:  m.JoinedAt.Format(time.RFC3339),
		})
	}

	types.WriteJSON(w, http.StatusOK, resp)
}

type invitationResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	InvitedBy *string `json:"invited_by"`
	InvitedAt string  `json:"invited_at"`
	Status    string  `json:"status"`
}

func (a *API) handleListInvitations(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	invitations, err := a.service.ListInvitations(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authorization.ErrNoTeam) {
			types.WriteJSON(w, http.StatusOK, []invitationResponse{})
			return
		}
		a.logger.Errorf("Failed to list invitations: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to list invitations", nil)
		return
	}

	resp := make([]invitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		resp = append(resp, invitationResponse{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      inv.Role,
			InvitedBy: inv.InvitedBy,
			InvitedAt: inv.InvitedAt.Format(time.RFC3339),
			Status:    inv.Status,
		})
	}

	types.WriteJSON(w, http.StatusOK, resp)
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"required,oneof=member owner"`
}

func (a *API) handleInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	req := new(inviteRequest)
	if err := types.DecodeJSON(r, req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	fields := map[string]string{"email": req.Email, "role": req.Role}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "a valid email and a role of member or owner are required", fields)
		return
	}

	_, err := a.service.InviteMember(r.Context(), userID, req.Email, req.Role, types.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, authorization.ErrNoTeam):
			types.WriteError(w, http.StatusNotFound, "user is not part of a team", fields)
		case errors.Is(err, authorization.ErrForbidden):
			types.WriteError(w, http.StatusForbidden, "only the team owner can invite members", fields)
		case errors.Is(err, ErrAlreadyMember):
			types.WriteError(w, http.StatusBadRequest, "That user is already a member of this team.", fields)
		case errors.Is(err, ErrAlreadyInvited):
			types.WriteError(w, http.StatusBadRequest, "An invitation has already been sent to this email.", fields)
		default:
			a.logger.Errorf("Failed to invite member: %v", err)
			types.WriteError(w, http.StatusInternalServerError, "failed to invite member", fields)
		}
		return
	}

	types.WriteSuccess(w, "Invitation sent successfully.", fields)
}

func (a *API) handleCancelInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid invitation id", nil)
		return
	}

	if err := a.service.CancelInvitation(r.Context(), userID, id); err != nil {
		a.writeInvitationError(w, err, "failed to cancel invitation")
		return
	}

	types.WriteSuccess(w, "Invitation cancelled.", nil)
}

func (a *API) handleAcceptInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid invitation id", nil)
		return
	}

	if err := a.service.AcceptInvitation(r.Context(), userID, id, types.ClientIP(r)); err != nil {
		switch {
		case errors.Is(err, ErrEmailMismatch):
			types.WriteError(w, http.StatusForbidden, "This invitation was issued for a different email address.", nil)
		case errors.Is(err, ErrAlreadyMember):
			types.WriteError(w, http.StatusBadRequest, "You are already a member of this team.", nil)
		default:
			a.writeInvitationError(w, err, "failed to accept invitation")
		}
		return
	}

	types.WriteRedirect(w, "/dashboard")
}

func (a *API) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid invitation id", nil)
		return
	}

	if err := a.service.ApproveRequest(r.Context(), userID, id, types.ClientIP(r)); err != nil {
		if errors.Is(err, ErrAlreadyMember) {
			types.WriteError(w, http.StatusBadRequest, "That user is already a member of this team.", nil)
			return
		}
		a.writeInvitationError(w, err, "failed to approve join request")
		return
	}

	types.WriteSuccess(w, "Join request approved.", nil)
}

func (a *API) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	profileID := chi.URLParam(r, "profileID")
	if profileID == "" {
		types.WriteError(w, http.StatusBadRequest, "profile id is required", nil)
		return
	}

	if err := a.service.RemoveMember(r.Context(), userID, profileID, types.ClientIP(r)); err != nil {
		switch {
		case errors.Is(err, authorization.ErrNoTeam):
			types.WriteError(w, http.StatusNotFound, "user is not part of a team", nil)
		case errors.Is(err, authorization.ErrForbidden):
			types.WriteError(w, http.StatusForbidden, "only the team owner can remove other members", nil)
		case errors.Is(err, storage.ErrNotFound):
			types.WriteError(w, http.StatusNotFound, "member not found", nil)
		default:
			a.logger.Errorf("Failed to remove member: %v", err)
			types.WriteError(w, http.StatusInternalServerError, "failed to remove member", nil)
		}
		return
	}

	types.WriteSuccess(w, "Team member removed successfully.", nil)
}

func (a *API) handleRotateInviteCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	code, err := a.service.RotateInviteCode(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, authorization.ErrNoTeam):
			types.WriteError(w, http.StatusNotFound, "user is not part of a team", nil)
		case errors.Is(err, authorization.ErrForbidden):
			types.WriteError(w, http.StatusForbidden, "only the team owner can rotate the invite code", nil)
		default:
			a.logger.Errorf("Failed to rotate invite code: %v", err)
			types.WriteError(w, http.StatusInternalServerError, "failed to rotate invite code", nil)
		}
		return
	}

	types.WriteSuccess(w, "Invite code rotated.", map[string]string{"invite_code": code})
}

type joinRequest struct {
	Code  string `json:"code" validate:"required"`
	Email string `json:"email" validate:"required,email,max=255"`
}

func (a *API) handleJoinRequest(w http.ResponseWriter, r *http.Request) {
	req := new(joinRequest)
	if err := types.DecodeJSON(r, req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	fields := map[string]string{"email": req.Email}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "an invite code and a valid email are required", fields)
		return
	}

	if err := a.service.JoinRequest(r.Context(), req.Code, req.Email); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInviteCode):
			types.WriteError(w, http.StatusNotFound, "Invalid invite code.", fields)
		case errors.Is(err, ErrAlreadyMember):
			types.WriteError(w, http.StatusBadRequest, "That email already belongs to a member of this team.", fields)
		case errors.Is(err, ErrAlreadyInvited):
			types.WriteError(w, http.StatusBadRequest, "An invitation has already been sent to this email.", fields)
		default:
			a.logger.Errorf("Failed to file join request: %v", err)
			types.WriteError(w, http.StatusInternalServerError, "failed to file join request", fields)
		}
		return
	}

	types.WriteSuccess(w, "Join request submitted. The team owner will review it.", fields)
}

func (a *API) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid team id", nil)
		return
	}

	if err := a.service.DeleteTeam(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			types.WriteError(w, http.StatusNotFound, "team not found", nil)
			return
		}
		a.logger.Errorf("Failed to delete team: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to delete team", nil)
		return
	}

	types.WriteSuccess(w, "Team deleted.", nil)
}

func (a *API) writeInvitationError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, authorization.ErrNoTeam):
		types.WriteError(w, http.StatusNotFound, "user is not part of a team", nil)
	case errors.Is(err, authorization.ErrForbidden):
		types.WriteError(w, http.StatusForbidden, "only the team owner can manage invitations", nil)
	case errors.Is(err, ErrInvitationNotFound):
		types.WriteError(w, http.StatusNotFound, "invitation not found or already resolved", nil)
	default:
		a.logger.Errorf("%s: %v", fallback, err)
		types.WriteError(w, http.StatusInternalServerError, fallback, nil)
	}
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New()
	a.logger = logger

	return a
}
