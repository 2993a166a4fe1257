// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	types "github.com/brucewavesmarket/saas-starter/internal/http/types"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/pkg/authentication"
)

// CheckoutInterface lets sign-up hand off to billing when the caller arrived
// from the pricing page.
type CheckoutInterface interface {
	CheckoutURL(ctx context.Context, teamID int64, priceID string) (string, error)
}

type API struct {
	service  ServiceInterface
	checkout CheckoutInterface

	validate *validator.Validate
	logger   logging.LoggerInterface
}

// RegisterEndpoints registers the unauthenticated entry points.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/auth/signup", a.handleSignUp)
	mux.Post("/api/v0/auth/signin", a.handleSignIn)
}

// RegisterProtectedEndpoints registers routes that require a session.
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Post("/api/v0/auth/signout", a.handleSignOut)
	mux.Get("/api/v0/account", a.handleGetAccount)
	mux.Put("/api/v0/account", a.handleUpdateAccount)
	mux.Put("/api/v0/account/password", a.handleUpdatePassword)
	mux.Delete("/api/v0/account", a.handleDeleteAccount)
}

// RegisterAdminEndpoints registers operator-only routes, guarded by the admin
// JWT middleware at the router.
func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Post("/api/v0/admin/accounts/recovery", a.handleCreateRecovery)
}

type signUpRequest struct {
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8,max=100"`
	InvitationID *int64 `json:"inviteId"`
	Redirect     string `json:"redirect"`
	PriceID      string `json:"priceId"`
}

func (a *API) handleSignUp(w http.ResponseWriter, r *http.Request) {
	req := new(signUpRequest)
	if !a.decode(w, r, req) {
		return
	}

	fields := map[string]string{"email": req.Email}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid email or password format", fields)
		return
	}

	result, err := a.service.SignUp(r.Context(), SignUpParams{
		Email:        req.Email,
		Password:     req.Password,
		InvitationID: req.InvitationID,
		IPAddress:    types.ClientIP(r),
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInvitation) {
			types.WriteError(w, http.StatusBadRequest, "Invitation is invalid or has expired.", fields)
			return
		}
		a.logger.Errorf("Sign-up failed: %v", err)
		types.WriteError(w, http.StatusBadRequest, "Failed to create user. Please try again.", fields)
		return
	}

	a.setSessionCookie(w, result.SessionToken)

	if req.Redirect == "checkout" && req.PriceID != "" && a.checkout != nil {
		url, err := a.checkout.CheckoutURL(r.Context(), result.TeamID, req.PriceID)
		if err != nil {
			a.logger.Errorf("Failed to create checkout session after sign-up: %v", err)
			types.WriteRedirect(w, "/pricing")
			return
		}
		types.WriteRedirect(w, url)
		return
	}

	types.WriteRedirect(w, "/dashboard")
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Redirect string `json:"redirect"`
	PriceID  string `json:"priceId"`
}

func (a *API) handleSignIn(w http.ResponseWriter, r *http.Request) {
	req := new(signInRequest)
	if !a.decode(w, r, req) {
		return
	}

	fields := map[string]string{"email": req.Email}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid email or password format", fields)
		return
	}

	result, err := a.service.SignIn(r.Context(), req.Email, req.Password, types.ClientIP(r))
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			types.WriteError(w, http.StatusUnauthorized, "Invalid email or password. Please try again.", fields)
			return
		}
		a.logger.Errorf("Sign-in failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "Sign-in failed. Please try again.", fields)
		return
	}

	a.setSessionCookie(w, result.SessionToken)

	if req.Redirect == "checkout" && req.PriceID != "" && a.checkout != nil && result.TeamID != 0 {
		url, err := a.checkout.CheckoutURL(r.Context(), result.TeamID, req.PriceID)
		if err != nil {
			a.logger.Errorf("Failed to create checkout session after sign-in: %v", err)
			types.WriteRedirect(w, "/pricing")
			return
		}
		types.WriteRedirect(w, url)
		return
	}

	types.WriteRedirect(w, "/dashboard")
}

func (a *API) handleSignOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	token, _ := authentication.GetSessionToken(r.Context())

	if err := a.service.SignOut(r.Context(), userID, token, types.ClientIP(r)); err != nil {
		a.logger.Errorf("Sign-out failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to sign out", nil)
		return
	}

	a.clearSessionCookie(w)
	types.WriteRedirect(w, "/sign-in")
}

type profileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (a *API) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	p, err := a.service.CurrentProfile(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("Failed to load profile: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to load account", nil)
		return
	}

	if p == nil {
		types.WriteError(w, http.StatusNotFound, "account not found", nil)
		return
	}

	types.WriteJSON(w, http.StatusOK, profileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Role:      p.Role,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	})
}

type updateAccountRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (a *API) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	req := new(updateAccountRequest)
	if !a.decode(w, r, req) {
		return
	}

	fields := map[string]string{"name": req.Name}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "name is required and must be at most 100 characters", fields)
		return
	}

	if err := a.service.UpdateAccount(r.Context(), userID, req.Name, types.ClientIP(r)); err != nil {
		a.logger.Errorf("Failed to update account: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to update account", fields)
		return
	}

	types.WriteSuccess(w, "Account updated successfully.", fields)
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=8,max=100"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func (a *API) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	req := new(updatePasswordRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "passwords must be 8-100 characters and match", nil)
		return
	}

	if req.CurrentPassword == req.NewPassword {
		types.WriteError(w, http.StatusBadRequest, "New password must be different from the current password.", nil)
		return
	}

	if err := a.service.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword, types.ClientIP(r)); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			types.WriteError(w, http.StatusBadRequest, "Current password is incorrect.", nil)
			return
		}
		a.logger.Errorf("Failed to update password: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to update password", nil)
		return
	}

	types.WriteSuccess(w, "Password updated successfully.", nil)
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required,min=8,max=100"`
}

func (a *API) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	req := new(deleteAccountRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "password is required", nil)
		return
	}

	if err := a.service.DeleteAccount(r.Context(), userID, req.Password, types.ClientIP(r)); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			types.WriteError(w, http.StatusBadRequest, "Incorrect password. Account deletion failed.", nil)
			return
		}
		a.logger.Errorf("Failed to delete account: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to delete account", nil)
		return
	}

	a.clearSessionCookie(w)
	types.WriteRedirect(w, "/sign-in")
}

type createRecoveryRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

func (a *API) handleCreateRecovery(w http.ResponseWriter, r *http.Request) {
	req := new(createRecoveryRequest)
	if !a.decode(w, r, req) {
		return
	}

	fields := map[string]string{"email": req.Email}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "a valid email is required", fields)
		return
	}

	result, err := a.service.CreateRecovery(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, ErrUnknownEmail) {
			types.WriteError(w, http.StatusNotFound, "no account with this email", fields)
			return
		}
		a.logger.Errorf("Failed to create recovery link: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to create recovery link", fields)
		return
	}

	types.WriteSuccess(w, "Recovery link created.", map[string]string{
		"recovery_link": result.Link,
		"recovery_code": result.Code,
	})
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func (a *API) setSessionCookie(w http.ResponseWriter, token string) {
	if token == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "ory_kratos_session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *API) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "ory_kratos_session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func NewAPI(service ServiceInterface, checkout CheckoutInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.checkout = checkout
	a.validate = validator.New()
	a.logger = logger

	return a
}
