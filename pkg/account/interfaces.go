// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/brucewavesmarket/saas-starter/internal/types"
)

type SignUpParams struct {
	Email        string
	Password     string
	InvitationID *int64
	IPAddress    *string
}

type SignUpResult struct {
	UserID       string
	SessionToken string
	TeamID       int64
}

type SignInResult struct {
	UserID       string
	SessionToken string
	TeamID       int64
}

// RecoveryResult carries a one-time recovery link and code issued for a
// locked-out account.
type RecoveryResult struct {
	Link string
	Code string
}

type ServiceInterface interface {
	SignUp(ctx context.Context, params SignUpParams) (*SignUpResult, error)
	SignIn(ctx context.Context, email, password string, ipAddress *string) (*SignInResult, error)
	SignOut(ctx context.Context, userID, sessionToken string, ipAddress *string) error
	CurrentProfile(ctx context.Context, userID string) (*types.Profile, error)
	UpdateAccount(ctx context.Context, userID, name string, ipAddress *string) error
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string, ipAddress *string) error
	DeleteAccount(ctx context.Context, userID, password string, ipAddress *string) error
	CreateRecovery(ctx context.Context, email string) (*RecoveryResult, error)
}

type StoreInterface interface {
	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	GetProfileByID(ctx context.Context, id string) (*types.Profile, error)
	UpdateProfileName(ctx context.Context, id, name string) error
	SoftDeleteProfile(ctx context.Context, id string) error
	DeleteProfile(ctx context.Context, id string) error

	CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error)
	AddMember(ctx context.Context, teamID int64, profileID, role string) (int64, error)
	GetMembershipByProfileID(ctx context.Context, profileID string) (*types.Membership, error)
	RemoveMember(ctx context.Context, teamID int64, profileID string) error

	GetInvitationByID(ctx context.Context, id int64) (*types.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id int64, status string) error
}

type IdentityProviderInterface interface {
	SignUp(ctx context.Context, email, password string) (string, string, error)
	SignIn(ctx context.Context, email, password string) (string, string, error)
	SignOut(ctx context.Context, sessionToken string) error
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	UpdatePassword(ctx context.Context, identityID, newPassword string) error
	DeleteIdentity(ctx context.Context, id string) error
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

type ActivityRecorderInterface interface {
	Record(ctx context.Context, teamID int64, profileID *string, action string, ipAddress *string)
}
