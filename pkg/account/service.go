// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brucewavesmarket/saas-starter/internal/db"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/storage"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

var (
	// ErrInvalidCredentials covers every authentication failure so callers
	// cannot distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInvitation  = errors.New("invitation is invalid or has expired")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrUnknownEmail       = errors.New("no account with this email")
)

const recoveryLifetime = "1h"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store    StoreInterface
	idp      IdentityProviderInterface
	activity ActivityRecorderInterface

	invitationLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SignUp provisions a new account. With an invitation the new user joins the
// inviting team with the invited role; without one they get a personal team
// they own. The invitation is validated before the identity is created so a
// stale invite does not leave an orphaned identity behind.
func (s *Service) SignUp(ctx context.Context, params SignUpParams) (*SignUpResult, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.SignUp")
	defer span.End()

	var invitation *types.Invitation
	if params.InvitationID != nil {
		inv, err := s.validInvitation(ctx, *params.InvitationID, params.Email)
		if err != nil {
			return nil, err
		}
		invitation = inv
	}

	identityID, sessionToken, err := s.idp.SignUp(ctx, params.Email, params.Password)
	if err != nil {
		s.logger.Errorf("Identity registration failed for %s: %v", params.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.store.CreateProfile(ctx, &types.Profile{ID: identityID, Role: types.RoleMember}); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	var teamID int64
	if invitation != nil {
		if _, err := s.store.AddMember(ctx, invitation.TeamID, identityID, invitation.Role); err != nil {
			return nil, fmt.Errorf("failed to join team: %w", err)
		}
		if err := s.store.UpdateInvitationStatus(ctx, invitation.ID, types.InvitationAccepted); err != nil {
			return nil, fmt.Errorf("failed to accept invitation: %w", err)
		}
		teamID = invitation.TeamID

		s.activity.Record(ctx, teamID, &identityID, types.ActionAcceptInvitation, params.IPAddress)
	} else {
		team, err := s.store.CreateTeam(ctx, &types.Team{Name: fmt.Sprintf("%s's Team", params.Email)})
		if err != nil {
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
		if _, err := s.store.AddMember(ctx, team.ID, identityID, types.RoleOwner); err != nil {
			return nil, fmt.Errorf("failed to create membership: %w", err)
		}
		teamID = team.ID

		s.activity.Record(ctx, teamID, &identityID, types.ActionCreateTeam, params.IPAddress)
	}

	s.activity.Record(ctx, teamID, &identityID, types.ActionSignUp, params.IPAddress)
	s.logger.Security().AuthSuccess(identityID)

	return &SignUpResult{UserID: identityID, SessionToken: sessionToken, TeamID: teamID}, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string, ipAddress *string) (*SignInResult, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.SignIn")
	defer span.End()

	identityID, sessionToken, err := s.idp.SignIn(ctx, email, password)
	if err != nil {
		s.logger.Security().AuthFailure(email, "invalid credentials")
		return nil, ErrInvalidCredentials
	}

	// A soft deleted profile means the account no longer exists even if the
	// identity lingers in the identity provider.
	if _, err := s.store.GetProfileByID(ctx, identityID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthFailure(email, "account deleted")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	result := &SignInResult{UserID: identityID, SessionToken: sessionToken}

	if m, err := s.store.GetMembershipByProfileID(ctx, identityID); err == nil {
		result.TeamID = m.TeamID
		s.activity.Record(ctx, m.TeamID, &identityID, types.ActionSignIn, ipAddress)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}

	s.logger.Security().AuthSuccess(identityID)

	return result, nil
}

func (s *Service) SignOut(ctx context.Context, userID, sessionToken string, ipAddress *string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.SignOut")
	defer span.End()

	if m, err := s.store.GetMembershipByProfileID(ctx, userID); err == nil {
		s.activity.Record(ctx, m.TeamID, &userID, types.ActionSignOut, ipAddress)
	}

	if err := s.idp.SignOut(ctx, sessionToken); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

// CurrentProfile returns the caller's profile, or nil without error when the
// profile does not exist.
func (s *Service) CurrentProfile(ctx context.Context, userID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.CurrentProfile")
	defer span.End()

	p, err := s.store.GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return p, nil
}

func (s *Service) UpdateAccount(ctx context.Context, userID, name string, ipAddress *string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.UpdateAccount")
	defer span.End()

	if err := s.store.UpdateProfileName(ctx, userID, name); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if m, err := s.store.GetMembershipByProfileID(ctx, userID); err == nil {
		s.activity.Record(ctx, m.TeamID, &userID, types.ActionUpdateAccount, ipAddress)
	}

	return nil
}

// UpdatePassword re-verifies the current password against the identity
// provider before replacing it.
func (s *Service) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string, ipAddress *string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.UpdatePassword")
	defer span.End()

	if err := s.verifyPassword(ctx, userID, currentPassword); err != nil {
		return err
	}

	if err := s.idp.UpdatePassword(ctx, userID, newPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if m, err := s.store.GetMembershipByProfileID(ctx, userID); err == nil {
		s.activity.Record(ctx, m.TeamID, &userID, types.ActionUpdatePassword, ipAddress)
	}

	return nil
}

// DeleteAccount soft deletes the profile and removes the identity. Membership
// removal and the soft delete ride the request transaction, so a failure to
// delete the identity rolls everything back. Once everything has committed
// the tombstone is purged; a failed purge leaves the soft-deleted row, which
// sign-in already treats as deleted.
func (s *Service) DeleteAccount(ctx context.Context, userID, password string, ipAddress *string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.DeleteAccount")
	defer span.End()

	if err := s.verifyPassword(ctx, userID, password); err != nil {
		return err
	}

	var teamID int64
	if m, err := s.store.GetMembershipByProfileID(ctx, userID); err == nil {
		teamID = m.TeamID
		if err := s.store.RemoveMember(ctx, m.TeamID, userID); err != nil {
			return fmt.Errorf("failed to remove membership: %w", err)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to resolve membership: %w", err)
	}

	if err := s.store.SoftDeleteProfile(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if err := s.idp.DeleteIdentity(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	if teamID != 0 {
		s.activity.Record(ctx, teamID, &userID, types.ActionDeleteAccount, ipAddress)
	}

	// The identity is gone, so nothing can reference the profile again.
	// Ordered after the audit record: the purge nulls the entry's actor.
	db.AfterCommit(ctx, func(ctx context.Context) {
		if err := s.store.DeleteProfile(ctx, userID); err != nil {
			s.logger.Errorf("Failed to purge profile %s: %v", userID, err)
		}
	})

	return nil
}

// CreateRecovery issues a one-time recovery link and code for the account
// behind the email. Exposed on the admin surface only: the link grants a
// session without the password.
func (s *Service) CreateRecovery(ctx context.Context, email string) (*RecoveryResult, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.CreateRecovery")
	defer span.End()

	identityID, err := s.idp.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}
	if identityID == "" {
		return nil, ErrUnknownEmail
	}

	link, code, err := s.idp.CreateRecoveryLink(ctx, identityID, recoveryLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to create recovery link: %w", err)
	}

	return &RecoveryResult{Link: link, Code: code}, nil
}

func (s *Service) verifyPassword(ctx context.Context, userID, password string) error {
	identity, err := s.idp.GetIdentity(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get identity: %w", err)
	}

	email := ""
	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		email, _ = traits["email"].(string)
	}
	if email == "" {
		return fmt.Errorf("identity %s has no email trait", userID)
	}

	if _, _, err := s.idp.SignIn(ctx, email, password); err != nil {
		s.logger.Security().AuthFailure(email, "password re-verification failed")
		return ErrWrongPassword
	}

	return nil
}

func (s *Service) validInvitation(ctx context.Context, id int64, email string) (*types.Invitation, error) {
	inv, err := s.store.GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidInvitation
		}
		return nil, fmt.Errorf("failed to load invitation: %w", err)
	}

	if inv.Status != types.InvitationPending {
		return nil, ErrInvalidInvitation
	}

	if !strings.EqualFold(inv.Email, email) {
		return nil, ErrInvalidInvitation
	}

	if s.invitationLifetime > 0 && time.Since(inv.InvitedAt) > s.invitationLifetime {
		if err := s.store.UpdateInvitationStatus(ctx, inv.ID, types.InvitationExpired); err != nil {
			s.logger.Errorf("Failed to expire invitation %d: %v", inv.ID, err)
		}
		return nil, ErrInvalidInvitation
	}

	return inv, nil
}

func NewService(store StoreInterface, idp IdentityProviderInterface, activity ActivityRecorderInterface, invitationLifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.idp = idp
	s.activity = activity
	s.invitationLifetime = invitationLifetime
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
