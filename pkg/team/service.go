// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/storage"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

var (
	ErrAlreadyMember      = errors.New("user is already a member of this team")
	ErrAlreadyInvited     = errors.New("an invitation has already been sent")
	ErrInvitationNotFound = errors.New("invitation not found or already resolved")
	ErrEmailMismatch      = errors.New("invitation was issued for a different email")
	ErrInvalidInviteCode  = errors.New("invalid invite code")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store     StoreInterface
	authz     AuthorizerInterface
	directory IdentityDirectoryInterface
	activity  ActivityRecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ResolveTeam(ctx context.Context, userID string) (*types.TeamWithMembers, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ResolveTeam")
	defer span.End()

	m, err := s.authz.TeamScope(ctx, userID)
	if err != nil {
		return nil, err
	}

	team, err := s.store.GetTeamByID(ctx, m.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	memberships, err := s.store.ListMembersByTeamID(ctx, m.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	// Emails live in the identity provider, not in profiles.
	emails, err := s.directory.EmailsByIdentityID(ctx)
	if err != nil {
		s.logger.Errorf("Failed to list identity emails: %v", err)
		emails = map[string]string{}
	}

	members := make([]*types.TeamMember, 0, len(memberships))
	for _, membership := range memberships {
		member := &types.TeamMember{
			ProfileID: membership.ProfileID,
			Role:      membership.Role,
			JoinedAt:  membership.JoinedAt,
			Email:     emails[membership.ProfileID],
		}
		if p, err := s.store.GetProfileByID(ctx, membership.ProfileID); err == nil {
			member.Name = p.Name
		}
		members = append(members, member)
	}

	return &types.TeamWithMembers{Team: team, Role: m.Role, Members: members}, nil
}

// InviteMember creates a pending invitation. Owners only. Inviting an
// existing member or an already invited email is rejected.
func (s *Service) InviteMember(ctx context.Context, userID, email, role string, ipAddress *string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.InviteMember")
	defer span.End()

	m, err := s.authz.RequireRole(ctx, userID, types.RoleOwner)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	alreadyMember, err := s.isMemberEmail(ctx, m.TeamID, email)
	if err != nil {
		return nil, err
	}
	if alreadyMember {
		return nil, ErrAlreadyMember
	}

	if _, err := s.store.GetPendingInvitation(ctx, m.TeamID, email); err == nil {
		return nil, ErrAlreadyInvited
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}

	inv, err := s.store.CreateInvitation(ctx, &types.Invitation{
		TeamID:    m.TeamID,
		Email:     email,
		Role:      role,
		InvitedBy: &userID,
		Status:    types.InvitationPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.activity.Record(ctx, m.TeamID, &userID, types.ActionInviteMember, ipAddress)

	return inv, nil
}

// RemoveMember removes a member from the caller's team. Owners can remove
// anyone; a member can only remove themselves.
func (s *Service) RemoveMember(ctx context.Context, userID, memberProfileID string, ipAddress *string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.RemoveMember")
	defer span.End()

	var m *types.Membership
	var err error

	if memberProfileID == userID {
		m, err = s.authz.TeamScope(ctx, userID)
	} else {
		m, err = s.authz.RequireRole(ctx, userID, types.RoleOwner)
	}
	if err != nil {
		return err
	}

	if err := s.store.RemoveMember(ctx, m.TeamID, memberProfileID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.activity.Record(ctx, m.TeamID, &userID, types.ActionRemoveMember, ipAddress)

	return nil
}

func (s *Service) ListInvitations(ctx context.Context, userID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListInvitations")
	defer span.End()

	m, err := s.authz.TeamScope(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.store.ListInvitationsByTeamID(ctx, m.TeamID)
}

func (s *Service) CancelInvitation(ctx context.Context, userID string, invitationID int64) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.CancelInvitation")
	defer span.End()

	m, err := s.authz.RequireRole(ctx, userID, types.RoleOwner)
	if err != nil {
		return err
	}

	inv, err := s.store.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to load invitation: %w", err)
	}

	if inv.TeamID != m.TeamID {
		return ErrInvitationNotFound
	}

	if err := s.store.UpdateInvitationStatus(ctx, invitationID, types.InvitationCancelled); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to cancel invitation: %w", err)
	}

	return nil
}

func (s *Service) AcceptInvitation(ctx context.Context, userID string, invitationID int64, ipAddress *string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.AcceptInvitation")
	defer span.End()

	inv, err := s.store.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to load invitation: %w", err)
	}

	if inv.Status != types.InvitationPending {
		return ErrInvitationNotFound
	}

	emails, err := s.directory.EmailsByIdentityID(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve caller email: %w", err)
	}

	if !strings.EqualFold(emails[userID], inv.Email) {
		return ErrEmailMismatch
	}

	if _, err := s.store.AddMember(ctx, inv.TeamID, userID, inv.Role); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return ErrAlreadyMember
		}
		return fmt.Errorf("failed to join team: %w", err)
	}

	if err := s.store.UpdateInvitationStatus(ctx, inv.ID, types.InvitationAccepted); err != nil {
		return fmt.Errorf("failed to resolve invitation: %w", err)
	}

	s.activity.Record(ctx, inv.TeamID, &userID, types.ActionAcceptInvitation, ipAddress)

	return nil
}

// ApproveRequest resolves a join request. If the requester already has an
// account they are added directly, otherwise the request becomes a pending
// invitation they can sign up with.
func (s *Service) ApproveRequest(ctx context.Context, userID string, invitationID int64, ipAddress *string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.ApproveRequest")
	defer span.End()

	m, err := s.authz.RequireRole(ctx, userID, types.RoleOwner)
	if err != nil {
		return err
	}

	inv, err := s.store.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to load invitation: %w", err)
	}

	if inv.TeamID != m.TeamID || inv.Status != types.InvitationRequested {
		return ErrInvitationNotFound
	}

	identityID, err := s.directory.GetIdentityIDByEmail(ctx, inv.Email)
	if err != nil {
		return fmt.Errorf("failed to look up requester: %w", err)
	}

	if identityID == "" {
		return s.store.UpdateInvitationStatus(ctx, inv.ID, types.InvitationPending)
	}

	if _, err := s.store.AddMember(ctx, inv.TeamID, identityID, inv.Role); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return ErrAlreadyMember
		}
		return fmt.Errorf("failed to add requester: %w", err)
	}

	if err := s.store.UpdateInvitationStatus(ctx, inv.ID, types.InvitationAccepted); err != nil {
		return fmt.Errorf("failed to resolve invitation: %w", err)
	}

	s.activity.Record(ctx, inv.TeamID, &identityID, types.ActionAcceptInvitation, ipAddress)

	return nil
}

func (s *Service) JoinRequest(ctx context.Context, code, email string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.JoinRequest")
	defer span.End()

	team, err := s.store.GetTeamByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvalidInviteCode
		}
		return fmt.Errorf("failed to resolve invite code: %w", err)
	}

	email = strings.ToLower(strings.TrimSpace(email))

	alreadyMember, err := s.isMemberEmail(ctx, team.ID, email)
	if err != nil {
		return err
	}
	if alreadyMember {
		return ErrAlreadyMember
	}

	if _, err := s.store.GetPendingInvitation(ctx, team.ID, email); err == nil {
		return ErrAlreadyInvited
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to check pending invitations: %w", err)
	}

	_, err = s.store.CreateInvitation(ctx, &types.Invitation{
		TeamID: team.ID,
		Email:  email,
		Role:   types.RoleMember,
		Status: types.InvitationRequested,
	})
	if err != nil {
		return fmt.Errorf("failed to file join request: %w", err)
	}

	return nil
}

func (s *Service) RotateInviteCode(ctx context.Context, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.RotateInviteCode")
	defer span.End()

	m, err := s.authz.RequireRole(ctx, userID, types.RoleOwner)
	if err != nil {
		return "", err
	}

	code := uuid.NewString()
	if err := s.store.SetTeamInviteCode(ctx, m.TeamID, code); err != nil {
		return "", fmt.Errorf("failed to rotate invite code: %w", err)
	}

	return code, nil
}

func (s *Service) DeleteTeam(ctx context.Context, teamID int64) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.DeleteTeam")
	defer span.End()

	if err := s.store.DeleteTeam(ctx, teamID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}

	s.logger.Infof("Team %d deleted", teamID)

	return nil
}

func (s *Service) isMemberEmail(ctx context.Context, teamID int64, email string) (bool, error) {
	memberships, err := s.store.ListMembersByTeamID(ctx, teamID)
	if err != nil {
		return false, fmt.Errorf("failed to list members: %w", err)
	}

	emails, err := s.directory.EmailsByIdentityID(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list identity emails: %w", err)
	}

	for _, m := range memberships {
		if strings.EqualFold(emails[m.ProfileID], email) {
			return true, nil
		}
	}

	return false, nil
}

func NewService(store StoreInterface, authz AuthorizerInterface, directory IdentityDirectoryInterface, activity ActivityRecorderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.authz = authz
	s.directory = directory
	s.activity = activity
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
