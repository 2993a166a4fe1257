// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks receives provisioning callbacks from the identity
// provider. Kratos calls the registration hook after a self-service
// registration so identities created outside our own sign-up endpoint still
// get a profile and a team.
package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/storage"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store    StoreInterface
	activity ActivityRecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ProvisionIdentity is idempotent: a profile that already exists means a
// previous delivery of the same hook succeeded, so it reports success.
func (s *Service) ProvisionIdentity(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.ProvisionIdentity")
	defer span.End()

	_, err := s.store.CreateProfile(ctx, &types.Profile{ID: identityID, Role: types.RoleMember})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Debugf("Profile %s already provisioned", identityID)
			return nil
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	var teamID int64

	inv, err := s.store.FindPendingInvitationByEmail(ctx, email)
	switch {
	case err == nil:
		if _, err := s.store.AddMember(ctx, inv.TeamID, identityID, inv.Role); err != nil {
			return fmt.Errorf("failed to join team: %w", err)
		}
		if err := s.store.UpdateInvitationStatus(ctx, inv.ID, types.InvitationAccepted); err != nil {
			return fmt.Errorf("failed to accept invitation: %w", err)
		}
		teamID = inv.TeamID
		s.activity.Record(ctx, teamID, &identityID, types.ActionAcceptInvitation, nil)
	case errors.Is(err, storage.ErrNotFound):
		team, err := s.store.CreateTeam(ctx, &types.Team{Name: fmt.Sprintf("%s's Team", email)})
		if err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		if _, err := s.store.AddMember(ctx, team.ID, identityID, types.RoleOwner); err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}
		teamID = team.ID
		s.activity.Record(ctx, teamID, &identityID, types.ActionCreateTeam, nil)
	default:
		return fmt.Errorf("failed to look up invitations: %w", err)
	}

	s.activity.Record(ctx, teamID, &identityID, types.ActionSignUp, nil)

	return nil
}

func NewService(store StoreInterface, activity ActivityRecorderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.activity = activity
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
