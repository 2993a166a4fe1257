// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"

	"github.com/brucewavesmarket/saas-starter/internal/db"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store StoreInterface
	authz AuthorizerInterface

	listLimit uint64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Record appends an audit entry for the team. The write waits for the
// request transaction to commit so the rows the entry references exist, and
// a rolled-back request leaves no entry behind. Failures are logged, never
// returned: an audit write must not fail the mutation it describes.
func (s *Service) Record(ctx context.Context, teamID int64, profileID *string, action string, ipAddress *string) {
	ctx, span := s.tracer.Start(ctx, "activity.Service.Record")
	defer span.End()

	entry := &types.ActivityEntry{
		TeamID:    teamID,
		ProfileID: profileID,
		Action:    action,
		IPAddress: ipAddress,
	}

	db.AfterCommit(ctx, func(ctx context.Context) {
		if err := s.store.RecordActivity(ctx, entry); err != nil {
			s.logger.Errorf("Failed to record activity %s for team %d: %v", action, teamID, err)
		}
	})
}

// List returns the most recent entries for the caller's team, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*types.ActivityEntry, error) {
	ctx, span := s.tracer.Start(ctx, "activity.Service.List")
	defer span.End()

	m, err := s.authz.TeamScope(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.store.ListActivityByTeamID(ctx, m.TeamID, s.listLimit)
}

// Clear removes the team's audit trail. Owner only.
func (s *Service) Clear(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "activity.Service.Clear")
	defer span.End()

	m, err := s.authz.RequireRole(ctx, userID, types.RoleOwner)
	if err != nil {
		return err
	}

	return s.store.DeleteActivityByTeamID(ctx, m.TeamID)
}

func NewService(store StoreInterface, authz AuthorizerInterface, listLimit uint64, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.authz = authz
	s.listLimit = listLimit
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
