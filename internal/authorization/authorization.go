// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization resolves the acting team scope for a caller. The
// row-level policies shipped with the schema are deliberately permissive for
// authenticated callers (see migrations), so every cross-tenant decision is
// made here, and the team id is always derived from the caller's own
// membership row, never from client input.
package authorization

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

var (
	ErrNoTeam    = errors.New("user is not a member of any team")
	ErrForbidden = errors.New("user does not have the required role")
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	memberships MembershipReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// TeamScope returns the caller's membership row. ErrNoTeam when the caller
// belongs to no team.
func (a *Authorizer) TeamScope(ctx context.Context, userID string) (*types.Membership, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.TeamScope")
	defer span.End()

	m, err := a.memberships.GetMembershipByProfileID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoTeam
		}
		return nil, fmt.Errorf("failed to resolve team scope: %w", err)
	}

	return m, nil
}

// RequireRole returns the caller's membership if it carries the given role,
// ErrForbidden otherwise.
func (a *Authorizer) RequireRole(ctx context.Context, userID, role string) (*types.Membership, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireRole")
	defer span.End()

	m, err := a.TeamScope(ctx, userID)
	if err != nil {
		return nil, err
	}

	if m.Role != role {
		a.logger.Security().AuthzFailure(userID, "require_role_"+role)
		return nil, ErrForbidden
	}

	return m, nil
}

func NewAuthorizer(memberships MembershipReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.memberships = memberships
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
