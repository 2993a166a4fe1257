// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"

	"github.com/brucewavesmarket/saas-starter/internal/types"
)

type ServiceInterface interface {
	// Record appends an audit entry. Failures are logged, never returned:
	// the mutation that triggered the entry must not fail because of it.
	Record(ctx context.Context, teamID int64, profileID *string, action string, ipAddress *string)
	List(ctx context.Context, userID string) ([]*types.ActivityEntry, error)
	Clear(ctx context.Context, userID string) error
}

type StoreInterface interface {
	RecordActivity(ctx context.Context, e *types.ActivityEntry) error
	ListActivityByTeamID(ctx context.Context, teamID int64, limit uint64) ([]*types.ActivityEntry, error)
	DeleteActivityByTeamID(ctx context.Context, teamID int64) error
}

type AuthorizerInterface interface {
	TeamScope(ctx context.Context, userID string) (*types.Membership, error)
	RequireRole(ctx context.Context, userID, role string) (*types.Membership, error)
}
