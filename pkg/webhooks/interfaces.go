// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/brucewavesmarket/saas-starter/internal/types"
)

type ServiceInterface interface {
	// ProvisionIdentity creates the application-side profile for a freshly
	// registered identity and settles it into a team.
	ProvisionIdentity(ctx context.Context, identityID, email string) error
}

type StoreInterface interface {
	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error)
	AddMember(ctx context.Context, teamID int64, profileID, role string) (int64, error)
	FindPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id int64, status string) error
}

type ActivityRecorderInterface interface {
	Record(ctx context.Context, teamID int64, profileID *string, action string, ipAddress *string)
}
