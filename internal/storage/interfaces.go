// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/brucewavesmarket/saas-starter/internal/types"
)

type StorageInterface interface {
	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	GetProfileByID(ctx context.Context, id string) (*types.Profile, error)
	UpdateProfileName(ctx context.Context, id, name string) error
	SoftDeleteProfile(ctx context.Context, id string) error
	DeleteProfile(ctx context.Context, id string) error

	CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error)
	GetTeamByID(ctx context.Context, id int64) (*types.Team, error)
	GetTeamByInviteCode(ctx context.Context, code string) (*types.Team, error)
	GetTeamByStripeCustomerID(ctx context.Context, customerID string) (*types.Team, error)
	UpdateTeamSubscription(ctx context.Context, id int64, sub *types.Team) error
	SetTeamInviteCode(ctx context.Context, id int64, code string) error
	DeleteTeam(ctx context.Context, id int64) error

	AddMember(ctx context.Context, teamID int64, profileID, role string) (int64, error)
	GetMembershipByProfileID(ctx context.Context, profileID string) (*types.Membership, error)
	ListMembersByTeamID(ctx context.Context, teamID int64) ([]*types.Membership, error)
	RemoveMember(ctx context.Context, teamID int64, profileID string) error

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id int64) (*types.Invitation, error)
	GetPendingInvitation(ctx context.Context, teamID int64, email string) (*types.Invitation, error)
	FindPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error)
	ListInvitationsByTeamID(ctx context.Context, teamID int64) ([]*types.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id int64, status string) error

	RecordActivity(ctx context.Context, e *types.ActivityEntry) error
	ListActivityByTeamID(ctx context.Context, teamID int64, limit uint64) ([]*types.ActivityEntry, error)
	DeleteActivityByTeamID(ctx context.Context, teamID int64) error
}
