// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"

	"github.com/brucewavesmarket/saas-starter/internal/types"
)

type ServiceInterface interface {
	// ResolveTeam returns the caller's team with its member roster, or nil
	// when the caller belongs to no team.
	ResolveTeam(ctx context.Context, userID string) (*types.TeamWithMembers, error)
	InviteMember(ctx context.Context, userID, email, role string, ipAddress *string) (*types.Invitation, error)
	RemoveMember(ctx context.Context, userID, memberProfileID string, ipAddress *string) error
	ListInvitations(ctx context.Context, userID string) ([]*types.Invitation, error)
	CancelInvitation(ctx context.Context, userID string, invitationID int64) error
	// AcceptInvitation joins the calling, already registered user to the
	// inviting team. The invitation email must match the caller's.
	AcceptInvitation(ctx context.Context, userID string, invitationID int64, ipAddress *string) error
	// ApproveRequest lets an owner act on a join request created through the
	// team invite code.
	ApproveRequest(ctx context.Context, userID string, invitationID int64, ipAddress *string) error
	// JoinRequest files a join request against the team owning the given
	// invite code. No session required.
	JoinRequest(ctx context.Context, code, email string) error
	RotateInviteCode(ctx context.Context, userID string) (string, error)
	// DeleteTeam removes a team and everything hanging off it. Operator
	// surface, not reachable with a user session.
	DeleteTeam(ctx context.Context, teamID int64) error
}

type StoreInterface interface {
	GetProfileByID(ctx context.Context, id string) (*types.Profile, error)

	GetTeamByID(ctx context.Context, id int64) (*types.Team, error)
	GetTeamByInviteCode(ctx context.Context, code string) (*types.Team, error)
	SetTeamInviteCode(ctx context.Context, id int64, code string) error
	DeleteTeam(ctx context.Context, id int64) error

	AddMember(ctx context.Context, teamID int64, profileID, role string) (int64, error)
	ListMembersByTeamID(ctx context.Context, teamID int64) ([]*types.Membership, error)
	RemoveMember(ctx context.Context, teamID int64, profileID string) error

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id int64) (*types.Invitation, error)
	GetPendingInvitation(ctx context.Context, teamID int64, email string) (*types.Invitation, error)
	ListInvitationsByTeamID(ctx context.Context, teamID int64) ([]*types.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id int64, status string) error
}

type AuthorizerInterface interface {
	TeamScope(ctx context.Context, userID string) (*types.Membership, error)
	RequireRole(ctx context.Context, userID, role string) (*types.Membership, error)
}

// IdentityDirectoryInterface joins identity provider emails onto profiles.
type IdentityDirectoryInterface interface {
	EmailsByIdentityID(ctx context.Context) (map[string]string, error)
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
}

type ActivityRecorderInterface interface {
	Record(ctx context.Context, teamID int64, profileID *string, action string, ipAddress *string)
}
