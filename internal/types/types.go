// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Membership roles.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Invitation statuses. Transitions out of pending/requested are one-way.
const (
	InvitationPending   = "pending"
	InvitationRequested = "requested"
	InvitationAccepted  = "accepted"
	InvitationExpired   = "expired"
	InvitationCancelled = "cancelled"
)

// Activity action labels recorded in the audit trail.
const (
	ActionSignUp           = "SIGN_UP"
	ActionSignIn           = "SIGN_IN"
	ActionSignOut          = "SIGN_OUT"
	ActionUpdateAccount    = "UPDATE_ACCOUNT"
	ActionUpdatePassword   = "UPDATE_PASSWORD"
	ActionDeleteAccount    = "DELETE_ACCOUNT"
	ActionCreateTeam       = "CREATE_TEAM"
	ActionInviteMember     = "INVITE_TEAM_MEMBER"
	ActionRemoveMember     = "REMOVE_TEAM_MEMBER"
	ActionAcceptInvitation = "ACCEPT_INVITATION"
)

// Profile is the application-owned row extending a Kratos identity.
// ID equals the Kratos identity id.
type Profile struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type Team struct {
	ID                   int64     `db:"id"`
	Name                 string    `db:"name"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
	StripeCustomerID     *string   `db:"stripe_customer_id"`
	StripeSubscriptionID *string   `db:"stripe_subscription_id"`
	PlanName             *string   `db:"plan_name"`
	SubscriptionStatus   *string   `db:"subscription_status"`
	InviteCode           *string   `db:"invite_code"`
}

type Membership struct {
	ID        int64     `db:"id"`
	ProfileID string    `db:"profile_id"`
	TeamID    int64     `db:"team_id"`
	Role      string    `db:"role"`
	JoinedAt  time.Time `db:"joined_at"`
}

type Invitation struct {
	ID        int64     `db:"id"`
	TeamID    int64     `db:"team_id"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	InvitedBy *string   `db:"invited_by"`
	InvitedAt time.Time `db:"invited_at"`
	Status    string    `db:"status"`
}

type ActivityEntry struct {
	ID         int64     `db:"id"`
	TeamID     int64     `db:"team_id"`
	ProfileID  *string   `db:"profile_id"`
	Action     string    `db:"action"`
	OccurredAt time.Time `db:"occurred_at"`
	IPAddress  *string   `db:"ip_address"`
}

// TeamMember is a membership joined to its profile, with the email joined in
// from the identity provider's user listing.
type TeamMember struct {
	ProfileID string
	Name      string
	Email     string
	Role      string
	JoinedAt  time.Time
}

// TeamWithMembers is the team resolution result for the calling user.
type TeamWithMembers struct {
	Team    *Team
	Role    string
	Members []*TeamMember
}
