// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/brucewavesmarket/saas-starter/internal/types"
)

// MembershipReaderInterface is the storage subset the authorizer needs.
type MembershipReaderInterface interface {
	GetMembershipByProfileID(ctx context.Context, profileID string) (*types.Membership, error)
}

type AuthorizerInterface interface {
	TeamScope(ctx context.Context, userID string) (*types.Membership, error)
	RequireRole(ctx context.Context, userID, role string) (*types.Membership, error)
}
