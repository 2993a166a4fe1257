// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"

	stripe "github.com/stripe/stripe-go/v82"

	"github.com/brucewavesmarket/saas-starter/internal/types"
)

type ServiceInterface interface {
	// CheckoutURL starts a subscription checkout for the given team.
	CheckoutURL(ctx context.Context, teamID int64, priceID string) (string, error)
	// CreateCheckout resolves the caller's team first.
	CreateCheckout(ctx context.Context, userID, priceID string) (string, error)
	// CreatePortal opens the customer portal for the caller's team.
	CreatePortal(ctx context.Context, userID string) (string, error)
	// FinalizeCheckout records the customer and subscription created by a
	// completed checkout session.
	FinalizeCheckout(ctx context.Context, sessionID string) error
	// ProcessWebhook verifies and applies a subscription lifecycle event.
	ProcessWebhook(ctx context.Context, payload []byte, signature string) error
}

type StoreInterface interface {
	GetTeamByID(ctx context.Context, id int64) (*types.Team, error)
	GetTeamByStripeCustomerID(ctx context.Context, customerID string) (*types.Team, error)
	UpdateTeamSubscription(ctx context.Context, id int64, sub *types.Team) error
}

type AuthorizerInterface interface {
	TeamScope(ctx context.Context, userID string) (*types.Membership, error)
}

// CheckoutSession is the slice of a completed checkout this service needs.
type CheckoutSession struct {
	CustomerID        string
	SubscriptionID    string
	ClientReferenceID string
}

// PaymentsInterface wraps the payment provider API.
type PaymentsInterface interface {
	CreateCheckoutSession(ctx context.Context, customerID *string, clientReferenceID, priceID string, trialDays int64, successURL, cancelURL string) (string, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error)
	ConstructEvent(payload []byte, signature string) (stripe.Event, error)
}
