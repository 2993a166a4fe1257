// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	portalsession "github.com/stripe/stripe-go/v82/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/subscription"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/brucewavesmarket/saas-starter/internal/tracing"
)

var _ PaymentsInterface = (*Payments)(nil)

// Payments talks to Stripe. Webhook signatures are verified with the
// endpoint secret configured at startup.
type Payments struct {
	webhookSecret string

	tracer tracing.TracingInterface
}

func (p *Payments) CreateCheckoutSession(ctx context.Context, customerID *string, clientReferenceID, priceID string, trialDays int64, successURL, cancelURL string) (string, error) {
	_, span := p.tracer.Start(ctx, "billing.Payments.CreateCheckoutSession")
	defer span.End()

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL:        stripe.String(successURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(clientReferenceID),
		AllowPromotionCodes: stripe.Bool(true),
	}

	if trialDays > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(trialDays),
		}
	}

	if customerID != nil && *customerID != "" {
		params.Customer = customerID
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return s.URL, nil
}

func (p *Payments) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	_, span := p.tracer.Start(ctx, "billing.Payments.CreatePortalSession")
	defer span.End()

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}

	s, err := portalsession.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}

	return s.URL, nil
}

func (p *Payments) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	_, span := p.tracer.Start(ctx, "billing.Payments.GetCheckoutSession")
	defer span.End()

	s, err := checkoutsession.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	result := &CheckoutSession{ClientReferenceID: s.ClientReferenceID}
	if s.Customer != nil {
		result.CustomerID = s.Customer.ID
	}
	if s.Subscription != nil {
		result.SubscriptionID = s.Subscription.ID
	}

	return result, nil
}

func (p *Payments) GetSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error) {
	_, span := p.tracer.Start(ctx, "billing.Payments.GetSubscription")
	defer span.End()

	sub, err := subscription.Get(subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subscription: %w", err)
	}

	return sub, nil
}

func (p *Payments) ConstructEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, p.webhookSecret)
}

func NewPayments(secretKey, webhookSecret string, tracer tracing.TracingInterface) *Payments {
	stripe.Key = secretKey

	return &Payments{
		webhookSecret: webhookSecret,
		tracer:        tracer,
	}
}
