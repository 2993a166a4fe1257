// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	stripe "github.com/stripe/stripe-go/v82"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

var (
	ErrNoCustomer = errors.New("team has no billing customer yet")
)

var _ ServiceInterface = (*Service)(nil)

type Config struct {
	SuccessURL string
	CancelURL  string
	TrialDays  int64
}

type Service struct {
	store    StoreInterface
	authz    AuthorizerInterface
	payments PaymentsInterface

	config Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CheckoutURL(ctx context.Context, teamID int64, priceID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CheckoutURL")
	defer span.End()

	team, err := s.store.GetTeamByID(ctx, teamID)
	if err != nil {
		return "", fmt.Errorf("failed to load team: %w", err)
	}

	return s.payments.CreateCheckoutSession(
		ctx,
		team.StripeCustomerID,
		strconv.FormatInt(team.ID, 10),
		priceID,
		s.config.TrialDays,
		s.config.SuccessURL,
		s.config.CancelURL,
	)
}

func (s *Service) CreateCheckout(ctx context.Context, userID, priceID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CreateCheckout")
	defer span.End()

	m, err := s.authz.TeamScope(ctx, userID)
	if err != nil {
		return "", err
	}

	return s.CheckoutURL(ctx, m.TeamID, priceID)
}

func (s *Service) CreatePortal(ctx context.Context, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CreatePortal")
	defer span.End()

	m, err := s.authz.TeamScope(ctx, userID)
	if err != nil {
		return "", err
	}

	team, err := s.store.GetTeamByID(ctx, m.TeamID)
	if err != nil {
		return "", fmt.Errorf("failed to load team: %w", err)
	}

	if team.StripeCustomerID == nil || *team.StripeCustomerID == "" {
		return "", ErrNoCustomer
	}

	return s.payments.CreatePortalSession(ctx, *team.StripeCustomerID, s.config.SuccessURL)
}

// FinalizeCheckout runs when Stripe redirects back after a completed
// checkout. The team id travels through the session's client reference.
func (s *Service) FinalizeCheckout(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.FinalizeCheckout")
	defer span.End()

	session, err := s.payments.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.ClientReferenceID == "" {
		return fmt.Errorf("checkout session %s carries no client reference", sessionID)
	}

	teamID, err := strconv.ParseInt(session.ClientReferenceID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid client reference %q: %w", session.ClientReferenceID, err)
	}

	if session.SubscriptionID == "" {
		return fmt.Errorf("checkout session %s has no subscription", sessionID)
	}

	sub, err := s.payments.GetSubscription(ctx, session.SubscriptionID)
	if err != nil {
		return err
	}

	update := subscriptionUpdate(sub)
	update.StripeCustomerID = &session.CustomerID

	if err := s.store.UpdateTeamSubscription(ctx, teamID, update); err != nil {
		return fmt.Errorf("failed to store subscription: %w", err)
	}

	s.logger.Infof("Checkout completed for team %d, subscription %s", teamID, session.SubscriptionID)

	return nil
}

// ProcessWebhook applies subscription lifecycle events. Only subscription
// updates and deletions are handled; everything else is acknowledged and
// dropped.
func (s *Service) ProcessWebhook(ctx context.Context, payload []byte, signature string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.ProcessWebhook")
	defer span.End()

	event, err := s.payments.ConstructEvent(payload, signature)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	switch event.Type {
	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to parse subscription event: %w", err)
		}
		return s.applySubscriptionChange(ctx, &sub)
	default:
		s.logger.Debugf("Ignoring event type %s", event.Type)
		return nil
	}
}

func (s *Service) applySubscriptionChange(ctx context.Context, sub *stripe.Subscription) error {
	if sub.Customer == nil {
		return fmt.Errorf("subscription %s carries no customer", sub.ID)
	}

	team, err := s.store.GetTeamByStripeCustomerID(ctx, sub.Customer.ID)
	if err != nil {
		return fmt.Errorf("no team for customer %s: %w", sub.Customer.ID, err)
	}

	update := subscriptionUpdate(sub)
	update.StripeCustomerID = team.StripeCustomerID

	if err := s.store.UpdateTeamSubscription(ctx, team.ID, update); err != nil {
		return fmt.Errorf("failed to store subscription change: %w", err)
	}

	s.logger.Infof("Subscription %s for team %d is now %s", sub.ID, team.ID, sub.Status)

	return nil
}

// subscriptionUpdate maps a provider subscription onto team columns. An
// ended subscription clears the subscription reference and plan.
func subscriptionUpdate(sub *stripe.Subscription) *types.Team {
	status := string(sub.Status)
	update := &types.Team{SubscriptionStatus: &status}

	if sub.Status == stripe.SubscriptionStatusActive || sub.Status == stripe.SubscriptionStatusTrialing {
		update.StripeSubscriptionID = &sub.ID
		if plan := planName(sub); plan != "" {
			update.PlanName = &plan
		}
	}

	return update
}

func planName(sub *stripe.Subscription) string {
	if sub.Items == nil || len(sub.Items.Data) == 0 {
		return ""
	}

	price := sub.Items.Data[0].Price
	if price == nil {
		return ""
	}

	if price.Nickname != "" {
		return price.Nickname
	}
	if price.LookupKey != "" {
		return price.LookupKey
	}

	return price.ID
}

func NewService(store StoreInterface, authz AuthorizerInterface, payments PaymentsInterface, config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.authz = authz
	s.payments = payments
	s.config = config
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
