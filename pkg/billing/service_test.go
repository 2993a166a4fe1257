// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"errors"
	"testing"

	stripe "github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"

	"github.com/brucewavesmarket/saas-starter/internal/authorization"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_billing.go -source=./interfaces.go

const (
	testUserID = "identity-123"
	testTeamID = int64(42)
)

func newTestService(store StoreInterface, authz AuthorizerInterface, payments PaymentsInterface) *Service {
	return NewService(
		store,
		authz,
		payments,
		Config{SuccessURL: "https://app.example.com/dashboard", CancelURL: "https://app.example.com/pricing", TrialDays: 14},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(""),
		logging.NewNoopLogger(),
	)
}

func TestService_CreateCheckout(t *testing.T) {
	customerID := "cus_123"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockAuthorizerInterface, *MockPaymentsInterface)
		expectedURL string
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, payments *MockPaymentsInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testUserID).Return(&types.Membership{TeamID: testTeamID}, nil)
				store.EXPECT().GetTeamByID(gomock.Any(), testTeamID).Return(&types.Team{ID: testTeamID, StripeCustomerID: &customerID}, nil)
				payments.EXPECT().CreateCheckoutSession(
					gomock.Any(), &customerID, "42", "price_pro", int64(14),
					"https://app.example.com/dashboard", "https://app.example.com/pricing",
				).Return("https://checkout.stripe.com/c/session", nil)
			},
			expectedURL: "https://checkout.stripe.com/c/session",
		},
		{
			name: "no team",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, payments *MockPaymentsInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testUserID).Return(nil, authorization.ErrNoTeam)
			},
			expectedErr: authorization.ErrNoTeam,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			payments := NewMockPaymentsInterface(ctrl)
			tc.setupMocks(store, authz, payments)

			svc := newTestService(store, authz, payments)

			url, err := svc.CreateCheckout(context.Background(), testUserID, "price_pro")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if url != tc.expectedURL {
				t.Fatalf("expected %q, got %q", tc.expectedURL, url)
			}
		})
	}
}

func TestService_CreatePortal(t *testing.T) {
	customerID := "cus_123"
	empty := ""

	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockAuthorizerInterface, *MockPaymentsInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, payments *MockPaymentsInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testUserID).Return(&types.Membership{TeamID: testTeamID}, nil)
				store.EXPECT().GetTeamByID(gomock.Any(), testTeamID).Return(&types.Team{ID: testTeamID, StripeCustomerID: &customerID}, nil)
				payments.EXPECT().CreatePortalSession(gomock.Any(), customerID, "https://app.example.com/dashboard").
					Return("https://billing.stripe.com/p/session", nil)
			},
		},
		{
			name: "no customer yet",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, payments *MockPaymentsInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testUserID).Return(&types.Membership{TeamID: testTeamID}, nil)
				store.EXPECT().GetTeamByID(gomock.Any(), testTeamID).Return(&types.Team{ID: testTeamID}, nil)
			},
			expectedErr: ErrNoCustomer,
		},
		{
			name: "empty customer id",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, payments *MockPaymentsInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testUserID).Return(&types.Membership{TeamID: testTeamID}, nil)
				store.EXPECT().GetTeamByID(gomock.Any(), testTeamID).Return(&types.Team{ID: testTeamID, StripeCustomerID: &empty}, nil)
			},
			expectedErr: ErrNoCustomer,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			payments := NewMockPaymentsInterface(ctrl)
			tc.setupMocks(store, authz, payments)

			svc := newTestService(store, authz, payments)

			_, err := svc.CreatePortal(context.Background(), testUserID)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_FinalizeCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStoreInterface(ctrl)
	authz := NewMockAuthorizerInterface(ctrl)
	payments := NewMockPaymentsInterface(ctrl)

	payments.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").Return(&CheckoutSession{
		CustomerID:        "cus_123",
		SubscriptionID:    "sub_123",
		ClientReferenceID: "42",
	}, nil)
	payments.EXPECT().GetSubscription(gomock.Any(), "sub_123").Return(&stripe.Subscription{
		ID:     "sub_123",
		Status: stripe.SubscriptionStatusActive,
		Items: &stripe.SubscriptionItemList{
			Data: []*stripe.SubscriptionItem{
				{Price: &stripe.Price{ID: "price_pro", Nickname: "Pro"}},
			},
		},
	}, nil)
	store.EXPECT().UpdateTeamSubscription(gomock.Any(), testTeamID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, update *types.Team) error {
			if update.StripeCustomerID == nil || *update.StripeCustomerID != "cus_123" {
				return errors.New("missing customer id")
			}
			if update.StripeSubscriptionID == nil || *update.StripeSubscriptionID != "sub_123" {
				return errors.New("missing subscription id")
			}
			if update.PlanName == nil || *update.PlanName != "Pro" {
				return errors.New("missing plan name")
			}
			if update.SubscriptionStatus == nil || *update.SubscriptionStatus != "active" {
				return errors.New("missing status")
			}
			return nil
		})

	svc := newTestService(store, authz, payments)

	if err := svc.FinalizeCheckout(context.Background(), "cs_123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_FinalizeCheckoutRejectsBadReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStoreInterface(ctrl)
	authz := NewMockAuthorizerInterface(ctrl)
	payments := NewMockPaymentsInterface(ctrl)

	payments.EXPECT().GetCheckoutSession(gomock.Any(), "cs_123").Return(&CheckoutSession{
		CustomerID:        "cus_123",
		SubscriptionID:    "sub_123",
		ClientReferenceID: "not-a-team",
	}, nil)

	svc := newTestService(store, authz, payments)

	if err := svc.FinalizeCheckout(context.Background(), "cs_123"); err == nil {
		t.Fatal("expected an error for a non numeric client reference")
	}
}

func TestService_ProcessWebhook(t *testing.T) {
	customerID := "cus_123"

	testCases := []struct {
		name        string
		event       stripe.Event
		setupMocks  func(*MockStoreInterface)
		expectedErr bool
		assertion   func(*testing.T, *types.Team)
	}{
		{
			name: "subscription updated to active",
			event: stripe.Event{
				Type: "customer.subscription.updated",
				Data: &stripe.EventData{Raw: []byte(`{
					"id": "sub_123",
					"status": "active",
					"customer": {"id": "cus_123"},
					"items": {"data": [{"price": {"id": "price_pro", "nickname": "Pro"}}]}
				}`)},
			},
			setupMocks: func(store *MockStoreInterface) {
				store.EXPECT().GetTeamByStripeCustomerID(gomock.Any(), "cus_123").
					Return(&types.Team{ID: testTeamID, StripeCustomerID: &customerID}, nil)
			},
			assertion: func(t *testing.T, update *types.Team) {
				if update.StripeSubscriptionID == nil || *update.StripeSubscriptionID != "sub_123" {
					t.Error("expected subscription id to be set")
				}
				if update.PlanName == nil || *update.PlanName != "Pro" {
					t.Error("expected plan name to be set")
				}
			},
		},
		{
			name: "subscription deleted clears the plan",
			event: stripe.Event{
				Type: "customer.subscription.deleted",
				Data: &stripe.EventData{Raw: []byte(`{
					"id": "sub_123",
					"status": "canceled",
					"customer": {"id": "cus_123"}
				}`)},
			},
			setupMocks: func(store *MockStoreInterface) {
				store.EXPECT().GetTeamByStripeCustomerID(gomock.Any(), "cus_123").
					Return(&types.Team{ID: testTeamID, StripeCustomerID: &customerID}, nil)
			},
			assertion: func(t *testing.T, update *types.Team) {
				if update.StripeSubscriptionID != nil {
					t.Error("expected subscription id to be cleared")
				}
				if update.PlanName != nil {
					t.Error("expected plan name to be cleared")
				}
				if update.SubscriptionStatus == nil || *update.SubscriptionStatus != "canceled" {
					t.Error("expected canceled status")
				}
			},
		},
		{
			name: "unhandled event is acknowledged",
			event: stripe.Event{
				Type: "invoice.paid",
				Data: &stripe.EventData{Raw: []byte(`{}`)},
			},
			setupMocks: func(store *MockStoreInterface) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			payments := NewMockPaymentsInterface(ctrl)

			payments.EXPECT().ConstructEvent([]byte("payload"), "sig").Return(tc.event, nil)
			tc.setupMocks(store)

			var captured *types.Team
			if tc.assertion != nil {
				store.EXPECT().UpdateTeamSubscription(gomock.Any(), testTeamID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int64, update *types.Team) error {
						captured = update
						return nil
					})
			}

			svc := newTestService(store, authz, payments)

			err := svc.ProcessWebhook(context.Background(), []byte("payload"), "sig")

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tc.assertion != nil {
				tc.assertion(t, captured)
			}
		})
	}
}

func TestService_ProcessWebhookRejectsBadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStoreInterface(ctrl)
	authz := NewMockAuthorizerInterface(ctrl)
	payments := NewMockPaymentsInterface(ctrl)

	payments.EXPECT().ConstructEvent([]byte("payload"), "bad-sig").
		Return(stripe.Event{}, errors.New("signature mismatch"))

	svc := newTestService(store, authz, payments)

	if err := svc.ProcessWebhook(context.Background(), []byte("payload"), "bad-sig"); err == nil {
		t.Fatal("expected an error for an invalid signature")
	}
}
