// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/storage"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

const (
	testIdentityID = "identity-123"
	testEmail      = "user@example.com"
)

func newTestService(store StoreInterface, activity ActivityRecorderInterface) *Service {
	return NewService(
		store,
		activity,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(""),
		logging.NewNoopLogger(),
	)
}

func TestService_ProvisionIdentity(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockActivityRecorderInterface)
		expectedErr bool
	}{
		{
			name: "personal team when no invitation is waiting",
			setupMocks: func(store *MockStoreInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Profile) (*types.Profile, error) {
						if p.ID != testIdentityID || p.Role != types.RoleMember {
							return nil, errors.New("unexpected profile")
						}
						return p, nil
					})
				store.EXPECT().FindPendingInvitationByEmail(gomock.Any(), testEmail).Return(nil, storage.ErrNotFound)
				store.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tm *types.Team) (*types.Team, error) {
						if tm.Name != "user@example.com's Team" {
							return nil, errors.New("unexpected team name")
						}
						tm.ID = 42
						return tm, nil
					})
				store.EXPECT().AddMember(gomock.Any(), int64(42), testIdentityID, types.RoleOwner).Return(int64(1), nil)
				activity.EXPECT().Record(gomock.Any(), int64(42), gomock.Any(), types.ActionCreateTeam, nil)
				activity.EXPECT().Record(gomock.Any(), int64(42), gomock.Any(), types.ActionSignUp, nil)
			},
		},
		{
			name: "joins the inviting team",
			setupMocks: func(store *MockStoreInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Profile) (*types.Profile, error) {
						return p, nil
					})
				store.EXPECT().FindPendingInvitationByEmail(gomock.Any(), testEmail).Return(&types.Invitation{
					ID:     7,
					TeamID: 9,
					Email:  testEmail,
					Role:   types.RoleMember,
					Status: types.InvitationPending,
				}, nil)
				store.EXPECT().AddMember(gomock.Any(), int64(9), testIdentityID, types.RoleMember).Return(int64(1), nil)
				store.EXPECT().UpdateInvitationStatus(gomock.Any(), int64(7), types.InvitationAccepted).Return(nil)
				activity.EXPECT().Record(gomock.Any(), int64(9), gomock.Any(), types.ActionAcceptInvitation, nil)
				activity.EXPECT().Record(gomock.Any(), int64(9), gomock.Any(), types.ActionSignUp, nil)
			},
		},
		{
			name: "duplicate delivery is a no-op",
			setupMocks: func(store *MockStoreInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
		},
		{
			name: "store failure surfaces",
			setupMocks: func(store *MockStoreInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)
			tc.setupMocks(store, activity)

			svc := newTestService(store, activity)

			err := svc.ProvisionIdentity(context.Background(), testIdentityID, testEmail)

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}
