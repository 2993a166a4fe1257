// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/brucewavesmarket/saas-starter/internal/authorization"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package activity -destination ./mock_activity.go -source=./interfaces.go

const testUserID = "identity-123"

func newTestService(store StoreInterface, authz AuthorizerInterface) *Service {
	return NewService(
		store,
		authz,
		20,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(""),
		logging.NewNoopLogger(),
	)
}

func TestService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStoreInterface(ctrl)
	authz := NewMockAuthorizerInterface(ctrl)

	profileID := testUserID
	ip := "203.0.113.7"

	store.EXPECT().RecordActivity(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *types.ActivityEntry) error {
			if e.TeamID != 42 || e.Action != types.ActionSignIn {
				return errors.New("unexpected entry")
			}
			if e.ProfileID == nil || *e.ProfileID != profileID {
				return errors.New("unexpected profile id")
			}
			return nil
		})

	svc := newTestService(store, authz)
	svc.Record(context.Background(), 42, &profileID, types.ActionSignIn, &ip)
}

func TestService_RecordSwallowsStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStoreInterface(ctrl)
	authz := NewMockAuthorizerInterface(ctrl)

	store.EXPECT().RecordActivity(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	svc := newTestService(store, authz)

	// Must not panic or surface the error.
	svc.Record(context.Background(), 42, nil, types.ActionSignOut, nil)
}

func TestService_List(t *testing.T) {
	entries := []*types.ActivityEntry{
		{ID: 2, TeamID: 42, Action: types.ActionSignIn},
		{ID: 1, TeamID: 42, Action: types.ActionCreateTeam},
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockAuthorizerInterface)
		expected    int
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testUserID).Return(&types.Membership{TeamID: 42}, nil)
				store.EXPECT().ListActivityByTeamID(gomock.Any(), int64(42), uint64(20)).Return(entries, nil)
			},
			expected: 2,
		},
		{
			name: "no team",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface) {
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
			tc.setupMocks(store, authz)

			svc := newTestService(store, authz)

			got, err := svc.List(context.Background(), testUserID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(got) != tc.expected {
				t.Fatalf("expected %d entries, got %d", tc.expected, len(got))
			}
		})
	}
}

func TestService_Clear(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockAuthorizerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testUserID, types.RoleOwner).Return(&types.Membership{TeamID: 42, Role: types.RoleOwner}, nil)
				store.EXPECT().DeleteActivityByTeamID(gomock.Any(), int64(42)).Return(nil)
			},
		},
		{
			name: "not an owner",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testUserID, types.RoleOwner).Return(nil, authorization.ErrForbidden)
			},
			expectedErr: authorization.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			tc.setupMocks(store, authz)

			svc := newTestService(store, authz)

			err := svc.Clear(context.Background(), testUserID)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
