// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"testing"
	"time"

	ory "github.com/ory/client-go"
	"go.uber.org/mock/gomock"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/storage"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_account.go -source=./interfaces.go

const (
	testIdentityID = "identity-123"
	testEmail      = "user@example.com"
	testToken      = "session-token"
)

func newTestService(store StoreInterface, idp IdentityProviderInterface, activity ActivityRecorderInterface) *Service {
	return NewService(
		store,
		idp,
		activity,
		24*time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(""),
		logging.NewNoopLogger(),
	)
}

func TestService_SignUp(t *testing.T) {
	invitationID := int64(7)
	team := &types.Team{ID: 42, Name: "user@example.com's Team"}
	invitation := &types.Invitation{
		ID:        invitationID,
		TeamID:    9,
		Email:     testEmail,
		Role:      types.RoleMember,
		InvitedAt: time.Now().Add(-time.Hour),
		Status:    types.InvitationPending,
	}

	testCases := []struct {
		name           string
		params         SignUpParams
		setupMocks     func(*MockStoreInterface, *MockIdentityProviderInterface, *MockActivityRecorderInterface)
		expectedErr    error
		expectedTeamID int64
	}{
		{
			name:   "success - personal team",
			params: SignUpParams{Email: testEmail, Password: "password123"},
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().SignUp(gomock.Any(), testEmail, "password123").Return(testIdentityID, testToken, nil)
				store.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Profile) (*types.Profile, error) {
						if p.ID != testIdentityID {
							return nil, errors.New("wrong profile id")
						}
						return p, nil
					})
				store.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tm *types.Team) (*types.Team, error) {
						if tm.Name != "user@example.com's Team" {
							return nil, errors.New("wrong team name")
						}
						return team, nil
					})
				store.EXPECT().AddMember(gomock.Any(), team.ID, testIdentityID, types.RoleOwner).Return(int64(1), nil)
				activity.EXPECT().Record(gomock.Any(), team.ID, gomock.Any(), types.ActionCreateTeam, gomock.Any())
				activity.EXPECT().Record(gomock.Any(), team.ID, gomock.Any(), types.ActionSignUp, gomock.Any())
			},
			expectedTeamID: team.ID,
		},
		{
			name:   "success - with invitation",
			params: SignUpParams{Email: testEmail, Password: "password123", InvitationID: &invitationID},
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(invitation, nil)
				idp.EXPECT().SignUp(gomock.Any(), testEmail, "password123").Return(testIdentityID, testToken, nil)
				store.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(&types.Profile{ID: testIdentityID}, nil)
				store.EXPECT().AddMember(gomock.Any(), invitation.TeamID, testIdentityID, types.RoleMember).Return(int64(1), nil)
				store.EXPECT().UpdateInvitationStatus(gomock.Any(), invitationID, types.InvitationAccepted).Return(nil)
				activity.EXPECT().Record(gomock.Any(), invitation.TeamID, gomock.Any(), types.ActionAcceptInvitation, gomock.Any())
				activity.EXPECT().Record(gomock.Any(), invitation.TeamID, gomock.Any(), types.ActionSignUp, gomock.Any())
			},
			expectedTeamID: invitation.TeamID,
		},
		{
			name:   "error - invitation for different email",
			params: SignUpParams{Email: "other@example.com", Password: "password123", InvitationID: &invitationID},
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(invitation, nil)
			},
			expectedErr: ErrInvalidInvitation,
		},
		{
			name:   "error - expired invitation",
			params: SignUpParams{Email: testEmail, Password: "password123", InvitationID: &invitationID},
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				stale := *invitation
				stale.InvitedAt = time.Now().Add(-48 * time.Hour)
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(&stale, nil)
				store.EXPECT().UpdateInvitationStatus(gomock.Any(), invitationID, types.InvitationExpired).Return(nil)
			},
			expectedErr: ErrInvalidInvitation,
		},
		{
			name:   "error - invitation not pending",
			params: SignUpParams{Email: testEmail, Password: "password123", InvitationID: &invitationID},
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				resolved := *invitation
				resolved.Status = types.InvitationAccepted
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(&resolved, nil)
			},
			expectedErr: ErrInvalidInvitation,
		},
		{
			name:   "error - registration fails",
			params: SignUpParams{Email: testEmail, Password: "password123"},
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().SignUp(gomock.Any(), testEmail, "password123").Return("", "", errors.New("kratos error"))
			},
			expectedErr: errors.New("failed to create user"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			idp := NewMockIdentityProviderInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)

			tc.setupMocks(store, idp, activity)

			s := newTestService(store, idp, activity)
			result, err := s.SignUp(context.Background(), tc.params)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.UserID != testIdentityID {
				t.Errorf("expected user id %s, got %s", testIdentityID, result.UserID)
			}
			if result.TeamID != tc.expectedTeamID {
				t.Errorf("expected team id %d, got %d", tc.expectedTeamID, result.TeamID)
			}
			if result.SessionToken != testToken {
				t.Errorf("expected session token %s, got %s", testToken, result.SessionToken)
			}
		})
	}
}

func TestService_SignIn(t *testing.T) {
	membership := &types.Membership{ProfileID: testIdentityID, TeamID: 42, Role: types.RoleOwner}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockIdentityProviderInterface, *MockActivityRecorderInterface)
		expectedErr error
		teamID      int64
	}{
		{
			name: "success",
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().SignIn(gomock.Any(), testEmail, "password123").Return(testIdentityID, testToken, nil)
				store.EXPECT().GetProfileByID(gomock.Any(), testIdentityID).Return(&types.Profile{ID: testIdentityID}, nil)
				store.EXPECT().GetMembershipByProfileID(gomock.Any(), testIdentityID).Return(membership, nil)
				activity.EXPECT().Record(gomock.Any(), membership.TeamID, gomock.Any(), types.ActionSignIn, gomock.Any())
			},
			teamID: membership.TeamID,
		},
		{
			name: "success - no team",
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().SignIn(gomock.Any(), testEmail, "password123").Return(testIdentityID, testToken, nil)
				store.EXPECT().GetProfileByID(gomock.Any(), testIdentityID).Return(&types.Profile{ID: testIdentityID}, nil)
				store.EXPECT().GetMembershipByProfileID(gomock.Any(), testIdentityID).Return(nil, storage.ErrNotFound)
			},
			teamID: 0,
		},
		{
			name: "error - bad credentials",
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().SignIn(gomock.Any(), testEmail, "password123").Return("", "", errors.New("login failed"))
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name: "error - soft deleted profile",
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().SignIn(gomock.Any(), testEmail, "password123").Return(testIdentityID, testToken, nil)
				store.EXPECT().GetProfileByID(gomock.Any(), testIdentityID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			idp := NewMockIdentityProviderInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)

			tc.setupMocks(store, idp, activity)

			s := newTestService(store, idp, activity)
			result, err := s.SignIn(context.Background(), testEmail, "password123", nil)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.TeamID != tc.teamID {
				t.Errorf("expected team id %d, got %d", tc.teamID, result.TeamID)
			}
		})
	}
}

func identityWithEmail(email string) *ory.Identity {
	return &ory.Identity{
		Id:     testIdentityID,
		Traits: map[string]interface{}{"email": email},
	}
}

func TestService_UpdatePassword(t *testing.T) {
	membership := &types.Membership{ProfileID: testIdentityID, TeamID: 42}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockIdentityProviderInterface, *MockActivityRecorderInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().GetIdentity(gomock.Any(), testIdentityID).Return(identityWithEmail(testEmail), nil)
				idp.EXPECT().SignIn(gomock.Any(), testEmail, "oldpassword").Return(testIdentityID, testToken, nil)
				idp.EXPECT().UpdatePassword(gomock.Any(), testIdentityID, "newpassword").Return(nil)
				store.EXPECT().GetMembershipByProfileID(gomock.Any(), testIdentityID).Return(membership, nil)
				activity.EXPECT().Record(gomock.Any(), membership.TeamID, gomock.Any(), types.ActionUpdatePassword, gomock.Any())
			},
		},
		{
			name: "error - wrong current password",
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().GetIdentity(gomock.Any(), testIdentityID).Return(identityWithEmail(testEmail), nil)
				idp.EXPECT().SignIn(gomock.Any(), testEmail, "oldpassword").Return("", "", errors.New("login failed"))
			},
			expectedErr: ErrWrongPassword,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			idp := NewMockIdentityProviderInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)

			tc.setupMocks(store, idp, activity)

			s := newTestService(store, idp, activity)
			err := s.UpdatePassword(context.Background(), testIdentityID, "oldpassword", "newpassword", nil)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_DeleteAccount(t *testing.T) {
	membership := &types.Membership{ProfileID: testIdentityID, TeamID: 42}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockIdentityProviderInterface, *MockActivityRecorderInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().GetIdentity(gomock.Any(), testIdentityID).Return(identityWithEmail(testEmail), nil)
				idp.EXPECT().SignIn(gomock.Any(), testEmail, "password123").Return(testIdentityID, testToken, nil)
				store.EXPECT().GetMembershipByProfileID(gomock.Any(), testIdentityID).Return(membership, nil)
				store.EXPECT().RemoveMember(gomock.Any(), membership.TeamID, testIdentityID).Return(nil)
				store.EXPECT().SoftDeleteProfile(gomock.Any(), testIdentityID).Return(nil)
				idp.EXPECT().DeleteIdentity(gomock.Any(), testIdentityID).Return(nil)
				activity.EXPECT().Record(gomock.Any(), membership.TeamID, gomock.Any(), types.ActionDeleteAccount, gomock.Any())
				store.EXPECT().DeleteProfile(gomock.Any(), testIdentityID).Return(nil)
			},
		},
		{
			name: "error - identity deletion fails after soft delete",
			setupMocks: func(store *MockStoreInterface, idp *MockIdentityProviderInterface, activity *MockActivityRecorderInterface) {
				idp.EXPECT().GetIdentity(gomock.Any(), testIdentityID).Return(identityWithEmail(testEmail), nil)
				idp.EXPECT().SignIn(gomock.Any(), testEmail, "password123").Return(testIdentityID, testToken, nil)
				store.EXPECT().GetMembershipByProfileID(gomock.Any(), testIdentityID).Return(membership, nil)
				store.EXPECT().RemoveMember(gomock.Any(), membership.TeamID, testIdentityID).Return(nil)
				store.EXPECT().SoftDeleteProfile(gomock.Any(), testIdentityID).Return(nil)
				idp.EXPECT().DeleteIdentity(gomock.Any(), testIdentityID).Return(errors.New("kratos error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			idp := NewMockIdentityProviderInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)

			tc.setupMocks(store, idp, activity)

			s := newTestService(store, idp, activity)
			err := s.DeleteAccount(context.Background(), testIdentityID, "password123", nil)

			if tc.expectedErr && err == nil {
				t.Fatal("expected error but got none")
			}
			if !tc.expectedErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_CreateRecovery(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockIdentityProviderInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(idp *MockIdentityProviderInterface) {
				idp.EXPECT().GetIdentityIDByEmail(gomock.Any(), testEmail).Return(testIdentityID, nil)
				idp.EXPECT().CreateRecoveryLink(gomock.Any(), testIdentityID, recoveryLifetime).
					Return("https://kratos.example.com/self-service/recovery?token=abc", "12345678", nil)
			},
		},
		{
			name: "unknown email",
			setupMocks: func(idp *MockIdentityProviderInterface) {
				idp.EXPECT().GetIdentityIDByEmail(gomock.Any(), testEmail).Return("", nil)
			},
			expectedErr: ErrUnknownEmail,
		},
		{
			name: "identity provider failure",
			setupMocks: func(idp *MockIdentityProviderInterface) {
				idp.EXPECT().GetIdentityIDByEmail(gomock.Any(), testEmail).Return(testIdentityID, nil)
				idp.EXPECT().CreateRecoveryLink(gomock.Any(), testIdentityID, recoveryLifetime).
					Return("", "", errors.New("kratos unavailable"))
			},
			expectedErr: errors.New("failed to create recovery link"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			idp := NewMockIdentityProviderInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)

			tc.setupMocks(idp)

			s := newTestService(store, idp, activity)
			result, err := s.CreateRecovery(context.Background(), testEmail)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if errors.Is(tc.expectedErr, ErrUnknownEmail) && !errors.Is(err, ErrUnknownEmail) {
					t.Fatalf("expected %v, got %v", ErrUnknownEmail, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Link == "" || result.Code == "" {
				t.Fatal("expected a recovery link and code")
			}
		})
	}
}
