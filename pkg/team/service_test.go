// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/brucewavesmarket/saas-starter/internal/authorization"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/storage"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_team.go -source=./interfaces.go

const (
	testOwnerID  = "owner-identity"
	testMemberID = "member-identity"
	testTeamID   = int64(42)
)

func newTestService(store StoreInterface, authz AuthorizerInterface, directory IdentityDirectoryInterface, activity ActivityRecorderInterface) *Service {
	return NewService(
		store,
		authz,
		directory,
		activity,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(""),
		logging.NewNoopLogger(),
	)
}

func ownerMembership() *types.Membership {
	return &types.Membership{ProfileID: testOwnerID, TeamID: testTeamID, Role: types.RoleOwner}
}

func TestService_ResolveTeam(t *testing.T) {
	testCases := []struct {
		name         string
		setupMocks   func(*MockStoreInterface, *MockAuthorizerInterface, *MockIdentityDirectoryInterface)
		expectedErr  error
		expectedTeam func(*testing.T, *types.TeamWithMembers)
	}{
		{
			name: "success with emails and names joined",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testOwnerID).Return(ownerMembership(), nil)
				store.EXPECT().GetTeamByID(gomock.Any(), testTeamID).Return(&types.Team{ID: testTeamID, Name: "Acme"}, nil)
				store.EXPECT().ListMembersByTeamID(gomock.Any(), testTeamID).Return([]*types.Membership{
					ownerMembership(),
					{ProfileID: testMemberID, TeamID: testTeamID, Role: types.RoleMember},
				}, nil)
				directory.EXPECT().EmailsByIdentityID(gomock.Any()).Return(map[string]string{
					testOwnerID:  "owner@example.com",
					testMemberID: "member@example.com",
				}, nil)
				store.EXPECT().GetProfileByID(gomock.Any(), testOwnerID).Return(&types.Profile{ID: testOwnerID, Name: "Owner"}, nil)
				store.EXPECT().GetProfileByID(gomock.Any(), testMemberID).Return(&types.Profile{ID: testMemberID}, nil)
			},
			expectedTeam: func(t *testing.T, team *types.TeamWithMembers) {
				if team.Team.Name != "Acme" {
					t.Fatalf("expected team Acme, got %q", team.Team.Name)
				}
				if team.Role != types.RoleOwner {
					t.Fatalf("expected caller role owner, got %q", team.Role)
				}
				if len(team.Members) != 2 {
					t.Fatalf("expected 2 members, got %d", len(team.Members))
				}
				if team.Members[0].Email != "owner@example.com" {
					t.Fatalf("expected owner email joined from the directory, got %q", team.Members[0].Email)
				}
				if team.Members[0].Name != "Owner" {
					t.Fatalf("expected owner name joined from the profile, got %q", team.Members[0].Name)
				}
				if team.Members[1].Email != "member@example.com" {
					t.Fatalf("expected member email joined from the directory, got %q", team.Members[1].Email)
				}
			},
		},
		{
			name: "no membership",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testOwnerID).Return(nil, authorization.ErrNoTeam)
			},
			expectedErr: authorization.ErrNoTeam,
		},
		{
			name: "directory failure degrades to empty emails",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testOwnerID).Return(ownerMembership(), nil)
				store.EXPECT().GetTeamByID(gomock.Any(), testTeamID).Return(&types.Team{ID: testTeamID, Name: "Acme"}, nil)
				store.EXPECT().ListMembersByTeamID(gomock.Any(), testTeamID).Return([]*types.Membership{ownerMembership()}, nil)
				directory.EXPECT().EmailsByIdentityID(gomock.Any()).Return(nil, errors.New("identity provider unavailable"))
				store.EXPECT().GetProfileByID(gomock.Any(), testOwnerID).Return(&types.Profile{ID: testOwnerID}, nil)
			},
			expectedTeam: func(t *testing.T, team *types.TeamWithMembers) {
				if len(team.Members) != 1 {
					t.Fatalf("expected 1 member, got %d", len(team.Members))
				}
				if team.Members[0].Email != "" {
					t.Fatalf("expected empty email when the directory is down, got %q", team.Members[0].Email)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			directory := NewMockIdentityDirectoryInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)
			tc.setupMocks(store, authz, directory)

			svc := newTestService(store, authz, directory, activity)

			team, err := svc.ResolveTeam(context.Background(), testOwnerID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			tc.expectedTeam(t, team)
		})
	}
}

func TestService_InviteMember(t *testing.T) {
	testCases := []struct {
		name        string
		email       string
		setupMocks  func(*MockStoreInterface, *MockAuthorizerInterface, *MockIdentityDirectoryInterface, *MockActivityRecorderInterface)
		expectedErr error
	}{
		{
			name:  "success",
			email: "New.User@Example.com",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)
				store.EXPECT().ListMembersByTeamID(gomock.Any(), testTeamID).Return([]*types.Membership{ownerMembership()}, nil)
				directory.EXPECT().EmailsByIdentityID(gomock.Any()).Return(map[string]string{testOwnerID: "owner@example.com"}, nil)
				store.EXPECT().GetPendingInvitation(gomock.Any(), testTeamID, "new.user@example.com").Return(nil, storage.ErrNotFound)
				store.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.Email != "new.user@example.com" {
							return nil, errors.New("email not normalized")
						}
						if inv.Status != types.InvitationPending || inv.InvitedBy == nil || *inv.InvitedBy != testOwnerID {
							return nil, errors.New("unexpected invitation fields")
						}
						inv.ID = 7
						return inv, nil
					})
				activity.EXPECT().Record(gomock.Any(), testTeamID, gomock.Any(), types.ActionInviteMember, gomock.Any())
			},
		},
		{
			name:  "not an owner",
			email: "new.user@example.com",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(nil, authorization.ErrForbidden)
			},
			expectedErr: authorization.ErrForbidden,
		},
		{
			name:  "already a member",
			email: "member@example.com",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)
				store.EXPECT().ListMembersByTeamID(gomock.Any(), testTeamID).Return([]*types.Membership{
					{ProfileID: testMemberID, TeamID: testTeamID, Role: types.RoleMember},
				}, nil)
				directory.EXPECT().EmailsByIdentityID(gomock.Any()).Return(map[string]string{testMemberID: "Member@Example.com"}, nil)
			},
			expectedErr: ErrAlreadyMember,
		},
		{
			name:  "already invited",
			email: "new.user@example.com",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)
				store.EXPECT().ListMembersByTeamID(gomock.Any(), testTeamID).Return([]*types.Membership{}, nil)
				directory.EXPECT().EmailsByIdentityID(gomock.Any()).Return(map[string]string{}, nil)
				store.EXPECT().GetPendingInvitation(gomock.Any(), testTeamID, "new.user@example.com").Return(&types.Invitation{ID: 3}, nil)
			},
			expectedErr: ErrAlreadyInvited,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			directory := NewMockIdentityDirectoryInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)
			tc.setupMocks(store, authz, directory, activity)

			svc := newTestService(store, authz, directory, activity)

			inv, err := svc.InviteMember(context.Background(), testOwnerID, tc.email, types.RoleMember, nil)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if inv == nil || inv.ID == 0 {
				t.Fatal("expected a created invitation")
			}
		})
	}
}

func TestService_RemoveMember(t *testing.T) {
	testCases := []struct {
		name        string
		callerID    string
		memberID    string
		setupMocks  func(*MockStoreInterface, *MockAuthorizerInterface, *MockActivityRecorderInterface)
		expectedErr error
	}{
		{
			name:     "member removes themselves",
			callerID: testMemberID,
			memberID: testMemberID,
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().TeamScope(gomock.Any(), testMemberID).Return(
					&types.Membership{ProfileID: testMemberID, TeamID: testTeamID, Role: types.RoleMember}, nil)
				store.EXPECT().RemoveMember(gomock.Any(), testTeamID, testMemberID).Return(nil)
				activity.EXPECT().Record(gomock.Any(), testTeamID, gomock.Any(), types.ActionRemoveMember, gomock.Any())
			},
		},
		{
			name:     "owner removes another member",
			callerID: testOwnerID,
			memberID: testMemberID,
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)
				store.EXPECT().RemoveMember(gomock.Any(), testTeamID, testMemberID).Return(nil)
				activity.EXPECT().Record(gomock.Any(), testTeamID, gomock.Any(), types.ActionRemoveMember, gomock.Any())
			},
		},
		{
			name:     "member removing someone else is forbidden",
			callerID: testMemberID,
			memberID: testOwnerID,
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testMemberID, types.RoleOwner).Return(nil, authorization.ErrForbidden)
			},
			expectedErr: authorization.ErrForbidden,
		},
		{
			name:     "member not found",
			callerID: testOwnerID,
			memberID: "ghost",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)
				store.EXPECT().RemoveMember(gomock.Any(), testTeamID, "ghost").Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			directory := NewMockIdentityDirectoryInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)
			tc.setupMocks(store, authz, activity)

			svc := newTestService(store, authz, directory, activity)

			err := svc.RemoveMember(context.Background(), tc.callerID, tc.memberID, nil)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_AcceptInvitation(t *testing.T) {
	invitationID := int64(11)
	pending := func() *types.Invitation {
		return &types.Invitation{
			ID:     invitationID,
			TeamID: testTeamID,
			Email:  "member@example.com",
			Role:   types.RoleMember,
			Status: types.InvitationPending,
		}
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockIdentityDirectoryInterface, *MockActivityRecorderInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(store *MockStoreInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(pending(), nil)
				directory.EXPECT().EmailsByIdentityID(gomock.Any()).Return(map[string]string{testMemberID: "Member@Example.com"}, nil)
				store.EXPECT().AddMember(gomock.Any(), testTeamID, testMemberID, types.RoleMember).Return(int64(1), nil)
				store.EXPECT().UpdateInvitationStatus(gomock.Any(), invitationID, types.InvitationAccepted).Return(nil)
				activity.EXPECT().Record(gomock.Any(), testTeamID, gomock.Any(), types.ActionAcceptInvitation, gomock.Any())
			},
		},
		{
			name: "email mismatch",
			setupMocks: func(store *MockStoreInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(pending(), nil)
				directory.EXPECT().EmailsByIdentityID(gomock.Any()).Return(map[string]string{testMemberID: "someone.else@example.com"}, nil)
			},
			expectedErr: ErrEmailMismatch,
		},
		{
			name: "already resolved",
			setupMocks: func(store *MockStoreInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				inv := pending()
				inv.Status = types.InvitationAccepted
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(inv, nil)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name: "already a member",
			setupMocks: func(store *MockStoreInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(pending(), nil)
				directory.EXPECT().EmailsByIdentityID(gomock.Any()).Return(map[string]string{testMemberID: "member@example.com"}, nil)
				store.EXPECT().AddMember(gomock.Any(), testTeamID, testMemberID, types.RoleMember).Return(int64(0), storage.ErrDuplicateKey)
			},
			expectedErr: ErrAlreadyMember,
		},
		{
			name: "unknown invitation",
			setupMocks: func(store *MockStoreInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			directory := NewMockIdentityDirectoryInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)
			tc.setupMocks(store, directory, activity)

			svc := newTestService(store, authz, directory, activity)

			err := svc.AcceptInvitation(context.Background(), testMemberID, invitationID, nil)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_ApproveRequest(t *testing.T) {
	invitationID := int64(23)
	requested := func() *types.Invitation {
		return &types.Invitation{
			ID:     invitationID,
			TeamID: testTeamID,
			Email:  "requester@example.com",
			Role:   types.RoleMember,
			Status: types.InvitationRequested,
		}
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockAuthorizerInterface, *MockIdentityDirectoryInterface, *MockActivityRecorderInterface)
		expectedErr error
	}{
		{
			name: "requester has an account",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(requested(), nil)
				directory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "requester@example.com").Return("requester-identity", nil)
				store.EXPECT().AddMember(gomock.Any(), testTeamID, "requester-identity", types.RoleMember).Return(int64(1), nil)
				store.EXPECT().UpdateInvitationStatus(gomock.Any(), invitationID, types.InvitationAccepted).Return(nil)
				activity.EXPECT().Record(gomock.Any(), testTeamID, gomock.Any(), types.ActionAcceptInvitation, gomock.Any())
			},
		},
		{
			name: "requester has no account yet",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(requested(), nil)
				directory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "requester@example.com").Return("", nil)
				store.EXPECT().UpdateInvitationStatus(gomock.Any(), invitationID, types.InvitationPending).Return(nil)
			},
		},
		{
			name: "request belongs to another team",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)
				inv := requested()
				inv.TeamID = testTeamID + 1
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(inv, nil)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name: "not a join request",
			setupMocks: func(store *MockStoreInterface, authz *MockAuthorizerInterface, directory *MockIdentityDirectoryInterface, activity *MockActivityRecorderInterface) {
				authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)
				inv := requested()
				inv.Status = types.InvitationPending
				store.EXPECT().GetInvitationByID(gomock.Any(), invitationID).Return(inv, nil)
			},
			expectedErr: ErrInvitationNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			directory := NewMockIdentityDirectoryInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)
			tc.setupMocks(store, authz, directory, activity)

			svc := newTestService(store, authz, directory, activity)

			err := svc.ApproveRequest(context.Background(), testOwnerID, invitationID, nil)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_JoinRequest(t *testing.T) {
	team := &types.Team{ID: testTeamID, Name: "Acme"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStoreInterface, *MockIdentityDirectoryInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(store *MockStoreInterface, directory *MockIdentityDirectoryInterface) {
				store.EXPECT().GetTeamByInviteCode(gomock.Any(), "code-1").Return(team, nil)
				store.EXPECT().ListMembersByTeamID(gomock.Any(), testTeamID).Return([]*types.Membership{}, nil)
				directory.EXPECT().EmailsByIdentityID(gomock.Any()).Return(map[string]string{}, nil)
				store.EXPECT().GetPendingInvitation(gomock.Any(), testTeamID, "requester@example.com").Return(nil, storage.ErrNotFound)
				store.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.Status != types.InvitationRequested {
							return nil, errors.New("expected a requested invitation")
						}
						if inv.InvitedBy != nil {
							return nil, errors.New("join requests have no inviter")
						}
						return inv, nil
					})
			},
		},
		{
			name: "invalid code",
			setupMocks: func(store *MockStoreInterface, directory *MockIdentityDirectoryInterface) {
				store.EXPECT().GetTeamByInviteCode(gomock.Any(), "code-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidInviteCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStoreInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			directory := NewMockIdentityDirectoryInterface(ctrl)
			activity := NewMockActivityRecorderInterface(ctrl)
			tc.setupMocks(store, directory)

			svc := newTestService(store, authz, directory, activity)

			err := svc.JoinRequest(context.Background(), "code-1", "Requester@Example.com")

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_RotateInviteCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStoreInterface(ctrl)
	authz := NewMockAuthorizerInterface(ctrl)
	directory := NewMockIdentityDirectoryInterface(ctrl)
	activity := NewMockActivityRecorderInterface(ctrl)

	authz.EXPECT().RequireRole(gomock.Any(), testOwnerID, types.RoleOwner).Return(ownerMembership(), nil)

	var storedCode string
	store.EXPECT().SetTeamInviteCode(gomock.Any(), testTeamID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, code string) error {
			storedCode = code
			return nil
		})

	svc := newTestService(store, authz, directory, activity)

	code, err := svc.RotateInviteCode(context.Background(), testOwnerID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if code == "" || code != storedCode {
		t.Fatalf("expected the stored code to be returned, got %q", code)
	}
}
