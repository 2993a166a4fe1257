// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/brucewavesmarket/saas-starter/internal/types"
)

const teamColumns = "id, name, created_at, updated_at, stripe_customer_id, stripe_subscription_id, plan_name, subscription_status, invite_code"

func scanTeam(row sq.RowScanner) (*types.Team, error) {
	var t types.Team
	err := row.Scan(
		&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt,
		&t.StripeCustomerID, &t.StripeSubscriptionID,
		&t.PlanName, &t.SubscriptionStatus, &t.InviteCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTeam")
	defer span.End()

	newTeam, err := scanTeam(s.db.Statement(ctx).
		Insert("teams").
		Columns("name").
		Values(t.Name).
		Suffix("RETURNING " + teamColumns).
		QueryRowContext(ctx))

	if err != nil {
		return nil, fmt.Errorf("failed to insert team: %w", err)
	}

	return newTeam, nil
}

func (s *Storage) GetTeamByID(ctx context.Context, id int64) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamByID")
	defer span.End()

	t, err := scanTeam(s.db.Statement(ctx).
		Select(teamColumns).
		From("teams").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return t, nil
}

func (s *Storage) GetTeamByInviteCode(ctx context.Context, code string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamByInviteCode")
	defer span.End()

	t, err := scanTeam(s.db.Statement(ctx).
		Select(teamColumns).
		From("teams").
		Where(sq.Eq{"invite_code": code}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team by invite code: %w", err)
	}

	return t, nil
}

func (s *Storage) GetTeamByStripeCustomerID(ctx context.Context, customerID string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamByStripeCustomerID")
	defer span.End()

	t, err := scanTeam(s.db.Statement(ctx).
		Select(teamColumns).
		From("teams").
		Where(sq.Eq{"stripe_customer_id": customerID}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team by customer: %w", err)
	}

	return t, nil
}

// UpdateTeamSubscription writes the billing linkage fields. Nil fields are
// written as NULL, clearing the linkage on subscription deletion.
func (s *Storage) UpdateTeamSubscription(ctx context.Context, id int64, sub *types.Team) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTeamSubscription")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("teams").
		SetMap(map[string]interface{}{
			"stripe_customer_id":     sub.StripeCustomerID,
			"stripe_subscription_id": sub.StripeSubscriptionID,
			"plan_name":              sub.PlanName,
			"subscription_status":    sub.SubscriptionStatus,
		}).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update team subscription: %w", err)
	}

	return nil
}

func (s *Storage) SetTeamInviteCode(ctx context.Context, id int64, code string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTeamInviteCode")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("teams").
		Set("invite_code", code).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to set invite code: %w", err)
	}

	return nil
}

// DeleteTeam removes the team. Memberships, invitations and activity log
// entries go with it via ON DELETE CASCADE.
func (s *Storage) DeleteTeam(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTeam")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("teams").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
