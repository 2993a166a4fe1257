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

func (s *Storage) AddMember(ctx context.Context, teamID int64, profileID, role string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	var id int64
	err := s.db.Statement(ctx).
		Insert("memberships").
		Columns("team_id", "profile_id", "role").
		Values(teamID, profileID, role).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return 0, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return 0, ErrForeignKeyViolation
		}
		return 0, fmt.Errorf("failed to add member: %w", err)
	}

	return id, nil
}

// GetMembershipByProfileID returns the caller's single membership row. This
// is the only place the acting team id is ever derived from; handlers never
// trust a client-supplied team id.
func (s *Storage) GetMembershipByProfileID(ctx context.Context, profileID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByProfileID")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "profile_id", "team_id", "role", "joined_at").
		From("memberships").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("joined_at ASC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.ProfileID, &m.TeamID, &m.Role, &m.JoinedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMembersByTeamID(ctx context.Context, teamID int64) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTeamID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "profile_id", "team_id", "role", "joined_at").
		From("memberships").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("joined_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.ProfileID, &m.TeamID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// RemoveMember deletes a membership filtered by both member and team id, so
// a caller can never detach a member of another team.
func (s *Storage) RemoveMember(ctx context.Context, teamID int64, profileID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{
			"team_id":    teamID,
			"profile_id": profileID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
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
