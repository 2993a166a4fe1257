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

const invitationColumns = "id, team_id, email, role, invited_by, invited_at, status"

func scanInvitation(row sq.RowScanner) (*types.Invitation, error) {
	var inv types.Invitation
	err := row.Scan(&inv.ID, &inv.TeamID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.InvitedAt, &inv.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	status := inv.Status
	if status == "" {
		status = types.InvitationPending
	}

	created, err := scanInvitation(s.db.Statement(ctx).
		Insert("invitations").
		Columns("team_id", "email", "role", "invited_by", "status").
		Values(inv.TeamID, inv.Email, inv.Role, inv.InvitedBy, status).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx))

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return created, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id int64) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	inv, err := scanInvitation(s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

// GetPendingInvitation returns the pending invitation for an email within a
// team, if one exists. Used to reject duplicate invites.
func (s *Storage) GetPendingInvitation(ctx context.Context, teamID int64, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitation")
	defer span.End()

	inv, err := scanInvitation(s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{
			"team_id": teamID,
			"email":   email,
			"status":  types.InvitationPending,
		}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending invitation: %w", err)
	}

	return inv, nil
}

// FindPendingInvitationByEmail returns the most recent pending invitation
// for an email across all teams. Registration uses this to route a new
// identity into the inviting team.
func (s *Storage) FindPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindPendingInvitationByEmail")
	defer span.End()

	inv, err := scanInvitation(s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"email": email, "status": types.InvitationPending}).
		OrderBy("invited_at DESC").
		Limit(1).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pending invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) ListInvitationsByTeamID(ctx context.Context, teamID int64) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByTeamID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("invited_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		var inv types.Invitation
		if err := rows.Scan(&inv.ID, &inv.TeamID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.InvitedAt, &inv.Status); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// UpdateInvitationStatus moves an invitation out of pending/requested. The
// WHERE clause makes the transition one-way: accepted, cancelled and expired
// rows never match, so they cannot be reopened or rewritten.
func (s *Storage) UpdateInvitationStatus(ctx context.Context, id int64, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInvitationStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", status).
		Where(sq.Eq{
			"id":     id,
			"status": []string{types.InvitationPending, types.InvitationRequested},
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update invitation status: %w", err)
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
