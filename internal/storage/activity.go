// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/brucewavesmarket/saas-starter/internal/types"
)

// RecordActivity appends an audit entry through the log_activity SQL
// function. Callers defer the write until after the request transaction has
// committed, so the team and profile rows the entry references are visible
// to the foreign key checks.
func (s *Storage) RecordActivity(ctx context.Context, e *types.ActivityEntry) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordActivity")
	defer span.End()

	var id int64
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("log_activity(?, ?, ?, ?)", e.TeamID, e.ProfileID, e.Action, e.IPAddress)).
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	return nil
}

func (s *Storage) ListActivityByTeamID(ctx context.Context, teamID int64, limit uint64) ([]*types.ActivityEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivityByTeamID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "team_id", "profile_id", "action", "occurred_at", "ip_address").
		From("activity_logs").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("occurred_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []*types.ActivityEntry
	for rows.Next() {
		var e types.ActivityEntry
		if err := rows.Scan(&e.ID, &e.TeamID, &e.ProfileID, &e.Action, &e.OccurredAt, &e.IPAddress); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// DeleteActivityByTeamID bulk-deletes a team's audit trail. Owner-only,
// enforced by the caller.
func (s *Storage) DeleteActivityByTeamID(ctx context.Context, teamID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteActivityByTeamID")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("activity_logs").
		Where(sq.Eq{"team_id": teamID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}
