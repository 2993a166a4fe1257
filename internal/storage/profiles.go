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

func (s *Storage) CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProfile")
	defer span.End()

	role := p.Role
	if role == "" {
		role = types.RoleMember
	}

	var newProfile types.Profile
	err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("id", "name", "role").
		Values(p.ID, p.Name, role).
		Suffix("RETURNING id, name, role, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&newProfile.ID, &newProfile.Name, &newProfile.Role, &newProfile.CreatedAt, &newProfile.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	return &newProfile, nil
}

// GetProfileByID returns the profile for an identity id, excluding
// soft-deleted rows.
func (s *Storage) GetProfileByID(ctx context.Context, id string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfileByID")
	defer span.End()

	var p types.Profile
	err := s.db.Statement(ctx).
		Select("id", "name", "role", "created_at", "updated_at", "deleted_at").
		From("profiles").
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Name, &p.Role, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

func (s *Storage) UpdateProfileName(ctx context.Context, id, name string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProfileName")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("profiles").
		Set("name", name).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
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

// SoftDeleteProfile stamps the deletion marker. The row is removed for good
// by the identity provider cascade once the identity itself is destroyed.
func (s *Storage) SoftDeleteProfile(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteProfile")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("profiles").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to soft delete profile: %w", err)
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

func (s *Storage) DeleteProfile(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProfile")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("profiles").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
