// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/storybooks/models"
)

type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

const userColumns = `id, google_id, display_name, first_name, last_name, image, created_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.GoogleID, &u.DisplayName, &u.FirstName, &u.LastName, &u.Image, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user with the given ID or ErrNotFound
func (s *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, err
}

// FindOrCreateByGoogleID returns the user linked to the Google profile,
// creating it on first login
func (s *Users) FindOrCreateByGoogleID(ctx context.Context, profile models.GoogleProfile) (*models.User, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = $1`, profile.ID)
	user, err := scanUser(row)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("find user by google id: %w", err)
	}

	user = &models.User{
		ID:          uuid.NewString(),
		GoogleID:    profile.ID,
		DisplayName: profile.Name,
		FirstName:   profile.GivenName,
		LastName:    profile.FamilyName,
		Image:       profile.Picture,
		CreatedAt:   time.Now().UTC(),
	}
	if user.DisplayName == "" {
		user.DisplayName = user.FirstName
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, google_id, display_name, first_name, last_name, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.GoogleID, user.DisplayName, user.FirstName, user.LastName, user.Image, user.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	return user, true, nil
}
