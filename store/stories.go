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

type Stories struct {
	db *sql.DB
}

func NewStories(db *sql.DB) *Stories {
	return &Stories{db: db}
}

// Every story query joins its author
const storySelect = `
	SELECT s.id, s.title, s.body, s.status, s.user_id, s.created_at,
	       u.id, u.google_id, u.display_name, u.first_name, u.last_name, u.image, u.created_at
	FROM stories s
	JOIN users u ON u.id = s.user_id
`

func scanStory(row interface{ Scan(...any) error }) (*models.Story, error) {
	var (
		s models.Story
		u models.User
	)
	err := row.Scan(
		&s.ID, &s.Title, &s.Body, &s.Status, &s.UserID, &s.CreatedAt,
		&u.ID, &u.GoogleID, &u.DisplayName, &u.FirstName, &u.LastName, &u.Image, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Author = &u
	return &s, nil
}

// Create stores a new story owned by userID
func (s *Stories) Create(ctx context.Context, userID string, form models.StoryForm) (*models.Story, error) {
	form, err := normalizeForm(form)
	if err != nil {
		return nil, err
	}

	story := &models.Story{
		ID:        uuid.NewString(),
		Title:     form.Title,
		Body:      form.Body,
		Status:    form.Status,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO stories (id, title, body, status, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, story.ID, story.Title, story.Body, story.Status, story.UserID, story.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}

	return story, nil
}

// Get returns the story with its author or ErrNotFound
func (s *Stories) Get(ctx context.Context, id string) (*models.Story, error) {
	story, err := scanStory(s.db.QueryRowContext(ctx, storySelect+`WHERE s.id = $1`, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("get story: %w", err)
	}
	return story, err
}

// Update replaces the title, body and status of a story
func (s *Stories) Update(ctx context.Context, id string, form models.StoryForm) (*models.Story, error) {
	form, err := normalizeForm(form)
	if err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE stories SET title = $1, body = $2, status = $3 WHERE id = $4
	`, form.Title, form.Body, form.Status, id)
	if err != nil {
		return nil, fmt.Errorf("update story: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}

// Delete removes a story
func (s *Stories) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM stories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete story: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPublic returns every public story, newest first
func (s *Stories) ListPublic(ctx context.Context) ([]models.Story, error) {
	return s.list(ctx, storySelect+`WHERE s.status = $1 ORDER BY s.created_at DESC`, models.StatusPublic)
}

// ListByUser returns all stories of a user, public and private, newest first
func (s *Stories) ListByUser(ctx context.Context, userID string) ([]models.Story, error) {
	return s.list(ctx, storySelect+`WHERE s.user_id = $1 ORDER BY s.created_at DESC`, userID)
}

// ListPublicByUser returns the public stories of a user, newest first
func (s *Stories) ListPublicByUser(ctx context.Context, userID string) ([]models.Story, error) {
	return s.list(ctx, storySelect+`WHERE s.user_id = $1 AND s.status = $2 ORDER BY s.created_at DESC`,
		userID, models.StatusPublic)
}

func (s *Stories) list(ctx context.Context, query string, args ...any) ([]models.Story, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	stories := []models.Story{}
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		stories = append(stories, *story)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	return stories, nil
}
