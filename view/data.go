// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import "github.com/danielhkuo/storybooks/models"

// User converts u to the shape templates read. Nil gives nil.
func User(u *models.User) map[string]any {
	if u == nil {
		return nil
	}
	return map[string]any{
		"id":          u.ID,
		"displayName": u.DisplayName,
		"firstName":   u.FirstName,
		"lastName":    u.LastName,
		"image":       u.Image,
		"createdAt":   u.CreatedAt,
	}
}

// Story converts s, including its author, to the shape templates read
func Story(s *models.Story) map[string]any {
	if s == nil {
		return nil
	}

	author := User(s.Author)
	if author == nil {
		author = map[string]any{"id": s.UserID}
	}

	return map[string]any{
		"id":        s.ID,
		"title":     s.Title,
		"body":      s.Body,
		"status":    s.Status,
		"createdAt": s.CreatedAt,
		"user":      author,
	}
}

// Stories converts a story list
func Stories(stories []models.Story) []map[string]any {
	out := make([]map[string]any, 0, len(stories))
	for i := range stories {
		out = append(out, Story(&stories[i]))
	}
	return out
}
