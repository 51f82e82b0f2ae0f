// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/danielhkuo/storybooks/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidStatus = errors.New("status must be public or private")
)

// bodyPolicy allows the formatting produced by the story editor and strips
// scripts, event handlers and other active content
var bodyPolicy = bluemonday.UGCPolicy()

// normalizeForm trims and validates a submitted story, defaulting the
// status to public
func normalizeForm(form models.StoryForm) (models.StoryForm, error) {
	form.Title = strings.TrimSpace(form.Title)
	if form.Title == "" {
		return form, ErrTitleRequired
	}

	form.Status = strings.TrimSpace(form.Status)
	if form.Status == "" {
		form.Status = models.StatusPublic
	}
	if form.Status != models.StatusPublic && form.Status != models.StatusPrivate {
		return form, ErrInvalidStatus
	}

	form.Body = bodyPolicy.Sanitize(form.Body)
	return form, nil
}
