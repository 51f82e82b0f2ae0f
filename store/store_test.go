// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/storybooks/models"
	"github.com/danielhkuo/storybooks/store"
	"github.com/danielhkuo/storybooks/testutil"
)

func TestUsers_FindOrCreateByGoogleID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	users := store.NewUsers(conn)
	ctx := context.Background()

	profile := models.GoogleProfile{
		ID:         "google-1",
		Name:       "Jane Doe",
		GivenName:  "Jane",
		FamilyName: "Doe",
		Picture:    "https://example.com/jane.png",
	}

	created, isNew, err := users.FindOrCreateByGoogleID(ctx, profile)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Jane Doe", created.DisplayName)
	assert.Equal(t, "Jane", created.FirstName)
	assert.Equal(t, "Doe", created.LastName)

	found, isNew, err := users.FindOrCreateByGoogleID(ctx, profile)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, found.ID)

	byID, err := users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "google-1", byID.GoogleID)
	assert.Equal(t, "https://example.com/jane.png", byID.Image)
}

func TestUsers_DisplayNameFallback(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	users := store.NewUsers(conn)

	user, _, err := users.FindOrCreateByGoogleID(context.Background(), models.GoogleProfile{ID: "g", GivenName: "Solo"})
	require.NoError(t, err)
	assert.Equal(t, "Solo", user.DisplayName)
}

func TestUsers_FindByIDNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	users := store.NewUsers(conn)

	_, err := users.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStories_CreateAndGet(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	stories := store.NewStories(conn)
	user := testutil.CreateTestUser(t, conn, "Ada")
	ctx := context.Background()

	created, err := stories.Create(ctx, user.ID, models.StoryForm{
		Title:  "  My Story  ",
		Body:   `<p onclick="steal()">Hello <strong>world</strong></p><script>alert(1)</script>`,
		Status: "",
	})
	require.NoError(t, err)
	assert.Equal(t, "My Story", created.Title)
	assert.Equal(t, models.StatusPublic, created.Status)
	assert.NotContains(t, created.Body, "script")
	assert.NotContains(t, created.Body, "onclick")
	assert.Contains(t, created.Body, "<strong>world</strong>")

	got, err := stories.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Body, got.Body)
	assert.Equal(t, user.ID, got.UserID)
	require.NotNil(t, got.Author)
	assert.Equal(t, "Ada", got.Author.FirstName)
}

func TestStories_Validation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	stories := store.NewStories(conn)
	user := testutil.CreateTestUser(t, conn, "Ada")
	ctx := context.Background()

	_, err := stories.Create(ctx, user.ID, models.StoryForm{Title: "   ", Body: "b"})
	assert.ErrorIs(t, err, store.ErrTitleRequired)

	_, err = stories.Create(ctx, user.ID, models.StoryForm{Title: "t", Status: "draft"})
	assert.ErrorIs(t, err, store.ErrInvalidStatus)
}

func TestStories_Update(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	stories := store.NewStories(conn)
	user := testutil.CreateTestUser(t, conn, "Ada")
	story := testutil.CreateTestStory(t, conn, user.ID, "Original", models.StatusPublic)
	ctx := context.Background()

	updated, err := stories.Update(ctx, story.ID, models.StoryForm{
		Title:  "Changed",
		Body:   "<p>new body</p>",
		Status: models.StatusPrivate,
	})
	require.NoError(t, err)
	assert.Equal(t, "Changed", updated.Title)
	assert.Equal(t, "<p>new body</p>", updated.Body)
	assert.Equal(t, models.StatusPrivate, updated.Status)

	_, err = stories.Update(ctx, "missing", models.StoryForm{Title: "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStories_Delete(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	stories := store.NewStories(conn)
	user := testutil.CreateTestUser(t, conn, "Ada")
	story := testutil.CreateTestStory(t, conn, user.ID, "Doomed", models.StatusPublic)
	ctx := context.Background()

	require.NoError(t, stories.Delete(ctx, story.ID))

	_, err := stories.Get(ctx, story.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, stories.Delete(ctx, story.ID), store.ErrNotFound)
}

func TestStories_Listing(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	stories := store.NewStories(conn)
	ada := testutil.CreateTestUser(t, conn, "Ada")
	bob := testutil.CreateTestUser(t, conn, "Bob")
	ctx := context.Background()

	testutil.CreateTestStory(t, conn, ada.ID, "Ada public", models.StatusPublic)
	testutil.CreateTestStory(t, conn, ada.ID, "Ada private", models.StatusPrivate)
	testutil.CreateTestStory(t, conn, bob.ID, "Bob public", models.StatusPublic)

	titles := func(list []models.Story) []string {
		out := make([]string, 0, len(list))
		for _, s := range list {
			out = append(out, s.Title)
		}
		return out
	}

	public, err := stories.ListPublic(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ada public", "Bob public"}, titles(public))
	for _, s := range public {
		require.NotNil(t, s.Author)
	}

	mine, err := stories.ListByUser(ctx, ada.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ada public", "Ada private"}, titles(mine))

	adaPublic, err := stories.ListPublicByUser(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ada public"}, titles(adaPublic))

	none, err := stories.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
