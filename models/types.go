package models

import "time"

// Story status constants
const (
	StatusPublic  = "public"
	StatusPrivate = "private"
)

// Domain types

type User struct {
	ID          string    `json:"id"`
	GoogleID    string    `json:"-"` // Never expose in JSON
	DisplayName string    `json:"display_name"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

type Story struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Author is populated by listing queries that join the users table.
	Author *User `json:"author,omitempty"`
}

// IsPublic reports whether the story is visible to other users.
func (s Story) IsPublic() bool {
	return s.Status == StatusPublic
}

// GoogleProfile is the subset of the Google userinfo response used to
// create or find a user.
type GoogleProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// Request types

// StoryForm holds the fields submitted by the add and edit forms.
type StoryForm struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
