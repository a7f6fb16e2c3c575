package models

import "time"

type User struct {
	ID        int
	Username  string
	Password  string
	CreatedAt time.Time
}

// Note is one piece of text content. Slug is unique across all users;
// AuthorID is set at creation and never changes.
type Note struct {
	ID        int
	Title     string
	Text      string
	Slug      string
	AuthorID  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
