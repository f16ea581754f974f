package models

import "time"

// Note is a user-authored record with a title, free-form content and an
// optional locally cached cover image.
//
// ID is unique only within the owning account's collection. UserID is a weak
// reference to the owning Account by id.
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURI  string    `json:"image_uri,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
