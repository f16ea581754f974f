// Package models defines the persisted record types and user input types.
//
// The JSON field names on Account and Note are an external contract: other
// tooling reads the raw values out of the key-value store, so they must not
// change.
package models

import "time"

// Account is a registered user identity.
//
// Passwords are stored in cleartext and compared by exact equality. This is
// a documented property of the storage format, not an oversight; see the
// security notes in DESIGN.md before reusing this type anywhere else.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}
