package services

import "strconv"

// Key layout in the kv store. The key names and the JSON stored under them
// are an external contract; other tooling reads them directly.
const (
	// usersKey holds the JSON array of every registered account.
	usersKey = "users"

	// currentUserKey holds the JSON snapshot of the logged-in account.
	// Absent when nobody is logged in.
	currentUserKey = "currentUser"

	notesKeyPrefix = "notes_"
)

// notesKey derives the storage key for an owner's note collection.
func notesKey(ownerID int64) string {
	return notesKeyPrefix + strconv.FormatInt(ownerID, 10)
}
