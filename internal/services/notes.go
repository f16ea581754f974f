package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/filestore"
	"github.com/dmitrijs2005/notekeeper/internal/kvstore"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// SessionSource resolves the account that owns the current session.
// AuthService satisfies it; tests can substitute a stub.
type SessionSource interface {
	CurrentUser(ctx context.Context) *models.Account
}

// NotesService manages per-account note collections. Each collection is
// stored as one JSON array under notes_<ownerId>, newest note first.
//
// UpdateNote and DeleteNote resolve the owner from the current session: the
// editor only ever mutates the logged-in user's collection. A note id that
// is not in that collection yields common.ErrNoteNotFound regardless of
// whether it exists in someone else's.
type NotesService interface {
	CacheImage(ctx context.Context, uri string) string
	CreateNote(ctx context.Context, ownerID int64, title, content, imageURI string) error
	ListNotes(ctx context.Context, ownerID int64) []models.Note
	UpdateNote(ctx context.Context, noteID int64, title, content, imageURI string) error
	DeleteNote(ctx context.Context, noteID int64) error
}

type notesService struct {
	store    kvstore.Store
	files    filestore.FileStore
	sessions SessionSource
	log      logging.Logger
	locks    keyedMutex
}

// NewNotesService constructs a NotesService over the given store, image
// cache and session source.
func NewNotesService(store kvstore.Store, files filestore.FileStore, sessions SessionSource, log logging.Logger) NotesService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &notesService{store: store, files: files, sessions: sessions, log: log}
}

// CacheImage copies uri into the durable image directory. See
// filestore.FileStore for the exact semantics.
func (s *notesService) CacheImage(ctx context.Context, uri string) string {
	return s.files.CacheImage(ctx, uri)
}

// CreateNote prepends a new note to the owner's collection.
func (s *notesService) CreateNote(ctx context.Context, ownerID int64, title, content, imageURI string) error {
	uri := s.files.CacheImage(ctx, imageURI)

	key := notesKey(ownerID)
	unlock := s.locks.Lock(key)
	defer unlock()

	notes, err := s.loadNotes(ctx, key)
	if err != nil {
		return err
	}

	note := models.Note{
		ID:        nextNoteID(notes),
		UserID:    ownerID,
		Title:     title,
		Content:   content,
		ImageURI:  uri,
		CreatedAt: timeNow().UTC(),
	}
	notes = append([]models.Note{note}, notes...)

	return s.saveNotes(ctx, key, notes)
}

// ListNotes returns the owner's collection newest-first. Read failures
// degrade to an empty listing but are logged.
func (s *notesService) ListNotes(ctx context.Context, ownerID int64) []models.Note {
	notes, err := s.loadNotes(ctx, notesKey(ownerID))
	if err != nil {
		s.log.Warn(ctx, "failed to read notes", "owner_id", ownerID, "error", err)
		return nil
	}
	return notes
}

// UpdateNote replaces title/content/image on the matching note in the
// current session owner's collection, preserving id, owner and creation
// time. The image is re-cached only when the supplied uri differs from the
// stored one, so unrelated edits never trigger copies.
func (s *notesService) UpdateNote(ctx context.Context, noteID int64, title, content, imageURI string) error {
	owner := s.sessions.CurrentUser(ctx)
	if owner == nil {
		return common.ErrNoSessionActive
	}

	key := notesKey(owner.ID)
	unlock := s.locks.Lock(key)
	defer unlock()

	notes, err := s.loadNotes(ctx, key)
	if err != nil {
		return err
	}

	idx := -1
	for i := range notes {
		if notes[i].ID == noteID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return common.ErrNoteNotFound
	}

	finalURI := imageURI
	if imageURI != "" && imageURI != notes[idx].ImageURI {
		finalURI = s.files.CacheImage(ctx, imageURI)
	}

	notes[idx].Title = title
	notes[idx].Content = content
	notes[idx].ImageURI = finalURI

	return s.saveNotes(ctx, key, notes)
}

// DeleteNote removes the matching note from the current session owner's
// collection. Deleting an id that is not there succeeds as a no-op.
func (s *notesService) DeleteNote(ctx context.Context, noteID int64) error {
	owner := s.sessions.CurrentUser(ctx)
	if owner == nil {
		return common.ErrNoSessionActive
	}

	key := notesKey(owner.ID)
	unlock := s.locks.Lock(key)
	defer unlock()

	notes, err := s.loadNotes(ctx, key)
	if err != nil {
		return err
	}

	filtered := notes[:0]
	for _, n := range notes {
		if n.ID != noteID {
			filtered = append(filtered, n)
		}
	}

	return s.saveNotes(ctx, key, filtered)
}

func (s *notesService) loadNotes(ctx context.Context, key string) ([]models.Note, error) {
	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading notes: %v", common.ErrPersistence, err)
	}

	var notes []models.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, fmt.Errorf("%w: decoding notes: %v", common.ErrPersistence, err)
	}
	return notes, nil
}

func (s *notesService) saveNotes(ctx context.Context, key string, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("%w: encoding notes: %v", common.ErrPersistence, err)
	}
	if err := s.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("%w: saving notes: %v", common.ErrPersistence, err)
	}
	return nil
}

// nextNoteID mirrors nextAccountID: clock-derived, bumped past collisions
// within the collection. Uniqueness is only per owner.
func nextNoteID(notes []models.Note) int64 {
	id := timeNow().UnixMilli()
	for noteTaken(notes, id) {
		id++
	}
	return id
}

func noteTaken(notes []models.Note, id int64) bool {
	for _, n := range notes {
		if n.ID == id {
			return true
		}
	}
	return false
}
