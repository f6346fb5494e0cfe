package notes

import (
	"cleverpad/internal/auth"
	"cleverpad/internal/models"
	"cleverpad/internal/store"

	"go.uber.org/zap"
)

// Title applied when a note is created without one.
const defaultTitle = "Untitled"

// Service scopes every note operation to the caller's owner partition. A
// note created under one identity is invisible to every other identity: a
// lookup that misses the partition fails exactly like a lookup for an id
// that does not exist.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// List returns the caller's notes, newest first. Anonymous callers get an
// empty list, not an error.
func (s *Service) List(id auth.Identity) ([]models.Note, error) {
	owner, ok := id.Owner()
	if !ok {
		return []models.Note{}, nil
	}
	return s.store.ListNotes(owner)
}

// Create stamps the new note with the caller's partition. Anonymous callers
// cannot create notes.
func (s *Service) Create(id auth.Identity, title, content string) (models.Note, error) {
	owner, ok := id.Owner()
	if !ok {
		return models.Note{}, auth.ErrUnauthenticated
	}
	if title == "" {
		title = defaultTitle
	}
	note, err := s.store.CreateNote(owner, title, content)
	if err != nil {
		return models.Note{}, err
	}
	s.logger.Debug("note created", zap.Int64("note_id", note.ID), zap.Stringer("owner", owner))
	return note, nil
}

func (s *Service) Get(id auth.Identity, noteID int64) (models.Note, error) {
	owner, ok := id.Owner()
	if !ok {
		return models.Note{}, store.ErrNotFound
	}
	return s.store.GetNote(noteID, owner)
}

// Update replaces a note's title and content. The owner partition never
// changes after creation.
func (s *Service) Update(id auth.Identity, noteID int64, title, content string) (models.Note, error) {
	owner, ok := id.Owner()
	if !ok {
		return models.Note{}, store.ErrNotFound
	}
	return s.store.UpdateNote(noteID, owner, title, content)
}

func (s *Service) Delete(id auth.Identity, noteID int64) error {
	owner, ok := id.Owner()
	if !ok {
		return store.ErrNotFound
	}
	return s.store.DeleteNote(noteID, owner)
}
