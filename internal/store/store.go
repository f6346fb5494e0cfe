package store

import (
	"errors"

	"cleverpad/internal/models"
)

var (
	// ErrNotFound covers both a missing row and a row owned by another
	// partition; callers must not be able to tell these apart.
	ErrNotFound = errors.New("not found")

	ErrDuplicateEmail = errors.New("email already registered")
)

// Store defines the interface for all database operations
type Store interface {
	// Accounts
	CreateAccount(name, email, passwordHash string) (models.Account, error)
	GetAccountByEmail(email string) (models.Account, error)
	GetAccountByID(id int64) (models.Account, error)

	// Notes, always scoped to one owner partition
	CreateNote(owner models.Owner, title, content string) (models.Note, error)
	ListNotes(owner models.Owner) ([]models.Note, error)
	GetNote(id int64, owner models.Owner) (models.Note, error)
	UpdateNote(id int64, owner models.Owner, title, content string) (models.Note, error)
	DeleteNote(id int64, owner models.Owner) error

	Close() error
}
