package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cleverpad/internal/models"
	"cleverpad/internal/store"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// DBType represents the type of database
type DBType string

const (
	SQLite   DBType = "sqlite3"
	Postgres DBType = "postgres"
)

// SQLStore implements the Store interface for SQL databases
type SQLStore struct {
	db     *sql.DB
	dbType DBType
}

// New creates a new SQLStore with the given driver and connection string
func New(driver, connStr string) (*SQLStore, error) {
	db, err := sql.Open(driver, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLStore{
		db:     db,
		dbType: DBType(driver),
	}

	if err := s.initSchema(); err != nil {
		return nil, err
	}

	return s, nil
}

// rebind converts ? placeholders to $1, $2, etc. for PostgreSQL
func (s *SQLStore) rebind(query string) string {
	if s.dbType == SQLite {
		return query
	}
	var result strings.Builder
	argNum := 1
	for _, c := range query {
		if c == '?' {
			result.WriteString(fmt.Sprintf("$%d", argNum))
			argNum++
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

func (s *SQLStore) initSchema() error {
	var createAccountsTable, createNotesTable string

	if s.dbType == Postgres {
		createAccountsTable = `
		CREATE TABLE IF NOT EXISTS accounts (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		);`

		createNotesTable = `
		CREATE TABLE IF NOT EXISTS notes (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			owner_id INTEGER REFERENCES accounts(id) ON DELETE CASCADE,
			session_id TEXT,
			created_at TIMESTAMP NOT NULL,
			CHECK ((owner_id IS NULL) <> (session_id IS NULL))
		);`
	} else {
		createAccountsTable = `
		CREATE TABLE IF NOT EXISTS accounts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		);`

		createNotesTable = `
		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			owner_id INTEGER,
			session_id TEXT,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(owner_id) REFERENCES accounts(id) ON DELETE CASCADE,
			CHECK ((owner_id IS NULL) <> (session_id IS NULL))
		);`
	}

	for _, stmt := range []string{createAccountsTable, createNotesTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// ownerFilter returns the WHERE fragment and argument scoping a query to one
// owner partition.
func ownerFilter(owner models.Owner) (string, any) {
	if id, ok := owner.AccountID(); ok {
		return "owner_id = ?", id
	}
	sessionID, _ := owner.SessionID()
	return "session_id = ?", sessionID
}

// Account functions
func (s *SQLStore) CreateAccount(name, email, passwordHash string) (models.Account, error) {
	var id int64
	if s.dbType == Postgres {
		err := s.db.QueryRow(s.rebind("INSERT INTO accounts (name, email, password_hash) VALUES (?, ?, ?) RETURNING id"), name, email, passwordHash).Scan(&id)
		if err != nil {
			if isUniqueViolation(err) {
				return models.Account{}, store.ErrDuplicateEmail
			}
			return models.Account{}, err
		}
	} else {
		result, err := s.db.Exec(s.rebind("INSERT INTO accounts (name, email, password_hash) VALUES (?, ?, ?)"), name, email, passwordHash)
		if err != nil {
			if isUniqueViolation(err) {
				return models.Account{}, store.ErrDuplicateEmail
			}
			return models.Account{}, err
		}
		id, err = result.LastInsertId()
		if err != nil {
			return models.Account{}, err
		}
	}
	return models.Account{ID: id, Name: name, Email: email, PasswordHash: passwordHash}, nil
}

func (s *SQLStore) GetAccountByEmail(email string) (models.Account, error) {
	var a models.Account
	err := s.db.QueryRow(s.rebind("SELECT id, name, email, password_hash FROM accounts WHERE email = ?"), email).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash)
	if err == sql.ErrNoRows {
		return models.Account{}, store.ErrNotFound
	}
	return a, err
}

func (s *SQLStore) GetAccountByID(id int64) (models.Account, error) {
	var a models.Account
	err := s.db.QueryRow(s.rebind("SELECT id, name, email, password_hash FROM accounts WHERE id = ?"), id).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash)
	if err == sql.ErrNoRows {
		return models.Account{}, store.ErrNotFound
	}
	return a, err
}

// Note functions
func (s *SQLStore) CreateNote(owner models.Owner, title, content string) (models.Note, error) {
	var ownerID, sessionID any
	if id, ok := owner.AccountID(); ok {
		ownerID = id
	}
	if sid, ok := owner.SessionID(); ok {
		sessionID = sid
	}
	createdAt := time.Now().UTC()

	var id int64
	if s.dbType == Postgres {
		err := s.db.QueryRow(s.rebind("INSERT INTO notes (title, content, owner_id, session_id, created_at) VALUES (?, ?, ?, ?, ?) RETURNING id"),
			title, content, ownerID, sessionID, createdAt).Scan(&id)
		if err != nil {
			return models.Note{}, err
		}
	} else {
		result, err := s.db.Exec(s.rebind("INSERT INTO notes (title, content, owner_id, session_id, created_at) VALUES (?, ?, ?, ?, ?)"),
			title, content, ownerID, sessionID, createdAt)
		if err != nil {
			return models.Note{}, err
		}
		id, err = result.LastInsertId()
		if err != nil {
			return models.Note{}, err
		}
	}
	return models.Note{ID: id, Title: title, Content: content, Owner: owner, CreatedAt: createdAt}, nil
}

func (s *SQLStore) ListNotes(owner models.Owner) ([]models.Note, error) {
	filter, arg := ownerFilter(owner)
	rows, err := s.db.Query(s.rebind("SELECT id, title, content, created_at FROM notes WHERE "+filter+" ORDER BY id DESC"), arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		n := models.Note{Owner: owner}
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *SQLStore) GetNote(id int64, owner models.Owner) (models.Note, error) {
	filter, arg := ownerFilter(owner)
	n := models.Note{Owner: owner}
	err := s.db.QueryRow(s.rebind("SELECT id, title, content, created_at FROM notes WHERE id = ? AND "+filter), id, arg).
		Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Note{}, store.ErrNotFound
	}
	if err != nil {
		return models.Note{}, err
	}
	return n, nil
}

// UpdateNote mutates title and content only; the owner columns are never
// touched after creation.
func (s *SQLStore) UpdateNote(id int64, owner models.Owner, title, content string) (models.Note, error) {
	filter, arg := ownerFilter(owner)
	result, err := s.db.Exec(s.rebind("UPDATE notes SET title = ?, content = ? WHERE id = ? AND "+filter), title, content, id, arg)
	if err != nil {
		return models.Note{}, err
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.Note{}, store.ErrNotFound
	}
	return s.GetNote(id, owner)
}

func (s *SQLStore) DeleteNote(id int64, owner models.Owner) error {
	filter, arg := ownerFilter(owner)
	result, err := s.db.Exec(s.rebind("DELETE FROM notes WHERE id = ? AND "+filter), id, arg)
	if err != nil {
		return err
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
