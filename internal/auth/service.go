package auth

import (
	"errors"
	"fmt"

	"cleverpad/internal/models"
	"cleverpad/internal/store"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned where an operation requires an
	// identity the caller does not have.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Service implements signup, login, and guest session issuance.
type Service struct {
	store  store.Store
	hasher PasswordHasher
	tokens *TokenService
	logger *zap.Logger
}

func NewService(st store.Store, hasher PasswordHasher, tokens *TokenService, logger *zap.Logger) *Service {
	return &Service{store: st, hasher: hasher, tokens: tokens, logger: logger}
}

func (s *Service) Signup(name, email, password string) (models.Account, error) {
	if _, err := s.store.GetAccountByEmail(email); err == nil {
		return models.Account{}, store.ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.Account{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.Account{}, fmt.Errorf("signup: %w", err)
	}

	account, err := s.store.CreateAccount(name, email, hash)
	if err != nil {
		return models.Account{}, err
	}
	s.logger.Info("account created", zap.Int64("account_id", account.ID))
	return account, nil
}

// Login verifies credentials and issues a bearer token. An unknown email and
// a wrong password are not distinguishable to the caller.
func (s *Service) Login(email, password string) (string, error) {
	account, err := s.store.GetAccountByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(account.ID)
}

// GuestLogin mints a fresh anonymous session identifier. It always succeeds.
func (s *Service) GuestLogin() string {
	return NewSessionID()
}

func (s *Service) Whoami(id Identity) (models.Account, error) {
	if id.Kind != KindAccount {
		return models.Account{}, ErrUnauthenticated
	}
	return s.store.GetAccountByID(id.AccountID)
}
