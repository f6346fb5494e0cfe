package auth

import (
	"context"

	"cleverpad/internal/models"
	"cleverpad/internal/store"
)

type IdentityKind int

const (
	KindAnonymous IdentityKind = iota
	KindAccount
	KindGuest
)

// Identity is the resolved caller classification used to scope data access.
type Identity struct {
	Kind      IdentityKind
	AccountID int64
	SessionID string
}

var Anonymous = Identity{}

func AccountIdentity(accountID int64) Identity {
	return Identity{Kind: KindAccount, AccountID: accountID}
}

func GuestIdentity(sessionID string) Identity {
	return Identity{Kind: KindGuest, SessionID: sessionID}
}

// Owner returns the note partition this identity maps to. Anonymous callers
// own no partition.
func (i Identity) Owner() (models.Owner, bool) {
	switch i.Kind {
	case KindAccount:
		return models.AccountOwner(i.AccountID), true
	case KindGuest:
		return models.SessionOwner(i.SessionID), true
	default:
		return models.Owner{}, false
	}
}

// Mode selects how the API layer treats anonymous callers on protected
// routes: strict rejects them up front, permissive lets reads degrade to
// empty results.
type Mode string

const (
	ModeStrict     Mode = "strict"
	ModePermissive Mode = "permissive"
)

// Resolver classifies a request's credentials into an Identity.
type Resolver struct {
	tokens *TokenService
	store  store.Store
}

func NewResolver(tokens *TokenService, st store.Store) *Resolver {
	return &Resolver{tokens: tokens, store: st}
}

// Resolve applies the precedence rules: a bearer token, when present,
// decides the outcome on its own. An invalid token, or a valid token whose
// account no longer exists, degrades to Anonymous and never falls back to
// the session id. Only a request with no token at all can be a guest.
func (r *Resolver) Resolve(bearer, sessionID string) Identity {
	if bearer != "" {
		accountID, err := r.tokens.Verify(bearer)
		if err != nil {
			return Anonymous
		}
		if _, err := r.store.GetAccountByID(accountID); err != nil {
			return Anonymous
		}
		return AccountIdentity(accountID)
	}
	if sessionID != "" {
		return GuestIdentity(sessionID)
	}
	return Anonymous
}

// Context key for the resolved identity
type contextKey string

const identityKey contextKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext retrieves the resolved identity from the request
// context. Requests that never went through the middleware are Anonymous.
func IdentityFromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(identityKey).(Identity)
	return id
}
