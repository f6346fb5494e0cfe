package auth

import (
	"testing"
	"time"

	"cleverpad/internal/models"
	"cleverpad/internal/store/sqlstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) (*Resolver, *TokenService, *sqlstore.SQLStore) {
	t.Helper()
	st, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	tokens, err := NewTokenService("test-secret", time.Minute)
	require.NoError(t, err)

	return NewResolver(tokens, st), tokens, st
}

func TestResolveAccountToken(t *testing.T) {
	resolver, tokens, st := newTestResolver(t)

	account, err := st.CreateAccount("Ada", "a@x.com", "hash")
	require.NoError(t, err)
	token, err := tokens.Issue(account.ID)
	require.NoError(t, err)

	id := resolver.Resolve(token, "")
	assert.Equal(t, AccountIdentity(account.ID), id)
}

func TestResolveTokenWinsOverSession(t *testing.T) {
	resolver, tokens, st := newTestResolver(t)

	account, err := st.CreateAccount("Ada", "a@x.com", "hash")
	require.NoError(t, err)
	token, err := tokens.Issue(account.ID)
	require.NoError(t, err)

	id := resolver.Resolve(token, "s1")
	assert.Equal(t, AccountIdentity(account.ID), id)
}

func TestResolveInvalidTokenNeverFallsBackToGuest(t *testing.T) {
	resolver, _, _ := newTestResolver(t)

	// A bad token with a session id present must not downgrade to guest.
	id := resolver.Resolve("garbage", "s1")
	assert.Equal(t, Anonymous, id)
}

func TestResolveTokenForMissingAccount(t *testing.T) {
	resolver, tokens, _ := newTestResolver(t)

	token, err := tokens.Issue(999)
	require.NoError(t, err)

	id := resolver.Resolve(token, "")
	assert.Equal(t, Anonymous, id)
}

func TestResolveGuestSession(t *testing.T) {
	resolver, _, _ := newTestResolver(t)

	id := resolver.Resolve("", "s1")
	assert.Equal(t, GuestIdentity("s1"), id)
}

func TestResolveNoCredentials(t *testing.T) {
	resolver, _, _ := newTestResolver(t)

	id := resolver.Resolve("", "")
	assert.Equal(t, Anonymous, id)
}

func TestIdentityOwner(t *testing.T) {
	owner, ok := AccountIdentity(7).Owner()
	require.True(t, ok)
	accountID, isAccount := owner.AccountID()
	assert.True(t, isAccount)
	assert.Equal(t, int64(7), accountID)

	owner, ok = GuestIdentity("s1").Owner()
	require.True(t, ok)
	sessionID, isSession := owner.SessionID()
	assert.True(t, isSession)
	assert.Equal(t, "s1", sessionID)

	_, ok = Anonymous.Owner()
	assert.False(t, ok)
	assert.True(t, models.Owner{}.IsZero())
}
