package notes

import (
	"testing"

	"cleverpad/internal/auth"
	"cleverpad/internal/store"
	"cleverpad/internal/store/sqlstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st, zap.NewNop())
}

func seedAccount(t *testing.T, svc *Service, email string) auth.Identity {
	t.Helper()
	account, err := svc.store.CreateAccount("Test", email, "hash")
	require.NoError(t, err)
	return auth.AccountIdentity(account.ID)
}

func TestCreateAndListScopedToOwner(t *testing.T) {
	svc := newTestService(t)
	ada := seedAccount(t, svc, "a@x.com")
	bob := seedAccount(t, svc, "b@x.com")
	guest := auth.GuestIdentity("s1")

	note, err := svc.Create(ada, "T", "C")
	require.NoError(t, err)
	assert.Equal(t, "T", note.Title)
	ownerID, ok := note.Owner.AccountID()
	require.True(t, ok)
	assert.Equal(t, ada.AccountID, ownerID)

	_, err = svc.Create(guest, "G", "C")
	require.NoError(t, err)

	adaNotes, err := svc.List(ada)
	require.NoError(t, err)
	require.Len(t, adaNotes, 1)
	assert.Equal(t, note.ID, adaNotes[0].ID)

	bobNotes, err := svc.List(bob)
	require.NoError(t, err)
	assert.Empty(t, bobNotes)

	otherGuestNotes, err := svc.List(auth.GuestIdentity("s2"))
	require.NoError(t, err)
	assert.Empty(t, otherGuestNotes)
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService(t)
	guest := auth.GuestIdentity("s1")

	first, err := svc.Create(guest, "first", "")
	require.NoError(t, err)
	second, err := svc.Create(guest, "second", "")
	require.NoError(t, err)

	list, err := svc.List(guest)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestCreateDefaultsTitle(t *testing.T) {
	svc := newTestService(t)

	note, err := svc.Create(auth.GuestIdentity("s1"), "", "")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", note.Title)
	assert.Equal(t, "", note.Content)
}

func TestForeignNoteIndistinguishableFromMissing(t *testing.T) {
	svc := newTestService(t)
	ada := seedAccount(t, svc, "a@x.com")
	bob := seedAccount(t, svc, "b@x.com")

	note, err := svc.Create(ada, "T", "C")
	require.NoError(t, err)

	// Bob probing Ada's note id must get exactly what a bogus id gets.
	_, err = svc.Get(bob, note.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = svc.Get(bob, 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Update(bob, note.ID, "X", "Y")
	assert.ErrorIs(t, err, store.ErrNotFound)
	err = svc.Delete(bob, note.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The note is untouched for its owner.
	got, err := svc.Get(ada, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
}

func TestUpdatePreservesOwner(t *testing.T) {
	svc := newTestService(t)
	guest := auth.GuestIdentity("s1")

	note, err := svc.Create(guest, "T", "C")
	require.NoError(t, err)

	updated, err := svc.Update(guest, note.ID, "T2", "C2")
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)

	sessionID, ok := updated.Owner.SessionID()
	require.True(t, ok)
	assert.Equal(t, "s1", sessionID)

	list, err := svc.List(auth.GuestIdentity("s2"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteThenGone(t *testing.T) {
	svc := newTestService(t)
	ada := seedAccount(t, svc, "a@x.com")

	note, err := svc.Create(ada, "T", "C")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ada, note.ID))

	_, err = svc.Get(ada, note.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	err = svc.Delete(ada, note.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAnonymous(t *testing.T) {
	svc := newTestService(t)

	list, err := svc.List(auth.Anonymous)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Create(auth.Anonymous, "T", "C")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	_, err = svc.Get(auth.Anonymous, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = svc.Update(auth.Anonymous, 1, "T", "C")
	assert.ErrorIs(t, err, store.ErrNotFound)
	err = svc.Delete(auth.Anonymous, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
