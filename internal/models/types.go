package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Account struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type ownerKind int

const (
	ownerNone ownerKind = iota
	ownerAccount
	ownerSession
)

// Owner is the partition a note belongs to: exactly one of an account id or
// a guest session id. The zero value owns nothing and never matches a note.
type Owner struct {
	kind      ownerKind
	accountID int64
	sessionID string
}

func AccountOwner(accountID int64) Owner {
	return Owner{kind: ownerAccount, accountID: accountID}
}

func SessionOwner(sessionID string) Owner {
	return Owner{kind: ownerSession, sessionID: sessionID}
}

func (o Owner) AccountID() (int64, bool) {
	return o.accountID, o.kind == ownerAccount
}

func (o Owner) SessionID() (string, bool) {
	return o.sessionID, o.kind == ownerSession
}

func (o Owner) IsZero() bool {
	return o.kind == ownerNone
}

func (o Owner) String() string {
	switch o.kind {
	case ownerAccount:
		return fmt.Sprintf("account:%d", o.accountID)
	case ownerSession:
		return "session:" + o.sessionID
	default:
		return "none"
	}
}

type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Owner     Owner     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON flattens the owner partition into owner_id or session_id so
// the wire shape matches the two-column storage layout.
func (n Note) MarshalJSON() ([]byte, error) {
	type alias Note
	out := struct {
		alias
		OwnerID   *int64  `json:"owner_id,omitempty"`
		SessionID *string `json:"session_id,omitempty"`
	}{alias: alias(n)}
	if id, ok := n.Owner.AccountID(); ok {
		out.OwnerID = &id
	}
	if sid, ok := n.Owner.SessionID(); ok {
		out.SessionID = &sid
	}
	return json.Marshal(out)
}
