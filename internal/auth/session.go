package auth

import "github.com/google/uuid"

// NewSessionID returns an opaque identifier for an anonymous guest session.
// Nothing is stored server-side; the value only becomes meaningful once a
// client attaches notes to it.
func NewSessionID() string {
	return uuid.New().String()
}
