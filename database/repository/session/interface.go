package sessionRepo

import (
	"context"

	"multisport/models"
)

// SessionStore is the per-conversation state store. Eviction is TTL-based
// and externally managed; every read or write refreshes the TTL.
type SessionStore interface {
	// Create allocates a new empty session with a fresh identifier.
	Create(ctx context.Context) (*models.Session, error)
	// Get fetches a session, creating an empty one when the identifier is
	// unknown or expired.
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	// Update writes the session back (read-modify-write; concurrent turns
	// on one session are not serialized here).
	Update(ctx context.Context, session *models.Session) error
}
