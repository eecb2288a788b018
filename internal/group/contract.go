package group

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fkhayef/partymatch/internal/profile"
)

// IdentityLookup resolves callers and arbitrary accounts to identities
type IdentityLookup interface {
	BySession(ctx context.Context, sessionID string) (*profile.Identity, error)
	ByAccountID(ctx context.Context, aid int64) (*profile.Identity, error)
}

// Notifier pushes an event to one profile's real-time channel.
// Send must not block; undeliverable events are dropped.
type Notifier interface {
	Send(profileID string, evt Event)
}

// IDGenerator produces invite ids
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs without dashes
type UUIDGenerator struct{}

// NewID returns a fresh 32 character hex id
func (UUIDGenerator) NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
