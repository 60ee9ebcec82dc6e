// Package identity wraps the authentication provider the session resolver
// consumes. The resolver only sees the Provider interface; the local
// implementation keeps credentials in Postgres and session snapshots in the
// KV store under a provider-namespaced key.
package identity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TokenKeyPrefix namespaces persisted session snapshots in the KV store.
// The storage-recovery scan and the forced-logout purge match on it.
const TokenKeyPrefix = "auth:token:"

type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is the provider-issued authenticated session.
type Session struct {
	User         Principal `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

const (
	EventSignedIn       = "signed_in"
	EventSignedOut      = "signed_out"
	EventTokenRefreshed = "token_refreshed"
)

// Event is a provider-pushed session transition. Session is nil for
// signed_out events; PrincipalID identifies whose session ended.
type Event struct {
	Type        string
	Session     *Session
	PrincipalID uuid.UUID
}

type Provider interface {
	// CurrentSession returns the persisted session for a principal, nil when
	// logged out.
	CurrentSession(ctx context.Context, principalID uuid.UUID) (*Session, error)
	SignInWithCredentials(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, principalID uuid.UUID) error
	// Subscribe returns a stream of session transitions and a cancel func
	// that releases the subscription.
	Subscribe() (<-chan Event, func())
}

// eventBus fans provider events out to subscribers. Sends never block; a
// subscriber that falls behind misses events rather than stalling sign-in.
type eventBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[int]chan Event)}
}

func (b *eventBus) subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan Event, 16)
	b.subs[id] = ch
	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
}

func (b *eventBus) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
