package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/impersonation"
	"github.com/voxali/salon-admin/internal/storage"
)

// Manager owns one Store per authenticated principal. Bootstrap is
// once-per-principal: concurrent requests share a single Initialize run and
// every later call returns the live store.
type Manager struct {
	provider identity.Provider
	profiles ProfileStore
	kv       storage.Store
	imp      *impersonation.Controller
	cfg      Config
	log      *zap.Logger

	mu      sync.Mutex
	entries map[uuid.UUID]*entry
}

type entry struct {
	store *Store
	once  sync.Once
}

func NewManager(provider identity.Provider, profiles ProfileStore, kv storage.Store, imp *impersonation.Controller, cfg Config, log *zap.Logger) *Manager {
	return &Manager{
		provider: provider,
		profiles: profiles,
		kv:       kv,
		imp:      imp,
		cfg:      cfg,
		log:      log,
		entries:  make(map[uuid.UUID]*entry),
	}
}

// Bootstrap returns the principal's store, creating and initializing it on
// first use.
func (m *Manager) Bootstrap(ctx context.Context, principal identity.Principal) *Store {
	e := m.entryFor(principal)
	e.once.Do(func() { e.store.Initialize(ctx) })
	return e.store
}

// Peek returns the principal's store without bootstrapping, nil when none
// exists yet.
func (m *Manager) Peek(principalID uuid.UUID) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[principalID]
	if !ok {
		return nil
	}
	return e.store
}

// Drop closes and forgets a principal's store. The next Bootstrap builds a
// fresh one.
func (m *Manager) Drop(principalID uuid.UUID) {
	m.mu.Lock()
	e, ok := m.entries[principalID]
	if ok {
		delete(m.entries, principalID)
	}
	m.mu.Unlock()

	if ok {
		e.store.Close()
	}
}

// Close releases every store's event subscription.
func (m *Manager) Close() {
	m.mu.Lock()
	entries := make([]*entry, 0, len(m.entries))
	for _, e := range m.entries {
		entries = append(entries, e)
	}
	m.entries = make(map[uuid.UUID]*entry)
	m.mu.Unlock()

	for _, e := range entries {
		e.store.Close()
	}
}

func (m *Manager) entryFor(principal identity.Principal) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[principal.ID]; ok {
		return e
	}
	e := &entry{store: NewStore(m.provider, m.profiles, m.kv, m.imp, m.cfg, m.log, principal)}
	m.entries[principal.ID] = e
	return e
}
