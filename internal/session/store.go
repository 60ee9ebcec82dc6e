// Package session holds the per-principal resolution state machine. A Store
// bootstraps the provider session under a timeout, resolves the profile row
// and role through a lookup ladder, tracks provider auth events, and exposes
// an immutable snapshot the view router and handlers read from.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/impersonation"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/storage"
)

// State is the resolver's lifecycle position.
type State int

const (
	// StateLoading is the initial state before bootstrap settles.
	StateLoading State = iota
	// StateLoggedOut means no session exists and none could be recovered.
	StateLoggedOut
	// StateResolving means a session exists and the profile lookup is running.
	StateResolving
	// StateReady means principal, profile and role are all resolved.
	StateReady
	// StateTimedOut is terminal until an auth event or explicit reset: the
	// session exists but no usable role could be determined.
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoggedOut:
		return "logged_out"
	case StateResolving:
		return "resolving"
	case StateReady:
		return "ready"
	case StateTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// ProfileStore is the slice of the profile service the resolver needs.
type ProfileStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	ByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// Config bounds the resolver's lookups and controls the email fallback.
type Config struct {
	// Timeout caps each individual await: session bootstrap and each profile
	// lookup get their own budget.
	Timeout time.Duration
	// SuperAdminEmail maps to the super_admin fallback role when the profile
	// tables are unreachable.
	SuperAdminEmail string
	// FallbackRoleEnabled gates the email-based role guess entirely. When
	// false, a failed lookup ladder lands in StateTimedOut.
	FallbackRoleEnabled bool
}

// Snapshot is a point-in-time copy of the resolver state. Fields are copies;
// mutating a snapshot never touches the Store.
type Snapshot struct {
	State     State
	Loading   bool
	TimedOut  bool
	Principal *identity.Principal
	Profile   *models.Profile
	Role      models.Role
}

// Store resolves and tracks one principal's session. All transitions are
// guarded by a generation counter: any async result that started before a
// clear or logout is discarded instead of resurrecting the old session.
type Store struct {
	provider identity.Provider
	profiles ProfileStore
	kv       storage.Store
	imp      *impersonation.Controller
	cfg      Config
	log      *zap.Logger
	hint     identity.Principal

	mu        sync.Mutex
	state     State
	principal *identity.Principal
	profile   *models.Profile
	role      models.Role
	gen       int

	cancelSub func()
	closeOnce sync.Once
}

// NewStore wires a resolver for one principal and starts watching provider
// events. Call Initialize to run the bootstrap; call Close to release the
// event subscription.
func NewStore(provider identity.Provider, profiles ProfileStore, kv storage.Store, imp *impersonation.Controller, cfg Config, log *zap.Logger, hint identity.Principal) *Store {
	s := &Store{
		provider: provider,
		profiles: profiles,
		kv:       kv,
		imp:      imp,
		cfg:      cfg,
		log:      log.With(zap.String("principal_id", hint.ID.String())),
		hint:     hint,
		state:    StateLoading,
	}

	events, cancel := provider.Subscribe()
	s.cancelSub = cancel
	go s.watch(events)

	return s
}

// Initialize runs the session bootstrap: current session under a timeout,
// storage recovery when the provider stalls or errors, then the profile
// lookup ladder. Safe to call more than once; a resolved store is not
// downgraded.
func (s *Store) Initialize(ctx context.Context) {
	gen := s.generation()

	sess, err := raceTimeout(ctx, s.cfg.Timeout, "session bootstrap", func(ctx context.Context) (*identity.Session, error) {
		return s.provider.CurrentSession(ctx, s.hint.ID)
	})
	if err != nil {
		s.log.Warn("session bootstrap failed, scanning storage for a recoverable principal", zap.Error(err))
		if principal, ok := recoverPrincipalFromStorage(ctx, s.kv, s.hint.ID); ok {
			s.resolveProfile(ctx, gen, principal)
			return
		}
		s.applyLoggedOut(gen)
		return
	}

	if sess == nil {
		s.applyLoggedOut(gen)
		return
	}
	s.resolveProfile(ctx, gen, sess.User)
}

// resolveProfile runs the lookup ladder for a principal: primary-key row,
// then the user_id column kept for older schemas, then the email-based role
// guess. Each lookup gets its own timeout budget. Re-resolving a principal
// that is already ready is a no-op; the store never drops back to a loading
// state for it.
func (s *Store) resolveProfile(ctx context.Context, gen int, principal identity.Principal) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	if s.state == StateReady && s.profile != nil && s.profile.BoundPrincipalID() == principal.ID {
		s.mu.Unlock()
		return
	}
	s.state = StateResolving
	p := principal
	s.principal = &p
	s.mu.Unlock()

	profile, err := raceTimeout(ctx, s.cfg.Timeout, "profile lookup by id", func(ctx context.Context) (*models.Profile, error) {
		return s.profiles.ByID(ctx, principal.ID)
	})
	if err != nil {
		s.log.Warn("profile lookup by id failed", zap.Error(err))
	}
	if profile == nil {
		profile, err = raceTimeout(ctx, s.cfg.Timeout, "profile lookup by user_id", func(ctx context.Context) (*models.Profile, error) {
			return s.profiles.ByUserID(ctx, principal.ID)
		})
		if err != nil {
			s.log.Warn("profile lookup by user_id failed", zap.Error(err))
		}
	}

	if profile != nil {
		role, roleErr := models.ParseRole(string(profile.Role))
		if roleErr == nil {
			s.applyReady(gen, principal, profile, role)
			return
		}
		s.log.Warn("profile carries no usable role", zap.String("role", string(profile.Role)))
	}

	if s.cfg.FallbackRoleEnabled && principal.Email != "" {
		role := models.RoleOwner
		if principal.Email == s.cfg.SuperAdminEmail {
			role = models.RoleSuperAdmin
		}
		s.log.Warn("profile unavailable, falling back to email-derived role",
			zap.String("email", principal.Email),
			zap.String("role", string(role)),
		)
		fallback := &models.Profile{ID: principal.ID, Email: principal.Email, Role: role}
		s.applyReady(gen, principal, fallback, role)
		return
	}

	s.applyTimedOut(gen, principal)
}

// watch applies provider events to the store. Sign-out clears synchronously;
// a fresh session for the same resolved principal only refreshes tokens,
// while a different or unresolved principal re-runs the lookup ladder.
func (s *Store) watch(events <-chan identity.Event) {
	for ev := range events {
		s.handleEvent(ev)
	}
}

func (s *Store) handleEvent(ev identity.Event) {
	switch ev.Type {
	case identity.EventSignedOut:
		if ev.PrincipalID == s.hint.ID {
			s.clear()
		}
	case identity.EventSignedIn, identity.EventTokenRefreshed:
		if ev.Session == nil || ev.Session.User.ID != s.hint.ID {
			return
		}

		s.mu.Lock()
		gen := s.gen
		resolved := s.state == StateReady && s.profile != nil && s.profile.BoundPrincipalID() == ev.Session.User.ID
		if resolved {
			p := ev.Session.User
			s.principal = &p
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 3*s.cfg.Timeout)
		s.resolveProfile(ctx, gen, ev.Session.User)
		cancel()
	}
}

// ForceLogout tears the session down completely: impersonation flag, provider
// session, then local state. Provider failures are logged and swallowed so
// the local clear always lands.
func (s *Store) ForceLogout(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()

	if err := s.imp.Clear(ctx, s.hint.ID); err != nil {
		s.log.Warn("failed to clear impersonation flag during logout", zap.Error(err))
	}
	if err := s.provider.SignOut(ctx, s.hint.ID); err != nil {
		s.log.Warn("provider sign-out failed, clearing local state anyway", zap.Error(err))
	}

	s.clear()
}

// PurgeStorage is the recovery-screen escape hatch: it deletes this
// principal's persisted session snapshot and impersonation flag, then forces
// a logout.
func (s *Store) PurgeStorage(ctx context.Context) {
	if err := s.kv.Delete(ctx, identity.TokenKeyPrefix+s.hint.ID.String()); err != nil {
		s.log.Warn("failed to purge session snapshot", zap.Error(err))
	}
	s.ForceLogout(ctx)
}

// Snapshot returns a copy of the current resolver state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:    s.state,
		Loading:  s.state == StateLoading || s.state == StateResolving,
		TimedOut: s.state == StateTimedOut,
		Role:     s.role,
	}
	if s.principal != nil {
		p := *s.principal
		snap.Principal = &p
	}
	if s.profile != nil {
		profile := *s.profile
		snap.Profile = &profile
	}
	return snap
}

// Principal returns the principal this store was built for.
func (s *Store) Principal() identity.Principal {
	return s.hint
}

// Close releases the provider event subscription.
func (s *Store) Close() {
	s.closeOnce.Do(s.cancelSub)
}

func (s *Store) generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.principal = nil
	s.profile = nil
	s.role = ""
	s.state = StateLoggedOut
}

func (s *Store) applyReady(gen int, principal identity.Principal, profile *models.Profile, role models.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	p := principal
	s.principal = &p
	s.profile = profile
	s.role = role
	s.state = StateReady
}

func (s *Store) applyTimedOut(gen int, principal identity.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	p := principal
	s.principal = &p
	s.profile = nil
	s.role = ""
	s.state = StateTimedOut
}

func (s *Store) applyLoggedOut(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.principal = nil
	s.profile = nil
	s.role = ""
	s.state = StateLoggedOut
}
