package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/storage"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// LocalProvider implements Provider on top of Postgres credentials, JWT
// token pairs and a KV session snapshot. It is the only place that writes
// under TokenKeyPrefix.
type LocalProvider struct {
	db     *database.DB
	kv     storage.Store
	tokens *TokenService
	bus    *eventBus
	log    *zap.Logger
}

func NewLocalProvider(db *database.DB, kv storage.Store, tokens *TokenService, log *zap.Logger) *LocalProvider {
	return &LocalProvider{
		db:     db,
		kv:     kv,
		tokens: tokens,
		bus:    newEventBus(),
		log:    log,
	}
}

func (p *LocalProvider) SignInWithCredentials(ctx context.Context, email, password string) (*Session, error) {
	var (
		profileID uuid.UUID
		hash      string
	)
	err := p.db.Pool.QueryRow(ctx, `
		SELECT pr.id, ac.password_hash
		FROM profiles pr
		JOIN auth_credentials ac ON ac.profile_id = pr.id
		WHERE pr.email = $1
	`, email).Scan(&profileID, &hash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := VerifyPassword(password, hash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	session, err := p.issueSession(ctx, profileID, email)
	if err != nil {
		return nil, err
	}

	p.bus.publish(Event{Type: EventSignedIn, Session: session})
	return session, nil
}

// CurrentSession loads the persisted session snapshot. A nil session with a
// nil error means logged out. Expired access tokens are refreshed in place
// when the stored refresh token is still valid.
func (p *LocalProvider) CurrentSession(ctx context.Context, principalID uuid.UUID) (*Session, error) {
	raw, err := p.kv.Get(ctx, TokenKeyPrefix+principalID.String())
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("corrupt session snapshot: %w", err)
	}

	if time.Now().Before(session.ExpiresAt) {
		return &session, nil
	}

	refreshed, err := p.Refresh(ctx, session.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("session expired and refresh failed: %w", err)
	}
	return refreshed, nil
}

// Refresh rotates a token pair after validating the refresh token against
// its stored hash.
func (p *LocalProvider) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	profileID, err := p.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	tokenHash := HashToken(refreshToken)
	var email string
	err = p.db.Pool.QueryRow(ctx, `
		SELECT pr.email
		FROM refresh_tokens rt
		JOIN profiles pr ON pr.id = rt.profile_id
		WHERE rt.token_hash = $1 AND rt.profile_id = $2 AND rt.expires_at > NOW()
	`, tokenHash, profileID).Scan(&email)
	if err != nil {
		return nil, fmt.Errorf("refresh token not recognized: %w", err)
	}

	if _, err := p.db.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash = $1`, tokenHash); err != nil {
		p.log.Warn("failed to revoke rotated refresh token", zap.Error(err))
	}

	session, err := p.issueSession(ctx, profileID, email)
	if err != nil {
		return nil, err
	}

	p.bus.publish(Event{Type: EventTokenRefreshed, Session: session})
	return session, nil
}

func (p *LocalProvider) SignOut(ctx context.Context, principalID uuid.UUID) error {
	var firstErr error

	if _, err := p.db.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE profile_id = $1`, principalID); err != nil {
		firstErr = fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	if err := p.kv.Delete(ctx, TokenKeyPrefix+principalID.String()); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to delete session snapshot: %w", err)
	}

	p.bus.publish(Event{Type: EventSignedOut, PrincipalID: principalID})
	return firstErr
}

func (p *LocalProvider) Subscribe() (<-chan Event, func()) {
	return p.bus.subscribe()
}

func (p *LocalProvider) issueSession(ctx context.Context, profileID uuid.UUID, email string) (*Session, error) {
	pair, err := p.tokens.GenerateTokenPair(profileID, email)
	if err != nil {
		return nil, err
	}

	_, err = p.db.Pool.Exec(ctx, `
		INSERT INTO refresh_tokens (profile_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`, profileID, HashToken(pair.RefreshToken), time.Now().Add(p.tokens.RefreshExpiry()))
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	session := &Session{
		User:         Principal{ID: profileID, Email: email},
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    time.Now().Add(p.tokens.AccessExpiry()),
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session snapshot: %w", err)
	}
	if err := p.kv.Set(ctx, TokenKeyPrefix+profileID.String(), string(raw)); err != nil {
		return nil, fmt.Errorf("failed to persist session snapshot: %w", err)
	}

	return session, nil
}
