package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/session"
	"github.com/voxali/salon-admin/pkg/dto"
)

type AuthHandler struct {
	provider AuthProviderInterface
	manager  *session.Manager
}

func NewAuthHandler(provider AuthProviderInterface, manager *session.Manager) *AuthHandler {
	return &AuthHandler{provider: provider, manager: manager}
}

func (h *AuthHandler) Login(c *drift.Context) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		c.BadRequest("email and password are required")
		return
	}

	sess, err := h.provider.SignInWithCredentials(context.Background(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			c.Unauthorized("invalid email or password")
			return
		}
		c.InternalServerError("sign-in failed")
		return
	}

	_ = c.JSON(200, tokenResponse(sess))
}

func (h *AuthHandler) Refresh(c *drift.Context) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.RefreshToken == "" {
		c.BadRequest("refresh_token is required")
		return
	}

	sess, err := h.provider.Refresh(context.Background(), req.RefreshToken)
	if err != nil {
		c.Unauthorized("invalid or expired refresh token")
		return
	}

	_ = c.JSON(200, tokenResponse(sess))
}

// Logout tears the whole session down: impersonation flag, provider session
// and the resolver state. The store is dropped so a later sign-in starts a
// fresh bootstrap.
func (h *AuthHandler) Logout(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	ctx := context.Background()
	principal := identity.Principal{ID: userID, Email: middleware.GetUserEmail(c)}
	store := h.manager.Bootstrap(ctx, principal)
	store.ForceLogout(ctx)
	h.manager.Drop(userID)

	_ = c.JSON(200, map[string]string{"status": "logged out"})
}

// ClearSession is the recovery-screen escape hatch: it purges the persisted
// session snapshot on top of the regular logout.
func (h *AuthHandler) ClearSession(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	ctx := context.Background()
	principal := identity.Principal{ID: userID, Email: middleware.GetUserEmail(c)}
	store := h.manager.Bootstrap(ctx, principal)
	store.PurgeStorage(ctx)
	h.manager.Drop(userID)

	_ = c.JSON(200, map[string]string{"status": "session cleared"})
}

func tokenResponse(sess *identity.Session) dto.TokenResponse {
	return dto.TokenResponse{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		ExpiresIn:    int64(time.Until(sess.ExpiresAt).Seconds()),
		User: dto.UserResponse{
			ID:    sess.User.ID,
			Email: sess.User.Email,
		},
	}
}
