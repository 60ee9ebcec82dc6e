package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"go.uber.org/zap"

	"github.com/voxali/salon-admin/internal/config"
	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/handlers"
	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/impersonation"
	authmw "github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/services"
	"github.com/voxali/salon-admin/internal/session"
	"github.com/voxali/salon-admin/internal/storage"
	"github.com/voxali/salon-admin/internal/tenant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	kv, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to kv storage", zap.Error(err))
	}
	defer func() { _ = kv.Close() }()

	tokens := identity.NewTokenService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	provider := identity.NewLocalProvider(db, kv, tokens, logger)
	imp := impersonation.NewController(kv)

	profileService := services.NewProfileService(db)
	bookingService := services.NewBookingService(db)
	clientService := services.NewClientService(db)
	staffService := services.NewStaffService(db)
	campaignService := services.NewCampaignService(db)
	callLogService := services.NewCallLogService(db)
	settingsService := services.NewSettingsService(db)
	analyticsService := services.NewAnalyticsService(db)
	tenantAdminService := services.NewTenantAdminService(db)

	manager := session.NewManager(provider, profileService, kv, imp, session.Config{
		Timeout:             cfg.ResolveTimeout,
		SuperAdminEmail:     cfg.SuperAdminEmail,
		FallbackRoleEnabled: cfg.FallbackRoleEnabled,
	}, logger)
	defer manager.Close()

	resolver := tenant.NewResolver(db, imp, cfg.FallbackTenantID, logger)

	authHandler := handlers.NewAuthHandler(provider, manager)
	sessionHandler := handlers.NewSessionHandler(manager, resolver, imp)
	impersonationHandler := handlers.NewImpersonationHandler(imp, tenantAdminService)
	brandingHandler := handlers.NewBrandingHandler(resolver)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	clientHandler := handlers.NewClientHandler(clientService)
	staffHandler := handlers.NewStaffHandler(staffService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	callLogHandler := handlers.NewCallLogHandler(callLogService, cfg.WebhookSecret)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	adminHandler := handlers.NewAdminHandler(tenantAdminService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Webhook-Secret"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/webhooks/calls", callLogHandler.Webhook)

	// Authenticated but not resolved: the session endpoint reports loading
	// and timed-out states instead of rejecting them, and logout must work
	// from any state.
	authed := api.Group("")
	authed.Use(authmw.Auth(tokens))
	authed.Get("/session", sessionHandler.Get)
	authed.Post("/auth/logout", authHandler.Logout)
	authed.Post("/auth/clear-session", authHandler.ClearSession)

	resolved := api.Group("")
	resolved.Use(authmw.Auth(tokens))
	resolved.Use(authmw.Resolve(manager))

	admin := resolved.Group("/admin")
	admin.Use(authmw.RequireRole(models.RoleSuperAdmin))
	admin.Get("/overview", adminHandler.Overview)
	admin.Get("/salons", adminHandler.ListTenants)
	admin.Post("/salons", adminHandler.CreateTenant)
	admin.Get("/salons/:tenantId", adminHandler.GetTenant)
	admin.Post("/impersonate", impersonationHandler.Enter)
	admin.Delete("/impersonate", impersonationHandler.Exit)

	scoped := resolved.Group("")
	scoped.Use(authmw.TenantScope(resolver))

	scoped.Get("/branding", brandingHandler.Get)
	scoped.Get("/bookings", bookingHandler.List)
	scoped.Post("/bookings/walkin", bookingHandler.AddWalkIn)
	scoped.Patch("/bookings/:bookingId/status", bookingHandler.UpdateStatus)
	scoped.Get("/clients", clientHandler.List)
	scoped.Post("/clients", clientHandler.Create)
	scoped.Patch("/clients/:clientId", clientHandler.Update)
	scoped.Delete("/clients/:clientId", clientHandler.Delete)
	scoped.Get("/calls", callLogHandler.List)

	managed := scoped.Group("")
	managed.Use(authmw.RequireRole(models.RoleSuperAdmin, models.RoleOwner, models.RoleManager))
	managed.Get("/dashboard", analyticsHandler.Dashboard)
	managed.Get("/staff", staffHandler.Board)
	managed.Post("/staff", staffHandler.Add)
	managed.Patch("/staff/:staffId/commission", staffHandler.UpdateCommission)
	managed.Patch("/staff/:staffId/active", staffHandler.SetActive)
	managed.Patch("/staff/:staffId/blocked", staffHandler.SetBlocked)
	managed.Post("/staff/:staffId/login", staffHandler.CreateLogin)
	managed.Get("/campaigns", campaignHandler.List)
	managed.Post("/campaigns", campaignHandler.Create)
	managed.Post("/campaigns/:campaignId/schedule", campaignHandler.Schedule)
	managed.Post("/campaigns/:campaignId/send", campaignHandler.Send)
	managed.Delete("/campaigns/:campaignId", campaignHandler.Delete)
	managed.Get("/analytics/revenue", analyticsHandler.Revenue)
	managed.Get("/analytics/services", analyticsHandler.TopServices)
	managed.Get("/analytics/statuses", analyticsHandler.Statuses)

	owned := scoped.Group("")
	owned.Use(authmw.RequireRole(models.RoleSuperAdmin, models.RoleOwner))
	owned.Patch("/branding", brandingHandler.Update)
	owned.Get("/settings/services", settingsHandler.Services)
	owned.Post("/settings/services", settingsHandler.UpsertService)
	owned.Patch("/settings/services/:serviceId/active", settingsHandler.SetServiceActive)
	owned.Get("/settings/hours", settingsHandler.Hours)
	owned.Post("/settings/hours", settingsHandler.UpdateHours)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("server starting", zap.String("addr", addr))
		if err := app.Run(addr); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// buildStorage picks Redis when configured and falls back to the in-memory
// store for development setups without one.
func buildStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
	if cfg.RedisURL != "" {
		return storage.NewRedis(ctx, cfg.RedisURL)
	}
	logger.Warn("REDIS_URL not set, using in-memory storage; sessions will not survive restarts")
	return storage.NewMemory(), nil
}
