package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/LiteBots/VelorieMarket/internal/config"
	httpx "github.com/LiteBots/VelorieMarket/internal/http"
	"github.com/LiteBots/VelorieMarket/internal/http/handlers"
	"github.com/LiteBots/VelorieMarket/internal/http/middleware"
	"github.com/LiteBots/VelorieMarket/internal/infrastructure/auth"
	"github.com/LiteBots/VelorieMarket/internal/infrastructure/database"
	"github.com/LiteBots/VelorieMarket/internal/infrastructure/notifications"
	"github.com/LiteBots/VelorieMarket/internal/infrastructure/repositories"
	"github.com/LiteBots/VelorieMarket/internal/services"
)

func Run(cfg *config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.UserTokenTTL, cfg.AdminTokenTTL)
	credStore := auth.NewStaticCredentialStore(cfg.AdminCreds)
	notifier, err := notifications.NewDiscordService(cfg.DiscordToken, logger)
	if err != nil {
		return err
	}

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	listRepo := repositories.NewListingRepository(gdb)
	txRepo := repositories.NewTransactionRepository(gdb)
	infoRepo := repositories.NewInfoBarRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb.Client, cfg.UserTokenTTL)

	// Services
	adminAuthSvc := services.NewAdminAuthService(credStore, notifier, tokenSvc, logger, services.AdminAuthConfig{
		OTPTTL:         cfg.OTPTTL,
		AlertChannelID: cfg.AlertChannelID,
	})
	announcer := services.NewAnnouncerService(userRepo, notifier, logger, cfg.StatsChannelID, cfg.StatsInterval)
	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, announcer, logger, cfg.UserTokenTTL)
	verifySvc := services.NewVerificationService(userRepo, txRepo, logger, cfg.VerificationPrice)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc)
	listH := handlers.NewListingHandlers(listRepo)
	userH := handlers.NewUserHandlers(userRepo, verifySvc)
	infoH := handlers.NewInfoBarHandlers(infoRepo)
	adminAuthH := handlers.NewAdminAuthHandlers(adminAuthSvc)
	adminH := handlers.NewAdminHandlers(userRepo, listRepo, txRepo, verifySvc)

	// Middleware
	userMW := middleware.UserAuthMiddleware(tokenSvc, sessionRepo)
	adminMW := middleware.AdminAuthMiddleware(tokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, listH, userH, infoH, adminAuthH, adminH, userMW, adminMW, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/api/admin/*", "(GET|POST|PUT|DELETE)")
		_ = cas.E.SavePolicy()
		logger.Info("casbin: seeded default policies")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go announcer.Start(ctx)

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, r)
}
