package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/communication-service/config"
	"github.com/ErlanBelekov/communication-service/internal/credential"
	"github.com/ErlanBelekov/communication-service/internal/email"
	"github.com/ErlanBelekov/communication-service/internal/health"
	"github.com/ErlanBelekov/communication-service/internal/infrastructure/postgres"
	ctxlog "github.com/ErlanBelekov/communication-service/internal/log"
	"github.com/ErlanBelekov/communication-service/internal/metrics"
	"github.com/ErlanBelekov/communication-service/internal/token"
	httptransport "github.com/ErlanBelekov/communication-service/internal/transport/http"
	"github.com/ErlanBelekov/communication-service/internal/transport/http/handler"
	"github.com/ErlanBelekov/communication-service/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := ctxlog.New(cfg.Env, cfg.SlogLevel())
	logger.Info("config loaded", "config", cfg)

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if cfg.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.DatabaseURL)
		if err != nil {
			stop()
			log.Fatalf("migrate: %v", err)
		}
		logger.Info("migrations applied", "count", applied)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	tokens, err := token.NewService(token.Config{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		Audience:   cfg.JWTAudience,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	})
	if err != nil {
		stop()
		log.Fatalf("token service: %v", err)
	}
	hasher := credential.NewPBKDF2Hasher()

	// Mail
	sender := email.NewSender(email.SenderConfig{
		Provider:     cfg.MailProvider,
		From:         cfg.SenderAddress(),
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPUser:     cfg.SMTPUser,
		SMTPPassword: cfg.SMTPPassword,
		ResendAPIKey: cfg.ResendAPIKey,
	}, logger)
	mailer := email.NewMailer(sender, cfg.MailEnabled, logger)

	// Users and auth
	userRepo := postgres.NewUserRepository(pool)
	authHandler := handler.NewAuthHandler(usecase.NewAuthUsecase(userRepo, hasher, tokens, logger), logger)
	userHandler := handler.NewUserHandler(usecase.NewUserUsecase(userRepo, hasher, logger), logger)

	// Customers
	customerRepo := postgres.NewCustomerRepository(pool)
	customerHandler := handler.NewCustomerHandler(usecase.NewCustomerUsecase(customerRepo, logger), logger)

	// Templates
	templateRepo := postgres.NewTemplateRepository(pool)
	templateUsecase := usecase.NewTemplateUsecase(templateRepo, customerRepo, mailer, cfg.SenderAddress(), logger)
	templateHandler := handler.NewTemplateHandler(templateUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(logger, prometheus.DefaultRegisterer).Add("postgres", pool)
	if smtp, ok := sender.(*email.SMTPSender); ok && cfg.MailEnabled {
		checker.Add("smtp", smtp)
	}

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httptransport.NewRouter(logger, tokens, authHandler, userHandler, customerHandler, templateHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}
