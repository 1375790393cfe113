package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/api"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/api/handlers"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/repository"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/service"
	"github.com/RevathiSanthanavelu/money-manager-api/pkg/auth"
	"github.com/RevathiSanthanavelu/money-manager-api/pkg/config"
	"github.com/RevathiSanthanavelu/money-manager-api/pkg/logger"
	"github.com/RevathiSanthanavelu/money-manager-api/pkg/postgres"
)

// @title Money Manager API
// @version 1.0
// @description Personal finance ledger: transactions, filters and period dashboards

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting money manager service")

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	ledgerService := service.NewLedgerService(txRepo, appLogger)

	authHandler := handlers.NewAuthHandler(authService, appLogger)
	txHandler := handlers.NewTransactionHandler(ledgerService, appLogger)

	app := api.SetupRouter(authHandler, txHandler, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
