package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/models"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/repository"
	"github.com/RevathiSanthanavelu/money-manager-api/pkg/auth"
	"github.com/RevathiSanthanavelu/money-manager-api/pkg/config"
	"github.com/RevathiSanthanavelu/money-manager-api/pkg/logger"
	"github.com/RevathiSanthanavelu/money-manager-api/pkg/postgres"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "demo123"
)

var expenseCategories = []models.TransactionCategory{
	models.CategoryFuel, models.CategoryMovie, models.CategoryFood,
	models.CategoryLoan, models.CategoryMedical, models.CategoryUtilities,
	models.CategoryEntertainment, models.CategoryShopping,
	models.CategoryTransport, models.CategoryOther,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

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

	appLogger.Info("Starting database seeding...")

	user, err := seedDemoUser(ctx, userRepo)
	if err != nil {
		appLogger.Fatal("Failed to seed demo user", zap.Error(err))
	}

	count, err := seedTransactions(ctx, txRepo, user.ID)
	if err != nil {
		appLogger.Fatal("Failed to seed transactions", zap.Error(err))
	}

	appLogger.Info("Database seeding completed",
		zap.String("user", demoEmail),
		zap.Int("transactions", count),
	)
}

func seedDemoUser(ctx context.Context, repo *repository.UserRepository) (*models.User, error) {
	if existing, err := repo.GetByEmail(ctx, demoEmail); err == nil {
		return existing, nil
	}

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Name:      "Demo User",
		Email:     demoEmail,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func seedTransactions(ctx context.Context, repo *repository.TransactionRepository, userID uuid.UUID) (int, error) {
	rng := rand.New(rand.NewSource(42))
	now := time.Now()
	count := 0

	// Monthly salary for the past year plus a spread of daily expenses.
	for monthsAgo := 0; monthsAgo < 12; monthsAgo++ {
		payday := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -monthsAgo, 0)
		salary := seedTransaction(userID, models.TypeIncome, "85000", models.CategorySalary, models.DivisionOffice, "monthly salary", payday, now)
		if err := repo.Insert(ctx, &salary); err != nil {
			return count, err
		}
		count++

		for i := 0; i < 8; i++ {
			day := payday.AddDate(0, 0, rng.Intn(28))
			if day.After(now) {
				continue
			}
			category := expenseCategories[rng.Intn(len(expenseCategories))]
			amount := decimal.NewFromInt(int64(50 + rng.Intn(2000))).StringFixed(2)
			tx := seedTransaction(userID, models.TypeExpense, amount, category, models.DivisionPersonal, string(category)+" spending", day, now)
			if err := repo.Insert(ctx, &tx); err != nil {
				return count, err
			}
			count++
		}
	}

	return count, nil
}

func seedTransaction(
	userID uuid.UUID,
	txType models.TransactionType,
	amount string,
	category models.TransactionCategory,
	division models.TransactionDivision,
	description string,
	date, createdAt time.Time,
) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Division:    division,
		Description: description,
		Date:        date,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}
