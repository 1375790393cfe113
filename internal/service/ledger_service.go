package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/dto"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/ledger"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/models"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/repository"
)

var (
	// ErrTransactionNotFound covers both a missing id and an id owned by
	// another user, so callers cannot probe for foreign transactions.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMutabilityWindowExpired is returned when an edit or delete
	// arrives after the 12-hour window.
	ErrMutabilityWindowExpired = errors.New("transaction can no longer be modified")
)

// TransactionStore is the durable record of transactions. The postgres
// repository implements it; tests substitute an in-memory fake.
type TransactionStore interface {
	Insert(ctx context.Context, tx *models.Transaction) error
	Find(ctx context.Context, ownerID uuid.UUID, spec ledger.FilterSpec) ([]models.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Replace(ctx context.Context, tx *models.Transaction) error
	Remove(ctx context.Context, id uuid.UUID) error
}

// LedgerService orchestrates the filter compiler, aggregation engine
// and mutability policy over the transaction store. Each operation
// reads the clock exactly once.
type LedgerService struct {
	store  TransactionStore
	logger *zap.Logger
	now    func() time.Time
}

func NewLedgerService(store TransactionStore, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Now exposes the service clock so handlers render advisory state (like
// editability) against the same time source.
func (s *LedgerService) Now() time.Time {
	return s.now()
}

func (s *LedgerService) List(ctx context.Context, ownerID uuid.UUID, spec ledger.FilterSpec) ([]models.Transaction, error) {
	transactions, err := s.store.Find(ctx, ownerID, spec)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

func (s *LedgerService) Dashboard(ctx context.Context, ownerID uuid.UUID, period ledger.Period) (ledger.Summary, error) {
	now := s.now()
	start := ledger.Window(period, now)

	// Push the period window to the store as a date-range filter, then
	// aggregate the rest in memory.
	spec := ledger.FilterSpec{StartDate: &start, EndDate: &now}
	transactions, err := s.store.Find(ctx, ownerID, spec)
	if err != nil {
		return ledger.Summary{}, fmt.Errorf("load dashboard transactions: %w", err)
	}

	return ledger.Aggregate(transactions, period, now), nil
}

func (s *LedgerService) Create(ctx context.Context, ownerID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	draft, err := req.Validate()
	if err != nil {
		return nil, err
	}

	now := s.now()
	draft.ID = uuid.New()
	draft.UserID = ownerID
	draft.CreatedAt = now
	draft.UpdatedAt = now

	if err := s.store.Insert(ctx, &draft); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	s.logger.Info("Transaction created",
		zap.String("id", draft.ID.String()),
		zap.String("type", string(draft.Type)),
	)
	return &draft, nil
}

func (s *LedgerService) Update(ctx context.Context, ownerID, id uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	draft, err := req.Validate()
	if err != nil {
		return nil, err
	}

	now := s.now()
	stored, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	// The client-side edit affordance is advisory only; the stored
	// CreatedAt is what counts.
	if !ledger.CanMutate(*stored, now) {
		return nil, ErrMutabilityWindowExpired
	}

	stored.Type = draft.Type
	stored.Amount = draft.Amount
	stored.Category = draft.Category
	stored.Division = draft.Division
	stored.Description = draft.Description
	stored.Date = draft.Date
	stored.UpdatedAt = now

	if err := s.store.Replace(ctx, stored); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("replace transaction: %w", err)
	}

	return stored, nil
}

func (s *LedgerService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	now := s.now()
	stored, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if !ledger.CanMutate(*stored, now) {
		return ErrMutabilityWindowExpired
	}

	if err := s.store.Remove(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("remove transaction: %w", err)
	}

	s.logger.Info("Transaction deleted", zap.String("id", id.String()))
	return nil
}

func (s *LedgerService) loadOwned(ctx context.Context, ownerID, id uuid.UUID) (*models.Transaction, error) {
	stored, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load transaction: %w", err)
	}
	if stored.UserID != ownerID {
		return nil, ErrTransactionNotFound
	}
	return stored, nil
}
