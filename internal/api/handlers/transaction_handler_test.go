package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/dto"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/ledger"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/models"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/repository"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/service"
)

type stubStore struct {
	transactions map[uuid.UUID]models.Transaction
}

func newStubStore() *stubStore {
	return &stubStore{transactions: make(map[uuid.UUID]models.Transaction)}
}

func (s *stubStore) Insert(_ context.Context, tx *models.Transaction) error {
	s.transactions[tx.ID] = *tx
	return nil
}

func (s *stubStore) Find(_ context.Context, ownerID uuid.UUID, spec ledger.FilterSpec) ([]models.Transaction, error) {
	match := ledger.Compile(spec, ownerID)
	var out []models.Transaction
	for _, tx := range s.transactions {
		if match(tx) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *stubStore) GetByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &tx, nil
}

func (s *stubStore) Replace(_ context.Context, tx *models.Transaction) error {
	if _, ok := s.transactions[tx.ID]; !ok {
		return repository.ErrNotFound
	}
	s.transactions[tx.ID] = *tx
	return nil
}

func (s *stubStore) Remove(_ context.Context, id uuid.UUID) error {
	if _, ok := s.transactions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

// newTestApp wires the transaction routes behind a stub auth middleware
// that trusts the X-Test-User header.
func newTestApp(store service.TransactionStore) *fiber.App {
	handler := NewTransactionHandler(service.NewLedgerService(store, zap.NewNop()), zap.NewNop())

	app := fiber.New()
	authStub := func(c *fiber.Ctx) error {
		c.Locals("userID", c.Get("X-Test-User"))
		return c.Next()
	}

	transactions := app.Group("/api/transactions", authStub)
	transactions.Get("", handler.List)
	transactions.Post("", handler.Create)
	transactions.Get("/dashboard", handler.Dashboard)
	transactions.Put("/:id", handler.Update)
	transactions.Delete("/:id", handler.Delete)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, userID string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Test-User", userID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func lunchPayload() dto.TransactionRequest {
	return dto.TransactionRequest{
		Type:        "expense",
		Amount:      "500",
		Category:    "food",
		Division:    "personal",
		Description: "lunch",
		Date:        "2024-03-01",
	}
}

func TestTransactionHandler_CreateAndList(t *testing.T) {
	app := newTestApp(newStubStore())
	owner := uuid.New().String()

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", owner, lunchPayload())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.TransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "500", created.Amount.String())
	assert.True(t, created.Editable)

	resp = doJSON(t, app, http.MethodGet, "/api/transactions", owner, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []dto.TransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestTransactionHandler_CreateValidationFailure(t *testing.T) {
	app := newTestApp(newStubStore())

	payload := lunchPayload()
	payload.Amount = "-1"
	payload.Category = "crypto"

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", uuid.New().String(), payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error  string           `json:"error"`
		Fields []dto.FieldError `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Fields, 2)
}

func TestTransactionHandler_ListRejectsBadFilter(t *testing.T) {
	app := newTestApp(newStubStore())

	resp := doJSON(t, app, http.MethodGet, "/api/transactions?category=crypto", uuid.New().String(), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTransactionHandler_ListScopedToCaller(t *testing.T) {
	app := newTestApp(newStubStore())
	ownerA := uuid.New().String()
	ownerB := uuid.New().String()

	doJSON(t, app, http.MethodPost, "/api/transactions", ownerA, lunchPayload())

	resp := doJSON(t, app, http.MethodGet, "/api/transactions", ownerB, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []dto.TransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	assert.Empty(t, listed)
}

func TestTransactionHandler_UpdateForeignTransactionIs404(t *testing.T) {
	app := newTestApp(newStubStore())
	ownerA := uuid.New().String()
	ownerB := uuid.New().String()

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", ownerA, lunchPayload())
	var created dto.TransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doJSON(t, app, http.MethodPut, "/api/transactions/"+created.ID, ownerB, lunchPayload())
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestTransactionHandler_DeleteInsideWindow(t *testing.T) {
	store := newStubStore()
	app := newTestApp(store)
	owner := uuid.New().String()

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", owner, lunchPayload())
	var created dto.TransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doJSON(t, app, http.MethodDelete, "/api/transactions/"+created.ID, owner, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, store.transactions)
}

func TestTransactionHandler_DashboardDefaultsToMonthly(t *testing.T) {
	app := newTestApp(newStubStore())

	resp := doJSON(t, app, http.MethodGet, "/api/transactions/dashboard", uuid.New().String(), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "monthly", body.Period)
	assert.Equal(t, "0", body.Balance.String())
	assert.NotNil(t, body.CategoryBreakdown)
}

func TestTransactionHandler_DashboardRejectsUnknownPeriod(t *testing.T) {
	app := newTestApp(newStubStore())

	resp := doJSON(t, app, http.MethodGet, "/api/transactions/dashboard?period=daily", uuid.New().String(), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
