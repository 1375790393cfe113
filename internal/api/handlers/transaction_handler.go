package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/dto"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/ledger"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/service"
)

type TransactionHandler struct {
	ledgerService *service.LedgerService
	logger        *zap.Logger
}

func NewTransactionHandler(ledgerService *service.LedgerService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// List godoc
// @Summary List transactions
// @Description List the caller's transactions, optionally filtered by category, division, type and date range
// @Tags transactions
// @Produce json
// @Param category query string false "Category filter"
// @Param division query string false "Division filter"
// @Param type query string false "Type filter: income or expense"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	query := dto.TransactionFilterQuery{
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		Division:  c.Query("division"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	spec, err := query.Validate()
	if err != nil {
		return h.handleError(c, err)
	}

	transactions, err := h.ledgerService.List(c.Context(), ownerID, spec)
	if err != nil {
		return h.handleError(c, err)
	}

	now := h.ledgerService.Now()
	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, dto.NewTransactionResponse(tx, now))
	}

	return c.JSON(responses)
}

// Dashboard godoc
// @Summary Period dashboard
// @Description Totals, balance and expense category breakdown for the selected period
// @Tags transactions
// @Produce json
// @Param period query string false "Period: weekly, monthly or yearly" default(monthly)
// @Security Bearer
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/transactions/dashboard [get]
func (h *TransactionHandler) Dashboard(c *fiber.Ctx) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	period, err := ledger.ParsePeriod(c.Query("period"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Period must be one of: weekly, monthly, yearly",
		})
	}

	summary, err := h.ledgerService.Dashboard(c.Context(), ownerID, period)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(dto.NewDashboardResponse(period, summary))
}

// Create godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := h.ledgerService.Create(c.Context(), ownerID, &req)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(*created, h.ledgerService.Now()))
}

// Update godoc
// @Summary Update a transaction
// @Description Replace an existing transaction; allowed only within 12 hours of creation
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := h.ledgerService.Update(c.Context(), ownerID, id, &req)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(dto.NewTransactionResponse(*updated, h.ledgerService.Now()))
}

// Delete godoc
// @Summary Delete a transaction
// @Description Remove a transaction; allowed only within 12 hours of creation
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	if err := h.ledgerService.Delete(c.Context(), ownerID, id); err != nil {
		return h.handleError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TransactionHandler) handleError(c *fiber.Ctx, err error) error {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, service.ErrTransactionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not found",
		})
	case errors.Is(err, service.ErrMutabilityWindowExpired):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Transactions cannot be modified after 12 hours",
		})
	}

	h.logger.Error("Transaction operation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
