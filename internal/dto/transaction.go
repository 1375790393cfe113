package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/ledger"
	"github.com/RevathiSanthanavelu/money-manager-api/internal/models"
)

const dateLayout = "2006-01-02"

// TransactionRequest is the create/update payload. Amount arrives as a
// decimal string so precision survives the wire.
type TransactionRequest struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Division    string `json:"division"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Validate checks the payload against the data model invariants and
// returns the validated draft. Every violated field is reported.
func (r *TransactionRequest) Validate() (models.Transaction, error) {
	var draft models.Transaction
	verr := &ValidationError{}

	draft.Type = models.TransactionType(r.Type)
	if !draft.Type.Valid() {
		verr.add("type", "must be one of: income, expense")
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		verr.add("amount", "must be a decimal number")
	} else if !amount.IsPositive() {
		verr.add("amount", "must be greater than zero")
	} else {
		draft.Amount = amount
	}

	draft.Category = models.TransactionCategory(r.Category)
	if !draft.Category.Valid() {
		verr.add("category", "unknown category")
	}

	draft.Division = models.TransactionDivision(r.Division)
	if !draft.Division.Valid() {
		verr.add("division", "must be one of: office, personal")
	}

	draft.Description = r.Description
	if draft.Description == "" {
		verr.add("description", "must not be empty")
	}

	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		verr.add("date", "must be a date in YYYY-MM-DD format")
	} else {
		draft.Date = date
	}

	if err := verr.orNil(); err != nil {
		return models.Transaction{}, err
	}
	return draft, nil
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Division    string          `json:"division"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
	Editable    bool            `json:"editable"`
}

// NewTransactionResponse maps a stored transaction into its wire form.
// Editable mirrors the mutability window so the client can disable its
// edit affordances, but the service re-checks on every mutation.
func NewTransactionResponse(tx models.Transaction, now time.Time) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Category:    string(tx.Category),
		Division:    string(tx.Division),
		Description: tx.Description,
		Date:        tx.Date.Format(dateLayout),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tx.UpdatedAt.Format(time.RFC3339),
		Editable:    ledger.CanMutate(tx, now),
	}
}

// TransactionFilterQuery holds the raw list-endpoint query parameters.
type TransactionFilterQuery struct {
	Type      string
	Category  string
	Division  string
	StartDate string
	EndDate   string
}

// Validate rejects malformed filter values at the boundary; the filter
// compiler itself assumes validated input.
func (q *TransactionFilterQuery) Validate() (ledger.FilterSpec, error) {
	var spec ledger.FilterSpec
	verr := &ValidationError{}

	if q.Type != "" {
		spec.Type = models.TransactionType(q.Type)
		if !spec.Type.Valid() {
			verr.add("type", "must be one of: income, expense")
		}
	}
	if q.Category != "" {
		spec.Category = models.TransactionCategory(q.Category)
		if !spec.Category.Valid() {
			verr.add("category", "unknown category")
		}
	}
	if q.Division != "" {
		spec.Division = models.TransactionDivision(q.Division)
		if !spec.Division.Valid() {
			verr.add("division", "must be one of: office, personal")
		}
	}
	if q.StartDate != "" {
		start, err := time.Parse(dateLayout, q.StartDate)
		if err != nil {
			verr.add("startDate", "must be a date in YYYY-MM-DD format")
		} else {
			spec.StartDate = &start
		}
	}
	if q.EndDate != "" {
		end, err := time.Parse(dateLayout, q.EndDate)
		if err != nil {
			verr.add("endDate", "must be a date in YYYY-MM-DD format")
		} else {
			spec.EndDate = &end
		}
	}

	if err := verr.orNil(); err != nil {
		return ledger.FilterSpec{}, err
	}
	return spec, nil
}
