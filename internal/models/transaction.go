package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

type TransactionCategory string

const (
	CategorySalary        TransactionCategory = "salary"
	CategoryFreelance     TransactionCategory = "freelance"
	CategoryFuel          TransactionCategory = "fuel"
	CategoryMovie         TransactionCategory = "movie"
	CategoryFood          TransactionCategory = "food"
	CategoryLoan          TransactionCategory = "loan"
	CategoryMedical       TransactionCategory = "medical"
	CategoryUtilities     TransactionCategory = "utilities"
	CategoryEntertainment TransactionCategory = "entertainment"
	CategoryShopping      TransactionCategory = "shopping"
	CategoryTransport     TransactionCategory = "transport"
	CategoryOther         TransactionCategory = "other"
)

type TransactionDivision string

const (
	DivisionOffice   TransactionDivision = "office"
	DivisionPersonal TransactionDivision = "personal"
)

// Categories lists every valid transaction category.
var Categories = []TransactionCategory{
	CategorySalary, CategoryFreelance, CategoryFuel, CategoryMovie,
	CategoryFood, CategoryLoan, CategoryMedical, CategoryUtilities,
	CategoryEntertainment, CategoryShopping, CategoryTransport, CategoryOther,
}

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (c TransactionCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (d TransactionDivision) Valid() bool {
	return d == DivisionOffice || d == DivisionPersonal
}

// Transaction is a single ledger record. Amount is always positive; the
// sign of its contribution to a balance comes from Type. Date is the
// user-supplied calendar date, CreatedAt the server-assigned creation
// time that anchors the mutability window.
type Transaction struct {
	ID          uuid.UUID           `db:"id"`
	UserID      uuid.UUID           `db:"user_id"`
	Type        TransactionType     `db:"type"`
	Amount      decimal.Decimal     `db:"amount"`
	Category    TransactionCategory `db:"category"`
	Division    TransactionDivision `db:"division"`
	Description string              `db:"description"`
	Date        time.Time           `db:"date"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}
