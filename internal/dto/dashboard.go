package dto

import (
	"github.com/shopspring/decimal"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/ledger"
)

// DashboardResponse serializes a period summary. Decimal fields marshal
// as quoted decimal strings, never binary floats.
type DashboardResponse struct {
	Period            string                     `json:"period"`
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpense      decimal.Decimal            `json:"totalExpense"`
	Balance           decimal.Decimal            `json:"balance"`
	CategoryBreakdown map[string]decimal.Decimal `json:"categoryBreakdown"`
}

func NewDashboardResponse(period ledger.Period, summary ledger.Summary) DashboardResponse {
	breakdown := make(map[string]decimal.Decimal, len(summary.CategoryBreakdown))
	for category, amount := range summary.CategoryBreakdown {
		breakdown[string(category)] = amount
	}

	return DashboardResponse{
		Period:            string(period),
		TotalIncome:       summary.TotalIncome,
		TotalExpense:      summary.TotalExpense,
		Balance:           summary.Balance,
		CategoryBreakdown: breakdown,
	}
}
