package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/models"
)

// Period selects the aggregation window anchored at the current moment.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod validates a raw period string, defaulting to monthly when
// empty.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return Period(s), nil
	case "":
		return PeriodMonthly, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Summary is the derived dashboard view of a transaction set. Amounts
// are exact decimals; CategoryBreakdown holds expense totals only and
// never contains a zero-activity category.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Balance           decimal.Decimal
	CategoryBreakdown map[models.TransactionCategory]decimal.Decimal
}

// Window returns the inclusive start of the aggregation window for a
// period anchored at now. The weekly window is the trailing 7 calendar
// days including today, not the calendar week; monthly and yearly run
// from the first day of the current month and year. Transaction dates
// are calendar dates at UTC midnight, so the anchor is derived from
// now's UTC date regardless of the server's zone.
func Window(period Period, now time.Time) time.Time {
	utc := now.In(time.UTC)
	switch period {
	case PeriodWeekly:
		day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
		return day.AddDate(0, 0, -6)
	case PeriodYearly:
		return time.Date(utc.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// Aggregate computes the dashboard summary for the transactions whose
// date falls inside the period window ending at now. Income counts
// toward TotalIncome only; expenses count toward TotalExpense and the
// per-category breakdown. Empty input yields a zeroed summary, never an
// error.
func Aggregate(transactions []models.Transaction, period Period, now time.Time) Summary {
	start := Window(period, now)

	summary := Summary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		Balance:           decimal.Zero,
		CategoryBreakdown: make(map[models.TransactionCategory]decimal.Decimal),
	}

	for _, tx := range transactions {
		if tx.Date.Before(start) || tx.Date.After(now) {
			continue
		}
		switch tx.Type {
		case models.TypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		case models.TypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
			summary.CategoryBreakdown[tx.Category] = summary.CategoryBreakdown[tx.Category].Add(tx.Amount)
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}
