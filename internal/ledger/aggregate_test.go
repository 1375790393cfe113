package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(owner uuid.UUID, amount string, category models.TransactionCategory, on time.Time) models.Transaction {
	return models.Transaction{
		ID:       uuid.New(),
		UserID:   owner,
		Type:     models.TypeExpense,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Division: models.DivisionPersonal,
		Date:     on,
	}
}

func income(owner uuid.UUID, amount string, category models.TransactionCategory, on time.Time) models.Transaction {
	tx := expense(owner, amount, category, on)
	tx.Type = models.TypeIncome
	return tx
}

func TestAggregate_MonthlyTotalsAndBreakdown(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	txs := []models.Transaction{
		expense(owner, "200", models.CategoryFood, date(2024, time.March, 2)),
		expense(owner, "300", models.CategoryFood, date(2024, time.March, 10)),
		income(owner, "1000", models.CategorySalary, date(2024, time.March, 1)),
	}

	summary := Aggregate(txs, PeriodMonthly, now)

	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("1000")))
	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("500")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("500")))

	require.Len(t, summary.CategoryBreakdown, 1)
	assert.True(t, summary.CategoryBreakdown[models.CategoryFood].Equal(decimal.RequireFromString("500")))
	assert.NotContains(t, summary.CategoryBreakdown, models.CategorySalary)
}

func TestAggregate_IncomeNeverInBreakdown(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC)

	txs := []models.Transaction{
		income(owner, "750.50", models.CategoryFreelance, date(2024, time.June, 5)),
	}

	summary := Aggregate(txs, PeriodMonthly, now)

	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("750.50")))
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestAggregate_BalanceIdentity(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	txs := []models.Transaction{
		income(owner, "0.10", models.CategorySalary, date(2024, time.March, 3)),
		income(owner, "0.20", models.CategorySalary, date(2024, time.March, 4)),
		expense(owner, "0.30", models.CategoryFuel, date(2024, time.March, 5)),
	}

	for _, period := range []Period{PeriodWeekly, PeriodMonthly, PeriodYearly} {
		summary := Aggregate(txs, period, now)
		assert.True(t, summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpense)),
			"balance identity must hold for period %s", period)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	summary := Aggregate(nil, PeriodWeekly, time.Now())

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Balance.IsZero())
	require.NotNil(t, summary.CategoryBreakdown)
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestAggregate_WindowExcludesOutOfRange(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	txs := []models.Transaction{
		expense(owner, "100", models.CategoryFood, date(2024, time.February, 28)), // before month start
		expense(owner, "50", models.CategoryFood, date(2024, time.March, 16)),     // dated after now
		expense(owner, "25", models.CategoryFood, date(2024, time.March, 15)),     // today, included
	}

	summary := Aggregate(txs, PeriodMonthly, now)

	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("25")))
}

func TestAggregate_MonthStartIncludedOnNonUTCServer(t *testing.T) {
	owner := uuid.New()
	// A server west of UTC: local midnight of the 1st is hours after
	// UTC midnight, which must not push the 1st out of the window.
	pst := time.FixedZone("PST", -8*60*60)
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, pst)

	txs := []models.Transaction{
		expense(owner, "100", models.CategoryFood, date(2024, time.March, 1)),
	}

	summary := Aggregate(txs, PeriodMonthly, now)

	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("100")),
		"transaction dated the first of the month must be inside the monthly window; got %s", summary.TotalExpense)
}

func TestAggregate_WeeklyBoundaryInclusive(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)

	txs := []models.Transaction{
		expense(owner, "40", models.CategoryFood, date(2024, time.March, 9)), // oldest day of the trailing week
		expense(owner, "60", models.CategoryFood, date(2024, time.March, 8)), // one day earlier, excluded
	}

	summary := Aggregate(txs, PeriodWeekly, now)

	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("40")))
	assert.True(t, summary.CategoryBreakdown[models.CategoryFood].Equal(decimal.RequireFromString("40")))
}

func TestWindow_Weekly(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)

	start := Window(PeriodWeekly, now)

	// Trailing 7 calendar days including today.
	assert.Equal(t, date(2024, time.March, 9), start)
}

func TestWindow_MonthlyAndYearly(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, date(2024, time.March, 1), Window(PeriodMonthly, now))
	assert.Equal(t, date(2024, time.January, 1), Window(PeriodYearly, now))
}

func TestWindow_AnchorsToUTCDate(t *testing.T) {
	pst := time.FixedZone("PST", -8*60*60)
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, pst)

	for _, period := range []Period{PeriodWeekly, PeriodMonthly, PeriodYearly} {
		start := Window(period, now)
		assert.Equal(t, time.UTC, start.Location(), "window for period %s must be anchored in UTC", period)
	}
	assert.Equal(t, date(2024, time.March, 1), Window(PeriodMonthly, now))
	assert.Equal(t, date(2024, time.January, 1), Window(PeriodYearly, now))
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"weekly", PeriodWeekly, false},
		{"monthly", PeriodMonthly, false},
		{"yearly", PeriodYearly, false},
		{"", PeriodMonthly, false},
		{"daily", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
