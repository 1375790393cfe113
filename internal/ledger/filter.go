package ledger

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/models"
)

const dateLayout = "2006-01-02"

// FilterSpec is a sparse set of constraints over a user's transactions.
// Zero-valued fields impose no constraint. StartDate and EndDate bound
// the transaction date inclusively when set.
type FilterSpec struct {
	Type      models.TransactionType
	Category  models.TransactionCategory
	Division  models.TransactionDivision
	StartDate *time.Time
	EndDate   *time.Time
}

// Predicate reports whether a transaction matches a compiled filter.
type Predicate func(tx models.Transaction) bool

// Compile turns a filter spec into a predicate. All constraints are
// conjunctive, and ownership is always enforced regardless of what the
// caller put in the spec. Enum values are assumed validated upstream.
func Compile(spec FilterSpec, ownerID uuid.UUID) Predicate {
	return func(tx models.Transaction) bool {
		if tx.UserID != ownerID {
			return false
		}
		if spec.Type != "" && tx.Type != spec.Type {
			return false
		}
		if spec.Category != "" && tx.Category != spec.Category {
			return false
		}
		if spec.Division != "" && tx.Division != spec.Division {
			return false
		}
		if spec.StartDate != nil && tx.Date.Before(*spec.StartDate) {
			return false
		}
		if spec.EndDate != nil && tx.Date.After(*spec.EndDate) {
			return false
		}
		return true
	}
}

// Conditions builds the same constraints as Compile in SQL form, so the
// store can evaluate the filter server-side instead of in memory. Date
// bounds bind as calendar-date strings, not instants: binding a
// timestamptz against the DATE column would let the session TimeZone
// shift the inclusive bounds.
func Conditions(spec FilterSpec, ownerID uuid.UUID) squirrel.Sqlizer {
	cond := squirrel.And{squirrel.Eq{"user_id": ownerID}}

	if spec.Type != "" {
		cond = append(cond, squirrel.Eq{"type": spec.Type})
	}
	if spec.Category != "" {
		cond = append(cond, squirrel.Eq{"category": spec.Category})
	}
	if spec.Division != "" {
		cond = append(cond, squirrel.Eq{"division": spec.Division})
	}
	if spec.StartDate != nil {
		cond = append(cond, squirrel.GtOrEq{"date": spec.StartDate.In(time.UTC).Format(dateLayout)})
	}
	if spec.EndDate != nil {
		cond = append(cond, squirrel.LtOrEq{"date": spec.EndDate.In(time.UTC).Format(dateLayout)})
	}

	return cond
}
