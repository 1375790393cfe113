package ledger

import (
	"time"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/models"
)

// MutabilityWindow is how long after creation a transaction may still
// be edited or deleted.
const MutabilityWindow = 12 * time.Hour

// CanMutate reports whether a transaction is still inside its
// mutability window at now. The bound is strict: exactly 12 hours after
// creation the transaction is already immutable.
func CanMutate(tx models.Transaction, now time.Time) bool {
	return now.Sub(tx.CreatedAt) < MutabilityWindow
}
