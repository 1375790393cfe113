package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RevathiSanthanavelu/money-manager-api/internal/models"
)

func TestCanMutate_WindowBoundary(t *testing.T) {
	createdAt := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	tx := models.Transaction{CreatedAt: createdAt}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"just created", createdAt, true},
		{"one hour in", createdAt.Add(time.Hour), true},
		{"one second before cutoff", createdAt.Add(12*time.Hour - time.Second), true},
		{"exactly twelve hours", createdAt.Add(12 * time.Hour), false},
		{"well past window", createdAt.Add(13 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tx, tt.now))
		})
	}
}
