package models_test

import (
	"testing"

	"github.com/nitelabs/venue_crm_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedTotal(t *testing.T) {
	testCases := []struct {
		name     string
		kind     models.CategoryKind
		total    decimal.Decimal
		expected decimal.Decimal
	}{
		{"point counts positive", models.KindPoint, decimal.NewFromInt(500), decimal.NewFromInt(500)},
		{"penalty counts negative", models.KindPenalty, decimal.NewFromInt(200), decimal.NewFromInt(-200)},
		{"zero total stays zero", models.KindPenalty, decimal.Zero, decimal.Zero},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry := models.LedgerEntry{Total: tc.total, Kind: tc.kind}
			assert.True(t, entry.SignedTotal().Equal(tc.expected),
				"got %s, want %s", entry.SignedTotal(), tc.expected)
		})
	}
}

// A reversal applies SignedTotal().Neg(); together with the delta applied
// at creation the two must cancel exactly for every kind.
func TestSignedTotalReversalCancels(t *testing.T) {
	for _, kind := range []models.CategoryKind{models.KindPoint, models.KindPenalty} {
		t.Run(string(kind), func(t *testing.T) {
			entry := models.LedgerEntry{Total: decimal.RequireFromString("123.45"), Kind: kind}
			net := entry.SignedTotal().Add(entry.SignedTotal().Neg())
			assert.True(t, net.IsZero(), "net effect %s", net)
		})
	}
}
