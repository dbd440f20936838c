package migration

import (
	"fmt"

	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// tolerance below which a legacy total and a migrated total count as
// equal. Covers currency rounding differences.
var tolerance = decimal.NewFromFloat(0.01)

// Verification is the outcome of comparing the legacy student fee
// total with the migrated one.
type Verification struct {
	PaymentsMatch    bool            `json:"paymentsMatch"`
	OldPaymentsTotal decimal.Decimal `json:"oldPaymentsTotal"`
	NewPaymentsTotal decimal.Decimal `json:"newPaymentsTotal"`
}

// Verify compares the sum of the legacy payments table with the sum of
// migrated student fee transactions.
//
// This is a spot check of a single category, not a full reconciliation
// across all four migrated categories.
func Verify(db *gorm.DB) (Verification, error) {
	var oldTotal decimal.NullDecimal

	err := db.Model(&models.LegacyPayment{}).
		Select("SUM(amount)").
		Row().
		Scan(&oldTotal)
	if err != nil {
		return Verification{}, fmt.Errorf("summing legacy payments failed: %w", err)
	}

	newTotal, err := models.CategorySum(db, models.CategoryStudentFees)
	if err != nil {
		return Verification{}, err
	}

	verification := Verification{
		PaymentsMatch:    oldTotal.Decimal.Sub(newTotal).Abs().LessThan(tolerance),
		OldPaymentsTotal: oldTotal.Decimal,
		NewPaymentsTotal: newTotal,
	}

	log.Info().
		Bool("paymentsMatch", verification.PaymentsMatch).
		Str("oldPaymentsTotal", verification.OldPaymentsTotal.String()).
		Str("newPaymentsTotal", verification.NewPaymentsTotal.String()).
		Msg("migration verification")

	return verification, nil
}
