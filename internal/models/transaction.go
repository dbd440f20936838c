package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCheck    PaymentMethod = "CHECK"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

// Category labels for the unified transactions table. The Arabic labels
// are stored verbatim, matching the seeded category records.
const (
	CategoryStudentFees     = "رسوم الطلاب"
	CategoryCashDonations   = "التبرعات النقدية"
	CategoryTeacherSalaries = "رواتب المعلمين"
	CategoryAdminSalaries   = "رواتب الإداريين"
	CategoryOtherExpenses   = "مصاريف أخرى"
)

// CashLimit is the largest amount that may be handled in cash.
var CashLimit = decimal.NewFromInt(500)

// Transaction is a single row of the unified financial journal. Both
// day-to-day bookings and rows migrated from the legacy tables share
// this shape.
type Transaction struct {
	Model
	Type              TransactionType `json:"type" gorm:"index"`
	Category          string          `json:"category" gorm:"index"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod"`
	CheckNumber       string          `json:"checkNumber,omitempty"`
	VoucherNumber     *string         `json:"voucherNumber" gorm:"uniqueIndex"`
	Matricule         string          `json:"matricule,omitempty" gorm:"index"`
	AccountID         uint            `json:"accountId"`
	Account           Account         `json:"-"`
	RelatedPersonName string          `json:"relatedPersonName,omitempty"`
	RelatedEntityType string          `json:"relatedEntityType,omitempty"` // Student, Teacher or User
	RelatedEntityID   *uint           `json:"relatedEntityId,omitempty"`
	CreatedByUserID   *uint           `json:"createdByUserId,omitempty"`
}

// BeforeSave sets the timezone for the Date to UTC and defaults the
// payment method to cash.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.PaymentMethod == "" {
		t.PaymentMethod = PaymentMethodCash
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// ValidateCashLimit enforces the cash handling rule for day-to-day
// bookings. Migrated legacy rows are exempt since they were accepted
// under the old system.
func (t Transaction) ValidateCashLimit() error {
	if t.PaymentMethod == PaymentMethodCash && t.Amount.GreaterThan(CashLimit) {
		return ErrCashLimitExceeded
	}

	return nil
}

// NextMatricule returns the next booking reference for the transaction
// type and year, e.g. I-2024-001 for income and E-2024-003 for the
// third expense of 2024.
func NextMatricule(db *gorm.DB, transactionType TransactionType, date time.Time) (string, error) {
	prefix := "E"
	if transactionType == TransactionTypeIncome {
		prefix = "I"
	}
	year := date.Year()

	var last Transaction
	err := db.
		Where("type = ? AND matricule LIKE ?", transactionType, fmt.Sprintf("%s-%d-%%", prefix, year)).
		Order("id DESC").
		First(&last).Error

	sequence := 1
	if err == nil {
		parts := strings.Split(last.Matricule, "-")
		if n, convErr := strconv.Atoi(parts[len(parts)-1]); convErr == nil {
			sequence = n + 1
		}
	} else if !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%03d", prefix, year, sequence), nil
}

// TypeSum returns the sum of all transaction amounts of the given type.
// An empty result counts as zero.
func TypeSum(db *gorm.DB, transactionType TransactionType) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&Transaction{}).
		Where("type = ?", transactionType).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing %s transactions failed: %w", transactionType, err)
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// CategorySum returns the sum of all transaction amounts in the given
// category. An empty result counts as zero.
func CategorySum(db *gorm.DB, category string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&Transaction{}).
		Where("category = ?", category).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing transactions for category %q failed: %w", category, err)
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
