package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TreasuryAccountName is the name of the branch cash box. All migrated
// legacy transactions are attributed to this account.
const TreasuryAccountName = "الخزينة"

type AccountType string

const (
	AccountTypeCash AccountType = "CASH"
	AccountTypeBank AccountType = "BANK"
)

// Account represents an account money is moved in and out of,
// e.g. the treasury cash box or a bank account.
type Account struct {
	Model
	Name           string          `json:"name" gorm:"uniqueIndex"`
	Type           AccountType     `json:"type"`
	AccountNumber  string          `json:"accountNumber,omitempty"`
	InitialBalance decimal.Decimal `json:"initialBalance" gorm:"type:DECIMAL(20,8)"`
	CurrentBalance decimal.Decimal `json:"currentBalance" gorm:"type:DECIMAL(20,8)"`
	Active         bool            `json:"active" gorm:"default:true"`
}

// BeforeSave trims whitespace and defaults the account type to cash.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.AccountNumber = strings.TrimSpace(a.AccountNumber)

	if a.Type == "" {
		a.Type = AccountTypeCash
	}

	return nil
}

// AddToBalance adjusts the account balance by delta. Income
// transactions pass the amount, expense transactions its negation.
func (a Account) AddToBalance(db *gorm.DB, delta decimal.Decimal) error {
	return db.Model(&Account{}).
		Where("id = ?", a.ID).
		Update("current_balance", gorm.Expr("current_balance + ?", delta)).
		Error
}

// DesignatedCashAccount returns the account carrying the branch
// balance. The treasury is looked up by name; if it does not exist,
// the account with the lowest ID is used instead.
func DesignatedCashAccount(db *gorm.DB) (Account, error) {
	var account Account

	err := db.Where(&Account{Name: TreasuryAccountName}).First(&account).Error
	if err == nil {
		return account, nil
	}

	if !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, err
	}

	err = db.Order("id ASC").First(&account).Error
	if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, ErrNoAccounts
	}
	if err != nil {
		return Account{}, err
	}

	return account, nil
}
