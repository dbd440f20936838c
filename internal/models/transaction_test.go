package models_test

import (
	"testing"
	"time"

	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	transaction := suite.createTestTransaction(models.Transaction{
		Type:     models.TransactionTypeIncome,
		Category: models.CategoryStudentFees,
		Amount:   decimal.NewFromInt(50),
	})

	suite.Assert().Equal(models.PaymentMethodCash, transaction.PaymentMethod)
	suite.Assert().False(transaction.Date.IsZero())
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionVoucherUnique() {
	voucher := "R-2024-0815"
	suite.createTestTransaction(models.Transaction{
		Type:          models.TransactionTypeIncome,
		Category:      models.CategoryStudentFees,
		Amount:        decimal.NewFromInt(50),
		VoucherNumber: &voucher,
	})

	account, err := models.DesignatedCashAccount(models.DB)
	suite.Require().NoError(err)

	err = models.DB.Create(&models.Transaction{
		Type:          models.TransactionTypeIncome,
		Category:      models.CategoryStudentFees,
		Amount:        decimal.NewFromInt(50),
		VoucherNumber: &voucher,
		AccountID:     account.ID,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrVoucherNotUnique)
}

func (suite *TestSuiteStandard) TestValidateCashLimit() {
	tests := []struct {
		name          string
		amount        decimal.Decimal
		paymentMethod models.PaymentMethod
		err           error
	}{
		{"cash below limit", decimal.NewFromInt(500), models.PaymentMethodCash, nil},
		{"cash above limit", decimal.NewFromFloat(500.01), models.PaymentMethodCash, models.ErrCashLimitExceeded},
		{"check above limit", decimal.NewFromInt(10000), models.PaymentMethodCheck, nil},
		{"transfer above limit", decimal.NewFromInt(10000), models.PaymentMethodTransfer, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := models.Transaction{
				Amount:        tt.amount,
				PaymentMethod: tt.paymentMethod,
			}

			err := transaction.ValidateCashLimit()
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestNextMatricule() {
	matricule, err := models.NextMatricule(models.DB, models.TransactionTypeIncome, date(2024, 9, 18))
	suite.Require().NoError(err)
	suite.Assert().Equal("I-2024-001", matricule)

	suite.createTestTransaction(models.Transaction{
		Type:      models.TransactionTypeIncome,
		Category:  models.CategoryStudentFees,
		Amount:    decimal.NewFromInt(50),
		Date:      date(2024, 9, 18),
		Matricule: matricule,
	})

	// The income sequence advances
	matricule, err = models.NextMatricule(models.DB, models.TransactionTypeIncome, date(2024, 10, 2))
	suite.Require().NoError(err)
	suite.Assert().Equal("I-2024-002", matricule)

	// Expenses count independently of income
	matricule, err = models.NextMatricule(models.DB, models.TransactionTypeExpense, date(2024, 10, 2))
	suite.Require().NoError(err)
	suite.Assert().Equal("E-2024-001", matricule)

	// A new year restarts the sequence
	matricule, err = models.NextMatricule(models.DB, models.TransactionTypeIncome, date(2025, 1, 5))
	suite.Require().NoError(err)
	suite.Assert().Equal("I-2025-001", matricule)
}

func (suite *TestSuiteStandard) TestTypeSum() {
	sum, err := models.TypeSum(models.DB, models.TransactionTypeIncome)
	suite.Require().NoError(err)
	suite.Assert().True(sum.IsZero(), "sum of no transactions is %s", sum)

	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Category: models.CategoryStudentFees, Amount: decimal.NewFromInt(150)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Category: models.CategoryCashDonations, Amount: decimal.NewFromFloat(99.5)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeExpense, Category: models.CategoryOtherExpenses, Amount: decimal.NewFromInt(10)})

	sum, err = models.TypeSum(models.DB, models.TransactionTypeIncome)
	suite.Require().NoError(err)
	suite.Assert().True(sum.Equal(decimal.NewFromFloat(249.5)), "income sum is %s", sum)

	sum, err = models.TypeSum(models.DB, models.TransactionTypeExpense)
	suite.Require().NoError(err)
	suite.Assert().True(sum.Equal(decimal.NewFromInt(10)), "expense sum is %s", sum)
}

func (suite *TestSuiteStandard) TestCategorySum() {
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Category: models.CategoryStudentFees, Amount: decimal.NewFromInt(150)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Category: models.CategoryStudentFees, Amount: decimal.NewFromInt(200)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Category: models.CategoryCashDonations, Amount: decimal.NewFromInt(75)})

	sum, err := models.CategorySum(models.DB, models.CategoryStudentFees)
	suite.Require().NoError(err)
	suite.Assert().True(sum.Equal(decimal.NewFromInt(350)), "student fee sum is %s", sum)

	sum, err = models.CategorySum(models.DB, "does not exist")
	suite.Require().NoError(err)
	suite.Assert().True(sum.IsZero(), "sum of unknown category is %s", sum)
}
