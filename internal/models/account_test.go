package models_test

import (
	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountTypeDefaultsToCash() {
	account := suite.createTestAccount(models.Account{Name: "صندوق صغير"})
	suite.Assert().Equal(models.AccountTypeCash, account.Type)
}

func (suite *TestSuiteStandard) TestAccountNameTrimmed() {
	account := suite.createTestAccount(models.Account{Name: "  حساب البنك  ", Type: models.AccountTypeBank})
	suite.Assert().Equal("حساب البنك", account.Name)
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	suite.createTestAccount(models.Account{Name: "حساب البنك"})

	err := models.DB.Create(&models.Account{Name: "حساب البنك"}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestAccountAddToBalance() {
	account := suite.createTestAccount(models.Account{Name: "حساب البنك"})

	err := account.AddToBalance(models.DB, decimal.NewFromInt(100))
	suite.Require().NoError(err)

	err = account.AddToBalance(models.DB, decimal.NewFromFloat(-30.5))
	suite.Require().NoError(err)

	var reloaded models.Account
	suite.Require().NoError(models.DB.First(&reloaded, account.ID).Error)
	suite.Assert().True(reloaded.CurrentBalance.Equal(decimal.NewFromFloat(69.5)), "balance is %s", reloaded.CurrentBalance)
}

func (suite *TestSuiteStandard) TestDesignatedCashAccountIsTreasury() {
	// Connect seeds the treasury account
	account, err := models.DesignatedCashAccount(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Equal(models.TreasuryAccountName, account.Name)
	suite.Assert().Equal(models.AccountTypeCash, account.Type)
}

func (suite *TestSuiteStandard) TestDesignatedCashAccountFallback() {
	fallback := suite.createTestAccount(models.Account{Name: "حساب البنك", Type: models.AccountTypeBank})

	var treasury models.Account
	suite.Require().NoError(models.DB.Where(&models.Account{Name: models.TreasuryAccountName}).First(&treasury).Error)
	suite.Require().NoError(models.DB.Delete(&treasury).Error)

	// Without a treasury, the account with the lowest ID takes over
	account, err := models.DesignatedCashAccount(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Equal(fallback.ID, account.ID)
}

func (suite *TestSuiteStandard) TestDesignatedCashAccountNoAccounts() {
	suite.Require().NoError(models.DB.Where("1 = 1").Delete(&models.Account{}).Error)

	_, err := models.DesignatedCashAccount(models.DB)
	suite.Assert().ErrorIs(err, models.ErrNoAccounts)
}
