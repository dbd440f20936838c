package v1_test

import (
	"net/http"
	"time"

	"github.com/quran-branch-manager/backend/internal/migration"
	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/quran-branch-manager/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) seedLegacyTables() {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	suite.Require().NoError(models.DB.Create(&[]models.LegacyPayment{
		{StudentID: 1, Amount: decimal.NewFromInt(150), PaymentDate: day},
		{StudentID: 2, Amount: decimal.NewFromInt(200), PaymentDate: day},
	}).Error)

	suite.Require().NoError(models.DB.Create(&models.LegacyExpense{
		Amount: decimal.NewFromInt(50), ExpenseDate: day,
	}).Error)

	suite.Require().NoError(models.DB.Create(&models.LegacySalary{
		UserID: 7, UserType: "teacher", EmployeeName: "فاطمة", Amount: decimal.NewFromInt(800), PaymentDate: day,
	}).Error)

	suite.Require().NoError(models.DB.Create(&models.LegacyDonation{
		DonorName: "صالح", Amount: decimal.NewFromInt(100), DonationDate: day, DonationType: models.DonationTypeCash,
	}).Error)
}

func (suite *TestSuiteStandard) TestMigrationEndpoint() {
	suite.seedLegacyTables()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/migration", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Data *migration.Result `json:"data"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Success)
	suite.Assert().Equal(2, response.Data.Payments)
	suite.Assert().Equal(1, response.Data.Expenses)
	suite.Assert().Equal(1, response.Data.Salaries)
	suite.Assert().Equal(1, response.Data.Donations)
	suite.Assert().Equal(5, response.Data.TotalMigrated)

	// 150+200+100 income, 50+800 expenses
	suite.Assert().True(response.Data.FinalBalance.Equal(decimal.NewFromInt(-400)), "final balance is %s", response.Data.FinalBalance)
	suite.balanceEquals(decimal.NewFromInt(-400))
}

func (suite *TestSuiteStandard) TestMigrationVerificationEndpoint() {
	suite.seedLegacyTables()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/migration", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/migration/verification", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Data *migration.Verification `json:"data"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.PaymentsMatch)
	suite.Assert().True(response.Data.OldPaymentsTotal.Equal(decimal.NewFromInt(350)))
	suite.Assert().True(response.Data.NewPaymentsTotal.Equal(decimal.NewFromInt(350)))
}

func (suite *TestSuiteStandard) TestMigrationMethodNotAllowed() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/migration", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
