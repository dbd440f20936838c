package v1_test

import (
	"net/http"

	v1 "github.com/quran-branch-manager/backend/internal/controllers/v1"
	"github.com/quran-branch-manager/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", map[string]any{
		"name":           "حساب البنك",
		"type":           "BANK",
		"initialBalance": 1000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal("حساب البنك", response.Data.Name)
	suite.Assert().True(response.Data.CurrentBalance.Equal(decimal.NewFromInt(1000)), "current balance is %s", response.Data.CurrentBalance)
	suite.Assert().Contains(response.Data.Links.Self, "/v1/accounts/")
}

func (suite *TestSuiteStandard) TestAccountNameConflict() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", map[string]any{"name": "الخزينة"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the account name must be unique", *response.Error)
}

func (suite *TestSuiteStandard) TestAccountList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The seeded treasury
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("الخزينة", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestAccountUpdateInitialBalance() {
	account := suite.treasury()

	recorder := test.Request(suite.T(), http.MethodPatch, idPath("accounts", account.ID), map[string]any{
		"initialBalance": 500,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// The current balance moves by the initial balance difference
	suite.balanceEquals(decimal.NewFromInt(500))
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", map[string]any{"name": "حساب مؤقت"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	recorder = test.Request(suite.T(), http.MethodDelete, idPath("accounts", response.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, idPath("accounts", response.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", `{ broken json`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
