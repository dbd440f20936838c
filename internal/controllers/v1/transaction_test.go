package v1_test

import (
	"net/http"

	v1 "github.com/quran-branch-manager/backend/internal/controllers/v1"
	"github.com/quran-branch-manager/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	data := suite.createTestTransaction(map[string]any{
		"type":     "INCOME",
		"category": "رسوم الطلاب",
		"amount":   150,
		"date":     "2024-09-18T00:00:00Z",
	})

	// The booking reference is assigned automatically
	suite.Assert().Equal("I-2024-001", data["matricule"])

	// Without an account, the treasury is used and its balance moves
	suite.Assert().EqualValues(suite.treasury().ID, data["accountId"])
	suite.balanceEquals(decimal.NewFromInt(150))
}

func (suite *TestSuiteStandard) TestTransactionMatriculeSequence() {
	first := suite.createTestTransaction(map[string]any{
		"type": "INCOME", "category": "رسوم الطلاب", "amount": 10, "date": "2024-01-10T00:00:00Z",
	})
	second := suite.createTestTransaction(map[string]any{
		"type": "INCOME", "category": "رسوم الطلاب", "amount": 10, "date": "2024-02-10T00:00:00Z",
	})
	expense := suite.createTestTransaction(map[string]any{
		"type": "EXPENSE", "category": "مصاريف أخرى", "amount": 10, "date": "2024-02-11T00:00:00Z",
	})

	suite.Assert().Equal("I-2024-001", first["matricule"])
	suite.Assert().Equal("I-2024-002", second["matricule"])
	suite.Assert().Equal("E-2024-001", expense["matricule"])
}

func (suite *TestSuiteStandard) TestTransactionCashLimit() {
	// 500 in cash is fine, everything above needs check or transfer
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", map[string]any{
		"type": "EXPENSE", "category": "الإيجار", "amount": 500, "paymentMethod": "CASH",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/transactions", map[string]any{
		"type": "EXPENSE", "category": "الإيجار", "amount": 600, "paymentMethod": "CASH",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/transactions", map[string]any{
		"type": "EXPENSE", "category": "الإيجار", "amount": 600, "paymentMethod": "CHECK", "checkNumber": "1000534",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestTransactionInvalidType() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", map[string]any{
		"type": "TRANSFER", "category": "رسوم الطلاب", "amount": 10,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionUpdateMovesBalance() {
	data := suite.createTestTransaction(map[string]any{
		"type": "INCOME", "category": "رسوم الطلاب", "amount": 100,
	})
	suite.balanceEquals(decimal.NewFromInt(100))

	recorder := test.Request(suite.T(), http.MethodPatch, idPath("transactions", data["id"]), map[string]any{
		"amount": 250,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.balanceEquals(decimal.NewFromInt(250))

	// Switching the type reverses the sign
	recorder = test.Request(suite.T(), http.MethodPatch, idPath("transactions", data["id"]), map[string]any{
		"type": "EXPENSE",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.balanceEquals(decimal.NewFromInt(-250))
}

func (suite *TestSuiteStandard) TestTransactionDeleteReversesBalance() {
	data := suite.createTestTransaction(map[string]any{
		"type": "INCOME", "category": "رسوم الطلاب", "amount": 100,
	})
	suite.balanceEquals(decimal.NewFromInt(100))

	recorder := test.Request(suite.T(), http.MethodDelete, idPath("transactions", data["id"]), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.balanceEquals(decimal.Zero)
}

func (suite *TestSuiteStandard) TestTransactionList() {
	suite.createTestTransaction(map[string]any{
		"type": "INCOME", "category": "رسوم الطلاب", "amount": 100, "date": "2024-01-10T00:00:00Z", "relatedPersonName": "أحمد",
	})
	suite.createTestTransaction(map[string]any{
		"type": "INCOME", "category": "التبرعات النقدية", "amount": 50, "date": "2024-02-10T00:00:00Z",
	})
	suite.createTestTransaction(map[string]any{
		"type": "EXPENSE", "category": "الإيجار", "amount": 300, "date": "2024-03-10T00:00:00Z",
	})

	tests := []struct {
		query string
		count int
		total int64
	}{
		{"", 3, 3},
		{"?type=INCOME", 2, 2},
		{"?category=الإيجار", 1, 1},
		{"?fromDate=2024-02-01", 2, 2},
		{"?untilDate=2024-01-31", 1, 1},
		{"?search=أحمد", 1, 1},
		{"?limit=2", 2, 3},
		{"?limit=2&offset=2", 1, 3},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions"+tt.query, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.count, "wrong count for query %q", tt.query)
		suite.Assert().Equal(tt.total, response.Pagination.Total, "wrong total for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestTransactionListSorted() {
	suite.createTestTransaction(map[string]any{
		"type": "INCOME", "category": "رسوم الطلاب", "amount": 100, "date": "2024-01-10T00:00:00Z",
	})
	suite.createTestTransaction(map[string]any{
		"type": "INCOME", "category": "رسوم الطلاب", "amount": 50, "date": "2024-03-10T00:00:00Z",
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	// Most recent first
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions/9999", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
