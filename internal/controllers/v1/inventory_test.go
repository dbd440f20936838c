package v1_test

import (
	"net/http"

	v1 "github.com/quran-branch-manager/backend/internal/controllers/v1"
	"github.com/quran-branch-manager/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestInventoryTotalValue() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/inventory", map[string]any{
		"name":      "مصحف كبير",
		"category":  "books",
		"quantity":  30,
		"unitValue": 12.5,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.InventoryItemResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.TotalValue.Equal(decimal.NewFromInt(375)), "total value is %s", response.Data.TotalValue)

	// Changing the quantity recomputes the total
	recorder = test.Request(suite.T(), http.MethodPatch, idPath("inventory", response.Data.ID), map[string]any{
		"quantity": 10,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.InventoryItemResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().True(updated.Data.TotalValue.Equal(decimal.NewFromInt(125)), "total value is %s", updated.Data.TotalValue)
}

func (suite *TestSuiteStandard) TestInventoryFilter() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/inventory", map[string]any{
		"name": "سبورة", "category": "furniture", "quantity": 2, "unitValue": 80,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/inventory", map[string]any{
		"name": "مصحف", "category": "books", "quantity": 50, "unitValue": 10,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/inventory?category=books", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.InventoryItemListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("مصحف", response.Data[0].Name)
}
