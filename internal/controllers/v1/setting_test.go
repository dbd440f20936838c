package v1_test

import (
	"net/http"

	v1 "github.com/quran-branch-manager/backend/internal/controllers/v1"
	"github.com/quran-branch-manager/backend/internal/test"
)

func (suite *TestSuiteStandard) TestSettingList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SettingListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The seeded defaults
	suite.Assert().Len(response.Data, 8)
}

func (suite *TestSuiteStandard) TestSettingUpdate() {
	recorder := test.Request(suite.T(), http.MethodPut, "/v1/settings/local_branch_name", map[string]any{
		"value": "الفرع المحلي بنزرت",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/settings/local_branch_name", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SettingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("الفرع المحلي بنزرت", response.Data.Value)
}

func (suite *TestSuiteStandard) TestSettingUnknownKeyCreated() {
	recorder := test.Request(suite.T(), http.MethodPut, "/v1/settings/ramadan_schedule", map[string]any{
		"value": "true",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/settings/ramadan_schedule", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestSettingValueRequired() {
	recorder := test.Request(suite.T(), http.MethodPut, "/v1/settings/local_branch_name", map[string]any{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.SettingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the setting value must be set", *response.Error)
}

func (suite *TestSuiteStandard) TestSettingNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/settings/does_not_exist", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
