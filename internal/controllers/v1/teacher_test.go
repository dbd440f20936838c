package v1_test

import (
	"net/http"

	v1 "github.com/quran-branch-manager/backend/internal/controllers/v1"
	"github.com/quran-branch-manager/backend/internal/test"
)

func (suite *TestSuiteStandard) createTestTeacher(body map[string]any) v1.Teacher {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/teachers", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TeacherResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestTeacherCreate() {
	teacher := suite.createTestTeacher(map[string]any{
		"name":              "فاطمة الزهراء",
		"specialization":    "القراءات",
		"yearsOfExperience": 7,
	})

	suite.Assert().Equal("القراءات", teacher.Specialization)
	suite.Assert().Equal(7, teacher.YearsOfExperience)
	suite.Assert().Contains(teacher.Links.Self, "/v1/teachers/")
}

func (suite *TestSuiteStandard) TestTeacherListArabicOrder() {
	// Insertion order is deliberately not alphabetical
	suite.createTestTeacher(map[string]any{"name": "وليد"})
	suite.createTestTeacher(map[string]any{"name": "إبراهيم"})
	suite.createTestTeacher(map[string]any{"name": "خديجة"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/teachers", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TeacherListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 3)

	suite.Assert().Equal("إبراهيم", response.Data[0].Name)
	suite.Assert().Equal("خديجة", response.Data[1].Name)
	suite.Assert().Equal("وليد", response.Data[2].Name)
}

func (suite *TestSuiteStandard) TestTeacherSpecializationFilter() {
	suite.createTestTeacher(map[string]any{"name": "فاطمة", "specialization": "القراءات"})
	suite.createTestTeacher(map[string]any{"name": "محمد", "specialization": "التجويد"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/teachers?specialization=التجويد", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TeacherListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("محمد", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestTeacherUpdate() {
	teacher := suite.createTestTeacher(map[string]any{"name": "فاطمة"})

	recorder := test.Request(suite.T(), http.MethodPatch, idPath("teachers", teacher.ID), map[string]any{
		"yearsOfExperience": 8,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, idPath("teachers", teacher.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TeacherResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(8, response.Data.YearsOfExperience)
	suite.Assert().Equal("فاطمة", response.Data.Name)
}

func (suite *TestSuiteStandard) TestTeacherDelete() {
	teacher := suite.createTestTeacher(map[string]any{"name": "فاطمة"})

	recorder := test.Request(suite.T(), http.MethodDelete, idPath("teachers", teacher.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, idPath("teachers", teacher.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
