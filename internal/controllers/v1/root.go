package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Accounts     string `json:"accounts" example:"https://example.com/v1/accounts"`
	Attendance   string `json:"attendance" example:"https://example.com/v1/attendance"`
	Categories   string `json:"categories" example:"https://example.com/v1/categories"`
	Classes      string `json:"classes" example:"https://example.com/v1/classes"`
	Inventory    string `json:"inventory" example:"https://example.com/v1/inventory"`
	Migration    string `json:"migration" example:"https://example.com/v1/migration"`
	Settings     string `json:"settings" example:"https://example.com/v1/settings"`
	Students     string `json:"students" example:"https://example.com/v1/students"`
	Summary      string `json:"summary" example:"https://example.com/v1/summary"`
	Teachers     string `json:"teachers" example:"https://example.com/v1/teachers"`
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"`
}

// RegisterRootRoutes registers the routes for the API root.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Accounts:     url + "/accounts",
			Attendance:   url + "/attendance",
			Categories:   url + "/categories",
			Classes:      url + "/classes",
			Inventory:    url + "/inventory",
			Migration:    url + "/migration",
			Settings:     url + "/settings",
			Students:     url + "/students",
			Summary:      url + "/summary",
			Teachers:     url + "/teachers",
			Transactions: url + "/transactions",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
