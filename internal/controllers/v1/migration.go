package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/migration"
	"github.com/quran-branch-manager/backend/internal/models"
)

type MigrationResponse struct {
	Error *string           `json:"error"` // The error, if one occurred
	Data  *migration.Result `json:"data"`  // The migration result
}

type VerificationResponse struct {
	Error *string                 `json:"error"` // The error, if one occurred
	Data  *migration.Verification `json:"data"`  // The verification result
}

// RegisterMigrationRoutes registers the routes for the legacy data
// migration with the RouterGroup that is passed.
func RegisterMigrationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMigration)
	r.POST("", RunMigration)

	r.OPTIONS("/verification", OptionsMigrationVerification)
	r.GET("/verification", GetMigrationVerification)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Migration
// @Success		204
// @Router			/v1/migration [options]
func OptionsMigration(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Migration
// @Success		204
// @Router			/v1/migration/verification [options]
func OptionsMigrationVerification(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Migrate legacy tables
// @Description	Moves all legacy payments, expenses, salaries and cash donations into the unified transactions table and reconciles the treasury balance. Failed categories are reported in the result without rolling back the others.
// @Tags			Migration
// @Produce		json
// @Success		200	{object}	MigrationResponse
// @Failure		400	{object}	MigrationResponse
// @Failure		500	{object}	MigrationResponse
// @Router			/v1/migration [post]
func RunMigration(c *gin.Context) {
	result, err := migration.Run(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MigrationResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MigrationResponse{Data: &result})
}

// @Summary		Verify migration
// @Description	Compares the legacy payment total with the migrated student fee total
// @Tags			Migration
// @Produce		json
// @Success		200	{object}	VerificationResponse
// @Failure		400	{object}	VerificationResponse
// @Failure		500	{object}	VerificationResponse
// @Router			/v1/migration/verification [get]
func GetMigrationVerification(c *gin.Context) {
	verification, err := migration.Verify(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VerificationResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, VerificationResponse{Data: &verification})
}
