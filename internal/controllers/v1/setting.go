package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

type URIKey struct {
	Key string `uri:"key" binding:"required"` // Key of the setting
}

// SettingEditable represents the writable part of a setting
type SettingEditable struct {
	Value string `json:"value" example:"الفرع المحلي بنزرت"`
}

type SettingResponse struct {
	Error *string         `json:"error"` // The error, if one occurred
	Data  *models.Setting `json:"data"`  // The setting
}

type SettingListResponse struct {
	Error *string          `json:"error"` // The error, if one occurred
	Data  []models.Setting `json:"data"`  // List of settings
}

// RegisterSettingRoutes registers the routes for settings with
// the RouterGroup that is passed.
func RegisterSettingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettingList)
	r.GET("", GetSettings)

	r.OPTIONS("/:key", OptionsSettingDetail)
	r.GET("/:key", GetSetting)
	r.PUT("/:key", UpdateSetting)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettingList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Param			key	path		string	true	"Key of the setting"
// @Router			/v1/settings/{key} [options]
func OptionsSettingDetail(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		List settings
// @Description	Returns all branch settings
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingListResponse
// @Failure		500	{object}	SettingListResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	var settings []models.Setting

	err := models.DB.Order("key ASC").Find(&settings).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SettingListResponse{Data: settings})
}

// @Summary		Get setting
// @Description	Returns a specific setting
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingResponse
// @Failure		400	{object}	SettingResponse
// @Failure		404	{object}	SettingResponse
// @Failure		500	{object}	SettingResponse
// @Param			key	path		string	true	"Key of the setting"
// @Router			/v1/settings/{key} [get]
func GetSetting(c *gin.Context) {
	var uri URIKey
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{Error: &e})
		return
	}

	var setting models.Setting
	err := models.DB.First(&setting, "key = ?", uri.Key).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SettingResponse{Data: &setting})
}

// @Summary		Update setting
// @Description	Sets the value for a setting. Unknown keys are created.
// @Tags			Settings
// @Produce		json
// @Success		200		{object}	SettingResponse
// @Failure		400		{object}	SettingResponse
// @Failure		500		{object}	SettingResponse
// @Param			key		path		string			true	"Key of the setting"
// @Param			setting	body		SettingEditable	true	"Setting"
// @Router			/v1/settings/{key} [put]
func UpdateSetting(c *gin.Context) {
	var uri URIKey
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{Error: &e})
		return
	}

	bodyFields, err := httputil.GetBodyFields(c, SettingEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{Error: &e})
		return
	}

	if !slices.Contains(bodyFields, any("Value")) {
		e := errSettingValueMissing.Error()
		c.JSON(http.StatusBadRequest, SettingResponse{Error: &e})
		return
	}

	var editable SettingEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{Error: &e})
		return
	}

	setting := models.Setting{Key: uri.Key, Value: editable.Value}

	err = models.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&setting).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SettingResponse{Data: &setting})
}
