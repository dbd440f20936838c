package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httperror"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/shopspring/decimal"
)

// InventoryItemEditable represents all values for an inventory item
// that can be updated by the user. The total value is computed from
// quantity and unit value.
type InventoryItemEditable struct {
	Matricule         string          `json:"matricule" example:"INV-2024-015"`
	Name              string          `json:"name" example:"مصحف كبير"`
	Category          string          `json:"category" example:"books"`
	Quantity          int             `json:"quantity" example:"30"`
	UnitValue         decimal.Decimal `json:"unitValue" example:"12.5"`
	AcquisitionDate   *time.Time      `json:"acquisitionDate"`
	AcquisitionSource string          `json:"acquisitionSource" example:"donation"`
	ConditionStatus   string          `json:"conditionStatus" example:"good"`
	Location          string          `json:"location" example:"قاعة التحفيظ"`
	Notes             string          `json:"notes"`
}

func (editable InventoryItemEditable) model() models.InventoryItem {
	return models.InventoryItem{
		Matricule:         editable.Matricule,
		Name:              editable.Name,
		Category:          editable.Category,
		Quantity:          editable.Quantity,
		UnitValue:         editable.UnitValue,
		AcquisitionDate:   editable.AcquisitionDate,
		AcquisitionSource: editable.AcquisitionSource,
		ConditionStatus:   editable.ConditionStatus,
		Location:          editable.Location,
		Notes:             editable.Notes,
	}
}

type InventoryItemLinks struct {
	Self string `json:"self" example:"https://example.com/v1/inventory/15"`
}

type InventoryItem struct {
	models.InventoryItem
	Links InventoryItemLinks `json:"links"`
}

func newInventoryItem(c *gin.Context, model models.InventoryItem) InventoryItem {
	url := c.GetString(string(models.DBContextURL))

	return InventoryItem{
		InventoryItem: model,
		Links: InventoryItemLinks{
			Self: fmt.Sprintf("%s/v1/inventory/%d", url, model.ID),
		},
	}
}

type InventoryItemResponse struct {
	Error *string        `json:"error"` // The error, if one occurred
	Data  *InventoryItem `json:"data"`  // The inventory item
}

type InventoryItemListResponse struct {
	Error *string         `json:"error"` // The error, if one occurred
	Data  []InventoryItem `json:"data"`  // List of inventory items
}

type InventoryItemQueryFilter struct {
	Name            string `form:"name" filterField:"false"` // Fuzzy filter by name
	Category        string `form:"category"`                 // Filter by category
	ConditionStatus string `form:"condition"`                // Filter by condition status
	Location        string `form:"location"`                 // Filter by location
}

func (f InventoryItemQueryFilter) model() models.InventoryItem {
	return models.InventoryItem{
		Category:        f.Category,
		ConditionStatus: f.ConditionStatus,
		Location:        f.Location,
	}
}

// RegisterInventoryRoutes registers the routes for inventory items with
// the RouterGroup that is passed.
func RegisterInventoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsInventoryList)
	r.GET("", GetInventoryItems)
	r.POST("", CreateInventoryItem)

	r.OPTIONS("/:id", OptionsInventoryDetail)
	r.GET("/:id", GetInventoryItem)
	r.PATCH("/:id", UpdateInventoryItem)
	r.DELETE("/:id", DeleteInventoryItem)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Inventory
// @Success		204
// @Router			/v1/inventory [options]
func OptionsInventoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Inventory
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the inventory item"
// @Router			/v1/inventory/{id} [options]
func OptionsInventoryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.InventoryItem{})
}

// @Summary		Create inventory item
// @Description	Creates a new inventory item
// @Tags			Inventory
// @Produce		json
// @Success		201		{object}	InventoryItemResponse
// @Failure		400		{object}	InventoryItemResponse
// @Failure		500		{object}	InventoryItemResponse
// @Param			item	body		InventoryItemEditable	true	"Inventory item"
// @Router			/v1/inventory [post]
func CreateInventoryItem(c *gin.Context) {
	var editable InventoryItemEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	item := editable.model()

	err = models.DB.Create(&item).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	data := newInventoryItem(c, item)
	c.JSON(http.StatusCreated, InventoryItemResponse{Data: &data})
}

// @Summary		List inventory items
// @Description	Returns a list of inventory items
// @Tags			Inventory
// @Produce		json
// @Success		200	{object}	InventoryItemListResponse
// @Failure		400	{object}	InventoryItemListResponse
// @Failure		500	{object}	InventoryItemListResponse
// @Router			/v1/inventory [get]
// @Param			name		query	string	false	"Fuzzy filter by name"
// @Param			category	query	string	false	"Filter by category"
// @Param			condition	query	string	false	"Filter by condition status"
// @Param			location	query	string	false	"Filter by location"
func GetInventoryItems(c *gin.Context) {
	var filter InventoryItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, InventoryItemListResponse{Error: &s})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.Order("name ASC").Where(&where, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	}

	var items []models.InventoryItem
	err := q.Find(&items).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemListResponse{Error: &e})
		return
	}

	data := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		data = append(data, newInventoryItem(c, item))
	}

	c.JSON(http.StatusOK, InventoryItemListResponse{Data: data})
}

// @Summary		Get inventory item
// @Description	Returns a specific inventory item
// @Tags			Inventory
// @Produce		json
// @Success		200	{object}	InventoryItemResponse
// @Failure		400	{object}	InventoryItemResponse
// @Failure		404	{object}	InventoryItemResponse
// @Failure		500	{object}	InventoryItemResponse
// @Param			id	path		uint	true	"ID of the inventory item"
// @Router			/v1/inventory/{id} [get]
func GetInventoryItem(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	var item models.InventoryItem
	err := models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	data := newInventoryItem(c, item)
	c.JSON(http.StatusOK, InventoryItemResponse{Data: &data})
}

// @Summary		Update inventory item
// @Description	Updates an inventory item. Only values to be updated need to be specified.
// @Tags			Inventory
// @Produce		json
// @Success		200		{object}	InventoryItemResponse
// @Failure		400		{object}	InventoryItemResponse
// @Failure		404		{object}	InventoryItemResponse
// @Failure		500		{object}	InventoryItemResponse
// @Param			id		path		uint					true	"ID of the inventory item"
// @Param			item	body		InventoryItemEditable	true	"Inventory item"
// @Router			/v1/inventory/{id} [patch]
func UpdateInventoryItem(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	var item models.InventoryItem
	err := models.DB.First(&item, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InventoryItemEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	var data InventoryItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	// Reload the merged values and save once more so that the total
	// value is recomputed from the stored quantity and unit value
	err = models.DB.First(&item, item.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	err = models.DB.Save(&item).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InventoryItemResponse{Error: &e})
		return
	}

	d := newInventoryItem(c, item)
	c.JSON(http.StatusOK, InventoryItemResponse{Data: &d})
}

// @Summary		Delete inventory item
// @Description	Deletes an inventory item
// @Tags			Inventory
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the inventory item"
// @Router			/v1/inventory/{id} [delete]
func DeleteInventoryItem(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var item models.InventoryItem
	err := models.DB.First(&item, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
