package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httperror"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// CategoryEditable represents all values for a category that can be
// updated by the user
type CategoryEditable struct {
	Name        string                 `json:"name" example:"رسوم الطلاب"`
	Type        models.TransactionType `json:"type" example:"INCOME"`
	Description string                 `json:"description" example:"Student registration and monthly fees"`
	Active      bool                   `json:"active" example:"true" default:"true"`
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:        editable.Name,
		Type:        editable.Type,
		Description: editable.Description,
		Active:      editable.Active,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/categories/3"`
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?category=رسوم الطلاب"`
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		Category: model,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%d", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.Name),
		},
	}
}

type CategoryResponse struct {
	Error *string   `json:"error"` // The error, if one occurred
	Data  *Category `json:"data"`  // The category
}

type CategoryListResponse struct {
	Error *string    `json:"error"` // The error, if one occurred
	Data  []Category `json:"data"`  // List of categories
}

type CategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"` // Glob filter by name, e.g. "رواتب*"
	Type   string `form:"type"`                     // Filter by type, INCOME or EXPENSE
	Active bool   `form:"active"`                   // Is the category active?
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	var transactionType models.TransactionType

	if f.Type != "" {
		transactionType = models.TransactionType(strings.ToUpper(f.Type))
		if !slices.Contains([]models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense}, transactionType) {
			return models.Category{}, errTransactionTypeInvalid
		}
	}

	return models.Category{
		Type:   transactionType,
		Active: f.Active,
	}, nil
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", GetCategories)
	r.POST("", CreateCategory)

	r.OPTIONS("/:id", OptionsCategoryDetail)
	r.GET("/:id", GetCategory)
	r.PATCH("/:id", UpdateCategory)
	r.DELETE("/:id", DeleteCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the category"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Category{})
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category := editable.model()

	if category.Type != models.TransactionTypeIncome && category.Type != models.TransactionTypeExpense {
		e := errTransactionTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	err = models.DB.Create(&category).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		List categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			name	query	string	false	"Glob filter by name"
// @Param			type	query	string	false	"Filter by type, INCOME or EXPENSE"
// @Param			active	query	bool	false	"Is the category active?"
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{Error: &s})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	var categories []models.Category
	err = models.DB.Order("type ASC, name ASC").Where(&where, queryFields...).Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		// The name filter supports globs so that e.g. "رواتب*"
		// matches both salary categories
		if filter.Name != "" && !glob.Glob(filter.Name, category.Name) {
			continue
		}

		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		uint	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	var category models.Category
	err := models.DB.First(&category, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		uint				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	var category models.Category
	err := models.DB.First(&category, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	var data CategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	d := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &d})
}

// @Summary		Delete category
// @Description	Deletes a category
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var category models.Category
	err := models.DB.First(&category, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
