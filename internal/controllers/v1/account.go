package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httperror"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// AccountEditable represents all values for an account that can be
// updated by the user
type AccountEditable struct {
	Name           string             `json:"name" example:"الخزينة"`
	Type           models.AccountType `json:"type" example:"CASH" default:"CASH"`
	AccountNumber  string             `json:"accountNumber" example:"TN5910006035183598478831"`
	InitialBalance decimal.Decimal    `json:"initialBalance" example:"150.75" default:"0"`
	Active         bool               `json:"active" example:"true" default:"true"`
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:           editable.Name,
		Type:           editable.Type,
		AccountNumber:  editable.AccountNumber,
		InitialBalance: editable.InitialBalance,
		Active:         editable.Active,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/accounts/2"`
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?account=2"`
}

type Account struct {
	models.Account
	Links AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		Account: model,
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%d", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%d", url, model.ID),
		},
	}
}

type AccountResponse struct {
	Error *string  `json:"error"` // The error, if one occurred
	Data  *Account `json:"data"`  // The account
}

type AccountListResponse struct {
	Error *string   `json:"error"` // The error, if one occurred
	Data  []Account `json:"data"`  // List of accounts
}

type AccountQueryFilter struct {
	Name   string `form:"name" filterField:"false"` // Fuzzy filter by name
	Type   string `form:"type"`                     // Filter by type, CASH or BANK
	Active bool   `form:"active"`                   // Is the account active?
}

func (f AccountQueryFilter) model() (models.Account, error) {
	var accountType models.AccountType

	if f.Type != "" {
		accountType = models.AccountType(strings.ToUpper(f.Type))
		if !slices.Contains([]models.AccountType{models.AccountTypeCash, models.AccountTypeBank}, accountType) {
			return models.Account{}, errAccountTypeInvalid
		}
	}

	return models.Account{
		Type:   accountType,
		Active: f.Active,
	}, nil
}

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAccountList)
	r.GET("", GetAccounts)
	r.POST("", CreateAccount)

	r.OPTIONS("/:id", OptionsAccountDetail)
	r.GET("/:id", GetAccount)
	r.PATCH("/:id", UpdateAccount)
	r.DELETE("/:id", DeleteAccount)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the account"
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Account{})
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func CreateAccount(c *gin.Context) {
	var editable AccountEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	account := editable.model()

	// A new account starts out with its initial balance
	account.CurrentBalance = account.InitialBalance

	err = models.DB.Create(&account).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusCreated, AccountResponse{Data: &data})
}

// @Summary		List accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		400	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Router			/v1/accounts [get]
// @Param			name	query	string	false	"Fuzzy filter by name"
// @Param			type	query	string	false	"Filter by type, CASH or BANK"
// @Param			active	query	bool	false	"Is the account active?"
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, AccountListResponse{Error: &s})
		return
	}

	// Get the fields set in the filter
	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &e})
		return
	}

	q := models.DB.Order("name ASC").Where(&where, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	}

	var accounts []models.Account
	err = q.Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &e})
		return
	}

	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, newAccount(c, account))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		uint	true	"ID of the account"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	var account models.Account
	err := models.DB.First(&account, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		uint			true	"ID of the account"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	var account models.Account
	err := models.DB.First(&account, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	var data AccountEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	update := data.model()

	// When the initial balance changes, the current balance moves by
	// the same difference so that booked transactions stay accounted
	// for.
	if slices.Contains(updateFields, any("InitialBalance")) {
		update.CurrentBalance = account.CurrentBalance.Add(update.InitialBalance.Sub(account.InitialBalance))
		updateFields = append(updateFields, "CurrentBalance")
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(update).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	d := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &d})
}

// @Summary		Delete account
// @Description	Deletes an account
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the account"
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var account models.Account
	err := models.DB.First(&account, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&account).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
