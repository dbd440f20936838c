package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httperror"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionEditable represents all values for a transaction that can
// be updated by the user
type TransactionEditable struct {
	Type              models.TransactionType `json:"type" example:"INCOME"`
	Category          string                 `json:"category" example:"رسوم الطلاب"`
	Amount            decimal.Decimal        `json:"amount" example:"150" minimum:"0.00000001" multipleOf:"0.00000001"`
	Date              time.Time              `json:"date" example:"2024-09-18T00:00:00Z"`
	Description       string                 `json:"description" example:"رسوم الطالب أحمد"`
	PaymentMethod     models.PaymentMethod   `json:"paymentMethod" example:"CASH" default:"CASH"`
	CheckNumber       string                 `json:"checkNumber" example:"1000534"`
	VoucherNumber     *string                `json:"voucherNumber" example:"R-2024-0815"`
	AccountID         uint                   `json:"accountId" example:"1"`
	RelatedPersonName string                 `json:"relatedPersonName" example:"أحمد بن صالح"`
	RelatedEntityType string                 `json:"relatedEntityType" example:"Student"`
	RelatedEntityID   *uint                  `json:"relatedEntityId" example:"42"`
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:              editable.Type,
		Category:          editable.Category,
		Amount:            editable.Amount,
		Date:              editable.Date,
		Description:       editable.Description,
		PaymentMethod:     editable.PaymentMethod,
		CheckNumber:       editable.CheckNumber,
		VoucherNumber:     editable.VoucherNumber,
		AccountID:         editable.AccountID,
		RelatedPersonName: editable.RelatedPersonName,
		RelatedEntityType: editable.RelatedEntityType,
		RelatedEntityID:   editable.RelatedEntityID,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/v1/transactions/241"`
	Account string `json:"account" example:"https://example.com/v1/accounts/1"`
}

type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%d", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%d", url, model.AccountID),
		},
	}
}

type TransactionResponse struct {
	Error *string      `json:"error"` // The error, if one occurred
	Data  *Transaction `json:"data"`  // The transaction
}

type TransactionListResponse struct {
	Error      *string       `json:"error"`      // The error, if one occurred
	Data       []Transaction `json:"data"`       // List of transactions
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionQueryFilter struct {
	Type      string    `form:"type"`                                                    // Filter by type, INCOME or EXPENSE
	Category  string    `form:"category"`                                                // Filter by category label
	AccountID uint      `form:"account"`                                                 // Filter by account ID
	FromDate  time.Time `form:"fromDate" filterField:"false" time_format:"2006-01-02"`   // Transactions on or after this date
	UntilDate time.Time `form:"untilDate" filterField:"false" time_format:"2006-01-02"`  // Transactions on or before this date
	Search    string    `form:"search" filterField:"false"`                              // Fuzzy filter on description, person and matricule
	Offset    uint      `form:"offset" filterField:"false"`                              // The offset of the first transaction returned. Defaults to 0.
	Limit     int       `form:"limit" filterField:"false"`                               // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	var transactionType models.TransactionType

	if f.Type != "" {
		transactionType = models.TransactionType(strings.ToUpper(f.Type))
		if !slices.Contains([]models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense}, transactionType) {
			return models.Transaction{}, errTransactionTypeInvalid
		}
	}

	return models.Transaction{
		Type:      transactionType,
		Category:  f.Category,
		AccountID: f.AccountID,
	}, nil
}

// balanceEffect returns the amount a transaction moves its account
// balance by, positive for income and negative for expenses.
func balanceEffect(t models.Transaction) decimal.Decimal {
	if t.Type == models.TransactionTypeExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransactionList)
	r.GET("", GetTransactions)
	r.POST("", CreateTransaction)

	r.OPTIONS("/:id", OptionsTransactionDetail)
	r.GET("/:id", GetTransaction)
	r.PATCH("/:id", UpdateTransaction)
	r.DELETE("/:id", DeleteTransaction)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{})
}

// @Summary		Create transaction
// @Description	Creates a new transaction. The booking reference is assigned automatically and the account balance is adjusted.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction := editable.model()

	if transaction.Type != models.TransactionTypeIncome && transaction.Type != models.TransactionTypeExpense {
		e := errTransactionTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	if transaction.PaymentMethod != "" && !slices.Contains([]models.PaymentMethod{models.PaymentMethodCash, models.PaymentMethodCheck, models.PaymentMethodTransfer}, transaction.PaymentMethod) {
		e := errPaymentMethodInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	err = transaction.ValidateCashLimit()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	// The booking reference needs the date before the model hooks run
	if transaction.Date.IsZero() {
		transaction.Date = time.Now().In(time.UTC)
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		// Book against the cash box when no account is specified
		if transaction.AccountID == 0 {
			account, err := models.DesignatedCashAccount(tx)
			if err != nil {
				return err
			}

			transaction.AccountID = account.ID
		} else {
			var account models.Account
			err := tx.First(&account, transaction.AccountID).Error
			if err != nil {
				return err
			}
		}

		matricule, err := models.NextMatricule(tx, transaction.Type, transaction.Date)
		if err != nil {
			return err
		}
		transaction.Matricule = matricule

		err = tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		return models.Account{Model: models.Model{ID: transaction.AccountID}}.AddToBalance(tx, balanceEffect(transaction))
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		List transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			type		query	string	false	"Filter by type, INCOME or EXPENSE"
// @Param			category	query	string	false	"Filter by category label"
// @Param			account		query	uint	false	"Filter by account ID"
// @Param			fromDate	query	string	false	"Transactions on or after this date (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Transactions on or before this date (YYYY-MM-DD)"
// @Param			search		query	string	false	"Fuzzy filter on description, person and matricule"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	q := models.DB.Order("date(date) DESC, id DESC").Where(&where, queryFields...)

	if !filter.FromDate.IsZero() {
		q = q.Where("date(date) >= date(?)", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("date(date) <= date(?)", filter.UntilDate)
	}

	if filter.Search != "" {
		search := fmt.Sprintf("%%%s%%", filter.Search)
		q = q.Where("description LIKE ? OR related_person_name LIKE ? OR matricule LIKE ?", search, search, search)
	}

	// The total of all matching transactions, before pagination
	var count int64
	err = q.Model(&models.Transaction{}).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	// Default to 50 transactions and treat a negative limit as "all"
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	if filter.Limit >= 0 {
		q = q.Limit(filter.Limit)
	}
	q = q.Offset(int(filter.Offset))

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  filter.Limit,
			Total:  count,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		uint	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified. Account balances are adjusted accordingly.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		uint				true	"ID of the transaction"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	var data TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	if slices.Contains(updateFields, any("Type")) &&
		data.Type != models.TransactionTypeIncome && data.Type != models.TransactionTypeExpense {
		e := errTransactionTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	if slices.Contains(updateFields, any("PaymentMethod")) &&
		!slices.Contains([]models.PaymentMethod{models.PaymentMethodCash, models.PaymentMethodCheck, models.PaymentMethodTransfer}, data.PaymentMethod) {
		e := errPaymentMethodInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		// Take the old version out of the account balance first
		err := models.Account{Model: models.Model{ID: transaction.AccountID}}.AddToBalance(tx, balanceEffect(transaction).Neg())
		if err != nil {
			return err
		}

		err = tx.Model(&transaction).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			return err
		}

		// Reload so that the balance is adjusted with the merged values
		err = tx.First(&transaction, transaction.ID).Error
		if err != nil {
			return err
		}

		err = transaction.ValidateCashLimit()
		if err != nil {
			return err
		}

		return models.Account{Model: models.Model{ID: transaction.AccountID}}.AddToBalance(tx, balanceEffect(transaction))
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	d := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &d})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction and reverses its effect on the account balance
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		uint	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := models.Account{Model: models.Model{ID: transaction.AccountID}}.AddToBalance(tx, balanceEffect(transaction).Neg())
		if err != nil {
			return err
		}

		return tx.Delete(&transaction).Error
	})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
