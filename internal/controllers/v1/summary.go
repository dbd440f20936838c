package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quran-branch-manager/backend/internal/httputil"
	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryBreakdown is the total booked in one category.
type CategoryBreakdown struct {
	Category string          `json:"category" example:"رسوم الطلاب"`
	Total    decimal.Decimal `json:"total" example:"1250"`
	Count    int             `json:"count" example:"17"`
}

// Summary is an overview of the financial state of the branch.
type Summary struct {
	TotalIncome        decimal.Decimal     `json:"totalIncome" example:"5000"`
	TotalExpenses      decimal.Decimal     `json:"totalExpenses" example:"4250"`
	Balance            decimal.Decimal     `json:"balance" example:"750"`
	Income             []CategoryBreakdown `json:"income"`             // Income per category
	Expenses           []CategoryBreakdown `json:"expenses"`           // Expenses per category
	RecentTransactions []Transaction       `json:"recentTransactions"` // The five most recent transactions
}

type SummaryResponse struct {
	Error *string  `json:"error"` // The error, if one occurred
	Data  *Summary `json:"data"`  // The summary
}

type SummaryQueryFilter struct {
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02"`  // Transactions on or after this date
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02"` // Transactions on or before this date
}

// RegisterSummaryRoutes registers the routes for the financial summary
// with the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

func categoryBreakdown(db *gorm.DB, transactionType models.TransactionType) ([]CategoryBreakdown, error) {
	breakdown := []CategoryBreakdown{}

	err := db.Model(&models.Transaction{}).
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Where("type = ?", transactionType).
		Group("category").
		Order("total DESC").
		Scan(&breakdown).Error

	return breakdown, err
}

// @Summary		Financial summary
// @Description	Returns income and expense totals, per-category breakdowns, the treasury balance and the most recent transactions, optionally limited to a date range
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			fromDate	query	string	false	"Transactions on or after this date (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Transactions on or before this date (YYYY-MM-DD)"
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	var filter SummaryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	// All sums, breakdowns and the recent transactions honor the
	// requested period. The treasury balance does not, it is the state
	// of the account.
	period := models.DB
	if !filter.FromDate.IsZero() {
		period = period.Where("date(date) >= date(?)", filter.FromDate)
	}
	if !filter.UntilDate.IsZero() {
		period = period.Where("date(date) <= date(?)", filter.UntilDate)
	}

	// The period conditions are shared between several queries
	period = period.Session(&gorm.Session{})

	var summary Summary
	var err error

	summary.TotalIncome, err = models.TypeSum(period, models.TransactionTypeIncome)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	summary.TotalExpenses, err = models.TypeSum(period, models.TransactionTypeExpense)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	// The balance reported is the one of the designated cash account,
	// which also carries the migrated legacy history
	account, err := models.DesignatedCashAccount(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}
	summary.Balance = account.CurrentBalance

	summary.Income, err = categoryBreakdown(period, models.TransactionTypeIncome)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	summary.Expenses, err = categoryBreakdown(period, models.TransactionTypeExpense)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	var recent []models.Transaction
	err = period.Order("date(date) DESC, id DESC").Limit(5).Find(&recent).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	summary.RecentTransactions = make([]Transaction, 0, len(recent))
	for _, transaction := range recent {
		summary.RecentTransactions = append(summary.RecentTransactions, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
