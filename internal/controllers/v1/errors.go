package v1

import (
	"errors"
	"net/http"

	"github.com/quran-branch-manager/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no account matching your query"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errAccountTypeInvalid     = errors.New("the account type must be CASH or BANK")
	errTransactionTypeInvalid = errors.New("the transaction type must be INCOME or EXPENSE")
	errPaymentMethodInvalid   = errors.New("the payment method must be CASH, CHECK or TRANSFER")
	errSettingValueMissing    = errors.New("the setting value must be set")
)
