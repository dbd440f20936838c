package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNameNotUnique  = errors.New("the account name must be unique")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrVoucherNotUnique      = errors.New("the voucher number is already in use")
	ErrNoAccounts            = errors.New("no account is configured")

	// ErrCashLimitExceeded enforces the branch cash handling rule:
	// amounts above 500 TND must go through a check or a bank transfer.
	ErrCashLimitExceeded = errors.New("amounts above 500 TND must be paid by check or bank transfer")
)
