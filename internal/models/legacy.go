package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// The legacy financial tables predate the unified transactions table.
// They are read-only sources for the migration in internal/migration
// and are never written by this backend.

// LegacyPayment is a student fee payment in the legacy payments table.
type LegacyPayment struct {
	ID            uint            `json:"id"`
	StudentID     uint            `json:"studentId"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	ReceiptNumber string          `json:"receiptNumber,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (LegacyPayment) TableName() string { return "payments" }

// LegacyExpense is a row of the legacy expenses table.
type LegacyExpense struct {
	ID                uint            `json:"id"`
	Category          string          `json:"category,omitempty"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	ExpenseDate       time.Time       `json:"expenseDate"`
	Description       string          `json:"description,omitempty"`
	ResponsiblePerson string          `json:"responsiblePerson,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func (LegacyExpense) TableName() string { return "expenses" }

// LegacySalary is a row of the legacy salaries table. UserType is
// "teacher" for teaching staff, anything else counts as administration.
type LegacySalary struct {
	ID           uint            `json:"id"`
	UserID       uint            `json:"userId"`
	UserType     string          `json:"userType"`
	EmployeeName string          `json:"employeeName,omitempty"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	PaymentDate  time.Time       `json:"paymentDate"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (LegacySalary) TableName() string { return "salaries" }

// LegacyDonation is a row of the legacy donations table. Only rows with
// DonationType "Cash" take part in the migration.
type LegacyDonation struct {
	ID           uint            `json:"id"`
	DonorName    string          `json:"donorName"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	DonationDate time.Time       `json:"donationDate"`
	DonationType string          `json:"donationType"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (LegacyDonation) TableName() string { return "donations" }

// DonationTypeCash marks donations given as money rather than in kind.
const DonationTypeCash = "Cash"
