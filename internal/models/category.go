package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category is a bookkeeping category for unified transactions.
// Transactions store the category label, not the ID, so renaming a
// category does not rewrite the journal.
type Category struct {
	Model
	Name        string          `json:"name" gorm:"uniqueIndex"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"active" gorm:"default:true"`
}

// BeforeSave trims whitespace from the name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// defaultCategories is the category list the branch starts out with.
var defaultCategories = []Category{
	{Name: CategoryStudentFees, Type: TransactionTypeIncome, Description: "Student registration and monthly fees"},
	{Name: CategoryCashDonations, Type: TransactionTypeIncome, Description: "Cash donations"},
	{Name: "التبرعات العينية", Type: TransactionTypeIncome, Description: "In-kind donations"},
	{Name: "دعم حكومي", Type: TransactionTypeIncome, Description: "Government support"},
	{Name: "مداخيل أخرى", Type: TransactionTypeIncome, Description: "Other income"},
	{Name: CategoryTeacherSalaries, Type: TransactionTypeExpense, Description: "Teacher salaries"},
	{Name: CategoryAdminSalaries, Type: TransactionTypeExpense, Description: "Administrative salaries"},
	{Name: "الإيجار", Type: TransactionTypeExpense, Description: "Rent"},
	{Name: "الكهرباء والماء", Type: TransactionTypeExpense, Description: "Utilities"},
	{Name: "القرطاسية", Type: TransactionTypeExpense, Description: "Stationery"},
	{Name: "الصيانة", Type: TransactionTypeExpense, Description: "Maintenance"},
	{Name: CategoryOtherExpenses, Type: TransactionTypeExpense, Description: "Other expenses"},
}
