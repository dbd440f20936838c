// Package migration moves the legacy financial tables (payments,
// expenses, salaries, donations) into the unified transactions table
// and reconciles the treasury balance.
//
// The whole run executes inside a single database transaction. A
// failing category is recorded in the result and does not stop the
// remaining categories; any error escaping the category steps rolls
// the entire run back.
package migration

import (
	"fmt"

	"github.com/quran-branch-manager/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Result reports what a migration run achieved per legacy category.
//
// Success stays true even when single categories failed: callers must
// inspect Errors to detect partially migrated categories.
type Result struct {
	Success       bool            `json:"success"`
	Payments      int             `json:"payments"`
	Expenses      int             `json:"expenses"`
	Salaries      int             `json:"salaries"`
	Donations     int             `json:"donations"`
	Errors        []string        `json:"errors"`
	TotalMigrated int             `json:"totalMigrated"`
	FinalBalance  decimal.Decimal `json:"finalBalance"`
}

// Run migrates all legacy rows into the unified transactions table and
// writes the reconciled balance to the designated cash account.
func Run(db *gorm.DB) (Result, error) {
	log.Info().Msg("starting migration to unified transactions")

	result := Result{Errors: []string{}}

	err := db.Transaction(func(tx *gorm.DB) error {
		account, err := models.DesignatedCashAccount(tx)
		if err != nil {
			return err
		}

		steps := []struct {
			name  string
			count *int
			run   func(*gorm.DB, models.Account) (int, error)
		}{
			{"payments", &result.Payments, migratePayments},
			{"expenses", &result.Expenses, migrateExpenses},
			{"salaries", &result.Salaries, migrateSalaries},
			{"donations", &result.Donations, migrateDonations},
		}

		for _, step := range steps {
			count, err := step.run(tx, account)
			*step.count = count
			if err != nil {
				log.Error().Err(err).Str("category", step.name).Msg("migration step failed")
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", step.name, err))
			}
		}

		result.FinalBalance, err = reconcile(tx, account)
		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("migration failed")
		return Result{}, err
	}

	result.Success = true
	result.TotalMigrated = result.Payments + result.Expenses + result.Salaries + result.Donations

	log.Info().
		Int("payments", result.Payments).
		Int("expenses", result.Expenses).
		Int("salaries", result.Salaries).
		Int("donations", result.Donations).
		Str("finalBalance", result.FinalBalance.String()).
		Msg("migration completed")

	return result, nil
}

// Reconcile recomputes the designated account balance as the income
// sum minus the expense sum over the entire unified table and writes
// it back. Running it twice without new transactions yields the same
// balance.
func Reconcile(db *gorm.DB) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := db.Transaction(func(tx *gorm.DB) error {
		account, err := models.DesignatedCashAccount(tx)
		if err != nil {
			return err
		}

		balance, err = reconcile(tx, account)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}

func reconcile(tx *gorm.DB, account models.Account) (decimal.Decimal, error) {
	income, err := models.TypeSum(tx, models.TransactionTypeIncome)
	if err != nil {
		return decimal.Zero, err
	}

	expense, err := models.TypeSum(tx, models.TransactionTypeExpense)
	if err != nil {
		return decimal.Zero, err
	}

	balance := income.Sub(expense)

	// Absolute write, not a delta. This covers all transactions, not
	// just freshly migrated ones, so the step can be re-run.
	err = tx.Model(&models.Account{}).
		Where("id = ?", account.ID).
		Update("current_balance", balance).
		Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("updating the account balance failed: %w", err)
	}

	return balance, nil
}

func migratePayments(tx *gorm.DB, account models.Account) (int, error) {
	var payments []models.LegacyPayment
	if err := tx.Find(&payments).Error; err != nil {
		return 0, err
	}

	log.Info().Int("count", len(payments)).Msg("migrating legacy payments")

	count := 0
	for _, p := range payments {
		studentID := p.StudentID
		transaction := models.Transaction{
			Type:              models.TransactionTypeIncome,
			Category:          models.CategoryStudentFees,
			Amount:            p.Amount,
			Date:              p.PaymentDate,
			Description:       orDefault(p.Notes, "رسوم الطالب"),
			PaymentMethod:     paymentMethod(p.PaymentMethod),
			VoucherNumber:     voucher(p.ReceiptNumber),
			AccountID:         account.ID,
			RelatedEntityType: "Student",
			RelatedEntityID:   &studentID,
		}
		transaction.CreatedAt = p.CreatedAt

		if err := tx.Create(&transaction).Error; err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func migrateExpenses(tx *gorm.DB, account models.Account) (int, error) {
	var expenses []models.LegacyExpense
	if err := tx.Find(&expenses).Error; err != nil {
		return 0, err
	}

	log.Info().Int("count", len(expenses)).Msg("migrating legacy expenses")

	count := 0
	for _, e := range expenses {
		transaction := models.Transaction{
			Type:              models.TransactionTypeExpense,
			Category:          orDefault(e.Category, models.CategoryOtherExpenses),
			Amount:            e.Amount,
			Date:              e.ExpenseDate,
			Description:       orDefault(e.Description, "مصروف"),
			PaymentMethod:     models.PaymentMethodCash,
			AccountID:         account.ID,
			RelatedPersonName: e.ResponsiblePerson,
		}
		transaction.CreatedAt = e.CreatedAt

		if err := tx.Create(&transaction).Error; err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func migrateSalaries(tx *gorm.DB, account models.Account) (int, error) {
	var salaries []models.LegacySalary
	if err := tx.Find(&salaries).Error; err != nil {
		return 0, err
	}

	log.Info().Int("count", len(salaries)).Msg("migrating legacy salaries")

	count := 0
	for _, s := range salaries {
		category := models.CategoryAdminSalaries
		entityType := "User"
		if s.UserType == "teacher" {
			category = models.CategoryTeacherSalaries
			entityType = "Teacher"
		}

		userID := s.UserID
		transaction := models.Transaction{
			Type:              models.TransactionTypeExpense,
			Category:          category,
			Amount:            s.Amount,
			Date:              s.PaymentDate,
			Description:       "راتب " + orDefault(s.EmployeeName, "موظف"),
			PaymentMethod:     models.PaymentMethodCash,
			AccountID:         account.ID,
			RelatedPersonName: s.EmployeeName,
			RelatedEntityType: entityType,
			RelatedEntityID:   &userID,
		}
		transaction.CreatedAt = s.CreatedAt

		if err := tx.Create(&transaction).Error; err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func migrateDonations(tx *gorm.DB, account models.Account) (int, error) {
	var donations []models.LegacyDonation
	err := tx.Where(&models.LegacyDonation{DonationType: models.DonationTypeCash}).Find(&donations).Error
	if err != nil {
		return 0, err
	}

	log.Info().Int("count", len(donations)).Msg("migrating legacy cash donations")

	count := 0
	for _, d := range donations {
		transaction := models.Transaction{
			Type:              models.TransactionTypeIncome,
			Category:          models.CategoryCashDonations,
			Amount:            d.Amount,
			Date:              d.DonationDate,
			Description:       orDefault(d.Notes, "تبرع نقدي"),
			PaymentMethod:     models.PaymentMethodCash,
			AccountID:         account.ID,
			RelatedPersonName: d.DonorName,
		}
		transaction.CreatedAt = d.CreatedAt

		if err := tx.Create(&transaction).Error; err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// orDefault returns s unless it is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}

// voucher turns a legacy receipt number into a nullable voucher number.
func voucher(receiptNumber string) *string {
	if receiptNumber == "" {
		return nil
	}

	return &receiptNumber
}

func paymentMethod(m string) models.PaymentMethod {
	if m == "" {
		return models.PaymentMethodCash
	}

	return models.PaymentMethod(m)
}
