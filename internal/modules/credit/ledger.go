package credit

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"joyit/internal/domain"
)

// Apply posts one signed ledger entry for the company inside the caller's
// transaction. It locks the company row, refuses any debit that would take
// the balance below zero, updates the cached balance and appends the entry
// carrying the resulting balance. Returns the new balance.
//
// All credit mutations in the system go through here; nothing else writes
// companies.credit_balance or credit_entries.
func Apply(tx *gorm.DB, companyID int64, delta int64, entryType domain.CreditEntryType, scheduleID *int64, note string) (int64, error) {
	var company domain.Company
	if err := forUpdate(tx).First(&company, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCompanyNotFound
		}
		return 0, err
	}

	newBalance := company.CreditBalance + delta
	if newBalance < 0 {
		return 0, ErrInsufficientCredit
	}

	if err := tx.Model(&domain.Company{}).
		Where("id = ?", companyID).
		UpdateColumn("credit_balance", newBalance).Error; err != nil {
		return 0, err
	}

	entry := domain.CreditEntry{
		CompanyID:  companyID,
		Amount:     delta,
		Type:       entryType,
		ScheduleID: scheduleID,
		Note:       note,
		Balance:    newBalance,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return 0, err
	}

	return newBalance, nil
}

// forUpdate takes a row lock on postgres. SQLite has no row locks; its
// single-writer model covers the dev and test path.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
