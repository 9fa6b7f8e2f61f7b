package models

import (
	"context"
	"log"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/utils"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Account{},
		&TransactionMapping{},
		&Entry{},
		&JournalEntry{}, &JournalEntryLine{},
		&Product{},
		&ProfitTarget{},
		&RiskFinding{},
	)
	if err != nil {
		log.Fatal(err)
	}
}

// seed rows for the shared chart of accounts. Codes are stable; names match
// the default transaction mappings.
var systemDefaultAccounts = []Account{
	{Code: "1000", Name: "Cash", MainType: AccountMainTypeAsset, SubType: "cash"},
	{Code: "1100", Name: "Bank", MainType: AccountMainTypeAsset, SubType: "bank"},
	{Code: "1200", Name: "Accounts Receivable", MainType: AccountMainTypeAsset, SubType: "accounts_receivable"},
	{Code: "1300", Name: "Inventory", MainType: AccountMainTypeAsset, SubType: "inventory"},
	{Code: "1500", Name: "Fixed Assets", MainType: AccountMainTypeAsset, SubType: "other"},
	{Code: "2000", Name: "Accounts Payable", MainType: AccountMainTypeLiability, SubType: "accounts_payable"},
	{Code: "2100", Name: "Loans Payable", MainType: AccountMainTypeLiability, SubType: "accounts_payable"},
	{Code: "3000", Name: "Owner Equity", MainType: AccountMainTypeEquity, SubType: "other"},
	{Code: "3100", Name: "Opening Balance Equity", MainType: AccountMainTypeEquity, SubType: "other"},
	{Code: "4000", Name: "Sales Revenue", MainType: AccountMainTypeIncome, SubType: "sales"},
	{Code: "4100", Name: "Sales Returns", MainType: AccountMainTypeIncome, SubType: "sales"},
	{Code: "5000", Name: "Purchases", MainType: AccountMainTypeExpense, SubType: "purchase"},
	{Code: "5100", Name: "General Expenses", MainType: AccountMainTypeExpense, SubType: "purchase"},
	{Code: "5200", Name: "Salaries and Wages", MainType: AccountMainTypeExpense, SubType: "payroll"},
}

// SeedDefaults inserts the shared system accounts. Idempotent; existing codes
// are left untouched.
func SeedDefaults(ctx context.Context) error {
	db := config.GetDB()

	for _, seed := range systemDefaultAccounts {
		var count int64
		err := db.WithContext(ctx).Model(&Account{}).
			Where("code = ? AND is_system_default = true", seed.Code).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		account := seed
		account.IsSystemDefault = utils.NewTrue()
		if err := db.WithContext(ctx).Create(&account).Error; err != nil {
			return err
		}
	}
	return config.RemoveRedisKey("SystemAccounts")
}
