package reports_test

import (
	"testing"

	"github.com/adidyhq/ledger_backend/models"
	"github.com/adidyhq/ledger_backend/models/reports"
)

func TestFilterEntriesByBook(t *testing.T) {
	entries := []*models.Entry{
		{ID: 3, BookCategory: models.BookCategorySalesBook},
		{ID: 2, BookCategory: models.BookCategoryCashBook},
		{ID: 1, BookCategory: models.BookCategorySalesBook},
	}

	sales := reports.FilterEntriesByBook(entries, models.BookCategorySalesBook)
	if len(sales) != 2 {
		t.Fatalf("got %d entries, want 2", len(sales))
	}
	if sales[0].ID != 3 || sales[1].ID != 1 {
		t.Error("filter must preserve input order")
	}

	if payroll := reports.FilterEntriesByBook(entries, models.BookCategoryPayrollBook); len(payroll) != 0 {
		t.Errorf("got %d payroll entries, want 0", len(payroll))
	}
}

func TestFilterJournalsByAccountType(t *testing.T) {
	journals := []*models.JournalEntry{
		{
			ID: 1,
			Lines: []models.JournalEntryLine{
				{AccountType: models.LineAccountTypeCash, EntryType: models.EntryTypeDebit},
				{AccountType: models.LineAccountTypeSales, EntryType: models.EntryTypeCredit},
			},
		},
		{
			ID: 2,
			Lines: []models.JournalEntryLine{
				{AccountType: models.LineAccountTypeBank, EntryType: models.EntryTypeDebit},
				{AccountType: models.LineAccountTypeSales, EntryType: models.EntryTypeCredit},
			},
		},
	}

	cash := reports.FilterJournalsByAccountType(journals, models.LineAccountTypeCash)
	if len(cash) != 1 || cash[0].ID != 1 {
		t.Errorf("cash book = %d journals, want journal 1 only", len(cash))
	}

	sales := reports.FilterJournalsByAccountType(journals, models.LineAccountTypeSales)
	if len(sales) != 2 {
		t.Errorf("sales book = %d journals, want 2", len(sales))
	}

	payroll := reports.FilterJournalsByAccountType(journals, models.LineAccountTypePayroll)
	if len(payroll) != 0 {
		t.Errorf("payroll book = %d journals, want 0", len(payroll))
	}
}

func TestLedgerBookFiltersOtherBucket(t *testing.T) {
	journals := []*models.JournalEntry{
		{
			ID: 1,
			Lines: []models.JournalEntryLine{
				{AccountType: models.LineAccountTypeCash, EntryType: models.EntryTypeDebit},
				{AccountType: models.LineAccountTypeSales, EntryType: models.EntryTypeCredit},
			},
		},
		{
			ID: 2,
			Lines: []models.JournalEntryLine{
				{AccountType: models.LineAccountTypeCash, EntryType: models.EntryTypeDebit},
				{AccountType: models.LineAccountTypeOther, EntryType: models.EntryTypeCredit},
			},
		},
	}

	accountType, err := models.BookTypeLedger.AccountType()
	if err != nil {
		t.Fatalf("AccountType() error: %v", err)
	}

	ledger := reports.FilterJournalsByAccountType(journals, accountType)
	if len(ledger) != 1 || ledger[0].ID != 2 {
		t.Errorf("ledger book = %d journals, want journal 2 only", len(ledger))
	}
}
