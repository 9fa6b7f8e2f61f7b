package reports_test

import (
	"testing"

	"github.com/adidyhq/ledger_backend/models"
	"github.com/adidyhq/ledger_backend/models/reports"
	"github.com/shopspring/decimal"
)

func line(accountType models.LineAccountType, name string, entryType models.EntryType, amount int64) *models.JournalEntryLine {
	return &models.JournalEntryLine{
		AccountType: accountType,
		AccountName: name,
		EntryType:   entryType,
		Amount:      decimal.NewFromInt(amount),
	}
}

// a cash sale of 1000 and a cash purchase of 300
func sampleLines() []*models.JournalEntryLine {
	return []*models.JournalEntryLine{
		line(models.LineAccountTypeCash, "Cash", models.EntryTypeDebit, 1000),
		line(models.LineAccountTypeSales, "Sales Revenue", models.EntryTypeCredit, 1000),
		line(models.LineAccountTypePurchase, "Purchases", models.EntryTypeDebit, 300),
		line(models.LineAccountTypeCash, "Cash", models.EntryTypeCredit, 300),
	}
}

func TestBuildTrialBalance(t *testing.T) {
	report := reports.BuildTrialBalance(sampleLines())

	if len(report.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(report.Rows))
	}

	// sorted asset, income, expense
	cash := report.Rows[0]
	if cash.AccountName != "Cash" || !cash.Debit.Equal(decimal.NewFromInt(700)) || !cash.Credit.IsZero() {
		t.Errorf("cash row = %+v, want debit 700", cash)
	}
	sales := report.Rows[1]
	if sales.AccountName != "Sales Revenue" || !sales.Credit.Equal(decimal.NewFromInt(1000)) || !sales.Debit.IsZero() {
		t.Errorf("sales row = %+v, want credit 1000", sales)
	}
	if !sales.NetBalance.Equal(decimal.NewFromInt(-1000)) {
		t.Errorf("sales net balance = %s, want -1000", sales.NetBalance)
	}
	purchases := report.Rows[2]
	if purchases.AccountName != "Purchases" || !purchases.Debit.Equal(decimal.NewFromInt(300)) {
		t.Errorf("purchases row = %+v, want debit 300", purchases)
	}

	if !report.TotalDebit.Equal(report.TotalCredit) {
		t.Errorf("columns out of balance: debit %s, credit %s", report.TotalDebit, report.TotalCredit)
	}
	if !report.TotalDebit.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("total debit = %s, want 1000", report.TotalDebit)
	}
}

func TestBuildTrialBalanceEmpty(t *testing.T) {
	report := reports.BuildTrialBalance(nil)
	if len(report.Rows) != 0 {
		t.Errorf("got %d rows, want 0", len(report.Rows))
	}
	if !report.TotalDebit.IsZero() || !report.TotalCredit.IsZero() {
		t.Error("empty dataset must yield zero totals")
	}
}

func TestBuildTrialBalanceDeterministic(t *testing.T) {
	first := reports.BuildTrialBalance(sampleLines())
	second := reports.BuildTrialBalance(sampleLines())
	if len(first.Rows) != len(second.Rows) {
		t.Fatal("row counts differ between identical inputs")
	}
	for i := range first.Rows {
		a, b := first.Rows[i], second.Rows[i]
		if a.AccountName != b.AccountName || a.AccountType != b.AccountType ||
			!a.Debit.Equal(b.Debit) || !a.Credit.Equal(b.Credit) || !a.NetBalance.Equal(b.NetBalance) {
			t.Errorf("row %d differs between identical inputs", i)
		}
	}
}
