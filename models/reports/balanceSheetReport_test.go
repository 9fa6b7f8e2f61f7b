package reports_test

import (
	"testing"

	"github.com/adidyhq/ledger_backend/models"
	"github.com/adidyhq/ledger_backend/models/reports"
	"github.com/shopspring/decimal"
)

func TestBuildBalanceSheet(t *testing.T) {
	lines := []*models.JournalEntryLine{
		// sale of 2000, expense of 800, loan of 500
		line(models.LineAccountTypeCash, "Cash", models.EntryTypeDebit, 2000),
		line(models.LineAccountTypeSales, "Sales Revenue", models.EntryTypeCredit, 2000),
		line(models.LineAccountTypePurchase, "General Expenses", models.EntryTypeDebit, 800),
		line(models.LineAccountTypeCash, "Cash", models.EntryTypeCredit, 800),
		line(models.LineAccountTypeCash, "Cash", models.EntryTypeDebit, 500),
		line(models.LineAccountTypeAccountsPayable, "Loans Payable", models.EntryTypeCredit, 500),
	}
	report := reports.BuildBalanceSheet(reports.BuildTrialBalance(lines))

	if !report.TotalAssets.Equal(decimal.NewFromInt(1700)) {
		t.Errorf("total assets = %s, want 1700", report.TotalAssets)
	}
	if !report.TotalLiabilities.Equal(decimal.NewFromInt(500)) {
		t.Errorf("total liabilities = %s, want 500", report.TotalLiabilities)
	}
	if !report.TotalEquity.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("total equity = %s, want 1200 (retained earnings)", report.TotalEquity)
	}

	var retained *reports.BalanceSheetLine
	for _, equityLine := range report.EquityLines {
		if equityLine.AccountName == "Net Income (Retained Earnings)" {
			retained = equityLine
		}
	}
	if retained == nil {
		t.Fatal("equity section must carry the net income line")
	}
	if !retained.Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("net income line = %s, want 1200", retained.Amount)
	}

	if !report.IdentityHolds {
		t.Error("assets = liabilities + equity must hold for balanced postings")
	}
}

func TestBuildBalanceSheetDetectsBrokenIdentity(t *testing.T) {
	// a one-sided posting that could only come from corrupted data
	lines := []*models.JournalEntryLine{
		line(models.LineAccountTypeCash, "Cash", models.EntryTypeDebit, 1000),
	}
	report := reports.BuildBalanceSheet(reports.BuildTrialBalance(lines))
	if report.IdentityHolds {
		t.Error("one-sided posting must break the accounting identity")
	}
}

func TestBuildBalanceSheetEmpty(t *testing.T) {
	report := reports.BuildBalanceSheet(reports.BuildTrialBalance(nil))
	if !report.TotalAssets.IsZero() || !report.TotalLiabilities.IsZero() || !report.TotalEquity.IsZero() {
		t.Error("empty dataset must yield zero totals")
	}
	if !report.IdentityHolds {
		t.Error("empty dataset trivially satisfies the identity")
	}
}
