package reports_test

import (
	"testing"

	"github.com/adidyhq/ledger_backend/models"
	"github.com/adidyhq/ledger_backend/models/reports"
	"github.com/shopspring/decimal"
)

func TestBuildProfitAndLoss(t *testing.T) {
	lines := []*models.JournalEntryLine{
		line(models.LineAccountTypeCash, "Cash", models.EntryTypeDebit, 2000),
		line(models.LineAccountTypeSales, "Sales Revenue", models.EntryTypeCredit, 2000),
		line(models.LineAccountTypePurchase, "General Expenses", models.EntryTypeDebit, 800),
		line(models.LineAccountTypeCash, "Cash", models.EntryTypeCredit, 800),
	}
	report := reports.BuildProfitAndLoss(reports.BuildTrialBalance(lines))

	if len(report.IncomeLines) != 1 {
		t.Fatalf("got %d income lines, want 1", len(report.IncomeLines))
	}
	if !report.IncomeLines[0].Amount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("income amount = %s, want 2000 (credit balance reported positive)", report.IncomeLines[0].Amount)
	}
	if len(report.ExpenseLines) != 1 {
		t.Fatalf("got %d expense lines, want 1", len(report.ExpenseLines))
	}
	if !report.ExpenseLines[0].Amount.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expense amount = %s, want 800", report.ExpenseLines[0].Amount)
	}
	if !report.TotalIncome.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("total income = %s, want 2000", report.TotalIncome)
	}
	if !report.TotalExpenses.Equal(decimal.NewFromInt(800)) {
		t.Errorf("total expenses = %s, want 800", report.TotalExpenses)
	}
	if !report.NetProfit.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("net profit = %s, want 1200", report.NetProfit)
	}
}

func TestBuildProfitAndLossSkipsZeroBalances(t *testing.T) {
	lines := []*models.JournalEntryLine{
		// sales account nets to zero
		line(models.LineAccountTypeSales, "Sales Revenue", models.EntryTypeCredit, 500),
		line(models.LineAccountTypeSales, "Sales Revenue", models.EntryTypeDebit, 500),
	}
	report := reports.BuildProfitAndLoss(reports.BuildTrialBalance(lines))
	if len(report.IncomeLines) != 0 || len(report.ExpenseLines) != 0 {
		t.Error("zero-balance accounts must be omitted")
	}
	if !report.NetProfit.IsZero() {
		t.Errorf("net profit = %s, want 0", report.NetProfit)
	}
}
