package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDetectDuplicateEntries(t *testing.T) {
	date := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	entries := []*Entry{
		{ID: 1, EntryDate: date, Description: "fuel"},
		{ID: 2, EntryDate: date.Add(3 * time.Hour), Description: "fuel"},
		{ID: 3, EntryDate: date, Description: "stationery"},
		{ID: 4, EntryDate: date.AddDate(0, 0, 1), Description: "fuel"},
	}

	findings := DetectDuplicateEntries(entries)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	finding := findings[0]
	if finding.FindingType != "duplicate_entry" {
		t.Errorf("finding type = %s, want duplicate_entry", finding.FindingType)
	}
	if finding.Severity != RiskSeverityMedium {
		t.Errorf("severity = %s, want medium", finding.Severity)
	}
	if finding.RelatedEntryId == nil || *finding.RelatedEntryId != 1 {
		t.Errorf("related entry id = %v, want 1", finding.RelatedEntryId)
	}
}

func TestDetectDuplicateEntriesNone(t *testing.T) {
	date := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	entries := []*Entry{
		{ID: 1, EntryDate: date, Description: "fuel"},
		{ID: 2, EntryDate: date, Description: "stationery"},
	}
	if findings := DetectDuplicateEntries(entries); len(findings) != 0 {
		t.Errorf("got %d findings, want 0", len(findings))
	}
}

func TestDetectLargeTransactions(t *testing.T) {
	threshold := decimal.NewFromInt(10000)
	entries := []*Entry{
		{ID: 1, Description: "small sale", TotalAmount: decimal.NewFromInt(500)},
		{ID: 2, Description: "at threshold", TotalAmount: decimal.NewFromInt(10000)},
		{ID: 3, Description: "big purchase", TotalAmount: decimal.NewFromFloat(10000.01)},
	}

	findings := DetectLargeTransactions(entries, threshold)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	finding := findings[0]
	if finding.FindingType != "large_transaction" {
		t.Errorf("finding type = %s, want large_transaction", finding.FindingType)
	}
	if finding.Severity != RiskSeverityHigh {
		t.Errorf("severity = %s, want high", finding.Severity)
	}
	if finding.RelatedEntryId == nil || *finding.RelatedEntryId != 3 {
		t.Errorf("related entry id = %v, want 3", finding.RelatedEntryId)
	}
}

func TestDetectMissingReferences(t *testing.T) {
	entries := []*Entry{
		{ID: 1, ReferenceNumber: "INV-001"},
		{ID: 2},
		{ID: 3},
	}

	findings := DetectMissingReferences(entries)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Severity != RiskSeverityLow {
		t.Errorf("severity = %s, want low", findings[0].Severity)
	}

	all := []*Entry{{ID: 1, ReferenceNumber: "INV-001"}}
	if findings := DetectMissingReferences(all); len(findings) != 0 {
		t.Errorf("got %d findings, want 0 when every entry has a reference", len(findings))
	}
}

func TestBuildRiskMetrics(t *testing.T) {
	now := time.Now()
	entries := []*Entry{
		{TransactionType: TransactionTypeCashSale, TotalAmount: decimal.NewFromInt(2000), EntryDate: now},
		{TransactionType: TransactionTypeExpense, TotalAmount: decimal.NewFromInt(800), EntryDate: now},
		{TransactionType: TransactionTypeOpeningBalance, TotalAmount: decimal.NewFromInt(5000), EntryDate: now},
	}
	lines := []*JournalEntryLine{
		{AccountType: LineAccountTypeCash, EntryType: EntryTypeDebit, Amount: decimal.NewFromInt(1200)},
		{AccountType: LineAccountTypeAccountsPayable, EntryType: EntryTypeCredit, Amount: decimal.NewFromInt(400)},
	}

	metrics := BuildRiskMetrics(entries, lines)
	if !metrics.TotalRevenue.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("total revenue = %s, want 2000", metrics.TotalRevenue)
	}
	if !metrics.TotalExpenses.Equal(decimal.NewFromInt(800)) {
		t.Errorf("total expenses = %s, want 800", metrics.TotalExpenses)
	}
	if !metrics.NetProfit.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("net profit = %s, want 1200", metrics.NetProfit)
	}
	if !metrics.ProfitMargin.Equal(decimal.NewFromFloat(0.6)) {
		t.Errorf("profit margin = %s, want 0.6", metrics.ProfitMargin)
	}
	if !metrics.TotalAssets.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("total assets = %s, want 1200", metrics.TotalAssets)
	}
	if !metrics.TotalLiabilities.Equal(decimal.NewFromInt(400)) {
		t.Errorf("total liabilities = %s, want 400", metrics.TotalLiabilities)
	}
	if metrics.EntryCount != 3 {
		t.Errorf("entry count = %d, want 3", metrics.EntryCount)
	}
}

func TestBuildRiskMetricsEmpty(t *testing.T) {
	metrics := BuildRiskMetrics(nil, nil)
	if !metrics.TotalRevenue.IsZero() || !metrics.TotalExpenses.IsZero() || !metrics.NetProfit.IsZero() {
		t.Error("empty dataset must yield zero totals")
	}
	if !metrics.ProfitMargin.IsZero() || !metrics.CurrentRatio.IsZero() || !metrics.DebtToEquity.IsZero() {
		t.Error("ratios over empty dataset must be zero, not NaN")
	}
}
