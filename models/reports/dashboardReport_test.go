package reports_test

import (
	"testing"
	"time"

	"github.com/adidyhq/ledger_backend/models"
	"github.com/adidyhq/ledger_backend/models/reports"
	"github.com/shopspring/decimal"
)

func entry(transactionType models.TransactionType, total int64, date time.Time) *models.Entry {
	return &models.Entry{
		TransactionType: transactionType,
		TotalAmount:     decimal.NewFromInt(total),
		EntryDate:       date,
	}
}

func TestBuildDashboardMetrics(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	entries := []*models.Entry{
		entry(models.TransactionTypeCashSale, 2000, now),
		entry(models.TransactionTypeCreditSale, 1000, now.AddDate(0, -1, 0)),
		entry(models.TransactionTypeExpense, 800, now),
		entry(models.TransactionTypePayroll, 300, now.AddDate(0, -1, 0)),
		// neutral for revenue/cost purposes
		entry(models.TransactionTypeOpeningBalance, 5000, now),
	}

	report := reports.BuildDashboardMetrics(entries, now)

	if !report.TotalRevenue.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("total revenue = %s, want 3000", report.TotalRevenue)
	}
	if !report.TotalCost.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("total cost = %s, want 1100", report.TotalCost)
	}
	if !report.NetProfit.Equal(decimal.NewFromInt(1900)) {
		t.Errorf("net profit = %s, want 1900", report.NetProfit)
	}
	if report.EntryCount != 5 {
		t.Errorf("entry count = %d, want 5", report.EntryCount)
	}

	if len(report.MonthlySummaries) != 6 {
		t.Fatalf("got %d monthly summaries, want 6", len(report.MonthlySummaries))
	}
	current := report.MonthlySummaries[5]
	if current.Month != 8 || current.Year != 2026 {
		t.Errorf("last summary is %d/%d, want 8/2026", current.Month, current.Year)
	}
	if !current.Revenue.Equal(decimal.NewFromInt(2000)) || !current.Cost.Equal(decimal.NewFromInt(800)) {
		t.Errorf("current month = revenue %s cost %s, want 2000/800", current.Revenue, current.Cost)
	}
	previous := report.MonthlySummaries[4]
	if !previous.Revenue.Equal(decimal.NewFromInt(1000)) || !previous.Cost.Equal(decimal.NewFromInt(300)) {
		t.Errorf("previous month = revenue %s cost %s, want 1000/300", previous.Revenue, previous.Cost)
	}
	if !previous.NetProfit.Equal(decimal.NewFromInt(700)) {
		t.Errorf("previous month profit = %s, want 700", previous.NetProfit)
	}
}

func TestBuildDashboardMetricsEmpty(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	report := reports.BuildDashboardMetrics(nil, now)

	if !report.TotalRevenue.IsZero() || !report.TotalCost.IsZero() || !report.NetProfit.IsZero() {
		t.Error("empty dataset must yield zero totals")
	}
	if report.EntryCount != 0 {
		t.Errorf("entry count = %d, want 0", report.EntryCount)
	}
	for i, summary := range report.MonthlySummaries {
		if !summary.Revenue.IsZero() || !summary.Cost.IsZero() || !summary.NetProfit.IsZero() {
			t.Errorf("summary %d must be zero for an empty dataset", i)
		}
	}
}

func TestBuildDashboardMetricsIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	entries := []*models.Entry{
		entry(models.TransactionTypeCashSale, 2000, now),
		entry(models.TransactionTypeExpense, 800, now),
	}
	first := reports.BuildDashboardMetrics(entries, now)
	second := reports.BuildDashboardMetrics(entries, now)

	if !first.TotalRevenue.Equal(second.TotalRevenue) ||
		!first.TotalCost.Equal(second.TotalCost) ||
		!first.NetProfit.Equal(second.NetProfit) {
		t.Error("recomputing over the same rows must not change totals")
	}
}
