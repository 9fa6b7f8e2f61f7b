package reports

import (
	"context"
	"time"

	"github.com/adidyhq/ledger_backend/models"
	"github.com/shopspring/decimal"
)

type MonthlySummary struct {
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	NetProfit decimal.Decimal `json:"net_profit"`
}

type DashboardReport struct {
	TotalRevenue      decimal.Decimal   `json:"total_revenue"`
	TotalCost         decimal.Decimal   `json:"total_cost"`
	NetProfit         decimal.Decimal   `json:"net_profit"`
	EntryCount        int               `json:"entry_count"`
	MonthlySummaries  []*MonthlySummary `json:"monthly_summaries"`
	MonthlyTarget     *decimal.Decimal  `json:"monthly_target"`
	TargetAchievement *decimal.Decimal  `json:"target_achievement"`
}

// dashboardMonths is how far back the monthly series goes.
const dashboardMonths = 6

// BuildDashboardMetrics computes the dashboard totals and the monthly series
// ending at the given reference time. Revenue counts sale entries, cost counts
// purchase, expense and payroll entries; everything else is neutral. An empty
// entry set yields all zeros. Pure.
func BuildDashboardMetrics(entries []*models.Entry, now time.Time) *DashboardReport {
	report := &DashboardReport{
		EntryCount:       len(entries),
		MonthlySummaries: make([]*MonthlySummary, 0, dashboardMonths),
	}

	monthIndex := make(map[string]*MonthlySummary)
	for i := dashboardMonths - 1; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		summary := &MonthlySummary{Month: int(month.Month()), Year: month.Year()}
		monthIndex[month.Format("2006-01")] = summary
		report.MonthlySummaries = append(report.MonthlySummaries, summary)
	}

	for _, entry := range entries {
		isRevenue := entry.IsRevenue()
		isCost := entry.IsCost()
		if !isRevenue && !isCost {
			continue
		}
		if isRevenue {
			report.TotalRevenue = report.TotalRevenue.Add(entry.TotalAmount)
		} else {
			report.TotalCost = report.TotalCost.Add(entry.TotalAmount)
		}
		if summary, ok := monthIndex[entry.EntryDate.Format("2006-01")]; ok {
			if isRevenue {
				summary.Revenue = summary.Revenue.Add(entry.TotalAmount)
			} else {
				summary.Cost = summary.Cost.Add(entry.TotalAmount)
			}
		}
	}
	for _, summary := range report.MonthlySummaries {
		summary.NetProfit = summary.Revenue.Sub(summary.Cost)
	}
	report.NetProfit = report.TotalRevenue.Sub(report.TotalCost)
	return report
}

// GetDashboardReport builds the dashboard for the current month and compares
// the month's profit against the stored target when one exists.
func GetDashboardReport(ctx context.Context) (*DashboardReport, error) {
	entries, err := models.FetchEntries(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := BuildDashboardMetrics(entries, now)

	target, err := models.GetProfitTarget(ctx, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}
	if target != nil {
		report.MonthlyTarget = &target.MonthlyTarget
		current := report.MonthlySummaries[len(report.MonthlySummaries)-1]
		if !target.MonthlyTarget.IsZero() {
			achievement := current.NetProfit.Div(target.MonthlyTarget)
			report.TargetAchievement = &achievement
		}
	}
	return report, nil
}
