package reports

import (
	"context"
	"fmt"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/models"
	"github.com/adidyhq/ledger_backend/utils"
	"github.com/shopspring/decimal"
)

// identityEpsilon is the tolerance for assets = liabilities + equity.
var identityEpsilon = decimal.NewFromFloat(0.01)

type BalanceSheetLine struct {
	AccountName string          `json:"account_name"`
	Amount      decimal.Decimal `json:"amount"`
}

type BalanceSheetReport struct {
	AssetLines       []*BalanceSheetLine `json:"asset_lines"`
	LiabilityLines   []*BalanceSheetLine `json:"liability_lines"`
	EquityLines      []*BalanceSheetLine `json:"equity_lines"`
	TotalAssets      decimal.Decimal     `json:"total_assets"`
	TotalLiabilities decimal.Decimal     `json:"total_liabilities"`
	TotalEquity      decimal.Decimal     `json:"total_equity"`
	IdentityHolds    bool                `json:"identity_holds"`
}

// BuildBalanceSheet derives the balance sheet from trial balance rows.
// Assets report the net balance as-is; liabilities and equity carry credit
// balances, so their amounts are negated nets. Net income for the period is
// folded into equity as retained earnings, which keeps the sheet balanced
// whenever every underlying posting balanced. Pure.
func BuildBalanceSheet(trial *TrialBalanceReport) *BalanceSheetReport {
	report := &BalanceSheetReport{
		AssetLines:     make([]*BalanceSheetLine, 0),
		LiabilityLines: make([]*BalanceSheetLine, 0),
		EquityLines:    make([]*BalanceSheetLine, 0),
	}
	netIncome := decimal.Zero
	for _, row := range trial.Rows {
		if row.NetBalance.IsZero() {
			continue
		}
		switch row.MainType {
		case models.AccountMainTypeAsset:
			report.AssetLines = append(report.AssetLines, &BalanceSheetLine{
				AccountName: row.AccountName,
				Amount:      row.NetBalance,
			})
			report.TotalAssets = report.TotalAssets.Add(row.NetBalance)
		case models.AccountMainTypeLiability:
			amount := row.NetBalance.Neg()
			report.LiabilityLines = append(report.LiabilityLines, &BalanceSheetLine{
				AccountName: row.AccountName,
				Amount:      amount,
			})
			report.TotalLiabilities = report.TotalLiabilities.Add(amount)
		case models.AccountMainTypeEquity:
			amount := row.NetBalance.Neg()
			report.EquityLines = append(report.EquityLines, &BalanceSheetLine{
				AccountName: row.AccountName,
				Amount:      amount,
			})
			report.TotalEquity = report.TotalEquity.Add(amount)
		case models.AccountMainTypeIncome:
			netIncome = netIncome.Add(row.NetBalance.Neg())
		case models.AccountMainTypeExpense:
			netIncome = netIncome.Sub(row.NetBalance)
		}
	}

	if !netIncome.IsZero() {
		report.EquityLines = append(report.EquityLines, &BalanceSheetLine{
			AccountName: "Net Income (Retained Earnings)",
			Amount:      netIncome,
		})
		report.TotalEquity = report.TotalEquity.Add(netIncome)
	}

	gap := report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
	report.IdentityHolds = gap.Abs().LessThanOrEqual(identityEpsilon)
	return report
}

// GetBalanceSheetReport builds the sheet and records a data integrity finding
// when the accounting identity does not hold. The report is still returned so
// the broken numbers stay visible.
func GetBalanceSheetReport(ctx context.Context) (*BalanceSheetReport, error) {
	trial, err := GetTrialBalanceReport(ctx)
	if err != nil {
		return nil, err
	}
	report := BuildBalanceSheet(trial)

	if !report.IdentityHolds {
		gap := report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
		finding := &models.RiskFinding{
			FindingType:     "data_integrity",
			Severity:        models.RiskSeverityCritical,
			Title:           "Balance sheet out of balance",
			Description:     fmt.Sprintf("Assets differ from liabilities plus equity by %s.", gap.StringFixed(2)),
			Recommendations: "Review recent journal entries for one-sided or corrupted postings.",
		}
		if err := models.CreateRiskFindings(ctx, []*models.RiskFinding{finding}); err != nil {
			logger := config.GetLogger()
			userId, _ := utils.GetUserIdFromContext(ctx)
			config.LogError(logger, "reports", "GetBalanceSheetReport", "could not record integrity finding", userId, err)
		}
	}
	return report, nil
}
