package reports

import (
	"context"

	"github.com/adidyhq/ledger_backend/models"
	"github.com/shopspring/decimal"
)

type ProfitAndLossLine struct {
	AccountName string          `json:"account_name"`
	Amount      decimal.Decimal `json:"amount"`
}

type ProfitAndLossReport struct {
	IncomeLines   []*ProfitAndLossLine `json:"income_lines"`
	ExpenseLines  []*ProfitAndLossLine `json:"expense_lines"`
	TotalIncome   decimal.Decimal      `json:"total_income"`
	TotalExpenses decimal.Decimal      `json:"total_expenses"`
	NetProfit     decimal.Decimal      `json:"net_profit"`
}

// BuildProfitAndLoss derives the income statement from trial balance rows.
// Income accounts carry credit balances, so their reported amount is the
// negated net; expense accounts report the net as-is. Zero-balance accounts
// are omitted. Pure.
func BuildProfitAndLoss(trial *TrialBalanceReport) *ProfitAndLossReport {
	report := &ProfitAndLossReport{
		IncomeLines:  make([]*ProfitAndLossLine, 0),
		ExpenseLines: make([]*ProfitAndLossLine, 0),
	}
	for _, row := range trial.Rows {
		if row.NetBalance.IsZero() {
			continue
		}
		switch row.MainType {
		case models.AccountMainTypeIncome:
			amount := row.NetBalance.Neg()
			report.IncomeLines = append(report.IncomeLines, &ProfitAndLossLine{
				AccountName: row.AccountName,
				Amount:      amount,
			})
			report.TotalIncome = report.TotalIncome.Add(amount)
		case models.AccountMainTypeExpense:
			report.ExpenseLines = append(report.ExpenseLines, &ProfitAndLossLine{
				AccountName: row.AccountName,
				Amount:      row.NetBalance,
			})
			report.TotalExpenses = report.TotalExpenses.Add(row.NetBalance)
		}
	}
	report.NetProfit = report.TotalIncome.Sub(report.TotalExpenses)
	return report
}

func GetProfitAndLossReport(ctx context.Context) (*ProfitAndLossReport, error) {
	trial, err := GetTrialBalanceReport(ctx)
	if err != nil {
		return nil, err
	}
	return BuildProfitAndLoss(trial), nil
}
