package reports

import (
	"context"
	"sort"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/models"
	"github.com/shopspring/decimal"
)

type TrialBalanceRow struct {
	AccountName string                 `json:"account_name"`
	AccountType models.LineAccountType `json:"account_type"`
	MainType    models.AccountMainType `json:"main_type"`
	Debit       decimal.Decimal        `json:"debit"`
	Credit      decimal.Decimal        `json:"credit"`
	NetBalance  decimal.Decimal        `json:"net_balance"`
}

type TrialBalanceReport struct {
	Rows        []*TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal    `json:"total_debit"`
	TotalCredit decimal.Decimal    `json:"total_credit"`
}

var mainTypeOrder = map[models.AccountMainType]int{
	models.AccountMainTypeAsset:     1,
	models.AccountMainTypeLiability: 2,
	models.AccountMainTypeEquity:    3,
	models.AccountMainTypeIncome:    4,
	models.AccountMainTypeExpense:   5,
}

// BuildTrialBalance folds posting lines into one row per account. Net balance
// is debits minus credits; a positive net lands in the debit column, a
// negative net lands in the credit column as an absolute value. Pure.
func BuildTrialBalance(lines []*models.JournalEntryLine) *TrialBalanceReport {
	type accountKey struct {
		accountType models.LineAccountType
		accountName string
	}
	nets := make(map[accountKey]decimal.Decimal)
	for _, line := range lines {
		key := accountKey{accountType: line.AccountType, accountName: line.AccountName}
		net := nets[key]
		if line.EntryType == models.EntryTypeDebit {
			net = net.Add(line.Amount)
		} else {
			net = net.Sub(line.Amount)
		}
		nets[key] = net
	}

	report := &TrialBalanceReport{Rows: make([]*TrialBalanceRow, 0, len(nets))}
	for key, net := range nets {
		row := &TrialBalanceRow{
			AccountName: key.accountName,
			AccountType: key.accountType,
			MainType:    key.accountType.MainType(),
			NetBalance:  net,
		}
		if net.Sign() >= 0 {
			row.Debit = net
		} else {
			row.Credit = net.Abs()
		}
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
		report.Rows = append(report.Rows, row)
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i], report.Rows[j]
		if mainTypeOrder[a.MainType] != mainTypeOrder[b.MainType] {
			return mainTypeOrder[a.MainType] < mainTypeOrder[b.MainType]
		}
		return a.AccountName < b.AccountName
	})
	return report
}

func GetTrialBalanceReport(ctx context.Context) (*TrialBalanceReport, error) {
	ctx, span := config.StartSpan(ctx, "GetTrialBalanceReport")
	defer span.End()

	lines, err := models.FetchJournalLines(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTrialBalance(lines), nil
}
