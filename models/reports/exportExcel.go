package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

func newExportFile() (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(exportSheet); err != nil {
		return nil, err
	}
	return f, nil
}

// ExportTrialBalanceExcel writes the trial balance as an xlsx workbook.
func ExportTrialBalanceExcel(report *TrialBalanceReport, w io.Writer) error {
	f, err := newExportFile()
	if err != nil {
		return err
	}

	// Add headers
	f.SetCellValue(exportSheet, "A1", "Account")
	f.SetCellValue(exportSheet, "B1", "Type")
	f.SetCellValue(exportSheet, "C1", "Debit")
	f.SetCellValue(exportSheet, "D1", "Credit")

	// Add data
	rowNo := 2
	for _, row := range report.Rows {
		f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), row.AccountName)
		f.SetCellValue(exportSheet, "B"+fmt.Sprint(rowNo), string(row.MainType))
		f.SetCellValue(exportSheet, "C"+fmt.Sprint(rowNo), row.Debit.InexactFloat64())
		f.SetCellValue(exportSheet, "D"+fmt.Sprint(rowNo), row.Credit.InexactFloat64())
		rowNo++
	}
	f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), "Total")
	f.SetCellValue(exportSheet, "C"+fmt.Sprint(rowNo), report.TotalDebit.InexactFloat64())
	f.SetCellValue(exportSheet, "D"+fmt.Sprint(rowNo), report.TotalCredit.InexactFloat64())

	return f.Write(w)
}

// ExportProfitAndLossExcel writes the income statement as an xlsx workbook.
func ExportProfitAndLossExcel(report *ProfitAndLossReport, w io.Writer) error {
	f, err := newExportFile()
	if err != nil {
		return err
	}

	f.SetCellValue(exportSheet, "A1", "Account")
	f.SetCellValue(exportSheet, "B1", "Amount")

	rowNo := 2
	f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), "Income")
	rowNo++
	for _, line := range report.IncomeLines {
		f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), line.AccountName)
		f.SetCellValue(exportSheet, "B"+fmt.Sprint(rowNo), line.Amount.InexactFloat64())
		rowNo++
	}
	f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), "Total Income")
	f.SetCellValue(exportSheet, "B"+fmt.Sprint(rowNo), report.TotalIncome.InexactFloat64())
	rowNo++

	f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), "Expenses")
	rowNo++
	for _, line := range report.ExpenseLines {
		f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), line.AccountName)
		f.SetCellValue(exportSheet, "B"+fmt.Sprint(rowNo), line.Amount.InexactFloat64())
		rowNo++
	}
	f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), "Total Expenses")
	f.SetCellValue(exportSheet, "B"+fmt.Sprint(rowNo), report.TotalExpenses.InexactFloat64())
	rowNo++

	f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), "Net Profit")
	f.SetCellValue(exportSheet, "B"+fmt.Sprint(rowNo), report.NetProfit.InexactFloat64())

	return f.Write(w)
}

// ExportBalanceSheetExcel writes the balance sheet as an xlsx workbook.
func ExportBalanceSheetExcel(report *BalanceSheetReport, w io.Writer) error {
	f, err := newExportFile()
	if err != nil {
		return err
	}

	f.SetCellValue(exportSheet, "A1", "Account")
	f.SetCellValue(exportSheet, "B1", "Amount")

	rowNo := 2
	sections := []struct {
		title string
		lines []*BalanceSheetLine
		total float64
	}{
		{"Assets", report.AssetLines, report.TotalAssets.InexactFloat64()},
		{"Liabilities", report.LiabilityLines, report.TotalLiabilities.InexactFloat64()},
		{"Equity", report.EquityLines, report.TotalEquity.InexactFloat64()},
	}
	for _, section := range sections {
		f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), section.title)
		rowNo++
		for _, line := range section.lines {
			f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), line.AccountName)
			f.SetCellValue(exportSheet, "B"+fmt.Sprint(rowNo), line.Amount.InexactFloat64())
			rowNo++
		}
		f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), "Total "+section.title)
		f.SetCellValue(exportSheet, "B"+fmt.Sprint(rowNo), section.total)
		rowNo++
	}

	return f.Write(w)
}
