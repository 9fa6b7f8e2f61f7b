package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/utils"
	"github.com/shopspring/decimal"
)

// Analyzer is the external AI-backed risk analyzer. It consumes the metrics
// summary and returns additional findings; the implementation is out of scope.
type Analyzer interface {
	Analyze(ctx context.Context, metrics *RiskMetricsSummary) ([]*RiskFinding, error)
}

// RiskMetricsSummary is the aggregate snapshot handed to the analyzer.
type RiskMetricsSummary struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	ProfitMargin     decimal.Decimal `json:"profit_margin"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
	CurrentRatio     decimal.Decimal `json:"current_ratio"`
	QuickRatio       decimal.Decimal `json:"quick_ratio"`
	DebtToEquity     decimal.Decimal `json:"debt_to_equity"`
	ReturnOnEquity   decimal.Decimal `json:"return_on_equity"`
	ReturnOnAssets   decimal.Decimal `json:"return_on_assets"`
	MonthlyRevenue   decimal.Decimal `json:"monthly_revenue"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses"`
	MonthlyVariance  decimal.Decimal `json:"monthly_variance"`
	EntryCount       int             `json:"entry_count"`
}

func safeRatio(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator)
}

// revenue/cost classification of a document, used by the dashboard and the
// risk metrics alike.
func (e *Entry) IsRevenue() bool {
	return e.TransactionType == TransactionTypeCashSale || e.TransactionType == TransactionTypeCreditSale
}

func (e *Entry) IsCost() bool {
	switch e.TransactionType {
	case TransactionTypeCashPurchase, TransactionTypeCreditPurchase, TransactionTypeExpense, TransactionTypePayroll:
		return true
	}
	return false
}

// BuildRiskMetrics aggregates entries and posting lines into the summary.
// Pure; safe to call on any snapshot of rows.
func BuildRiskMetrics(entries []*Entry, lines []*JournalEntryLine) *RiskMetricsSummary {
	metrics := &RiskMetricsSummary{EntryCount: len(entries)}

	thisMonthStart, thisMonthEnd := utils.GetThisMonthRange()
	prevMonthStart, prevMonthEnd := utils.GetPreviousMonthRange()
	prevRevenue := decimal.Zero
	prevExpenses := decimal.Zero

	for _, entry := range entries {
		if entry.IsRevenue() {
			metrics.TotalRevenue = metrics.TotalRevenue.Add(entry.TotalAmount)
		} else if entry.IsCost() {
			metrics.TotalExpenses = metrics.TotalExpenses.Add(entry.TotalAmount)
		}
		if !entry.EntryDate.Before(thisMonthStart) && !entry.EntryDate.After(thisMonthEnd) {
			if entry.IsRevenue() {
				metrics.MonthlyRevenue = metrics.MonthlyRevenue.Add(entry.TotalAmount)
			} else if entry.IsCost() {
				metrics.MonthlyExpenses = metrics.MonthlyExpenses.Add(entry.TotalAmount)
			}
		}
		if !entry.EntryDate.Before(prevMonthStart) && !entry.EntryDate.After(prevMonthEnd) {
			if entry.IsRevenue() {
				prevRevenue = prevRevenue.Add(entry.TotalAmount)
			} else if entry.IsCost() {
				prevExpenses = prevExpenses.Add(entry.TotalAmount)
			}
		}
	}
	metrics.NetProfit = metrics.TotalRevenue.Sub(metrics.TotalExpenses)
	metrics.ProfitMargin = safeRatio(metrics.NetProfit, metrics.TotalRevenue)

	prevProfit := prevRevenue.Sub(prevExpenses)
	monthProfit := metrics.MonthlyRevenue.Sub(metrics.MonthlyExpenses)
	metrics.MonthlyVariance = monthProfit.Sub(prevProfit)

	// balance-sheet side from posting lines, net balance = debit - credit
	var inventory decimal.Decimal
	for _, line := range lines {
		net := line.Amount
		if line.EntryType == EntryTypeCredit {
			net = net.Neg()
		}
		switch line.AccountType.MainType() {
		case AccountMainTypeAsset:
			metrics.TotalAssets = metrics.TotalAssets.Add(net)
			if line.AccountType == LineAccountTypeInventory {
				inventory = inventory.Add(net)
			}
		case AccountMainTypeLiability:
			metrics.TotalLiabilities = metrics.TotalLiabilities.Add(net.Neg())
		case AccountMainTypeEquity:
			metrics.TotalEquity = metrics.TotalEquity.Add(net.Neg())
		}
	}
	// retained profit sits in equity for ratio purposes
	metrics.TotalEquity = metrics.TotalEquity.Add(metrics.NetProfit)

	metrics.CurrentRatio = safeRatio(metrics.TotalAssets, metrics.TotalLiabilities)
	metrics.QuickRatio = safeRatio(metrics.TotalAssets.Sub(inventory), metrics.TotalLiabilities)
	metrics.DebtToEquity = safeRatio(metrics.TotalLiabilities, metrics.TotalEquity)
	metrics.ReturnOnEquity = safeRatio(metrics.NetProfit, metrics.TotalEquity)
	metrics.ReturnOnAssets = safeRatio(metrics.NetProfit, metrics.TotalAssets)

	return metrics
}

// DetectDuplicateEntries flags groups sharing the same day + description.
func DetectDuplicateEntries(entries []*Entry) []*RiskFinding {
	groups := make(map[string][]*Entry)
	for _, entry := range entries {
		key := entry.duplicateKey()
		groups[key] = append(groups[key], entry)
	}

	var findings []*RiskFinding
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		first := group[0]
		relatedId := first.ID
		findings = append(findings, &RiskFinding{
			FindingType:     "duplicate_entry",
			Severity:        RiskSeverityMedium,
			Title:           "Possible duplicate entries",
			Description:     fmt.Sprintf("%d entries dated %s share the description %q.", len(group), first.EntryDate.Format("2006-01-02"), first.Description),
			Recommendations: "Review the entries and delete accidental duplicates.",
			RelatedEntryId:  &relatedId,
		})
	}
	return findings
}

// DetectLargeTransactions flags entries above the threshold.
func DetectLargeTransactions(entries []*Entry, threshold decimal.Decimal) []*RiskFinding {
	var findings []*RiskFinding
	for _, entry := range entries {
		if entry.TotalAmount.LessThanOrEqual(threshold) {
			continue
		}
		relatedId := entry.ID
		findings = append(findings, &RiskFinding{
			FindingType:     "large_transaction",
			Severity:        RiskSeverityHigh,
			Title:           "Unusually large transaction",
			Description:     fmt.Sprintf("Entry %q totals %s, above the review threshold of %s.", entry.Description, entry.TotalAmount.StringFixed(2), threshold.StringFixed(2)),
			Recommendations: "Verify supporting documents for this transaction.",
			RelatedEntryId:  &relatedId,
		})
	}
	return findings
}

// DetectMissingReferences reports one aggregate finding when entries lack a
// reference number.
func DetectMissingReferences(entries []*Entry) []*RiskFinding {
	missing := 0
	for _, entry := range entries {
		if entry.ReferenceNumber == "" {
			missing++
		}
	}
	if missing == 0 {
		return nil
	}
	return []*RiskFinding{{
		FindingType:     "missing_reference",
		Severity:        RiskSeverityLow,
		Title:           "Entries without reference numbers",
		Description:     fmt.Sprintf("%d entries have no reference number, which weakens the audit trail.", missing),
		Recommendations: "Record invoice or receipt numbers when posting entries.",
	}}
}

// RunRiskAnalysis scans the user's current dataset and appends a fresh batch
// of open findings; findings from earlier runs keep their status. One run per
// user at a time; the analyzer may be nil (rules only).
func RunRiskAnalysis(ctx context.Context, analyzer Analyzer) ([]*RiskFinding, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	ctx, span := config.StartSpan(ctx, "RunRiskAnalysis")
	defer span.End()

	ttl := time.Duration(config.RiskAnalysisLockSeconds()) * time.Second
	release, err := utils.OwnerLock(ctx, userId, "RiskAnalysis", ttl, "models", "RunRiskAnalysis")
	if err != nil {
		return nil, err
	}
	defer release()

	entries, err := FetchEntries(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := FetchJournalLines(ctx)
	if err != nil {
		return nil, err
	}

	findings := DetectDuplicateEntries(entries)
	findings = append(findings, DetectLargeTransactions(entries, config.LargeTransactionThreshold())...)
	findings = append(findings, DetectMissingReferences(entries)...)

	if analyzer != nil {
		metrics := BuildRiskMetrics(entries, lines)
		analyzerFindings, err := analyzer.Analyze(ctx, metrics)
		if err != nil {
			logger := config.GetLogger()
			config.LogError(logger, "models", "RunRiskAnalysis", "analyzer failed", userId, err)
		} else {
			findings = append(findings, analyzerFindings...)
		}
	}

	if err := CreateRiskFindings(ctx, findings); err != nil {
		return nil, err
	}
	return findings, nil
}
