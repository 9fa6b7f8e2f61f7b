package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LargeTransactionThreshold is the amount above which a single entry is
// flagged as a high-severity risk finding.
//
// Set via env:
// - RISK_LARGE_TRANSACTION_THRESHOLD=10000
func LargeTransactionThreshold() decimal.Decimal {
	v := strings.TrimSpace(os.Getenv("RISK_LARGE_TRANSACTION_THRESHOLD"))
	if v != "" {
		if d, err := decimal.NewFromString(v); err == nil && d.IsPositive() {
			return d
		}
	}
	return decimal.NewFromInt(10000)
}

// StrictEntryImmutability blocks deleting posted entries once enabled.
// Entries are append-only by design; deletion exists for operator cleanup.
//
// Set via env:
// - STRICT_ENTRY_IMMUTABLE=true
func StrictEntryImmutability() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("STRICT_ENTRY_IMMUTABLE")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// RiskAnalysisLockSeconds bounds how long a per-user risk analysis run may
// hold its lock before it expires.
//
// Set via env:
// - RISK_ANALYSIS_LOCK_SECONDS=60
func RiskAnalysisLockSeconds() int {
	v := strings.TrimSpace(os.Getenv("RISK_ANALYSIS_LOCK_SECONDS"))
	if v == "" {
		return 60
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 60
	}
	return n
}
