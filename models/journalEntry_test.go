package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func journalInput(lines ...NewJournalEntryLine) *NewJournalEntry {
	return &NewJournalEntry{
		Description: "manual posting",
		Lines:       lines,
	}
}

func debitLine(accountType LineAccountType, name string, amount float64) NewJournalEntryLine {
	return NewJournalEntryLine{
		AccountType: accountType,
		AccountName: name,
		EntryType:   EntryTypeDebit,
		Amount:      decimal.NewFromFloat(amount),
	}
}

func creditLine(accountType LineAccountType, name string, amount float64) NewJournalEntryLine {
	return NewJournalEntryLine{
		AccountType: accountType,
		AccountName: name,
		EntryType:   EntryTypeCredit,
		Amount:      decimal.NewFromFloat(amount),
	}
}

func TestReceiveJournalLinesBalanced(t *testing.T) {
	input := journalInput(
		debitLine(LineAccountTypeCash, "Cash", 500),
		creditLine(LineAccountTypeSales, "Sales Revenue", 500),
	)
	lines, totalDebits, err := receiveJournalLines(input, 0)
	if err != nil {
		t.Fatalf("balanced entry rejected: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !totalDebits.Equal(decimal.NewFromInt(500)) {
		t.Errorf("total debits = %s, want 500", totalDebits)
	}
}

func TestReceiveJournalLinesWithinTolerance(t *testing.T) {
	input := journalInput(
		debitLine(LineAccountTypeCash, "Cash", 500),
		creditLine(LineAccountTypeSales, "Sales Revenue", 499.995),
	)
	if _, _, err := receiveJournalLines(input, 0); err != nil {
		t.Errorf("difference below 0.01 must be accepted, got: %v", err)
	}
}

func TestReceiveJournalLinesRejections(t *testing.T) {
	cases := []struct {
		name  string
		input *NewJournalEntry
	}{
		{
			"out of balance",
			journalInput(
				debitLine(LineAccountTypeCash, "Cash", 500),
				creditLine(LineAccountTypeSales, "Sales Revenue", 499.98),
			),
		},
		{
			"zero amount line",
			journalInput(
				debitLine(LineAccountTypeCash, "Cash", 0),
				creditLine(LineAccountTypeSales, "Sales Revenue", 0),
			),
		},
		{
			"negative amount line",
			journalInput(
				debitLine(LineAccountTypeCash, "Cash", -100),
				creditLine(LineAccountTypeSales, "Sales Revenue", -100),
			),
		},
		{
			"invalid account type",
			journalInput(
				debitLine("goodwill", "Goodwill", 100),
				creditLine(LineAccountTypeSales, "Sales Revenue", 100),
			),
		},
		{
			"invalid entry type",
			journalInput(
				NewJournalEntryLine{
					AccountType: LineAccountTypeCash,
					AccountName: "Cash",
					EntryType:   "charge",
					Amount:      decimal.NewFromInt(100),
				},
				creditLine(LineAccountTypeSales, "Sales Revenue", 100),
			),
		},
		{
			"missing account name",
			journalInput(
				debitLine(LineAccountTypeCash, "", 100),
				creditLine(LineAccountTypeSales, "Sales Revenue", 100),
			),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, err := receiveJournalLines(c.input, 0); err == nil {
				t.Error("expected rejection, got nil error")
			}
		})
	}
}

func TestNewJournalEntryValidateRequiresTwoLines(t *testing.T) {
	input := journalInput(debitLine(LineAccountTypeCash, "Cash", 100))
	if err := input.validate(); err == nil {
		t.Error("single-line entry must be rejected")
	}

	input = journalInput()
	if err := input.validate(); err == nil {
		t.Error("empty entry must be rejected")
	}
}
