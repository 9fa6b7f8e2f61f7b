package models

import (
	"testing"
	"time"
)

func TestLineAccountTypeMainType(t *testing.T) {
	cases := []struct {
		accountType LineAccountType
		want        AccountMainType
	}{
		{LineAccountTypeCash, AccountMainTypeAsset},
		{LineAccountTypeBank, AccountMainTypeAsset},
		{LineAccountTypeAccountsReceivable, AccountMainTypeAsset},
		{LineAccountTypeInventory, AccountMainTypeAsset},
		{LineAccountTypeAccountsPayable, AccountMainTypeLiability},
		{LineAccountTypeSales, AccountMainTypeIncome},
		{LineAccountTypePurchase, AccountMainTypeExpense},
		{LineAccountTypePayroll, AccountMainTypeExpense},
		{LineAccountTypeOther, AccountMainTypeEquity},
	}
	for _, c := range cases {
		if got := c.accountType.MainType(); got != c.want {
			t.Errorf("MainType(%s) = %s, want %s", c.accountType, got, c.want)
		}
	}
}

func TestBookTypeAccountType(t *testing.T) {
	for _, bookType := range []BookType{
		BookTypeLedger, BookTypeCash, BookTypeBank, BookTypeSales, BookTypePurchase,
		BookTypePayable, BookTypeReceivable, BookTypeInventory, BookTypePayroll,
	} {
		if _, err := bookType.AccountType(); err != nil {
			t.Errorf("AccountType(%s) returned error: %v", bookType, err)
		}
	}
	if _, err := BookType("petty").AccountType(); err == nil {
		t.Error("unknown book type must not resolve to an account type")
	}
}

func TestStartOfDayUTCTime(t *testing.T) {
	d := MyDateString(time.Date(2026, 8, 15, 13, 45, 30, 0, time.UTC))
	if err := d.StartOfDayUTCTime("UTC"); err != nil {
		t.Fatalf("StartOfDayUTCTime: %v", err)
	}
	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	if !time.Time(d).Equal(want) {
		t.Errorf("got %s, want %s", time.Time(d), want)
	}

	var nilDate *MyDateString
	if err := nilDate.StartOfDayUTCTime("UTC"); err != nil {
		t.Errorf("nil receiver must be a no-op, got %v", err)
	}
}

func TestEndOfDayUTCTime(t *testing.T) {
	d := MyDateString(time.Date(2026, 8, 15, 13, 45, 30, 0, time.UTC))
	if err := d.EndOfDayUTCTime("UTC"); err != nil {
		t.Fatalf("EndOfDayUTCTime: %v", err)
	}
	got := time.Time(d)
	if got.Year() != 2026 || got.Month() != time.August || got.Day() != 15 {
		t.Errorf("end of day moved to another date: %s", got)
	}
	if got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 {
		t.Errorf("got %s, want 23:59:59 on the same day", got)
	}

	var nilDate *MyDateString
	if err := nilDate.EndOfDayUTCTime("UTC"); err != nil {
		t.Errorf("nil receiver must be a no-op, got %v", err)
	}
}

func TestTransactionTypeIsValid(t *testing.T) {
	for name := range transactionTypes {
		if !TransactionType(name).IsValid() {
			t.Errorf("TransactionType(%s) should be valid", name)
		}
	}
	if TransactionType("donation").IsValid() {
		t.Error("unknown transaction type should be invalid")
	}
}
