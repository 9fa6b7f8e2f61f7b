package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

type AccountMainType string

const (
	AccountMainTypeAsset     AccountMainType = "Asset"
	AccountMainTypeLiability AccountMainType = "Liability"
	AccountMainTypeEquity    AccountMainType = "Equity"
	AccountMainTypeIncome    AccountMainType = "Income"
	AccountMainTypeExpense   AccountMainType = "Expense"
)

func (t AccountMainType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *AccountMainType) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("account main type must be string")
	}
	switch str {
	case "Asset":
		*t = AccountMainTypeAsset
	case "Liability":
		*t = AccountMainTypeLiability
	case "Equity":
		*t = AccountMainTypeEquity
	case "Income":
		*t = AccountMainTypeIncome
	case "Expense":
		*t = AccountMainTypeExpense
	default:
		return errors.New("invalid account main type")
	}
	return nil
}

// IsDebitNature reports whether a debit increases this account type.
// Asset/Expense accounts grow by debit; Liability/Equity/Income by credit.
func (t AccountMainType) IsDebitNature() bool {
	return t == AccountMainTypeAsset || t == AccountMainTypeExpense
}

type TransactionType string

const (
	TransactionTypeCashSale       TransactionType = "cash_sale"
	TransactionTypeCreditSale     TransactionType = "credit_sale"
	TransactionTypeCashPurchase   TransactionType = "cash_purchase"
	TransactionTypeCreditPurchase TransactionType = "credit_purchase"
	TransactionTypeSalesReturn    TransactionType = "sales_return"
	TransactionTypePurchaseReturn TransactionType = "purchase_return"
	TransactionTypeCashReceipt    TransactionType = "cash_receipt"
	TransactionTypeCashPayment    TransactionType = "cash_payment"
	TransactionTypeBankReceipt    TransactionType = "bank_receipt"
	TransactionTypeBankPayment    TransactionType = "bank_payment"
	TransactionTypePayroll        TransactionType = "payroll"
	TransactionTypeExpense        TransactionType = "expense"
	TransactionTypeAssetPurchase  TransactionType = "asset_purchase"
	TransactionTypeAssetDisposal  TransactionType = "asset_disposal"
	TransactionTypeLoanReceived   TransactionType = "loan_received"
	TransactionTypeLoanPayment    TransactionType = "loan_payment"
	TransactionTypeAdjustment     TransactionType = "adjustment"
	TransactionTypeOpeningBalance TransactionType = "opening_balance"
)

var transactionTypes = map[string]TransactionType{
	"cash_sale":       TransactionTypeCashSale,
	"credit_sale":     TransactionTypeCreditSale,
	"cash_purchase":   TransactionTypeCashPurchase,
	"credit_purchase": TransactionTypeCreditPurchase,
	"sales_return":    TransactionTypeSalesReturn,
	"purchase_return": TransactionTypePurchaseReturn,
	"cash_receipt":    TransactionTypeCashReceipt,
	"cash_payment":    TransactionTypeCashPayment,
	"bank_receipt":    TransactionTypeBankReceipt,
	"bank_payment":    TransactionTypeBankPayment,
	"payroll":         TransactionTypePayroll,
	"expense":         TransactionTypeExpense,
	"asset_purchase":  TransactionTypeAssetPurchase,
	"asset_disposal":  TransactionTypeAssetDisposal,
	"loan_received":   TransactionTypeLoanReceived,
	"loan_payment":    TransactionTypeLoanPayment,
	"adjustment":      TransactionTypeAdjustment,
	"opening_balance": TransactionTypeOpeningBalance,
}

func (t TransactionType) IsValid() bool {
	_, ok := transactionTypes[string(t)]
	return ok
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *TransactionType) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("transaction type must be string")
	}
	var ok bool
	*t, ok = transactionTypes[str]
	if !ok {
		return errors.New("invalid transaction type")
	}
	return nil
}

type BookCategory string

const (
	BookCategorySalesBook           BookCategory = "sales_book"
	BookCategoryPurchaseBook        BookCategory = "purchase_book"
	BookCategorySalesReturnBook     BookCategory = "sales_return_book"
	BookCategoryPurchaseReturnBook  BookCategory = "purchase_return_book"
	BookCategoryCashBook            BookCategory = "cash_book"
	BookCategoryBankBook            BookCategory = "bank_book"
	BookCategoryPayrollBook         BookCategory = "payroll_book"
	BookCategoryGeneralJournal      BookCategory = "general_journal"
	BookCategoryPettyCashBook       BookCategory = "petty_cash_book"
	BookCategoryBillsReceivableBook BookCategory = "bills_receivable_book"
	BookCategoryBillsPayableBook    BookCategory = "bills_payable_book"
)

// bookCategoryTable files each transaction type under exactly one book.
var bookCategoryTable = map[TransactionType]BookCategory{
	TransactionTypeCashSale:       BookCategorySalesBook,
	TransactionTypeCreditSale:     BookCategorySalesBook,
	TransactionTypeCashPurchase:   BookCategoryPurchaseBook,
	TransactionTypeCreditPurchase: BookCategoryPurchaseBook,
	TransactionTypeSalesReturn:    BookCategorySalesReturnBook,
	TransactionTypePurchaseReturn: BookCategoryPurchaseReturnBook,
	TransactionTypeCashReceipt:    BookCategoryCashBook,
	TransactionTypeCashPayment:    BookCategoryCashBook,
	TransactionTypeBankReceipt:    BookCategoryBankBook,
	TransactionTypeBankPayment:    BookCategoryBankBook,
	TransactionTypePayroll:        BookCategoryPayrollBook,
	TransactionTypeExpense:        BookCategoryGeneralJournal,
	TransactionTypeAssetPurchase:  BookCategoryGeneralJournal,
	TransactionTypeAssetDisposal:  BookCategoryGeneralJournal,
	TransactionTypeLoanReceived:   BookCategoryBillsPayableBook,
	TransactionTypeLoanPayment:    BookCategoryBillsPayableBook,
	TransactionTypeAdjustment:     BookCategoryGeneralJournal,
	TransactionTypeOpeningBalance: BookCategoryGeneralJournal,
}

// AssignBookCategory resolves the book a transaction type is filed under.
func AssignBookCategory(t TransactionType) (BookCategory, error) {
	category, ok := bookCategoryTable[t]
	if !ok {
		return "", errors.New("invalid transaction type")
	}
	return category, nil
}

type LineAccountType string

const (
	LineAccountTypeCash               LineAccountType = "cash"
	LineAccountTypeBank               LineAccountType = "bank"
	LineAccountTypeSales              LineAccountType = "sales"
	LineAccountTypePurchase           LineAccountType = "purchase"
	LineAccountTypeAccountsPayable    LineAccountType = "accounts_payable"
	LineAccountTypeAccountsReceivable LineAccountType = "accounts_receivable"
	LineAccountTypeInventory          LineAccountType = "inventory"
	LineAccountTypePayroll            LineAccountType = "payroll"
	LineAccountTypeOther              LineAccountType = "other"
)

var lineAccountTypes = map[string]LineAccountType{
	"cash":                LineAccountTypeCash,
	"bank":                LineAccountTypeBank,
	"sales":               LineAccountTypeSales,
	"purchase":            LineAccountTypePurchase,
	"accounts_payable":    LineAccountTypeAccountsPayable,
	"accounts_receivable": LineAccountTypeAccountsReceivable,
	"inventory":           LineAccountTypeInventory,
	"payroll":             LineAccountTypePayroll,
	"other":               LineAccountTypeOther,
}

func (t LineAccountType) IsValid() bool {
	_, ok := lineAccountTypes[string(t)]
	return ok
}

// MainType maps a posting line's account bucket onto the statement
// classification used by the trial balance, P&L and balance sheet.
func (t LineAccountType) MainType() AccountMainType {
	switch t {
	case LineAccountTypeCash, LineAccountTypeBank, LineAccountTypeAccountsReceivable, LineAccountTypeInventory:
		return AccountMainTypeAsset
	case LineAccountTypeAccountsPayable:
		return AccountMainTypeLiability
	case LineAccountTypeSales:
		return AccountMainTypeIncome
	case LineAccountTypePurchase, LineAccountTypePayroll:
		return AccountMainTypeExpense
	default:
		return AccountMainTypeEquity
	}
}

func (t *LineAccountType) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("account type must be string")
	}
	var ok bool
	*t, ok = lineAccountTypes[str]
	if !ok {
		return errors.New("invalid account type")
	}
	return nil
}

type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

func (t EntryType) IsValid() bool {
	return t == EntryTypeDebit || t == EntryTypeCredit
}

func (t *EntryType) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("entry type must be string")
	}
	switch str {
	case "debit":
		*t = EntryTypeDebit
	case "credit":
		*t = EntryTypeCredit
	default:
		return errors.New("invalid entry type")
	}
	return nil
}

type PartyType string

const (
	PartyTypeCustomer PartyType = "customer"
	PartyTypeSupplier PartyType = "supplier"
	PartyTypeEmployee PartyType = "employee"
	PartyTypeOther    PartyType = "other"
)

func (t PartyType) IsValid() bool {
	switch t {
	case PartyTypeCustomer, PartyTypeSupplier, PartyTypeEmployee, PartyTypeOther:
		return true
	}
	return false
}

type PaymentMode string

const (
	PaymentModeCash          PaymentMode = "cash"
	PaymentModeBank          PaymentMode = "bank"
	PaymentModeMobilePayment PaymentMode = "mobile_payment"
	PaymentModeCheque        PaymentMode = "cheque"
	PaymentModeOther         PaymentMode = "other"
)

func (t PaymentMode) IsValid() bool {
	switch t {
	case PaymentModeCash, PaymentModeBank, PaymentModeMobilePayment, PaymentModeCheque, PaymentModeOther:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentTypeFull    PaymentType = "full"
	PaymentTypePartial PaymentType = "partial"
	PaymentTypeUnpaid  PaymentType = "unpaid"
)

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeFull, PaymentTypePartial, PaymentTypeUnpaid:
		return true
	}
	return false
}

type RiskSeverity string

const (
	RiskSeverityLow      RiskSeverity = "low"
	RiskSeverityMedium   RiskSeverity = "medium"
	RiskSeverityHigh     RiskSeverity = "high"
	RiskSeverityCritical RiskSeverity = "critical"
)

func (t RiskSeverity) IsValid() bool {
	switch t {
	case RiskSeverityLow, RiskSeverityMedium, RiskSeverityHigh, RiskSeverityCritical:
		return true
	}
	return false
}

type RiskStatus string

const (
	RiskStatusOpen      RiskStatus = "open"
	RiskStatusResolved  RiskStatus = "resolved"
	RiskStatusDismissed RiskStatus = "dismissed"
)

type BookType string

const (
	BookTypeLedger     BookType = "ledger"
	BookTypeCash       BookType = "cash"
	BookTypeBank       BookType = "bank"
	BookTypeSales      BookType = "sales"
	BookTypePurchase   BookType = "purchase"
	BookTypePayable    BookType = "payable"
	BookTypeReceivable BookType = "receivable"
	BookTypeInventory  BookType = "inventory"
	BookTypePayroll    BookType = "payroll"
)

// bookAccountTypes maps a requested book onto the posting-line account bucket
// it lists. The general ledger view shows the catch-all bucket.
var bookAccountTypes = map[BookType]LineAccountType{
	BookTypeLedger:     LineAccountTypeOther,
	BookTypeCash:       LineAccountTypeCash,
	BookTypeBank:       LineAccountTypeBank,
	BookTypeSales:      LineAccountTypeSales,
	BookTypePurchase:   LineAccountTypePurchase,
	BookTypePayable:    LineAccountTypeAccountsPayable,
	BookTypeReceivable: LineAccountTypeAccountsReceivable,
	BookTypeInventory:  LineAccountTypeInventory,
	BookTypePayroll:    LineAccountTypePayroll,
}

func (t BookType) AccountType() (LineAccountType, error) {
	accountType, ok := bookAccountTypes[t]
	if !ok {
		return "", errors.New("invalid book type")
	}
	return accountType, nil
}

type MyDateString time.Time

func (t MyDateString) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format("2006-01-02T15:04:05"))), nil
}

// Parse the string into time.Time object
func (t *MyDateString) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("date must be string")
	}

	localTime, err := time.Parse("2006-01-02T15:04:05", str)
	if err != nil {
		// date-only form is accepted too
		localTime, err = time.Parse("2006-01-02", str)
		if err != nil {
			return errors.New("error parsing datetime")
		}
	}
	*t = MyDateString(localTime)

	return nil
}

func (t *MyDateString) StartOfDayUTCTime(timezone string) error {
	// do nothing if the pointer is nil
	if t == nil {
		return nil
	}

	localTime := time.Time(*t)

	if timezone == "" {
		timezone = "Asia/Yangon"
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		fmt.Println("Error loading location:", err)
		return err
	}

	localTimeInZone := time.Date(
		localTime.Year(), localTime.Month(), localTime.Day(),
		0, 0, 0, 0,
		location,
	)

	utcTime := localTimeInZone.In(time.UTC)
	*t = MyDateString(utcTime)

	return nil
}

func (t *MyDateString) EndOfDayUTCTime(timezone string) error {
	// do nothing if the pointer is nil
	if t == nil {
		return nil
	}

	localTime := time.Time(*t)

	if timezone == "" {
		timezone = "Asia/Yangon"
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		fmt.Println("Error loading location:", err)
		return err
	}

	localTimeInZone := time.Date(
		localTime.Year(), localTime.Month(), localTime.Day(),
		23, 59, 59, 999, // Max nanoseconds
		location,
	)

	utcTime := localTimeInZone.In(time.UTC)
	*t = MyDateString(utcTime)

	return nil
}
