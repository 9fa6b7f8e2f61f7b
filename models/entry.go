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

// Entry is the flat business document a bookkeeper records. Posting an entry
// also derives a balanced journal entry in the same transaction; statements
// are computed from the journal lines, never from these rows directly.
type Entry struct {
	ID              int             `gorm:"primary_key" json:"id"`
	UserId          string          `gorm:"index;not null;size:64" json:"user_id" binding:"required"`
	SequenceNo      int64           `gorm:"not null" json:"sequence_no"`
	EntryDate       time.Time       `gorm:"index;not null" json:"entry_date" binding:"required"`
	TransactionType TransactionType `gorm:"size:32;not null" json:"transaction_type" binding:"required"`
	BookCategory    BookCategory    `gorm:"index;size:32;not null" json:"book_category"`
	Description     string          `gorm:"type:text;not null" json:"description" binding:"required"`
	PartyName       string          `gorm:"size:255" json:"party_name"`
	PartyType       PartyType       `gorm:"size:32" json:"party_type"`
	PartyPhone      string          `gorm:"size:64" json:"party_phone"`
	PartyEmail      string          `gorm:"size:255" json:"party_email"`
	ReferenceNumber string          `gorm:"size:255" json:"reference_number"`
	PaymentMode     PaymentMode     `gorm:"size:32" json:"payment_mode"`
	PaymentType     PaymentType     `gorm:"size:32" json:"payment_type"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	Discount        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax_rate"`
	AmountBeforeTax decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount_before_tax"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax_amount"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	AmountPaid      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount_paid"`
	BalanceDue      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"balance_due"`
	GrossPay        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gross_pay"`
	Allowances      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"allowances"`
	Deductions      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"deductions"`
	NetPay          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"net_pay"`
	DebitAccount    string          `gorm:"size:255" json:"debit_account"`
	CreditAccount   string          `gorm:"size:255" json:"credit_account"`
	Notes           string          `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewEntry struct {
	TransactionType TransactionType `json:"transaction_type" validate:"required"`
	EntryDate       time.Time       `json:"entry_date"`
	Description     string          `json:"description" validate:"required"`
	PartyName       string          `json:"party_name"`
	PartyType       PartyType       `json:"party_type"`
	PartyPhone      string          `json:"party_phone"`
	PartyEmail      string          `json:"party_email"`
	ReferenceNumber string          `json:"reference_number"`
	PaymentMode     PaymentMode     `json:"payment_mode"`
	PaymentType     PaymentType     `json:"payment_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Discount        decimal.Decimal `json:"discount"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	Allowances      decimal.Decimal `json:"allowances"`
	Deductions      decimal.Decimal `json:"deductions"`
	DebitAccount    string          `json:"debit_account"`
	CreditAccount   string          `json:"credit_account"`
	Notes           string          `json:"notes"`
}

// EntryAmounts holds the computed money columns of an entry.
type EntryAmounts struct {
	AmountBeforeTax decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	BalanceDue      decimal.Decimal
	NetPay          decimal.Decimal
}

type EntriesConnection struct {
	Edges    []*EntriesEdge `json:"edges"`
	PageInfo *PageInfo      `json:"pageInfo"`
}

type EntriesEdge struct {
	Cursor string `json:"cursor"`
	Node   *Entry `json:"node"`
}

func (e *Entry) GetId() int {
	return e.ID
}

// ComputeEntryAmounts derives the money columns from the raw inputs.
//
// payroll:   net_pay = gross_pay + allowances - deductions, total = net_pay
// otherwise: before_tax = quantity*unit_price - discount
//            tax = before_tax * tax_rate / 100
//            total = before_tax + tax
//            balance_due = total - amount_paid
func ComputeEntryAmounts(input *NewEntry) EntryAmounts {
	var amounts EntryAmounts

	if input.TransactionType == TransactionTypePayroll {
		amounts.NetPay = input.GrossPay.Add(input.Allowances).Sub(input.Deductions)
		amounts.TotalAmount = amounts.NetPay
		return amounts
	}

	amounts.AmountBeforeTax = input.Quantity.Mul(input.UnitPrice).Sub(input.Discount)
	amounts.TaxAmount = amounts.AmountBeforeTax.Mul(input.TaxRate).Div(decimal.NewFromInt(100))
	amounts.TotalAmount = amounts.AmountBeforeTax.Add(amounts.TaxAmount)
	amounts.BalanceDue = amounts.TotalAmount.Sub(input.AmountPaid)
	return amounts
}

// validate input before any write.
func (input *NewEntry) validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if !input.TransactionType.IsValid() {
		return errors.New("invalid transaction type")
	}
	if input.PartyType != "" && !input.PartyType.IsValid() {
		return errors.New("invalid party type")
	}
	if input.PaymentMode != "" && !input.PaymentMode.IsValid() {
		return errors.New("invalid payment mode")
	}
	if input.PaymentType != "" && !input.PaymentType.IsValid() {
		return errors.New("invalid payment type")
	}
	if input.PartyPhone != "" {
		if err := utils.ValidatePhoneNumber(input.PartyPhone, utils.CountryCode); err != nil {
			return errors.New("invalid party phone number")
		}
	}
	if input.PartyEmail != "" && !utils.IsValidEmail(input.PartyEmail) {
		return errors.New("invalid party email")
	}
	if input.Quantity.IsNegative() || input.UnitPrice.IsNegative() || input.Discount.IsNegative() ||
		input.TaxRate.IsNegative() || input.AmountPaid.IsNegative() ||
		input.GrossPay.IsNegative() || input.Allowances.IsNegative() || input.Deductions.IsNegative() {
		return errors.New("amounts must not be negative")
	}
	if input.EntryDate.IsZero() {
		input.EntryDate = time.Now().UTC()
	}
	return nil
}

// CreateEntry records the document and posts its balanced journal entry in
// one transaction. No other entity is mutated; statements recompute on read.
func CreateEntry(ctx context.Context, input *NewEntry) (*Entry, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	amounts := ComputeEntryAmounts(input)
	if !amounts.TotalAmount.IsPositive() {
		return nil, errors.New("total amount must be greater than 0")
	}

	bookCategory, err := AssignBookCategory(input.TransactionType)
	if err != nil {
		return nil, err
	}
	mapping, err := GetTransactionMapping(ctx, input.TransactionType)
	if err != nil {
		return nil, err
	}

	debitAccount := input.DebitAccount
	if debitAccount == "" {
		debitAccount = mapping.DebitAccount
	}
	creditAccount := input.CreditAccount
	if creditAccount == "" {
		creditAccount = mapping.CreditAccount
	}

	entry := Entry{
		UserId:          userId,
		EntryDate:       input.EntryDate,
		TransactionType: input.TransactionType,
		BookCategory:    bookCategory,
		Description:     input.Description,
		PartyName:       input.PartyName,
		PartyType:       input.PartyType,
		PartyPhone:      input.PartyPhone,
		PartyEmail:      input.PartyEmail,
		ReferenceNumber: input.ReferenceNumber,
		PaymentMode:     input.PaymentMode,
		PaymentType:     input.PaymentType,
		Quantity:        input.Quantity,
		UnitPrice:       input.UnitPrice,
		Discount:        input.Discount,
		TaxRate:         input.TaxRate,
		AmountBeforeTax: amounts.AmountBeforeTax,
		TaxAmount:       amounts.TaxAmount,
		TotalAmount:     amounts.TotalAmount,
		AmountPaid:      input.AmountPaid,
		BalanceDue:      amounts.BalanceDue,
		GrossPay:        input.GrossPay,
		Allowances:      input.Allowances,
		Deductions:      input.Deductions,
		NetPay:          amounts.NetPay,
		DebitAccount:    debitAccount,
		CreditAccount:   creditAccount,
		Notes:           input.Notes,
	}
	seqNo, err := utils.GetSequence[Entry](ctx, userId)
	if err != nil {
		return nil, err
	}
	entry.SequenceNo = seqNo

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	posting := &NewJournalEntry{
		EntryDate:       entry.EntryDate,
		Description:     entry.Description,
		ReferenceNumber: entry.ReferenceNumber,
		Lines: []NewJournalEntryLine{
			{
				AccountType: mapping.DebitAccountType,
				AccountName: debitAccount,
				EntryType:   EntryTypeDebit,
				Amount:      amounts.TotalAmount,
			},
			{
				AccountType: mapping.CreditAccountType,
				AccountName: creditAccount,
				EntryType:   EntryTypeCredit,
				Amount:      amounts.TotalAmount,
			},
		},
	}
	if _, err := createJournalEntryTx(ctx, tx, userId, posting, &entry.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func GetEntry(ctx context.Context, id int) (*Entry, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	return utils.FetchModel[Entry](ctx, userId, id)
}

func DeleteEntry(ctx context.Context, id int) (*Entry, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	if config.StrictEntryImmutability() {
		return nil, errors.New("entries are immutable")
	}

	entry, err := utils.FetchModel[Entry](ctx, userId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	// remove the derived journal entry and its lines first
	var journalEntries []*JournalEntry
	if err := tx.WithContext(ctx).Preload("Lines").
		Where("user_id = ? AND source_entry_id = ?", userId, id).
		Find(&journalEntries).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, journalEntry := range journalEntries {
		if err := tx.WithContext(ctx).Model(&journalEntry).Association("Lines").
			Unscoped().Clear(); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.WithContext(ctx).Delete(&journalEntry).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.WithContext(ctx).Delete(&entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return entry, nil
}

// FetchEntries returns all of a user's entries, newest first. Aggregations
// take this full row set as input; there is no incremental state.
func FetchEntries(ctx context.Context) ([]*Entry, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	var results []*Entry
	err := db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("entry_date DESC, id DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func PaginateEntries(ctx context.Context, limit *int, after *string, bookCategory *BookCategory, transactionType *TransactionType, fromDate *MyDateString, toDate *MyDateString) (*EntriesConnection, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	cursorDate, cursorId := DecodeCompositeCursor(after)
	edges := make([]*EntriesEdge, *limit)
	count := 0
	hasNextPage := false

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("user_id = ?", userId)
	if bookCategory != nil && *bookCategory != "" {
		dbCtx = dbCtx.Where("book_category = ?", bookCategory)
	}
	if transactionType != nil && *transactionType != "" {
		dbCtx = dbCtx.Where("transaction_type = ?", transactionType)
	}
	if fromDate != nil && toDate != nil {
		// widen to full local days before comparing against stored timestamps
		if err := fromDate.StartOfDayUTCTime(""); err != nil {
			return nil, err
		}
		if err := toDate.EndOfDayUTCTime(""); err != nil {
			return nil, err
		}
		dbCtx = dbCtx.Where("entry_date BETWEEN ? AND ?", time.Time(*fromDate), time.Time(*toDate))
	}
	// db query
	var results []*Entry
	var err error
	if cursorDate == "" {
		err = dbCtx.Order("entry_date DESC, id DESC").Limit(*limit + 1).Find(&results).Error
	} else {
		err = dbCtx.Order("entry_date DESC, id DESC").Limit(*limit+1).
			Where("(entry_date < ?) OR (entry_date = ? AND id < ?)", cursorDate, cursorDate, cursorId).
			Find(&results).Error
	}
	if err != nil {
		return nil, err
	}

	for _, result := range results {
		// If there are any elements left after the current page
		// we indicate that in the response
		if count == *limit {
			hasNextPage = true
		}

		if count < *limit {
			edges[count] = &EntriesEdge{
				Cursor: EncodeCompositeCursor(result.EntryDate.Format("2006-01-02 15:04:05"), result.ID),
				Node:   result,
			}
			count++
		}
	}

	pageInfo := PageInfo{
		StartCursor: "",
		EndCursor:   "",
		HasNextPage: &hasNextPage,
	}
	if count > 0 {
		pageInfo.StartCursor = edges[0].Cursor
		pageInfo.EndCursor = edges[count-1].Cursor
	}

	connection := EntriesConnection{
		Edges:    edges[:count],
		PageInfo: &pageInfo,
	}

	return &connection, nil
}

// entryKey identifies potential duplicates: same day + same description.
func (e *Entry) duplicateKey() string {
	return fmt.Sprintf("%s|%s", e.EntryDate.Format("2006-01-02"), e.Description)
}
