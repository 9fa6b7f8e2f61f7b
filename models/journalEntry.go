package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// journalBalanceEpsilon is the tolerance for debit/credit equality.
var journalBalanceEpsilon = decimal.NewFromFloat(0.01)

type JournalEntry struct {
	ID              int                 `gorm:"primary_key" json:"id"`
	UserId          string              `gorm:"index;not null;size:64" json:"user_id" binding:"required"`
	JournalNumber   string              `gorm:"size:255;not null" json:"journal_number"`
	SequenceNo      int64               `gorm:"not null" json:"sequence_no"`
	EntryDate       time.Time           `gorm:"index;not null" json:"entry_date" binding:"required"`
	Description     string              `gorm:"type:text;not null" json:"description" binding:"required"`
	ReferenceNumber string              `gorm:"size:255" json:"reference_number"`
	TotalAmount     decimal.Decimal     `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	SourceEntryId   *int                `gorm:"index" json:"source_entry_id"`
	Lines           []JournalEntryLine  `gorm:"foreignKey:JournalEntryId" json:"lines"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

type JournalEntryLine struct {
	ID             int             `gorm:"primary_key" json:"id"`
	JournalEntryId int             `gorm:"index;not null" json:"journal_entry_id" binding:"required"`
	AccountType    LineAccountType `gorm:"size:32;not null" json:"account_type" binding:"required"`
	AccountName    string          `gorm:"size:255;not null" json:"account_name" binding:"required"`
	EntryType      EntryType       `gorm:"size:16;not null" json:"entry_type" binding:"required"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Notes          string          `gorm:"type:text" json:"notes"`
}

type NewJournalEntry struct {
	EntryDate       time.Time             `json:"entry_date"`
	Description     string                `json:"description" validate:"required"`
	ReferenceNumber string                `json:"reference_number"`
	Lines           []NewJournalEntryLine `json:"lines" validate:"required,min=2"`
}

type NewJournalEntryLine struct {
	AccountType LineAccountType `json:"account_type" validate:"required"`
	AccountName string          `json:"account_name" validate:"required"`
	EntryType   EntryType       `json:"entry_type" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
}

type JournalEntriesConnection struct {
	Edges    []*JournalEntriesEdge `json:"edges"`
	PageInfo *PageInfo             `json:"pageInfo"`
}

type JournalEntriesEdge struct {
	Cursor string        `json:"cursor"`
	Node   *JournalEntry `json:"node"`
}

func (j *JournalEntry) GetId() int {
	return j.ID
}

func (l JournalEntryLine) GetId() int {
	return l.ID
}

// receiveJournalLines validates and maps input lines. The whole submission is
// rejected when any line is malformed or the entry is out of balance.
func receiveJournalLines(input *NewJournalEntry, journalEntryId int) ([]JournalEntryLine, decimal.Decimal, error) {
	lines := make([]JournalEntryLine, 0)
	totalDebits := decimal.NewFromInt(0)
	totalCredits := decimal.NewFromInt(0)
	for _, l := range input.Lines {
		if !l.AccountType.IsValid() {
			return nil, decimal.Zero, errors.New("invalid account type")
		}
		if !l.EntryType.IsValid() {
			return nil, decimal.Zero, errors.New("entry type must be debit or credit")
		}
		if l.AccountName == "" {
			return nil, decimal.Zero, errors.New("account name is required")
		}
		if !l.Amount.IsPositive() {
			return nil, decimal.Zero, errors.New("line amount must be greater than 0")
		}
		if l.EntryType == EntryTypeDebit {
			totalDebits = totalDebits.Add(l.Amount)
		} else {
			totalCredits = totalCredits.Add(l.Amount)
		}
		lines = append(lines, JournalEntryLine{
			JournalEntryId: journalEntryId,
			AccountType:    l.AccountType,
			AccountName:    l.AccountName,
			EntryType:      l.EntryType,
			Amount:         l.Amount,
			Notes:          l.Notes,
		})
	}

	if totalDebits.Sub(totalCredits).Abs().GreaterThan(journalBalanceEpsilon) {
		return nil, decimal.Zero, errors.New("debits and credits must balance")
	}
	return lines, totalDebits, nil
}

func (input *NewJournalEntry) validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if input.EntryDate.IsZero() {
		input.EntryDate = time.Now().UTC()
	}
	return nil
}

// createJournalEntryTx persists header + lines inside the caller's transaction.
// Shared by the manual journal operation and rule-based entry posting.
func createJournalEntryTx(ctx context.Context, tx *gorm.DB, userId string, input *NewJournalEntry, sourceEntryId *int) (*JournalEntry, error) {
	lines, totalDebits, err := receiveJournalLines(input, 0)
	if err != nil {
		return nil, err
	}

	seqNo, err := utils.GetSequence[JournalEntry](ctx, userId)
	if err != nil {
		return nil, err
	}

	journalEntry := JournalEntry{
		UserId:          userId,
		JournalNumber:   "JE-" + fmt.Sprint(seqNo),
		SequenceNo:      seqNo,
		EntryDate:       input.EntryDate,
		Description:     input.Description,
		ReferenceNumber: input.ReferenceNumber,
		TotalAmount:     totalDebits,
		SourceEntryId:   sourceEntryId,
		Lines:           lines,
	}

	if err := tx.WithContext(ctx).Create(&journalEntry).Error; err != nil {
		return nil, err
	}
	return &journalEntry, nil
}

func CreateJournalEntry(ctx context.Context, input *NewJournalEntry) (*JournalEntry, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	if err := input.validate(); err != nil {
		return nil, err
	}
	// reject unbalanced input before opening the transaction
	if _, _, err := receiveJournalLines(input, 0); err != nil {
		return nil, err
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	journalEntry, err := createJournalEntryTx(ctx, tx, userId, input, nil)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return journalEntry, nil
}

func GetJournalEntry(ctx context.Context, id int) (*JournalEntry, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	return utils.FetchModel[JournalEntry](ctx, userId, id, "Lines")
}

func DeleteJournalEntry(ctx context.Context, id int) (*JournalEntry, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	if config.StrictEntryImmutability() {
		return nil, errors.New("journal entries are immutable")
	}

	journalEntry, err := utils.FetchModel[JournalEntry](ctx, userId, id, "Lines")
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	// delete associated lines first
	if err := tx.WithContext(ctx).Model(&journalEntry).Association("Lines").
		Unscoped().Clear(); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Delete(&journalEntry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return journalEntry, nil
}

// FetchJournalLines returns every posting line of the user, the raw input of
// all statement aggregations. Lines have no user_id column; scope comes from
// the parent header.
func FetchJournalLines(ctx context.Context) ([]*JournalEntryLine, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	var lines []*JournalEntryLine
	err := db.WithContext(ctx).
		Joins("JOIN journal_entries ON journal_entries.id = journal_entry_lines.journal_entry_id").
		Where("journal_entries.user_id = ?", userId).
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func PaginateJournalEntries(ctx context.Context, limit *int, after *string, fromDate *MyDateString, toDate *MyDateString, referenceNumber *string) (*JournalEntriesConnection, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	decodedCursor, _ := DecodeCursor(after)
	edges := make([]*JournalEntriesEdge, *limit)
	count := 0
	hasNextPage := false

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Lines").Where("user_id = ?", userId)
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
	if referenceNumber != nil && *referenceNumber != "" {
		dbCtx = dbCtx.Where("reference_number LIKE ?", "%"+*referenceNumber+"%")
	}
	// db query
	var results []*JournalEntry
	var err error
	if decodedCursor == "" {
		err = dbCtx.Order("created_at DESC").Limit(*limit + 1).Find(&results).Error
	} else {
		err = dbCtx.Order("created_at DESC").Limit(*limit+1).Where("created_at < ?", decodedCursor).Find(&results).Error
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
			edges[count] = &JournalEntriesEdge{
				Cursor: EncodeCursor(result.CreatedAt.String()),
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
		pageInfo.StartCursor = EncodeCursor(edges[0].Node.CreatedAt.String())
		pageInfo.EndCursor = EncodeCursor(edges[count-1].Node.CreatedAt.String())
	}

	connection := JournalEntriesConnection{
		Edges:    edges[:count],
		PageInfo: &pageInfo,
	}

	return &connection, nil
}
