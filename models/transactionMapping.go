package models

import (
	"context"
	"errors"
	"time"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/utils"
)

// TransactionMapping names the debit/credit pair an entry's transaction type
// posts to. Users can override the seeded defaults per transaction type.
type TransactionMapping struct {
	ID                int             `gorm:"primary_key" json:"id"`
	UserId            string          `gorm:"index;size:64" json:"user_id"`
	TransactionType   TransactionType `gorm:"size:32;not null;uniqueIndex:idx_user_transaction_type" json:"transaction_type"`
	DebitAccount      string          `gorm:"size:255;not null" json:"debit_account"`
	CreditAccount     string          `gorm:"size:255;not null" json:"credit_account"`
	DebitAccountType  LineAccountType `gorm:"size:32;not null" json:"debit_account_type"`
	CreditAccountType LineAccountType `gorm:"size:32;not null" json:"credit_account_type"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m TransactionMapping) GetId() int {
	return m.ID
}

type NewTransactionMapping struct {
	TransactionType   TransactionType `json:"transaction_type" validate:"required"`
	DebitAccount      string          `json:"debit_account" validate:"required"`
	CreditAccount     string          `json:"credit_account" validate:"required"`
	DebitAccountType  LineAccountType `json:"debit_account_type" validate:"required"`
	CreditAccountType LineAccountType `json:"credit_account_type" validate:"required"`
}

func (input *NewTransactionMapping) validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if !input.TransactionType.IsValid() {
		return errors.New("invalid transaction type")
	}
	if !input.DebitAccountType.IsValid() || !input.CreditAccountType.IsValid() {
		return errors.New("invalid account type")
	}
	return nil
}

// defaultTransactionMappings drive rule-based posting when the user has not
// customized a mapping. One row per transaction type.
var defaultTransactionMappings = map[TransactionType]TransactionMapping{
	TransactionTypeCashSale:       {TransactionType: TransactionTypeCashSale, DebitAccount: "Cash", CreditAccount: "Sales Revenue", DebitAccountType: LineAccountTypeCash, CreditAccountType: LineAccountTypeSales},
	TransactionTypeCreditSale:     {TransactionType: TransactionTypeCreditSale, DebitAccount: "Accounts Receivable", CreditAccount: "Sales Revenue", DebitAccountType: LineAccountTypeAccountsReceivable, CreditAccountType: LineAccountTypeSales},
	TransactionTypeCashPurchase:   {TransactionType: TransactionTypeCashPurchase, DebitAccount: "Purchases", CreditAccount: "Cash", DebitAccountType: LineAccountTypePurchase, CreditAccountType: LineAccountTypeCash},
	TransactionTypeCreditPurchase: {TransactionType: TransactionTypeCreditPurchase, DebitAccount: "Purchases", CreditAccount: "Accounts Payable", DebitAccountType: LineAccountTypePurchase, CreditAccountType: LineAccountTypeAccountsPayable},
	TransactionTypeSalesReturn:    {TransactionType: TransactionTypeSalesReturn, DebitAccount: "Sales Returns", CreditAccount: "Cash", DebitAccountType: LineAccountTypeSales, CreditAccountType: LineAccountTypeCash},
	TransactionTypePurchaseReturn: {TransactionType: TransactionTypePurchaseReturn, DebitAccount: "Cash", CreditAccount: "Purchase Returns", DebitAccountType: LineAccountTypeCash, CreditAccountType: LineAccountTypePurchase},
	TransactionTypeCashReceipt:    {TransactionType: TransactionTypeCashReceipt, DebitAccount: "Cash", CreditAccount: "Accounts Receivable", DebitAccountType: LineAccountTypeCash, CreditAccountType: LineAccountTypeAccountsReceivable},
	TransactionTypeCashPayment:    {TransactionType: TransactionTypeCashPayment, DebitAccount: "Accounts Payable", CreditAccount: "Cash", DebitAccountType: LineAccountTypeAccountsPayable, CreditAccountType: LineAccountTypeCash},
	TransactionTypeBankReceipt:    {TransactionType: TransactionTypeBankReceipt, DebitAccount: "Bank", CreditAccount: "Accounts Receivable", DebitAccountType: LineAccountTypeBank, CreditAccountType: LineAccountTypeAccountsReceivable},
	TransactionTypeBankPayment:    {TransactionType: TransactionTypeBankPayment, DebitAccount: "Accounts Payable", CreditAccount: "Bank", DebitAccountType: LineAccountTypeAccountsPayable, CreditAccountType: LineAccountTypeBank},
	TransactionTypePayroll:        {TransactionType: TransactionTypePayroll, DebitAccount: "Salaries & Wages", CreditAccount: "Cash", DebitAccountType: LineAccountTypePayroll, CreditAccountType: LineAccountTypeCash},
	TransactionTypeExpense:        {TransactionType: TransactionTypeExpense, DebitAccount: "General Expenses", CreditAccount: "Cash", DebitAccountType: LineAccountTypePurchase, CreditAccountType: LineAccountTypeCash},
	TransactionTypeAssetPurchase:  {TransactionType: TransactionTypeAssetPurchase, DebitAccount: "Fixed Assets", CreditAccount: "Cash", DebitAccountType: LineAccountTypeOther, CreditAccountType: LineAccountTypeCash},
	TransactionTypeAssetDisposal:  {TransactionType: TransactionTypeAssetDisposal, DebitAccount: "Cash", CreditAccount: "Fixed Assets", DebitAccountType: LineAccountTypeCash, CreditAccountType: LineAccountTypeOther},
	TransactionTypeLoanReceived:   {TransactionType: TransactionTypeLoanReceived, DebitAccount: "Cash", CreditAccount: "Loans Payable", DebitAccountType: LineAccountTypeCash, CreditAccountType: LineAccountTypeAccountsPayable},
	TransactionTypeLoanPayment:    {TransactionType: TransactionTypeLoanPayment, DebitAccount: "Loans Payable", CreditAccount: "Cash", DebitAccountType: LineAccountTypeAccountsPayable, CreditAccountType: LineAccountTypeCash},
	TransactionTypeAdjustment:     {TransactionType: TransactionTypeAdjustment, DebitAccount: "Adjustments", CreditAccount: "Adjustments", DebitAccountType: LineAccountTypeOther, CreditAccountType: LineAccountTypeOther},
	TransactionTypeOpeningBalance: {TransactionType: TransactionTypeOpeningBalance, DebitAccount: "Cash", CreditAccount: "Opening Balance Equity", DebitAccountType: LineAccountTypeCash, CreditAccountType: LineAccountTypeOther},
}

// GetTransactionMapping resolves the posting pair for a transaction type,
// preferring the user's override and falling back to the seeded default.
func GetTransactionMapping(ctx context.Context, transactionType TransactionType) (*TransactionMapping, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	if !transactionType.IsValid() {
		return nil, errors.New("invalid transaction type")
	}

	mappings, err := getTransactionMappings(ctx, userId)
	if err != nil {
		return nil, err
	}
	for _, m := range mappings {
		if m.TransactionType == transactionType {
			return m, nil
		}
	}

	fallback := defaultTransactionMappings[transactionType]
	return &fallback, nil
}

func getTransactionMappings(ctx context.Context, userId string) ([]*TransactionMapping, error) {
	// caching
	results, err := utils.RetrieveRedisList[TransactionMapping](userId)
	if err != nil {
		return nil, err
	}
	if results != nil {
		return results, nil
	}

	results, err = utils.FetchAllModels[TransactionMapping](ctx, userId)
	if err != nil {
		return nil, err
	}
	if err := utils.StoreRedisList[TransactionMapping](results, userId); err != nil {
		return nil, err
	}
	return results, nil
}

// UpsertTransactionMapping replaces the user's mapping for one transaction type.
func UpsertTransactionMapping(ctx context.Context, input *NewTransactionMapping) (*TransactionMapping, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var mapping TransactionMapping
	err := db.WithContext(ctx).
		Where("user_id = ? AND transaction_type = ?", userId, input.TransactionType).
		First(&mapping).Error

	if err == nil {
		err = db.WithContext(ctx).Model(&mapping).Updates(map[string]interface{}{
			"DebitAccount":      input.DebitAccount,
			"CreditAccount":     input.CreditAccount,
			"DebitAccountType":  input.DebitAccountType,
			"CreditAccountType": input.CreditAccountType,
		}).Error
		if err != nil {
			return nil, err
		}
	} else {
		mapping = TransactionMapping{
			UserId:            userId,
			TransactionType:   input.TransactionType,
			DebitAccount:      input.DebitAccount,
			CreditAccount:     input.CreditAccount,
			DebitAccountType:  input.DebitAccountType,
			CreditAccountType: input.CreditAccountType,
		}
		if err := db.WithContext(ctx).Create(&mapping).Error; err != nil {
			if utils.IsDuplicateKeyError(err) {
				return nil, errors.New("mapping was changed by another request")
			}
			return nil, err
		}
	}

	if err := utils.RemoveRedisList[TransactionMapping](userId); err != nil {
		return nil, err
	}
	return &mapping, nil
}
