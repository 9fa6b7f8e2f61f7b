package models

import (
	"context"
	"errors"
	"time"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/utils"
)

// Account is one row of the chart of accounts. Rows with an empty UserId are
// shared system defaults visible to every user.
type Account struct {
	ID              int             `gorm:"primary_key" json:"id"`
	UserId          string          `gorm:"index;size:64" json:"user_id"`
	Code            string          `gorm:"size:64;not null" json:"code" binding:"required"`
	Name            string          `gorm:"size:255;not null" json:"name" binding:"required"`
	MainType        AccountMainType `gorm:"size:32;not null" json:"main_type" binding:"required"`
	SubType         string          `gorm:"size:64" json:"sub_type"`
	ParentId        int             `gorm:"index" json:"parent_id"`
	IsSystemDefault *bool           `gorm:"default:false" json:"is_system_default"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewAccount struct {
	Code     string          `json:"code" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	MainType AccountMainType `json:"main_type" validate:"required"`
	SubType  string          `json:"sub_type"`
	ParentId int             `json:"parent_id"`
}

func (a *Account) GetId() int {
	return a.ID
}

// validate input for both create & update. (id = 0 for create)
func (input *NewAccount) validate(ctx context.Context, userId string, id int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	switch input.MainType {
	case AccountMainTypeAsset, AccountMainTypeLiability, AccountMainTypeEquity, AccountMainTypeIncome, AccountMainTypeExpense:
	default:
		return errors.New("invalid account main type")
	}
	if err := utils.ValidateUnique[Account](ctx, userId, "code", input.Code, id); err != nil {
		return err
	}
	if input.ParentId > 0 {
		if err := utils.ValidateResourceId[Account](ctx, userId, input.ParentId); err != nil {
			return errors.New("parent account not found")
		}
	}
	return nil
}

func CreateAccount(ctx context.Context, input *NewAccount) (*Account, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	if err := input.validate(ctx, userId, 0); err != nil {
		return nil, err
	}

	account := Account{
		UserId:          userId,
		Code:            input.Code,
		Name:            input.Name,
		MainType:        input.MainType,
		SubType:         input.SubType,
		ParentId:        input.ParentId,
		IsSystemDefault: utils.NewFalse(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisList[Account](userId); err != nil {
		return nil, err
	}
	return &account, nil
}

func UpdateAccount(ctx context.Context, id int, input *NewAccount) (*Account, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	if err := input.validate(ctx, userId, id); err != nil {
		return nil, err
	}

	account, err := utils.FetchModel[Account](ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if account.IsSystemDefault != nil && *account.IsSystemDefault {
		return nil, errors.New("system default account cannot be changed")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&account).Updates(map[string]interface{}{
		"Code":     input.Code,
		"Name":     input.Name,
		"MainType": input.MainType,
		"SubType":  input.SubType,
		"ParentId": input.ParentId,
	}).Error
	if err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisList[Account](userId); err != nil {
		return nil, err
	}
	return account, nil
}

func GetAccount(ctx context.Context, id int) (*Account, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	var account Account
	err := db.WithContext(ctx).
		Where("user_id = ? OR is_system_default = true", userId).
		First(&account, id).Error
	if err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &account, nil
}

// GetAccounts lists the user's own accounts plus the shared system defaults.
func GetAccounts(ctx context.Context) ([]*Account, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	// caching
	results, err := utils.RetrieveRedisList[Account](userId)
	if err != nil {
		return nil, err
	}
	if results != nil {
		return results, nil
	}

	db := config.GetDB()
	err = db.WithContext(ctx).
		Where("user_id = ? OR is_system_default = true", userId).
		Order("code ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	if err := utils.StoreRedisList[Account](results, userId); err != nil {
		return nil, err
	}
	return results, nil
}

// GetSystemAccounts returns the shared defaults keyed by code.
func GetSystemAccounts(ctx context.Context) (map[string]*Account, error) {
	cacheKey := "SystemAccounts"
	accountMap := make(map[string]*Account)
	exists, err := config.GetRedisObject(cacheKey, &accountMap)
	if err != nil {
		return nil, err
	}
	if exists {
		return accountMap, nil
	}

	db := config.GetDB()
	var accounts []*Account
	err = db.WithContext(ctx).
		Where("is_system_default = true").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		accountMap[account.Code] = account
	}
	if err := config.SetRedisObject(cacheKey, &accountMap, utils.GetCacheLifespan()); err != nil {
		return nil, err
	}
	return accountMap, nil
}

func DeleteAccount(ctx context.Context, id int) (*Account, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	account, err := utils.FetchModel[Account](ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if account.IsSystemDefault != nil && *account.IsSystemDefault {
		return nil, errors.New("system default account cannot be deleted")
	}

	var childCount int64
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&Account{}).
		Where("user_id = ? AND parent_id = ?", userId, id).
		Count(&childCount).Error; err != nil {
		return nil, err
	}
	if childCount > 0 {
		return nil, errors.New("account has child accounts")
	}

	if err := db.WithContext(ctx).Delete(&account).Error; err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisList[Account](userId); err != nil {
		return nil, err
	}
	return account, nil
}
