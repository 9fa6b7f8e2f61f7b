package models

import (
	"context"
	"errors"
	"time"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProfitTarget stores one user's target for a given month/year.
// Unique on (user_id, month, year); saving again overwrites.
type ProfitTarget struct {
	ID            int             `gorm:"primary_key" json:"id"`
	UserId        string          `gorm:"index;not null;size:64;uniqueIndex:idx_user_month_year" json:"user_id" binding:"required"`
	Month         int             `gorm:"not null;uniqueIndex:idx_user_month_year" json:"month" binding:"required"`
	Year          int             `gorm:"not null;uniqueIndex:idx_user_month_year" json:"year" binding:"required"`
	MonthlyTarget decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"monthly_target"`
	YearlyTarget  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"yearly_target"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProfitTarget struct {
	Month         int             `json:"month" validate:"required,min=1,max=12"`
	Year          int             `json:"year" validate:"required,min=2000"`
	MonthlyTarget decimal.Decimal `json:"monthly_target"`
	YearlyTarget  decimal.Decimal `json:"yearly_target"`
}

func (t *ProfitTarget) GetId() int {
	return t.ID
}

func (input *NewProfitTarget) validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if input.MonthlyTarget.IsNegative() || input.YearlyTarget.IsNegative() {
		return errors.New("target must not be negative")
	}
	return nil
}

// UpsertProfitTarget writes the target for (month, year), replacing any
// previous value.
func UpsertProfitTarget(ctx context.Context, input *NewProfitTarget) (*ProfitTarget, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var target ProfitTarget
	err := db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userId, input.Month, input.Year).
		First(&target).Error

	if err == nil {
		err = db.WithContext(ctx).Model(&target).Updates(map[string]interface{}{
			"MonthlyTarget": input.MonthlyTarget,
			"YearlyTarget":  input.YearlyTarget,
		}).Error
		if err != nil {
			return nil, err
		}
		return &target, nil
	}

	target = ProfitTarget{
		UserId:        userId,
		Month:         input.Month,
		Year:          input.Year,
		MonthlyTarget: input.MonthlyTarget,
		YearlyTarget:  input.YearlyTarget,
	}
	if err := db.WithContext(ctx).Create(&target).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, errors.New("target was changed by another request")
		}
		return nil, err
	}
	return &target, nil
}

// GetProfitTarget returns the target for (month, year), nil when unset.
func GetProfitTarget(ctx context.Context, month int, year int) (*ProfitTarget, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	var target ProfitTarget
	err := db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userId, month, year).
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &target, nil
}
