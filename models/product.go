package models

import (
	"context"
	"errors"
	"time"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/utils"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int             `gorm:"primary_key" json:"id"`
	UserId    string          `gorm:"index;not null;size:64" json:"user_id" binding:"required"`
	Name      string          `gorm:"size:255;not null" json:"name" binding:"required"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	BulkPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"bulk_price"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProduct struct {
	Name      string          `json:"name" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	BulkPrice decimal.Decimal `json:"bulk_price"`
}

func (p *Product) GetId() int {
	return p.ID
}

// validate input for both create & update. (id = 0 for create)
func (input *NewProduct) validate(ctx context.Context, userId string, id int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if input.UnitPrice.IsNegative() || input.BulkPrice.IsNegative() {
		return errors.New("price must not be negative")
	}
	if err := utils.ValidateUnique[Product](ctx, userId, "name", input.Name, id); err != nil {
		return err
	}
	return nil
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	if err := input.validate(ctx, userId, 0); err != nil {
		return nil, err
	}

	product := Product{
		UserId:    userId,
		Name:      input.Name,
		UnitPrice: input.UnitPrice,
		BulkPrice: input.BulkPrice,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(ctx context.Context, id int, input *NewProduct) (*Product, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	if err := input.validate(ctx, userId, id); err != nil {
		return nil, err
	}

	product, err := utils.FetchModel[Product](ctx, userId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&product).Updates(map[string]interface{}{
		"Name":      input.Name,
		"UnitPrice": input.UnitPrice,
		"BulkPrice": input.BulkPrice,
	}).Error
	if err != nil {
		return nil, err
	}
	return product, nil
}

func GetProduct(ctx context.Context, id int) (*Product, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	return utils.FetchModel[Product](ctx, userId, id)
}

func GetProducts(ctx context.Context) ([]*Product, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	return utils.FetchAllModels[Product](ctx, userId)
}

func DeleteProduct(ctx context.Context, id int) (*Product, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	product, err := utils.FetchModel[Product](ctx, userId, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&product).Error; err != nil {
		return nil, err
	}
	return product, nil
}
