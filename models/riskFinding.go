package models

import (
	"context"
	"errors"
	"time"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/utils"
)

// RiskFinding is the only mutable record after creation, and only its
// status/resolved_at: open -> resolved or open -> dismissed, both terminal.
type RiskFinding struct {
	ID              int          `gorm:"primary_key" json:"id"`
	UserId          string       `gorm:"index;not null;size:64" json:"user_id" binding:"required"`
	FindingType     string       `gorm:"size:64;not null" json:"finding_type" binding:"required"`
	Severity        RiskSeverity `gorm:"size:16;not null" json:"severity" binding:"required"`
	Title           string       `gorm:"size:255;not null" json:"title" binding:"required"`
	Description     string       `gorm:"type:text" json:"description"`
	Recommendations string       `gorm:"type:text" json:"recommendations"`
	Status          RiskStatus   `gorm:"size:16;not null;default:open" json:"status"`
	RelatedEntryId  *int         `gorm:"index" json:"related_entry_id"`
	ResolvedAt      *time.Time   `json:"resolved_at"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *RiskFinding) GetId() int {
	return f.ID
}

// CanTransitionTo reports whether the status change is allowed.
func (f *RiskFinding) CanTransitionTo(next RiskStatus) bool {
	if f.Status != RiskStatusOpen {
		return false
	}
	return next == RiskStatusResolved || next == RiskStatusDismissed
}

// CreateRiskFindings persists a batch of findings as open.
func CreateRiskFindings(ctx context.Context, findings []*RiskFinding) error {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return errors.New("user id is required")
	}
	if len(findings) == 0 {
		return nil
	}
	for _, finding := range findings {
		finding.UserId = userId
		finding.Status = RiskStatusOpen
		if !finding.Severity.IsValid() {
			return errors.New("invalid risk severity")
		}
	}

	db := config.GetDB()
	return db.WithContext(ctx).Create(&findings).Error
}

// ResolveRiskFinding marks an open finding resolved and stamps resolved_at.
func ResolveRiskFinding(ctx context.Context, id int) (*RiskFinding, error) {
	return transitionRiskFinding(ctx, id, RiskStatusResolved)
}

// DismissRiskFinding marks an open finding dismissed.
func DismissRiskFinding(ctx context.Context, id int) (*RiskFinding, error) {
	return transitionRiskFinding(ctx, id, RiskStatusDismissed)
}

func transitionRiskFinding(ctx context.Context, id int, next RiskStatus) (*RiskFinding, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	finding, err := utils.FetchModel[RiskFinding](ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if !finding.CanTransitionTo(next) {
		return nil, errors.New("finding is not open")
	}

	updates := map[string]interface{}{
		"Status": next,
	}
	if next == RiskStatusResolved {
		now := time.Now().UTC()
		updates["ResolvedAt"] = &now
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&finding).Updates(updates).Error; err != nil {
		return nil, err
	}
	return finding, nil
}

// GetRiskFindings lists findings, optionally filtered by status, newest first.
func GetRiskFindings(ctx context.Context, status *RiskStatus) ([]*RiskFinding, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("user_id = ?", userId)
	if status != nil && *status != "" {
		dbCtx = dbCtx.Where("status = ?", status)
	}
	var results []*RiskFinding
	if err := dbCtx.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
