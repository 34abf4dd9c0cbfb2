package domain

import (
	"context"
	"time"
)

type Engineer struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	Photo     string    `gorm:"size:1000" json:"photo"`
	CompanyID string    `gorm:"size:36;index" json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
}

type EngineerRepository interface {
	Create(ctx context.Context, e *Engineer) error
	FindByID(ctx context.Context, id string) (*Engineer, error)
	FindByIDs(ctx context.Context, ids []string) ([]Engineer, error)
	FindAll(ctx context.Context) ([]Engineer, error)
	Delete(ctx context.Context, id string) error
	DeleteByCompany(ctx context.Context, companyID string) error
}
