package domain

import (
	"context"
	"time"
)

// Offer 状态机：pending → accepted | rejected，终态后不再迁移
const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
)

func ValidOfferAnswer(status string) bool {
	return status == OfferAccepted || status == OfferRejected
}

type Offer struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:191" json:"title"`
	Description string    `gorm:"size:3000" json:"description"`
	UserID      string    `gorm:"size:36;index;uniqueIndex:idx_offers_user_project" json:"userId"`
	ProjectID   string    `gorm:"size:36;index;uniqueIndex:idx_offers_user_project" json:"projectId"`
	CompanyID   string    `gorm:"size:36;index" json:"companyId"`
	Status      string    `gorm:"size:16;default:pending" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type OfferRepository interface {
	Create(ctx context.Context, o *Offer) error
	FindByID(ctx context.Context, id string) (*Offer, error)
	FindByIDs(ctx context.Context, ids []string) ([]Offer, error)
	FindByCompany(ctx context.Context, companyID string) ([]Offer, error)
	Update(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, id string) error
	DeleteByCompany(ctx context.Context, companyID string) error
}
