package domain

import (
	"context"
	"time"
)

type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	CompanyID   string    `gorm:"size:36;index" json:"companyId"`
	OfferID     string    `gorm:"size:36;index" json:"offerId,omitempty"`
	Title       string    `gorm:"size:191" json:"title"`
	Description string    `gorm:"size:3000" json:"description"`
	Photo       string    `gorm:"size:1000" json:"photo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id string) (*Project, error)
	FindByIDs(ctx context.Context, ids []string) ([]Project, error)
	FindByCompany(ctx context.Context, companyID string) ([]Project, error)
	FindByOffer(ctx context.Context, offerID string) ([]Project, error)
	FindAll(ctx context.Context) ([]Project, error)
	Delete(ctx context.Context, id string) error
	DeleteByCompany(ctx context.Context, companyID string) error
	DeleteByOffer(ctx context.Context, offerID string) error
}
