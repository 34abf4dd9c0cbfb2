package domain

import (
	"context"
	"time"
)

type Company struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:128" json:"name"`
	Description  string    `gorm:"size:3000" json:"description"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string    `gorm:"size:191" json:"-"`
	Avatar       string    `gorm:"size:1000" json:"avatar"`
	Verified     bool      `gorm:"default:false" json:"verified"` // 仅管理员可置位
	Projects     IDList    `gorm:"type:text" json:"projects"`
	Offers       IDList    `gorm:"type:text" json:"offers"`
	Engineers    IDList    `gorm:"type:text" json:"engineers"`
	Comments     IDList    `gorm:"type:text" json:"comments"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CompanyRepository interface {
	Create(ctx context.Context, c *Company) error
	FindByID(ctx context.Context, id string) (*Company, error)
	FindByEmail(ctx context.Context, email string) (*Company, error)
	FindVerified(ctx context.Context) ([]Company, error)
	FindAll(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, id string) error
}
