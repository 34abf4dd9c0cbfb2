package domain

import (
	"context"
	"time"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Text      string    `gorm:"size:3000" json:"comment"`
	Owner     string    `gorm:"size:36;index" json:"owner"` // 作者 User id，仅作者可改删
	CompanyID string    `gorm:"size:36;index" json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	FindByID(ctx context.Context, id string) (*Comment, error)
	FindByIDs(ctx context.Context, ids []string) ([]Comment, error)
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id string) error
	DeleteByCompany(ctx context.Context, companyID string) error
}
