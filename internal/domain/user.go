package domain

import (
	"context"
	"time"
)

const (
	RoleUser    = "user"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

const DefaultAvatar = "https://icon-library.com/images/profile-image-icon/profile-image-icon-0.jpg"

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName    string    `gorm:"size:64" json:"firstName"`
	LastName     string    `gorm:"size:64" json:"lastName"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string    `gorm:"size:191" json:"-"`
	Avatar       string    `gorm:"size:1000" json:"avatar"`
	Likes        IDList    `gorm:"type:text" json:"likes"`  // Project ids
	Offers       IDList    `gorm:"type:text" json:"offers"` // Offer ids
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByLikedProject 找出 likes 数组里含该项目的用户（级联清理用）
	FindByLikedProject(ctx context.Context, projectID string) ([]User, error)
	Update(ctx context.Context, u *User) error
}
