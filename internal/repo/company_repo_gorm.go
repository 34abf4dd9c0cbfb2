package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-gin-jobmarket/internal/domain"
)

type CompanyRepo struct{ db *gorm.DB }

func NewCompanyRepo(db *gorm.DB) *CompanyRepo { return &CompanyRepo{db: db} }

func (r *CompanyRepo) Create(ctx context.Context, c *domain.Company) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *CompanyRepo) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	var c domain.Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CompanyRepo) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	var c domain.Company
	err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CompanyRepo) FindVerified(ctx context.Context) ([]domain.Company, error) {
	var cs []domain.Company
	err := r.db.WithContext(ctx).Where("verified = ?", true).Order("created_at DESC").Find(&cs).Error
	return cs, err
}

func (r *CompanyRepo) FindAll(ctx context.Context) ([]domain.Company, error) {
	var cs []domain.Company
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cs).Error
	return cs, err
}

func (r *CompanyRepo) Update(ctx context.Context, c *domain.Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Company{}).Error
}
