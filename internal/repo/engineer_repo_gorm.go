package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-gin-jobmarket/internal/domain"
)

type EngineerRepo struct{ db *gorm.DB }

func NewEngineerRepo(db *gorm.DB) *EngineerRepo { return &EngineerRepo{db: db} }

func (r *EngineerRepo) Create(ctx context.Context, e *domain.Engineer) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EngineerRepo) FindByID(ctx context.Context, id string) (*domain.Engineer, error) {
	var e domain.Engineer
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

func (r *EngineerRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Engineer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var es []domain.Engineer
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&es).Error
	return es, err
}

func (r *EngineerRepo) FindAll(ctx context.Context) ([]domain.Engineer, error) {
	var es []domain.Engineer
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&es).Error
	return es, err
}

func (r *EngineerRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Engineer{}).Error
}

func (r *EngineerRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	return r.db.WithContext(ctx).Where("company_id = ?", companyID).Delete(&domain.Engineer{}).Error
}
