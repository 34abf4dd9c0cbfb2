package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-gin-jobmarket/internal/domain"
)

type ProjectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) *ProjectRepo { return &ProjectRepo{db: db} }

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProjectRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ps []domain.Project
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ps).Error
	return ps, err
}

func (r *ProjectRepo) FindByCompany(ctx context.Context, companyID string) ([]domain.Project, error) {
	var ps []domain.Project
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&ps).Error
	return ps, err
}

func (r *ProjectRepo) FindByOffer(ctx context.Context, offerID string) ([]domain.Project, error) {
	var ps []domain.Project
	err := r.db.WithContext(ctx).Where("offer_id = ?", offerID).Find(&ps).Error
	return ps, err
}

func (r *ProjectRepo) FindAll(ctx context.Context) ([]domain.Project, error) {
	var ps []domain.Project
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Project{}).Error
}

func (r *ProjectRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	return r.db.WithContext(ctx).Where("company_id = ?", companyID).Delete(&domain.Project{}).Error
}

func (r *ProjectRepo) DeleteByOffer(ctx context.Context, offerID string) error {
	return r.db.WithContext(ctx).Where("offer_id = ?", offerID).Delete(&domain.Project{}).Error
}
