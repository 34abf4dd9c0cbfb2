package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-gin-jobmarket/internal/domain"
)

type OfferRepo struct{ db *gorm.DB }

func NewOfferRepo(db *gorm.DB) *OfferRepo { return &OfferRepo{db: db} }

func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	err := r.db.WithContext(ctx).Create(o).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *OfferRepo) FindByID(ctx context.Context, id string) (*domain.Offer, error) {
	var o domain.Offer
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OfferRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Offer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var os []domain.Offer
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&os).Error
	return os, err
}

func (r *OfferRepo) FindByCompany(ctx context.Context, companyID string) ([]domain.Offer, error) {
	var os []domain.Offer
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&os).Error
	return os, err
}

func (r *OfferRepo) Update(ctx context.Context, o *domain.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OfferRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Offer{}).Error
}

func (r *OfferRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	return r.db.WithContext(ctx).Where("company_id = ?", companyID).Delete(&domain.Offer{}).Error
}
