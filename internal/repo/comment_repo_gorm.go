package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-gin-jobmarket/internal/domain"
)

type CommentRepo struct{ db *gorm.DB }

func NewCommentRepo(db *gorm.DB) *CommentRepo { return &CommentRepo{db: db} }

func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepo) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CommentRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var cs []domain.Comment
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cs).Error
	return cs, err
}

func (r *CommentRepo) Update(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{}).Error
}

func (r *CommentRepo) DeleteByCompany(ctx context.Context, companyID string) error {
	return r.db.WithContext(ctx).Where("company_id = ?", companyID).Delete(&domain.Comment{}).Error
}
