package service

import (
	"context"

	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/pkg/utils"
)

// CommentService 维护公司主页留言；只有作者能改删自己的留言
type CommentService struct {
	companies domain.CompanyRepository
	comments  domain.CommentRepository
	rels      domain.RelationStore
}

func NewCommentService(companies domain.CompanyRepository, comments domain.CommentRepository, rels domain.RelationStore) *CommentService {
	return &CommentService{companies: companies, comments: comments, rels: rels}
}

func (s *CommentService) AddComment(ctx context.Context, companyID, userID, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, domain.Invalid("comment is required")
	}
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, domain.Internal("lookup company failed", err)
	}
	if company == nil {
		return nil, domain.NotFound("company not found")
	}
	c := &domain.Comment{
		ID:        utils.NewID(),
		Text:      text,
		Owner:     userID,
		CompanyID: companyID,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, domain.Internal("create comment failed", err)
	}
	if err := s.rels.Attach(ctx, domain.RelCompanyComments, companyID, c.ID); err != nil {
		return nil, domain.Internal("attach comment to company failed", err)
	}
	return c, nil
}

func (s *CommentService) EditComment(ctx context.Context, userID, companyID, commentID, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, domain.Invalid("comment is required")
	}
	c, err := s.ownedComment(ctx, userID, companyID, commentID)
	if err != nil {
		return nil, err
	}
	c.Text = text
	if err := s.comments.Update(ctx, c); err != nil {
		return nil, domain.Internal("update comment failed", err)
	}
	return c, nil
}

// DeleteComment 先从公司侧摘引用再删记录，中途失败只会残留可清理的孤儿行
func (s *CommentService) DeleteComment(ctx context.Context, userID, companyID, commentID string) error {
	c, err := s.ownedComment(ctx, userID, companyID, commentID)
	if err != nil {
		return err
	}
	if err := s.rels.Detach(ctx, domain.RelCompanyComments, companyID, c.ID); err != nil {
		return domain.Internal("detach comment from company failed", err)
	}
	if err := s.comments.Delete(ctx, c.ID); err != nil {
		return domain.Internal("delete comment failed", err)
	}
	return nil
}

func (s *CommentService) ownedComment(ctx context.Context, userID, companyID, commentID string) (*domain.Comment, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, domain.Internal("lookup company failed", err)
	}
	if company == nil {
		return nil, domain.NotFound("company not found")
	}
	c, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, domain.Internal("lookup comment failed", err)
	}
	if c == nil || c.CompanyID != companyID {
		return nil, domain.NotFound("comment not found")
	}
	if c.Owner != userID {
		return nil, domain.Forbidden("unauthorized action")
	}
	return c, nil
}
