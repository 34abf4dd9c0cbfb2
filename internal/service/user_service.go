package service

import (
	"context"

	"go-gin-jobmarket/internal/domain"
)

type UserService struct {
	users    domain.UserRepository
	projects domain.ProjectRepository
	offers   domain.OfferRepository
}

func NewUserService(users domain.UserRepository, projects domain.ProjectRepository, offers domain.OfferRepository) *UserService {
	return &UserService{users: users, projects: projects, offers: offers}
}

// UserProfile 用户记录加展开后的点赞项目与已发投递
type UserProfile struct {
	domain.User
	LikedProjects []domain.Project `json:"likedProjects"`
	SentOffers    []domain.Offer   `json:"sentOffers"`
}

func (s *UserService) Profile(ctx context.Context, userID string) (*UserProfile, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, domain.NotFound("user not found")
	}
	p := &UserProfile{User: *u}
	if p.LikedProjects, err = s.projects.FindByIDs(ctx, u.Likes); err != nil {
		return nil, domain.Internal("load liked projects failed", err)
	}
	if p.SentOffers, err = s.offers.FindByIDs(ctx, u.Offers); err != nil {
		return nil, domain.Internal("load sent offers failed", err)
	}
	return p, nil
}
