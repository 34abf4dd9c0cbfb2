package service

import (
	"context"
	"errors"

	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/pkg/utils"
)

// OfferService 驱动投递的生命周期：pending → accepted | rejected。
// 同一 (user, project) 至多一条投递；该唯一性先做逻辑扫描，
// 存储层的复合唯一索引兜底并发窗口。
type OfferService struct {
	users     domain.UserRepository
	companies domain.CompanyRepository
	projects  domain.ProjectRepository
	offers    domain.OfferRepository
	rels      domain.RelationStore
}

func NewOfferService(
	users domain.UserRepository,
	companies domain.CompanyRepository,
	projects domain.ProjectRepository,
	offers domain.OfferRepository,
	rels domain.RelationStore,
) *OfferService {
	return &OfferService{users: users, companies: companies, projects: projects, offers: offers, rels: rels}
}

type SendOfferInput struct {
	Title       string
	Description string
}

func (s *OfferService) SendOffer(ctx context.Context, userID, companyID, projectID string, in SendOfferInput) (*domain.Offer, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, domain.Internal("lookup company failed", err)
	}
	if company == nil {
		return nil, domain.NotFound("company not found")
	}
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, domain.Internal("lookup project failed", err)
	}
	if project == nil {
		return nil, domain.NotFound("project not found")
	}
	if project.CompanyID != companyID {
		return nil, domain.Invalid("project does not belong to this company")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.Internal("lookup user failed", err)
	}
	if user == nil {
		return nil, domain.NotFound("user not found")
	}
	// 逐条扫描用户已有投递（逻辑唯一性，见 DESIGN）
	sent, err := s.offers.FindByIDs(ctx, user.Offers)
	if err != nil {
		return nil, domain.Internal("load user offers failed", err)
	}
	for _, o := range sent {
		if o.ProjectID == projectID {
			return nil, domain.Conflict("user already sent offer for this project")
		}
	}

	offer := &domain.Offer{
		ID:          utils.NewID(),
		Title:       in.Title,
		Description: in.Description,
		UserID:      userID,
		ProjectID:   projectID,
		CompanyID:   companyID,
		Status:      domain.OfferPending,
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		// 并发竞态：唯一索引拦下的重复投递
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Conflict("user already sent offer for this project")
		}
		return nil, domain.Internal("create offer failed", err)
	}
	// 先挂公司侧再挂用户侧；任一步失败时悬挂引用可重放修复
	if err := s.rels.Attach(ctx, domain.RelCompanyOffers, companyID, offer.ID); err != nil {
		return nil, domain.Internal("attach offer to company failed", err)
	}
	if err := s.rels.Attach(ctx, domain.RelUserOffers, userID, offer.ID); err != nil {
		return nil, domain.Internal("attach offer to user failed", err)
	}
	return offer, nil
}

// AnswerOffer 仅 offer 所属公司可处理；重复给出同一终态是幂等的
func (s *OfferService) AnswerOffer(ctx context.Context, companyID, offerID, status string) (*domain.Offer, error) {
	if !domain.ValidOfferAnswer(status) {
		return nil, domain.Invalid("status must be accepted or rejected")
	}
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, domain.Internal("lookup offer failed", err)
	}
	if offer == nil {
		return nil, domain.NotFound("offer not found")
	}
	if offer.CompanyID != companyID {
		return nil, domain.Forbidden("offer belongs to another company")
	}
	if offer.Status == status {
		return offer, nil
	}
	if offer.Status != domain.OfferPending {
		return nil, domain.Conflict("offer already resolved")
	}
	offer.Status = status
	if err := s.offers.Update(ctx, offer); err != nil {
		return nil, domain.Internal("update offer failed", err)
	}
	return offer, nil
}

// DeleteOffer 级联删除挂在该 offer 上的项目，再摘除双侧引用，最后删本体
func (s *OfferService) DeleteOffer(ctx context.Context, companyID, offerID string) error {
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return domain.Internal("lookup offer failed", err)
	}
	if offer == nil {
		return domain.NotFound("offer not found")
	}
	if offer.CompanyID != companyID {
		return domain.Forbidden("offer belongs to another company")
	}

	deps, err := s.projects.FindByOffer(ctx, offerID)
	if err != nil {
		return domain.Internal("load dependent projects failed", err)
	}
	for _, p := range deps {
		if err := s.detachProjectLikes(ctx, p.ID); err != nil {
			return err
		}
		if err := s.rels.Detach(ctx, domain.RelCompanyProjects, p.CompanyID, p.ID); err != nil {
			return domain.Internal("detach project from company failed", err)
		}
	}
	if err := s.projects.DeleteByOffer(ctx, offerID); err != nil {
		return domain.Internal("delete dependent projects failed", err)
	}

	if err := s.rels.Detach(ctx, domain.RelCompanyOffers, offer.CompanyID, offerID); err != nil {
		return domain.Internal("detach offer from company failed", err)
	}
	if err := s.rels.Detach(ctx, domain.RelUserOffers, offer.UserID, offerID); err != nil {
		return domain.Internal("detach offer from user failed", err)
	}
	if err := s.offers.Delete(ctx, offerID); err != nil {
		return domain.Internal("delete offer failed", err)
	}
	return nil
}

func (s *OfferService) detachProjectLikes(ctx context.Context, projectID string) error {
	likers, err := s.users.FindByLikedProject(ctx, projectID)
	if err != nil {
		return domain.Internal("load project likers failed", err)
	}
	for _, u := range likers {
		if err := s.rels.Detach(ctx, domain.RelUserLikes, u.ID, projectID); err != nil {
			return domain.Internal("detach like failed", err)
		}
	}
	return nil
}
