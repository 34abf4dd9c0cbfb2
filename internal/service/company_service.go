package service

import (
	"context"

	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/pkg/utils"
)

// CompanyService 聚合公司侧的读、管理员操作与级联删除。
// 公司删除采用完整级联（原型只删 projects/offers，见 DESIGN 的决策记录）。
type CompanyService struct {
	users     domain.UserRepository
	companies domain.CompanyRepository
	projects  domain.ProjectRepository
	offers    domain.OfferRepository
	comments  domain.CommentRepository
	engineers domain.EngineerRepository
	rels      domain.RelationStore
}

func NewCompanyService(
	users domain.UserRepository,
	companies domain.CompanyRepository,
	projects domain.ProjectRepository,
	offers domain.OfferRepository,
	comments domain.CommentRepository,
	engineers domain.EngineerRepository,
	rels domain.RelationStore,
) *CompanyService {
	return &CompanyService{
		users: users, companies: companies, projects: projects,
		offers: offers, comments: comments, engineers: engineers, rels: rels,
	}
}

// CompanyProfile 公司记录加展开后的关联实体（对齐文档库的 populate）
type CompanyProfile struct {
	domain.Company
	ProjectList  []domain.Project  `json:"projectList"`
	OfferList    []domain.Offer    `json:"offerList"`
	EngineerList []domain.Engineer `json:"engineerList"`
	CommentList  []domain.Comment  `json:"commentList"`
}

func (s *CompanyService) Profile(ctx context.Context, companyID string) (*CompanyProfile, error) {
	c, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, domain.Internal("lookup company failed", err)
	}
	if c == nil {
		return nil, domain.NotFound("company not found")
	}
	p := &CompanyProfile{Company: *c}
	if p.ProjectList, err = s.projects.FindByIDs(ctx, c.Projects); err != nil {
		return nil, domain.Internal("load projects failed", err)
	}
	if p.OfferList, err = s.offers.FindByIDs(ctx, c.Offers); err != nil {
		return nil, domain.Internal("load offers failed", err)
	}
	if p.EngineerList, err = s.engineers.FindByIDs(ctx, c.Engineers); err != nil {
		return nil, domain.Internal("load engineers failed", err)
	}
	if p.CommentList, err = s.comments.FindByIDs(ctx, c.Comments); err != nil {
		return nil, domain.Internal("load comments failed", err)
	}
	return p, nil
}

func (s *CompanyService) VerifiedCompanies(ctx context.Context) ([]domain.Company, error) {
	cs, err := s.companies.FindVerified(ctx)
	if err != nil {
		return nil, domain.Internal("list verified companies failed", err)
	}
	return cs, nil
}

func (s *CompanyService) AllCompanies(ctx context.Context) ([]domain.Company, error) {
	cs, err := s.companies.FindAll(ctx)
	if err != nil {
		return nil, domain.Internal("list companies failed", err)
	}
	return cs, nil
}

// VerifyCompany 管理员置位 verified，幂等
func (s *CompanyService) VerifyCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	c, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, domain.Internal("lookup company failed", err)
	}
	if c == nil {
		return nil, domain.NotFound("company not found")
	}
	if c.Verified {
		return c, nil
	}
	c.Verified = true
	if err := s.companies.Update(ctx, c); err != nil {
		return nil, domain.Internal("verify company failed", err)
	}
	return c, nil
}

// DeleteCompany 完整级联：先清干净依赖方和用户侧引用，公司行最后删。
// 没有跨行原子性，中途崩溃会留下可重放的半成品，而不是没了父行的孤儿。
func (s *CompanyService) DeleteCompany(ctx context.Context, companyID string) error {
	c, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return domain.Internal("lookup company failed", err)
	}
	if c == nil {
		return domain.NotFound("company not found")
	}

	offers, err := s.offers.FindByCompany(ctx, companyID)
	if err != nil {
		return domain.Internal("load company offers failed", err)
	}
	for _, o := range offers {
		if err := s.rels.Detach(ctx, domain.RelUserOffers, o.UserID, o.ID); err != nil {
			return domain.Internal("detach offer from user failed", err)
		}
	}

	projects, err := s.projects.FindByCompany(ctx, companyID)
	if err != nil {
		return domain.Internal("load company projects failed", err)
	}
	for _, p := range projects {
		likers, err := s.users.FindByLikedProject(ctx, p.ID)
		if err != nil {
			return domain.Internal("load project likers failed", err)
		}
		for _, u := range likers {
			if err := s.rels.Detach(ctx, domain.RelUserLikes, u.ID, p.ID); err != nil {
				return domain.Internal("detach like failed", err)
			}
		}
	}

	if err := s.projects.DeleteByCompany(ctx, companyID); err != nil {
		return domain.Internal("delete company projects failed", err)
	}
	if err := s.offers.DeleteByCompany(ctx, companyID); err != nil {
		return domain.Internal("delete company offers failed", err)
	}
	if err := s.engineers.DeleteByCompany(ctx, companyID); err != nil {
		return domain.Internal("delete company engineers failed", err)
	}
	if err := s.comments.DeleteByCompany(ctx, companyID); err != nil {
		return domain.Internal("delete company comments failed", err)
	}
	if err := s.companies.Delete(ctx, companyID); err != nil {
		return domain.Internal("delete company failed", err)
	}
	return nil
}

func (s *CompanyService) Engineers(ctx context.Context) ([]domain.Engineer, error) {
	es, err := s.engineers.FindAll(ctx)
	if err != nil {
		return nil, domain.Internal("list engineers failed", err)
	}
	return es, nil
}

func (s *CompanyService) AddEngineer(ctx context.Context, companyID, name, photo string) (*domain.Engineer, error) {
	if name == "" {
		return nil, domain.Invalid("name is required")
	}
	e := &domain.Engineer{
		ID:        utils.NewID(),
		Name:      name,
		Photo:     photo,
		CompanyID: companyID,
	}
	if err := s.engineers.Create(ctx, e); err != nil {
		return nil, domain.Internal("create engineer failed", err)
	}
	if err := s.rels.Attach(ctx, domain.RelCompanyEngineers, companyID, e.ID); err != nil {
		return nil, domain.Internal("attach engineer to company failed", err)
	}
	return e, nil
}

// RemoveEngineer 先摘公司侧引用再删记录（与原型一致的顺序）
func (s *CompanyService) RemoveEngineer(ctx context.Context, companyID, engineerID string) error {
	if err := s.rels.Detach(ctx, domain.RelCompanyEngineers, companyID, engineerID); err != nil {
		return domain.Internal("detach engineer from company failed", err)
	}
	e, err := s.engineers.FindByID(ctx, engineerID)
	if err != nil {
		return domain.Internal("lookup engineer failed", err)
	}
	if e == nil {
		return domain.NotFound("engineer is not found")
	}
	if e.CompanyID != companyID {
		return domain.Forbidden("engineer belongs to another company")
	}
	if err := s.engineers.Delete(ctx, engineerID); err != nil {
		return domain.Internal("delete engineer failed", err)
	}
	return nil
}
