package service

import (
	"context"

	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/pkg/utils"
)

type ProjectService struct {
	users     domain.UserRepository
	companies domain.CompanyRepository
	projects  domain.ProjectRepository
	rels      domain.RelationStore
}

func NewProjectService(
	users domain.UserRepository,
	companies domain.CompanyRepository,
	projects domain.ProjectRepository,
	rels domain.RelationStore,
) *ProjectService {
	return &ProjectService{users: users, companies: companies, projects: projects, rels: rels}
}

type CreateProjectInput struct {
	Title       string
	Description string
	Photo       string
}

func (s *ProjectService) CreateProject(ctx context.Context, companyID string, in CreateProjectInput) (*domain.Project, error) {
	if in.Title == "" {
		return nil, domain.Invalid("title is required")
	}
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, domain.Internal("lookup company failed", err)
	}
	if company == nil {
		return nil, domain.NotFound("company not found")
	}
	p := &domain.Project{
		ID:          utils.NewID(),
		CompanyID:   companyID,
		Title:       in.Title,
		Description: in.Description,
		Photo:       in.Photo,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, domain.Internal("create project failed", err)
	}
	if err := s.rels.Attach(ctx, domain.RelCompanyProjects, companyID, p.ID); err != nil {
		return nil, domain.Internal("attach project to company failed", err)
	}
	return p, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, companyID, projectID string) error {
	p, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return domain.Internal("lookup project failed", err)
	}
	if p == nil {
		return domain.NotFound("project not found")
	}
	if p.CompanyID != companyID {
		return domain.Forbidden("project belongs to another company")
	}
	likers, err := s.users.FindByLikedProject(ctx, projectID)
	if err != nil {
		return domain.Internal("load project likers failed", err)
	}
	for _, u := range likers {
		if err := s.rels.Detach(ctx, domain.RelUserLikes, u.ID, projectID); err != nil {
			return domain.Internal("detach like failed", err)
		}
	}
	if err := s.rels.Detach(ctx, domain.RelCompanyProjects, companyID, projectID); err != nil {
		return domain.Internal("detach project from company failed", err)
	}
	if err := s.projects.Delete(ctx, projectID); err != nil {
		return domain.Internal("delete project failed", err)
	}
	return nil
}

func (s *ProjectService) Projects(ctx context.Context) ([]domain.Project, error) {
	ps, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, domain.Internal("list projects failed", err)
	}
	return ps, nil
}

func (s *ProjectService) Project(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("lookup project failed", err)
	}
	if p == nil {
		return nil, domain.NotFound("project not found")
	}
	return p, nil
}

func (s *ProjectService) LikeProject(ctx context.Context, userID, projectID string) error {
	p, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return domain.Internal("lookup project failed", err)
	}
	if p == nil {
		return domain.NotFound("project not found")
	}
	if err := s.rels.Attach(ctx, domain.RelUserLikes, userID, projectID); err != nil {
		return domain.Internal("attach like failed", err)
	}
	return nil
}

func (s *ProjectService) UnlikeProject(ctx context.Context, userID, projectID string) error {
	if err := s.rels.Detach(ctx, domain.RelUserLikes, userID, projectID); err != nil {
		return domain.Internal("detach like failed", err)
	}
	return nil
}
