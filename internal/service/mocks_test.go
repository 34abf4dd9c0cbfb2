package service

import (
	"context"
	"sort"
	"sync"

	"go-gin-jobmarket/internal/domain"
)

// memStore 内存版存储，按真实 repo 的约定行事：
// 查不到返回 (nil, nil)，唯一键冲突返回错误。
type memStore struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	companies map[string]*domain.Company
	admins    map[string]*domain.Admin
	projects  map[string]*domain.Project
	offers    map[string]*domain.Offer
	comments  map[string]*domain.Comment
	engineers map[string]*domain.Engineer
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]*domain.User{},
		companies: map[string]*domain.Company{},
		admins:    map[string]*domain.Admin{},
		projects:  map[string]*domain.Project{},
		offers:    map[string]*domain.Offer{},
		comments:  map[string]*domain.Comment{},
		engineers: map[string]*domain.Engineer{},
	}
}

// ---- UserRepository ----

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.users {
		if v.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByLikedProject(_ context.Context, projectID string) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.User
	for _, u := range r.s.users {
		if u.Likes.Has(projectID) {
			out = append(out, *u)
		}
	}
	sortUsers(out)
	return out, nil
}

func (r memUsers) Update(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func sortUsers(us []domain.User) {
	sort.Slice(us, func(i, j int) bool { return us[i].ID < us[j].ID })
}

// ---- CompanyRepository ----

type memCompanies struct{ s *memStore }

func (r memCompanies) Create(_ context.Context, c *domain.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.companies {
		if v.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r memCompanies) FindByID(_ context.Context, id string) (*domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r memCompanies) FindByEmail(_ context.Context, email string) (*domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memCompanies) FindVerified(_ context.Context) ([]domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Company
	for _, c := range r.s.companies {
		if c.Verified {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r memCompanies) FindAll(_ context.Context) ([]domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Company
	for _, c := range r.s.companies {
		out = append(out, *c)
	}
	return out, nil
}

func (r memCompanies) Update(_ context.Context, c *domain.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r memCompanies) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.companies, id)
	return nil
}

// ---- AdminRepository ----

type memAdmins struct{ s *memStore }

func (r memAdmins) Create(_ context.Context, a *domain.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.admins[a.ID] = &cp
	return nil
}

func (r memAdmins) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a, ok := r.s.admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r memAdmins) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// ---- ProjectRepository ----

type memProjects struct{ s *memStore }

func (r memProjects) Create(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}

func (r memProjects) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r memProjects) FindByIDs(_ context.Context, ids []string) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Project
	for _, id := range ids {
		if p, ok := r.s.projects[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r memProjects) FindByCompany(_ context.Context, companyID string) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Project
	for _, p := range r.s.projects {
		if p.CompanyID == companyID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r memProjects) FindByOffer(_ context.Context, offerID string) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Project
	for _, p := range r.s.projects {
		if p.OfferID == offerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r memProjects) FindAll(_ context.Context) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Project
	for _, p := range r.s.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r memProjects) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.projects, id)
	return nil
}

func (r memProjects) DeleteByCompany(_ context.Context, companyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.projects {
		if p.CompanyID == companyID {
			delete(r.s.projects, id)
		}
	}
	return nil
}

func (r memProjects) DeleteByOffer(_ context.Context, offerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.projects {
		if p.OfferID == offerID {
			delete(r.s.projects, id)
		}
	}
	return nil
}

// ---- OfferRepository ----

type memOffers struct{ s *memStore }

func (r memOffers) Create(_ context.Context, o *domain.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.offers {
		if v.UserID == o.UserID && v.ProjectID == o.ProjectID {
			return domain.ErrDuplicate
		}
	}
	cp := *o
	r.s.offers[o.ID] = &cp
	return nil
}

func (r memOffers) FindByID(_ context.Context, id string) (*domain.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if o, ok := r.s.offers[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r memOffers) FindByIDs(_ context.Context, ids []string) ([]domain.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Offer
	for _, id := range ids {
		if o, ok := r.s.offers[id]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r memOffers) FindByCompany(_ context.Context, companyID string) ([]domain.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Offer
	for _, o := range r.s.offers {
		if o.CompanyID == companyID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r memOffers) Update(_ context.Context, o *domain.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *o
	r.s.offers[o.ID] = &cp
	return nil
}

func (r memOffers) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.offers, id)
	return nil
}

func (r memOffers) DeleteByCompany(_ context.Context, companyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, o := range r.s.offers {
		if o.CompanyID == companyID {
			delete(r.s.offers, id)
		}
	}
	return nil
}

// ---- CommentRepository ----

type memComments struct{ s *memStore }

func (r memComments) Create(_ context.Context, c *domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.comments[c.ID] = &cp
	return nil
}

func (r memComments) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.comments[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r memComments) FindByIDs(_ context.Context, ids []string) ([]domain.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Comment
	for _, id := range ids {
		if c, ok := r.s.comments[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r memComments) Update(_ context.Context, c *domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.comments[c.ID] = &cp
	return nil
}

func (r memComments) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.comments, id)
	return nil
}

func (r memComments) DeleteByCompany(_ context.Context, companyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, c := range r.s.comments {
		if c.CompanyID == companyID {
			delete(r.s.comments, id)
		}
	}
	return nil
}

// ---- EngineerRepository ----

type memEngineers struct{ s *memStore }

func (r memEngineers) Create(_ context.Context, e *domain.Engineer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.engineers[e.ID] = &cp
	return nil
}

func (r memEngineers) FindByID(_ context.Context, id string) (*domain.Engineer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e, ok := r.s.engineers[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (r memEngineers) FindByIDs(_ context.Context, ids []string) ([]domain.Engineer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Engineer
	for _, id := range ids {
		if e, ok := r.s.engineers[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r memEngineers) FindAll(_ context.Context) ([]domain.Engineer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Engineer
	for _, e := range r.s.engineers {
		out = append(out, *e)
	}
	return out, nil
}

func (r memEngineers) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.engineers, id)
	return nil
}

func (r memEngineers) DeleteByCompany(_ context.Context, companyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, e := range r.s.engineers {
		if e.CompanyID == companyID {
			delete(r.s.engineers, id)
		}
	}
	return nil
}

// ---- RelationStore ----

type memRelations struct{ s *memStore }

func (r memRelations) Attach(_ context.Context, rel domain.Relation, ownerID, childID string) error {
	return r.mutate(rel, ownerID, func(l domain.IDList) domain.IDList { return l.Add(childID) })
}

func (r memRelations) Detach(_ context.Context, rel domain.Relation, ownerID, childID string) error {
	return r.mutate(rel, ownerID, func(l domain.IDList) domain.IDList { return l.Remove(childID) })
}

func (r memRelations) mutate(rel domain.Relation, ownerID string, fn func(domain.IDList) domain.IDList) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	switch rel {
	case domain.RelCompanyProjects, domain.RelCompanyOffers, domain.RelCompanyEngineers, domain.RelCompanyComments:
		c, ok := r.s.companies[ownerID]
		if !ok {
			return domain.NotFound("owner not found")
		}
		switch rel {
		case domain.RelCompanyProjects:
			c.Projects = fn(c.Projects)
		case domain.RelCompanyOffers:
			c.Offers = fn(c.Offers)
		case domain.RelCompanyEngineers:
			c.Engineers = fn(c.Engineers)
		case domain.RelCompanyComments:
			c.Comments = fn(c.Comments)
		}
	case domain.RelUserOffers, domain.RelUserLikes:
		u, ok := r.s.users[ownerID]
		if !ok {
			return domain.NotFound("owner not found")
		}
		if rel == domain.RelUserOffers {
			u.Offers = fn(u.Offers)
		} else {
			u.Likes = fn(u.Likes)
		}
	}
	return nil
}

// fixture 一套接好内存存储的服务，测试共用
type fixture struct {
	store    *memStore
	identity *IdentityService
	users    *UserService
	company  *CompanyService
	project  *ProjectService
	offer    *OfferService
	comment  *CommentService
}

func newFixture() *fixture {
	s := newMemStore()
	users := memUsers{s}
	companies := memCompanies{s}
	admins := memAdmins{s}
	projects := memProjects{s}
	offers := memOffers{s}
	comments := memComments{s}
	engineers := memEngineers{s}
	rels := memRelations{s}

	return &fixture{
		store:    s,
		identity: NewIdentityService(users, companies, admins),
		users:    NewUserService(users, projects, offers),
		company:  NewCompanyService(users, companies, projects, offers, comments, engineers, rels),
		project:  NewProjectService(users, companies, projects, rels),
		offer:    NewOfferService(users, companies, projects, offers, rels),
		comment:  NewCommentService(companies, comments, rels),
	}
}

// seedCompany / seedUser 直接写库，绕过注册流程
func (f *fixture) seedCompany(id string, verified bool) *domain.Company {
	c := &domain.Company{ID: id, Name: "co-" + id, Email: id + "@co.test", Verified: verified}
	f.store.companies[id] = c
	return c
}

func (f *fixture) seedUser(id string) *domain.User {
	u := &domain.User{ID: id, FirstName: "u", LastName: id, Email: id + "@u.test"}
	f.store.users[id] = u
	return u
}
