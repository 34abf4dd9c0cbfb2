package service

import (
	"context"
	"errors"
	"strings"

	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/pkg/utils"
)

// IdentityService 负责三类主体的注册/登录与资料维护。
// 令牌签发在 transport 层，这里只回答"这个人是谁、口令对不对"。
type IdentityService struct {
	users     domain.UserRepository
	companies domain.CompanyRepository
	admins    domain.AdminRepository
}

func NewIdentityService(users domain.UserRepository, companies domain.CompanyRepository, admins domain.AdminRepository) *IdentityService {
	return &IdentityService{users: users, companies: companies, admins: admins}
}

type SignupUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Avatar    string
}

func (s *IdentityService) SignupUser(ctx context.Context, in SignupUserInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.Invalid("email and password are required")
	}
	found, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.Internal("lookup user failed", err)
	}
	if found != nil {
		return nil, domain.Conflict("user already registered")
	}
	avatar := in.Avatar
	if avatar == "" {
		avatar = domain.DefaultAvatar
	}
	u := &domain.User{
		ID:           utils.NewID(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Avatar:       avatar,
		Likes:        domain.IDList{},
		Offers:       domain.IDList{},
	}
	if err := s.users.Create(ctx, u); err != nil {
		// 唯一索引兜底并发注册
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Conflict("user already registered")
		}
		return nil, domain.Internal("create user failed", err)
	}
	return u, nil
}

func (s *IdentityService) LoginUser(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, domain.Internal("lookup user failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.Unauthenticated("invalid credentials")
	}
	return u, nil
}

type UpdateUserInput struct {
	FirstName string
	LastName  string
	Avatar    string
	Password  string
}

func (s *IdentityService) UpdateUser(ctx context.Context, userID string, in UpdateUserInput) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, domain.NotFound("user not found")
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if in.Avatar != "" {
		u.Avatar = in.Avatar
	}
	if in.Password != "" {
		u.PasswordHash = utils.HashPassword(in.Password)
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, domain.Internal("update user failed", err)
	}
	return u, nil
}

type SignupCompanyInput struct {
	Name        string
	Description string
	Email       string
	Password    string
	Avatar      string
}

func (s *IdentityService) SignupCompany(ctx context.Context, in SignupCompanyInput) (*domain.Company, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.Invalid("email and password are required")
	}
	found, err := s.companies.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.Internal("lookup company failed", err)
	}
	if found != nil {
		return nil, domain.Conflict("company already registered")
	}
	c := &domain.Company{
		ID:           utils.NewID(),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Avatar:       in.Avatar,
		Verified:     false,
		Projects:     domain.IDList{},
		Offers:       domain.IDList{},
		Engineers:    domain.IDList{},
		Comments:     domain.IDList{},
	}
	if err := s.companies.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Conflict("company already registered")
		}
		return nil, domain.Internal("create company failed", err)
	}
	return c, nil
}

func (s *IdentityService) LoginCompany(ctx context.Context, email, password string) (*domain.Company, error) {
	c, err := s.companies.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, domain.Internal("lookup company failed", err)
	}
	if c == nil || !utils.CheckPassword(password, c.PasswordHash) {
		return nil, domain.Unauthenticated("invalid credentials")
	}
	return c, nil
}

type UpdateCompanyInput struct {
	Name        string
	Description string
	Avatar      string
	Password    string
}

func (s *IdentityService) UpdateCompany(ctx context.Context, companyID string, in UpdateCompanyInput) (*domain.Company, error) {
	c, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, domain.Internal("lookup company failed", err)
	}
	if c == nil {
		return nil, domain.NotFound("company not found")
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Description != "" {
		c.Description = in.Description
	}
	if in.Avatar != "" {
		c.Avatar = in.Avatar
	}
	if in.Password != "" {
		c.PasswordHash = utils.HashPassword(in.Password)
	}
	if err := s.companies.Update(ctx, c); err != nil {
		return nil, domain.Internal("update company failed", err)
	}
	return c, nil
}

func (s *IdentityService) LoginAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	a, err := s.admins.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, domain.Internal("lookup admin failed", err)
	}
	if a == nil || !utils.CheckPassword(password, a.PasswordHash) {
		return nil, domain.Unauthenticated("invalid credentials")
	}
	return a, nil
}

// SeedAdmin 启动期写入默认管理员，已存在则跳过
func (s *IdentityService) SeedAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	found, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if found != nil {
		return nil
	}
	return s.admins.Create(ctx, &domain.Admin{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword(password),
	})
}

// ActorExists 供鉴权中间件确认令牌主体仍然存在
func (s *IdentityService) ActorExists(ctx context.Context, role, id string) (bool, error) {
	switch role {
	case domain.RoleUser:
		u, err := s.users.FindByID(ctx, id)
		return u != nil, err
	case domain.RoleCompany:
		c, err := s.companies.FindByID(ctx, id)
		return c != nil, err
	case domain.RoleAdmin:
		a, err := s.admins.FindByID(ctx, id)
		return a != nil, err
	default:
		return false, nil
	}
}
