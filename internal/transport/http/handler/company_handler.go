package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"go-gin-jobmarket/internal/core/cache"
	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/internal/service"
	"go-gin-jobmarket/internal/transport/http/ez"
	"go-gin-jobmarket/internal/transport/http/middleware"
)

// 已验证公司列表的缓存键；verify / 删除公司后由 admin 侧失效
const KeyVerifiedCompanies = "companies:verified"

type CompanyHandler struct {
	Deps
	identity  *service.IdentityService
	companies *service.CompanyService
	cache     *cache.Cache
}

func NewCompanyHandler(d Deps, identity *service.IdentityService, companies *service.CompanyService, c *cache.Cache) *CompanyHandler {
	return &CompanyHandler{Deps: d, identity: identity, companies: companies, cache: c}
}

type signupCompanyIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Avatar      string `json:"avatar"`
}

type updateCompanyIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	Password    string `json:"password"`
}

type addEngineerIn struct {
	Name  string `json:"name" binding:"required"`
	Photo string `json:"photo"`
}

func (h *CompanyHandler) MountAPI(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[signupCompanyIn, tokenOut]{
		Method: "POST", Path: "/companies/signup", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *signupCompanyIn) (tokenOut, error) {
			co, err := h.identity.SignupCompany(c.Request.Context(), service.SignupCompanyInput{
				Name: in.Name, Description: in.Description,
				Email: in.Email, Password: in.Password, Avatar: in.Avatar,
			})
			if err != nil {
				return tokenOut{}, err
			}
			return h.issue(co.ID, co)
		},
	})

	ez.Register(g, ez.Action[loginIn, tokenOut]{
		Method: "POST", Path: "/companies/login", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (tokenOut, error) {
			co, err := h.identity.LoginCompany(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return tokenOut{}, err
			}
			return h.issue(co.ID, co)
		},
	})

	// 公开列表只露已验证的公司，短 TTL 缓存扛浏览流量
	ez.Register(g, ez.Action[empty, []domain.Company]{
		Method: "GET", Path: "/companies", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) ([]domain.Company, error) {
			if h.cache == nil {
				return h.companies.VerifiedCompanies(c.Request.Context())
			}
			return cache.GetOrLoadJSON(h.cache, c.Request.Context(), KeyVerifiedCompanies, 30*time.Second,
				h.companies.VerifiedCompanies)
		},
	})

	ez.Register(g, ez.Action[empty, *service.CompanyProfile]{
		Method: "GET", Path: "/companies/me", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authCompany()},
		Handler: func(c *gin.Context, _ *empty) (*service.CompanyProfile, error) {
			return h.companies.Profile(c.Request.Context(), actorID(c))
		},
	})

	ez.Register(g, ez.Action[updateCompanyIn, any]{
		Method: "PUT", Path: "/companies/me", Binder: ez.BindJSON,
		Middleware: []gin.HandlerFunc{h.authCompany()},
		Handler: func(c *gin.Context, in *updateCompanyIn) (any, error) {
			return h.identity.UpdateCompany(c.Request.Context(), actorID(c), service.UpdateCompanyInput{
				Name: in.Name, Description: in.Description,
				Avatar: in.Avatar, Password: in.Password,
			})
		},
	})

	ez.Register(g, ez.Action[empty, *service.CompanyProfile]{
		Method: "GET", Path: "/companies/:companyId", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{middleware.ValidateID("companyId")},
		Handler: func(c *gin.Context, _ *empty) (*service.CompanyProfile, error) {
			return h.companies.Profile(c.Request.Context(), c.Param("companyId"))
		},
	})

	ez.Register(g, ez.Action[empty, []domain.Engineer]{
		Method: "GET", Path: "/engineers", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) ([]domain.Engineer, error) {
			return h.companies.Engineers(c.Request.Context())
		},
	})

	ez.Register(g, ez.Action[addEngineerIn, *domain.Engineer]{
		Method: "POST", Path: "/engineers", Binder: ez.BindJSON,
		Middleware: []gin.HandlerFunc{h.authCompany()},
		Handler: func(c *gin.Context, in *addEngineerIn) (*domain.Engineer, error) {
			return h.companies.AddEngineer(c.Request.Context(), actorID(c), in.Name, in.Photo)
		},
	})

	ez.Register(g, ez.Action[empty, empty]{
		Method: "DELETE", Path: "/engineers/:engineerId", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authCompany(), middleware.ValidateID("engineerId")},
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			return empty{}, h.companies.RemoveEngineer(c.Request.Context(), actorID(c), c.Param("engineerId"))
		},
	})
}

func (h *CompanyHandler) issue(id string, actor any) (tokenOut, error) {
	t, err := h.JWT.Issue(id, domain.RoleCompany)
	if err != nil {
		return tokenOut{}, err
	}
	return tokenOut{Token: t, Actor: actor}, nil
}
