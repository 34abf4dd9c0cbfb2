package handler

import (
	"github.com/gin-gonic/gin"

	"go-gin-jobmarket/internal/core/cache"
	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/internal/service"
	"go-gin-jobmarket/internal/transport/http/ez"
	"go-gin-jobmarket/internal/transport/http/middleware"
)

// AdminHandler 挂在独立的 admin 引擎上，与公网 API 分端口部署
type AdminHandler struct {
	Deps
	identity  *service.IdentityService
	companies *service.CompanyService
	cache     *cache.Cache
}

func NewAdminHandler(d Deps, identity *service.IdentityService, companies *service.CompanyService, c *cache.Cache) *AdminHandler {
	return &AdminHandler{Deps: d, identity: identity, companies: companies, cache: c}
}

func (h *AdminHandler) MountAdmin(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[loginIn, tokenOut]{
		Method: "POST", Path: "/login", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (tokenOut, error) {
			a, err := h.identity.LoginAdmin(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return tokenOut{}, err
			}
			t, err := h.JWT.Issue(a.ID, domain.RoleAdmin)
			if err != nil {
				return tokenOut{}, err
			}
			return tokenOut{Token: t, Actor: a}, nil
		},
	})

	// 管理端看全量，含未验证的公司
	ez.Register(g, ez.Action[empty, []domain.Company]{
		Method: "GET", Path: "/companies", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authAdmin()},
		Handler: func(c *gin.Context, _ *empty) ([]domain.Company, error) {
			return h.companies.AllCompanies(c.Request.Context())
		},
	})

	ez.Register(g, ez.Action[empty, *domain.Company]{
		Method: "POST", Path: "/companies/:companyId/verify", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authAdmin(), middleware.ValidateID("companyId")},
		Handler: func(c *gin.Context, _ *empty) (*domain.Company, error) {
			co, err := h.companies.VerifyCompany(c.Request.Context(), c.Param("companyId"))
			if err == nil {
				h.invalidate(c)
			}
			return co, err
		},
	})

	ez.Register(g, ez.Action[empty, empty]{
		Method: "DELETE", Path: "/companies/:companyId", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authAdmin(), middleware.ValidateID("companyId")},
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			err := h.companies.DeleteCompany(c.Request.Context(), c.Param("companyId"))
			if err == nil {
				h.invalidate(c)
			}
			return empty{}, err
		},
	})
}

func (h *AdminHandler) invalidate(c *gin.Context) {
	if h.cache != nil {
		h.cache.Del(c.Request.Context(), KeyVerifiedCompanies)
	}
}
