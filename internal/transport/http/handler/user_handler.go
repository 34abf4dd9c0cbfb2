package handler

import (
	"github.com/gin-gonic/gin"

	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/internal/service"
	"go-gin-jobmarket/internal/transport/http/ez"
)

type UserHandler struct {
	Deps
	identity *service.IdentityService
	users    *service.UserService
}

func NewUserHandler(d Deps, identity *service.IdentityService, users *service.UserService) *UserHandler {
	return &UserHandler{Deps: d, identity: identity, users: users}
}

type signupUserIn struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Avatar    string `json:"avatar"`
}

type loginIn struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// tokenOut 登录/注册统一返回：令牌 + 主体
type tokenOut struct {
	Token string `json:"token"`
	Actor any    `json:"actor"`
}

type updateUserIn struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
	Password  string `json:"password"`
}

func (h *UserHandler) MountAPI(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[signupUserIn, tokenOut]{
		Method: "POST", Path: "/users/signup", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *signupUserIn) (tokenOut, error) {
			u, err := h.identity.SignupUser(c.Request.Context(), service.SignupUserInput{
				FirstName: in.FirstName, LastName: in.LastName,
				Email: in.Email, Password: in.Password, Avatar: in.Avatar,
			})
			if err != nil {
				return tokenOut{}, err
			}
			return h.issue(u.ID, u)
		},
	})

	ez.Register(g, ez.Action[loginIn, tokenOut]{
		Method: "POST", Path: "/users/login", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (tokenOut, error) {
			u, err := h.identity.LoginUser(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return tokenOut{}, err
			}
			return h.issue(u.ID, u)
		},
	})

	ez.Register(g, ez.Action[empty, *service.UserProfile]{
		Method: "GET", Path: "/users/me", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authUser()},
		Handler: func(c *gin.Context, _ *empty) (*service.UserProfile, error) {
			return h.users.Profile(c.Request.Context(), actorID(c))
		},
	})

	ez.Register(g, ez.Action[updateUserIn, any]{
		Method: "PUT", Path: "/users/me", Binder: ez.BindJSON,
		Middleware: []gin.HandlerFunc{h.authUser()},
		Handler: func(c *gin.Context, in *updateUserIn) (any, error) {
			return h.identity.UpdateUser(c.Request.Context(), actorID(c), service.UpdateUserInput{
				FirstName: in.FirstName, LastName: in.LastName,
				Avatar: in.Avatar, Password: in.Password,
			})
		},
	})
}

func (h *UserHandler) issue(id string, actor any) (tokenOut, error) {
	t, err := h.JWT.Issue(id, domain.RoleUser)
	if err != nil {
		return tokenOut{}, err
	}
	return tokenOut{Token: t, Actor: actor}, nil
}
