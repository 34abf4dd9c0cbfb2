package handler

import (
	"github.com/gin-gonic/gin"

	"go-gin-jobmarket/internal/core/auth"
	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/internal/transport/http/middleware"
)

// Deps 各 handler 共享的依赖，路由装配时一次性注入
type Deps struct {
	JWT    *auth.JWTer
	Actors middleware.ActorSource
}

func (d Deps) authUser() gin.HandlerFunc    { return middleware.AuthJWT(d.JWT, d.Actors, domain.RoleUser) }
func (d Deps) authCompany() gin.HandlerFunc { return middleware.AuthJWT(d.JWT, d.Actors, domain.RoleCompany) }
func (d Deps) authAdmin() gin.HandlerFunc   { return middleware.AuthJWT(d.JWT, d.Actors, domain.RoleAdmin) }

// actorID 从 AuthJWT 写入的 context 里取当前主体 id
func actorID(c *gin.Context) string { return c.GetString(middleware.KeyActorID) }

type empty struct{}
