package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-jobmarket/internal/core/server"
	mdw "go-gin-jobmarket/internal/transport/http/middleware"
)

// NewAdminEngine 管理端引擎，独立端口部署。
// 基座走 ginzap + cors，/login 公开，其余路由由模块自己挂 admin 鉴权。
func NewAdminEngine(l *zap.Logger) *gin.Engine {
	r := server.NewRouter(l)

	r.Use(
		mdw.RequestID(),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	MountAllAdmin(admin)

	return r
}
