package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"go-gin-jobmarket/internal/core/auth"
	resp "go-gin-jobmarket/internal/transport/http/response"
)

const (
	KeyActorID = "actorId"
	KeyRole    = "role"
)

// ActorSource 回答令牌主体是否仍然存在（注销/封禁后令牌立即失效）
type ActorSource interface {
	ActorExists(ctx context.Context, role, id string) (bool, error)
}

// AuthJWT 鉴权 + 角色门禁。只往 context 写身份，绝不改状态。
func AuthJWT(j *auth.JWTer, actors ActorSource, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortFail(c, resp.CodeUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortFail(c, resp.CodeUnauthorized, "invalid token")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.AbortFail(c, resp.CodeForbidden, "forbidden")
			return
		}
		if actors != nil {
			ok, err := actors.ActorExists(c.Request.Context(), claims.Role, claims.UID)
			if err != nil {
				resp.AbortFail(c, resp.CodeServerError, "auth lookup failed")
				return
			}
			if !ok {
				resp.AbortFail(c, resp.CodeForbidden, "actor no longer exists")
				return
			}
		}
		c.Set("claims", claims)
		c.Set(KeyActorID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
