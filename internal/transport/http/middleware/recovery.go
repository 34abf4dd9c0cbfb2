package middleware

import (
	"github.com/gin-gonic/gin"

	resp "go-gin-jobmarket/internal/transport/http/response"
)

func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				resp.AbortFail(c, resp.CodeServerError, "internal error")
			}
		}()
		c.Next()
	}
}
