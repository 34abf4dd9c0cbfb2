package middleware

import (
	"github.com/gin-gonic/gin"

	resp "go-gin-jobmarket/internal/transport/http/response"
	"go-gin-jobmarket/pkg/utils"
)

// ValidateID 在进存储层之前拦下畸形的路径 id
func ValidateID(params ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range params {
			if !utils.IsID(c.Param(p)) {
				resp.AbortFail(c, resp.CodeBadRequest, "the path param "+p+" is not a valid id")
				return
			}
		}
		c.Next()
	}
}
