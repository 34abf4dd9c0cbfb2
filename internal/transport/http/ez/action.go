package ez

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	resp "go-gin-jobmarket/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// Action 非 CRUD 一行注册：I 入参，O 出参。
// 鉴权/参数校验通过 Middleware 挂在动作前。
type Action[I any, O any] struct {
	Method     string // "GET" | "POST" | "PUT" | "DELETE"
	Path       string // 例："/users/login"、"/offers/:offerId/answer"
	Binder     Binder
	Middleware []gin.HandlerFunc
	Handler    func(c *gin.Context, in *I) (O, error)
}

func Register[I any, O any](g *gin.RouterGroup, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			resp.Fail(c, resp.CodeBadRequest, bindErr.Error())
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			resp.FailErr(c, err)
			return
		}
		resp.Success(c, out)
	}

	chain := append(append([]gin.HandlerFunc{}, a.Middleware...), h)
	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		g.GET(a.Path, chain...)
	case http.MethodPut:
		g.PUT(a.Path, chain...)
	case http.MethodDelete:
		g.DELETE(a.Path, chain...)
	default: // 默认 POST
		g.POST(a.Path, chain...)
	}
}
