package handler

import (
	"github.com/gin-gonic/gin"

	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/internal/service"
	"go-gin-jobmarket/internal/transport/http/ez"
	"go-gin-jobmarket/internal/transport/http/middleware"
)

type CommentHandler struct {
	Deps
	comments *service.CommentService
}

func NewCommentHandler(d Deps, comments *service.CommentService) *CommentHandler {
	return &CommentHandler{Deps: d, comments: comments}
}

type commentIn struct {
	Comment string `json:"comment" binding:"required"`
}

func (h *CommentHandler) MountAPI(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[commentIn, *domain.Comment]{
		Method: "POST", Path: "/companies/:companyId/comments", Binder: ez.BindJSON,
		Middleware: []gin.HandlerFunc{h.authUser(), middleware.ValidateID("companyId")},
		Handler: func(c *gin.Context, in *commentIn) (*domain.Comment, error) {
			return h.comments.AddComment(c.Request.Context(), c.Param("companyId"), actorID(c), in.Comment)
		},
	})

	ez.Register(g, ez.Action[commentIn, *domain.Comment]{
		Method: "PUT", Path: "/companies/:companyId/comments/:commentId", Binder: ez.BindJSON,
		Middleware: []gin.HandlerFunc{h.authUser(), middleware.ValidateID("companyId", "commentId")},
		Handler: func(c *gin.Context, in *commentIn) (*domain.Comment, error) {
			return h.comments.EditComment(c.Request.Context(), actorID(c),
				c.Param("companyId"), c.Param("commentId"), in.Comment)
		},
	})

	ez.Register(g, ez.Action[empty, empty]{
		Method: "DELETE", Path: "/companies/:companyId/comments/:commentId", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authUser(), middleware.ValidateID("companyId", "commentId")},
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			return empty{}, h.comments.DeleteComment(c.Request.Context(), actorID(c),
				c.Param("companyId"), c.Param("commentId"))
		},
	})
}
