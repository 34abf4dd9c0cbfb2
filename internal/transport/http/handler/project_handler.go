package handler

import (
	"github.com/gin-gonic/gin"

	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/internal/service"
	"go-gin-jobmarket/internal/transport/http/ez"
	"go-gin-jobmarket/internal/transport/http/middleware"
)

type ProjectHandler struct {
	Deps
	projects *service.ProjectService
}

func NewProjectHandler(d Deps, projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{Deps: d, projects: projects}
}

type createProjectIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
}

func (h *ProjectHandler) MountAPI(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[empty, []domain.Project]{
		Method: "GET", Path: "/projects", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) ([]domain.Project, error) {
			return h.projects.Projects(c.Request.Context())
		},
	})

	ez.Register(g, ez.Action[empty, *domain.Project]{
		Method: "GET", Path: "/projects/:projectId", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{middleware.ValidateID("projectId")},
		Handler: func(c *gin.Context, _ *empty) (*domain.Project, error) {
			return h.projects.Project(c.Request.Context(), c.Param("projectId"))
		},
	})

	ez.Register(g, ez.Action[createProjectIn, *domain.Project]{
		Method: "POST", Path: "/projects", Binder: ez.BindJSON,
		Middleware: []gin.HandlerFunc{h.authCompany()},
		Handler: func(c *gin.Context, in *createProjectIn) (*domain.Project, error) {
			return h.projects.CreateProject(c.Request.Context(), actorID(c), service.CreateProjectInput{
				Title: in.Title, Description: in.Description, Photo: in.Photo,
			})
		},
	})

	ez.Register(g, ez.Action[empty, empty]{
		Method: "DELETE", Path: "/projects/:projectId", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authCompany(), middleware.ValidateID("projectId")},
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			return empty{}, h.projects.DeleteProject(c.Request.Context(), actorID(c), c.Param("projectId"))
		},
	})

	ez.Register(g, ez.Action[empty, empty]{
		Method: "POST", Path: "/projects/:projectId/like", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authUser(), middleware.ValidateID("projectId")},
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			return empty{}, h.projects.LikeProject(c.Request.Context(), actorID(c), c.Param("projectId"))
		},
	})

	ez.Register(g, ez.Action[empty, empty]{
		Method: "DELETE", Path: "/projects/:projectId/like", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authUser(), middleware.ValidateID("projectId")},
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			return empty{}, h.projects.UnlikeProject(c.Request.Context(), actorID(c), c.Param("projectId"))
		},
	})
}
