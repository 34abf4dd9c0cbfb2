package handler

import (
	"github.com/gin-gonic/gin"

	"go-gin-jobmarket/internal/domain"
	"go-gin-jobmarket/internal/service"
	"go-gin-jobmarket/internal/transport/http/ez"
	"go-gin-jobmarket/internal/transport/http/middleware"
)

type OfferHandler struct {
	Deps
	offers *service.OfferService
}

func NewOfferHandler(d Deps, offers *service.OfferService) *OfferHandler {
	return &OfferHandler{Deps: d, offers: offers}
}

type sendOfferIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type answerOfferIn struct {
	Status string `json:"status" binding:"required"`
}

func (h *OfferHandler) MountAPI(g *gin.RouterGroup) {
	ez.Register(g, ez.Action[sendOfferIn, *domain.Offer]{
		Method: "POST", Path: "/companies/:companyId/projects/:projectId/offers", Binder: ez.BindJSON,
		Middleware: []gin.HandlerFunc{h.authUser(), middleware.ValidateID("companyId", "projectId")},
		Handler: func(c *gin.Context, in *sendOfferIn) (*domain.Offer, error) {
			return h.offers.SendOffer(c.Request.Context(), actorID(c),
				c.Param("companyId"), c.Param("projectId"),
				service.SendOfferInput{Title: in.Title, Description: in.Description})
		},
	})

	ez.Register(g, ez.Action[answerOfferIn, *domain.Offer]{
		Method: "POST", Path: "/offers/:offerId/answer", Binder: ez.BindJSON,
		Middleware: []gin.HandlerFunc{h.authCompany(), middleware.ValidateID("offerId")},
		Handler: func(c *gin.Context, in *answerOfferIn) (*domain.Offer, error) {
			return h.offers.AnswerOffer(c.Request.Context(), actorID(c), c.Param("offerId"), in.Status)
		},
	})

	ez.Register(g, ez.Action[empty, empty]{
		Method: "DELETE", Path: "/offers/:offerId", Binder: ez.BindNone,
		Middleware: []gin.HandlerFunc{h.authCompany(), middleware.ValidateID("offerId")},
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			return empty{}, h.offers.DeleteOffer(c.Request.Context(), actorID(c), c.Param("offerId"))
		},
	})
}
