package handlers

import (
	"afrilance_backend/internal/middleware"
	"afrilance_backend/internal/models"
	"afrilance_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	*BaseHandler
	proposalService *services.ProposalService
}

func NewProposalHandler(base *BaseHandler, proposalService *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{BaseHandler: base, proposalService: proposalService}
}

func (h *ProposalHandler) RegisterRoutes(r *gin.RouterGroup) {
	proposals := r.Group("/proposals", middleware.AuthMiddleware())
	{
		proposals.GET("/my", middleware.RequireRoles(models.UserRoleFreelancer), h.ListMine)
	}
}

func (h *ProposalHandler) ListMine(c *gin.Context) {
	proposals, err := h.proposalService.ListByFreelancer(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, proposals)
}
