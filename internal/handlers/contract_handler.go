package handlers

import (
	"afrilance_backend/internal/middleware"
	"afrilance_backend/internal/services"
	"afrilance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	*BaseHandler
	contractService *services.ContractService
	statsService    *services.StatsService
}

func NewContractHandler(base *BaseHandler, contractService *services.ContractService, statsService *services.StatsService) *ContractHandler {
	return &ContractHandler{BaseHandler: base, contractService: contractService, statsService: statsService}
}

func (h *ContractHandler) RegisterRoutes(r *gin.RouterGroup) {
	contracts := r.Group("/contracts", middleware.AuthMiddleware())
	{
		contracts.GET("", h.List)
		contracts.GET("/stats", h.Stats)
		contracts.GET("/:contractId", h.Get)
		contracts.PATCH("/:contractId/status", h.UpdateStatus)
	}
}

func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.contractService.List(h.GetDB(c), middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, contracts)
}

func (h *ContractHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.ContractStats(
		c.Request.Context(), h.GetDB(c), middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}

func (h *ContractHandler) Get(c *gin.Context) {
	contract, err := h.contractService.GetByID(
		h.GetDB(c), c.Param("contractId"), middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, contract)
}

func (h *ContractHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateContractStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contractService.UpdateStatus(
		h.GetDB(c), c.Param("contractId"), middleware.GetUserID(c), middleware.GetUserRole(c), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, contract)
}
