package handlers

import (
	"afrilance_backend/internal/middleware"
	"afrilance_backend/internal/models"
	"afrilance_backend/internal/services"
	"afrilance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	*BaseHandler
	walletService   *services.WalletService
	contractService *services.ContractService
}

func NewWalletHandler(base *BaseHandler, walletService *services.WalletService, contractService *services.ContractService) *WalletHandler {
	return &WalletHandler{BaseHandler: base, walletService: walletService, contractService: contractService}
}

func (h *WalletHandler) RegisterRoutes(r *gin.RouterGroup) {
	wallet := r.Group("/wallet", middleware.AuthMiddleware())
	{
		wallet.GET("", middleware.RequireRoles(models.UserRoleFreelancer), h.Get)
		wallet.POST("/withdraw", middleware.RequireRoles(models.UserRoleFreelancer), h.Withdraw)
		wallet.GET("/transactions", middleware.RequireRoles(models.UserRoleFreelancer), h.Transactions)
		wallet.POST("/release-escrow", middleware.RequireRoles(models.UserRoleAdmin), h.ReleaseEscrow)
	}
}

func (h *WalletHandler) Get(c *gin.Context) {
	wallet, err := h.walletService.GetOrCreate(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toWalletResponse(wallet))
}

func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	wallet, err := h.walletService.Withdraw(h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, toWalletResponse(wallet))
}

func (h *WalletHandler) Transactions(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)

	txs, total, err := h.walletService.ListTransactions(h.GetDB(c), middleware.GetUserID(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, dto.PagedResponse{
		Items:    txs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *WalletHandler) ReleaseEscrow(c *gin.Context) {
	var req dto.ReleaseEscrowRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contractService.ReleaseEscrow(h.GetDB(c), req.ContractID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, contract)
}

func toWalletResponse(w *models.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		ID:               w.ID,
		UserID:           w.UserID,
		AvailableBalance: w.AvailableBalance,
		EscrowBalance:    w.EscrowBalance,
	}
}
