package handlers

import "github.com/gin-gonic/gin"

// AppHandlers collects every route-owning handler.
type AppHandlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Job      *JobHandler
	Proposal *ProposalHandler
	Contract *ContractHandler
	Wallet   *WalletHandler
}

// RegisterAll mounts every handler's routes onto the group.
func (h *AppHandlers) RegisterAll(r *gin.RouterGroup) {
	h.Auth.RegisterRoutes(r)
	h.User.RegisterRoutes(r)
	h.Job.RegisterRoutes(r)
	h.Proposal.RegisterRoutes(r)
	h.Contract.RegisterRoutes(r)
	h.Wallet.RegisterRoutes(r)
}
