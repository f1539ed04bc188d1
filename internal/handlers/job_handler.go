package handlers

import (
	"afrilance_backend/internal/middleware"
	"afrilance_backend/internal/models"
	"afrilance_backend/internal/services"
	"afrilance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService      *services.JobService
	proposalService *services.ProposalService
	contractService *services.ContractService
}

func NewJobHandler(
	base *BaseHandler,
	jobService *services.JobService,
	proposalService *services.ProposalService,
	contractService *services.ContractService,
) *JobHandler {
	return &JobHandler{
		BaseHandler:     base,
		jobService:      jobService,
		proposalService: proposalService,
		contractService: contractService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		// The job board and job detail are public.
		jobs.GET("", h.ListOpen)
		jobs.GET("/:jobId", h.Get)

		authed := jobs.Group("", middleware.AuthMiddleware())
		{
			authed.POST("", middleware.RequireRoles(models.UserRoleClient), h.Create)
			authed.GET("/my", middleware.RequireRoles(models.UserRoleClient), h.ListMine)
			authed.POST("/:jobId/apply", middleware.RequireRoles(models.UserRoleFreelancer), h.Apply)
			authed.GET("/:jobId/proposals", h.ListProposals)
			authed.POST("/:jobId/accept-proposal", middleware.RequireRoles(models.UserRoleClient), h.AcceptProposal)
		}
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, job)
}

func (h *JobHandler) ListOpen(c *gin.Context) {
	var query dto.ListJobsQuery
	if !h.BindQuery(c, &query) {
		return
	}
	if query.Page == 0 {
		query.Page, query.PageSize = h.ParsePagination(c)
	}

	jobs, total, err := h.jobService.ListOpen(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, dto.PagedResponse{
		Items:    jobs,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
}

func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.jobService.ListByClient(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.GetByID(h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.Apply(h.GetDB(c), c.Param("jobId"), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, proposal)
}

func (h *JobHandler) ListProposals(c *gin.Context) {
	proposals, err := h.jobService.ListProposals(
		h.GetDB(c), c.Param("jobId"), middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, proposals)
}

func (h *JobHandler) AcceptProposal(c *gin.Context) {
	var req dto.AcceptProposalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.contractService.AcceptProposal(h.GetDB(c), c.Param("jobId"), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}
