package handlers

import (
	"afrilance_backend/internal/middleware"
	"afrilance_backend/internal/models"
	"afrilance_backend/internal/services"
	"afrilance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService  *services.UserService
	statsService *services.StatsService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService, statsService *services.StatsService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService, statsService: statsService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users", middleware.AuthMiddleware())
	{
		users.GET("/me", h.Me)
	}

	admin := r.Group("/admin", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.List)
		admin.PATCH("/users/:userId/verify", h.Verify)
		admin.GET("/stats/platform", h.PlatformStats)
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.GetByID(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ToUserResponse(user))
}

func (h *UserHandler) List(c *gin.Context) {
	var query dto.ListUsersQuery
	if !h.BindQuery(c, &query) {
		return
	}
	if query.Page == 0 {
		query.Page, query.PageSize = h.ParsePagination(c)
	}

	users, total, err := h.userService.List(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.ToUserResponse(&users[i]))
	}

	h.OK(c, dto.PagedResponse{
		Items:    responses,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
}

func (h *UserHandler) Verify(c *gin.Context) {
	user, err := h.userService.Verify(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, dto.ToUserResponse(user))
}

func (h *UserHandler) PlatformStats(c *gin.Context) {
	stats, err := h.statsService.PlatformStats(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}
