package handlers

import (
	"net/http"
	"strconv"

	apivalidator "afrilance_backend/internal/validator"
	"afrilance_backend/pkg/apperrors"
	"afrilance_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the pieces every handler needs. Concrete handlers
// embed it.
type BaseHandler struct {
	Validator *apivalidator.Validator
}

func NewBaseHandler(v *apivalidator.Validator) *BaseHandler {
	return &BaseHandler{Validator: v}
}

// GetDB extracts the per-request gorm handle installed by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	return contextkeys.DBFromContext(c.Request.Context())
}

// BindAndValidateJSON decodes the body into obj and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := h.Validator.Validate(obj); err != nil {
		if ve, ok := err.(*apivalidator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}
	return true
}

// BindQuery decodes query params into obj.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return true
}

// HandleServiceError funnels a service error into the response envelope.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// OK writes a 200 with the payload.
func (h *BaseHandler) OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 with the payload.
func (h *BaseHandler) Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// ParsePagination reads page/page_size with sane defaults and caps.
func (h *BaseHandler) ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
