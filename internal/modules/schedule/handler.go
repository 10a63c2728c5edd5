package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"joyit/internal/modules/credit"
	"joyit/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedules", h.List)
	rg.POST("/schedules", h.Create)
	rg.GET("/schedules/:id", h.Get)
	rg.PUT("/schedules/:id", h.Update)
	rg.POST("/schedules/:id/cancel", h.Cancel)
	rg.DELETE("/schedules/:id", h.Delete)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedules", h.ListAll)
}

func (h *Handler) Create(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sched, err := h.service.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, sched)
}

func (h *Handler) Get(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, ok := parseID(c)
	if !ok {
		return
	}

	sched, err := h.service.GetByID(c.Request.Context(), id, companyID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, sched)
}

func (h *Handler) List(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	limit, offset := pagination(c)
	items, err := h.service.ListByCompany(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list schedules")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedules": items})
}

func (h *Handler) ListAll(c *gin.Context) {
	limit, offset := pagination(c)
	items, err := h.service.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list schedules")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedules": items})
}

func (h *Handler) Update(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sched, err := h.service.Update(c.Request.Context(), id, companyID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, sched)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) Cancel(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req cancelRequest
	_ = c.ShouldBindJSON(&req)

	sched, err := h.service.Cancel(c.Request.Context(), id, companyID, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, sched)
}

func (h *Handler) Delete(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, companyID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid schedule data")
	case errors.Is(err, ErrActivityNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Activity not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Schedule not found")
	case errors.Is(err, ErrNoSubscription):
		response.Error(c, http.StatusBadRequest, "NO_SUBSCRIPTION", "Company has no active subscription")
	case errors.Is(err, ErrNotInPlan):
		response.Error(c, http.StatusBadRequest, "NOT_IN_PLAN", "Activity is not part of the subscribed plan")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Operation not allowed in current status")
	case errors.Is(err, credit.ErrInsufficientCredit):
		response.Error(c, http.StatusBadRequest, "INSUFFICIENT_CREDIT", "Not enough credit to book this activity")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process schedule")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid schedule id")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
