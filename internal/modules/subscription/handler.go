package subscription

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"joyit/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/subscription", h.Current)
	rg.POST("/subscription", h.Subscribe)
}

func (h *Handler) Subscribe(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), companyID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Plan not found")
		case errors.Is(err, ErrInvalidDuration):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid subscription duration")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to subscribe")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"subscription": sub})
}

func (h *Handler) Current(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	sub, err := h.service.Current(c.Request.Context(), companyID)
	if err != nil {
		if errors.Is(err, ErrNoSubscription) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No active subscription")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load subscription")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subscription": sub})
}
