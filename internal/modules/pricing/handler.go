package pricing

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
	rg.GET("/pricing", h.GetConfig)
	rg.POST("/pricing/quote", h.Quote)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/pricing", h.UpdateConfig)
}

func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.service.GetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load pricing")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pricing": cfg})
}

func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cfg, err := h.service.UpdateConfig(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update pricing")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pricing": cfg})
}

func (h *Handler) Quote(c *gin.Context) {
	var p Params
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	total, err := h.service.Quote(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, ErrInvalidParams) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pricing parameters")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to calculate quote")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"total": total})
}
