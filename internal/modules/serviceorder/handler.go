package serviceorder

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"joyit/internal/domain"
	"joyit/internal/pkg/response"
)

// CheckoutInitiator starts a gateway checkout session for an order.
// Implemented by the payment module.
type CheckoutInitiator interface {
	InitOrderCheckout(ctx context.Context, order *domain.ServiceOrder) (checkoutURL string, invID int64, err error)
}

type Handler struct {
	service  *Service
	checkout CheckoutInitiator
}

func NewHandler(service *Service, checkout CheckoutInitiator) *Handler {
	return &Handler{service: service, checkout: checkout}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/service-orders", h.Create)
	rg.GET("/service-orders", h.List)
	rg.GET("/service-orders/:id", h.Get)
	rg.POST("/service-orders/:id/checkout", h.Checkout)
	rg.GET("/service-orders/allowance", h.Allowance)
}

func (h *Handler) Create(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.service.Create(c.Request.Context(), companyID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order parameters")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) List(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	orders, err := h.service.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) Get(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.service.Get(c.Request.Context(), id, companyID)
	if err != nil {
		h.writeError(c, err, "Failed to get order")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

func (h *Handler) Checkout(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.service.Get(c.Request.Context(), id, companyID)
	if err != nil {
		h.writeError(c, err, "Failed to get order")
		return
	}

	if order.Status != domain.OrderPending {
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Order is not awaiting payment")
		return
	}

	url, invID, err := h.checkout.InitOrderCheckout(c.Request.Context(), order)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start checkout")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"checkout_url": url, "inv_id": invID})
}

func (h *Handler) Allowance(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	t := domain.ActivityType(c.Query("type"))
	ok, err := h.service.HasAllowance(c.Request.Context(), companyID, t)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown activity type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check allowance")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"type": t, "available": ok})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Order belongs to another company")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
