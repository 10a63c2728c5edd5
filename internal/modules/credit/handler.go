package credit

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"joyit/internal/pkg/response"
)

// TopUpInitiator starts a gateway checkout for purchased credits. Implemented
// by the payment module.
type TopUpInitiator interface {
	InitTopUp(ctx context.Context, companyID, credits int64) (checkoutURL string, invID int64, err error)
}

type Handler struct {
	service *Service
	topups  TopUpInitiator
}

func NewHandler(service *Service, topups TopUpInitiator) *Handler {
	return &Handler{service: service, topups: topups}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/credit", h.GetBalance)
	rg.GET("/credit/ledger", h.ListLedger)
	rg.POST("/credit/topup", h.TopUp)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/credit/grant", h.Grant)
}

func (h *Handler) GetBalance(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	balance, err := h.service.Balance(c.Request.Context(), companyID)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get balance")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": balance})
}

func (h *Handler) ListLedger(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	entries, err := h.service.ListEntries(c.Request.Context(), companyID, 100, 0)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list ledger")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}

type topUpRequest struct {
	Credits int64 `json:"credits" binding:"required,gt=0"`
}

func (h *Handler) TopUp(c *gin.Context) {
	companyID := c.GetInt64("company_id")
	if companyID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req topUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	url, invID, err := h.topups.InitTopUp(c.Request.Context(), companyID, req.Credits)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start checkout")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"checkout_url": url, "inv_id": invID})
}

type grantRequest struct {
	CompanyID int64  `json:"company_id" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Note      string `json:"note"`
}

func (h *Handler) Grant(c *gin.Context) {
	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	balance, err := h.service.Grant(c.Request.Context(), req.CompanyID, req.Amount, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, ErrCompanyNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
		case errors.Is(err, ErrInvalidAmount):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to grant credit")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": balance})
}
