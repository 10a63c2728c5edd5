package payment

import (
	"encoding/json"
	"errors"
	"io"
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
	rg.POST("/webhook/payment", h.ResultCallback)
}

type callbackRequest struct {
	InvID     int64  `json:"inv_id" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// ResultCallback is hit by the payment gateway, not by clients. The raw
// body is kept on the payment row for dispute handling.
func (h *Handler) ResultCallback(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unreadable body")
		return
	}

	var req callbackRequest
	if err := json.Unmarshal(raw, &req); err != nil || req.InvID == 0 || req.Amount == "" || req.Signature == "" {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid callback payload")
		return
	}

	ack, err := h.service.HandleCallback(c.Request.Context(), req.InvID, req.Amount, req.Signature, string(raw))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature):
			response.Error(c, http.StatusForbidden, "INVALID_SIGNATURE", "Signature verification failed")
		case errors.Is(err, ErrAmountMismatch):
			response.Error(c, http.StatusUnprocessableEntity, "AMOUNT_MISMATCH", "Callback amount does not match invoice")
		case errors.Is(err, ErrUnknownInvoice):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown invoice")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process callback")
		}
		return
	}

	// Gateways expect a bare acknowledgement string.
	c.String(http.StatusOK, ack)
}
