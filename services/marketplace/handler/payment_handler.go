package handler

import (
	"fmt"
	"net/http"

	model "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/models"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/services/marketplace/helpers"
	"github.com/rakshithkumar1040/ancient-treasures-auction-platform/utils"

	"github.com/gin-gonic/gin"
)

type PaymentServiceInterface interface {
	Pay(itemID, payer, shippingAddress string) (model.SoldItem, error)
}

type PaymentHandler struct {
	service PaymentServiceInterface
	session SessionResolver
}

func NewPaymentHandler(service PaymentServiceInterface, session SessionResolver) *PaymentHandler {
	return &PaymentHandler{service: service, session: session}
}

// PayHandler handles POST /sold/:item_id/payment
func (h *PaymentHandler) PayHandler(c *gin.Context) {
	user, ok := requireUser(c, "PayHandler", h.session)
	if !ok {
		return
	}

	var req helpers.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PayHandler", err)
		return
	}

	itemID := c.Param("item_id")
	sold, err := h.service.Pay(itemID, user.Email, req.ShippingAddress)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PayHandler: failed to record payment", map[string]any{
			"item_id": itemID,
			"payer":   user.Email,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, sold, "payment recorded successfully")
	helpers.LogSuccess("PayHandler", "payment recorded successfully", map[string]any{
		"item_id": itemID,
		"payer":   user.Email,
		"amount":  sold.CurrentBid,
	})
}
