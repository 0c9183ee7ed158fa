package controllers

import (
	"net/http"

	"github.com/Yaser-2004/flipkart-clone-server/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateIntentRequest struct {
	// Amount is in the smallest currency unit.
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency"`
}

type PaymentController struct {
	gateway services.PaymentGateway
}

func NewPaymentController(gateway services.PaymentGateway) *PaymentController {
	return &PaymentController{gateway: gateway}
}

// CreateIntent asks the payment provider for a payment intent and
// returns the client secret the caller completes payment with.
func (pc *PaymentController) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	clientSecret, err := pc.gateway.CreateIntent(c.Request.Context(), req.Amount, currency)
	if err != nil {
		zap.L().Error("Payment intent creation failed", zap.Int64("amount", req.Amount), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"clientSecret": clientSecret})
}
