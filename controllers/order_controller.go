package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"
	"github.com/Yaser-2004/flipkart-clone-server/middleware"
	"github.com/Yaser-2004/flipkart-clone-server/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FinalizeOrderRequest struct {
	PaymentIntentID string    `json:"payment_intent_id" binding:"required"`
	Status          string    `json:"status"`
	Created         time.Time `json:"created"`
}

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// FinalizeOrder turns the authenticated user's cart into a durable
// order after payment confirmation.
func (oc *OrderController) FinalizeOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req FinalizeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	orderID, err := oc.orderService.FinalizeOrder(c.Request.Context(), userID, req.PaymentIntentID, req.Status, req.Created)
	if err != nil {
		// The order exists even though the cart clear failed; return
		// the id so the client and reconciliation can find it.
		if errors.Is(err, apperrors.ErrCartNotCleared) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":    "Order created but cart not cleared",
				"order_id": orderID,
			})
			return
		}
		zap.L().Warn("Order finalize failed",
			zap.String("user_id", userID.String()),
			zap.String("payment_intent_id", req.PaymentIntentID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
}

// GetOrders returns every order of the authenticated user.
func (oc *OrderController) GetOrders(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := oc.orderService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
