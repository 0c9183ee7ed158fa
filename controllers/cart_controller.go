package controllers

import (
	"net/http"
	"strconv"

	"github.com/Yaser-2004/flipkart-clone-server/middleware"
	"github.com/Yaser-2004/flipkart-clone-server/models"
	"github.com/Yaser-2004/flipkart-clone-server/services"

	"github.com/gin-gonic/gin"
)

// AddItemRequest carries the product snapshot copied into the cart.
type AddItemRequest struct {
	ProductID   int64   `json:"id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Rate        float64 `json:"rate"`
}

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// AddItem appends an item to the authenticated user's cart.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	item := models.CartItem{
		ProductID:   req.ProductID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Price:       req.Price,
		Rate:        req.Rate,
	}

	added, err := cc.cartService.AddItem(c.Request.Context(), userID, item)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": added})
}

// RemoveItem removes one instance of the product from the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := cc.cartService.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// GetCart returns the current cart snapshot.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := cc.cartService.ListItems(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": items})
}
