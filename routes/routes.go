package routes

import (
	"time"

	"github.com/Yaser-2004/flipkart-clone-server/controllers"
	"github.com/Yaser-2004/flipkart-clone-server/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes wires all application routes. Auth routes are
// rate-limited per IP; cart, payment and order routes require a valid
// session token.
func RegisterRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authController *controllers.AuthController,
	cartController *controllers.CartController,
	paymentController *controllers.PaymentController,
	orderController *controllers.OrderController,
) {
	authLimiter := middleware.RateLimitMiddleware(rate.Every(time.Minute/30), 10)

	r.POST("/register", authLimiter, authController.Register)
	r.POST("/login", authLimiter, authController.Login)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(jwtSecret))
	{
		authed.GET("/cart", cartController.GetCart)
		authed.POST("/cart/items", cartController.AddItem)
		authed.DELETE("/cart/items/:product_id", cartController.RemoveItem)

		authed.POST("/payment/create", paymentController.CreateIntent)

		authed.POST("/orders/finalize", orderController.FinalizeOrder)
		authed.GET("/orders", orderController.GetOrders)
	}
}
