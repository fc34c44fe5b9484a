package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"runplay-store/internal/view"
)

type addItemRequest struct {
	ID *int `json:"id" binding:"required"`
}

func getCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c.Request.Context())
		c.JSON(http.StatusOK, toCartResponse(sess.Cart))
	}
}

func addCartItemHandler(svc catalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body must be {\"id\": <game id>}"})
			return
		}
		g, err := svc.Get(*req.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		sess := sessionFromContext(c.Request.Context())
		sess.Cart.Add(g)
		logger.Printf("cart: add session=%s game=%d items=%d", sess.ID, g.ID, sess.Cart.Len())
		c.JSON(http.StatusCreated, gin.H{
			"message": g.Title + " added to cart",
			"cart":    toCartResponse(sess.Cart),
		})
	}
}

func checkoutHandler(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c.Request.Context())
		receipt := sess.Cart.Checkout()
		logger.Printf("cart: checkout session=%s items=%d total=%s", sess.ID, receipt.Items, receipt.Total.StringFixed(2))
		c.JSON(http.StatusOK, checkoutResponse{Message: view.CheckoutMessage, Receipt: receipt})
	}
}
