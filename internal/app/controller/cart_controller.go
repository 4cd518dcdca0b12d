package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pehchaan/storefront-backend/internal/app/service"
	"github.com/pehchaan/storefront-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,gt=0"`
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart returns the visitor's cart with derived totals
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, exists := middleware.GetCartID(c)
	if !exists {
		log.Warn("Cart request without cart session", nil)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing cart session",
		})
		return
	}

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), cartID)
	if err != nil {
		log.Error("Failed to fetch cart", err, map[string]interface{}{
			"cart_id": cartID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart_items": cart,
		"count":      cart.Count(),
		"subtotal":   cart.Subtotal(),
		"total":      cart.Subtotal(),
	})
}

// CartCount returns the badge count only
// GET /api/v1/cart/count
func (ctrl *CartController) CartCount(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, exists := middleware.GetCartID(c)
	if !exists {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), cartID)
	if err != nil {
		log.Error("Failed to fetch cart count", err, map[string]interface{}{
			"cart_id": cartID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch cart count",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": cart.Count(),
	})
}

// AddToCart adds a catalog product to the cart
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, exists := middleware.GetCartID(c)
	if !exists {
		log.Warn("Add to cart without cart session", nil)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing cart session",
		})
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"cart_id": cartID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cart, err := ctrl.cartService.AddToCart(c.Request.Context(), cartID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for cart", map[string]interface{}{
				"cart_id":    cartID,
				"product_id": req.ProductID,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"cart_id":    cartID,
			"product_id": req.ProductID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Item added to cart successfully",
		"cart_items": cart,
		"count":      cart.Count(),
	})
}

// ChangeQuantity adjusts a line item's quantity by a signed delta. Unknown
// product ids leave the cart unchanged.
// PATCH /api/v1/cart/:product_id
func (ctrl *CartController) ChangeQuantity(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, exists := middleware.GetCartID(c)
	if !exists {
		log.Warn("Cart update without cart session", nil)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing cart session",
		})
		return
	}

	productID := c.Param("product_id")

	var req ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid change quantity request", map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cart, err := ctrl.cartService.ChangeQuantity(c.Request.Context(), cartID, productID, req.Delta)
	if err != nil {
		log.Error("Failed to change cart quantity", err, map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to change cart quantity",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart_items": cart,
		"count":      cart.Count(),
		"subtotal":   cart.Subtotal(),
		"total":      cart.Subtotal(),
	})
}

// RemoveFromCart removes a line item; removing an absent id is a no-op
// DELETE /api/v1/cart/:product_id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, exists := middleware.GetCartID(c)
	if !exists {
		log.Warn("Cart removal without cart session", nil)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing cart session",
		})
		return
	}

	productID := c.Param("product_id")

	cart, err := ctrl.cartService.RemoveFromCart(c.Request.Context(), cartID, productID)
	if err != nil {
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Cart item removed successfully",
		"cart_items": cart,
		"count":      cart.Count(),
	})
}

// ClearCart discards the whole cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, exists := middleware.GetCartID(c)
	if !exists {
		log.Warn("Cart clear without cart session", nil)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing cart session",
		})
		return
	}

	if err := ctrl.cartService.ClearCart(c.Request.Context(), cartID); err != nil {
		log.Error("Failed to clear cart", err, map[string]interface{}{
			"cart_id": cartID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}
