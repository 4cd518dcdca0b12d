package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cartCookieName = "cart_id"
	cartContextKey = "cart_id"
	cartCookieAge  = 60 * 60 * 24 * 365
)

// CartSession assigns each visitor a stable cart id via a long-lived cookie.
// The id is the storage key for that visitor's cart snapshot; no account or
// authentication is involved.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := c.Cookie(cartCookieName)
		if err != nil || cartID == "" {
			cartID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cartCookieName, cartID, cartCookieAge, "/", "", false, true)
		}

		c.Set(cartContextKey, cartID)
		c.Next()
	}
}

// GetCartID retrieves the visitor's cart id from the gin context.
func GetCartID(c *gin.Context) (string, bool) {
	value, exists := c.Get(cartContextKey)
	if !exists {
		return "", false
	}
	cartID, ok := value.(string)
	if !ok || cartID == "" {
		return "", false
	}
	return cartID, true
}
