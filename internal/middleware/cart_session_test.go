package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartSessionTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CartSession())
	router.GET("/", func(c *gin.Context) {
		cartID, exists := GetCartID(c)
		if !exists {
			c.String(http.StatusInternalServerError, "no cart id")
			return
		}
		c.String(http.StatusOK, cartID)
	})
	return router
}

func TestCartSession_IssuesCookieForNewVisitor(t *testing.T) {
	router := setupCartSessionTest()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())

	cookies := w.Result().Cookies()
	var found *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == "cart_id" {
			found = cookie
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, w.Body.String(), found.Value)
	assert.True(t, found.HttpOnly)
}

func TestCartSession_ReusesExistingCookie(t *testing.T) {
	router := setupCartSessionTest()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "cart_id", Value: "existing-cart"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "existing-cart", w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		assert.NotEqual(t, "cart_id", cookie.Name, "should not reissue the cookie")
	}
}

func TestGetCartID_MissingContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, exists := GetCartID(c)
	assert.False(t, exists)
}
