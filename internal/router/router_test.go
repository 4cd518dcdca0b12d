package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pehchaan/storefront-backend/config"
	"github.com/pehchaan/storefront-backend/internal/app/controller"
	"github.com/pehchaan/storefront-backend/internal/app/repository"
	"github.com/pehchaan/storefront-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: gin.TestMode},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	store := repository.NewMemoryCartStore()
	catalogRepo := repository.NewCatalogRepository(repository.DefaultCatalog())
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(store, catalogRepo)

	r := NewRouter(
		controller.NewCatalogController(catalogService),
		controller.NewCartController(cartService),
		controller.NewPageController(catalogService, cartService),
		cfg,
	)
	return r.Setup()
}

// visitor replays the cart cookie across requests, like a browser would.
type visitor struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (v *visitor) do(req *http.Request) *httptest.ResponseRecorder {
	for _, cookie := range v.cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	v.router.ServeHTTP(w, req)
	for _, cookie := range w.Result().Cookies() {
		v.cookies = append(v.cookies, cookie)
	}
	return w
}

func TestRouter_Health(t *testing.T) {
	router := setupRouterTest(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_StorefrontFlow(t *testing.T) {
	v := &visitor{router: setupRouterTest(t)}

	// Browse the listing
	w := v.do(httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Adaptive Jacket")

	// Add the jacket twice from the detail page
	form := url.Values{"product_id": {"jacket-1"}, "return_to": {"/products/jacket-1"}}
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w = v.do(req)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/products/jacket-1?added=1", w.Header().Get("Location"))
	}

	// The cart page shows one merged line item and its totals
	w = v.do(httptest.NewRequest(http.MethodGet, "/cart", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "PKR 6,500")
	assert.Contains(t, body, "PKR 13,000")
	assert.Contains(t, body, "data-cart-count>2</span>")

	// Unknown detail pages render the not-found state, never a blank page
	w = v.do(httptest.NewRequest(http.MethodGet, "/products/no-such-product", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestRouter_APIFlow(t *testing.T) {
	v := &visitor{router: setupRouterTest(t)}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart", strings.NewReader(`{"product_id":"kurta-1","quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := v.do(req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = v.do(httptest.NewRequest(http.MethodGet, "/api/v1/cart/count", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())

	w = v.do(httptest.NewRequest(http.MethodGet, "/api/v1/products/kurta-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = v.do(httptest.NewRequest(http.MethodGet, "/api/v1/products/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
