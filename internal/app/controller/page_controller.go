package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pehchaan/storefront-backend/internal/app/model"
	"github.com/pehchaan/storefront-backend/internal/app/service"
	"github.com/pehchaan/storefront-backend/internal/middleware"
)

// PageController renders the server-side storefront pages. Every page is a
// full render from a fresh cart snapshot; mutations redirect back so the
// next GET re-reads the persisted state.
type PageController struct {
	catalogService service.CatalogService
	cartService    service.CartService
}

func NewPageController(catalogService service.CatalogService, cartService service.CartService) *PageController {
	return &PageController{
		catalogService: catalogService,
		cartService:    cartService,
	}
}

type basePage struct {
	Title     string
	CartCount int
}

type productsPage struct {
	basePage
	Products []model.Product
}

type productDetailPage struct {
	basePage
	Product *model.Product
	Added   bool
}

type cartPage struct {
	basePage
	Cart     model.Cart
	Subtotal int64
	Total    int64
}

// cartCount reads the fresh badge count for the nav. A load failure renders
// the page with a zero badge rather than failing the whole page.
func (ctrl *PageController) cartCount(c *gin.Context) int {
	cartID, exists := middleware.GetCartID(c)
	if !exists {
		return 0
	}
	cart, err := ctrl.cartService.GetCart(c.Request.Context(), cartID)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to load cart count for page", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return 0
	}
	return cart.Count()
}

// ProductsPage renders the catalog listing
// GET / and GET /products
func (ctrl *PageController) ProductsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "products.html", productsPage{
		basePage: basePage{Title: "Products", CartCount: ctrl.cartCount(c)},
		Products: ctrl.catalogService.ListProducts(),
	})
}

// ProductDetailPage renders one product, or the not-found page with a link
// back to the listing
// GET /products/:id
func (ctrl *PageController) ProductDetailPage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")
	product, err := ctrl.catalogService.GetProductByID(id)
	if err != nil {
		if !errors.Is(err, service.ErrProductNotFound) {
			log.Error("Failed to load product page", err, map[string]interface{}{
				"product_id": id,
			})
		}
		c.HTML(http.StatusNotFound, "product_not_found.html", basePage{
			Title:     "Product not found",
			CartCount: ctrl.cartCount(c),
		})
		return
	}

	c.HTML(http.StatusOK, "product_detail.html", productDetailPage{
		basePage: basePage{Title: product.Name, CartCount: ctrl.cartCount(c)},
		Product:  product,
		Added:    c.Query("added") == "1",
	})
}

// CartPage renders the full cart with line totals; the subtotal doubles as
// the grand total since there is no tax or shipping model
// GET /cart
func (ctrl *PageController) CartPage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var cart model.Cart
	if cartID, exists := middleware.GetCartID(c); exists {
		loaded, err := ctrl.cartService.GetCart(c.Request.Context(), cartID)
		if err != nil {
			log.Error("Failed to load cart page", err, map[string]interface{}{
				"cart_id": cartID,
			})
		} else {
			cart = loaded
		}
	}

	c.HTML(http.StatusOK, "cart.html", cartPage{
		basePage: basePage{Title: "Your Cart", CartCount: cart.Count()},
		Cart:     cart,
		Subtotal: cart.Subtotal(),
		Total:    cart.Subtotal(),
	})
}

// AddToCartForm handles the add-to-cart forms on the listing and detail
// pages, then redirects back with the transient "added" flag
// POST /cart/add
func (ctrl *PageController) AddToCartForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, exists := middleware.GetCartID(c)
	if !exists {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	productID := c.PostForm("product_id")
	_, err := ctrl.cartService.AddToCart(c.Request.Context(), cartID, productID, 1)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.HTML(http.StatusNotFound, "product_not_found.html", basePage{
				Title:     "Product not found",
				CartCount: ctrl.cartCount(c),
			})
			return
		}
		log.Error("Failed to add item to cart from page", err, map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
		})
		c.String(http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	returnTo := c.PostForm("return_to")
	if returnTo == "" || returnTo[0] != '/' {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}
	c.Redirect(http.StatusSeeOther, returnTo+"?added=1")
}

// IncreaseQuantityForm bumps a line item by one
// POST /cart/increase
func (ctrl *PageController) IncreaseQuantityForm(c *gin.Context) {
	ctrl.changeQuantityForm(c, +1)
}

// DecreaseQuantityForm lowers a line item by one; hitting zero removes it
// POST /cart/decrease
func (ctrl *PageController) DecreaseQuantityForm(c *gin.Context) {
	ctrl.changeQuantityForm(c, -1)
}

func (ctrl *PageController) changeQuantityForm(c *gin.Context, delta int) {
	log := middleware.GetLoggerFromContext(c)

	cartID, exists := middleware.GetCartID(c)
	if !exists {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	productID := c.PostForm("product_id")
	if _, err := ctrl.cartService.ChangeQuantity(c.Request.Context(), cartID, productID, delta); err != nil {
		log.Error("Failed to change quantity from page", err, map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
			"delta":      delta,
		})
		c.String(http.StatusInternalServerError, "Failed to update cart")
		return
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

// RemoveFromCartForm drops a line item
// POST /cart/remove
func (ctrl *PageController) RemoveFromCartForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, exists := middleware.GetCartID(c)
	if !exists {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	productID := c.PostForm("product_id")
	if _, err := ctrl.cartService.RemoveFromCart(c.Request.Context(), cartID, productID); err != nil {
		log.Error("Failed to remove item from page", err, map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
		})
		c.String(http.StatusInternalServerError, "Failed to update cart")
		return
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}
