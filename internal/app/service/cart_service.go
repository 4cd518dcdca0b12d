package service

import (
	"context"
	"errors"

	"github.com/pehchaan/storefront-backend/internal/app/model"
	"github.com/pehchaan/storefront-backend/internal/app/repository"
	"github.com/pehchaan/storefront-backend/pkg/logger"
)

// CartService owns all cart mutations. Every operation loads a fresh
// snapshot, mutates it, and writes the whole snapshot back; dependent views
// re-read the store afterwards instead of patching what they rendered.
type CartService interface {
	GetCart(ctx context.Context, cartID string) (model.Cart, error)
	AddToCart(ctx context.Context, cartID, productID string, quantity int) (model.Cart, error)
	ChangeQuantity(ctx context.Context, cartID, productID string, delta int) (model.Cart, error)
	RemoveFromCart(ctx context.Context, cartID, productID string) (model.Cart, error)
	ClearCart(ctx context.Context, cartID string) error
}

type cartService struct {
	cartStore   repository.CartStore
	catalogRepo repository.CatalogRepository
}

func NewCartService(cartStore repository.CartStore, catalogRepo repository.CatalogRepository) CartService {
	return &cartService{
		cartStore:   cartStore,
		catalogRepo: catalogRepo,
	}
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (model.Cart, error) {
	cart, err := s.cartStore.Load(ctx, cartID)
	if err != nil {
		logger.Error("Failed to load cart", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return nil, err
	}
	return cart, nil
}

// AddToCart copies the product's id, name, price and image into the cart at
// add time. If a line item for the product already exists its quantity is
// incremented; the cart never holds two line items for the same product.
func (s *cartService) AddToCart(ctx context.Context, cartID, productID string, quantity int) (model.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.catalogRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"cart_id":    cartID,
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.cartStore.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if i := cart.Find(productID); i >= 0 {
		cart[i].Quantity += quantity
	} else {
		cart = append(cart, model.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}

	if err := s.cartStore.Save(ctx, cartID, cart); err != nil {
		return nil, err
	}

	logger.Info("Item added to cart", map[string]interface{}{
		"cart_id":    cartID,
		"product_id": productID,
		"quantity":   quantity,
		"cart_count": cart.Count(),
	})
	return cart, nil
}

// ChangeQuantity adjusts a line item's quantity by delta. An unknown product
// id is a silent no-op (nothing is saved). A resulting quantity <= 0 removes
// the line item entirely rather than clamping it to zero.
func (s *cartService) ChangeQuantity(ctx context.Context, cartID, productID string, delta int) (model.Cart, error) {
	cart, err := s.cartStore.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	i := cart.Find(productID)
	if i < 0 {
		logger.Debug("Quantity change on absent line item ignored", map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
		})
		return cart, nil
	}

	cart[i].Quantity += delta
	if cart[i].Quantity <= 0 {
		cart = append(cart[:i], cart[i+1:]...)
	}

	if err := s.cartStore.Save(ctx, cartID, cart); err != nil {
		return nil, err
	}

	logger.Info("Cart quantity changed", map[string]interface{}{
		"cart_id":    cartID,
		"product_id": productID,
		"delta":      delta,
		"cart_count": cart.Count(),
	})
	return cart, nil
}

// RemoveFromCart filters the line item out. Removing an id that is not in
// the cart leaves the cart unchanged, so repeated removals are idempotent.
func (s *cartService) RemoveFromCart(ctx context.Context, cartID, productID string) (model.Cart, error) {
	cart, err := s.cartStore.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	i := cart.Find(productID)
	if i < 0 {
		return cart, nil
	}
	cart = append(cart[:i], cart[i+1:]...)

	if err := s.cartStore.Save(ctx, cartID, cart); err != nil {
		return nil, err
	}

	logger.Info("Cart item removed", map[string]interface{}{
		"cart_id":    cartID,
		"product_id": productID,
		"cart_count": cart.Count(),
	})
	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, cartID string) error {
	if err := s.cartStore.Clear(ctx, cartID); err != nil {
		logger.Error("Failed to clear cart", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}

	logger.Info("Cart cleared", map[string]interface{}{
		"cart_id": cartID,
	})
	return nil
}
