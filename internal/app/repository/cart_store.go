package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pehchaan/storefront-backend/internal/app/model"
	"github.com/pehchaan/storefront-backend/pkg/logger"
)

// CartStore persists cart snapshots: the whole cart is serialized as one
// JSON payload per cart id, and every save replaces it wholesale. There is
// no locking across writers; last write wins at snapshot granularity.
type CartStore interface {
	// Load returns the cart for the given id. An absent or unparseable
	// snapshot loads as an empty cart, never an error.
	Load(ctx context.Context, cartID string) (model.Cart, error)
	// Save replaces the stored snapshot with the given cart.
	Save(ctx context.Context, cartID string, cart model.Cart) error
	// Clear discards the snapshot for the given cart id.
	Clear(ctx context.Context, cartID string) error
	// PurgeStale deletes snapshots untouched for longer than olderThan and
	// reports how many were removed.
	PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

func encodeCart(cart model.Cart) ([]byte, error) {
	if cart == nil {
		cart = model.Cart{}
	}
	return json.Marshal(cart)
}

// decodeCart parses a persisted payload. Corrupted payloads fail soft to an
// empty cart, and entries that violate the cart invariants (missing id,
// quantity <= 0) are dropped rather than surfaced.
func decodeCart(cartID string, payload []byte) model.Cart {
	if len(payload) == 0 {
		return model.Cart{}
	}

	var items []model.LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		logger.Warn("Discarding unparseable cart snapshot", map[string]interface{}{
			"cart_id": cartID,
			"error":   err.Error(),
		})
		return model.Cart{}
	}

	cart := make(model.Cart, 0, len(items))
	for _, li := range items {
		if li.ProductID == "" || li.Quantity <= 0 {
			logger.Warn("Dropping invalid cart line item", map[string]interface{}{
				"cart_id":    cartID,
				"product_id": li.ProductID,
				"quantity":   li.Quantity,
			})
			continue
		}
		cart = append(cart, li)
	}
	return cart
}
