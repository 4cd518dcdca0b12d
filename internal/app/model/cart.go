package model

import "time"

// LineItem is one product's entry in a cart. Name, price and image are
// copied from the catalog when the item is added, so later catalog changes
// do not affect carts already holding the product.
type LineItem struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"qty"`
}

// LineTotal returns price × quantity for the line.
func (li LineItem) LineTotal() int64 {
	return li.Price * int64(li.Quantity)
}

// Cart is an ordered sequence of line items, unique by product id. A line
// item's quantity is always >= 1 while it is present.
type Cart []LineItem

// Count sums the quantities of all line items. It drives the cart badge.
func (c Cart) Count() int {
	total := 0
	for _, li := range c {
		total += li.Quantity
	}
	return total
}

// Subtotal sums the line totals. There is no tax or shipping model, so the
// subtotal is also the grand total.
func (c Cart) Subtotal() int64 {
	var total int64
	for _, li := range c {
		total += li.LineTotal()
	}
	return total
}

// Find returns the index of the line item for the given product id, or -1.
func (c Cart) Find(productID string) int {
	for i, li := range c {
		if li.ProductID == productID {
			return i
		}
	}
	return -1
}

// CartSnapshot is the persisted form of a cart: the whole cart serialized as
// one JSON payload, replaced wholesale on every save.
type CartSnapshot struct {
	CartID    string    `gorm:"primarykey;size:64" json:"cart_id"`
	Payload   string    `gorm:"type:text;not null" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
