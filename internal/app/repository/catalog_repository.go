package repository

import (
	"errors"

	"github.com/pehchaan/storefront-backend/internal/app/model"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the read-only product catalog. It is built once at
// startup and never mutated, so lookups need no locking.
type CatalogRepository interface {
	FindByID(id string) (*model.Product, error)
	List() []model.Product
}

type catalogRepository struct {
	products []model.Product
	byID     map[string]int
}

func NewCatalogRepository(products []model.Product) CatalogRepository {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &catalogRepository{
		products: products,
		byID:     byID,
	}
}

func (r *catalogRepository) FindByID(id string) (*model.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}

// List returns the products in catalog order.
func (r *catalogRepository) List() []model.Product {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

// DefaultCatalog returns the Pehchaan adaptive-clothing catalog.
func DefaultCatalog() []model.Product {
	return []model.Product{
		{
			ID:               "jacket-1",
			Name:             "Adaptive Jacket",
			Price:            6500,
			Image:            "/images/product-1.png",
			ShortDescription: "Easy closures + relaxed fit for daily comfort.",
			LongDescription:  "Comfortable layers with accessible closures. Designed to support independence and everyday wear.",
			Badges:           []string{"Accessible closures", "Comfort-first", "Everyday wear"},
		},
		{
			ID:               "pants-1",
			Name:             "Seated Comfort Pants",
			Price:            5200,
			Image:            "/images/product-2.png",
			ShortDescription: "Higher back rise + side access for easier dressing.",
			LongDescription:  "Designed for wheelchair users with pressure-free seams and thoughtful openings that support easy dressing.",
			Badges:           []string{"Wheelchair-friendly", "Pressure-free seams", "Side access"},
		},
		{
			ID:               "kurta-1",
			Name:             "Easy-Open Kurta",
			Price:            4800,
			Image:            "/images/product-3.png",
			ShortDescription: "Low-effort dressing with breathable fabric.",
			LongDescription:  "Adaptive openings with breathable fabric to make dressing simpler while keeping the look clean and stylish.",
			Badges:           []string{"Easy-open", "Breathable", "Minimal effort"},
		},
		{
			ID:               "shirt-1",
			Name:             "Magnetic Closure Shirt",
			Price:            4300,
			Image:            "/images/product-4.png",
			ShortDescription: "Hidden magnets for quick, low-effort dressing.",
			LongDescription:  "Hidden magnetic snaps support independent dressing—fast, neat, and low-effort without compromising style.",
			Badges:           []string{"Hidden magnets", "Independent dressing", "Clean look"},
		},
	}
}
