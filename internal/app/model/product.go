package model

// Product is a catalog entry. The catalog is built once at startup and never
// mutated afterwards.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            int64    `json:"price"` // whole PKR, no minor units
	Image            string   `json:"image"`
	ShortDescription string   `json:"description"`
	LongDescription  string   `json:"long_description"`
	Badges           []string `json:"badges"`
}
