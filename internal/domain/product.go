package domain

type Category string

const (
	CategoryMacaron Category = "Macaron"
	CategoryCake    Category = "Cake"
	CategorySable   Category = "Sable"
)

// Valid reports whether c is one of the three catalog categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMacaron, CategoryCake, CategorySable:
		return true
	}
	return false
}

// Product is a catalog entry. The JSON field names match the documents
// already stored under the "products" key, so records written by older
// deployments keep decoding.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Ingredients []string `json:"ingredients"`
	Available   bool     `json:"available"`
	// Only meaningful for Sable products: offers the decoration add-on.
	SableDressage bool `json:"sableDressage,omitempty"`
}
