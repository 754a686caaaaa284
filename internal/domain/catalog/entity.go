// internal/domain/catalog/entity.go
package catalog

// Category is the closed set of product categories carried by the catalog.
type Category string

const (
	CategoryIndoor          Category = "indoor"
	CategoryOutdoor         Category = "outdoor"
	CategorySmart           Category = "smart"
	CategoryDecorative      Category = "decorative"
	CategoryEnergyEfficient Category = "energy-efficient"
	CategoryCustom          Category = "custom"
)

// Product represents a catalog entry. The catalog is loaded once at process
// start and is immutable afterwards; prices are integer cents.
type Product struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Price           int64             `json:"price"`
	DiscountPrice   int64             `json:"discountPrice,omitempty"` // 0 means no discount
	Images          []string          `json:"images"`
	Category        Category          `json:"category"`
	Features        []string          `json:"features"`
	Specifications  map[string]string `json:"specifications"`
	Stock           int               `json:"stock"`
	Rating          float64           `json:"rating"`
	ReviewCount     int               `json:"reviewCount"`
	IsFeatured      bool              `json:"isFeatured,omitempty"`
	IsNew           bool              `json:"isNew,omitempty"`
	RelatedProducts []string          `json:"relatedProducts,omitempty"`
}

// HasDiscount reports whether the product carries a discounted price.
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice > 0 && p.DiscountPrice < p.Price
}

// EffectivePrice returns the price a buyer actually pays.
func (p *Product) EffectivePrice() int64 {
	if p.HasDiscount() {
		return p.DiscountPrice
	}
	return p.Price
}

// IsInStock reports whether the product can currently be bought.
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// DiscountPercentage returns the discount as a whole percentage of the full
// price, 0 when the product is not discounted.
func (p *Product) DiscountPercentage() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(((p.Price - p.DiscountPrice) * 100) / p.Price)
}
