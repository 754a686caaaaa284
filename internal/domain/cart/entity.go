// internal/domain/cart/entity.go
package cart

// Item is one (product, quantity) entry in a cart. A cart holds at most one
// Item per product id, and any present Item has quantity >= 1.
type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is the snapshot handed to callers and persisted after every
// transition. The derived fields (TotalItems, Subtotal, Discount, Total) are
// always recomputed from Items against current catalog prices; on
// rehydration only Items is trusted, never the persisted totals.
type Cart struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"totalItems"`
	Subtotal   int64  `json:"subtotal"`
	Discount   int64  `json:"discount"`
	Total      int64  `json:"total"`
}
