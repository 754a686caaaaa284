// internal/domain/cart/reducer.go
package cart

// Command is a cart transition. Exactly one of AddItem, RemoveItem,
// UpdateQuantity, or Clear.
type Command interface {
	isCommand()
}

// AddItem merges the quantity into an existing entry for the product, or
// appends a new entry. A quantity <= 0 is a no-op.
type AddItem struct {
	ProductID string
	Quantity  int
}

// RemoveItem deletes the entry for the product. Removing an absent product
// is a no-op, not an error.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity replaces the entry's quantity. A quantity <= 0 delegates to
// RemoveItem, which keeps "quantity >= 1 for any present entry" true by
// construction.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// Clear empties the item list.
type Clear struct{}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (Clear) isCommand()          {}

// Apply is the pure cart transition function. It never mutates its input;
// callers get a fresh slice on every change.
func Apply(items []Item, cmd Command) []Item {
	switch c := cmd.(type) {
	case AddItem:
		if c.Quantity <= 0 {
			return items
		}
		out := cloneItems(items)
		for i := range out {
			if out[i].ProductID == c.ProductID {
				out[i].Quantity += c.Quantity
				return out
			}
		}
		return append(out, Item{ProductID: c.ProductID, Quantity: c.Quantity})

	case RemoveItem:
		out := make([]Item, 0, len(items))
		for _, it := range items {
			if it.ProductID != c.ProductID {
				out = append(out, it)
			}
		}
		return out

	case UpdateQuantity:
		if c.Quantity <= 0 {
			return Apply(items, RemoveItem{ProductID: c.ProductID})
		}
		out := cloneItems(items)
		for i := range out {
			if out[i].ProductID == c.ProductID {
				out[i].Quantity = c.Quantity
			}
		}
		return out

	case Clear:
		return nil
	}

	return items
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
