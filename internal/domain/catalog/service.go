// internal/domain/catalog/service.go
package catalog

import "strings"

// Service is a read-only query view over the product dataset. It has no
// side effects and is safe to share without synchronization.
type Service struct {
	products []Product
	byID     map[string]int
}

// NewService creates a catalog service over the given dataset. Catalog order
// is preserved by all listing operations.
func NewService(products []Product) *Service {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Service{
		products: products,
		byID:     byID,
	}
}

// All returns every product in catalog order.
func (s *Service) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID returns the product with the given id. Absence is a valid outcome,
// reported through the boolean rather than an error.
func (s *Service) GetByID(id string) (Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// ByCategory returns all products in the given category, catalog order
// preserved.
func (s *Service) ByCategory(category Category) []Product {
	var out []Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name, description, or category contains the
// query, case-insensitively. An empty query returns the full catalog; the
// search-clearing UX depends on this.
func (s *Service) Search(query string) []Product {
	if query == "" {
		return s.All()
	}

	q := strings.ToLower(query)
	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(string(p.Category)), q) {
			out = append(out, p)
		}
	}
	return out
}

// Related resolves a product's declared related ids, silently dropping any
// id that no longer resolves.
func (s *Service) Related(id string) []Product {
	p, ok := s.GetByID(id)
	if !ok {
		return nil
	}

	var out []Product
	for _, rid := range p.RelatedProducts {
		if rp, ok := s.GetByID(rid); ok {
			out = append(out, rp)
		}
	}
	return out
}

// Featured returns the products flagged for the storefront's featured strip.
func (s *Service) Featured() []Product {
	var out []Product
	for _, p := range s.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// NewArrivals returns the products flagged as new.
func (s *Service) NewArrivals() []Product {
	var out []Product
	for _, p := range s.products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out
}
