// Package memory implementa los puertos de catálogo y configuración en memoria
// (modo desarrollo y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

var _ repository.CatalogProvider = (*CatalogRepository)(nil)

// CatalogRepository catálogo en memoria que conserva el orden de inserción.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []entity.Product
	bySKU    map[string]int
	err      error
}

// NewCatalogRepository crea el catálogo con los productos iniciales (en ese orden).
func NewCatalogRepository(products ...*entity.Product) *CatalogRepository {
	r := &CatalogRepository{bySKU: map[string]int{}}
	_ = r.UpsertProducts(context.Background(), products)
	return r
}

// FailWith hace que todas las operaciones devuelvan err (nil restablece).
func (r *CatalogRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// ListProducts devuelve copias de los productos publicados en orden de catálogo.
func (r *CatalogRepository) ListProducts(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Product, 0, len(r.products))
	for i := range r.products {
		if r.products[i].Status != "" && r.products[i].Status != entity.ProductStatusPublish {
			continue
		}
		p := r.products[i]
		out = append(out, &p)
	}
	return out, nil
}

// GetByID devuelve una copia del producto o nil si no existe.
func (r *CatalogRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// UpsertProducts inserta o actualiza por SKU; un producto existente conserva su ID.
func (r *CatalogRepository) UpsertProducts(_ context.Context, products []*entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, p := range products {
		if p == nil {
			continue
		}
		key := p.SKU
		if key == "" {
			key = "id:" + p.ID
		}
		if i, ok := r.bySKU[key]; ok {
			id := r.products[i].ID
			r.products[i] = *p
			r.products[i].ID = id
			continue
		}
		r.bySKU[key] = len(r.products)
		r.products = append(r.products, *p)
	}
	return nil
}
