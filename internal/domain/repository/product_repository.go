package repository

import (
	"context"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

// CatalogProvider define el puerto de lectura/ingesta del catálogo de productos (DIP).
// ListProducts devuelve el snapshot publicado en el orden del catálogo; no pagina ni cachea.
type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	UpsertProducts(ctx context.Context, products []*entity.Product) error
}
