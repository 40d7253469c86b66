package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

var _ repository.CatalogProvider = (*ProductRepo)(nil)

const productColumns = `id, sku, name, price, manage_stock, stock_quantity, status, updated_at`

// ProductRepo implementación de CatalogProvider sobre la tabla products.
type ProductRepo struct {
	q  Querier
	tx *TxRunner
}

// NewProductRepository construye el adaptador. Si tx es nil, UpsertProducts envía el batch sin transacción.
func NewProductRepository(q Querier, tx *TxRunner) *ProductRepo {
	return &ProductRepo{q: q, tx: tx}
}

// ListProducts devuelve los productos publicados en orden de catálogo: el de primera inserción
// (position). Un upsert sobre un SKU existente no lo mueve.
func (r *ProductRepo) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE status = $1 ORDER BY position`, entity.ProductStatusPublish)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID (nil, nil si no existe).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id::text = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// UpsertProducts inserta o actualiza por SKU en un único batch; el id existente se conserva.
func (r *ProductRepo) UpsertProducts(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	send := func(q Querier) error {
		batch := &pgx.Batch{}
		for _, p := range products {
			if p == nil {
				continue
			}
			batch.Queue(`
				INSERT INTO products (id, sku, name, price, manage_stock, stock_quantity, status, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				ON CONFLICT (sku) DO UPDATE SET
					name = EXCLUDED.name,
					price = EXCLUDED.price,
					manage_stock = EXCLUDED.manage_stock,
					stock_quantity = EXCLUDED.stock_quantity,
					status = EXCLUDED.status,
					updated_at = EXCLUDED.updated_at`,
				p.ID, p.SKU, p.Name, p.UnitPrice, p.ManageStock, p.StockQuantity, p.Status, p.UpdatedAt,
			)
		}
		br := q.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				if isUniqueViolation(err) {
					return fmt.Errorf("upsert product: id duplicado: %w", err)
				}
				return fmt.Errorf("upsert product: %w", err)
			}
		}
		return br.Close()
	}
	if r.tx == nil {
		return send(r.q)
	}
	return r.tx.Run(ctx, send)
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.UnitPrice, &p.ManageStock, &p.StockQuantity, &p.Status, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
