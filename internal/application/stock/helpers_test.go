package stock_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/application/ports"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

var defaults = entity.Thresholds{Low: 5, Full: 50}

func product(id, name string, qty int, price string, tracked bool) *entity.Product {
	return &entity.Product{
		ID:            id,
		SKU:           "SKU-" + id,
		Name:          name,
		UnitPrice:     decimal.RequireFromString(price),
		ManageStock:   tracked,
		StockQuantity: qty,
		Status:        entity.ProductStatusPublish,
	}
}

// catálogo de referencia: out, low, normal, full, no rastreado.
func referenceCatalog() []*entity.Product {
	return []*entity.Product{
		product("1", "Agotado", 0, "10", true),
		product("2", "Bajo", 3, "2.5", true),
		product("3", "Normal", 20, "1", true),
		product("4", "Lleno", 80, "0.5", true),
		product("5", "Servicio", 0, "99", false),
	}
}

type recordingNotifier struct {
	mu      sync.Mutex
	alerts  []ports.StockAlert
	digests []ports.StockDigest
	err     error
}

func (n *recordingNotifier) NotifyStock(_ context.Context, a ports.StockAlert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.alerts = append(n.alerts, a)
	return nil
}

func (n *recordingNotifier) NotifyDigest(_ context.Context, d ports.StockDigest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.digests = append(n.digests, d)
	return nil
}

type fakeReports struct {
	got ports.StockReport
}

func (f *fakeReports) GenerateStockReport(_ context.Context, r ports.StockReport) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}
