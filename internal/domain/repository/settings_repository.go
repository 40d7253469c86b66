package repository

import (
	"context"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

// ConfigStore define el puerto de persistencia de los umbrales de stock (DIP).
// found=false indica que no hay configuración guardada; el llamador usa los valores por defecto.
type ConfigStore interface {
	GetThresholds(ctx context.Context) (t entity.Thresholds, found bool, err error)
	SaveThresholds(ctx context.Context, t entity.Thresholds) error
}
