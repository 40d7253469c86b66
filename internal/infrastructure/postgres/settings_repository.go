package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
)

var _ repository.ConfigStore = (*SettingsRepo)(nil)

// Claves de la tabla settings.
const (
	keyLowThreshold  = "low_stock_threshold"
	keyFullThreshold = "full_stock_threshold"
)

// SettingsRepo almacén clave/valor de ajustes. Los valores se guardan como texto.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetThresholds lee ambos umbrales. Si falta alguno, no es numérico o la tabla no existe, found=false.
func (r *SettingsRepo) GetThresholds(ctx context.Context) (entity.Thresholds, bool, error) {
	rows, err := r.q.Query(ctx, `SELECT key, value FROM settings WHERE key IN ($1, $2)`, keyLowThreshold, keyFullThreshold)
	if err != nil {
		if isUndefinedTable(err) {
			return entity.Thresholds{}, false, nil
		}
		return entity.Thresholds{}, false, fmt.Errorf("get settings: %w", err)
	}
	defer rows.Close()

	values := map[string]int{}
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return entity.Thresholds{}, false, fmt.Errorf("scan setting: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		values[key] = n
	}
	if err := rows.Err(); err != nil {
		return entity.Thresholds{}, false, fmt.Errorf("get settings: %w", err)
	}

	low, okLow := values[keyLowThreshold]
	full, okFull := values[keyFullThreshold]
	if !okLow || !okFull {
		return entity.Thresholds{}, false, nil
	}
	return entity.Thresholds{Low: low, Full: full}, true, nil
}

// SaveThresholds guarda ambos umbrales.
func (r *SettingsRepo) SaveThresholds(ctx context.Context, t entity.Thresholds) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now()), ($3, $4, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		keyLowThreshold, strconv.Itoa(t.Low), keyFullThreshold, strconv.Itoa(t.Full),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
