package stock

import (
	"context"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/pkg/logger"
	"github.com/jhoicas/stock-manager/pkg/validation"
)

const warnInvertedThresholds = "low_stock_threshold >= full_stock_threshold: la categoría full puede quedar inalcanzable"

// SettingsUseCase lectura y actualización de los umbrales de stock.
// La ausencia de configuración nunca es un error: se usan los valores por defecto.
type SettingsUseCase struct {
	store    repository.ConfigStore
	defaults entity.Thresholds
	log      *logger.Logger
}

// NewSettingsUseCase construye el caso de uso. defaults suele venir de config.StockConfig.
func NewSettingsUseCase(store repository.ConfigStore, defaults entity.Thresholds, log *logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{store: store, defaults: defaults, log: log.Component("settings")}
}

// Thresholds devuelve los umbrales efectivos e indica si son los valores por defecto.
// Un fallo del store se registra y se resuelve con los valores por defecto.
func (uc *SettingsUseCase) Thresholds(ctx context.Context) (entity.Thresholds, bool) {
	t, found, err := uc.store.GetThresholds(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudieron leer los umbrales, usando valores por defecto")
		return uc.defaults, true
	}
	if !found {
		return uc.defaults, true
	}
	return t, false
}

// Get devuelve la configuración efectiva para el formulario de ajustes.
func (uc *SettingsUseCase) Get(ctx context.Context) *dto.SettingsResponse {
	t, defaults := uc.Thresholds(ctx)
	return toSettingsResponse(t, defaults)
}

// Update valida y persiste los umbrales. Low >= Full se acepta pero se advierte.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateThresholdsRequest) (*dto.SettingsResponse, error) {
	if errs := validation.Struct(in); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	t := entity.Thresholds{Low: *in.Low, Full: *in.Full}
	if err := uc.store.SaveThresholds(ctx, t); err != nil {
		return nil, err
	}
	if t.Low >= t.Full {
		uc.log.Warn().Int("low", t.Low).Int("full", t.Full).Msg("umbrales invertidos guardados")
	}
	uc.log.Info().Int("low", t.Low).Int("full", t.Full).Msg("umbrales actualizados")
	return toSettingsResponse(t, false), nil
}

func toSettingsResponse(t entity.Thresholds, defaults bool) *dto.SettingsResponse {
	out := &dto.SettingsResponse{ThresholdsDTO: toThresholdsDTO(t), Defaults: defaults}
	if t.Low >= t.Full {
		out.Warning = warnInvertedThresholds
	}
	return out
}

func toThresholdsDTO(t entity.Thresholds) dto.ThresholdsDTO {
	return dto.ThresholdsDTO{Low: t.Low, Full: t.Full}
}
