package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/ports"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	domstock "github.com/jhoicas/stock-manager/internal/domain/stock"
	"github.com/jhoicas/stock-manager/pkg/logger"
	"github.com/jhoicas/stock-manager/pkg/validation"
)

// statusUntracked respuesta para eventos de productos sin gestión de stock.
const statusUntracked = "untracked"

// AlertUseCase traduce eventos de stock de la plataforma de comercio en notificaciones.
// No tiene reglas propias: reclasifica con domstock.Classify y los umbrales vigentes.
type AlertUseCase struct {
	catalog  repository.CatalogProvider
	settings *SettingsUseCase
	notifier ports.Notifier
	log      *logger.Logger
	now      func() time.Time
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(
	catalog repository.CatalogProvider,
	settings *SettingsUseCase,
	notifier ports.Notifier,
	log *logger.Logger,
) *AlertUseCase {
	return &AlertUseCase{
		catalog:  catalog,
		settings: settings,
		notifier: notifier,
		log:      log.Component("alerts"),
		now:      time.Now,
	}
}

// HandleEvent procesa un evento externo de stock. Solo Low y Out llegan al Notifier;
// el resto se ignora con Notified=false.
func (uc *AlertUseCase) HandleEvent(ctx context.Context, in dto.StockEventRequest) (*dto.StockEventResponse, error) {
	if errs := validation.Struct(in); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	name := in.Name
	product, err := uc.catalog.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("alerts: catálogo: %w", err)
	}
	if product != nil {
		if !product.ManageStock {
			return &dto.StockEventResponse{Status: statusUntracked}, nil
		}
		if name == "" {
			name = product.Name
		}
	}

	t, _ := uc.settings.Thresholds(ctx)
	status := domstock.Classify(*in.Quantity, t)
	if !domstock.IsAlerting(status) {
		uc.log.Debug().Str("product_id", in.ProductID).Str("status", string(status)).Msg("evento sin alerta")
		return &dto.StockEventResponse{Status: string(status)}, nil
	}

	alert := ports.StockAlert{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Name:      name,
		Quantity:  *in.Quantity,
		Status:    string(status),
		Low:       t.Low,
		Full:      t.Full,
		At:        uc.now(),
	}
	if err := uc.notifier.NotifyStock(ctx, alert); err != nil {
		return nil, fmt.Errorf("alerts: notificar %s: %w", alert.ProductID, err)
	}
	uc.log.Info().
		Str("alert_id", alert.ID).
		Str("product_id", alert.ProductID).
		Str("status", alert.Status).
		Int("quantity", alert.Quantity).
		Msg("alerta de stock enviada")

	return &dto.StockEventResponse{AlertID: alert.ID, Status: alert.Status, Notified: true}, nil
}

// Digest envía un resumen con todos los productos Low/Out (orden del catálogo).
// Si nada requiere atención no se envía nada.
func (uc *AlertUseCase) Digest(ctx context.Context) (*dto.DigestResponse, error) {
	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("alerts: catálogo: %w", err)
	}
	t, _ := uc.settings.Thresholds(ctx)
	summary := domstock.Summarize(products, t.Low)
	resp := &dto.DigestResponse{LowCount: summary.Low, OutCount: summary.Out}

	now := uc.now()
	var alerts []ports.StockAlert
	for _, p := range domstock.FilterProducts(products, domstock.FilterAll, t) {
		status := domstock.Classify(p.StockQuantity, t)
		if !domstock.IsAlerting(status) {
			continue
		}
		alerts = append(alerts, toAlert(p, status, t, now))
	}
	if len(alerts) == 0 {
		return resp, nil
	}

	err = uc.notifier.NotifyDigest(ctx, ports.StockDigest{
		LowCount:          summary.Low,
		OutCount:          summary.Out,
		NormalOrFullCount: summary.NormalOrFull,
		Alerts:            alerts,
		At:                now,
	})
	if err != nil {
		return nil, fmt.Errorf("alerts: resumen: %w", err)
	}
	resp.Sent = true
	return resp, nil
}

// RunDigestLoop envía el resumen cada interval hasta que ctx se cancele.
func (uc *AlertUseCase) RunDigestLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	uc.log.Info().Dur("interval", interval).Msg("resumen periódico activado")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := uc.Digest(ctx)
			if err != nil {
				uc.log.Error().Err(err).Msg("resumen periódico")
				continue
			}
			uc.log.Info().Bool("sent", res.Sent).Int("low", res.LowCount).Int("out", res.OutCount).Msg("resumen periódico")
		}
	}
}

func toAlert(p *entity.Product, status domstock.Status, t entity.Thresholds, at time.Time) ports.StockAlert {
	return ports.StockAlert{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  p.StockQuantity,
		Status:    string(status),
		Low:       t.Low,
		Full:      t.Full,
		At:        at,
	}
}
