package stock

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/pkg/logger"
	"github.com/jhoicas/stock-manager/pkg/validation"
)

// Columnas obligatorias del CSV de catálogo.
var importColumns = []string{"sku", "name", "price", "manage_stock", "quantity"}

// ImportUseCase ingesta del catálogo desde CSV. Es la frontera donde se rechazan
// cantidades ausentes o no numéricas; el clasificador asume entradas válidas.
type ImportUseCase struct {
	catalog repository.CatalogProvider
	log     *logger.Logger
	now     func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(catalog repository.CatalogProvider, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{catalog: catalog, log: log.Component("import"), now: time.Now}
}

// Import lee el CSV (cabecera sku,name,price,manage_stock,quantity), valida cada fila
// y hace upsert por SKU de las filas válidas. Las inválidas se devuelven como errores de fila.
func (uc *ImportUseCase) Import(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	rows, rowErrs, err := parseCatalogCSV(r)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		if errs := validateImportRow(row); len(errs) > 0 {
			rowErrs = append(rowErrs, errs...)
			continue
		}
		qty := 0
		if row.Quantity != nil {
			qty = *row.Quantity
		}
		products = append(products, &entity.Product{
			ID:            uuid.New().String(),
			SKU:           row.SKU,
			Name:          row.Name,
			UnitPrice:     row.Price,
			ManageStock:   row.ManageStock,
			StockQuantity: qty,
			Status:        entity.ProductStatusPublish,
			UpdatedAt:     now,
		})
	}

	if len(products) > 0 {
		if err := uc.catalog.UpsertProducts(ctx, products); err != nil {
			return nil, fmt.Errorf("import: upsert: %w", err)
		}
	}
	uc.log.Info().Int("imported", len(products)).Int("errors", len(rowErrs)).Msg("catálogo importado")

	if rowErrs == nil {
		rowErrs = []dto.ImportRowError{}
	}
	return &dto.ImportResult{Imported: len(products), Errors: rowErrs}, nil
}

// parseCatalogCSV convierte el CSV en filas tipadas. Los valores no parseables quedan marcados
// como errores de fila; solo una cabecera inválida aborta la importación.
func parseCatalogCSV(r io.Reader) ([]dto.ImportRow, []dto.ImportRowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: cabecera CSV inválida", domain.ErrInvalidInput)
	}
	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			return nil, nil, fmt.Errorf("%w: falta la columna %q", domain.ErrInvalidInput, col)
		}
	}

	var (
		rows []dto.ImportRow
		errs []dto.ImportRowError
	)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			errs = append(errs, dto.ImportRowError{Line: line, Field: "_", Message: "fila CSV ilegible"})
			continue
		}
		get := func(col string) string {
			if i := index[col]; i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}

		row := dto.ImportRow{
			Line:        line,
			SKU:         get("sku"),
			Name:        get("name"),
			ManageStock: parseBool(get("manage_stock")),
		}
		if raw := get("price"); raw == "" {
			row.Price = decimal.Zero
		} else if price, err := decimal.NewFromString(raw); err != nil || price.IsNegative() {
			errs = append(errs, dto.ImportRowError{Line: line, Field: "price", Message: "precio inválido"})
			continue
		} else {
			row.Price = price
		}
		if raw := get("quantity"); raw != "" {
			if q, err := strconv.Atoi(raw); err == nil {
				row.Quantity = &q
			} else if row.ManageStock {
				errs = append(errs, dto.ImportRowError{Line: line, Field: "quantity", Message: "cantidad no numérica"})
				continue
			}
		}
		rows = append(rows, row)
	}
	return rows, errs, nil
}

func validateImportRow(row dto.ImportRow) []dto.ImportRowError {
	fields := validation.Struct(row)
	if fields == nil {
		return nil
	}
	out := make([]dto.ImportRowError, 0, len(fields))
	for _, col := range []string{"sku", "name", "quantity"} {
		if msg, ok := fields[col]; ok {
			out = append(out, dto.ImportRowError{Line: row.Line, Field: col, Message: msg})
		}
	}
	return out
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "si", "sí":
		return true
	default:
		return false
	}
}
