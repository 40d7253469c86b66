// Package export serializa el stock rastreado a CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/stock-manager/internal/application/dto"
)

// Header cabecera del CSV de exportación.
var Header = []string{"name", "quantity", "value"}

// ContentType y FileName para la respuesta HTTP.
const (
	ContentType = "text/csv; charset=utf-8"
	FileName    = "stock-report.csv"
)

// WriteStockCSV escribe la cabecera y una fila por producto. El valor se escribe sin redondeo.
func WriteStockCSV(w io.Writer, rows []dto.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: cabecera: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Name, strconv.Itoa(r.Quantity), r.Value.String()}); err != nil {
			return fmt.Errorf("export: fila %q: %w", r.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
