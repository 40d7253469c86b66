// seed_catalog genera un script SQL para poblar la tabla products a partir de un CSV de catálogo
// (cabecera sku,name,price,manage_stock,quantity). Acepta UTF-8 o Windows-1252/ISO-8859-1
// (exportaciones de hojas de cálculo); la codificación se detecta automáticamente.
//
// Uso: go run ./cmd/seed_catalog [catalogo.csv] [salida.sql]
// Por defecto lee catalogo.csv y escribe internal/infrastructure/postgres/migrations/900_seed_catalog.sql.
// Las filas inválidas se informan por stderr y no se incluyen.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stock-manager/internal/application/stock"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/infrastructure/memory"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "900_seed_catalog.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	input, charset, err := decodeInput(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar CSV: %v\n", err)
		os.Exit(1)
	}

	// Se reutiliza la validación de la importación HTTP contra un catálogo en memoria.
	catalog := memory.NewCatalogRepository()
	res, err := stock.NewImportUseCase(catalog, logger.Nop()).Import(context.Background(), input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "línea %d, %s: %s\n", e.Line, e.Field, e.Message)
	}
	products, err := catalog.ListProducts(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, filepath.Base(csvPath), products); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s (%s): %d productos, %d filas rechazadas\n", outPath, charset, len(products), len(res.Errors))
}

// decodeInput devuelve el contenido en UTF-8. Si los bytes no son UTF-8 válido se asume Windows-1252,
// que es superconjunto imprimible de ISO-8859-1.
func decodeInput(raw []byte) (io.Reader, string, error) {
	if utf8.Valid(raw) {
		return bytes.NewReader(raw), "utf-8", nil
	}
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(decoded), "windows-1252", nil
}

func writeSeed(w io.Writer, source string, products []*entity.Product) error {
	var b strings.Builder
	b.WriteString("-- Catálogo inicial de productos\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)
	if len(products) == 0 {
		b.WriteString("-- (sin productos válidos)\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("INSERT INTO products (id, sku, name, price, manage_stock, stock_quantity, status) VALUES\n")
	for i, p := range products {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', %s, %t, %d, '%s')",
			p.ID, escapeSQL(p.SKU), escapeSQL(p.Name), p.UnitPrice.String(), p.ManageStock, p.StockQuantity, p.Status)
		if i < len(products)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	// Migrate re-ejecuta el script en cada arranque: solo se insertan los SKUs que faltan.
	b.WriteString("ON CONFLICT (sku) DO NOTHING;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
