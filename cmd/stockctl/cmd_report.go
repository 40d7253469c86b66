package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/stock"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/internal/infrastructure/export"
	"github.com/jhoicas/stock-manager/internal/infrastructure/memory"
	"github.com/jhoicas/stock-manager/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-manager/pkg/config"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

func newReportCmd() *cobra.Command {
	var (
		filter  string
		format  string
		csvPath string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Lista el stock filtrado del catálogo configurado",
		Long: "Lee el catálogo de CATALOG_BACKEND (o de --csv) y los umbrales vigentes, " +
			"y muestra los productos del filtro en formato tabla, csv o json.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			catalog, store, cleanup, err := openBackend(ctx, cfg, csvPath)
			if err != nil {
				return err
			}
			defer cleanup()

			log := logger.Nop()
			defaults := entity.Thresholds{Low: cfg.Stock.LowThreshold, Full: cfg.Stock.FullThreshold}
			uc := stock.NewStockUseCase(catalog, stock.NewSettingsUseCase(store, defaults, log), nil)

			out := cmd.OutOrStdout()
			switch format {
			case "csv":
				rows, err := uc.ExportRows(ctx)
				if err != nil {
					return err
				}
				return export.WriteStockCSV(out, rows)
			case "json":
				list, err := uc.List(ctx, filter)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			case "table":
				list, err := uc.List(ctx, filter)
				if err != nil {
					return err
				}
				return printTable(out, list)
			default:
				return fmt.Errorf("formato desconocido %q (table|csv|json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "all", "all | low | full | out")
	cmd.Flags().StringVar(&format, "format", "table", "table | csv | json")
	cmd.Flags().StringVar(&csvPath, "csv", "", "leer el catálogo desde un CSV en lugar del backend configurado")
	return cmd
}

// openBackend abre el catálogo y el almacén de ajustes. Con csvPath se carga un catálogo en memoria.
func openBackend(ctx context.Context, cfg *config.Config, csvPath string) (repository.CatalogProvider, repository.ConfigStore, func(), error) {
	noop := func() {}
	if csvPath != "" || cfg.App.CatalogBackend == config.BackendMemory {
		catalog := memory.NewCatalogRepository()
		if csvPath != "" {
			f, err := os.Open(csvPath)
			if err != nil {
				return nil, nil, noop, err
			}
			defer f.Close()
			res, err := stock.NewImportUseCase(catalog, logger.Nop()).Import(ctx, f)
			if err != nil {
				return nil, nil, noop, err
			}
			for _, e := range res.Errors {
				fmt.Fprintf(os.Stderr, "línea %d, %s: %s\n", e.Line, e.Field, e.Message)
			}
		}
		return catalog, memory.NewSettingsStore(), noop, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, noop, err
	}
	return postgres.NewProductRepository(pool, nil), postgres.NewSettingsRepository(pool), pool.Close, nil
}

func printTable(w io.Writer, list *dto.StockListResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SKU\tPRODUCTO\tCANTIDAD\tESTADO\n")
	for _, r := range list.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.SKU, r.Name, r.Quantity, r.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d productos (filtro %s, bajo < %d, lleno >= %d)\n",
		list.Total, list.Filter, list.Thresholds.Low, list.Thresholds.Full)
	return err
}
