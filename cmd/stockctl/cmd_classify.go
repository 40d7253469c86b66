package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	domstock "github.com/jhoicas/stock-manager/internal/domain/stock"
	"github.com/jhoicas/stock-manager/pkg/config"
)

func newClassifyCmd() *cobra.Command {
	var low, full int
	cmd := &cobra.Command{
		Use:   "classify <cantidad>",
		Short: "Clasifica una cantidad como out, low, normal o full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("cantidad no numérica: %q", args[0])
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			t := entity.Thresholds{Low: cfg.Stock.LowThreshold, Full: cfg.Stock.FullThreshold}
			if cmd.Flags().Changed("low") {
				t.Low = low
			}
			if cmd.Flags().Changed("full") {
				t.Full = full
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), domstock.Classify(q, t))
			return err
		},
	}
	cmd.Flags().IntVar(&low, "low", entity.DefaultLowStockThreshold, "umbral de stock bajo (por defecto LOW_STOCK_THRESHOLD)")
	cmd.Flags().IntVar(&full, "full", entity.DefaultFullStockThreshold, "umbral de stock lleno (por defecto FULL_STOCK_THRESHOLD)")
	return cmd
}
