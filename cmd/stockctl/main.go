// stockctl herramientas de línea de comandos del gestor de stock:
//
//	stockctl token --role shop_manager       emite un JWT de desarrollo
//	stockctl report --filter low             lista el stock del catálogo configurado
//	stockctl classify 7 --low 5 --full 50    clasifica una cantidad
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stockctl",
		Short:         "Herramientas del gestor de stock",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTokenCmd(), newReportCmd(), newClassifyCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
