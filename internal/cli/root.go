package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Códigos de salida del proceso.
const (
	exitOK      = 0
	exitHandled = 1 // 404/400 esperados, ya informados al usuario
	exitNetwork = 2 // fallo de red alcanzando la API
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "despensa",
		Short: "Cliente de línea de comandos del inventario de la despensa",
		Long: "despensa habla con la API HTTP del inventario: CRUD de artículos y\n" +
			"enriquecimiento de productos vía OpenFoodFacts.\n\n" +
			"La base de la API se configura con API_BASE_URL (por defecto http://127.0.0.1:5000).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newEnrichCmd())
	return cmd
}

// NewRootCmdForTest devuelve el comando raíz para los tests.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute ejecuta el CLI y devuelve el código de salida del proceso.
func Execute() int {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, errHandled) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}

// exitCode traduce el error final al contrato de salida: 0 éxito, 1 resultado
// manejado (404/400 o uso incorrecto), 2 fallo de red.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNetwork):
		return exitNetwork
	default:
		return exitHandled
	}
}
