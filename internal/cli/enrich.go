package cli

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func newEnrichCmd() *cobra.Command {
	var (
		barcode string
		name    string
	)
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Consultar un producto en OpenFoodFacts",
		Long: "Consulta la base de datos externa de alimentos por código de barras exacto\n" +
			"(--barcode) o por búsqueda difusa de nombre (--name).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			switch {
			case barcode != "":
				path = "/enrich/barcode/" + url.PathEscape(barcode)
			default:
				path = "/enrich/search?q=" + url.QueryEscape(name)
			}
			status, body, err := newAPIClient().do(http.MethodGet, path, nil)
			if err != nil {
				return err
			}
			switch status {
			case http.StatusOK:
				fmt.Fprintln(cmd.OutOrStdout(), prettyJSON(body))
				return nil
			case http.StatusNotFound:
				fmt.Fprintln(cmd.OutOrStdout(), "No product found")
				return errHandled
			case http.StatusBadRequest:
				fmt.Fprintln(cmd.OutOrStdout(), "Bad Request:", apiError(body))
				return errHandled
			default:
				return unexpectedStatus(status, body)
			}
		},
	}
	cmd.Flags().StringVar(&barcode, "barcode", "", "código de barras exacto")
	cmd.Flags().StringVar(&name, "name", "", "nombre a buscar")
	cmd.MarkFlagsOneRequired("barcode", "name")
	cmd.MarkFlagsMutuallyExclusive("barcode", "name")
	return cmd
}
