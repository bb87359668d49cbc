package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/despensa-api/internal/application/dto"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listar el inventario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := newAPIClient().do(http.MethodGet, "/inventory", nil)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return unexpectedStatus(status, body)
			}
			var items []dto.ItemResponse
			if err := json.Unmarshal(body, &items); err != nil {
				return fmt.Errorf("decodificar respuesta: %w", err)
			}
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "#%3d | %s (%s) | $%s | stock=%d\n",
					it.ID, it.Name, it.Brand, it.Price.StringFixed(2), it.Stock)
			}
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Obtener un artículo por ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := newAPIClient().do(http.MethodGet, "/inventory/"+args[0], nil)
			if err != nil {
				return err
			}
			switch status {
			case http.StatusOK:
				fmt.Fprintln(cmd.OutOrStdout(), prettyJSON(body))
				return nil
			case http.StatusNotFound:
				fmt.Fprintln(cmd.OutOrStdout(), "Not found")
				return errHandled
			default:
				return unexpectedStatus(status, body)
			}
		},
	}
}

func newAddCmd() *cobra.Command {
	var (
		name        string
		brand       string
		price       string
		stock       int
		barcode     string
		ingredients string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Añadir un artículo nuevo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.NewFromString(price)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Invalid --price: %s\n", price)
				return errHandled
			}
			payload := map[string]any{
				"name":  name,
				"brand": brand,
				"price": p,
				"stock": stock,
			}
			if cmd.Flags().Changed("barcode") {
				payload["barcode"] = barcode
			}
			if cmd.Flags().Changed("ingredients") {
				payload["ingredients"] = ingredients
			}
			status, body, err := newAPIClient().do(http.MethodPost, "/inventory", payload)
			if err != nil {
				return err
			}
			switch status {
			case http.StatusCreated:
				fmt.Fprintln(cmd.OutOrStdout(), "Created:", prettyJSON(body))
				return nil
			case http.StatusBadRequest:
				fmt.Fprintln(cmd.OutOrStdout(), "Bad Request:", apiError(body))
				return errHandled
			default:
				return unexpectedStatus(status, body)
			}
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "nombre del artículo")
	cmd.Flags().StringVar(&brand, "brand", "", "marca")
	cmd.Flags().StringVar(&price, "price", "", "precio (decimal, ej. 1.99)")
	cmd.Flags().IntVar(&stock, "stock", 0, "unidades en stock")
	cmd.Flags().StringVar(&barcode, "barcode", "", "código de barras (opcional)")
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "ingredientes (opcional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("brand")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("stock")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var (
		name        string
		brand       string
		price       string
		stock       int
		barcode     string
		ingredients string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualizar un artículo (parcial: solo los flags presentes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := map[string]any{}
			if cmd.Flags().Changed("name") {
				patch["name"] = name
			}
			if cmd.Flags().Changed("brand") {
				patch["brand"] = brand
			}
			if cmd.Flags().Changed("price") {
				p, err := decimal.NewFromString(price)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Invalid --price: %s\n", price)
					return errHandled
				}
				patch["price"] = p
			}
			if cmd.Flags().Changed("stock") {
				patch["stock"] = stock
			}
			if cmd.Flags().Changed("barcode") {
				patch["barcode"] = barcode
			}
			if cmd.Flags().Changed("ingredients") {
				patch["ingredients"] = ingredients
			}
			status, body, err := newAPIClient().do(http.MethodPatch, "/inventory/"+args[0], patch)
			if err != nil {
				return err
			}
			switch status {
			case http.StatusOK:
				fmt.Fprintln(cmd.OutOrStdout(), "Updated:", prettyJSON(body))
				return nil
			case http.StatusNotFound:
				fmt.Fprintln(cmd.OutOrStdout(), "Not found")
				return errHandled
			case http.StatusBadRequest:
				fmt.Fprintln(cmd.OutOrStdout(), "Bad Request:", apiError(body))
				return errHandled
			default:
				return unexpectedStatus(status, body)
			}
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "nombre del artículo")
	cmd.Flags().StringVar(&brand, "brand", "", "marca")
	cmd.Flags().StringVar(&price, "price", "", "precio (decimal)")
	cmd.Flags().IntVar(&stock, "stock", 0, "unidades en stock")
	cmd.Flags().StringVar(&barcode, "barcode", "", "código de barras")
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "ingredientes")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar un artículo por ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := newAPIClient().do(http.MethodDelete, "/inventory/"+args[0], nil)
			if err != nil {
				return err
			}
			switch status {
			case http.StatusNoContent:
				fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
				return nil
			case http.StatusNotFound:
				fmt.Fprintln(cmd.OutOrStdout(), "Not found")
				return errHandled
			default:
				return unexpectedStatus(status, body)
			}
		},
	}
}
