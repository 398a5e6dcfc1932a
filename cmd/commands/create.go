package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valmirmacedo/cancella-cli/internal/cli"
)

var createFields []string

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <entity>",
		Short: "Create a record",
		Long: `Create a record in a collection. Fields are passed as repeated
--set key=value flags. CPF, CNPJ, phone and plate fields are checked
locally before the request goes out.

Examples:
  # Register a visitor
  cancella create visitantes --set nome="Ana Souza" --set documento=52998224725

  # Register a visitor with a vehicle
  cancella create visitantes --set nome="Bruno" --set documento=12345678909 --set placa_veiculo=BRA2E19

  # Register a company
  cancella create empresas --set nome="ACME Ltda" --set cnpj=11222333000181`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().StringArrayVar(&createFields, "set", nil, "Field as key=value (repeatable)")
	cmd.MarkFlagRequired("set")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	entity, err := cli.NormalizeEntity(args[0])
	if err != nil {
		return err
	}

	payload, err := cli.ParseSetPairs(createFields)
	if err != nil {
		return err
	}
	if err := validatePayload(entity, payload); err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	rec, err := client.Create(ctx, entity, payload)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", entity, err)
	}

	cli.PrintSuccess("Registro criado em %s (id %s)", entity, rec.ID())
	return nil
}
