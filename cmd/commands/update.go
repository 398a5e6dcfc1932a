package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valmirmacedo/cancella-cli/internal/cli"
)

var updateFields []string

// NewUpdateCommand creates the update command
func NewUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <entity> <id>",
		Short: "Update fields of a record",
		Long: `Patch a record with the given fields. Only the fields passed via
--set are sent; everything else stays as is.

Examples:
  # Fix a visitor's name
  cancella update visitantes 42 --set nome="Ana Paula Souza"

  # Confirm a reservation
  cancella update reservas 7 --set status=confirmada

  # Mark a package as picked up
  cancella update encomendas 15 --set retirado=true`,
		Args: cobra.ExactArgs(2),
		RunE: runUpdate,
	}

	cmd.Flags().StringArrayVar(&updateFields, "set", nil, "Field as key=value (repeatable)")
	cmd.MarkFlagRequired("set")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	entity, err := cli.NormalizeEntity(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	payload, err := cli.ParseSetPairs(updateFields)
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

	if _, err := client.Update(ctx, entity, id, payload); err != nil {
		return fmt.Errorf("failed to update %s %s: %w", entity, id, err)
	}

	cli.PrintSuccess("Registro %s atualizado", id)
	return nil
}
