package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valmirmacedo/cancella-cli/internal/cli"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Delete a record",
		Long: `Delete a record after confirmation. Use --yes to skip the prompt.

Examples:
  cancella delete visitantes 42
  cancella delete avisos 3 --yes`,
		Args: cobra.ExactArgs(2),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	entity, err := cli.NormalizeEntity(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	confirmed, err := cli.Confirm(fmt.Sprintf("Excluir o registro %s de %s?", id, entity), false)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Exclusão cancelada")
		return nil
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	if err := client.Delete(ctx, entity, id); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", entity, id, err)
	}

	cli.PrintSuccess("Registro %s excluído", id)
	return nil
}
